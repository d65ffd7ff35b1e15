// Package cli wires the supplyplan binary's cobra subcommands (spec.md
// §6's illustrative CLI surface) over the core planning engine, the same
// "Use/Short/RunE" shape
// _examples/acdtunes-spacetraders/gobot/internal/adapters/cli uses for
// its own subcommands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/supplyplan/core/pkg/application/services/enumeration"
	"github.com/supplyplan/core/pkg/application/services/execution"
	"github.com/supplyplan/core/pkg/infrastructure/logging"
	"github.com/supplyplan/core/pkg/infrastructure/repositories/memory"
)

// Exit codes pinned by spec.md §6.
const (
	ExitOK              = 0
	ExitProductNotFound = 2
	ExitCatalogInvalid  = 3
)

var (
	catalogPath string
	verbose     bool
	logger      *zap.Logger
)

// NewRootCommand builds the supplyplan root command.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "supplyplan",
		Short:         "Enumerate and cost supply trees over a manufacturing catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = logging.New(verbose)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			// Every package that emits structured diagnostics takes the
			// same *zap.Logger, so cycle-cut/validation/repair log lines
			// share the CLI's verbosity and sink.
			enumeration.SetLogger(logger)
			memory.SetLogger(logger)
			execution.SetLogger(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&catalogPath, "catalog", "", "path to a catalog JSON document")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.MarkPersistentFlagRequired("catalog")

	root.AddCommand(newPlanCommand())
	root.AddCommand(newPriceCommand())
	root.AddCommand(newValidateCommand())
	return root
}

// Execute runs the CLI and translates an *exitError into os.Exit, the
// pattern cmd/nerd/main.go uses for its own top-level error handling.
func Execute() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		var ee *exitError
		if asExitError(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.cause)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// exitError pairs an error with the process exit code it should produce.
type exitError struct {
	code  int
	cause error
}

func (e *exitError) Error() string { return e.cause.Error() }
func (e *exitError) Unwrap() error { return e.cause }

func newExitError(code int, cause error) error {
	return &exitError{code: code, cause: cause}
}

func asExitError(err error, target **exitError) bool {
	ee, ok := err.(*exitError)
	if !ok {
		return false
	}
	*target = ee
	return true
}
