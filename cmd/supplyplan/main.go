// Command supplyplan is the CLI entry point over the supply planning core:
// it wires cobra subcommands plan, price, and validate (spec.md §6).
package main

import "github.com/supplyplan/core/pkg/interfaces/cli"

func main() {
	cli.Execute()
}
