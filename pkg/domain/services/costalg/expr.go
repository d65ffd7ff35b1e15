// Package costalg implements the minimal symbolic algebra spec.md §4.3 and
// §9 call for: named variables, numeric constants, addition, multiplication,
// substitution, and numeric evaluation over github.com/shopspring/decimal.
// A full computer algebra system is explicitly out of scope (spec.md §9);
// tree depth here never exceeds recipe depth.
package costalg

import "github.com/shopspring/decimal"

// Expr is a symbolic cost expression. The concrete variants are Const, Var,
// Sum, and Product; Expr is a closed sum type via the unexported marker
// method, mirroring the same pattern used for entities.SupplyTree.
type Expr interface {
	isExpr()
}

// Const is a numeric literal.
type Const struct {
	Value decimal.Decimal
}

func (Const) isExpr() {}

// ConstInt is a convenience constructor for an integer constant.
func ConstInt(v int64) Const {
	return Const{Value: decimal.NewFromInt(v)}
}

// Var is a named free variable: a BOM atom identifier, or a design's
// recipe-private intrinsic-cost symbol.
type Var struct {
	Name string
}

func (Var) isExpr() {}

// Sum is the n-ary sum of its terms.
type Sum struct {
	Terms []Expr
}

func (Sum) isExpr() {}

// Product is the n-ary product of its factors.
type Product struct {
	Factors []Expr
}

func (Product) isExpr() {}

// Substitute returns a copy of e with every free occurrence of the variable
// named name replaced by replacement. Unmatched variables and constants are
// returned unchanged (sharing structure is fine: Expr values are immutable).
func Substitute(e Expr, name string, replacement Expr) Expr {
	switch v := e.(type) {
	case Const:
		return v
	case Var:
		if v.Name == name {
			return replacement
		}
		return v
	case Sum:
		terms := make([]Expr, len(v.Terms))
		for i, t := range v.Terms {
			terms[i] = Substitute(t, name, replacement)
		}
		return Sum{Terms: terms}
	case Product:
		factors := make([]Expr, len(v.Factors))
		for i, f := range v.Factors {
			factors[i] = Substitute(f, name, replacement)
		}
		return Product{Factors: factors}
	default:
		return e
	}
}

// SubstituteAll replaces every variable of e named in bindings with its
// binding, all at once: a replacement is never itself rewritten by another
// binding, so the result does not depend on map order. Bound variables are
// first renamed to placeholders (the name prefixed with a NUL byte) and only
// then replaced; variable names beginning with a NUL byte are reserved for
// this.
func SubstituteAll(e Expr, bindings map[string]Expr) Expr {
	const placeholderPrefix = "\x00"
	out := e
	for name := range bindings {
		out = Substitute(out, name, Var{Name: placeholderPrefix + name})
	}
	for name, repl := range bindings {
		out = Substitute(out, placeholderPrefix+name, repl)
	}
	return out
}

// FreeVariables returns the set of variable names appearing in e, in no
// particular order.
func FreeVariables(e Expr) []string {
	seen := map[string]bool{}
	var walk func(Expr)
	walk = func(e Expr) {
		switch v := e.(type) {
		case Var:
			seen[v.Name] = true
		case Sum:
			for _, t := range v.Terms {
				walk(t)
			}
		case Product:
			for _, f := range v.Factors {
				walk(f)
			}
		}
	}
	walk(e)
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	return names
}

// Eval reduces e to a single decimal.Decimal, substituting every leaf
// variable appearing in e with its value from values. A variable with no
// entry in values is a programming-contract violation (spec.md §7: only
// exceptional for contract violations, never for planning outcomes), so
// Eval returns an error naming the missing variable rather than defaulting
// it to zero.
func Eval(e Expr, values map[string]decimal.Decimal) (decimal.Decimal, error) {
	switch v := e.(type) {
	case Const:
		return v.Value, nil
	case Var:
		val, ok := values[v.Name]
		if !ok {
			return decimal.Zero, &UnboundVariableError{Name: v.Name}
		}
		return val, nil
	case Sum:
		total := decimal.Zero
		for _, t := range v.Terms {
			val, err := Eval(t, values)
			if err != nil {
				return decimal.Zero, err
			}
			total = total.Add(val)
		}
		return total, nil
	case Product:
		total := decimal.NewFromInt(1)
		for _, f := range v.Factors {
			val, err := Eval(f, values)
			if err != nil {
				return decimal.Zero, err
			}
			total = total.Mul(val)
		}
		return total, nil
	default:
		return decimal.Zero, &UnboundVariableError{Name: "<unknown expr>"}
	}
}

// UnboundVariableError reports that Eval encountered a free variable with
// no entry in the supplied price map.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return "costalg: unbound variable " + e.Name
}
