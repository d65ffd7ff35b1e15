package costalg

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseExpr parses the cost-expression strings ingestion records carry
// (spec.md §6: "cost-expression: optional string"). The grammar is
// intentionally small — sums and products of decimal constants and
// variable names, with parentheses for grouping — matching the minimal
// algebra costalg implements; no ecosystem expression-parser library in
// the retrieval pack covers this grammar, so this hand-rolled recursive
// descent parser is scoped exactly to it rather than adopting a
// general-purpose calculator library.
//
//	expr   := term (('+') term)*
//	term   := factor (('*') factor)*
//	factor := NUMBER | IDENT | '(' expr ')'
func ParseExpr(s string) (Expr, error) {
	p := &parser{tokens: tokenize(s)}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("costalg: unexpected token %q", p.tokens[p.pos])
	}
	return e, nil
}

func tokenize(s string) []string {
	var tokens []string
	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '+' || r == '*' || r == '(' || r == ')':
			tokens = append(tokens, string(r))
			i++
		case unicode.IsDigit(r) || r == '.':
			j := i
			for j < len(runes) && (unicode.IsDigit(runes[j]) || runes[j] == '.') {
				j++
			}
			tokens = append(tokens, string(runes[i:j]))
			i = j
		default:
			j := i
			for j < len(runes) && !unicode.IsSpace(runes[j]) && !strings.ContainsRune("+*()", runes[j]) {
				j++
			}
			tokens = append(tokens, string(runes[i:j]))
			i = j
		}
	}
	return tokens
}

type parser struct {
	tokens []string
	pos    int
}

func (p *parser) peek() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}
	return p.tokens[p.pos], true
}

func (p *parser) parseExpr() (Expr, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []Expr{term}
	for {
		tok, ok := p.peek()
		if !ok || tok != "+" {
			break
		}
		p.pos++
		next, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, next)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return Sum{Terms: terms}, nil
}

func (p *parser) parseTerm() (Expr, error) {
	factor, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	factors := []Expr{factor}
	for {
		tok, ok := p.peek()
		if !ok || tok != "*" {
			break
		}
		p.pos++
		next, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		factors = append(factors, next)
	}
	if len(factors) == 1 {
		return factors[0], nil
	}
	return Product{Factors: factors}, nil
}

func (p *parser) parseFactor() (Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("costalg: unexpected end of expression")
	}
	if tok == "(" {
		p.pos++
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok || closing != ")" {
			return nil, fmt.Errorf("costalg: expected ')'")
		}
		p.pos++
		return e, nil
	}
	p.pos++
	if v, err := decimal.NewFromString(tok); err == nil {
		return Const{Value: v}, nil
	}
	return Var{Name: tok}, nil
}
