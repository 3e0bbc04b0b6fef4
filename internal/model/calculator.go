package model

import (
	"math"
	"strconv"
	"strings"
)

// The expression calculator resolves symbolic scalar strings once every free
// name has a binding. It supports + - * / ^, parentheses, unary minus, the
// constants pi and e, and a small set of unary functions. No simplification
// or canonicalization is performed.

type exprTokenKind int

const (
	tokNumber exprTokenKind = iota
	tokIdent
	tokOperator
	tokLeftParen
	tokRightParen
	tokComma
)

type exprToken struct {
	kind  exprTokenKind
	text  string
	value float64
}

var exprConstants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

var exprFunctions = map[string]func(float64) float64{
	"cos":  math.Cos,
	"sin":  math.Sin,
	"tan":  math.Tan,
	"sqrt": math.Sqrt,
	"exp":  math.Exp,
	"log":  math.Log,
	"abs":  math.Abs,
	"sign": func(v float64) float64 {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		}
		return 0
	},
}

func isIdentStart(r byte) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r byte) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func tokenizeExpression(expr string) ([]exprToken, error) {
	tokens := make([]exprToken, 0, len(expr)/2)

	i := 0
	for i < len(expr) {
		ch := expr[i]

		switch {
		case ch == ' ' || ch == '\t' || ch == '\n':
			i++
		case ch >= '0' && ch <= '9' || ch == '.':
			j := i
			for j < len(expr) && (expr[j] >= '0' && expr[j] <= '9' || expr[j] == '.') {
				j++
			}
			// Exponent part, including a signed exponent.
			if j < len(expr) && (expr[j] == 'e' || expr[j] == 'E') {
				k := j + 1
				if k < len(expr) && (expr[k] == '+' || expr[k] == '-') {
					k++
				}
				if k < len(expr) && expr[k] >= '0' && expr[k] <= '9' {
					for k < len(expr) && expr[k] >= '0' && expr[k] <= '9' {
						k++
					}
					j = k
				}
			}

			v, err := strconv.ParseFloat(expr[i:j], 64)
			if err != nil {
				return nil, &CalculatorError{Expr: expr, Reason: "malformed number " + expr[i:j]}
			}

			tokens = append(tokens, exprToken{kind: tokNumber, text: expr[i:j], value: v})
			i = j
		case isIdentStart(ch):
			j := i
			for j < len(expr) && isIdentPart(expr[j]) {
				j++
			}

			tokens = append(tokens, exprToken{kind: tokIdent, text: expr[i:j]})
			i = j
		case ch == '+' || ch == '-' || ch == '*' || ch == '/' || ch == '^':
			tokens = append(tokens, exprToken{kind: tokOperator, text: string(ch)})
			i++
		case ch == '(':
			tokens = append(tokens, exprToken{kind: tokLeftParen, text: "("})
			i++
		case ch == ')':
			tokens = append(tokens, exprToken{kind: tokRightParen, text: ")"})
			i++
		case ch == ',':
			tokens = append(tokens, exprToken{kind: tokComma, text: ","})
			i++
		default:
			return nil, &CalculatorError{Expr: expr, Reason: "unexpected character " + strconv.QuoteRune(rune(ch))}
		}
	}

	return tokens, nil
}

// exprParser is a small recursive-descent evaluator over the token stream.
type exprParser struct {
	expr   string
	tokens []exprToken
	pos    int
	values map[string]float64
}

func (p *exprParser) peek() (exprToken, bool) {
	if p.pos >= len(p.tokens) {
		return exprToken{}, false
	}

	return p.tokens[p.pos], true
}

func (p *exprParser) next() (exprToken, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}

	return tok, ok
}

// parseSum handles + and - at the lowest precedence level.
func (p *exprParser) parseSum() (float64, error) {
	left, err := p.parseProduct()
	if err != nil {
		return 0, err
	}

	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokOperator || (tok.text != "+" && tok.text != "-") {
			return left, nil
		}
		p.pos++

		right, err := p.parseProduct()
		if err != nil {
			return 0, err
		}

		if tok.text == "+" {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *exprParser) parseProduct() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}

	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokOperator || (tok.text != "*" && tok.text != "/") {
			return left, nil
		}
		p.pos++

		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}

		if tok.text == "*" {
			left *= right
		} else {
			left /= right
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	tok, ok := p.peek()
	if ok && tok.kind == tokOperator && (tok.text == "-" || tok.text == "+") {
		p.pos++

		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}

		if tok.text == "-" {
			return -v, nil
		}

		return v, nil
	}

	return p.parsePower()
}

// parsePower binds tighter than unary minus on the right: a^b^c == a^(b^c).
func (p *exprParser) parsePower() (float64, error) {
	base, err := p.parseAtom()
	if err != nil {
		return 0, err
	}

	tok, ok := p.peek()
	if !ok || tok.kind != tokOperator || tok.text != "^" {
		return base, nil
	}
	p.pos++

	exponent, err := p.parseUnary()
	if err != nil {
		return 0, err
	}

	return powFloat(base, exponent), nil
}

func (p *exprParser) parseAtom() (float64, error) {
	tok, ok := p.next()
	if !ok {
		return 0, &CalculatorError{Expr: p.expr, Reason: "unexpected end of expression"}
	}

	switch tok.kind {
	case tokNumber:
		return tok.value, nil
	case tokLeftParen:
		v, err := p.parseSum()
		if err != nil {
			return 0, err
		}

		if closing, ok := p.next(); !ok || closing.kind != tokRightParen {
			return 0, &CalculatorError{Expr: p.expr, Reason: "missing closing parenthesis"}
		}

		return v, nil
	case tokIdent:
		if fn, ok := exprFunctions[tok.text]; ok {
			if paren, found := p.peek(); found && paren.kind == tokLeftParen {
				p.pos++

				arg, err := p.parseSum()
				if err != nil {
					return 0, err
				}

				if closing, ok := p.next(); !ok || closing.kind != tokRightParen {
					return 0, &CalculatorError{Expr: p.expr, Reason: "missing closing parenthesis after " + tok.text}
				}

				return fn(arg), nil
			}
		}

		if v, ok := p.values[tok.text]; ok {
			return v, nil
		}

		if v, ok := exprConstants[tok.text]; ok {
			return v, nil
		}

		return 0, &UnresolvedSymbolError{Symbol: tok.text}
	default:
		return 0, &CalculatorError{Expr: p.expr, Reason: "unexpected token " + tok.text}
	}
}

// evaluateExpression resolves expr against the symbol table. Unknown names
// surface as UnresolvedSymbolError, malformed input as CalculatorError.
func evaluateExpression(expr string, values map[string]float64) (float64, error) {
	tokens, err := tokenizeExpression(expr)
	if err != nil {
		return 0, err
	}

	if len(tokens) == 0 {
		return 0, &CalculatorError{Expr: expr, Reason: "empty expression"}
	}

	p := &exprParser{expr: expr, tokens: tokens, values: values}

	v, err := p.parseSum()
	if err != nil {
		return 0, err
	}

	if p.pos != len(p.tokens) {
		return 0, &CalculatorError{Expr: expr, Reason: "trailing tokens after expression"}
	}

	return v, nil
}

// replaceIdentifier substitutes one free name with a float literal and leaves
// everything else of the expression verbatim, including function names.
func replaceIdentifier(expr, name string, value float64) string {
	tokens, err := tokenizeExpression(expr)
	if err != nil {
		return expr
	}

	literal := strconv.FormatFloat(value, 'g', -1, 64)

	var out strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			out.WriteByte(' ')
		}

		if tok.kind == tokIdent && tok.text == name {
			out.WriteString(literal)
			continue
		}

		out.WriteString(tok.text)
	}

	return out.String()
}

func powFloat(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}
