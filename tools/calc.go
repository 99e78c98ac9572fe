package tools

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/prathyushnallamothu/reactagent"
)

// Calculator returns the arithmetic tool. Expressions are handled by a
// small recursive-descent grammar limited to numbers, + - * / %, and
// parentheses; there is no identifier, call, or expansion syntax, so the
// tool cannot be steered into evaluating anything but arithmetic.
func Calculator() reactagent.Tool {
	return reactagent.Tool{
		Name:        "calculator",
		Description: "Performs arithmetic calculations and percentage operations",
		Params:      []string{"expression"},
		Example:     `calculator("100 * 0.15")`,
		Execute: func(ctx context.Context, args []any) (string, error) {
			expr, err := stringArg(args, 0, "expression")
			if err != nil {
				return "", err
			}
			result, err := Evaluate(expr)
			if err != nil {
				return "", fmt.Errorf("calculator error: %w", err)
			}
			return fmt.Sprintf("Calculation result: %s = %s", expr, FormatNumber(result)), nil
		},
	}
}

// FormatNumber renders a result without trailing zeros ("8", "15.5")
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Evaluate computes the value of a constrained arithmetic expression.
// Grammar:
//
//	expr    = term (('+' | '-') term)*
//	term    = unary (('*' | '/' | '%') unary)*
//	unary   = ('-' | '+') unary | primary
//	primary = number | '(' expr ')'
func Evaluate(input string) (float64, error) {
	p := &exprParser{input: input}
	v, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	p.skipSpaces()
	if p.pos < len(p.input) {
		return 0, fmt.Errorf("unexpected %q at position %d", rest(p.input, p.pos), p.pos)
	}
	return v, nil
}

type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *exprParser) peek() (byte, bool) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *exprParser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '+' && c != '-') {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if c == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *exprParser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		c, ok := p.peek()
		if !ok || (c != '*' && c != '/' && c != '%') {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		switch c {
		case '*':
			left *= right
		case '/':
			if right == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			left /= right
		case '%':
			if right == 0 {
				return 0, fmt.Errorf("modulo by zero")
			}
			left = math.Mod(left, right)
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	c, ok := p.peek()
	if ok && (c == '-' || c == '+') {
		p.pos++
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if c == '-' {
			return -v, nil
		}
		return v, nil
	}
	return p.parsePrimary()
}

func (p *exprParser) parsePrimary() (float64, error) {
	c, ok := p.peek()
	if !ok {
		return 0, fmt.Errorf("unexpected end of expression")
	}
	if c == '(' {
		p.pos++
		v, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		c, ok = p.peek()
		if !ok || c != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return v, nil
	}
	return p.parseNumber()
}

func (p *exprParser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) && (isDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
		p.pos++
	}
	token := p.input[start:p.pos]
	if token == "" {
		return 0, fmt.Errorf("expected a number, got %q", rest(p.input, p.pos))
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", token)
	}
	return v, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func rest(s string, pos int) string {
	if pos >= len(s) {
		return ""
	}
	tail := s[pos:]
	if len(tail) > 10 {
		tail = tail[:10]
	}
	return tail
}
