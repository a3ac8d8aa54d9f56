package formula

import (
	"regexp"
	"strings"
)

var (
	refFinder     = regexp.MustCompile(`[A-Za-z]+[0-9]+`)
	numberPattern = regexp.MustCompile(`[0-9]`)
)

// Clean validates an accumulated formula string for persistence.
//
// The formula must begin with '='. A single trailing operator or unmatched
// open parenthesis is stripped rather than rejected: formulas are built
// incrementally through UI gestures and the user may still be mid-expression
// when committing. After trimming, the formula must contain at least one cell
// reference or numeric literal.
func Clean(raw string) (string, error) {
	if !strings.HasPrefix(raw, "=") {
		return "", NewInvalidFormula("must start with '='")
	}

	expr := strings.TrimSpace(raw[1:])
	if expr != "" {
		switch expr[len(expr)-1] {
		case '+', '-', '*', '/':
			expr = strings.TrimSpace(expr[:len(expr)-1])
		case '(':
			if strings.Count(expr, "(") > strings.Count(expr, ")") {
				expr = strings.TrimSpace(expr[:len(expr)-1])
			}
		}
	}

	if !refFinder.MatchString(expr) && !numberPattern.MatchString(expr) {
		return "", NewEmptyFormula()
	}

	return "=" + expr, nil
}

// References returns the distinct cell reference labels in a formula, in
// order of first appearance, normalized to upper case.
func References(raw string) []string {
	expr := strings.TrimPrefix(raw, "=")

	var refs []string
	seen := make(map[string]struct{})
	for _, label := range refFinder.FindAllString(expr, -1) {
		normalized := NormalizeRef(label)
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		refs = append(refs, normalized)
	}
	return refs
}

// node is a parsed expression tree element.
type node interface {
	eval(ev *evaluator) (float64, error)
}

type numberNode struct {
	value float64
}

func (n *numberNode) eval(*evaluator) (float64, error) {
	return n.value, nil
}

type refNode struct {
	label string
	col   int
	row   int
}

func (n *refNode) eval(ev *evaluator) (float64, error) {
	return ev.resolveRef(n)
}

type unaryNode struct {
	op      string
	operand node
}

func (n *unaryNode) eval(ev *evaluator) (float64, error) {
	v, err := n.operand.eval(ev)
	if err != nil {
		return 0, err
	}
	if n.op == "-" {
		return -v, nil
	}
	return v, nil
}

type binaryNode struct {
	op    string
	left  node
	right node
}

func (n *binaryNode) eval(ev *evaluator) (float64, error) {
	left, err := n.left.eval(ev)
	if err != nil {
		return 0, err
	}
	right, err := n.right.eval(ev)
	if err != nil {
		return 0, err
	}

	switch n.op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	default:
		if right == 0 {
			return 0, NewInvalidOperand("division by zero")
		}
		return left / right, nil
	}
}

type parser struct {
	tokens []token
	pos    int
}

// parseExpr parses a cleaned formula expression (without the leading '=')
// into an expression tree with standard arithmetic precedence: '*' and '/'
// bind tighter than '+' and '-', equal precedence associates left to right,
// parentheses override.
func parseExpr(expr string) (node, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, NewEmptyFormula()
	}

	p := &parser{tokens: tokens}
	root, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, NewInvalidFormula("unexpected token '" + p.tokens[p.pos].text + "'")
	}
	return root, nil
}

func (p *parser) parseAdditive() (node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for p.peekOperator("+", "-") {
		op := p.next().text
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.peekOperator("*", "/") {
		op := p.next().text
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left = &binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parsePrimary() (node, error) {
	if p.pos >= len(p.tokens) {
		return nil, NewInvalidFormula("unexpected end of expression")
	}

	tok := p.next()
	switch tok.typ {
	case tokenNumber:
		return &numberNode{value: tok.value}, nil
	case tokenRef:
		return &refNode{label: tok.text, col: tok.col, row: tok.row}, nil
	case tokenOperator:
		// unary sign
		if tok.text == "+" || tok.text == "-" {
			operand, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			return &unaryNode{op: tok.text, operand: operand}, nil
		}
		return nil, NewInvalidFormula("unexpected operator '" + tok.text + "'")
	case tokenLeftParen:
		inner, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		if p.pos >= len(p.tokens) || p.tokens[p.pos].typ != tokenRightParen {
			return nil, NewInvalidFormula("missing closing parenthesis")
		}
		p.pos++
		return inner, nil
	default:
		return nil, NewInvalidFormula("unexpected token '" + tok.text + "'")
	}
}

func (p *parser) peekOperator(ops ...string) bool {
	if p.pos >= len(p.tokens) || p.tokens[p.pos].typ != tokenOperator {
		return false
	}
	for _, op := range ops {
		if p.tokens[p.pos].text == op {
			return true
		}
	}
	return false
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}
