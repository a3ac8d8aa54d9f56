package formula

import "strconv"

// tokenType enumerates the tokens a table formula expression is made of.
// The grammar is deliberately small: numeric literals, cell references,
// the four arithmetic operators and parentheses.
type tokenType int

const (
	tokenNumber tokenType = iota
	tokenRef
	tokenOperator
	tokenLeftParen
	tokenRightParen
)

type token struct {
	typ   tokenType
	text  string
	value float64 // set for tokenNumber
	col   int     // set for tokenRef
	row   int     // set for tokenRef
}

// tokenize splits a formula expression (without the leading '=') into tokens.
// Whitespace is insignificant. Reference labels are resolved to zero-based
// coordinates eagerly so later stages never re-parse labels.
func tokenize(expr string) ([]token, error) {
	var tokens []token
	pos := 0

	for pos < len(expr) {
		ch := expr[pos]

		switch {
		case ch == ' ' || ch == '\t':
			pos++
		case ch == '(':
			tokens = append(tokens, token{typ: tokenLeftParen, text: "("})
			pos++
		case ch == ')':
			tokens = append(tokens, token{typ: tokenRightParen, text: ")"})
			pos++
		case ch == '+' || ch == '-' || ch == '*' || ch == '/':
			tokens = append(tokens, token{typ: tokenOperator, text: string(ch)})
			pos++
		case isDigit(ch) || ch == '.':
			start := pos
			for pos < len(expr) && isDigit(expr[pos]) {
				pos++
			}
			if pos < len(expr) && expr[pos] == '.' {
				pos++
				for pos < len(expr) && isDigit(expr[pos]) {
					pos++
				}
			}
			text := expr[start:pos]
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, NewInvalidFormula("bad number '" + text + "'")
			}
			tokens = append(tokens, token{typ: tokenNumber, text: text, value: value})
		case isRefLetter(ch):
			start := pos
			for pos < len(expr) && isRefLetter(expr[pos]) {
				pos++
			}
			for pos < len(expr) && isDigit(expr[pos]) {
				pos++
			}
			label := expr[start:pos]
			col, row, err := DecodeRef(label)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{typ: tokenRef, text: NormalizeRef(label), col: col, row: row})
		default:
			return nil, NewInvalidFormula("unexpected character '" + string(ch) + "'")
		}
	}

	return tokens, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
