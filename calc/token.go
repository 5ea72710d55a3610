package calc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies a token.
type TokenKind int

const (
	Number TokenKind = iota
	Constant
	Function
	Operator
	LeftParen
	RightParen
	Comma
)

// String returns the name of the token kind.
func (k TokenKind) String() string {
	switch k {
	case Number:
		return "number"
	case Constant:
		return "constant"
	case Function:
		return "function"
	case Operator:
		return "operator"
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	case Comma:
		return ","
	default:
		return "unknown"
	}
}

// Token is one lexical element of an expression.
type Token struct {
	Kind  TokenKind
	Text  string  // source text; identifiers are lower-cased
	Value float64 // parsed value of Number tokens
	Pos   int     // byte offset in the source expression
}

// String returns the token text.
func (t Token) String() string {
	return t.Text
}

// Tokenize splits an expression into tokens. Identifiers are matched
// case-insensitively and must name a known constant or function.
func Tokenize(expression string) ([]Token, error) {
	var tokens []Token

	for i := 0; i < len(expression); {
		c := expression[i]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case isDigit(c) || c == '.':
			start := i
			for i < len(expression) && (isDigit(expression[i]) || expression[i] == '.') {
				i++
			}
			text := expression[start:i]
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, newParseError(start, "invalid number %q", text)
			}
			tokens = append(tokens, Token{Kind: Number, Text: text, Value: value, Pos: start})

		case isIdentStart(c):
			start := i
			for i < len(expression) && isIdentPart(expression[i]) {
				i++
			}
			name := strings.ToLower(expression[start:i])
			switch {
			case isConstant(name):
				tokens = append(tokens, Token{Kind: Constant, Text: name, Pos: start})
			case isFunction(name):
				tokens = append(tokens, Token{Kind: Function, Text: name, Pos: start})
			default:
				return nil, newParseError(start, "unknown identifier %q", expression[start:i])
			}

		case strings.IndexByte("+-*/^", c) >= 0:
			tokens = append(tokens, Token{Kind: Operator, Text: string(c), Pos: i})
			i++

		case c == '(':
			tokens = append(tokens, Token{Kind: LeftParen, Text: "(", Pos: i})
			i++

		case c == ')':
			tokens = append(tokens, Token{Kind: RightParen, Text: ")", Pos: i})
			i++

		case c == ',':
			tokens = append(tokens, Token{Kind: Comma, Text: ",", Pos: i})
			i++

		default:
			r, _ := utf8.DecodeRuneInString(expression[i:])
			if !unicode.IsPrint(r) {
				return nil, newParseError(i, "invalid character %U", r)
			}
			return nil, newParseError(i, "invalid character %q", r)
		}
	}

	return tokens, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
