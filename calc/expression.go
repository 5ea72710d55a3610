package calc

import (
	"strings"
)

// Expression is a compiled expression held in Reverse Polish Notation.
// It is immutable and safe for concurrent use.
type Expression struct {
	source string
	rpn    []Token
}

// Compile tokenizes an infix expression and converts it to RPN.
//
//	exp, err := calc.Compile("2+3*4")
//	if err != nil {
//		panic(err)
//	}
//	fmt.Println(exp)                   // 2,3,4,*,+
//	v, _ := exp.Evaluate(calc.Radians) // 14
func Compile(expression string) (*Expression, error) {
	tokens, err := Tokenize(expression)
	if err != nil {
		return nil, err
	}
	rpn, err := toPostfix(tokens)
	if err != nil {
		return nil, err
	}
	return &Expression{source: expression, rpn: rpn}, nil
}

// Evaluate compiles and evaluates an expression in one step.
func Evaluate(expression string, mode AngleMode) (float64, error) {
	exp, err := Compile(expression)
	if err != nil {
		return 0, err
	}
	return exp.Evaluate(mode)
}

// Source returns the infix text the expression was compiled from.
func (e *Expression) Source() string {
	return e.source
}

// Tokens returns a copy of the RPN token sequence.
func (e *Expression) Tokens() []Token {
	return append([]Token(nil), e.rpn...)
}

// String returns the RPN form as a comma delimited token list.
func (e *Expression) String() string {
	parts := make([]string, len(e.rpn))
	for i, tok := range e.rpn {
		parts[i] = tok.Text
	}
	return strings.Join(parts, ",")
}

// toPostfix reorders tokens with the shunting-yard algorithm.
func toPostfix(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	var stack []Token

	top := func() *Token {
		if len(stack) == 0 {
			return nil
		}
		return &stack[len(stack)-1]
	}
	pop := func() Token {
		tok := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return tok
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case Number, Constant:
			output = append(output, tok)

		case Function, LeftParen:
			stack = append(stack, tok)

		case Comma:
			for top() != nil && top().Kind != LeftParen {
				output = append(output, pop())
			}
			if top() == nil {
				return nil, newParseError(tok.Pos, "comma outside of a parenthesized group")
			}

		case Operator:
			cur := operators[tok.Text]
			for t := top(); t != nil && t.Kind != LeftParen; t = top() {
				if t.Kind != Function {
					prev := operators[t.Text]
					if prev.precedence < cur.precedence ||
						(prev.precedence == cur.precedence && cur.rightAssoc) {
						break
					}
				}
				output = append(output, pop())
			}
			stack = append(stack, tok)

		case RightParen:
			for top() != nil && top().Kind != LeftParen {
				output = append(output, pop())
			}
			if top() == nil {
				return nil, newParseError(tok.Pos, "unmatched )")
			}
			pop()
			if t := top(); t != nil && t.Kind == Function {
				output = append(output, pop())
			}
		}
	}

	for len(stack) > 0 {
		tok := pop()
		if tok.Kind == LeftParen {
			return nil, newParseError(tok.Pos, "unmatched (")
		}
		output = append(output, tok)
	}

	return output, nil
}

// Evaluate reduces the RPN tokens to a single value. Trig functions
// interpret their argument according to mode.
func (e *Expression) Evaluate(mode AngleMode) (float64, error) {
	stack := make([]float64, 0, len(e.rpn))

	for _, tok := range e.rpn {
		switch tok.Kind {
		case Number:
			stack = append(stack, tok.Value)

		case Constant:
			stack = append(stack, constants[tok.Text])

		case Function:
			if len(stack) < 1 {
				return 0, newEvaluationError("%s requires an argument", tok.Text)
			}
			arg := stack[len(stack)-1]
			stack[len(stack)-1] = call(tok.Text, arg, mode)

		case Operator:
			if len(stack) < 2 {
				return 0, newEvaluationError("operator %s at offset %d requires two operands", tok.Text, tok.Pos)
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			stack = append(stack, operators[tok.Text].apply(a, b))
		}
	}

	switch len(stack) {
	case 1:
		return stack[0], nil
	case 0:
		return 0, newEvaluationError("empty expression")
	default:
		return 0, newEvaluationError("expression leaves %d values, want 1", len(stack))
	}
}
