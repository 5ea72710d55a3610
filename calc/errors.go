package calc

import "fmt"

// ParseError is returned when an expression cannot be tokenized or its
// parentheses and commas do not balance.
type ParseError struct {
	Pos     int // byte offset into the expression, -1 when not tied to one
	Message string
}

// Error returns the error string representation for ParseError errors.
func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return "parse error: " + e.Message
	}
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Message)
}

func newParseError(pos int, format string, a ...interface{}) *ParseError {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, a...)}
}

// EvaluationError is returned when a well-formed expression does not reduce
// to a single value, for instance when an operator is missing an operand.
type EvaluationError struct {
	Message string
}

// Error returns the error string representation for EvaluationError errors.
func (e *EvaluationError) Error() string {
	return "evaluation error: " + e.Message
}

func newEvaluationError(format string, a ...interface{}) *EvaluationError {
	return &EvaluationError{Message: fmt.Sprintf(format, a...)}
}
