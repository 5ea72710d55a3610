// Package calc evaluates single-line infix math expressions.
//
// Expressions use the binary operators + - * / ^, parentheses, the
// constants pi and e, and the single-argument functions sin, cos, tan, log
// (base 10), ln and sqrt:
//
//	v, err := calc.Evaluate("2 * sin(30) + sqrt(16)", calc.Degrees)
//	if err != nil {
//		panic(err)
//	}
//	fmt.Printf("%.2f\n", v) // 5.00
//
// Evaluation happens in two stages. [Compile] tokenizes the input and
// converts it to Reverse Polish Notation with the shunting-yard algorithm;
// [Expression.Evaluate] reduces the RPN tokens on a value stack. A compiled
// Expression can be evaluated repeatedly and concurrently.
//
// Operator precedence from low to high is + and -, then * and /, then ^.
// Only ^ is right-associative, so 2^3^2 is 512. There is no unary minus and
// no implicit multiplication: -3 and 2pi both fail to evaluate.
//
// Arithmetic is IEEE-754 double precision. Division by zero yields an
// infinity or NaN rather than an error.
//
// Function results within 1e-14 of -1, 0 or 1 are snapped to that exact
// value, so cos(90) in degrees is 0 rather than 6.1e-17.
//
// Malformed input fails with a [*ParseError]; a well-formed token stream
// that does not reduce to exactly one value fails with an
// [*EvaluationError].
package calc
