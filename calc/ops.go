package calc

import (
	"fmt"
	"math"
	"strings"
)

// AngleMode selects the unit trig functions interpret their argument in.
type AngleMode int

const (
	Radians AngleMode = iota
	Degrees
)

// String returns "radians" or "degrees".
func (m AngleMode) String() string {
	if m == Degrees {
		return "degrees"
	}
	return "radians"
}

// ParseAngleMode accepts "deg", "degrees", "rad" and "radians" in any case.
// The empty string selects Radians.
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deg", "degree", "degrees":
		return Degrees, nil
	case "rad", "radian", "radians", "":
		return Radians, nil
	}
	return Radians, fmt.Errorf("unknown angle mode %q", s)
}

// snapEpsilon is the distance within which function results snap to -1, 0 or 1.
const snapEpsilon = 1e-14

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

type function struct {
	fn   func(float64) float64
	trig bool // argument is converted from degrees in Degrees mode
}

var functions = map[string]function{
	"sin":  {fn: math.Sin, trig: true},
	"cos":  {fn: math.Cos, trig: true},
	"tan":  {fn: math.Tan, trig: true},
	"log":  {fn: math.Log10},
	"ln":   {fn: math.Log},
	"sqrt": {fn: math.Sqrt},
}

type operator struct {
	precedence int
	rightAssoc bool
	apply      func(a, b float64) float64
}

var operators = map[string]operator{
	"+": {precedence: 1, apply: func(a, b float64) float64 { return a + b }},
	"-": {precedence: 1, apply: func(a, b float64) float64 { return a - b }},
	"*": {precedence: 2, apply: func(a, b float64) float64 { return a * b }},
	"/": {precedence: 2, apply: func(a, b float64) float64 { return a / b }},
	"^": {precedence: 3, rightAssoc: true, apply: math.Pow},
}

func isConstant(name string) bool {
	_, ok := constants[name]
	return ok
}

func isFunction(name string) bool {
	_, ok := functions[name]
	return ok
}

// Functions returns the names of the supported functions.
func Functions() []string {
	return []string{"sin", "cos", "tan", "log", "ln", "sqrt"}
}

// Constants returns the names of the supported constants.
func Constants() []string {
	return []string{"pi", "e"}
}

// call applies a named function, honouring the angle mode for trig
// functions and snapping near-integer results.
func call(name string, arg float64, mode AngleMode) float64 {
	f := functions[name]
	if f.trig && mode == Degrees {
		arg = arg * math.Pi / 180
	}
	return snap(f.fn(arg))
}

// snap replaces values within snapEpsilon of -1, 0 or 1 with the exact value.
func snap(v float64) float64 {
	for _, target := range [...]float64{-1, 0, 1} {
		if math.Abs(v-target) < snapEpsilon {
			return target
		}
	}
	return v
}
