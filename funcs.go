package rpncalc

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// guard is the number of extra bits carried by extended-precision functions
// beyond the calculator's precision.
const guard = 32

// maxExp2 bounds the binary exponent of a power worth computing with bigfloat.
// It is a little past the range of float64 including subnormals.
const maxExp2 = 1100

// unary applies the function op to x.
func (c *Calculator) unary(op string, x float64) float64 {
	switch op {
	case negSymbol:
		return -x
	case "sqrt":
		return math.Sqrt(x)
	case "sin":
		return math.Sin(x)
	case "cos":
		return math.Cos(x)
	case "tan":
		return math.Tan(x)
	case "cot":
		return 1 / math.Tan(x)
	case "arcsin":
		return math.Asin(x)
	case "arccos":
		return math.Acos(x)
	case "arctan":
		return math.Atan(x)
	case "arcctg":
		return math.Pi/2 - math.Atan(x)
	case "ln":
		return c.ln(x)
	case "log":
		return c.log10(x)
	default:
		panic("rpncalc: unknown function " + op)
	}
}

// binary applies the operator op to a and b. Division by zero is the caller's
// responsibility.
func (c *Calculator) binary(op string, a, b float64) float64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	case "/":
		return a / b
	case "^":
		return c.pow(a, b)
	default:
		panic("rpncalc: unknown operator " + op)
	}
}

// finite reports whether x is neither infinite nor NaN.
func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

func (c *Calculator) bigf(x float64) *big.Float {
	return new(big.Float).SetPrec(c.prec + guard).SetFloat64(x)
}

func (c *Calculator) ln(x float64) float64 {
	if x <= 0 || !finite(x) {
		return math.Log(x)
	}
	r, _ := bigfloat.Log(c.bigf(x), c.bigf(x)).Float64()
	return r
}

func (c *Calculator) log10(x float64) float64 {
	if x <= 0 || !finite(x) {
		return math.Log10(x)
	}
	n := bigfloat.Log(c.bigf(x), c.bigf(x))
	d := bigfloat.Log(c.bigf(10), c.bigf(10))
	r, _ := n.Quo(n, d).Float64()
	return r
}

// pow computes a^b. Positive finite bases go through bigfloat when the result
// is within the range of float64; everything else, including negative bases
// with integer exponents, uses math.Pow.
func (c *Calculator) pow(a, b float64) float64 {
	if a <= 0 || !finite(a) || !finite(b) {
		return math.Pow(a, b)
	}
	if a == 1 {
		return 1
	}
	if b == math.Trunc(b) && math.Abs(b) <= 64 {
		// math.Pow is exact for these when the result is representable.
		return math.Pow(a, b)
	}
	if math.Abs(b*math.Log2(a)) > maxExp2 {
		// The result overflows or underflows float64 at any precision.
		return math.Pow(a, b)
	}
	r, _ := bigfloat.Pow(c.bigf(a), c.bigf(a), c.bigf(b)).Float64()
	return r
}
