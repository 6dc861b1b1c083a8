package rpncalc

import (
	"strings"
	"unicode"
)

// DefaultMaxLength is the default limit on the length of a normalized
// expression, in runes.
const DefaultMaxLength = 4096

// DefaultPrec is the default working precision, in bits, of the functions
// computed with extended precision before rounding to float64.
const DefaultPrec = 64

// Calculator evaluates expressions. A Calculator is immutable once created and
// is safe for concurrent use.
type Calculator struct {
	maxlen int
	prec   uint
	diag   func(*RedundantOperatorError)
}

// Option is an option used when creating a calculator.
type Option interface {
	calcOption()
}

type (
	maxlenopt int
	precopt   uint
	diagopt   func(*RedundantOperatorError)
)

func (maxlenopt) calcOption() {}
func (precopt) calcOption()   {}
func (diagopt) calcOption()   {}

// MaxLength limits the length of expressions after normalization. A limit of
// zero or less disables the check.
func MaxLength(n int) Option {
	return maxlenopt(n)
}

// Prec sets the working precision of extended-precision functions. Values
// below 64 are raised to 64.
func Prec(prec uint) Option {
	return precopt(prec)
}

// OnDiagnostic sets a function to receive non-fatal diagnostics from the
// tokenizer. It may be called concurrently if the calculator is.
func OnDiagnostic(f func(*RedundantOperatorError)) Option {
	return diagopt(f)
}

// New creates a calculator. Later options override earlier ones.
func New(opts ...Option) *Calculator {
	c := Calculator{maxlen: DefaultMaxLength, prec: DefaultPrec}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case maxlenopt:
			c.maxlen = int(opt)
		case precopt:
			c.prec = uint(opt)
			if c.prec < DefaultPrec {
				c.prec = DefaultPrec
			}
		case diagopt:
			c.diag = opt
		default:
			panic("rpncalc: unknown option type")
		}
	}
	return &c
}

// MaxLength returns the expression length limit, or a value no greater than
// zero if there is none.
func (c *Calculator) MaxLength() int {
	return c.maxlen
}

// Prec returns the working precision of extended-precision functions.
func (c *Calculator) Prec() uint {
	return c.prec
}

// Normalize lowercases an expression and removes all whitespace from it.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Eval normalizes, tokenizes, converts and evaluates an expression, stopping
// at the first error. If the error is a *NaNError, the result is the NaN.
func (c *Calculator) Eval(raw string) (float64, error) {
	toks, err := c.Tokenize(Normalize(raw))
	if err != nil {
		return 0, err
	}
	postfix, err := ToPostfix(toks)
	if err != nil {
		return 0, err
	}
	return c.Evaluate(postfix)
}

// EvalString is a shortcut to evaluate a string expression with a new
// calculator.
func EvalString(raw string, opts ...Option) (float64, error) {
	return New(opts...).Eval(raw)
}
