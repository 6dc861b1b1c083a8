package rpncalc

import (
	"errors"
	"strconv"
)

// ErrorKind classifies input errors.
type ErrorKind int8

const (
	// NoError is the kind of nil and of errors that did not come from input.
	NoError ErrorKind = iota
	// UnrecognizedCharacter is a rune or literal that matches no token.
	UnrecognizedCharacter
	// UnbalancedGrouping is a mismatched or unclosed bracket.
	UnbalancedGrouping
	// MalformedExpression is a postfix sequence that does not reduce to one
	// value.
	MalformedExpression
	// DivisionByZero is a division with a zero divisor.
	DivisionByZero
	// NotANumber is a NaN result.
	NotANumber
	// RedundantOperatorDropped is a non-fatal diagnostic for a repeated
	// operator that the tokenizer dropped.
	RedundantOperatorDropped
	// ExpressionTooLong is an expression over the calculator's length limit.
	ExpressionTooLong
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=ErrorKind
//go:generate go mod tidy

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the column of the token that caused the error, counting
	// runes of the normalized expression from 1. It is 0 for errors that
	// concern the expression as a whole.
	Pos() int
	// Kind returns the class of the error.
	Kind() ErrorKind
}

// KindOf returns the kind of the first InputError in err's chain, or NoError.
func KindOf(err error) ErrorKind {
	var e InputError
	if errors.As(err, &e) {
		return e.Kind()
	}
	return NoError
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Token is the type of token the lexer was scanning: "number" or the
	// empty string if a token kind hadn't been decided. Tokens built by hand
	// and passed to ToPostfix or Evaluate may also be rejected as "token",
	// "operator" or "function".
	Token string
	// Col is the column of the start of Text.
	Col int
}

func (err *LexError) Error() string {
	if err.Token == "" {
		return errpos(err.Col, "unrecognized character "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Token+" "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int        { return err.Col }
func (err *LexError) Kind() ErrorKind { return UnrecognizedCharacter }

// LengthError indicates an expression longer than the calculator allows.
type LengthError struct {
	// Len is the length of the normalized expression in runes.
	Len int
	// Max is the configured limit.
	Max int
}

func (err *LengthError) Error() string {
	return "expression of " + strconv.Itoa(err.Len) + " characters exceeds limit of " + strconv.Itoa(err.Max)
}

func (err *LengthError) Pos() int        { return 0 }
func (err *LengthError) Kind() ErrorKind { return ExpressionTooLong }

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the offending bracket.
	Col int
	// Left is the opening bracket.
	Left string
	// Right is the mismatched closing bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int        { return err.Col }
func (err *BracketError) Kind() ErrorKind { return UnbalancedGrouping }

// StackError indicates a postfix sequence with too few operands for an
// operator, or too many values left at the end.
type StackError struct {
	// Col is the position of the operator that underflowed, or of the last
	// token if values were left over.
	Col int
	// Op is the operator that underflowed. It is empty for leftovers.
	Op string
	// Have is the number of values on the stack.
	Have int
	// Need is the number of values required.
	Need int
}

func (err *StackError) Error() string {
	if err.Op == "" {
		if err.Have == 0 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "malformed expression: "+strconv.Itoa(err.Have)+" values left over")
	}
	return errpos(err.Col, "malformed expression: "+strconv.Quote(err.Op)+" needs "+strconv.Itoa(err.Need)+" operands, have "+strconv.Itoa(err.Have))
}

func (err *StackError) Pos() int        { return err.Col }
func (err *StackError) Kind() ErrorKind { return MalformedExpression }

// DivisionByZeroError indicates a division by exactly zero.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
	// X is the dividend.
	X float64
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero: "+fmtfloat(err.X)+" / 0")
}

func (err *DivisionByZeroError) Pos() int        { return err.Col }
func (err *DivisionByZeroError) Kind() ErrorKind { return DivisionByZero }

// NaNError indicates an operation that produced NaN, typically a function
// argument outside its domain.
type NaNError struct {
	// Col is the position of the operator.
	Col int
	// Func is the operator or function symbol.
	Func string
	// Args are the operands, in source order.
	Args []float64
	// Value is the NaN result.
	Value float64
}

func (err *NaNError) Error() string {
	if len(err.Args) == 2 {
		return errpos(err.Col, "not a number: "+fmtfloat(err.Args[0])+" "+err.Func+" "+fmtfloat(err.Args[1]))
	}
	s := ""
	for i, x := range err.Args {
		if i > 0 {
			s += ", "
		}
		s += fmtfloat(x)
	}
	return errpos(err.Col, "not a number: "+err.Func+"("+s+")")
}

func (err *NaNError) Pos() int        { return err.Col }
func (err *NaNError) Kind() ErrorKind { return NotANumber }

// RedundantOperatorError reports a repeated operator that the tokenizer
// dropped. It is a diagnostic; evaluation continues past it.
type RedundantOperatorError struct {
	// Col is the position of the dropped operator.
	Col int
	// Operator is the dropped operator.
	Operator string
}

func (err *RedundantOperatorError) Error() string {
	return errpos(err.Col, "dropped redundant operator "+strconv.Quote(err.Operator))
}

func (err *RedundantOperatorError) Pos() int        { return err.Col }
func (err *RedundantOperatorError) Kind() ErrorKind { return RedundantOperatorDropped }

func fmtfloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*LengthError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*StackError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*NaNError)(nil)
	_ InputError = (*RedundantOperatorError)(nil)
)
