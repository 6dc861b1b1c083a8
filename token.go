package rpncalc

import (
	"strconv"
	"strings"
)

// TokenKind is the type of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// Number is a numeric literal, possibly negative.
	Number
	// Op is a binary operator.
	Op
	// Func is a unary function.
	Func
	// LeftGroup is an open bracket, e.g. (.
	LeftGroup
	// RightGroup is a close bracket, e.g. ).
	RightGroup
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=token
//go:generate go mod tidy

// GroupKind is the kind of a bracket pair.
type GroupKind int8

const (
	// Paren is a pair of parentheses, ( and ).
	Paren GroupKind = iota
	// Brace is a pair of curly braces, { and }.
	Brace
	// Bracket is a pair of square brackets, [ and ].
	Bracket
)

// OpenBrackets and CloseBrackets contain the runes which group expressions.
// The bracket in byte position k of OpenBrackets is closed by the bracket in
// byte position k of CloseBrackets, and both are GroupKind(k).
const (
	OpenBrackets  = "({["
	CloseBrackets = ")}]"
)

// Open returns the opening bracket of the kind.
func (g GroupKind) Open() string {
	return OpenBrackets[g : g+1]
}

// Close returns the closing bracket of the kind.
func (g GroupKind) Close() string {
	return CloseBrackets[g : g+1]
}

// Token is a lexical token of an expression. Tokens live only as long as one
// evaluation.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Value is the value of a Number token.
	Value float64
	// Op is the operator of an Op or Func token.
	Op Operator
	// Group is the bracket kind of a LeftGroup or RightGroup token.
	Group GroupKind
	// Pos is the column of the first rune of the token, starting from 1.
	Pos int
}

// IsOperator reports whether the token is a binary operator or a function.
func (t Token) IsOperator() bool {
	return t.Kind == Op || t.Kind == Func
}

// IsGroup reports whether the token is a bracket.
func (t Token) IsGroup() bool {
	return t.Kind == LeftGroup || t.Kind == RightGroup
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case Op, Func:
		return t.Op.Symbol
	case LeftGroup:
		return t.Group.Open()
	case RightGroup:
		return t.Group.Close()
	default:
		return "$"
	}
}

// FormatTokens renders a token slice as space-separated text, e.g. "3 4 2 * +"
// for a postfix sequence.
func FormatTokens(toks []Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
