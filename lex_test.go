package rpncalc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func num(v float64, pos int) Token { return Token{Kind: Number, Value: v, Pos: pos} }
func op(s string, pos int) Token   { return Token{Kind: Op, Op: operators[s], Pos: pos} }
func fn(s string, pos int) Token   { return Token{Kind: Func, Op: functions[s], Pos: pos} }

func lgroup(g GroupKind, pos int) Token { return Token{Kind: LeftGroup, Group: g, Pos: pos} }
func rgroup(g GroupKind, pos int) Token { return Token{Kind: RightGroup, Group: g, Pos: pos} }

func TestTokenize(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []Token
		diags  []int
	}{
		{"empty", "", nil, nil},
		// numbers
		{"zero", "0", []Token{num(0, 1)}, nil},
		{"int", "9876543210", []Token{num(9876543210, 1)}, nil},
		{"real", "1.5", []Token{num(1.5, 1)}, nil},
		{"leading-dot", ".5", []Token{num(0.5, 1)}, nil},
		{"trailing-dot", "2.", []Token{num(2, 1)}, nil},
		// operators
		{"add", "3+4", []Token{num(3, 1), op("+", 2), num(4, 3)}, nil},
		{"all", "1+2-3*4/5^6", []Token{
			num(1, 1), op("+", 2), num(2, 3), op("-", 4), num(3, 5),
			op("*", 6), num(4, 7), op("/", 8), num(5, 9), op("^", 10), num(6, 11),
		}, nil},
		// unary minus
		{"neg-first", "-5+3", []Token{num(-5, 1), op("+", 3), num(3, 4)}, nil},
		{"neg-after-op", "3*-2", []Token{num(3, 1), op("*", 2), num(-2, 3)}, nil},
		{"neg-after-open", "(-2)", []Token{lgroup(Paren, 1), num(-2, 2), rgroup(Paren, 4)}, nil},
		{"neg-dot", "1+-.5", []Token{num(1, 1), op("+", 2), num(-0.5, 3)}, nil},
		{"neg-after-func", "sqrt-4", []Token{fn("sqrt", 1), num(-4, 5)}, nil},
		{"sub", "3-2", []Token{num(3, 1), op("-", 2), num(2, 3)}, nil},
		{"sub-after-close", "(3)-2", []Token{lgroup(Paren, 1), num(3, 2), rgroup(Paren, 3), op("-", 4), num(2, 5)}, nil},
		{"neg-group", "-(1)", []Token{fn(negSymbol, 1), lgroup(Paren, 2), num(1, 3), rgroup(Paren, 4)}, nil},
		{"neg-func", "2*-sin0", []Token{num(2, 1), op("*", 2), fn(negSymbol, 3), fn("sin", 4), num(0, 7)}, nil},
		// repeated operators
		{"double-minus", "3--2", []Token{num(3, 1), op("+", 2), num(2, 4)}, nil},
		{"triple-minus", "3---2", []Token{num(3, 1), op("+", 2), num(-2, 4)}, nil},
		{"double-neg", "--5", []Token{num(5, 3)}, nil},
		{"double-plus", "3++2", []Token{num(3, 1), op("+", 2), num(2, 4)}, []int{3}},
		{"triple-plus", "3+++2", []Token{num(3, 1), op("+", 2), num(2, 5)}, []int{3, 4}},
		{"double-times", "3**2", []Token{num(3, 1), op("*", 2), num(2, 4)}, []int{3}},
		{"plus-minus", "3+-2", []Token{num(3, 1), op("+", 2), num(-2, 3)}, nil},
		{"minus-plus", "3-+2", []Token{num(3, 1), op("-", 2), op("+", 3), num(2, 4)}, nil},
		{"double-paren", "((1))", []Token{lgroup(Paren, 1), lgroup(Paren, 2), num(1, 3), rgroup(Paren, 4), rgroup(Paren, 5)}, nil},
		// brackets
		{"braces", "{1}", []Token{lgroup(Brace, 1), num(1, 2), rgroup(Brace, 3)}, nil},
		{"brackets", "[1]", []Token{lgroup(Bracket, 1), num(1, 2), rgroup(Bracket, 3)}, nil},
		{"mismatched", "(1]", []Token{lgroup(Paren, 1), num(1, 2), rgroup(Bracket, 3)}, nil},
		// functions
		{"sqrt", "sqrt4", []Token{fn("sqrt", 1), num(4, 5)}, nil},
		{"arcsin", "arcsin(1)", []Token{fn("arcsin", 1), lgroup(Paren, 7), num(1, 8), rgroup(Paren, 9)}, nil},
		{"arcctg", "arcctg1", []Token{fn("arcctg", 1), num(1, 7)}, nil},
		{"cos-cot", "cos0*cot1", []Token{fn("cos", 1), num(0, 4), op("*", 5), fn("cot", 6), num(1, 9)}, nil},
		{"ln-log", "ln(1)+log(10)", []Token{
			fn("ln", 1), lgroup(Paren, 3), num(1, 4), rgroup(Paren, 5), op("+", 6),
			fn("log", 7), lgroup(Paren, 10), num(10, 11), rgroup(Paren, 13),
		}, nil},
		{"nested", "sinarccos1", []Token{fn("sin", 1), fn("arccos", 4), num(1, 10)}, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var diags []int
			calc := New(OnDiagnostic(func(err *RedundantOperatorError) {
				diags = append(diags, err.Col)
			}))
			toks, err := calc.Tokenize(c.src)
			require.NoError(t, err)
			require.Equal(t, c.tokens, toks)
			require.Equal(t, c.diags, diags)
		})
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  *LexError
	}{
		{"symbol", "$", &LexError{Text: "$", Col: 1}},
		{"after-num", "2x", &LexError{Text: "x", Col: 2}},
		{"space", "3 +4", &LexError{Text: " ", Col: 2}},
		{"upper", "SIN0", &LexError{Text: "S", Col: 1}},
		{"partial-func", "si(1)", &LexError{Text: "s", Col: 1}},
		{"short-func", "sqr", &LexError{Text: "s", Col: 1}},
		{"two-dots", "1.2.3", &LexError{Text: "1.2.", Token: "number", Col: 1}},
		{"lone-dot", "1+.", &LexError{Text: ".", Token: "number", Col: 3}},
		{"neg-dot", "-.", &LexError{Text: "-.", Token: "number", Col: 1}},
		{"overflow", "1" + strings.Repeat("0", 400), &LexError{Text: "1" + strings.Repeat("0", 400), Token: "number", Col: 1}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := New().Tokenize(c.src)
			require.Nil(t, toks)
			require.Equal(t, c.err, err)
			require.Equal(t, UnrecognizedCharacter, KindOf(err))
		})
	}
}

func TestTokenizeLength(t *testing.T) {
	src := strings.Repeat("1", 10)
	_, err := New(MaxLength(9)).Tokenize(src)
	require.Equal(t, &LengthError{Len: 10, Max: 9}, err)
	require.Equal(t, ExpressionTooLong, KindOf(err))

	toks, err := New(MaxLength(10)).Tokenize(src)
	require.NoError(t, err)
	require.Len(t, toks, 1)

	_, err = New(MaxLength(0)).Tokenize(strings.Repeat("1+", DefaultMaxLength) + "1")
	require.NoError(t, err)
}

func TestFuncNamesOrder(t *testing.T) {
	require.Len(t, funcnames, 11)
	for i := 1; i < len(funcnames); i++ {
		require.GreaterOrEqual(t, len(funcnames[i-1]), len(funcnames[i]), "%v", funcnames)
	}
	require.NotContains(t, funcnames, negSymbol)
}

func TestKindStrings(t *testing.T) {
	require.Equal(t, "None", tokenNone.String())
	require.Equal(t, "RightGroup", RightGroup.String())
	require.Equal(t, "TokenKind(9)", TokenKind(9).String())
	require.Equal(t, "ExpressionTooLong", ExpressionTooLong.String())
	require.Equal(t, "ErrorKind(-1)", ErrorKind(-1).String())
	for k, pair := range []string{"()", "{}", "[]"} {
		g := GroupKind(k)
		require.Equal(t, pair, g.Open()+g.Close())
	}
	require.Equal(t, Bracket, GroupKind(2))
}
