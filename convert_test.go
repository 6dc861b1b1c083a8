package rpncalc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/rpncalc"
)

func postfix(t *testing.T, src string) ([]rpncalc.Token, []rpncalc.Token, error) {
	t.Helper()
	toks, err := rpncalc.New().Tokenize(src)
	require.NoError(t, err, "tokenizing %q", src)
	out, err := rpncalc.ToPostfix(toks)
	return toks, out, err
}

func TestToPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"add", "3+4", "3 4 +"},
		{"prec", "3+4*2", "3 4 2 * +"},
		{"prec-left", "3*4+2", "3 4 * 2 +"},
		{"left-assoc", "1-2-3", "1 2 - 3 -"},
		{"left-assoc-div", "8/4/2", "8 4 / 2 /"},
		{"right-assoc", "2^3^2", "2 3 2 ^ ^"},
		{"paren", "(1+2)*3", "1 2 + 3 *"},
		{"kinds", "{[(1)]}", "1"},
		{"mixed", "[1+2]*{3-4}", "1 2 + 3 4 - *"},
		{"neg-num", "2*-3", "2 -3 *"},
		{"func", "sin(0)+1", "0 sin 1 +"},
		{"func-binds", "sqrt16/4", "16 sqrt 4 /"},
		{"func-chain", "sinsqrt0", "0 sqrt sin"},
		{"neg-group", "-(3+4)", "3 4 + neg"},
		{"pow-neg-group", "2^-(1)", "2 1 neg ^"},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, out, err := postfix(t, c.src)
			require.NoError(t, err)
			require.Equal(t, c.want, rpncalc.FormatTokens(out))
		})
	}
}

func TestToPostfixBrackets(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  *rpncalc.BracketError
	}{
		{"unclosed", "(3+4", &rpncalc.BracketError{Col: 1, Left: "("}},
		{"unclosed-inner", "((3+4)", &rpncalc.BracketError{Col: 1, Left: "("}},
		{"unopened", "3+4)", &rpncalc.BracketError{Col: 4, Right: ")"}},
		{"unopened-brace", "}", &rpncalc.BracketError{Col: 1, Right: "}"}},
		{"mismatched", "(3+4}", &rpncalc.BracketError{Col: 5, Left: "(", Right: "}"}},
		{"crossed", "[(1])", &rpncalc.BracketError{Col: 4, Left: "(", Right: "]"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, out, err := postfix(t, c.src)
			require.Nil(t, out)
			require.Equal(t, c.err, err)
			require.Equal(t, rpncalc.UnbalancedGrouping, rpncalc.KindOf(err))
		})
	}
}

func TestToPostfixConservesTokens(t *testing.T) {
	srcs := []string{
		"(1+2)",
		"((1+2)*(3-4))",
		"{[1/(2^3)]-(4*5)}",
		"(sin(0)+(cos(1)*ln(2)))",
		"((((1))))",
	}
	for _, src := range srcs {
		toks, out, err := postfix(t, src)
		require.NoError(t, err)
		groups := 0
		for _, tok := range toks {
			if tok.IsGroup() {
				groups++
			}
		}
		require.Len(t, out, len(toks)-groups, "%q", src)
		for _, tok := range out {
			require.False(t, tok.IsGroup(), "%q: bracket %v in output", src, tok)
		}
	}
}
