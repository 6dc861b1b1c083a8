package rpncalc

import (
	"strconv"
	"strings"
)

// OperatorRunes contains the runes which are single-character operators.
const OperatorRunes = "+-*/^"

type lexer struct {
	src  []rune
	i    int
	toks []Token
	// num is the pending numeric literal, begun at column numcol.
	num    strings.Builder
	numcol int
	dot    bool
	// run is the operator rune consumed immediately before the current one,
	// if the previous token still reflects it. It is 0 otherwise.
	run  rune
	diag func(*RedundantOperatorError)
}

// Tokenize scans a normalized expression into tokens. The expression must
// already be lowercase with whitespace removed; see Normalize. Either the
// whole expression is tokenized or the result is nil with an error.
func (c *Calculator) Tokenize(expr string) ([]Token, error) {
	l := lexer{src: []rune(expr), diag: c.diag}
	if c.maxlen > 0 && len(l.src) > c.maxlen {
		return nil, &LengthError{Len: len(l.src), Max: c.maxlen}
	}
	for l.i < len(l.src) {
		if err := l.next(); err != nil {
			return nil, err
		}
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

// next consumes one rune, or one function name.
func (l *lexer) next() error {
	r := l.src[l.i]
	col := l.i + 1
	if isnum(r) {
		l.run = 0
		l.i++
		return l.digit(r, col)
	}
	// Anything else ends a literal.
	if err := l.flush(); err != nil {
		return err
	}
	if strings.ContainsRune(OperatorRunes, r) {
		l.operator(r, col)
		l.i++
		return nil
	}
	l.run = 0
	if k := strings.IndexRune(OpenBrackets, r); k >= 0 {
		l.emit(Token{Kind: LeftGroup, Group: GroupKind(k), Pos: col})
		l.i++
		return nil
	}
	if k := strings.IndexRune(CloseBrackets, r); k >= 0 {
		l.emit(Token{Kind: RightGroup, Group: GroupKind(k), Pos: col})
		l.i++
		return nil
	}
	for _, name := range funcnames {
		if hasprefix(l.src[l.i:], name) {
			l.emit(Token{Kind: Func, Op: functions[name], Pos: col})
			l.i += len(name)
			return nil
		}
	}
	return &LexError{Text: string(r), Col: col}
}

func (l *lexer) digit(r rune, col int) error {
	if l.num.Len() == 0 {
		l.numcol = col
		l.dot = false
	}
	if r == '.' {
		if l.dot {
			return &LexError{Text: l.num.String() + ".", Token: "number", Col: l.numcol}
		}
		l.dot = true
	}
	l.num.WriteRune(r)
	return nil
}

// flush emits the pending numeric literal, if any.
func (l *lexer) flush() error {
	if l.num.Len() == 0 {
		return nil
	}
	text := l.num.String()
	l.num.Reset()
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// A lone dot, or a literal too large for a float64.
		return &LexError{Text: text, Token: "number", Col: l.numcol}
	}
	l.emit(Token{Kind: Number, Value: v, Pos: l.numcol})
	return nil
}

func (l *lexer) operator(r rune, col int) {
	if r == l.run {
		l.repeat(r, col)
		return
	}
	l.run = r
	if r == '-' && l.prefix() {
		if l.i+1 < len(l.src) && isnum(l.src[l.i+1]) {
			// Negative literal.
			l.run = 0
			l.numcol = col
			l.dot = false
			l.num.WriteRune(r)
			return
		}
		l.emit(Token{Kind: Func, Op: functions[negSymbol], Pos: col})
		return
	}
	l.emit(Token{Kind: Op, Op: operators[string(r)], Pos: col})
}

// repeat handles an operator identical to the one just before it. A doubled
// minus cancels: binary minus becomes plus and prefix negation disappears.
// Other repeats are dropped with a diagnostic.
func (l *lexer) repeat(r rune, col int) {
	if r == '-' {
		l.run = 0
		last := len(l.toks) - 1
		if l.toks[last].Kind == Func {
			l.toks = l.toks[:last]
			return
		}
		l.toks[last].Op = operators["+"]
		return
	}
	if l.diag != nil {
		l.diag(&RedundantOperatorError{Col: col, Operator: string(r)})
	}
}

// prefix reports whether the next token is in prefix position, i.e. whether
// a minus there is unary.
func (l *lexer) prefix() bool {
	if len(l.toks) == 0 {
		return true
	}
	last := l.toks[len(l.toks)-1]
	return last.IsOperator() || last.Kind == LeftGroup
}

func (l *lexer) emit(tok Token) {
	l.toks = append(l.toks, tok)
}

func isnum(r rune) bool {
	return '0' <= r && r <= '9' || r == '.'
}

func hasprefix(src []rune, s string) bool {
	if len(src) < len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if src[i] != rune(s[i]) {
			return false
		}
	}
	return true
}
