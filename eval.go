package rpncalc

import "math"

// Evaluate reduces a postfix token sequence to a single value. Operands are
// kept on a stack local to the call, so Evaluate may run concurrently and
// always gives the same result for the same sequence.
//
// If any operation produces NaN, the result is that NaN along with a
// *NaNError. Other errors give a zero result. Operators and functions which
// are not in the catalog, and brackets, are a *LexError.
func (c *Calculator) Evaluate(postfix []Token) (float64, error) {
	stack := make([]float64, 0, len(postfix)/2+1)
	for _, tok := range postfix {
		switch tok.Kind {
		case Number:
			stack = append(stack, tok.Value)
		case Op:
			if !catalogued(tok) {
				return 0, &LexError{Col: tok.Pos, Text: tok.Op.Symbol, Token: "operator"}
			}
			if len(stack) < 2 {
				return 0, &StackError{Col: tok.Pos, Op: tok.Op.Symbol, Have: len(stack), Need: 2}
			}
			a, b := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			if tok.Op.Symbol == "/" && b == 0 {
				return 0, &DivisionByZeroError{Col: tok.Pos, X: a}
			}
			r := c.binary(tok.Op.Symbol, a, b)
			if math.IsNaN(r) {
				return r, &NaNError{Col: tok.Pos, Func: tok.Op.Symbol, Args: []float64{a, b}, Value: r}
			}
			stack = append(stack, r)
		case Func:
			if !catalogued(tok) {
				return 0, &LexError{Col: tok.Pos, Text: tok.Op.Symbol, Token: "function"}
			}
			if len(stack) < 1 {
				return 0, &StackError{Col: tok.Pos, Op: symbol(tok.Op), Have: 0, Need: 1}
			}
			x := stack[len(stack)-1]
			r := c.unary(tok.Op.Symbol, x)
			if math.IsNaN(r) {
				return r, &NaNError{Col: tok.Pos, Func: symbol(tok.Op), Args: []float64{x}, Value: r}
			}
			stack[len(stack)-1] = r
		default:
			// Brackets never survive ToPostfix.
			return 0, &LexError{Col: tok.Pos, Text: tok.Kind.String(), Token: "token"}
		}
	}
	if len(stack) != 1 {
		col := 0
		if len(postfix) > 0 {
			col = postfix[len(postfix)-1].Pos
		}
		return 0, &StackError{Col: col, Have: len(stack), Need: 1}
	}
	return stack[0], nil
}

// symbol returns the source text of an operator for error messages.
func symbol(op Operator) string {
	if op.Symbol == negSymbol {
		return "-"
	}
	return op.Symbol
}
