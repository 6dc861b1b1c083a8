package rpncalc

// ToPostfix reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. Operators are ordered purely by the precedence and
// associativity in their catalog entries. The result contains no brackets;
// unbalanced or mismatched brackets produce a *BracketError. The tokens are
// normally the output of Tokenize; a token of no known kind is a *LexError.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	var stack []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case Number:
			out = append(out, tok)
		case Op, Func:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if !top.IsOperator() || !tok.Op.binds(top.Op) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case LeftGroup:
			stack = append(stack, tok)
		case RightGroup:
			for {
				if len(stack) == 0 {
					return nil, &BracketError{Col: tok.Pos, Right: tok.Group.Close()}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == LeftGroup {
					if top.Group != tok.Group {
						return nil, &BracketError{Col: tok.Pos, Left: top.Group.Open(), Right: tok.Group.Close()}
					}
					break
				}
				out = append(out, top)
			}
		default:
			return nil, &LexError{Col: tok.Pos, Text: tok.Kind.String(), Token: "token"}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.IsGroup() {
			return nil, &BracketError{Col: top.Pos, Left: top.Group.Open()}
		}
		out = append(out, top)
	}
	for _, tok := range out {
		switch tok.Kind {
		case LeftGroup:
			return nil, &BracketError{Col: tok.Pos, Left: tok.Group.Open()}
		case RightGroup:
			return nil, &BracketError{Col: tok.Pos, Right: tok.Group.Close()}
		}
	}
	return out, nil
}
