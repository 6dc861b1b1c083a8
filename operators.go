package rpncalc

import "sort"

// Associativity is the grouping direction of operators of equal precedence.
type Associativity byte

const (
	// Left groups a-b-c as (a-b)-c.
	Left Associativity = iota
	// Right groups a^b^c as a^(b^c).
	Right
)

func (a Associativity) String() string {
	if a == Right {
		return "right"
	}
	return "left"
}

// Operator is an entry in the operator catalog. Binary operators and unary
// functions share the type; Arity tells them apart.
type Operator struct {
	// Symbol is the text of the operator, e.g. "+" or "arcsin".
	Symbol string
	// Associativity decides how operators of equal precedence group.
	Associativity Associativity
	// Precedence ranks the operator. Higher binds tighter.
	Precedence int
	// Arity is the number of operands: 2 for operators, 1 for functions.
	Arity int
}

// IsZero reports whether o is the zero Operator, i.e. not in the catalog.
func (o Operator) IsZero() bool {
	return o.Symbol == ""
}

// binds reports whether top must be output before o is pushed.
func (o Operator) binds(top Operator) bool {
	if o.Associativity == Left {
		return o.Precedence <= top.Precedence
	}
	return o.Precedence < top.Precedence
}

// negSymbol is the symbol of prefix negation. It cannot appear in input; the
// lexer produces it for a minus sign in prefix position.
const negSymbol = "neg"

var catalog = []Operator{
	{"+", Left, 0, 2},
	{"-", Left, 0, 2},
	{"/", Left, 5, 2},
	{"*", Left, 5, 2},
	{"^", Right, 10, 2},
	{"sqrt", Right, 10, 1},
	{"sin", Right, 10, 1},
	{"cos", Right, 10, 1},
	{"tan", Right, 10, 1},
	{"cot", Right, 10, 1},
	{"arcsin", Right, 10, 1},
	{"arccos", Right, 10, 1},
	{"arctan", Right, 10, 1},
	{"arcctg", Right, 10, 1},
	{"ln", Right, 10, 1},
	{"log", Right, 10, 1},
	{negSymbol, Right, 10, 1},
}

var (
	operators = make(map[string]Operator)
	functions = make(map[string]Operator)
	// funcnames is the function names in lexing priority order.
	funcnames []string
)

func init() {
	for _, op := range catalog {
		if op.Arity == 2 {
			operators[op.Symbol] = op
			continue
		}
		functions[op.Symbol] = op
		if op.Symbol != negSymbol {
			funcnames = append(funcnames, op.Symbol)
		}
	}
	// Longer names first so that no name is shadowed by a prefix of itself.
	sort.SliceStable(funcnames, func(i, j int) bool {
		return len(funcnames[i]) > len(funcnames[j])
	})
}

// catalogued reports whether an Op or Func token carries an operator exactly
// as the catalog defines it.
func catalogued(tok Token) bool {
	switch tok.Kind {
	case Op:
		op, ok := operators[tok.Op.Symbol]
		return ok && op == tok.Op
	case Func:
		op, ok := functions[tok.Op.Symbol]
		return ok && op == tok.Op
	default:
		return false
	}
}

// LookupOperator returns the binary operator with the given symbol. The
// result is the zero Operator if there is none.
func LookupOperator(symbol string) Operator {
	return operators[symbol]
}

// LookupFunction returns the unary function with the given name. The result
// is the zero Operator if there is none.
func LookupFunction(name string) Operator {
	if name == negSymbol {
		return Operator{}
	}
	return functions[name]
}

// Operators returns the operator catalog in declaration order, binary
// operators first. The internal negation function is not included.
func Operators() []Operator {
	r := make([]Operator, 0, len(catalog))
	for _, op := range catalog {
		if op.Symbol != negSymbol {
			r = append(r, op)
		}
	}
	return r
}
