// Package rpncalc implements a floating-point calculator for infix
// expressions.
//
// Evaluation happens in three stages. Tokenize scans a normalized expression
// into numbers, operators, functions and brackets. ToPostfix reorders the
// tokens into reverse Polish notation with the shunting-yard algorithm.
// Evaluate reduces the postfix sequence on a stack. Eval runs all three.
//
// The grammar is fixed: the binary operators + - * / ^, where ^ is
// right-associative, and the functions sqrt, sin, cos, tan, cot, arcsin,
// arccos, arctan, arcctg, ln and log, applied to the term that follows, as in
// "sin(0)" or "sqrt 4". Parentheses, braces and brackets group and must match
// by kind. "--" reads as "+"; other doubled operators are dropped.
//
package rpncalc
