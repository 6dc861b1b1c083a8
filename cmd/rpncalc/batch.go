package main

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/rpncalc"
)

// result is the outcome of evaluating one input expression.
type result struct {
	// expr is the normalized expression.
	expr     string
	postfix  string
	value    float64
	err      error
	warnings []*rpncalc.RedundantOperatorError
}

// evalOne runs the three evaluation stages separately so that the postfix
// form is available for echoing.
func evalOne(raw string, opts []rpncalc.Option) result {
	res := result{expr: rpncalc.Normalize(raw)}
	opts = append(opts[:len(opts):len(opts)], rpncalc.OnDiagnostic(func(d *rpncalc.RedundantOperatorError) {
		res.warnings = append(res.warnings, d)
	}))
	calc := rpncalc.New(opts...)
	toks, err := calc.Tokenize(res.expr)
	if err != nil {
		res.err = err
		return res
	}
	post, err := rpncalc.ToPostfix(toks)
	if err != nil {
		res.err = err
		return res
	}
	res.postfix = rpncalc.FormatTokens(post)
	res.value, res.err = calc.Evaluate(post)
	return res
}

// evalAll evaluates expressions with at most jobs running at once. Results
// are in input order. The error is non-nil only if ctx ends first.
func evalAll(ctx context.Context, exprs []string, opts []rpncalc.Option, jobs int) ([]result, error) {
	res := make([]result, len(exprs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, expr := range exprs {
		i, expr := i, expr
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res[i] = evalOne(expr, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
