package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/zephyrtronium/rpncalc"
)

type reportType byte

const (
	errorReport reportType = iota
	warningReport
)

func (t reportType) String() string {
	if t == warningReport {
		return "warning"
	}
	return "error"
}

func (t reportType) attr() color.Attribute {
	if t == warningReport {
		return color.FgYellow
	}
	return color.FgRed
}

// reporter writes evaluation errors and warnings for the user, pointing at
// the offending column of the normalized expression.
type reporter struct {
	w        io.Writer
	colors   bool
	warnings bool
}

func (r *reporter) paint(t reportType, s string) string {
	c := color.New(t.attr())
	if r.colors {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func (r *reporter) error(expr string, err error) error {
	pos := 0
	var ie rpncalc.InputError
	if errors.As(err, &ie) {
		pos = ie.Pos()
	}
	return r.emit(errorReport, expr, err.Error(), pos)
}

func (r *reporter) warn(expr string, d *rpncalc.RedundantOperatorError) error {
	if !r.warnings {
		return nil
	}
	return r.emit(warningReport, expr, d.Error(), d.Pos())
}

func (r *reporter) emit(t reportType, expr, msg string, pos int) error {
	var b strings.Builder
	b.WriteString(r.paint(t, t.String()))
	b.WriteString(": ")
	b.WriteString(msg)
	b.WriteByte('\n')
	if pos > 0 && expr != "" {
		fmt.Fprintf(&b, "  %s\n  %s%s\n", expr, strings.Repeat(" ", pos-1), r.paint(t, "^"))
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}
