// Package tlog renders errors in tests, including the structured
// context attached by the errors package.
package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold = "\033[1m"
	red  = "\033[1;31m"
)

// Printer is the subset of *testing.T needed to report errors.
type Printer interface {
	Helper()
	Log(a ...any)
	Logf(format string, a ...any)
	Error(a ...any)
	Errorf(format string, a ...any)
}

// Log logs the error without failing the test.
func Log(t Printer, err error) {
	t.Helper()
	t.Log(render(err, bold))
}

// Error fails the test with the rendered error.
func Error(t Printer, err error) {
	t.Helper()
	t.Error(render(err, red))
}

// Check is a no-op returning false on nil error. Otherwise it fails the
// test and returns true.
func Check(t Printer, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(render(err, red))
	return true
}

func render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString("\033[0m\n")

	d := errors.GetContextDeliverer(err)
	if d == nil {
		return b.String()
	}

	var c contextCollector
	d.Deliver(&c)
	if len(c.vars) == 0 {
		return b.String()
	}

	var width int
	for _, v := range c.vars {
		if len(v.name) > width {
			width = len(v.name)
		}
	}
	for _, v := range c.vars {
		b.WriteString("    \033[1m")
		b.WriteString(v.name)
		b.WriteString("\033[0m: ")
		b.WriteString(strings.Repeat(" ", width-len(v.name)))
		_, _ = fmt.Fprintln(&b, v.value)
	}
	return b.String()
}
