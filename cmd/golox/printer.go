package main

import (
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/color"
)

// stdPrinter writes program output to stdout and diagnostics, colored
// red when enabled, to the writer they are addressed to.
type stdPrinter struct {
	color *color.Color
}

func newStdPrinter(colored bool) stdPrinter {
	c := color.New()
	c.SetOutput(os.Stderr)
	if !colored {
		c.Disable()
	}
	return stdPrinter{color: c}
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, s.color.Red(fmt.Sprint(a...)))
}
