package cli

import (
	"fmt"
	"io"
)

// IO bundles the output streams a command writes to.
type IO struct {
	out    io.Writer
	errOut io.Writer
}

// NewIO creates a new IO instance.
func NewIO(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

func (o *IO) ErrPrintln(a ...any) {
	_, _ = fmt.Fprintln(o.errOut, a...)
}
