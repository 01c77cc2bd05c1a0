package warnfmt

import (
	"fmt"
	"io"

	"warnkit/internal/warn"
)

// ConsoleObserver is the reference observer: it forwards each recorded
// warning to a low-priority diagnostic stream and observable errors to an
// error stream. Both writes happen inline with recording.
type ConsoleObserver struct {
	out  io.Writer
	errw io.Writer
	opts PrettyOpts
}

// NewConsoleObserver builds a console observer writing warnings to out and
// errors to errw.
func NewConsoleObserver(out, errw io.Writer, opts PrettyOpts) *ConsoleObserver {
	return &ConsoleObserver{out: out, errw: errw, opts: opts}
}

func (o *ConsoleObserver) Next(rec warn.Record) {
	fmt.Fprintln(o.out, prettyLine(rec, o.opts))
}

func (o *ConsoleObserver) Error(err error) {
	fmt.Fprintf(o.errw, "warnkit: %v\n", err)
}
