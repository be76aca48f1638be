// Package output routes nex's primary output. Project tables, paths and
// JSON go to stdout so they survive piping and shell substitution
// (`cd "$(nex path ...)"`); diagnostics belong on stderr via the log
// package.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
)

type ctxKey struct{}

// Printer writes primary data output.
type Printer struct {
	out io.Writer
}

// WithPrinter attaches a Printer for the given writer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, &Printer{out: w})
}

// FromContext retrieves the Printer from context, falling back to stdout.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{out: os.Stdout}
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.out, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Writer returns the underlying writer, for encoders that need one.
func (p *Printer) Writer() io.Writer {
	return p.out
}
