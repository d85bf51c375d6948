package strfmt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownVerb   = errors.New("unknown conversion verb")
	ErrNotEnoughArgs = errors.New("not enough arguments for format")
	ErrTooManyArgs   = errors.New("too many arguments for format")
)

// stdout is the destination of [Printf].
var stdout io.Writer = os.Stdout

// Formatter binds a format string to its arguments. The arguments are adapted
// once, in [New]; every render scans the format string again from the start.
type Formatter struct {
	format string
	args   []Arg
}

// New returns a Formatter for format and args. Each arg is adapted with
// [Wrap].
func New(format string, args ...any) *Formatter {
	wrapped := make([]Arg, len(args))
	for i, a := range args {
		wrapped[i] = Wrap(a)
	}
	return &Formatter{format: format, args: wrapped}
}

// WriteTo renders the format into w and reports the bytes written. Output is
// written as it is produced; on error, whatever was already written stays in
// w.
func (f *Formatter) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	err := f.render(cw)
	return cw.n, err
}

// String renders the format. A failed render ends with a %!(...) marker
// holding the error.
func (f *Formatter) String() string {
	var sb strings.Builder
	if _, err := f.WriteTo(&sb); err != nil {
		sb.WriteString("%!(" + err.Error() + ")")
	}
	return sb.String()
}

func (f *Formatter) render(w io.Writer) error {
	s := scanner{format: f.format}
	used := 0
	for {
		d, ok, err := s.next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if d.Spec == nil {
			if _, err := io.WriteString(w, d.Literal); err != nil {
				return err
			}
			continue
		}
		if used >= len(f.args) {
			return fmt.Errorf("%w: %s at offset %d wants argument %d, got %d", ErrNotEnoughArgs, d.Spec, d.Offset, used+1, len(f.args))
		}
		if err := f.args[used].emit(newState(w, d.Spec)); err != nil {
			return err
		}
		used++
	}
	if used < len(f.args) {
		return fmt.Errorf("%w: %d of %d unused", ErrTooManyArgs, len(f.args)-used, len(f.args))
	}
	return nil
}

// Fprintf formats args according to format and writes the result to w.
func Fprintf(w io.Writer, format string, args ...any) error {
	_, err := New(format, args...).WriteTo(w)
	return err
}

// Sprintf formats args according to format and returns the result.
func Sprintf(format string, args ...any) (string, error) {
	var sb strings.Builder
	if err := Fprintf(&sb, format, args...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Printf formats args according to format and writes the result to standard
// output.
func Printf(format string, args ...any) error {
	return Fprintf(stdout, format, args...)
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
