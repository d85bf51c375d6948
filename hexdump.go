package strfmt

import (
	"io"
	"strings"
)

// DumpOptions carries the formatting state a [Dumper] renders with.
type DumpOptions struct {
	// Separator goes between byte pairs. Zero means none.
	Separator rune
	// ASCII appends the printable rendering of the bytes.
	ASCII bool
}

// Dumper renders a byte sequence for the %b verb.
type Dumper interface {
	Dump(w io.Writer, data []byte, opts DumpOptions) error
}

// DumperFunc adapts a function to the [Dumper] interface.
type DumperFunc func(w io.Writer, data []byte, opts DumpOptions) error

// Dump calls f.
func (f DumperFunc) Dump(w io.Writer, data []byte, opts DumpOptions) error {
	return f(w, data, opts)
}

// DefaultDumper writes two lowercase hex digits per byte, then, with
// opts.ASCII, two spaces and the bytes with non-printable ones shown as '.'.
//
//	%b   of "AB\n"  ->  41 42 0a  AB.
//	%-b  of "AB\n"  ->  41 42 0a
//	%0b  of "AB\n"  ->  41420a  AB.
//	%,b  of "AB\n"  ->  41,42,0a  AB.
var DefaultDumper Dumper = DumperFunc(hexDump)

const hexDigits = "0123456789abcdef"

func hexDump(w io.Writer, data []byte, opts DumpOptions) error {
	var sb strings.Builder
	for i, b := range data {
		if i > 0 && opts.Separator != 0 {
			sb.WriteRune(opts.Separator)
		}
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0f])
	}
	if opts.ASCII && len(data) > 0 {
		sb.WriteString("  ")
		for _, b := range data {
			if b < 0x20 || b > 0x7e {
				b = '.'
			}
			sb.WriteByte(b)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// HexDump returns an explicit byte-dump argument rendered with
// [DefaultDumper]. Unlike a ByteContainer it dumps under the generic verbs as
// well as %b.
func HexDump(data []byte) Arg { return HexDumpWith(data, DefaultDumper) }

// HexDumpWith is [HexDump] with a custom renderer.
func HexDumpWith(data []byte, d Dumper) Arg { return hexDumpArg{data: data, dumper: d} }

type hexDumpArg struct {
	data   []byte
	dumper Dumper
}

func (a hexDumpArg) emit(st *state) error {
	if st.verb == 'b' || st.genericVerb() {
		return st.dump(a.data, a.dumper)
	}
	return nil
}
