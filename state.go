package strfmt

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

type notation int

const (
	general notation = iota
	fixed
	scientific
	hexFloat
)

const defaultPrecision = 6

// state is the sink formatting state for a single conversion. A fresh state
// is built for every specifier, so nothing leaks from one field to the next.
type state struct {
	w        io.Writer
	verb     byte
	base     int
	upper    bool
	notation notation
	plus     bool
	left     bool
	fill     rune
	width    int
	prec     int
}

func newState(w io.Writer, sp *Spec) *state {
	st := &state{
		w:        w,
		verb:     sp.Verb,
		base:     10,
		upper:    'A' <= sp.Verb && sp.Verb <= 'Z',
		notation: general,
		plus:     sp.Plus,
		left:     sp.Left,
		fill:     sp.Pad,
		prec:     sp.Precision,
	}
	switch sp.Verb {
	case 'o':
		st.base = 8
	case 'x', 'X':
		st.base = 16
	case 'f', 'F':
		st.notation = fixed
	case 'e', 'E':
		st.notation = scientific
	case 'a', 'A':
		st.notation = hexFloat
	}
	if sp.HasWidth() {
		st.width = sp.Width
	}
	return st
}

func (st *state) intVerb() bool { return strings.IndexByte(intVerbs, st.verb) >= 0 }

// genericVerb reports whether the verb renders a value as-is.
func (st *state) genericVerb() bool {
	switch st.verb {
	case 'b', 'c', 'p':
		return false
	}
	return !st.intVerb()
}

func (st *state) write(s string) error {
	_, err := io.WriteString(st.w, s)
	return err
}

// field writes s padded to the width with the fill character.
func (st *state) field(s string) error {
	n := st.width - runewidth.StringWidth(s)
	if n <= 0 {
		return st.write(s)
	}
	pad := strings.Repeat(string(st.fill), n)
	if st.left {
		return st.write(s + pad)
	}
	return st.write(pad + s)
}

// number is field for numeric text: right-aligned zero fill goes after the
// sign and any 0x prefix.
func (st *state) number(s string) error {
	if st.fill != '0' || st.left {
		return st.field(s)
	}
	n := st.width - len(s)
	if n <= 0 {
		return st.write(s)
	}
	head := 0
	if s[0] == '+' || s[0] == '-' {
		head++
	}
	if len(s) >= head+2 && s[head] == '0' && (s[head+1] == 'x' || s[head+1] == 'X') {
		head += 2
	}
	return st.write(s[:head] + strings.Repeat("0", n) + s[head:])
}

// signed writes v in the configured base. Octal and hex show the two's
// complement bit pattern without a sign.
func (st *state) signed(v int64) error {
	if st.base != 10 {
		return st.unsigned(uint64(v))
	}
	s := strconv.FormatInt(v, 10)
	if st.plus && v >= 0 {
		s = "+" + s
	}
	return st.number(s)
}

func (st *state) unsigned(v uint64) error {
	s := strconv.FormatUint(v, st.base)
	switch {
	case st.base == 10 && st.plus:
		s = "+" + s
	case st.upper:
		s = strings.ToUpper(s)
	}
	return st.number(s)
}

func (st *state) float(v float64, bitSize int) error {
	s := st.formatFloat(v, bitSize)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		if st.fill == '0' {
			cp := *st
			cp.fill = ' '
			return cp.field(s)
		}
		return st.field(s)
	}
	return st.number(s)
}

func (st *state) formatFloat(v float64, bitSize int) string {
	var s string
	switch {
	case math.IsNaN(v):
		s = "nan"
	case math.IsInf(v, 0):
		s = "inf"
		if v < 0 {
			s = "-inf"
		}
	default:
		prec := st.prec
		var fc byte
		switch st.notation {
		case fixed:
			fc = 'f'
		case scientific:
			fc = 'e'
		case hexFloat:
			fc = 'x'
		default:
			fc = 'g'
			if prec == 0 {
				prec = 1
			}
		}
		if prec == NoValue && st.notation != hexFloat {
			prec = defaultPrecision
		}
		s = strconv.FormatFloat(v, fc, prec, bitSize)
	}
	if st.plus && s[0] != '-' && !math.IsNaN(v) {
		s = "+" + s
	}
	if st.upper {
		s = strings.ToUpper(s)
	}
	return s
}

// char writes the code point cp. Values that are not valid code points are
// written as U+FFFD.
func (st *state) char(cp int64) error {
	r := utf8.RuneError
	if 0 <= cp && cp <= utf8.MaxRune && utf8.ValidRune(rune(cp)) {
		r = rune(cp)
	}
	return st.field(string(r))
}

func (st *state) pointer(addr uintptr) error {
	return st.field("0x" + strconv.FormatUint(uint64(addr), 16))
}

// dump hands data to the byte-dump renderer. A '0' fill drops the separator
// and the '-' flag drops the ASCII column.
func (st *state) dump(data []byte, d Dumper) error {
	opts := DumpOptions{Separator: st.fill, ASCII: !st.left}
	if st.fill == '0' {
		opts.Separator = 0
	}
	return d.Dump(st.w, data, opts)
}

// each emits n container elements separated by the fill character.
func (st *state) each(n int, elem func(i int) error) error {
	sep := string(st.fill)
	for i := range n {
		if i > 0 {
			if err := st.write(sep); err != nil {
				return err
			}
		}
		if err := elem(i); err != nil {
			return err
		}
	}
	return nil
}
