package strfmt

import (
	"fmt"
	"strings"
)

// NoValue marks a width or precision that was not given in the specifier.
const NoValue = -1

// maxNum caps parsed widths and precisions.
const maxNum = 1e6

const (
	verbs     = "biduoxXfFgGaAeEcsp"
	intVerbs  = "iduoxX"
	modifiers = "qhlLzjt"
)

// Spec is one parsed conversion specifier. It is never modified after
// parsing.
type Spec struct {
	// Text is the specifier as written, including the leading '%'.
	Text string
	// Left is the '-' flag: left-justify within the width.
	Left bool
	// Plus is the '+' flag: show a sign on non-negative numbers.
	Plus bool
	// Space is the ' ' flag. It is accepted and has no effect.
	Space bool
	// Pad is the fill character: ' ', '0' or ','.
	Pad rune
	// Width is the minimum field width, or NoValue.
	Width int
	// Precision is the float precision, or NoValue.
	Precision int
	// Verb is the conversion character.
	Verb byte
}

// HasWidth reports whether a width was given.
func (s Spec) HasWidth() bool { return s.Width != NoValue }

// HasPrecision reports whether a precision was given.
func (s Spec) HasPrecision() bool { return s.Precision != NoValue }

// String returns the specifier text.
func (s Spec) String() string { return s.Text }

// Directive is one step of a format string scan. Exactly one of Literal and
// Spec is set: Literal holds verbatim text (a "%%" yields "%"), Spec holds a
// conversion that consumes one argument.
type Directive struct {
	Offset  int
	Literal string
	Spec    *Spec
}

// Parse scans the whole format string and returns its directives in order.
// It fails with [ErrUnknownVerb] at the first malformed specifier.
func Parse(format string) ([]Directive, error) {
	s := scanner{format: format}
	var out []Directive
	for {
		d, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, d)
	}
}

type scanner struct {
	format string
	pos    int
}

// next returns the directive at the cursor and advances past it. ok is false
// once the format string is exhausted.
func (s *scanner) next() (d Directive, ok bool, err error) {
	if s.pos >= len(s.format) {
		return Directive{}, false, nil
	}
	start := s.pos
	if s.format[start] != '%' {
		end := strings.IndexByte(s.format[start:], '%')
		if end < 0 {
			end = len(s.format)
		} else {
			end += start
		}
		s.pos = end
		return Directive{Offset: start, Literal: s.format[start:end]}, true, nil
	}
	if strings.HasPrefix(s.format[start:], "%%") {
		s.pos += 2
		return Directive{Offset: start, Literal: "%"}, true, nil
	}
	spec, err := s.spec()
	if err != nil {
		return Directive{}, false, err
	}
	return Directive{Offset: start, Spec: spec}, true, nil
}

func (s *scanner) spec() (*Spec, error) {
	start := s.pos
	s.pos++
	sp := &Spec{Pad: ' ', Width: NoValue, Precision: NoValue}

flags:
	for s.pos < len(s.format) {
		switch c := s.format[s.pos]; c {
		case '-':
			sp.Left = true
		case '+':
			sp.Plus = true
		case ' ':
			sp.Space = true
		case '0', ',':
			sp.Pad = rune(c)
		default:
			break flags
		}
		s.pos++
	}
	if n, ok := s.number(); ok {
		sp.Width = n
	}
	if s.accept('.') {
		if n, ok := s.number(); ok {
			sp.Precision = n
		}
	}

	// Length modifiers only ever picked an integer size. Arguments carry
	// their own type, so they are skipped.
	for s.pos < len(s.format) && strings.IndexByte(modifiers, s.format[s.pos]) >= 0 {
		s.pos++
	}
	if s.accept('I') {
		rest := s.format[s.pos:]
		if strings.HasPrefix(rest, "32") || strings.HasPrefix(rest, "64") {
			s.pos += 2
		}
	}

	if s.pos >= len(s.format) {
		return nil, fmt.Errorf("%w: missing verb in %q at offset %d", ErrUnknownVerb, s.format[start:], start)
	}
	c := s.format[s.pos]
	s.pos++
	sp.Text = s.format[start:s.pos]
	if strings.IndexByte(verbs, c) < 0 {
		return nil, fmt.Errorf("%w: %q in %q at offset %d", ErrUnknownVerb, rune(c), sp.Text, start)
	}
	sp.Verb = c
	return sp, nil
}

func (s *scanner) accept(c byte) bool {
	if s.pos < len(s.format) && s.format[s.pos] == c {
		s.pos++
		return true
	}
	return false
}

// number consumes a run of decimal digits. Values beyond maxNum are clamped.
func (s *scanner) number() (int, bool) {
	n, start := 0, s.pos
	for s.pos < len(s.format) && '0' <= s.format[s.pos] && s.format[s.pos] <= '9' {
		if n < maxNum {
			n = n*10 + int(s.format[s.pos]-'0')
		}
		s.pos++
	}
	return min(n, maxNum), s.pos > start
}
