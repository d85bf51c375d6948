package strfmt

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Text returns a Generic string argument whose bytes are in enc. The bytes
// are decoded to UTF-8 when the field is written; %b dumps them undecoded.
// A nil enc means the bytes are already UTF-8.
func Text(data []byte, enc encoding.Encoding) Arg { return textArg{data: data, enc: enc} }

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Wide returns a Generic string argument for UTF-16 code units.
func Wide(units []uint16) Arg {
	data := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(data[2*i:], u)
	}
	return textArg{data: data, enc: utf16LE}
}

type textArg struct {
	data []byte
	enc  encoding.Encoding
}

func (a textArg) emit(st *state) error {
	switch {
	case st.verb == 'b':
		return st.dump(a.data, DefaultDumper)
	case st.genericVerb():
		s, err := a.decode()
		if err != nil {
			return err
		}
		return st.field(s)
	}
	return nil
}

func (a textArg) decode() (string, error) {
	if a.enc == nil {
		return string(a.data), nil
	}
	b, err := a.enc.NewDecoder().Bytes(a.data)
	if err != nil {
		return "", fmt.Errorf("decode text argument: %w", err)
	}
	return string(b), nil
}
