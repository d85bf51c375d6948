package strfmt

import (
	"fmt"
	"reflect"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Arg is a formatting argument tagged with its type category. The set of
// categories is closed: values are adapted with the constructors in this file
// or with [Wrap].
//
// Each category defines what every verb does with it. A verb that does not
// apply to the category writes nothing for that field.
type Arg interface {
	emit(st *state) error
}

// Int returns a SignedInteger argument. The value is widened to int64.
func Int[T constraints.Signed](v T) Arg { return signedArg(v) }

// Uint returns an UnsignedInteger argument. The value is widened to uint64.
func Uint[T constraints.Unsigned](v T) Arg { return unsignedArg(v) }

// Float returns a FloatingPoint argument.
func Float[T constraints.Float](v T) Arg {
	return floatArg{v: float64(v), bits: int(unsafe.Sizeof(v)) * 8}
}

// Char returns a Character argument holding the code point v.
func Char[T constraints.Integer](v T) Arg { return charArg(v) }

// Ptr returns a Pointer argument for p.
func Ptr[T any](p *T) Arg { return pointerArg{addr: uintptr(unsafe.Pointer(p)), v: p} }

// Addr returns a Pointer argument for a raw address.
func Addr(addr uintptr) Arg { return pointerArg{addr: addr} }

// Bytes returns a ByteContainer argument.
func Bytes[T ~int8 | ~uint8](b []T) Arg {
	data := make([]byte, len(b))
	for i, v := range b {
		data[i] = byte(v)
	}
	return bytesArg(data)
}

// String returns a Generic argument for a string. Under %b the string's bytes
// are dumped like a ByteContainer.
func String(s string) Arg { return stringArg(s) }

// Slice returns a Generic container. Each element is adapted with [Wrap].
func Slice[T any](vs []T) Arg {
	elems := make([]Arg, len(vs))
	for i, v := range vs {
		elems[i] = Wrap(v)
	}
	return listArg(elems)
}

// List returns a Generic container of already adapted arguments.
func List(args ...Arg) Arg { return listArg(args) }

// Value returns a Generic argument rendered with its String or Error method,
// or with the default %v formatting.
func Value(v any) Arg { return valueArg{v: v} }

// Wrap adapts an arbitrary value to an [Arg] by its dynamic Go type. Values
// that already are an Arg are returned unchanged. Named types are classified
// by their underlying kind.
func Wrap(v any) Arg {
	switch v := v.(type) {
	case Arg:
		return v
	case nil:
		return Value(nil)
	case int:
		return Int(v)
	case int8:
		return Int(v)
	case int16:
		return Int(v)
	case int32:
		return Int(v)
	case int64:
		return Int(v)
	case uint:
		return Uint(v)
	case uint8:
		return Uint(v)
	case uint16:
		return Uint(v)
	case uint32:
		return Uint(v)
	case uint64:
		return Uint(v)
	case uintptr:
		return Addr(v)
	case unsafe.Pointer:
		return Addr(uintptr(v))
	case float32:
		return Float(v)
	case float64:
		return Float(v)
	case string:
		return String(v)
	case []byte:
		return Bytes(v)
	case []int8:
		return Bytes(v)
	}
	return wrapKind(reflect.ValueOf(v))
}

func wrapKind(rv reflect.Value) Arg {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signedArg(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return unsignedArg(rv.Uint())
	case reflect.Float32:
		return floatArg{v: rv.Float(), bits: 32}
	case reflect.Float64:
		return floatArg{v: rv.Float(), bits: 64}
	case reflect.String:
		return stringArg(rv.String())
	case reflect.Pointer, reflect.UnsafePointer:
		return pointerArg{addr: rv.Pointer(), v: rv.Interface()}
	case reflect.Slice, reflect.Array:
		switch rv.Type().Elem().Kind() {
		case reflect.Uint8, reflect.Int8:
			data := make([]byte, rv.Len())
			for i := range data {
				e := rv.Index(i)
				if e.CanInt() {
					data[i] = byte(e.Int())
				} else {
					data[i] = byte(e.Uint())
				}
			}
			return bytesArg(data)
		}
		elems := make([]Arg, rv.Len())
		for i := range elems {
			elems[i] = Wrap(rv.Index(i).Interface())
		}
		return listArg(elems)
	}
	return Value(rv.Interface())
}

type signedArg int64

func (a signedArg) emit(st *state) error {
	switch st.verb {
	case 'c':
		return st.char(int64(a))
	case 'p', 'b':
		return nil
	}
	return st.signed(int64(a))
}

type unsignedArg uint64

func (a unsignedArg) emit(st *state) error {
	switch st.verb {
	case 'c':
		return st.char(int64(a))
	case 'p', 'b':
		return nil
	}
	return st.unsigned(uint64(a))
}

type floatArg struct {
	v    float64
	bits int
}

func (a floatArg) emit(st *state) error {
	switch {
	case st.intVerb():
		return st.signed(int64(a.v))
	case st.genericVerb():
		return st.float(a.v, a.bits)
	}
	return nil
}

// charArg renders as the character under %c and the generic verbs, and as
// its code point under the integer verbs.
type charArg int64

func (a charArg) emit(st *state) error {
	switch {
	case st.intVerb():
		return st.signed(int64(a))
	case st.verb == 'c' || st.genericVerb():
		return st.char(int64(a))
	}
	return nil
}

type pointerArg struct {
	addr uintptr
	v    any
}

func (a pointerArg) emit(st *state) error {
	switch {
	case st.verb == 'p':
		return st.pointer(a.addr)
	case st.genericVerb():
		if a.addr != 0 {
			switch v := a.v.(type) {
			case fmt.Stringer, error:
				return valueArg{v: v}.emit(st)
			}
		}
		return st.pointer(a.addr)
	}
	return nil
}

// bytesArg dumps under %b; the generic verbs list the bytes as unsigned
// numbers.
type bytesArg []byte

func (a bytesArg) emit(st *state) error {
	switch {
	case st.verb == 'b':
		return st.dump(a, DefaultDumper)
	case st.genericVerb():
		return st.each(len(a), func(i int) error {
			return st.unsigned(uint64(a[i]))
		})
	}
	return nil
}

type stringArg string

func (a stringArg) emit(st *state) error {
	switch {
	case st.verb == 'b':
		return st.dump([]byte(a), DefaultDumper)
	case st.genericVerb():
		return st.field(string(a))
	}
	return nil
}

type listArg []Arg

func (a listArg) emit(st *state) error {
	if !st.genericVerb() {
		return nil
	}
	return st.each(len(a), func(i int) error {
		return a[i].emit(st)
	})
}

type valueArg struct {
	v any
}

func (a valueArg) emit(st *state) error {
	if !st.genericVerb() {
		return nil
	}
	var s string
	switch v := a.v.(type) {
	case error:
		s = v.Error()
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	return st.field(s)
}
