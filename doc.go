// Package strfmt is a printf-style formatting engine that dispatches on each
// argument's type category instead of trusting the format string.
//
// The central entry points are [Fprintf], [Sprintf] and [Printf]. A
// [Formatter] built with [New] holds a format string and its arguments and
// can be rendered any number of times with [Formatter.WriteTo].
//
//	strfmt.Fprintf(os.Stdout, "%-8s|%05d|%x\n", "id", 42, 255)
//	// id      |00042|ff
//
// # Format Grammar
//
//	%[flags][width][.precision][length]verb
//
// with these parts:
//
//   - flags: '-' left-justify, '+' sign on non-negative numbers, ' ' accepted
//     and ignored, '0' zero fill, ',' comma fill
//   - width, precision: decimal digits; '*' is not supported
//   - length: any of "qhlLzjt", or I, I32, I64. Ignored: every argument
//     already knows its size
//   - verb: one of b i d u o x X f F g G a A e E c s p
//
// "%%" writes a single '%' and consumes no argument.
//
// # Type Categories
//
// Every argument is an [Arg] belonging to one category. The constructors pick
// the category from the static type:
//
//   - [Int], [Uint] — integers, widened to 64 bits
//   - [Float] — floating point
//   - [Char] — a code point
//   - [Ptr], [Addr] — addresses
//   - [Bytes] — byte containers
//   - [String], [Slice], [List], [Value] — generic values
//   - [HexDump], [Text], [Wide] — byte dumps and foreign-encoded text
//
// The top-level functions accept plain values and adapt them with [Wrap].
//
// Each category decides what a verb does with it. %c writes integers and
// characters as a character; %p writes pointers; %b dumps byte containers;
// the integer verbs format integers, characters and truncated floats; the
// remaining verbs render any value as-is. A verb that does not apply to the
// argument writes nothing for that field rather than failing.
//
// Containers under the generic verbs are written element by element,
// separated by the fill character:
//
//	strfmt.Sprintf("%,s", []int{1, 2, 3}) // "1,2,3"
//
// # Byte Dumps
//
// %b hands byte containers to a [Dumper]. The '-' flag drops the ASCII
// column and the '0' flag drops the separator between bytes. Use
// [HexDumpWith] to plug in another renderer.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnknownVerb] — malformed specifier or unknown verb
//   - [ErrNotEnoughArgs] — a specifier has no argument left
//   - [ErrTooManyArgs] — arguments remain after the format is exhausted
//
// Output written before an error is not retracted. Format into a buffer with
// [Sprintf] when the result must be all or nothing.
//
// A format call holds no global state. Concurrent calls that share one
// writer must serialize access to it themselves.
package strfmt
