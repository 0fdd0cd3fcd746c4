/*
Package udiv128 provides unsigned 128-bit division and remainder (U128) built
only from 64-bit machine arithmetic.

U128 is a value type; all operations return new values.

Simple example:

	u := U128FromRaw(1, 0) // 1 << 64
	q, r := u.QuoRem(U128From64(3))
	fmt.Println(q, r)
	// Output: 6148914691236517205 1

A divisor that fits in 64 bits is handled by a two-digit normalized long
division (Hacker's Delight, divlu). A divisor with a nonzero high word falls
back to a restoring shift-subtract loop, which runs at most 64 times.

Quo, Rem, QuoRem and QuoRem64 panic with ErrDivideByZero when the divisor is
zero, like Go's built-in integer division. QuoChecked, RemChecked and
QuoRemChecked return the error instead. Div64 exposes the 128-by-64 primitive
directly and reports ErrOverflow rather than panicking.

Building with -tags udiv128debug enables internal invariant assertions.

U128 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

All functions are safe for concurrent use.
*/
package udiv128
