package udiv128

import "errors"

var (
	// ErrDivideByZero is returned by the checked division methods and Div64
	// when the divisor is zero. Quo, Rem, QuoRem and QuoRem64 panic with it.
	ErrDivideByZero = errors.New("udiv128: division by zero")

	// ErrOverflow reports a 128-by-64 division whose quotient would not fit
	// in 64 bits. U128 division never produces it; if it surfaces as a panic
	// from a U128 method, the divider's internal invariants are broken.
	ErrOverflow = errors.New("udiv128: quotient overflows 64 bits")
)
