package udiv128

import (
	"math/bits"
)

// digitBase is the radix of the two-digit long division in divlu.
const digitBase = 1 << 32

// leadingZeros64 must only be called with a nonzero x; builds tagged with
// udiv128debug panic if it isn't.
func leadingZeros64(x uint64) uint {
	if debug && x == 0 {
		panic("udiv128: leading zero count of zero")
	}
	return uint(bits.LeadingZeros64(x))
}

// Div64 returns the quotient and remainder of (hi, lo) divided by y:
// quo = (hi, lo)/y, rem = (hi, lo)%y with the dividend bits' upper half in
// parameter hi and the lower half in parameter lo.
//
// Unlike bits.Div64, Div64 does not panic: it returns ErrDivideByZero if
// y == 0 and ErrOverflow if y <= hi, as the quotient would not fit in 64 bits.
func Div64(hi, lo, y uint64) (quo, rem uint64, err error) {
	if y == 0 {
		return 0, 0, ErrDivideByZero
	}
	if hi >= y {
		return 0, 0, ErrOverflow
	}
	quo, rem, _ = divlu(hi, lo, y)
	return quo, rem, nil
}

// Hacker's delight 9-4, divlu:
//
// divlu divides the 128-bit value (u1, u0) by v. If u1 >= v the quotient
// doesn't fit in 64 bits and ok is false. A zero v always lands in that
// branch, so divlu itself never divides by zero.
func divlu(u1, u0, v uint64) (q, r uint64, ok bool) {
	if u1 >= v {
		if debug {
			panic(ErrOverflow)
		}
		return 0, 0, false
	}

	var un64, un10 uint64 // Dividend digit pairs

	s := leadingZeros64(v) // v > u1 >= 0
	if s > 0 {
		v <<= s
		un64 = (u1 << s) | (u0 >> (64 - s))
		un10 = u0 << s
	} else {
		un64, un10 = u1, u0
	}

	vn1, vn0 := v>>32, v&0xffffffff
	un1, un0 := un10>>32, un10&0xffffffff

	// q1*vn0 is only evaluated once q1 < digitBase, so it can't wrap.
	q1 := un64 / vn1
	rhat := un64 - q1*vn1
	for q1 >= digitBase || q1*vn0 > digitBase*rhat+un1 {
		q1--
		rhat += vn1
		if rhat >= digitBase {
			break
		}
	}

	un21 := un64*digitBase + un1 - q1*v

	q0 := un21 / vn1
	rhat = un21 - q0*vn1
	for q0 >= digitBase || q0*vn0 > digitBase*rhat+un0 {
		q0--
		rhat += vn1
		if rhat >= digitBase {
			break
		}
	}

	return q1*digitBase + q0, (un21*digitBase + un0 - q0*v) >> s, true
}

// quorem128 is the 128-by-128 divider behind every U128 division method.
// v must not be zero.
func quorem128(u, v U128) (q, r U128) {
	if v.hi == 0 {
		q, r.lo = quorem128by64(u, v.lo)
		return q, r
	}
	return quorem128bin(u, v)
}

// quorem128by64 divides u by a 64-bit v using at most two divlu steps.
// v must not be zero.
func quorem128by64(u U128, v uint64) (q U128, r uint64) {
	var ok bool
	if u.hi < v {
		q.lo, r, ok = divlu(u.hi, u.lo, v)

	} else {
		// The remainder of the high digit becomes the upper half of the
		// second dividend, and is < v by construction.
		var carry uint64
		q.hi, carry, ok = divlu(0, u.hi, v)
		if ok {
			q.lo, r, ok = divlu(carry, u.lo, v)
		}
	}

	if !ok {
		panic(ErrOverflow)
	}
	return q, r
}

// quorem128bin is a restoring shift-subtract division for a divisor with a
// nonzero high word. The quotient is always < 1<<64 here, so q.hi stays 0.
func quorem128bin(u, v U128) (q, r U128) {
	if u.hi == 0 {
		return q, u // u < 1<<64 <= v
	}

	// Both high words are nonzero at this point.
	shift := int(leadingZeros64(v.hi)) - int(leadingZeros64(u.hi))
	if shift < 0 {
		return q, u // v's top bit is above u's
	}

	v = v.Lsh(uint(shift))
	r = u

	for ; shift >= 0; shift-- {
		q.lo <<= 1

		// performance tweak: simulate greater than or equal by hand-inlining "not less than".
		if !(r.hi < v.hi || (r.hi == v.hi && r.lo < v.lo)) {
			r = r.Sub(v)
			q.lo |= 1
		}

		// {{{ Rsh(1)
		v.lo = (v.lo >> 1) | (v.hi << 63)
		v.hi = v.hi >> 1
		// }}}
	}

	return q, r
}
