package udiv128

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// U128 is an unsigned 128-bit integer stored as two 64-bit words.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }
func U128From32(v uint32) U128       { return U128{lo: uint64(v)} }

// U128FromString creates a U128 from a decimal string. Overflow truncates to
// MaxU128 and sets accurate to 'false'.
func U128FromString(s string) (out U128, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("udiv128: u128 string %q invalid", s)
	}
	out, accurate = U128FromBigInt(b)
	return out, accurate, nil
}

// U128FromBigInt creates a U128 from a big.Int. Negative values produce 0,
// values above MaxU128 produce MaxU128; both set accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	} else if v.BitLen() > 128 {
		return MaxU128, false
	}

	var t big.Int
	out.lo = t.And(v, bigMaxUint64).Uint64()
	out.hi = t.Rsh(v, 64).Uint64()
	return out, true
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

// Raw returns the U128 as its (hi, lo) words. See U128FromRaw() for the
// counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u U128) IsZero() bool   { return u == zeroU128 }
func (u U128) IsUint64() bool { return u.hi == 0 }

// AsUint64 truncates the U128 to its low word.
func (u U128) AsUint64() uint64 { return u.lo }

// String formats u in decimal, using QuoRem64 to peel off 19-digit chunks.
func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}

	// 10^38 < 2^128 < 10^39, so there are at most three chunks.
	q, lo := u.QuoRem64(decimalChunk)
	if q.hi == 0 {
		return strconv.FormatUint(q.lo, 10) + padChunk(lo)
	}
	q, mid := q.QuoRem64(decimalChunk)
	return strconv.FormatUint(q.lo, 10) + padChunk(mid) + padChunk(lo)
}

func padChunk(v uint64) string {
	s := strconv.FormatUint(v, 10)
	return strings.Repeat("0", decimalChunkDigits-len(s)) + s
}

func (u U128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u U128) IntoBigInt(b *big.Int) {
	b.SetUint64(u.hi)
	b.Lsh(b, 64)

	var lo big.Int
	lo.SetUint64(u.lo)
	b.Or(b, &lo)
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U128) Inc() (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, 1, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Dec() (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, 1, 0)
	v.hi = u.hi - borrow
	return v
}

func (u U128) Add(n U128) (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

func (u U128) Sub(n U128) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

// Mul returns the low 128 bits of u*n.
func (u U128) Mul(n U128) (v U128) {
	v.hi, v.lo = bits.Mul64(u.lo, n.lo)
	v.hi += u.hi*n.lo + u.lo*n.hi
	return v
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return !u.LessThan(n)
}

func (u U128) Lsh(n uint) (v U128) {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return v
	case n >= 64:
		v.hi = u.lo << (n - 64)
	default:
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return v
	case n >= 64:
		v.lo = u.hi >> (n - 64)
	default:
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	}
	return v
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// Quo returns the quotient u/by for by != 0. If by == 0, Quo panics with
// ErrDivideByZero. See QuoChecked for a non-panicking version.
func (u U128) Quo(by U128) (q U128) {
	q, _ = u.QuoRem(by)
	return q
}

// Rem returns the remainder u%by for by != 0. If by == 0, Rem panics with
// ErrDivideByZero. See RemChecked for a non-panicking version.
func (u U128) Rem(by U128) (r U128) {
	_, r = u.QuoRem(by)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0, such that
//
//	u = q*by + r,  r < by
//
// If by == 0, QuoRem panics with ErrDivideByZero, which matches the behaviour
// of Go's built-in integer division.
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.hi|by.lo == 0 {
		panic(ErrDivideByZero)
	}
	return quorem128(u, by)
}

// QuoChecked is like Quo, but returns ErrDivideByZero instead of panicking.
func (u U128) QuoChecked(by U128) (q U128, err error) {
	q, _, err = u.QuoRemChecked(by)
	return q, err
}

// RemChecked is like Rem, but returns ErrDivideByZero instead of panicking.
func (u U128) RemChecked(by U128) (r U128, err error) {
	_, r, err = u.QuoRemChecked(by)
	return r, err
}

// QuoRemChecked is like QuoRem, but returns ErrDivideByZero instead of
// panicking.
func (u U128) QuoRemChecked(by U128) (q, r U128, err error) {
	if by.hi|by.lo == 0 {
		return q, r, ErrDivideByZero
	}
	q, r = quorem128(u, by)
	return q, r, nil
}

// QuoRem64 divides u by a 64-bit divisor. The remainder always fits in a
// uint64. If by == 0, QuoRem64 panics with ErrDivideByZero.
func (u U128) QuoRem64(by uint64) (q U128, r uint64) {
	if by == 0 {
		panic(ErrDivideByZero)
	}
	return quorem128by64(u, by)
}

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, _, err := U128FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	if ln := len(bts); ln > 0 && bts[0] == '"' {
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("udiv128: u128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return u.UnmarshalText(bts)
}
