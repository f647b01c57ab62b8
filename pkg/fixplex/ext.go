package fixplex

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Ext captures the machine arithmetic of unsigned integers modulo 2^N for a
// fixed word width N between 1 and 64. All numerals handled by the solver are
// uint64 values reduced modulo 2^N; Ext provides the wrapping operations, the
// trailing-zeros (parity) measure and the odd-inverse used by pivoting and
// propagation.
//
// The zero value is not usable; construct with Uint8, Uint16, Uint32, Uint64
// or Bits.
type Ext struct {
	bits uint
	mask uint64
}

// Uint8 returns the arithmetic of unsigned 8-bit integers (modulo 2^8).
func Uint8() Ext { return Ext{bits: 8, mask: 0xff} }

// Uint16 returns the arithmetic of unsigned 16-bit integers (modulo 2^16).
func Uint16() Ext { return Ext{bits: 16, mask: 0xffff} }

// Uint32 returns the arithmetic of unsigned 32-bit integers (modulo 2^32).
func Uint32() Ext { return Ext{bits: 32, mask: 0xffffffff} }

// Uint64 returns the arithmetic of unsigned 64-bit integers (modulo 2^64).
func Uint64() Ext { return Ext{bits: 64, mask: ^uint64(0)} }

// Bits returns the arithmetic modulo 2^n for 1 <= n <= 64.
func Bits(n uint) (Ext, error) {
	if n < 1 || n > 64 {
		return Ext{}, fmt.Errorf("fixplex: word width must be in [1,64], got %d", n)
	}
	if n == 64 {
		return Uint64(), nil
	}
	return Ext{bits: n, mask: (uint64(1) << n) - 1}, nil
}

// Bits reports the word width N.
func (m Ext) Bits() uint { return m.bits }

// Modulus returns 2^N as a big integer.
func (m Ext) Modulus() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), m.bits)
}

// Mask reduces x modulo 2^N.
func (m Ext) Mask(x uint64) uint64 { return x & m.mask }

// Add returns x + y modulo 2^N.
func (m Ext) Add(x, y uint64) uint64 { return (x + y) & m.mask }

// Sub returns x - y modulo 2^N.
func (m Ext) Sub(x, y uint64) uint64 { return (x - y) & m.mask }

// Neg returns -x modulo 2^N.
func (m Ext) Neg(x uint64) uint64 { return (-x) & m.mask }

// Mul returns x * y modulo 2^N.
func (m Ext) Mul(x, y uint64) uint64 { return (x * y) & m.mask }

// Div returns the truncated quotient of the reduced operands. y must be
// non-zero modulo 2^N.
func (m Ext) Div(x, y uint64) uint64 { return (x & m.mask) / (y & m.mask) }

// Shr shifts x right by k bits after reduction.
func (m Ext) Shr(x uint64, k uint) uint64 { return (x & m.mask) >> k }

// IsEven reports whether x is even modulo 2^N.
func (m Ext) IsEven(x uint64) bool { return x&1 == 0 }

// TrailingZeros returns the number of trailing zero bits of x modulo 2^N.
// Zero has N trailing zeros.
func (m Ext) TrailingZeros(x uint64) uint {
	x &= m.mask
	if x == 0 {
		return m.bits
	}
	return uint(bits.TrailingZeros64(x))
}

// OddInverse returns the multiplicative inverse of x modulo 2^N. x must be
// odd; even numerals have no inverse in the ring.
func (m Ext) OddInverse(x uint64) (uint64, error) {
	x &= m.mask
	if x&1 == 0 {
		return 0, fmt.Errorf("fixplex: no inverse of even numeral %d modulo 2^%d", x, m.bits)
	}
	// Newton iteration doubles the number of correct low bits each round;
	// five rounds suffice for 64 bits starting from the 3-bit seed x.
	y := x
	for i := 0; i < 5; i++ {
		y = y * (2 - x*y)
	}
	return y & m.mask, nil
}

// FromInt64 converts a signed integer to its two's-complement numeral.
func (m Ext) FromInt64(v int64) uint64 { return uint64(v) & m.mask }

// FromRat converts a rational to a numeral: the numerator times the odd
// inverse of the denominator, both reduced modulo 2^N. Rationals with an even
// reduced denominator have no image in the ring.
func (m Ext) FromRat(r *big.Rat) (uint64, error) {
	num := new(big.Int).Mod(r.Num(), m.Modulus()).Uint64()
	den := new(big.Int).Mod(r.Denom(), m.Modulus()).Uint64()
	if den == 1 {
		return num & m.mask, nil
	}
	inv, err := m.OddInverse(den)
	if err != nil {
		return 0, fmt.Errorf("fixplex: rational %s has no modular image: %w", r, err)
	}
	return m.Mul(num, inv), nil
}

// ToBig lifts a numeral into a non-negative big integer in [0, 2^N).
func (m Ext) ToBig(x uint64) *big.Int {
	return new(big.Int).SetUint64(x & m.mask)
}
