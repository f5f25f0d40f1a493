package field

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// Unsigned is the set of native integer types a Uint element can be stored in.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Uint is an element of the integers modulo m stored in a native unsigned
// integer. Intermediate results are computed on 128 bits, so any modulus that
// fits T is supported without overflow.
type Uint[T Unsigned] struct {
	v T
	m T
}

// NewUint returns the element v mod m. It requires m >= 2 and v < m.
func NewUint[T Unsigned](v, m T) (Uint[T], error) {
	if m < 2 {
		str := fmt.Sprintf("modulus %d is less than 2", uint64(m))
		return Uint[T]{}, makeError(ErrInvalidModulus, str)
	}
	if v >= m {
		str := fmt.Sprintf("value %d is not below modulus %d", uint64(v),
			uint64(m))
		return Uint[T]{}, makeError(ErrValueOutOfRange, str)
	}
	return Uint[T]{v: v, m: m}, nil
}

// MustUint is like NewUint but panics on invalid input. It is intended for
// constants.
func MustUint[T Unsigned](v, m T) Uint[T] {
	e, err := NewUint(v, m)
	if err != nil {
		panic(err)
	}
	return e
}

// Value returns the canonical representative in [0, m).
func (e Uint[T]) Value() T {
	return e.v
}

// Modulus returns m.
func (e Uint[T]) Modulus() T {
	return e.m
}

func (e Uint[T]) mustMatch(o Uint[T]) {
	if e.m != o.m {
		str := fmt.Sprintf("cannot combine elements mod %d and mod %d",
			uint64(e.m), uint64(o.m))
		panic(makeError(ErrModulusMismatch, str))
	}
}

func (e Uint[T]) with(v uint64) Uint[T] {
	return Uint[T]{v: T(v), m: e.m}
}

// Add returns e + o.
func (e Uint[T]) Add(o Uint[T]) Uint[T] {
	e.mustMatch(o)
	m := uint64(e.m)
	sum, carry := bits.Add64(uint64(e.v), uint64(o.v), 0)
	if carry != 0 || sum >= m {
		sum -= m
	}
	return e.with(sum)
}

// Sub returns e - o.
func (e Uint[T]) Sub(o Uint[T]) Uint[T] {
	e.mustMatch(o)
	if e.v >= o.v {
		return Uint[T]{v: e.v - o.v, m: e.m}
	}
	return Uint[T]{v: e.m - (o.v - e.v), m: e.m}
}

// Mul returns e * o.
func (e Uint[T]) Mul(o Uint[T]) Uint[T] {
	e.mustMatch(o)
	hi, lo := bits.Mul64(uint64(e.v), uint64(o.v))
	return e.with(bits.Rem64(hi, lo, uint64(e.m)))
}

// Neg returns -e.
func (e Uint[T]) Neg() Uint[T] {
	if e.v == 0 {
		return e
	}
	return Uint[T]{v: e.m - e.v, m: e.m}
}

// Exp returns e^k by square-and-multiply. e^0 is 1.
func (e Uint[T]) Exp(k uint64) Uint[T] {
	result := e.with(1)
	base := e
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
	}
	return result
}

// Inverse returns the multiplicative inverse of e. The modulus does not have
// to be prime; ErrNotInvertible is returned when gcd(e, m) != 1.
func (e Uint[T]) Inverse() (Uint[T], error) {
	// Extended Euclid. Only the Bezout coefficient of e is tracked, and it is
	// kept reduced mod m.
	t, newT := e.with(0), e.with(1)
	r, newR := uint64(e.m), uint64(e.v)
	for newR != 0 {
		q := r / newR
		t, newT = newT, t.Sub(e.with(q%uint64(e.m)).Mul(newT))
		r, newR = newR, r-q*newR
	}
	if r != 1 {
		str := fmt.Sprintf("%d has no inverse mod %d", uint64(e.v),
			uint64(e.m))
		return Uint[T]{}, makeError(ErrNotInvertible, str)
	}
	return t, nil
}

// Div returns e / o.
func (e Uint[T]) Div(o Uint[T]) (Uint[T], error) {
	e.mustMatch(o)
	inv, err := o.Inverse()
	if err != nil {
		return Uint[T]{}, err
	}
	return e.Mul(inv), nil
}

// Equal reports whether e and o have the same value and modulus.
func (e Uint[T]) Equal(o Uint[T]) bool {
	return e.v == o.v && e.m == o.m
}

// SameField reports whether e and o share a modulus.
func (e Uint[T]) SameField(o Uint[T]) bool {
	return e.m == o.m
}

// IsZero reports whether e is the additive identity.
func (e Uint[T]) IsZero() bool {
	return e.v == 0
}

// BigInt returns the value of e.
func (e Uint[T]) BigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(e.v))
}

// String returns the value of e in decimal.
func (e Uint[T]) String() string {
	return strconv.FormatUint(uint64(e.v), 10)
}
