package field

import (
	"fmt"
	"math/big"
)

var two = big.NewInt(2)

// Big is an element of the integers modulo m for an arbitrary modulus. The
// zero value is not usable; construct elements with NewBig and friends.
//
// The underlying big.Int values are never mutated after construction, so Big
// values may be copied and shared freely.
type Big struct {
	v *big.Int
	m *big.Int
}

// NewBig returns the element v mod m. It requires m >= 2 and 0 <= v < m. Both
// arguments are copied.
func NewBig(v, m *big.Int) (Big, error) {
	if m == nil || m.Cmp(two) < 0 {
		return Big{}, makeError(ErrInvalidModulus,
			fmt.Sprintf("modulus %v is less than 2", m))
	}
	if v == nil || v.Sign() < 0 || v.Cmp(m) >= 0 {
		str := fmt.Sprintf("value %v is not in [0, %v)", v, m)
		return Big{}, makeError(ErrValueOutOfRange, str)
	}
	return Big{v: new(big.Int).Set(v), m: new(big.Int).Set(m)}, nil
}

// MustBig is like NewBig but panics on invalid input.
func MustBig(v, m *big.Int) Big {
	e, err := NewBig(v, m)
	if err != nil {
		panic(err)
	}
	return e
}

// NewBigFromUint64 returns the element v mod m under the same rules as NewBig.
func NewBigFromUint64(v uint64, m *big.Int) (Big, error) {
	return NewBig(new(big.Int).SetUint64(v), m)
}

// NewBigFromHex parses v and m as hexadecimal strings without prefix.
func NewBigFromHex(v, m string) (Big, error) {
	bv, ok := new(big.Int).SetString(v, 16)
	if !ok {
		return Big{}, makeError(ErrInvalidEncoding,
			fmt.Sprintf("invalid hex value %q", v))
	}
	bm, ok := new(big.Int).SetString(m, 16)
	if !ok {
		return Big{}, makeError(ErrInvalidEncoding,
			fmt.Sprintf("invalid hex modulus %q", m))
	}
	return NewBig(bv, bm)
}

// Value returns a copy of the canonical representative in [0, m).
func (e Big) Value() *big.Int {
	return new(big.Int).Set(e.v)
}

// Modulus returns a copy of m.
func (e Big) Modulus() *big.Int {
	return new(big.Int).Set(e.m)
}

func (e Big) mustMatch(o Big) {
	if e.m != o.m && e.m.Cmp(o.m) != 0 {
		str := fmt.Sprintf("cannot combine elements mod %v and mod %v", e.m,
			o.m)
		panic(makeError(ErrModulusMismatch, str))
	}
}

// reduce takes ownership of v.
func (e Big) reduce(v *big.Int) Big {
	return Big{v: v.Mod(v, e.m), m: e.m}
}

// Add returns e + o.
func (e Big) Add(o Big) Big {
	e.mustMatch(o)
	return e.reduce(new(big.Int).Add(e.v, o.v))
}

// Sub returns e - o.
func (e Big) Sub(o Big) Big {
	e.mustMatch(o)
	return e.reduce(new(big.Int).Sub(e.v, o.v))
}

// Mul returns e * o.
func (e Big) Mul(o Big) Big {
	e.mustMatch(o)
	return e.reduce(new(big.Int).Mul(e.v, o.v))
}

// Neg returns -e.
func (e Big) Neg() Big {
	return e.reduce(new(big.Int).Neg(e.v))
}

// Exp returns e^k.
func (e Big) Exp(k uint64) Big {
	exp := new(big.Int).SetUint64(k)
	return Big{v: new(big.Int).Exp(e.v, exp, e.m), m: e.m}
}

// Inverse returns the multiplicative inverse of e.
func (e Big) Inverse() (Big, error) {
	if e.v.Sign() == 0 {
		return Big{}, makeError(ErrNotInvertible, "zero has no inverse")
	}
	inv := new(big.Int).ModInverse(e.v, e.m)
	if inv == nil {
		str := fmt.Sprintf("%v has no inverse mod %v", e.v, e.m)
		return Big{}, makeError(ErrNotInvertible, str)
	}
	return Big{v: inv, m: e.m}, nil
}

// Div returns e / o.
func (e Big) Div(o Big) (Big, error) {
	e.mustMatch(o)
	inv, err := o.Inverse()
	if err != nil {
		return Big{}, err
	}
	return e.Mul(inv), nil
}

// Equal reports whether e and o have the same value and modulus.
func (e Big) Equal(o Big) bool {
	return e.SameField(o) && e.v.Cmp(o.v) == 0
}

// SameField reports whether e and o share a modulus.
func (e Big) SameField(o Big) bool {
	return e.m == o.m || e.m.Cmp(o.m) == 0
}

// IsZero reports whether e is the additive identity.
func (e Big) IsZero() bool {
	return e.v.Sign() == 0
}

// BigInt returns a copy of the value of e.
func (e Big) BigInt() *big.Int {
	return e.Value()
}

// String returns the value of e in decimal.
func (e Big) String() string {
	return e.v.String()
}
