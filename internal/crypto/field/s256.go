package field

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// S256Prime returns the secp256k1 field prime 2^256 - 2^32 - 977.
func S256Prime() *big.Int {
	return new(big.Int).Set(secp256k1.S256().P)
}

// S256 is an element of the secp256k1 base field stored in fixed 26-bit limbs.
// The stored value is always normalized. The zero value is the element 0.
type S256 struct {
	v secp256k1.FieldVal
}

// NewS256 returns v as an element of the secp256k1 field. It requires
// 0 <= v < p.
func NewS256(v *big.Int) (S256, error) {
	if v == nil || v.Sign() < 0 || v.Cmp(secp256k1.S256().P) >= 0 {
		str := fmt.Sprintf("value %v is not in the secp256k1 field", v)
		return S256{}, makeError(ErrValueOutOfRange, str)
	}
	var buf [32]byte
	v.FillBytes(buf[:])

	var e S256
	if overflow := e.v.SetBytes(&buf); overflow != 0 {
		str := fmt.Sprintf("value %v overflows the secp256k1 prime", v)
		return S256{}, makeError(ErrValueOutOfRange, str)
	}
	return e, nil
}

// MustS256 is like NewS256 but panics on invalid input.
func MustS256(v *big.Int) S256 {
	e, err := NewS256(v)
	if err != nil {
		panic(err)
	}
	return e
}

// S256FromUint16 returns a small constant as a field element.
func S256FromUint16(v uint16) S256 {
	var e S256
	e.v.SetInt(v)
	return e
}

// Add returns e + o.
func (e S256) Add(o S256) S256 {
	var r S256
	r.v.Add2(&e.v, &o.v).Normalize()
	return r
}

// Sub returns e - o.
func (e S256) Sub(o S256) S256 {
	var r S256
	r.v.NegateVal(&o.v, 1).Add(&e.v).Normalize()
	return r
}

// Mul returns e * o.
func (e S256) Mul(o S256) S256 {
	var r S256
	r.v.Mul2(&e.v, &o.v).Normalize()
	return r
}

// Neg returns -e.
func (e S256) Neg() S256 {
	var r S256
	r.v.NegateVal(&e.v, 1).Normalize()
	return r
}

// Exp returns e^k.
func (e S256) Exp(k uint64) S256 {
	result := S256FromUint16(1)
	base := e
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
	}
	return result
}

// Inverse returns the multiplicative inverse of e.
func (e S256) Inverse() (S256, error) {
	if e.v.IsZero() {
		return S256{}, makeError(ErrNotInvertible, "zero has no inverse")
	}
	var r S256
	r.v.Set(&e.v).Inverse().Normalize()
	return r, nil
}

// Div returns e / o.
func (e S256) Div(o S256) (S256, error) {
	inv, err := o.Inverse()
	if err != nil {
		return S256{}, err
	}
	return e.Mul(inv), nil
}

// Equal reports whether e and o are the same element.
func (e S256) Equal(o S256) bool {
	return e.v.Equals(&o.v)
}

// SameField is always true: every S256 lives in the secp256k1 field.
func (e S256) SameField(S256) bool {
	return true
}

// IsZero reports whether e is the additive identity.
func (e S256) IsZero() bool {
	return e.v.IsZero()
}

// BigInt returns the value of e.
func (e S256) BigInt() *big.Int {
	b := e.v.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// String returns the value of e in decimal.
func (e S256) String() string {
	return e.BigInt().String()
}
