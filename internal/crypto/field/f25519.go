package field

import (
	"fmt"
	"math/big"

	fe "filippo.io/edwards25519/field"
)

var p25519 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255),
	big.NewInt(19))

// F25519Prime returns 2^255 - 19.
func F25519Prime() *big.Int {
	return new(big.Int).Set(p25519)
}

// F25519 is an element of GF(2^255 - 19) stored in fixed 51-bit limbs. The
// zero value is the element 0.
type F25519 struct {
	v fe.Element
}

// NewF25519 returns v as an element of GF(2^255 - 19). It requires
// 0 <= v < 2^255 - 19.
func NewF25519(v *big.Int) (F25519, error) {
	if v == nil || v.Sign() < 0 || v.Cmp(p25519) >= 0 {
		str := fmt.Sprintf("value %v is not in GF(2^255-19)", v)
		return F25519{}, makeError(ErrValueOutOfRange, str)
	}
	var buf [32]byte
	v.FillBytes(buf[:])
	reverse(buf[:])

	var e F25519
	if _, err := e.v.SetBytes(buf[:]); err != nil {
		return F25519{}, makeError(ErrInvalidEncoding, err.Error())
	}
	return e, nil
}

// MustF25519 is like NewF25519 but panics on invalid input.
func MustF25519(v *big.Int) F25519 {
	e, err := NewF25519(v)
	if err != nil {
		panic(err)
	}
	return e
}

// reverse converts between big and little endian in place.
func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Add returns e + o.
func (e F25519) Add(o F25519) F25519 {
	var r F25519
	r.v.Add(&e.v, &o.v)
	return r
}

// Sub returns e - o.
func (e F25519) Sub(o F25519) F25519 {
	var r F25519
	r.v.Subtract(&e.v, &o.v)
	return r
}

// Mul returns e * o.
func (e F25519) Mul(o F25519) F25519 {
	var r F25519
	r.v.Multiply(&e.v, &o.v)
	return r
}

// Neg returns -e.
func (e F25519) Neg() F25519 {
	var r F25519
	r.v.Negate(&e.v)
	return r
}

// Exp returns e^k.
func (e F25519) Exp(k uint64) F25519 {
	var result F25519
	result.v.One()
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
func (e F25519) Inverse() (F25519, error) {
	if e.IsZero() {
		return F25519{}, makeError(ErrNotInvertible, "zero has no inverse")
	}
	var r F25519
	r.v.Invert(&e.v)
	return r, nil
}

// Div returns e / o.
func (e F25519) Div(o F25519) (F25519, error) {
	inv, err := o.Inverse()
	if err != nil {
		return F25519{}, err
	}
	return e.Mul(inv), nil
}

// Equal reports whether e and o are the same element.
func (e F25519) Equal(o F25519) bool {
	return e.v.Equal(&o.v) == 1
}

// SameField is always true: every F25519 lives in GF(2^255 - 19).
func (e F25519) SameField(F25519) bool {
	return true
}

// IsZero reports whether e is the additive identity.
func (e F25519) IsZero() bool {
	var zero fe.Element
	return e.v.Equal(&zero) == 1
}

// BigInt returns the value of e.
func (e F25519) BigInt() *big.Int {
	b := e.v.Bytes()
	reverse(b)
	return new(big.Int).SetBytes(b)
}

// String returns the value of e in decimal.
func (e F25519) String() string {
	return e.BigInt().String()
}
