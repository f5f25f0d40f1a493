package curves

import (
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/pkg/secp256k1"
)

// Registry names of the secp256k1 instantiations.
const (
	Secp256k1Name     = "secp256k1"
	Secp256k1FastName = "secp256k1-fast"
)

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curves: invalid hex constant " + s)
	}
	return v
}

func secp256k1Params(name string) *Params {
	s := secp256k1.New()
	return &Params{
		Name:    name,
		P:       s.FieldPrime(),
		N:       s.GroupOrder(),
		A:       big.NewInt(int64(s.A)),
		B:       big.NewInt(int64(s.B)),
		Gx:      mustHex(s.Gx),
		Gy:      mustHex(s.Gy),
		BitSize: 256,
	}
}

// NewSecp256k1 returns secp256k1 over the math/big field backend.
func NewSecp256k1() (Curve, error) {
	params := secp256k1Params(Secp256k1Name)
	return newWeierstrass(params, func(v *big.Int) (field.Big, error) {
		return field.NewBig(v, params.P)
	})
}

// NewSecp256k1Fast returns secp256k1 over the fixed-limb field backend.
func NewSecp256k1Fast() (Curve, error) {
	return newWeierstrass(secp256k1Params(Secp256k1FastName), field.NewS256)
}
