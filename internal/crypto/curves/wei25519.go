package curves

import (
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// Wei25519Name is the registry name of Curve25519 in short Weierstrass form.
const Wei25519Name = "wei25519"

// Curve25519 v^2 = u^3 + 486662u^2 + u mapped by x = u + 486662/3. The base
// point is the image of u = 9 and the curve has cofactor 8.
const (
	wei25519A  = "2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa984914a144"
	wei25519B  = "7b425ed097b425ed097b425ed097b425ed097b425ed097b4260b5e9c7710c864"
	wei25519Gx = "2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaad245a"
	wei25519Gy = "20ae19a1b8a086b4e01edd2c7748d14c923d4d7e6d7c61b229e9c5a27eced3d9"
	wei25519N  = "1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed"

	// Image of the Montgomery point (0, 0), which has order two.
	wei25519TwoTorsionX = "2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaad2451"
)

// NewWei25519 returns Curve25519 in short Weierstrass form over the
// edwards25519 field backend.
func NewWei25519() (Curve, error) {
	params := &Params{
		Name:    Wei25519Name,
		P:       field.F25519Prime(),
		N:       mustHex(wei25519N),
		A:       mustHex(wei25519A),
		B:       mustHex(wei25519B),
		Gx:      mustHex(wei25519Gx),
		Gy:      mustHex(wei25519Gy),
		BitSize: 255,
	}
	return newWeierstrass(params, field.NewF25519)
}
