package secp256k1

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/crypto/curve"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

const (
	generatorXHex = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	generatorYHex = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	groupOrderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
)

// ErrSecretOutOfRange is returned when a secret key is not in [0, n).
var ErrSecretOutOfRange = errors.New("secret key out of range")

// Params holds the secp256k1 domain parameters. P, Gx, Gy and N are lower-case
// hexadecimal without prefix.
type Params struct {
	P  string
	Gx string
	Gy string
	N  string
	A  uint8
	B  uint8
}

// New returns the secp256k1 parameters. The field prime is computed as
// 2^256 - 2^32 - 977.
func New() *Params {
	p := new(big.Int).Lsh(big.NewInt(1), 256)
	p.Sub(p, new(big.Int).Lsh(big.NewInt(1), 32))
	p.Sub(p, big.NewInt(977))

	return &Params{
		P:  p.Text(16),
		Gx: generatorXHex,
		Gy: generatorYHex,
		N:  groupOrderHex,
		A:  0,
		B:  7,
	}
}

func mustParseHex(name, s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic(fmt.Sprintf("secp256k1: invalid hex for %s: %q", name, s))
	}
	return v
}

// FieldPrime returns p.
func (s *Params) FieldPrime() *big.Int {
	return mustParseHex("p", s.P)
}

// GroupOrder returns n, the order of the generator.
func (s *Params) GroupOrder() *big.Int {
	return mustParseHex("n", s.N)
}

func (s *Params) element(name, hex string) field.Big {
	return field.MustBig(mustParseHex(name, hex), s.FieldPrime())
}

func (s *Params) small(v uint8) field.Big {
	return field.MustBig(big.NewInt(int64(v)), s.FieldPrime())
}

// Curve returns y^2 = x^3 + 7 over the math/big backend.
func (s *Params) Curve() curve.Curve[field.Big] {
	return curve.NewCurve(s.small(s.A), s.small(s.B))
}

// Generator returns G. It fails if the parameters were edited so that G is no
// longer on the curve.
func (s *Params) Generator() (curve.Point[field.Big], error) {
	g := curve.Affine[field.Big]{
		X: s.element("gx", s.Gx),
		Y: s.element("gy", s.Gy),
	}
	return curve.NewPoint[field.Big](g, s.Curve())
}

// SecretKey returns a secret key drawn uniformly from [0, n) using
// crypto/rand.
func (s *Params) SecretKey() (*big.Int, error) {
	return s.SecretKeyFrom(rand.Reader)
}

// SecretKeyFrom is like SecretKey but reads randomness from r.
func (s *Params) SecretKeyFrom(r io.Reader) (*big.Int, error) {
	k, err := rand.Int(r, s.GroupOrder())
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret key: %w", err)
	}
	return k, nil
}

func (s *Params) checkSecret(secret *big.Int) error {
	if secret == nil || secret.Sign() < 0 || secret.Cmp(s.GroupOrder()) >= 0 {
		return fmt.Errorf("%w: %v", ErrSecretOutOfRange, secret)
	}
	return nil
}

// PublicKey returns secret·G. secret must be in [0, n).
func (s *Params) PublicKey(secret *big.Int) (curve.Point[field.Big], error) {
	if err := s.checkSecret(secret); err != nil {
		return curve.Point[field.Big]{}, err
	}
	g, err := s.Generator()
	if err != nil {
		return curve.Point[field.Big]{}, err
	}
	return g.ScalarMult(secret)
}

// PublicKeyString returns the public key of secret as "x, y" in decimal, or
// "ZERO" for the identity.
func (s *Params) PublicKeyString(secret *big.Int) (string, error) {
	pub, err := s.PublicKey(secret)
	if err != nil {
		return "", err
	}
	return FormatPoint(pub), nil
}

// FormatPoint renders an affine point as "x, y" in decimal and the identity as
// "ZERO".
func FormatPoint[E curve.FieldElement[E]](p curve.Point[E]) string {
	x, y, ok := p.XY()
	if !ok {
		return "ZERO"
	}
	return fmt.Sprintf("%s, %s", x, y)
}

// FastCurve returns the curve over the fixed-limb field backend. Only the
// coefficients are taken from s; the field is always the secp256k1 field.
func (s *Params) FastCurve() curve.Curve[field.S256] {
	return curve.NewCurve(field.S256FromUint16(uint16(s.A)),
		field.S256FromUint16(uint16(s.B)))
}

// FastGenerator returns G over the fixed-limb field backend.
func (s *Params) FastGenerator() (curve.Point[field.S256], error) {
	x, err := field.NewS256(mustParseHex("gx", s.Gx))
	if err != nil {
		return curve.Point[field.S256]{}, err
	}
	y, err := field.NewS256(mustParseHex("gy", s.Gy))
	if err != nil {
		return curve.Point[field.S256]{}, err
	}
	g := curve.Affine[field.S256]{X: x, Y: y}
	return curve.NewPoint[field.S256](g, s.FastCurve())
}

// FastPublicKey is PublicKey over the fixed-limb field backend.
func (s *Params) FastPublicKey(secret *big.Int) (curve.Point[field.S256], error) {
	if err := s.checkSecret(secret); err != nil {
		return curve.Point[field.S256]{}, err
	}
	g, err := s.FastGenerator()
	if err != nil {
		return curve.Point[field.S256]{}, err
	}
	return g.ScalarMult(secret)
}

// Validate checks that G is on the curve and that n·G is the identity.
func (s *Params) Validate() error {
	g, err := s.Generator()
	if err != nil {
		return fmt.Errorf("invalid generator: %w", err)
	}
	ng, err := g.ScalarMult(s.GroupOrder())
	if err != nil {
		return fmt.Errorf("failed to compute n·G: %w", err)
	}
	if !ng.IsIdentity() {
		return fmt.Errorf("n·G = %s, want identity", ng)
	}
	return nil
}
