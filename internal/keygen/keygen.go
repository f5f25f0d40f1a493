// Package keygen derives key pairs on the named curves of the curves
// registry.
package keygen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/sirupsen/logrus"
	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/pkg/secp256k1"
)

// ErrSecretOutOfRange is returned when a secret is not in [0, n). It is the
// same value as secp256k1.ErrSecretOutOfRange.
var ErrSecretOutOfRange = secp256k1.ErrSecretOutOfRange

// ErrNilKeyPair is returned by Verify for a nil key pair.
var ErrNilKeyPair = errors.New("nil key pair")

// Option configures a Generator.
type Option func(*Generator)

// WithRand makes the generator draw secrets from r instead of crypto/rand.
func WithRand(r io.Reader) Option {
	return func(g *Generator) {
		g.rand = r
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(logger *logrus.Entry) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// Generator derives key pairs on a single curve.
type Generator struct {
	curve  curves.Curve
	rand   io.Reader
	logger *logrus.Entry
}

// New returns a Generator for c.
func New(c curves.Curve, opts ...Option) *Generator {
	g := &Generator{curve: c}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		logger := logrus.New()
		logger.Out = io.Discard
		g.logger = logrus.NewEntry(logger)
	}
	return g
}

// Generate draws a secret uniformly from [0, n) and derives its public key.
func (g *Generator) Generate() (*KeyPair, error) {
	var (
		secret *big.Int
		err    error
	)
	if g.rand == nil {
		secret, err = g.curve.NewScalar()
	} else {
		secret, err = rand.Int(g.rand, g.curve.Params().N)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to draw secret on %s: %w",
			g.curve.Name(), err)
	}
	return g.FromSecret(secret)
}

// FromSecret derives the key pair of secret, which must be in [0, n).
func (g *Generator) FromSecret(secret *big.Int) (*KeyPair, error) {
	n := g.curve.Params().N
	if secret == nil || secret.Sign() < 0 || secret.Cmp(n) >= 0 {
		return nil, fmt.Errorf("%w: not in [0, n) of %s", ErrSecretOutOfRange,
			g.curve.Name())
	}

	x, y, err := g.curve.ScalarBaseMult(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to derive public key on %s: %w",
			g.curve.Name(), err)
	}

	kp := &KeyPair{
		Curve:   g.curve.Name(),
		Secret:  new(big.Int).Set(secret),
		PublicX: x,
		PublicY: y,
	}
	g.logger.WithFields(logrus.Fields{
		"curve":  kp.Curve,
		"public": kp.PublicString(),
	}).Debug("Derived key pair")
	return kp, nil
}

// GenerateN returns n independent key pairs.
func (g *Generator) GenerateN(n int) ([]*KeyPair, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot generate %d key pairs", n)
	}
	pairs := make([]*KeyPair, 0, n)
	for i := 0; i < n; i++ {
		kp, err := g.Generate()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, kp)
	}
	return pairs, nil
}

// Verify checks that kp belongs to the generator's curve and that its public
// key is derived from its secret.
func (g *Generator) Verify(kp *KeyPair) error {
	if kp == nil {
		return ErrNilKeyPair
	}
	if kp.Curve != g.curve.Name() {
		return fmt.Errorf("key pair is on %q, not %q", kp.Curve, g.curve.Name())
	}
	want, err := g.FromSecret(kp.Secret)
	if err != nil {
		return err
	}
	if want.PublicString() != kp.PublicString() {
		return fmt.Errorf("public key %s does not match secret", kp.PublicString())
	}
	return nil
}
