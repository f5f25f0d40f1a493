package benchmark

import (
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/smallyu/go-weierstrass/internal/crypto/curve"
	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/internal/keygen"
	params "github.com/smallyu/go-weierstrass/pkg/secp256k1"
)

// secret is a fixed full-width scalar so every run does the same work.
var secret, _ = new(big.Int).SetString(
	"c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00", 16)

func BenchmarkToyScalarMult(b *testing.B) {
	m := uint16(223)
	c := curve.NewCurve(field.MustUint(0, m), field.MustUint(7, m))
	g := curve.MustPoint[field.Uint[uint16]](curve.Affine[field.Uint[uint16]]{
		X: field.MustUint(47, m), Y: field.MustUint(71, m)}, c)
	k := curve.Native(20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.ScalarMult(k); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPublicKey compares the field backends on secp256k1.
func BenchmarkPublicKey(b *testing.B) {
	s := params.New()

	b.Run("big", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := s.PublicKey(secret); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("fixed-limb", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := s.FastPublicKey(secret); err != nil {
				b.Fatal(err)
			}
		}
	})

	// Reference points: constant-time Jacobian implementations.
	b.Run("decred", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			secp256k1.S256().ScalarBaseMult(secret.Bytes())
		}
	})

	b.Run("btcec", func(b *testing.B) {
		var buf [32]byte
		secret.FillBytes(buf[:])
		for i := 0; i < b.N; i++ {
			btcec.PrivKeyFromBytes(buf[:])
		}
	})
}

func BenchmarkGenerate(b *testing.B) {
	for _, name := range curves.Names() {
		b.Run(name, func(b *testing.B) {
			c, err := curves.Lookup(name)
			if err != nil {
				b.Fatal(err)
			}
			gen := keygen.New(c)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := gen.Generate(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
