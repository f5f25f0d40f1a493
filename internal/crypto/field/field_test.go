package field

import (
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrInvalidModulus, "ErrInvalidModulus"},
		{ErrValueOutOfRange, "ErrValueOutOfRange"},
		{ErrNotInvertible, "ErrNotInvertible"},
		{ErrModulusMismatch, "ErrModulusMismatch"},
		{ErrInvalidEncoding, "ErrInvalidEncoding"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
		}
	}
}

func TestNewUint(t *testing.T) {
	tests := []struct {
		name    string
		v, m    uint16
		wantErr error
	}{
		{"valid", 192, 223, nil},
		{"zero", 0, 223, nil},
		{"max", 222, 223, nil},
		{"equal to modulus", 223, 223, ErrValueOutOfRange},
		{"above modulus", 500, 223, ErrValueOutOfRange},
		{"modulus one", 0, 1, ErrInvalidModulus},
		{"modulus zero", 0, 0, ErrInvalidModulus},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e, err := NewUint(test.v, test.m)
			if test.wantErr != nil {
				assert.True(t, errors.Is(err, test.wantErr), "got %v", err)
				var ferr Error
				assert.True(t, errors.As(err, &ferr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.v, e.Value())
			assert.Equal(t, test.m, e.Modulus())
		})
	}
}

func TestUintArithmetic(t *testing.T) {
	x := MustUint[uint16](192, 223)
	y := MustUint[uint16](170, 223)
	z := MustUint[uint16](105, 223)

	assert.Equal(t, uint16(139), x.Add(y).Value())
	assert.Equal(t, uint16(201), y.Sub(x).Value())
	assert.Equal(t, uint16(22), x.Sub(y).Value())
	assert.Equal(t, uint16(90), x.Mul(z).Value())
	assert.Equal(t, uint16(1), MustUint[uint16](3, 223).Exp(222).Value())
	assert.Equal(t, uint16(82), MustUint[uint16](7, 223).Exp(5).Value())
	assert.Equal(t, uint16(1), x.Exp(0).Value())

	inv, err := z.Inverse()
	require.NoError(t, err)
	assert.Equal(t, uint16(17), inv.Value())

	q, err := x.Div(z)
	require.NoError(t, err)
	assert.Equal(t, uint16(142), q.Value())

	assert.True(t, x.Add(x.Neg()).IsZero())
	assert.True(t, MustUint[uint16](0, 223).Neg().IsZero())
	assert.Equal(t, "192", x.String())
	assert.Equal(t, 0, big.NewInt(192).Cmp(x.BigInt()))
}

func TestUintInverseAll(t *testing.T) {
	one := MustUint[uint8](1, 223)
	for v := uint8(1); v < 223; v++ {
		e := MustUint(v, 223)
		inv, err := e.Inverse()
		require.NoError(t, err)
		if !e.Mul(inv).Equal(one) {
			t.Fatalf("%d * %d != 1 mod 223", v, inv.Value())
		}
	}
}

// The largest 64-bit prime exercises the overflow paths of Add and Mul.
func TestUintWide(t *testing.T) {
	const m = uint64(18446744073709551557)
	a := MustUint(m-1, m)
	b := MustUint(m-2, m)

	assert.Equal(t, m-3, a.Add(b).Value())
	assert.Equal(t, uint64(2), a.Mul(b).Value())
	assert.Equal(t, uint64(9223372036854775808), MustUint(2, m).Exp(63).Value())

	inv, err := b.Inverse()
	require.NoError(t, err)
	assert.Equal(t, uint64(9223372036854775778), inv.Value())
	assert.Equal(t, uint64(1), b.Mul(inv).Value())
}

func TestUintNotInvertible(t *testing.T) {
	_, err := MustUint[uint8](0, 223).Inverse()
	assert.ErrorIs(t, err, ErrNotInvertible)

	_, err = MustUint[uint8](5, 223).Div(MustUint[uint8](0, 223))
	assert.ErrorIs(t, err, ErrNotInvertible)

	// Composite modulus: 4 shares a factor with 10, 3 does not.
	_, err = MustUint[uint8](4, 10).Inverse()
	assert.ErrorIs(t, err, ErrNotInvertible)
	inv, err := MustUint[uint8](3, 10).Inverse()
	require.NoError(t, err)
	assert.Equal(t, uint8(7), inv.Value())
}

func TestUintModulusMismatch(t *testing.T) {
	a := MustUint[uint8](3, 7)
	b := MustUint[uint8](3, 11)

	assert.False(t, a.Equal(b))
	assert.False(t, a.SameField(b))
	assert.PanicsWithError(t, "cannot combine elements mod 7 and mod 11",
		func() { a.Add(b) })
	assert.Panics(t, func() { a.Mul(b) })
	assert.Panics(t, func() { _, _ = a.Div(b) })
}

func TestNewBig(t *testing.T) {
	m := big.NewInt(223)

	_, err := NewBig(big.NewInt(223), m)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = NewBig(big.NewInt(-1), m)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = NewBig(nil, m)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = NewBig(big.NewInt(0), big.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidModulus)
	_, err = NewBigFromHex("xyz", "df")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
	_, err = NewBigFromHex("c0", "zz")
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	e, err := NewBigFromHex("c0", "df")
	require.NoError(t, err)
	assert.Equal(t, "192", e.String())

	// Construction copies its arguments.
	v := big.NewInt(5)
	e = MustBig(v, m)
	v.SetInt64(6)
	assert.Equal(t, "5", e.String())
	e.Value().SetInt64(7)
	assert.Equal(t, "5", e.String())
}

func TestBigArithmetic(t *testing.T) {
	m := big.NewInt(223)
	x := MustBig(big.NewInt(192), m)
	y := MustBig(big.NewInt(170), m)
	z := MustBig(big.NewInt(105), m)

	assert.Equal(t, "139", x.Add(y).String())
	assert.Equal(t, "201", y.Sub(x).String())
	assert.Equal(t, "90", x.Mul(z).String())
	assert.Equal(t, "82", MustBig(big.NewInt(7), m).Exp(5).String())

	q, err := x.Div(z)
	require.NoError(t, err)
	assert.Equal(t, "142", q.String())

	_, err = x.Div(MustBig(big.NewInt(0), m))
	assert.ErrorIs(t, err, ErrNotInvertible)

	assert.True(t, x.Add(x.Neg()).IsZero())
	assert.True(t, x.Equal(MustBig(big.NewInt(192), big.NewInt(223))))
	assert.False(t, x.Equal(MustBig(big.NewInt(192), big.NewInt(227))))
	assert.Panics(t, func() { x.Add(MustBig(big.NewInt(1), big.NewInt(227))) })
}

func TestS256(t *testing.T) {
	p := S256Prime()
	_, err := NewS256(p)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = NewS256(big.NewInt(-3))
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	pm1 := MustS256(new(big.Int).Sub(p, big.NewInt(1)))
	one := S256FromUint16(1)
	assert.True(t, pm1.Add(one).IsZero())
	assert.True(t, pm1.Equal(one.Neg()))
	assert.True(t, pm1.Mul(pm1).Equal(one))

	_, err = S256FromUint16(0).Inverse()
	assert.ErrorIs(t, err, ErrNotInvertible)
	assert.Equal(t, "7", S256FromUint16(7).String())
}

func TestF25519(t *testing.T) {
	p := F25519Prime()
	_, err := NewF25519(p)
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	pm1 := MustF25519(new(big.Int).Sub(p, big.NewInt(1)))
	one := MustF25519(big.NewInt(1))
	assert.True(t, pm1.Add(one).IsZero())
	assert.True(t, pm1.Equal(one.Neg()))
	assert.True(t, pm1.Mul(pm1).Equal(one))
	assert.Equal(t, new(big.Int).Sub(p, big.NewInt(1)).String(), pm1.String())

	_, err = MustF25519(big.NewInt(0)).Div(one)
	require.NoError(t, err)
	_, err = one.Div(MustF25519(big.NewInt(0)))
	assert.ErrorIs(t, err, ErrNotInvertible)
}

// The fixed-limb backends must agree with the math/big backend on every
// operation the curve layer uses.
func TestFixedLimbBackendsMatchBig(t *testing.T) {
	viaBig := func(a, b, m *big.Int) []string {
		x, y := MustBig(a, m), MustBig(b, m)
		q, err := x.Div(y)
		require.NoError(t, err)
		return []string{x.Add(y).String(), x.Sub(y).String(),
			x.Mul(y).String(), q.String(), x.Exp(3).String(),
			x.Neg().String()}
	}
	randNonZero := func(p *big.Int) *big.Int {
		v, err := rand.Int(rand.Reader, new(big.Int).Sub(p, big.NewInt(1)))
		require.NoError(t, err)
		return v.Add(v, big.NewInt(1))
	}

	for i := 0; i < 32; i++ {
		t.Run("s256", func(t *testing.T) {
			p := S256Prime()
			a, b := randNonZero(p), randNonZero(p)
			x, y := MustS256(a), MustS256(b)
			q, err := x.Div(y)
			require.NoError(t, err)

			got := []string{x.Add(y).String(), x.Sub(y).String(),
				x.Mul(y).String(), q.String(), x.Exp(3).String(),
				x.Neg().String()}
			assert.Equal(t, viaBig(a, b, p), got)
		})

		t.Run("f25519", func(t *testing.T) {
			p := F25519Prime()
			a, b := randNonZero(p), randNonZero(p)
			x, y := MustF25519(a), MustF25519(b)
			q, err := x.Div(y)
			require.NoError(t, err)

			got := []string{x.Add(y).String(), x.Sub(y).String(),
				x.Mul(y).String(), q.String(), x.Exp(3).String(),
				x.Neg().String()}
			assert.Equal(t, viaBig(a, b, p), got)
		})
	}
}
