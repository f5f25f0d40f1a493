package curves

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/smallyu/go-weierstrass/internal/crypto/curve"
)

// ErrUnknownCurve is returned by Lookup for a name that is not registered.
var ErrUnknownCurve = errors.New("unknown curve")

// Params are the domain parameters of a named short Weierstrass curve.
type Params struct {
	Name    string
	P       *big.Int // field prime
	N       *big.Int // order of G
	A, B    *big.Int
	Gx, Gy  *big.Int
	BitSize int
}

func (p *Params) clone() *Params {
	cp := func(v *big.Int) *big.Int { return new(big.Int).Set(v) }
	return &Params{
		Name:    p.Name,
		P:       cp(p.P),
		N:       cp(p.N),
		A:       cp(p.A),
		B:       cp(p.B),
		Gx:      cp(p.Gx),
		Gy:      cp(p.Gy),
		BitSize: p.BitSize,
	}
}

// Curve is a named curve with affine coordinates exchanged as big integers.
// The identity is represented by nil coordinates.
type Curve interface {
	// Name returns the registry name of the curve.
	Name() string

	// Params returns a copy of the domain parameters.
	Params() *Params

	// NewScalar generates a random scalar in [0, N).
	NewScalar() (*big.Int, error)

	// ScalarBaseMult computes k * G.
	ScalarBaseMult(k *big.Int) (x, y *big.Int, err error)

	// ScalarMult computes k * P.
	ScalarMult(px, py, k *big.Int) (x, y *big.Int, err error)

	// Add combines two points.
	Add(x1, y1, x2, y2 *big.Int) (x, y *big.Int, err error)

	// IsOnCurve reports whether (x, y) is an affine point of the curve.
	IsOnCurve(x, y *big.Int) bool
}

// weierstrass adapts the generic group law over field E to Curve.
type weierstrass[E curve.FieldElement[E]] struct {
	params  *Params
	curve   curve.Curve[E]
	g       curve.Point[E]
	element func(*big.Int) (E, error)
}

func newWeierstrass[E curve.FieldElement[E]](params *Params,
	element func(*big.Int) (E, error)) (Curve, error) {

	w := &weierstrass[E]{params: params, element: element}
	a, err := element(params.A)
	if err != nil {
		return nil, fmt.Errorf("%s: coefficient a: %w", params.Name, err)
	}
	b, err := element(params.B)
	if err != nil {
		return nil, fmt.Errorf("%s: coefficient b: %w", params.Name, err)
	}
	w.curve = curve.NewCurve(a, b)
	if w.g, err = w.point(params.Gx, params.Gy); err != nil {
		return nil, fmt.Errorf("%s: generator: %w", params.Name, err)
	}
	return w, nil
}

func (w *weierstrass[E]) Name() string {
	return w.params.Name
}

func (w *weierstrass[E]) Params() *Params {
	return w.params.clone()
}

func (w *weierstrass[E]) NewScalar() (*big.Int, error) {
	// Generate random integer in [0, N-1]
	k, err := rand.Int(rand.Reader, w.params.N)
	if err != nil {
		return nil, err
	}
	return k, nil
}

// point converts big integer coordinates. nil, nil is the identity.
func (w *weierstrass[E]) point(x, y *big.Int) (curve.Point[E], error) {
	if x == nil && y == nil {
		return curve.IdentityOn(w.curve), nil
	}
	if x == nil || y == nil {
		return curve.Point[E]{}, fmt.Errorf("%s: half of a coordinate pair is nil",
			w.params.Name)
	}
	ex, err := w.element(x)
	if err != nil {
		return curve.Point[E]{}, err
	}
	ey, err := w.element(y)
	if err != nil {
		return curve.Point[E]{}, err
	}
	return curve.NewPoint[E](curve.Affine[E]{X: ex, Y: ey}, w.curve)
}

func unpack[E curve.FieldElement[E]](p curve.Point[E]) (*big.Int, *big.Int) {
	x, y, ok := p.XY()
	if !ok {
		return nil, nil
	}
	return x.BigInt(), y.BigInt()
}

func (w *weierstrass[E]) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int, error) {
	r, err := w.g.ScalarMult(k)
	if err != nil {
		return nil, nil, err
	}
	x, y := unpack(r)
	return x, y, nil
}

func (w *weierstrass[E]) ScalarMult(px, py, k *big.Int) (*big.Int, *big.Int, error) {
	p, err := w.point(px, py)
	if err != nil {
		return nil, nil, err
	}
	r, err := p.ScalarMult(k)
	if err != nil {
		return nil, nil, err
	}
	x, y := unpack(r)
	return x, y, nil
}

func (w *weierstrass[E]) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int, error) {
	p, err := w.point(x1, y1)
	if err != nil {
		return nil, nil, err
	}
	q, err := w.point(x2, y2)
	if err != nil {
		return nil, nil, err
	}
	r, err := p.Add(q)
	if err != nil {
		return nil, nil, err
	}
	x, y := unpack(r)
	return x, y, nil
}

func (w *weierstrass[E]) IsOnCurve(x, y *big.Int) bool {
	if x == nil || y == nil {
		return false
	}
	_, err := w.point(x, y)
	return err == nil
}

var registry = map[string]func() (Curve, error){
	Secp256k1Name:     NewSecp256k1,
	Secp256k1FastName: NewSecp256k1Fast,
	Wei25519Name:      NewWei25519,
}

// Lookup returns the curve registered under name.
func Lookup(name string) (Curve, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return ctor()
}

// Names returns the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
