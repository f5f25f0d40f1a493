package curve

import (
	"fmt"
)

// Point is an element of the group of points of a curve: either an affine
// point satisfying the curve equation or the identity. The zero value is not
// a valid point; construct points with NewPoint or IdentityOn.
type Point[E FieldElement[E]] struct {
	coords Coords[E]
	curve  Curve[E]
}

// NewPoint validates coords against c. The identity is always valid. An affine
// pair must lie in the field of the curve and satisfy its equation.
func NewPoint[E FieldElement[E]](coords Coords[E], c Curve[E]) (Point[E], error) {
	switch v := coords.(type) {
	case Identity[E]:
		return Point[E]{coords: v, curve: c}, nil
	case Affine[E]:
		if !c.Contains(v.X, v.Y) {
			str := fmt.Sprintf("(%s, %s) is not on the curve %s", v.X, v.Y, c)
			return Point[E]{}, makeError(ErrInvalidPoint, str)
		}
		return Point[E]{coords: v, curve: c}, nil
	case nil:
		return Point[E]{}, makeError(ErrInvalidPoint, "missing coordinates")
	default:
		panic(fmt.Sprintf("unknown coordinates %T", coords))
	}
}

// MustPoint is like NewPoint but panics if the point is not on the curve.
func MustPoint[E FieldElement[E]](coords Coords[E], c Curve[E]) Point[E] {
	p, err := NewPoint(coords, c)
	if err != nil {
		panic(err)
	}
	return p
}

// IdentityOn returns the identity of the group of points of c.
func IdentityOn[E FieldElement[E]](c Curve[E]) Point[E] {
	return Point[E]{coords: Identity[E]{}, curve: c}
}

// Coords returns the coordinates of p.
func (p Point[E]) Coords() Coords[E] {
	return p.coords
}

// Curve returns the curve p lies on.
func (p Point[E]) Curve() Curve[E] {
	return p.curve
}

// IsIdentity reports whether p is the point at infinity.
func (p Point[E]) IsIdentity() bool {
	_, ok := p.coords.(Identity[E])
	return ok
}

// XY returns the affine coordinates of p. ok is false for the identity.
func (p Point[E]) XY() (x, y E, ok bool) {
	if a, isAffine := p.coords.(Affine[E]); isAffine {
		return a.X, a.Y, true
	}
	return x, y, false
}

// Equal reports whether p and q are the same point on the same curve.
func (p Point[E]) Equal(q Point[E]) bool {
	if !p.curve.Equal(q.curve) {
		return false
	}
	switch a := p.coords.(type) {
	case Identity[E]:
		return q.IsIdentity()
	case Affine[E]:
		b, ok := q.coords.(Affine[E])
		return ok && a.X.Equal(b.X) && a.Y.Equal(b.Y)
	default:
		return false
	}
}

// Add returns p + q under the chord-and-tangent group law.
func (p Point[E]) Add(q Point[E]) (Point[E], error) {
	if p.coords == nil || q.coords == nil {
		return Point[E]{}, makeError(ErrInvalidPoint, "missing coordinates")
	}
	if !p.curve.Equal(q.curve) {
		str := fmt.Sprintf("cannot add points on %s and %s", p.curve, q.curve)
		return Point[E]{}, makeError(ErrCurveMismatch, str)
	}

	var p1, p2 Affine[E]
	switch a := p.coords.(type) {
	case Identity[E]:
		return q, nil
	case Affine[E]:
		p1 = a
	default:
		panic(fmt.Sprintf("unknown coordinates %T", p.coords))
	}
	switch b := q.coords.(type) {
	case Identity[E]:
		return p, nil
	case Affine[E]:
		p2 = b
	default:
		panic(fmt.Sprintf("unknown coordinates %T", q.coords))
	}

	var (
		s   E
		err error
	)
	switch {
	case !p1.X.Equal(p2.X):
		s, err = p2.Y.Sub(p1.Y).Div(p2.X.Sub(p1.X))
	case p1.Y.Equal(p2.Y):
		// Vertical tangent: the point has order two.
		if p1.Y.IsZero() {
			return IdentityOn(p.curve), nil
		}
		xx := p1.X.Mul(p1.X)
		num := xx.Add(xx).Add(xx).Add(p.curve.a)
		s, err = num.Div(p1.Y.Add(p1.Y))
	default:
		// q = -p.
		return IdentityOn(p.curve), nil
	}
	if err != nil {
		return Point[E]{}, Error{Err: ErrNotInvertible,
			Description: fmt.Sprintf("slope of %s + %s: %v", p, q, err)}
	}

	x3 := s.Mul(s).Sub(p1.X).Sub(p2.X)
	y3 := s.Mul(p1.X.Sub(x3)).Sub(p1.Y)
	return NewPoint[E](Affine[E]{X: x3, Y: y3}, p.curve)
}

// Double returns p + p.
func (p Point[E]) Double() (Point[E], error) {
	return p.Add(p)
}

// Neg returns -p.
func (p Point[E]) Neg() Point[E] {
	if a, ok := p.coords.(Affine[E]); ok {
		return Point[E]{coords: Affine[E]{X: a.X, Y: a.Y.Neg()}, curve: p.curve}
	}
	return p
}

// String returns "(x, y)" in decimal, or "Identity".
func (p Point[E]) String() string {
	switch a := p.coords.(type) {
	case Identity[E]:
		return "Identity"
	case Affine[E]:
		return fmt.Sprintf("(%s, %s)", a.X, a.Y)
	default:
		return "<invalid>"
	}
}
