package curve

import (
	"fmt"
	"math/big"
)

// FieldElement is the arithmetic the curve layer needs from a prime field.
// Implementations are immutable values. E is the implementing type itself.
type FieldElement[E any] interface {
	Add(E) E
	Sub(E) E
	Mul(E) E
	// Div fails when the divisor has no inverse.
	Div(E) (E, error)
	Exp(k uint64) E
	Neg() E
	// Equal reports whether both the value and the modulus match.
	Equal(E) bool
	SameField(E) bool
	IsZero() bool
	BigInt() *big.Int
	String() string
}

// Curve is the short Weierstrass curve y^2 = x^3 + ax + b. Both coefficients
// belong to the same field.
type Curve[E FieldElement[E]] struct {
	a, b E
}

// NewCurve returns the curve with coefficients a and b.
func NewCurve[E FieldElement[E]](a, b E) Curve[E] {
	return Curve[E]{a: a, b: b}
}

// A returns the linear coefficient.
func (c Curve[E]) A() E {
	return c.a
}

// B returns the constant coefficient.
func (c Curve[E]) B() E {
	return c.b
}

// Equal reports whether c and o have the same coefficients over the same field.
func (c Curve[E]) Equal(o Curve[E]) bool {
	return c.a.Equal(o.a) && c.b.Equal(o.b)
}

// Contains reports whether (x, y) satisfies the curve equation.
func (c Curve[E]) Contains(x, y E) bool {
	if !c.a.SameField(c.b) || !c.a.SameField(x) || !c.a.SameField(y) {
		return false
	}
	lhs := y.Exp(2)
	rhs := x.Exp(3).Add(c.a.Mul(x)).Add(c.b)
	return lhs.Equal(rhs)
}

// String returns the curve equation.
func (c Curve[E]) String() string {
	return fmt.Sprintf("y^2 = x^3 + %sx + %s", c.a, c.b)
}
