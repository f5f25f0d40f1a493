// Package curve implements the group law of short Weierstrass curves
// y^2 = x^3 + ax + b over a prime field.
//
// The algorithms are written once against the FieldElement interface and are
// instantiated with any backend from the field package: native integers for
// small curves, math/big for arbitrary moduli and the fixed-limb backends for
// the secp256k1 and 2^255 - 19 fields.
//
// Curves, coordinates and points are immutable values. Every operation returns
// a new value and is safe for concurrent use.
//
// Scalars passed to ScalarMult are used as given. They are not reduced modulo
// the order of the point; callers that want group-order semantics must reduce
// them first.
package curve
