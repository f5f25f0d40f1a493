// Package field provides prime field elements for the curve package.
//
// Four backends are available and all of them are immutable values: every
// operation returns a new element and never modifies its receiver.
//
//   - Uint is backed by a native unsigned integer and works with any modulus
//     that fits the chosen width. It is meant for small teaching curves and
//     tests.
//   - Big is backed by math/big and works with any modulus.
//   - S256 is a fixed-limb element over the secp256k1 field prime, backed by
//     the decred secp256k1 field implementation.
//   - F25519 is a fixed-limb element over 2^255 - 19, backed by the
//     edwards25519 field implementation.
//
// Combining elements of different moduli is a programming error and panics
// with an Error of kind ErrModulusMismatch. Division by an element that has no
// inverse returns ErrNotInvertible.
package field
