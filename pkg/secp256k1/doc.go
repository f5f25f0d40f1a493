// Package secp256k1 provides the secp256k1 domain parameters on top of the
// generic curve package, together with secret and public key derivation.
//
// Two instantiations are offered. The default one works over math/big and is
// the reference; the Fast variants run the same group law over 26-bit limb
// field elements and agree with it bit for bit.
//
// Key derivation is not constant time. It is suitable for tooling and tests,
// not for handling secrets on hostile machines.
package secp256k1
