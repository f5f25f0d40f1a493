package keygen

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ugorji/go/codec"
)

// ZeroPublicKey is the text form of the identity as a public key.
const ZeroPublicKey = "ZERO"

// KeyPair is a secret scalar and its public point. A nil PublicX and PublicY
// is the identity, which only the zero secret maps to.
type KeyPair struct {
	Curve   string
	Secret  *big.Int
	PublicX *big.Int
	PublicY *big.Int
}

// IsZero reports whether the public key is the identity.
func (kp *KeyPair) IsZero() bool {
	return kp.PublicX == nil || kp.PublicY == nil
}

// PublicString returns the public key as "x, y" in decimal, or "ZERO".
func (kp *KeyPair) PublicString() string {
	if kp.IsZero() {
		return ZeroPublicKey
	}
	return fmt.Sprintf("%s, %s", kp.PublicX, kp.PublicY)
}

// keyPairWire is the serialized form. Integers travel as decimal strings and
// the identity as empty coordinates.
type keyPairWire struct {
	Curve   string `codec:"curve"`
	Secret  string `codec:"secret"`
	PublicX string `codec:"public_x"`
	PublicY string `codec:"public_y"`
}

func jsonHandle() *codec.JsonHandle {
	jh := new(codec.JsonHandle)
	jh.Canonical = true
	return jh
}

// Marshal returns the canonical JSON encoding of kp.
func (kp *KeyPair) Marshal() ([]byte, error) {
	w := keyPairWire{Curve: kp.Curve}
	if kp.Secret != nil {
		w.Secret = kp.Secret.String()
	}
	if !kp.IsZero() {
		w.PublicX = kp.PublicX.String()
		w.PublicY = kp.PublicY.String()
	}

	b := new(bytes.Buffer)
	enc := codec.NewEncoder(b, jsonHandle())
	if err := enc.Encode(w); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Unmarshal decodes a key pair written by Marshal. Coordinates must be both
// present or both empty.
func (kp *KeyPair) Unmarshal(data []byte) error {
	var w keyPairWire
	dec := codec.NewDecoder(bytes.NewBuffer(data), jsonHandle())
	if err := dec.Decode(&w); err != nil {
		return err
	}

	secret, err := parseDecimal("secret", w.Secret)
	if err != nil {
		return err
	}
	if secret == nil {
		return fmt.Errorf("missing secret")
	}
	x, err := parseDecimal("public_x", w.PublicX)
	if err != nil {
		return err
	}
	y, err := parseDecimal("public_y", w.PublicY)
	if err != nil {
		return err
	}
	if (x == nil) != (y == nil) {
		return fmt.Errorf("public key has only one coordinate")
	}

	*kp = KeyPair{Curve: w.Curve, Secret: secret, PublicX: x, PublicY: y}
	return nil
}

func parseDecimal(name, s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}
