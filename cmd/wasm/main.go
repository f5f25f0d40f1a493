//go:build js && wasm

package main

import (
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/keygen"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("go-weierstrass WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoWeierstrass", map[string]interface{}{
		"Curves":    js.FuncOf(Curves),
		"Generate":  js.FuncOf(Generate),
		"PublicKey": js.FuncOf(PublicKey),
	})

	<-c
}

// Curves returns the names of the supported curves.
func Curves(this js.Value, args []js.Value) interface{} {
	names := curves.Names()
	out := make([]interface{}, len(names))
	for i, name := range names {
		out[i] = name
	}
	return out
}

// Generate draws a key pair.
// Arguments:
// 0: curve name (string)
// Returns:
// JSON key pair (string) or "error: ..."
func Generate(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (curve)"
	}
	gen, err := generator(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	kp, err := gen.Generate()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return marshal(kp)
}

// PublicKey derives the key pair of a secret.
// Arguments:
// 0: curve name (string)
// 1: secret in decimal (string)
// Returns:
// JSON key pair (string) or "error: ..."
func PublicKey(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (curve, secret)"
	}
	gen, err := generator(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	secret, ok := new(big.Int).SetString(args[1].String(), 10)
	if !ok {
		return "error: secret must be a decimal integer"
	}
	kp, err := gen.FromSecret(secret)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return marshal(kp)
}

func generator(name string) (*keygen.Generator, error) {
	c, err := curves.Lookup(name)
	if err != nil {
		return nil, err
	}
	return keygen.New(c), nil
}

func marshal(kp *keygen.KeyPair) interface{} {
	data, err := kp.Marshal()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}
