package curve

import (
	"fmt"
	"math/big"
)

// Scalar is a non-negative integer read bit by bit. *big.Int satisfies it.
type Scalar interface {
	Sign() int
	BitLen() int
	Bit(i int) uint
}

// Integer is the set of native Go integer types accepted by Native.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Native returns k as a Scalar.
func Native[T Integer](k T) Scalar {
	if k < 0 {
		return big.NewInt(int64(k))
	}
	return new(big.Int).SetUint64(uint64(k))
}

// ScalarMult returns k·p by double-and-add from the least significant bit.
// k is not reduced modulo the order of p.
func ScalarMult[E FieldElement[E]](k Scalar, p Point[E]) (Point[E], error) {
	if k.Sign() < 0 {
		str := fmt.Sprintf("cannot multiply by negative scalar %v", k)
		return Point[E]{}, makeError(ErrNegativeScalar, str)
	}
	if p.coords == nil {
		return Point[E]{}, makeError(ErrInvalidPoint, "missing coordinates")
	}

	result := IdentityOn(p.curve)
	current := p
	var err error
	for i, n := 0, k.BitLen(); i < n; i++ {
		if k.Bit(i) == 1 {
			if result, err = result.Add(current); err != nil {
				return Point[E]{}, err
			}
		}
		if current, err = current.Add(current); err != nil {
			return Point[E]{}, err
		}
	}
	return result, nil
}

// ScalarMult returns k·p.
func (p Point[E]) ScalarMult(k Scalar) (Point[E], error) {
	return ScalarMult(k, p)
}
