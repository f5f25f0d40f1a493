package curve

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidPoint is returned when affine coordinates do not satisfy the
	// curve equation, or do not belong to the field of the curve.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrCurveMismatch is returned when two points on different curves are
	// combined.
	ErrCurveMismatch = ErrorKind("ErrCurveMismatch")

	// ErrNegativeScalar is returned when a point is multiplied by a negative
	// scalar.
	ErrNegativeScalar = ErrorKind("ErrNegativeScalar")

	// ErrNotInvertible is returned when a slope denominator has no inverse.
	// The group law handles every case where this can happen on a prime
	// field, so seeing it indicates a broken field backend.
	ErrNotInvertible = ErrorKind("ErrNotInvertible")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to curve arithmetic.  It has full support
// for errors.Is and errors.As, so the caller can ascertain the specific reason
// for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
