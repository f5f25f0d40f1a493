package field

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidModulus is returned when a modulus is smaller than 2.
	ErrInvalidModulus = ErrorKind("ErrInvalidModulus")

	// ErrValueOutOfRange is returned when a value is negative or not smaller
	// than the modulus of the field it is placed in.
	ErrValueOutOfRange = ErrorKind("ErrValueOutOfRange")

	// ErrNotInvertible is returned when dividing by an element that has no
	// multiplicative inverse, which for a prime modulus means zero.
	ErrNotInvertible = ErrorKind("ErrNotInvertible")

	// ErrModulusMismatch is the panic value used when two elements of
	// different fields are combined.
	ErrModulusMismatch = ErrorKind("ErrModulusMismatch")

	// ErrInvalidEncoding is returned when a textual value cannot be parsed.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to field arithmetic.  It has full support
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
