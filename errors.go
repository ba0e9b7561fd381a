package euclid

import "github.com/cockroachdb/errors"

var (
	// ErrMalformedShape is returned when a shape violates its own invariants:
	// AABB min above max, negative cylinder length or radius, negative
	// ellipsoid radius, non-positive oriented box size.
	ErrMalformedShape = errors.New("malformed shape")

	// ErrParameterOutOfRange is returned when a query parameter is outside its
	// domain, such as an angle tolerance outside [0, π/2].
	ErrParameterOutOfRange = errors.New("parameter out of range")
)

// MalformedShapef returns an error matching ErrMalformedShape with the given detail.
func MalformedShapef(format string, args ...any) error {
	return errors.Wrapf(ErrMalformedShape, format, args...)
}

// OutOfRangef returns an error matching ErrParameterOutOfRange with the given detail.
func OutOfRangef(format string, args ...any) error {
	return errors.Wrapf(ErrParameterOutOfRange, format, args...)
}
