package matrix

import "errors"

var (
	// ErrDimensionMismatch is returned when two operands must have the same
	// length and do not.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
	// ErrIndexOutOfRange is returned by At/Set for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
	// ErrUnsupportedOperand is returned by Mul for a nil or unknown operand.
	ErrUnsupportedOperand = errors.New("matrix: multiplication is not defined for operand")
	// ErrZeroVector is returned when an operation would divide by a zero
	// magnitude.
	ErrZeroVector = errors.New("matrix: division by zero magnitude")
	// ErrUnsupportedDimension is returned by Rotate for vectors that are not 2D
	// or 3D.
	ErrUnsupportedDimension = errors.New("matrix: rotation is only defined for 2 or 3 components")
	// ErrAxisRequired is returned by Rotate on a 3D vector without WithAxis.
	ErrAxisRequired = errors.New("matrix: rotation axis was not provided")
	// ErrUnknownAxis is returned for an axis other than x, y or z.
	ErrUnknownAxis = errors.New("matrix: unknown rotation axis")
)
