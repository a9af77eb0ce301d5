package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Axis names a coordinate axis for 3D rotation.
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
	AxisZ
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	switch a {
	case AxisNone:
		return ""
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis maps "x", "y" or "z" (any case) to an Axis. The empty string maps
// to AxisNone.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return AxisNone, nil
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return AxisNone, fmt.Errorf("%w: %q", ErrUnknownAxis, s)
}

// RotateOptions is the resolved configuration of a Rotate call.
type RotateOptions struct {
	// Axis is required for 3D vectors and ignored for 2D ones.
	Axis Axis
	// Round rounds each rotated component to the nearest integer (ties to
	// even). This hides floating point noise such as 6e-17 at the cost of
	// precision.
	Round bool
}

// RotateOption configures Rotate.
type RotateOption func(*RotateOptions)

// WithAxis selects the rotation axis for 3D vectors.
func WithAxis(axis Axis) RotateOption {
	return func(o *RotateOptions) { o.Axis = axis }
}

// WithRounding rounds the rotated components to integers.
func WithRounding() RotateOption {
	return func(o *RotateOptions) { o.Round = true }
}

// Rotate returns v rotated counter-clockwise by degrees.
//
// 2D vectors rotate in the plane:
//
//	(x cosθ − y sinθ, x sinθ + y cosθ)
//
// 3D vectors rotate about the axis given by WithAxis, using the right-handed
// rotation matrix for that axis. Other dimensions return
// ErrUnsupportedDimension.
func (v *Vector) Rotate(degrees float64, opts ...RotateOption) (*Vector, error) {
	var o RotateOptions
	for _, opt := range opts {
		opt(&o)
	}
	theta := degrees * math.Pi / 180

	var (
		r   *Matrix
		err error
	)
	switch v.Len() {
	case 2:
		r = RotationMatrix2D(theta)
	case 3:
		if o.Axis == AxisNone {
			return nil, ErrAxisRequired
		}
		r, err = AxisRotationMatrix(o.Axis, theta)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedDimension, v.Len())
	}

	out, err := r.MulVector(v)
	if err != nil {
		return nil, err
	}
	if o.Round {
		for i := range out.values {
			c := math.RoundToEven(out.values[i])
			if c == 0 {
				c = 0 // drop the sign of -0
			}
			out.values[i] = c
		}
	}
	return out, nil
}

// RotationMatrix2D returns the counter-clockwise rotation matrix for theta
// radians.
func RotationMatrix2D(theta float64) *Matrix {
	sin, cos := math.Sincos(theta)
	return NewMatrixFromRows(
		[]float64{cos, -sin},
		[]float64{sin, cos},
	)
}

// AxisRotationMatrix returns the 3×3 right-handed rotation matrix about axis
// for theta radians.
func AxisRotationMatrix(axis Axis, theta float64) (*Matrix, error) {
	sin, cos := math.Sincos(theta)
	switch axis {
	case AxisX:
		return NewMatrixFromRows(
			[]float64{1, 0, 0},
			[]float64{0, cos, -sin},
			[]float64{0, sin, cos},
		), nil
	case AxisY:
		return NewMatrixFromRows(
			[]float64{cos, 0, sin},
			[]float64{0, 1, 0},
			[]float64{-sin, 0, cos},
		), nil
	case AxisZ:
		return NewMatrixFromRows(
			[]float64{cos, -sin, 0},
			[]float64{sin, cos, 0},
			[]float64{0, 0, 1},
		), nil
	case AxisNone:
		return nil, ErrAxisRequired
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownAxis, axis)
}
