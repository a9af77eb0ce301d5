package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector is a dense fixed-length vector of float64 components.
//
// The length is set at construction and never changes. Components may be
// updated in place with Set. Operations that combine two vectors return
// ErrDimensionMismatch when the lengths differ.
//
// Equality and ordering between vectors compare magnitudes, not components:
// see EqualMagnitude and CompareMagnitude. Use EqualComponents for
// element-wise equality.
type Vector struct {
	values []float64
}

// New returns a vector holding a copy of components.
//
// A zero-length vector is allowed; most geometric operations are meaningless
// on it.
func New(components ...float64) *Vector {
	values := make([]float64, len(components))
	copy(values, components)
	return &Vector{values: values}
}

// NewVector allocates a vector of the given length initialized with zeros.
func NewVector(length int) *Vector {
	return &Vector{values: make([]float64, length)}
}

// NewVectorWithValue allocates a vector of the given length and fills it with
// val.
func NewVectorWithValue(length int, val float64) *Vector {
	v := NewVector(length)
	for i := range v.values {
		v.values[i] = val
	}
	return v
}

// Len returns the number of components.
func (v *Vector) Len() int {
	return len(v.values)
}

// Values returns a copy of the components.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.values))
	copy(out, v.values)
	return out
}

// String renders v as a list literal, e.g. "[1, 2, 3]".
func (v *Vector) String() string {
	sb := &strings.Builder{}
	sb.WriteByte('[')
	for i, c := range v.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Clone returns a copy of v with its own component storage.
func (v *Vector) Clone() *Vector {
	return New(v.values...)
}

// DeepClone returns a fully independent copy of v. Components are scalars, so
// this is the same as Clone.
func (v *Vector) DeepClone() *Vector {
	return v.Clone()
}

// At returns the component at index i.
func (v *Vector) At(i int) (float64, error) {
	if err := v.checkIndex(i); err != nil {
		return 0, err
	}
	return v.values[i], nil
}

// Set assigns val to the component at index i.
func (v *Vector) Set(i int, val float64) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.values[i] = val
	return nil
}

func (v *Vector) checkIndex(i int) error {
	if i < 0 || i >= len(v.values) {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(v.values))
	}
	return nil
}

// sameDim rejects a nil operand and operands of a different length.
func (v *Vector) sameDim(other *Vector, op string) error {
	if other == nil {
		return fmt.Errorf("%w: cannot %s a nil vector", ErrUnsupportedOperand, op)
	}
	if len(v.values) != len(other.values) {
		return fmt.Errorf("%w: cannot %s vectors of length %d and %d", ErrDimensionMismatch, op, len(v.values), len(other.values))
	}
	return nil
}

// Sub returns v - other (element-wise subtraction).
func (v *Vector) Sub(other *Vector) (*Vector, error) {
	if err := v.sameDim(other, "subtract"); err != nil {
		return nil, err
	}
	result := NewVector(v.Len())
	floats.SubTo(result.values, v.values, other.values)
	return result, nil
}

// Add returns v + other (element-wise addition).
func (v *Vector) Add(other *Vector) (*Vector, error) {
	if err := v.sameDim(other, "add"); err != nil {
		return nil, err
	}
	result := NewVector(v.Len())
	floats.AddTo(result.values, v.values, other.values)
	return result, nil
}

// Scale returns a new vector with every component multiplied by k.
func (v *Vector) Scale(k float64) *Vector {
	result := NewVector(v.Len())
	floats.ScaleTo(result.values, k, v.values)
	return result
}

// Dot returns the dot product of v and other.
func (v *Vector) Dot(other *Vector) (float64, error) {
	if err := v.sameDim(other, "take the dot product of"); err != nil {
		return 0, err
	}
	return floats.Dot(v.values, other.values), nil
}

// Magnitude returns the Euclidean norm of v (\(\sqrt{\sum_i v_i^2}\)).
//
// The norm is computed scaled, so components near the float64 limits neither
// overflow to +Inf nor underflow to 0.
func (v *Vector) Magnitude() float64 {
	return floats.Norm(v.values, 2)
}

// Norm is an alias for Magnitude.
func (v *Vector) Norm() float64 {
	return v.Magnitude()
}

// Normalized returns v scaled to unit magnitude. The zero vector cannot be
// normalized and yields ErrZeroVector.
func (v *Vector) Normalized() (*Vector, error) {
	mag := v.Magnitude()
	if mag == 0 {
		return nil, fmt.Errorf("%w: cannot normalize zero vector", ErrZeroVector)
	}
	result := v.Clone()
	for i := range result.values {
		result.values[i] /= mag
	}
	return result, nil
}

// Angle returns the angle between v and other in degrees.
func (v *Vector) Angle(other *Vector) (float64, error) {
	if err := v.sameDim(other, "measure the angle between"); err != nil {
		return 0, err
	}
	a, b := v.Magnitude(), other.Magnitude()
	if a == 0 || b == 0 {
		return 0, fmt.Errorf("%w: angle with zero vector", ErrZeroVector)
	}
	// Dot the unit vectors so the product of magnitudes can't overflow.
	var cos float64
	for i := range v.values {
		cos += (v.values[i] / a) * (other.values[i] / b)
	}
	// Clamp so parallel vectors don't land just outside acos' domain.
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi, nil
}

// ToStrings formats the vector for display/logging.
//
// The first string is a framed, one-component-per-line block; the second is
// the list-literal form suitable for a debug transcript.
func (v *Vector) ToStrings(title, format string) (string, string) {
	sb := &strings.Builder{}
	sb.WriteString(MatrixLine + "\n")
	sb.WriteString(title + "\n")
	fmtStr := "%12.6f"
	if format != "" {
		fmtStr = format
	}
	for i, val := range v.values {
		fmt.Fprintf(sb, "[%03d] "+fmtStr+"\n", i, val)
	}
	sb.WriteString(MatrixLine)
	return sb.String(), title + " " + v.String()
}

// PrintVector prints a trimmed view of a vector for debugging.
//
// When debug is true, output is colored (ANSI) to visually distinguish debug
// vectors.
func PrintVector(v *Vector, title string, debug bool) {
	if debug {
		fmt.Print("\033[33m")
	}
	fmt.Println(MatrixLine)
	fmt.Println(title, " (", v.Len(), ")")
	max := v.Len()
	if max > 24 {
		max = 24
	}
	for i := 0; i < max; i++ {
		fmt.Printf("[%03d] %12.6f\n", i, v.values[i])
	}
	if v.Len() > max {
		fmt.Println("...")
	}
	fmt.Println(MatrixLine)
	if debug {
		fmt.Print("\033[0m")
	}
}
