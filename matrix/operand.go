package matrix

import "fmt"

// Operand is the right-hand side of Mul: either a Scalar or a *Vector.
type Operand interface {
	isOperand()
}

// Scalar is a plain number used as a Mul operand.
type Scalar float64

func (Scalar) isOperand()  {}
func (*Vector) isOperand() {}

// Product is the result of Mul. Vector×Vector yields a scalar (the dot
// product); Vector×Scalar yields a vector.
type Product struct {
	scalar float64
	vector *Vector
}

// IsScalar reports whether the product is a number rather than a vector.
func (p Product) IsScalar() bool { return p.vector == nil }

// Scalar returns the numeric product. It is 0 when IsScalar is false.
func (p Product) Scalar() float64 { return p.scalar }

// Vector returns the vector product, or nil when IsScalar is true.
func (p Product) Vector() *Vector { return p.vector }

func (p Product) String() string {
	if p.IsScalar() {
		return fmt.Sprint(p.scalar)
	}
	return p.vector.String()
}

// Mul multiplies v by op. A *Vector operand gives the dot product and must
// match v's length; a Scalar operand scales every component.
func (v *Vector) Mul(op Operand) (Product, error) {
	switch o := op.(type) {
	case *Vector:
		if o == nil {
			break
		}
		dot, err := v.Dot(o)
		if err != nil {
			return Product{}, err
		}
		return Product{scalar: dot}, nil
	case Scalar:
		return Product{vector: v.Scale(float64(o))}, nil
	}
	return Product{}, fmt.Errorf("%w: %T", ErrUnsupportedOperand, op)
}
