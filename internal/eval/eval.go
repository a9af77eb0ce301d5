// Package eval runs the operations of a vecmath job against its named vectors.
package eval

import (
	"fmt"
	"strconv"

	"github.com/CK6170/vecmath-go/matrix"
	"github.com/CK6170/vecmath-go/models"
)

// Result is the outcome of one operation. Exactly one of Vector, Number or
// Bool is meaningful, as reported by Kind.
type Result struct {
	Op     *models.OP
	Kind   Kind
	Vector *matrix.Vector
	Number float64
	Bool   bool
}

// Kind tells which field of Result holds the value.
type Kind int

const (
	KindVector Kind = iota
	KindNumber
	KindBool
)

// String renders the value the way a user would type it.
func (r *Result) String() string {
	switch r.Kind {
	case KindVector:
		return r.Vector.String()
	case KindBool:
		return strconv.FormatBool(r.Bool)
	default:
		return strconv.FormatFloat(r.Number, 'g', -1, 64)
	}
}

// Evaluator holds the named vectors of a job.
type Evaluator struct {
	vectors map[string]*matrix.Vector
	round   bool
}

// New builds an Evaluator from a job. round forces rounding on every rotate
// in addition to the job's own ROUND flag.
func New(job *models.JOB, round bool) *Evaluator {
	e := &Evaluator{
		vectors: make(map[string]*matrix.Vector, len(job.VECTORS)),
		round:   round || job.ROUND,
	}
	for name, comps := range job.VECTORS {
		e.vectors[name] = matrix.New(comps...)
	}
	return e
}

// Vector returns the named vector.
func (e *Evaluator) Vector(name string) (*matrix.Vector, bool) {
	v, ok := e.vectors[name]
	return v, ok
}

func (e *Evaluator) lookup(name string) (*matrix.Vector, error) {
	v, ok := e.vectors[name]
	if !ok {
		return nil, fmt.Errorf("unknown vector %q", name)
	}
	return v, nil
}

// Apply evaluates op. When op.AS is set and the result is a vector, it is
// stored under that name.
func (e *Evaluator) Apply(op *models.OP) (*Result, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	a, err := e.lookup(op.A)
	if err != nil {
		return nil, err
	}
	var b *matrix.Vector
	if op.B != "" {
		if b, err = e.lookup(op.B); err != nil {
			return nil, err
		}
	}

	res := &Result{Op: op}
	switch op.OP {
	case models.STR:
		res.Kind, res.Vector = KindVector, a
	case models.LEN:
		res.Kind, res.Number = KindNumber, float64(a.Len())
	case models.MAGNITUDE:
		res.Kind, res.Number = KindNumber, a.Magnitude()
	case models.NORMALIZED:
		res.Kind = KindVector
		res.Vector, err = a.Normalized()
	case models.DOT:
		res.Kind = KindNumber
		res.Number, err = a.Dot(b)
	case models.MUL:
		var operand matrix.Operand = b
		if b == nil {
			operand = matrix.Scalar(*op.K)
		}
		var p matrix.Product
		if p, err = a.Mul(operand); err == nil {
			if p.IsScalar() {
				res.Kind, res.Number = KindNumber, p.Scalar()
			} else {
				res.Kind, res.Vector = KindVector, p.Vector()
			}
		}
	case models.SCALE:
		res.Kind, res.Vector = KindVector, a.Scale(*op.K)
	case models.SUB:
		res.Kind = KindVector
		res.Vector, err = a.Sub(b)
	case models.ADD:
		res.Kind = KindVector
		res.Vector, err = a.Add(b)
	case models.ANGLE:
		res.Kind = KindNumber
		res.Number, err = a.Angle(b)
	case models.EQ:
		res.Kind = KindBool
		res.Bool, err = a.EqualMagnitude(b)
	case models.NE:
		res.Kind = KindBool
		res.Bool, err = a.NotEqualMagnitude(b)
	case models.LT:
		res.Kind = KindBool
		res.Bool, err = a.Less(b)
	case models.LE:
		res.Kind = KindBool
		res.Bool, err = a.LessEqual(b)
	case models.GT:
		res.Kind = KindBool
		res.Bool, err = a.Greater(b)
	case models.GE:
		res.Kind = KindBool
		res.Bool, err = a.GreaterEqual(b)
	case models.GET:
		res.Kind = KindNumber
		res.Number, err = a.At(op.I)
	case models.SET:
		res.Kind, res.Vector = KindVector, a
		err = a.Set(op.I, *op.K)
	case models.COPY:
		res.Kind, res.Vector = KindVector, a.DeepClone()
	case models.ROTATE:
		res.Kind = KindVector
		res.Vector, err = e.rotate(a, op)
	default:
		return nil, fmt.Errorf("unknown OP %q", op.OP)
	}
	if err != nil {
		return nil, err
	}
	if op.AS != "" && res.Kind == KindVector {
		stored := res.Vector
		if stored == a {
			// str and set return the operand itself; AS names a copy.
			stored = a.Clone()
		}
		e.vectors[op.AS] = stored
	}
	return res, nil
}

func (e *Evaluator) rotate(v *matrix.Vector, op *models.OP) (*matrix.Vector, error) {
	axis, err := matrix.ParseAxis(op.AXIS)
	if err != nil {
		return nil, err
	}
	opts := []matrix.RotateOption{matrix.WithAxis(axis)}
	if e.round {
		opts = append(opts, matrix.WithRounding())
	}
	return v.Rotate(*op.K, opts...)
}
