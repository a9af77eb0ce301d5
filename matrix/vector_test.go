package matrix

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func fixtures() (*Vector, *Vector) {
	return New(1, 2, 3), New(4, 5, 6)
}

func TestVectorString(t *testing.T) {
	v, _ := fixtures()
	assert.Equal(t, "[1, 2, 3]", v.String())
	assert.Equal(t, "[]", New().String())
	assert.Equal(t, "[0.5, -2.25]", New(0.5, -2.25).String())
}

func TestVectorLen(t *testing.T) {
	v, _ := fixtures()
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 4, NewVector(4).Len())
	assert.Equal(t, []float64{7, 7}, NewVectorWithValue(2, 7).Values())
}

func TestNewCopiesInput(t *testing.T) {
	in := []float64{1, 2}
	v := New(in...)
	in[0] = 99

	got, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	vals := v.Values()
	vals[1] = 99
	got, err = v.At(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}

func TestVectorAtSet(t *testing.T) {
	v, _ := fixtures()
	for i := 1; i < 4; i++ {
		got, err := v.At(i - 1)
		require.NoError(t, err)
		assert.Equal(t, float64(i), got)
	}

	for _, i := range []int{-1, 3, 10} {
		_, err := v.At(i)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "At(%d)", i)
		assert.True(t, errors.Is(v.Set(i, 1), ErrIndexOutOfRange), "Set(%d)", i)
	}

	require.NoError(t, v.Set(2, 9))
	assert.Equal(t, "[1, 2, 9]", v.String())
}

func TestDeepCloneIsIndependent(t *testing.T) {
	v, _ := fixtures()
	vCopy := v.DeepClone()
	require.NoError(t, vCopy.Set(0, 10))

	same, err := vCopy.EqualComponents(New(10, 2, 3))
	require.NoError(t, err)
	assert.True(t, same)
	assert.Equal(t, "[1, 2, 3]", v.String())

	shallow := v.Clone()
	require.NoError(t, shallow.Set(1, 20))
	assert.Equal(t, "[1, 2, 3]", v.String())
}

func TestMagnitude(t *testing.T) {
	v, _ := fixtures()
	assert.InDelta(t, 3.741657387, v.Magnitude(), 1e-9)
	assert.InDelta(t, math.Sqrt(14), v.Norm(), tol)
	assert.InDelta(t, 5.0, New(3, 4).Magnitude(), tol)
	assert.InDelta(t, 1e200, New(1e200, 0).Magnitude(), 1e188)
	assert.InDelta(t, 5e-170, New(3e-170, 4e-170).Magnitude(), 1e-182)
	assert.Equal(t, 0.0, New().Magnitude())
}

func TestNormalized(t *testing.T) {
	v, _ := fixtures()
	mag := 3.741657387
	n, err := v.Normalized()
	require.NoError(t, err)
	want := []float64{1 / mag, 2 / mag, 3 / mag}
	for i, got := range n.Values() {
		assert.InDelta(t, want[i], got, 1e-7)
	}
	assert.Equal(t, "[1, 2, 3]", v.String(), "receiver must not change")
}

func TestNormalizedUnitMagnitude(t *testing.T) {
	for _, v := range []*Vector{
		New(1, 2, 3),
		New(-7, 0.5),
		New(1e-8, 0, 0, 0),
		New(12345, 6789, -42, 3),
		New(1e200, 0),
		New(1e200, -1e200, 1e200),
		New(3e-170, 4e-170),
		New(5e-324, 0),
	} {
		n, err := v.Normalized()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, n.Magnitude(), tol, v.String())
	}
}

func TestNormalizedZeroVector(t *testing.T) {
	_, err := New(0, 0, 0).Normalized()
	assert.True(t, errors.Is(err, ErrZeroVector))
}

func TestDot(t *testing.T) {
	v, w := fixtures()
	dot, err := v.Dot(w)
	require.NoError(t, err)
	assert.Equal(t, 32.0, dot)
}

func TestSubAdd(t *testing.T) {
	v, w := fixtures()
	diff, err := w.Sub(v)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3, 3}, diff.Values())

	sum, err := v.Add(w)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7, 9}, sum.Values())
}

func TestScale(t *testing.T) {
	v, _ := fixtures()
	assert.Equal(t, []float64{2, 4, 6}, v.Scale(2).Values())
	assert.Equal(t, []float64{1, 2, 3}, v.Values())
}

func TestAngle(t *testing.T) {
	v, w := fixtures()
	theta, err := v.Angle(w)
	require.NoError(t, err)
	assert.InDelta(t, 12.933154491899105, theta, 1e-7)

	theta, err = New(1, 0).Angle(New(0, 1))
	require.NoError(t, err)
	assert.InDelta(t, 90, theta, tol)

	theta, err = New(1, 1).Angle(New(2, 2))
	require.NoError(t, err)
	assert.False(t, math.IsNaN(theta))
	assert.InDelta(t, 0, theta, 1e-5)

	_, err = New(0, 0).Angle(New(1, 0))
	assert.True(t, errors.Is(err, ErrZeroVector))
}

func TestAngleExtremeMagnitudes(t *testing.T) {
	theta, err := New(1e200, 0).Angle(New(0, 1e200))
	require.NoError(t, err)
	assert.InDelta(t, 90, theta, tol)

	theta, err = New(3e-170, 0).Angle(New(3e-170, 3e-170))
	require.NoError(t, err)
	assert.InDelta(t, 45, theta, 1e-7)
}

func TestNilOperand(t *testing.T) {
	v, _ := fixtures()
	var nilVec *Vector

	ops := map[string]func() error{
		"CompareMagnitude": func() error { _, err := v.CompareMagnitude(nilVec); return err },
		"Less":             func() error { _, err := v.Less(nilVec); return err },
		"EqualComponents":  func() error { _, err := v.EqualComponents(nilVec); return err },
		"EqualApprox":      func() error { _, err := v.EqualApprox(nilVec, tol); return err },
		"Sub":              func() error { _, err := v.Sub(nilVec); return err },
		"Add":              func() error { _, err := v.Add(nilVec); return err },
		"Dot":              func() error { _, err := v.Dot(nilVec); return err },
		"Angle":            func() error { _, err := v.Angle(nilVec); return err },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			assert.True(t, errors.Is(err, ErrUnsupportedOperand), "%v", err)
		})
	}
}

func TestMul(t *testing.T) {
	v, w := fixtures()

	p, err := v.Mul(w)
	require.NoError(t, err)
	assert.True(t, p.IsScalar())
	assert.Equal(t, 32.0, p.Scalar())
	assert.Nil(t, p.Vector())

	p, err = v.Mul(Scalar(3))
	require.NoError(t, err)
	require.False(t, p.IsScalar())
	assert.Equal(t, "[3, 6, 9]", p.String())

	_, err = v.Mul(nil)
	assert.True(t, errors.Is(err, ErrUnsupportedOperand))

	var nilVec *Vector
	_, err = v.Mul(nilVec)
	assert.True(t, errors.Is(err, ErrUnsupportedOperand))
}

func TestDimensionMismatch(t *testing.T) {
	a := New(1, 2)
	b := New(1, 2, 3)

	ops := map[string]func() error{
		"CompareMagnitude":  func() error { _, err := a.CompareMagnitude(b); return err },
		"EqualMagnitude":    func() error { _, err := a.EqualMagnitude(b); return err },
		"NotEqualMagnitude": func() error { _, err := a.NotEqualMagnitude(b); return err },
		"Less":              func() error { _, err := a.Less(b); return err },
		"LessEqual":         func() error { _, err := a.LessEqual(b); return err },
		"Greater":           func() error { _, err := a.Greater(b); return err },
		"GreaterEqual":      func() error { _, err := a.GreaterEqual(b); return err },
		"EqualComponents":   func() error { _, err := a.EqualComponents(b); return err },
		"EqualApprox":       func() error { _, err := a.EqualApprox(b, tol); return err },
		"Sub":               func() error { _, err := a.Sub(b); return err },
		"Add":               func() error { _, err := a.Add(b); return err },
		"Dot":               func() error { _, err := a.Dot(b); return err },
		"Mul":               func() error { _, err := a.Mul(b); return err },
		"Angle":             func() error { _, err := a.Angle(b); return err },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errors.Is(op(), ErrDimensionMismatch))
		})
	}
}
