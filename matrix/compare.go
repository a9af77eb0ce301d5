package matrix

import "gonum.org/v1/gonum/floats"

// The comparators below order vectors by magnitude. Two different vectors of
// the same length (e.g. [3, 4] and [5, 0]) compare equal. They are named
// *Magnitude on purpose; there is no Equal method.

// CompareMagnitude returns -1, 0 or +1 as ‖v‖ is less than, equal to or
// greater than ‖other‖. Vectors of different length cannot be compared.
func (v *Vector) CompareMagnitude(other *Vector) (int, error) {
	if err := v.sameDim(other, "compare"); err != nil {
		return 0, err
	}
	a, b := v.Magnitude(), other.Magnitude()
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	default:
		return 0, nil
	}
}

// EqualMagnitude reports whether ‖v‖ == ‖other‖.
func (v *Vector) EqualMagnitude(other *Vector) (bool, error) {
	c, err := v.CompareMagnitude(other)
	return err == nil && c == 0, err
}

// NotEqualMagnitude reports whether ‖v‖ != ‖other‖.
func (v *Vector) NotEqualMagnitude(other *Vector) (bool, error) {
	c, err := v.CompareMagnitude(other)
	return err == nil && c != 0, err
}

// Less reports whether ‖v‖ < ‖other‖.
func (v *Vector) Less(other *Vector) (bool, error) {
	c, err := v.CompareMagnitude(other)
	return err == nil && c < 0, err
}

// LessEqual reports whether ‖v‖ <= ‖other‖.
func (v *Vector) LessEqual(other *Vector) (bool, error) {
	c, err := v.CompareMagnitude(other)
	return err == nil && c <= 0, err
}

// Greater reports whether ‖v‖ > ‖other‖.
func (v *Vector) Greater(other *Vector) (bool, error) {
	c, err := v.CompareMagnitude(other)
	return err == nil && c > 0, err
}

// GreaterEqual reports whether ‖v‖ >= ‖other‖.
func (v *Vector) GreaterEqual(other *Vector) (bool, error) {
	c, err := v.CompareMagnitude(other)
	return err == nil && c >= 0, err
}

// EqualComponents reports whether v and other hold the same components.
func (v *Vector) EqualComponents(other *Vector) (bool, error) {
	if err := v.sameDim(other, "compare"); err != nil {
		return false, err
	}
	return floats.Equal(v.values, other.values), nil
}

// EqualApprox reports whether every component of v is within tol of the
// matching component of other, absolutely or relatively.
func (v *Vector) EqualApprox(other *Vector, tol float64) (bool, error) {
	if err := v.sameDim(other, "compare"); err != nil {
		return false, err
	}
	return floats.EqualApprox(v.values, other.values, tol), nil
}
