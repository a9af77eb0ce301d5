// Package matrix provides a small fixed-length float64 Vector and the dense
// Matrix used to rotate it.
//
// Vector supports component access, subtraction, addition, scaling, dot
// product, magnitude, normalization, angle and rotation. Operations that
// combine two vectors return ErrDimensionMismatch when lengths differ.
//
// Note that equality and ordering between vectors are defined on magnitude:
// [3, 4] and [5, 0] are "equal" under EqualMagnitude. Use EqualComponents or
// EqualApprox when element-wise comparison is meant.
//
// Rotation is counter-clockwise for 2D vectors and right-handed about the x,
// y or z axis for 3D vectors. Matrix products go through gonum's mat.Dense.
package matrix
