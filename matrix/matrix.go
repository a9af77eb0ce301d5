package matrix

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

const MatrixLine = "------------------------------------------------------------------"

type Matrix struct {
	Rows, Cols int
	Values     [][]float64
}

func NewMatrix(rows, cols int) *Matrix {
	values := make([][]float64, rows)
	for i := range values {
		values[i] = make([]float64, cols)
	}
	return &Matrix{Rows: rows, Cols: cols, Values: values}
}

// NewMatrixFromRows builds a matrix from row slices. Every row must have the
// same length.
func NewMatrixFromRows(rows ...[]float64) *Matrix {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := NewMatrix(len(rows), cols)
	for i, row := range rows {
		copy(m.Values[i], row)
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.Values[i][i] = 1
	}
	return m
}

// Norm returns the Frobenius norm of m.
func (m *Matrix) Norm() float64 {
	sum := 0.0
	for i := range m.Values {
		for j := range m.Values[i] {
			sum += m.Values[i][j] * m.Values[i][j]
		}
	}
	return math.Sqrt(sum)
}

func (m *Matrix) dense() *mat.Dense {
	a := mat.NewDense(m.Rows, m.Cols, nil)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			a.Set(i, j, m.Values[i][j])
		}
	}
	return a
}

func fromDense(d mat.Matrix) *Matrix {
	r, c := d.Dims()
	m := NewMatrix(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Values[i][j] = d.At(i, j)
		}
	}
	return m
}

// MulVector returns m·v. v must have Cols components.
func (m *Matrix) MulVector(v *Vector) (*Vector, error) {
	if m.Cols != v.Len() {
		return nil, fmt.Errorf("%w: %dx%d matrix times vector of length %d", ErrDimensionMismatch, m.Rows, m.Cols, v.Len())
	}
	if m.Rows == 0 || m.Cols == 0 {
		return NewVector(m.Rows), nil
	}
	var out mat.VecDense
	out.MulVec(m.dense(), mat.NewVecDense(v.Len(), v.Values()))
	return New(out.RawVector().Data...), nil
}

// Mul returns m·other.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.Cols != other.Rows {
		return nil, fmt.Errorf("%w: %dx%d times %dx%d", ErrDimensionMismatch, m.Rows, m.Cols, other.Rows, other.Cols)
	}
	if m.Rows == 0 || m.Cols == 0 || other.Cols == 0 {
		return NewMatrix(m.Rows, other.Cols), nil
	}
	var out mat.Dense
	out.Mul(m.dense(), other.dense())
	return fromDense(&out), nil
}

// Transpose returns a new matrix which is the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	if m.Rows == 0 || m.Cols == 0 {
		return NewMatrix(m.Cols, m.Rows)
	}
	return fromDense(m.dense().T())
}

// EqualApprox reports whether m and other have the same shape and every
// element differs by at most tol.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if m.Rows != other.Rows || m.Cols != other.Cols {
		return false
	}
	if m.Rows == 0 || m.Cols == 0 {
		return true
	}
	return mat.EqualApprox(m.dense(), other.dense(), tol)
}

func (m *Matrix) GetRow(i int) *Vector {
	return New(m.Values[i]...)
}

func (m *Matrix) SetRow(i int, v *Vector) {
	copy(m.Values[i], v.values)
}

func (m *Matrix) ToStrings(title, format string) (string, string) {
	sb := &strings.Builder{}
	sb.WriteString(MatrixLine + "\n")
	sb.WriteString(title + "\n")
	fmtStr := "%12.6f"
	if format != "" {
		fmtStr = format
	}
	rows := make([]string, len(m.Values))
	for i := range m.Values {
		for j := range m.Values[i] {
			fmt.Fprintf(sb, fmtStr, m.Values[i][j])
		}
		sb.WriteString("\n")
		rows[i] = New(m.Values[i]...).String()
	}
	sb.WriteString(MatrixLine)
	return sb.String(), title + " [" + strings.Join(rows, ", ") + "]"
}

// PrintMatrix dumps the matrix (trimmed to 12x16). For debugging only.
func PrintMatrix(m *Matrix, title string, debug bool) {
	// Yellow for debug matrices
	if debug {
		fmt.Print("\033[33m")
	}
	fmt.Println(MatrixLine)
	fmt.Println(title, " (", m.Rows, "x", m.Cols, ")")
	maxRows := m.Rows
	if maxRows > 12 {
		maxRows = 12
	}
	for i := 0; i < maxRows; i++ {
		row := m.Values[i]
		line := fmt.Sprintf("[%03d]", i)
		maxCols := len(row)
		if maxCols > 16 {
			maxCols = 16
		}
		for j := 0; j < maxCols; j++ {
			line += fmt.Sprintf(" %12.6f", row[j])
		}
		if len(row) > maxCols {
			line += " ..."
		}
		fmt.Println(line)
	}
	if m.Rows > maxRows {
		fmt.Println("...")
	}
	fmt.Println(MatrixLine)
	if debug {
		fmt.Print("\033[0m")
	}
}
