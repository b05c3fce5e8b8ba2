package core

import "errors"

// ErrNonInvertible is returned when inverting a matrix whose determinant is zero
var ErrNonInvertible = errors.New("matrix is not invertible")

// Matrix4 is a row-major 4x4 transformation matrix
type Matrix4 [4][4]float64

// matrix3 and matrix2 only exist as minors during cofactor expansion
type matrix3 [3][3]float64
type matrix2 [2][2]float64

// Identity returns the 4x4 identity matrix
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4 creates a matrix from four rows
func NewMatrix4(r0, r1, r2, r3 [4]float64) Matrix4 {
	return Matrix4{r0, r1, r2, r3}
}

// At returns the element at row, col
func (m Matrix4) At(row, col int) float64 {
	return m[row][col]
}

// Multiply returns the matrix product m * other
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var result Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[r][k] * other[k][c]
			}
			result[r][c] = sum
		}
	}
	return result
}

// MultiplyTuple returns m * t treating t as a column vector
func (m Matrix4) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose swaps rows and columns
func (m Matrix4) Transpose() Matrix4 {
	var result Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[r][c] = m[c][r]
		}
	}
	return result
}

// Submatrix removes the given row and column
func (m Matrix4) Submatrix(row, col int) matrix3 {
	var result matrix3
	ri := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		ci := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			result[ri][ci] = m[r][c]
			ci++
		}
		ri++
	}
	return result
}

// Minor is the determinant of the submatrix at row, col
func (m Matrix4) Minor(row, col int) float64 {
	return m.Submatrix(row, col).determinant()
}

// Cofactor is the minor with the sign flipped when row+col is odd
func (m Matrix4) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant expands along the first row
func (m Matrix4) Determinant() float64 {
	det := 0.0
	for c := 0; c < 4; c++ {
		det += m[0][c] * m.Cofactor(0, c)
	}
	return det
}

// IsInvertible reports whether the determinant is non-zero
func (m Matrix4) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse computes the inverse via the cofactor matrix.
// Returns ErrNonInvertible when the determinant is zero.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix4{}, ErrNonInvertible
	}

	var result Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			// transposed on write
			result[c][r] = m.Cofactor(r, c) / det
		}
	}
	return result, nil
}

// Equal compares matrices element-wise within Epsilon
func (m Matrix4) Equal(other Matrix4) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !approxEqual(m[r][c], other[r][c]) {
				return false
			}
		}
	}
	return true
}

func (m matrix3) submatrix(row, col int) matrix2 {
	var result matrix2
	ri := 0
	for r := 0; r < 3; r++ {
		if r == row {
			continue
		}
		ci := 0
		for c := 0; c < 3; c++ {
			if c == col {
				continue
			}
			result[ri][ci] = m[r][c]
			ci++
		}
		ri++
	}
	return result
}

func (m matrix3) minor(row, col int) float64 {
	return m.submatrix(row, col).determinant()
}

func (m matrix3) cofactor(row, col int) float64 {
	minor := m.minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

func (m matrix3) determinant() float64 {
	det := 0.0
	for c := 0; c < 3; c++ {
		det += m[0][c] * m.cofactor(0, c)
	}
	return det
}

func (m matrix2) determinant() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}
