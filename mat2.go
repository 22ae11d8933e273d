// SPDX-License-Identifier: MIT
// Package matriarch: 2x2 matrix type and its associated kernels.

package matriarch

// Mat2 is a 2x2 matrix with elements arranged in row-major order.
//
// A Mat2 is laid out as follows:
//
//	    [ A  B ]
//	A = [ C  D ]
//
// The letter assignment (A=row0col0, B=row0col1, ...) is part of the
// public contract, not an implementation detail: the array conversions
// depend on it bit-for-bit.
type Mat2 struct {
	A float32
	B float32
	C float32
	D float32
}

// NewMat2 returns a new Mat2 with all elements set to 0.
func NewMat2() Mat2 {
	return Mat2{}
}

// Mat2Identity returns the 2x2 identity matrix.
func Mat2Identity() Mat2 {
	return Mat2{
		A: 1.0, B: 0.0,
		C: 0.0, D: 1.0,
	}
}

// NewMat2FromValues returns a new Mat2 using the given values in
// row-major order.
func NewMat2FromValues(a, b, c, d float32) Mat2 {
	return Mat2{
		A: a, B: b,
		C: c, D: d,
	}
}

// NewMat2FromArray returns a new Mat2 from a row-major ordered array.
func NewMat2FromArray(input [4]float32) Mat2 {
	return Mat2{
		A: input[0], B: input[1],
		C: input[2], D: input[3],
	}
}

// NewMat2FromColArray returns a new Mat2 from a column-major ordered
// array: element [i] of the input lands at the transposed row-major
// field.
func NewMat2FromColArray(input [4]float32) Mat2 {
	return Mat2{
		A: input[0], B: input[2],
		C: input[1], D: input[3],
	}
}

// NewMat2FromSlice builds a Mat2 from a loosely sized row-major buffer.
// Returns ErrInvalidLength unless len(input) == 4; never truncates.
func NewMat2FromSlice(input []float32) (Mat2, error) {
	if len(input) != 4 {
		return Mat2{}, ErrInvalidLength
	}

	return NewMat2FromArray([4]float32(input)), nil
}

// NewMat2FromColSlice builds a Mat2 from a loosely sized column-major
// buffer. Returns ErrInvalidLength unless len(input) == 4.
func NewMat2FromColSlice(input []float32) (Mat2, error) {
	if len(input) != 4 {
		return Mat2{}, ErrInvalidLength
	}

	return NewMat2FromColArray([4]float32(input)), nil
}

// ToArray returns the elements in row-major order; exact inverse of
// NewMat2FromArray.
func (m Mat2) ToArray() [4]float32 {
	return [4]float32{m.A, m.B, m.C, m.D}
}

// ToColArray returns the elements in column-major order; exact inverse
// of NewMat2FromColArray, and equal to m.Transpose().ToArray().
func (m Mat2) ToColArray() [4]float32 {
	return [4]float32{m.A, m.C, m.B, m.D}
}

// ToVec2Columns returns the matrix as an array of Vec2 columns, column i
// read top-to-bottom.
func (m Mat2) ToVec2Columns() [2]Vec2 {
	return [2]Vec2{
		{X: m.A, Y: m.C},
		{X: m.B, Y: m.D},
	}
}

// Determinant returns the determinant of the Mat2: the base identity
// A*D - B*C that the larger sizes reduce to.
func (m Mat2) Determinant() float32 {
	return (m.A * m.D) - (m.B * m.C)
}

// Transpose returns a new Mat2 with element (r,c) swapped with (c,r).
func (m Mat2) Transpose() Mat2 {
	return Mat2{
		A: m.A, B: m.C,
		C: m.B, D: m.D,
	}
}

// Multiply multiplies two Mat2s together, returning a new Mat2 holding
// the standard row-by-column composition.
//
// Matrix multiplication is not commutative: A*B != B*A for most
// matrices, the main exception being the identity.
func (m Mat2) Multiply(other Mat2) Mat2 {
	return Mat2{
		A: (m.A * other.A) + (m.B * other.C),
		B: (m.A * other.B) + (m.B * other.D),
		C: (m.C * other.A) + (m.D * other.C),
		D: (m.C * other.B) + (m.D * other.D),
	}
}

// MultiplyVec2 multiplies the Mat2 by a Vec2 treated as a column,
// returning a Vec2.
func (m Mat2) MultiplyVec2(v Vec2) Vec2 {
	return Vec2{
		X: (m.A * v.X) + (m.B * v.Y),
		Y: (m.C * v.X) + (m.D * v.Y),
	}
}

// Scale returns a new Mat2 with every element multiplied by scalar.
func (m Mat2) Scale(scalar float32) Mat2 {
	return Mat2{
		A: scalar * m.A,
		B: scalar * m.B,
		C: scalar * m.C,
		D: scalar * m.D,
	}
}
