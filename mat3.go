// SPDX-License-Identifier: MIT
// Package matriarch: 3x3 matrix type and its associated kernels.

package matriarch

// Mat3 is a 3x3 matrix with elements arranged in row-major order.
//
// A Mat3 is laid out as follows:
//
//	    [ A  B  C ]
//	A = [ D  E  F ]
//	    [ G  H  I ]
//
// The letter assignment is part of the public contract; the array
// conversions depend on it bit-for-bit.
type Mat3 struct {
	A float32
	B float32
	C float32
	D float32
	E float32
	F float32
	G float32
	H float32
	I float32
}

// NewMat3 returns a new Mat3 with all elements set to 0.
func NewMat3() Mat3 {
	return Mat3{}
}

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{
		A: 1.0, B: 0.0, C: 0.0,
		D: 0.0, E: 1.0, F: 0.0,
		G: 0.0, H: 0.0, I: 1.0,
	}
}

// NewMat3FromArray returns a new Mat3 from a row-major ordered array.
func NewMat3FromArray(input [9]float32) Mat3 {
	return Mat3{
		A: input[0], B: input[1], C: input[2],
		D: input[3], E: input[4], F: input[5],
		G: input[6], H: input[7], I: input[8],
	}
}

// NewMat3FromColArray returns a new Mat3 from a column-major ordered
// array, transposing on read.
func NewMat3FromColArray(input [9]float32) Mat3 {
	return Mat3{
		A: input[0], B: input[3], C: input[6],
		D: input[1], E: input[4], F: input[7],
		G: input[2], H: input[5], I: input[8],
	}
}

// NewMat3FromSlice builds a Mat3 from a loosely sized row-major buffer.
// Returns ErrInvalidLength unless len(input) == 9; never truncates.
func NewMat3FromSlice(input []float32) (Mat3, error) {
	if len(input) != 9 {
		return Mat3{}, ErrInvalidLength
	}

	return NewMat3FromArray([9]float32(input)), nil
}

// NewMat3FromColSlice builds a Mat3 from a loosely sized column-major
// buffer. Returns ErrInvalidLength unless len(input) == 9.
func NewMat3FromColSlice(input []float32) (Mat3, error) {
	if len(input) != 9 {
		return Mat3{}, ErrInvalidLength
	}

	return NewMat3FromColArray([9]float32(input)), nil
}

// ToArray returns the elements in row-major order; exact inverse of
// NewMat3FromArray.
func (m Mat3) ToArray() [9]float32 {
	return [9]float32{m.A, m.B, m.C, m.D, m.E, m.F, m.G, m.H, m.I}
}

// ToColArray returns the elements in column-major order; exact inverse
// of NewMat3FromColArray, and equal to m.Transpose().ToArray().
func (m Mat3) ToColArray() [9]float32 {
	return [9]float32{m.A, m.D, m.G, m.B, m.E, m.H, m.C, m.F, m.I}
}

// ToVec3Columns returns the matrix as an array of Vec3 columns, column i
// read top-to-bottom.
func (m Mat3) ToVec3Columns() [3]Vec3 {
	return [3]Vec3{
		{X: m.A, Y: m.D, Z: m.G},
		{X: m.B, Y: m.E, Z: m.H},
		{X: m.C, Y: m.F, Z: m.I},
	}
}

// Determinant returns the determinant of the Mat3 by cofactor expansion
// along the first row, each 2x2 minor evaluated by the Mat2 base
// identity. 9 multiplications; the textbook-minimal form.
//
// The grouping below is a compatibility contract, not a hint: float32
// addition is not associative, so re-associating the sums can produce
// bit-different results. Do not reorder.
func (m Mat3) Determinant() float32 {
	return (m.A * ((m.E * m.I) - (m.F * m.H))) +
		(m.B * ((m.F * m.G) - (m.D * m.I))) +
		(m.C * ((m.D * m.H) - (m.E * m.G)))
}

// Transpose returns a new Mat3 with element (r,c) swapped with (c,r).
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		A: m.A, B: m.D, C: m.G,
		D: m.B, E: m.E, F: m.H,
		G: m.C, H: m.F, I: m.I,
	}
}

// Multiply multiplies two Mat3s together, returning a new Mat3 holding
// the standard row-by-column composition.
//
// Matrix multiplication is not commutative: A*B != B*A for most
// matrices, the main exception being the identity.
func (m Mat3) Multiply(other Mat3) Mat3 {
	return Mat3{
		A: (m.A * other.A) + (m.B * other.D) + (m.C * other.G),
		B: (m.A * other.B) + (m.B * other.E) + (m.C * other.H),
		C: (m.A * other.C) + (m.B * other.F) + (m.C * other.I),
		D: (m.D * other.A) + (m.E * other.D) + (m.F * other.G),
		E: (m.D * other.B) + (m.E * other.E) + (m.F * other.H),
		F: (m.D * other.C) + (m.E * other.F) + (m.F * other.I),
		G: (m.G * other.A) + (m.H * other.D) + (m.I * other.G),
		H: (m.G * other.B) + (m.H * other.E) + (m.I * other.H),
		I: (m.G * other.C) + (m.H * other.F) + (m.I * other.I),
	}
}

// MultiplyVec3 multiplies the Mat3 by a Vec3 treated as a column,
// returning a Vec3.
func (m Mat3) MultiplyVec3(v Vec3) Vec3 {
	return Vec3{
		X: (m.A * v.X) + (m.B * v.Y) + (m.C * v.Z),
		Y: (m.D * v.X) + (m.E * v.Y) + (m.F * v.Z),
		Z: (m.G * v.X) + (m.H * v.Y) + (m.I * v.Z),
	}
}

// Scale returns a new Mat3 with every element multiplied by scalar.
func (m Mat3) Scale(scalar float32) Mat3 {
	return Mat3{
		A: scalar * m.A,
		B: scalar * m.B,
		C: scalar * m.C,
		D: scalar * m.D,
		E: scalar * m.E,
		F: scalar * m.F,
		G: scalar * m.G,
		H: scalar * m.H,
		I: scalar * m.I,
	}
}
