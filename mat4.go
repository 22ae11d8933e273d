// SPDX-License-Identifier: MIT
// Package matriarch: 4x4 matrix type and its associated kernels.

package matriarch

// Mat4 is a 4x4 matrix with elements arranged in row-major order.
//
// A Mat4 is laid out as follows:
//
//	    [ A  B  C  D ]
//	A = [ E  F  G  H ]
//	    [ I  J  K  L ]
//	    [ M  N  O  P ]
//
// The letter assignment is part of the public contract; the array
// conversions depend on it bit-for-bit.
type Mat4 struct {
	A float32
	B float32
	C float32
	D float32
	E float32
	F float32
	G float32
	H float32
	I float32
	J float32
	K float32
	L float32
	M float32
	N float32
	O float32
	P float32
}

// NewMat4 returns a new Mat4 with all elements set to 0.
func NewMat4() Mat4 {
	return Mat4{}
}

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity() Mat4 {
	return Mat4{
		A: 1.0, B: 0.0, C: 0.0, D: 0.0,
		E: 0.0, F: 1.0, G: 0.0, H: 0.0,
		I: 0.0, J: 0.0, K: 1.0, L: 0.0,
		M: 0.0, N: 0.0, O: 0.0, P: 1.0,
	}
}

// NewMat4FromArray returns a new Mat4 from a row-major ordered array.
func NewMat4FromArray(input [16]float32) Mat4 {
	return Mat4{
		A: input[0], B: input[1], C: input[2], D: input[3],
		E: input[4], F: input[5], G: input[6], H: input[7],
		I: input[8], J: input[9], K: input[10], L: input[11],
		M: input[12], N: input[13], O: input[14], P: input[15],
	}
}

// NewMat4FromColArray returns a new Mat4 from a column-major ordered
// array, transposing on read.
func NewMat4FromColArray(input [16]float32) Mat4 {
	return Mat4{
		A: input[0], B: input[4], C: input[8], D: input[12],
		E: input[1], F: input[5], G: input[9], H: input[13],
		I: input[2], J: input[6], K: input[10], L: input[14],
		M: input[3], N: input[7], O: input[11], P: input[15],
	}
}

// NewMat4FromSlice builds a Mat4 from a loosely sized row-major buffer.
// Returns ErrInvalidLength unless len(input) == 16; never truncates.
func NewMat4FromSlice(input []float32) (Mat4, error) {
	if len(input) != 16 {
		return Mat4{}, ErrInvalidLength
	}

	return NewMat4FromArray([16]float32(input)), nil
}

// NewMat4FromColSlice builds a Mat4 from a loosely sized column-major
// buffer. Returns ErrInvalidLength unless len(input) == 16.
func NewMat4FromColSlice(input []float32) (Mat4, error) {
	if len(input) != 16 {
		return Mat4{}, ErrInvalidLength
	}

	return NewMat4FromColArray([16]float32(input)), nil
}

// ToArray returns the elements in row-major order; exact inverse of
// NewMat4FromArray.
func (m Mat4) ToArray() [16]float32 {
	return [16]float32{
		m.A, m.B, m.C, m.D,
		m.E, m.F, m.G, m.H,
		m.I, m.J, m.K, m.L,
		m.M, m.N, m.O, m.P,
	}
}

// ToColArray returns the elements in column-major order; exact inverse
// of NewMat4FromColArray, and equal to m.Transpose().ToArray(). This is
// the layout graphics APIs expecting column-major uniforms consume.
func (m Mat4) ToColArray() [16]float32 {
	return [16]float32{
		m.A, m.E, m.I, m.M,
		m.B, m.F, m.J, m.N,
		m.C, m.G, m.K, m.O,
		m.D, m.H, m.L, m.P,
	}
}

// ToVec4Columns returns the matrix as an array of Vec4 columns, column i
// read top-to-bottom.
func (m Mat4) ToVec4Columns() [4]Vec4 {
	return [4]Vec4{
		{X: m.A, Y: m.E, Z: m.I, W: m.M},
		{X: m.B, Y: m.F, Z: m.J, W: m.N},
		{X: m.C, Y: m.G, Z: m.K, W: m.O},
		{X: m.D, Y: m.H, Z: m.L, W: m.P},
	}
}

// Determinant returns the determinant of the Mat4.
//
// A naive first-row cofactor expansion spells out 24 permutation terms
// and 72 multiplications. This kernel factors that expansion into four
// groups, one per first-row element (A, B, C, D), and within each group
// factors out the fourth-row elements (M, N, O, P) as a second level,
// bringing the multiply count down to 40 while staying algebraically
// identical to the naive expansion.
//
// The nesting is a compatibility contract: float32 addition is not
// associative, so an algebraically equivalent regrouping can produce
// bit-different results on pathological inputs, and callers pin tests to
// these literal outputs. Do not re-associate the sums.
//
// Determinism: fixed evaluation order, 40 multiplications, O(1).
func (m Mat4) Determinant() float32 {
	return (m.A * ((m.P * ((m.F * m.K) - (m.G * m.J))) +
		(m.O * (-(m.F * m.L) + (m.H * m.J))) +
		(m.N * ((m.G * m.L) - (m.H * m.K))))) +

		(m.B * ((m.P * (-(m.E * m.K) + (m.G * m.I))) +
			(m.O * ((m.E * m.L) - (m.H * m.I))) +
			(m.M * (-(m.G * m.L) + (m.H * m.K))))) +

		(m.C * ((m.P * ((m.E * m.J) - (m.F * m.I))) +
			(m.N * (-(m.E * m.L) + (m.H * m.I))) +
			(m.M * ((m.F * m.L) - (m.H * m.J))))) +

		(m.D * ((m.O * (-(m.E * m.J) + (m.F * m.I))) +
			(m.N * ((m.E * m.K) - (m.G * m.I))) +
			(m.M * (-(m.F * m.K) + (m.G * m.J)))))
}

// Transpose returns a new Mat4 with element (r,c) swapped with (c,r).
func (m Mat4) Transpose() Mat4 {
	return Mat4{
		A: m.A, B: m.E, C: m.I, D: m.M,
		E: m.B, F: m.F, G: m.J, H: m.N,
		I: m.C, J: m.G, K: m.K, L: m.O,
		M: m.D, N: m.H, O: m.L, P: m.P,
	}
}

// Multiply multiplies two Mat4s together, returning a new Mat4 holding
// the standard row-by-column composition.
//
// Matrix multiplication is not commutative: A*B != B*A for most
// matrices, the main exception being the identity. Only the naive
// composition is provided; divide-and-conquer schemes lose to it at
// this fixed size.
func (m Mat4) Multiply(other Mat4) Mat4 {
	return Mat4{
		A: (m.A * other.A) + (m.B * other.E) + (m.C * other.I) + (m.D * other.M),
		B: (m.A * other.B) + (m.B * other.F) + (m.C * other.J) + (m.D * other.N),
		C: (m.A * other.C) + (m.B * other.G) + (m.C * other.K) + (m.D * other.O),
		D: (m.A * other.D) + (m.B * other.H) + (m.C * other.L) + (m.D * other.P),
		E: (m.E * other.A) + (m.F * other.E) + (m.G * other.I) + (m.H * other.M),
		F: (m.E * other.B) + (m.F * other.F) + (m.G * other.J) + (m.H * other.N),
		G: (m.E * other.C) + (m.F * other.G) + (m.G * other.K) + (m.H * other.O),
		H: (m.E * other.D) + (m.F * other.H) + (m.G * other.L) + (m.H * other.P),
		I: (m.I * other.A) + (m.J * other.E) + (m.K * other.I) + (m.L * other.M),
		J: (m.I * other.B) + (m.J * other.F) + (m.K * other.J) + (m.L * other.N),
		K: (m.I * other.C) + (m.J * other.G) + (m.K * other.K) + (m.L * other.O),
		L: (m.I * other.D) + (m.J * other.H) + (m.K * other.L) + (m.L * other.P),
		M: (m.M * other.A) + (m.N * other.E) + (m.O * other.I) + (m.P * other.M),
		N: (m.M * other.B) + (m.N * other.F) + (m.O * other.J) + (m.P * other.N),
		O: (m.M * other.C) + (m.N * other.G) + (m.O * other.K) + (m.P * other.O),
		P: (m.M * other.D) + (m.N * other.H) + (m.O * other.L) + (m.P * other.P),
	}
}

// MultiplyVec4 multiplies the Mat4 by a Vec4 treated as a column,
// returning a Vec4.
func (m Mat4) MultiplyVec4(v Vec4) Vec4 {
	return Vec4{
		X: (m.A * v.X) + (m.B * v.Y) + (m.C * v.Z) + (m.D * v.W),
		Y: (m.E * v.X) + (m.F * v.Y) + (m.G * v.Z) + (m.H * v.W),
		Z: (m.I * v.X) + (m.J * v.Y) + (m.K * v.Z) + (m.L * v.W),
		W: (m.M * v.X) + (m.N * v.Y) + (m.O * v.Z) + (m.P * v.W),
	}
}

// Scale returns a new Mat4 with every element multiplied by scalar.
func (m Mat4) Scale(scalar float32) Mat4 {
	return Mat4{
		A: scalar * m.A,
		B: scalar * m.B,
		C: scalar * m.C,
		D: scalar * m.D,
		E: scalar * m.E,
		F: scalar * m.F,
		G: scalar * m.G,
		H: scalar * m.H,
		I: scalar * m.I,
		J: scalar * m.J,
		K: scalar * m.K,
		L: scalar * m.L,
		M: scalar * m.M,
		N: scalar * m.N,
		O: scalar * m.O,
		P: scalar * m.P,
	}
}
