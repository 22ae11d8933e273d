// SPDX-License-Identifier: MIT
// Package matriarch: 4D vector type and its associated kernels.

package matriarch

import "math"

// Vec4 is a 4D vector with components X, Y, Z and W.
//
// Vec4 has no cross product: the operation is geometrically undefined at
// this arity, so its absence is intentional rather than an omission.
type Vec4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// NewVec4 returns a new Vec4 at [0, 0, 0, 0].
func NewVec4() Vec4 {
	return Vec4{}
}

// NewVec4FromValues returns a new Vec4 using the given values.
func NewVec4FromValues(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// NewVec4FromArray returns a new Vec4 where [0] -> X, [1] -> Y,
// [2] -> Z, [3] -> W.
func NewVec4FromArray(input [4]float32) Vec4 {
	return Vec4{X: input[0], Y: input[1], Z: input[2], W: input[3]}
}

// NewVec4FromSlice builds a Vec4 from a loosely sized buffer.
// Returns ErrInvalidLength unless len(input) == 4; never truncates.
func NewVec4FromSlice(input []float32) (Vec4, error) {
	if len(input) != 4 {
		return Vec4{}, ErrInvalidLength
	}

	return Vec4{X: input[0], Y: input[1], Z: input[2], W: input[3]}, nil
}

// ToArray returns the components in index order; exact inverse of
// NewVec4FromArray.
func (v Vec4) ToArray() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

// Add returns the component-wise sum of two Vec4s as a new Vec4.
func (v Vec4) Add(other Vec4) Vec4 {
	return Vec4{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z, W: v.W + other.W}
}

// AddAssign adds other to the receiver and replaces the receiver's state
// with the result.
func (v *Vec4) AddAssign(other Vec4) {
	*v = Vec4{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z, W: v.W + other.W}
}

// Subtract returns the component-wise difference of two Vec4s as a new Vec4.
func (v Vec4) Subtract(other Vec4) Vec4 {
	return Vec4{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z, W: v.W - other.W}
}

// SubtractAssign subtracts other from the receiver and replaces the
// receiver's state with the result.
func (v *Vec4) SubtractAssign(other Vec4) {
	*v = Vec4{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z, W: v.W - other.W}
}

// Negate returns a new Vec4 with every component sign-flipped.
func (v Vec4) Negate() Vec4 {
	return Vec4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

// Scale returns a new Vec4 with every component multiplied by scalar.
func (v Vec4) Scale(scalar float32) Vec4 {
	return Vec4{X: scalar * v.X, Y: scalar * v.Y, Z: scalar * v.Z, W: scalar * v.W}
}

// Dot returns the dot product of two Vec4s, a scalar.
func (v Vec4) Dot(other Vec4) float32 {
	return (v.X * other.X) + (v.Y * other.Y) + (v.Z * other.Z) + (v.W * other.W)
}

// Length returns the Euclidean norm of the Vec4.
func (v Vec4) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)))
}
