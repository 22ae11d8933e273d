// SPDX-License-Identifier: MIT
// Package matriarch: 2D vector type and its associated kernels.

package matriarch

import "math"

// Vec2 is a 2D vector with components X and Y.
//
// Vec2 is an immutable value type: every operation returns a fresh Vec2
// and never mutates its operands, except the explicit *Assign variants,
// which replace the receiver's whole state in one step.
type Vec2 struct {
	X float32
	Y float32
}

// NewVec2 returns a new Vec2 at [0, 0].
func NewVec2() Vec2 {
	return Vec2{}
}

// NewVec2FromValues returns a new Vec2 using the given values for X and Y.
func NewVec2FromValues(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// NewVec2FromArray returns a new Vec2 where [0] -> X and [1] -> Y.
func NewVec2FromArray(input [2]float32) Vec2 {
	return Vec2{X: input[0], Y: input[1]}
}

// NewVec2FromSlice builds a Vec2 from a loosely sized buffer.
// Returns ErrInvalidLength unless len(input) == 2; never truncates.
func NewVec2FromSlice(input []float32) (Vec2, error) {
	if len(input) != 2 {
		return Vec2{}, ErrInvalidLength
	}

	return Vec2{X: input[0], Y: input[1]}, nil
}

// ToArray returns the components as an array where X -> [0] and Y -> [1].
// Exact inverse of NewVec2FromArray: the round-trip is bit-for-bit.
func (v Vec2) ToArray() [2]float32 {
	return [2]float32{v.X, v.Y}
}

// Add returns the component-wise sum of two Vec2s as a new Vec2.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// AddAssign adds other to the receiver and replaces the receiver's state
// with the result.
func (v *Vec2) AddAssign(other Vec2) {
	*v = Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Subtract returns the component-wise difference of two Vec2s as a new Vec2.
func (v Vec2) Subtract(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// SubtractAssign subtracts other from the receiver and replaces the
// receiver's state with the result.
func (v *Vec2) SubtractAssign(other Vec2) {
	*v = Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Negate returns a new Vec2 with every component sign-flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Scale returns a new Vec2 with every component multiplied by scalar.
// Scalar multiplication is commutative, so a single method covers both
// scalar*vector and vector*scalar.
func (v Vec2) Scale(scalar float32) Vec2 {
	return Vec2{X: scalar * v.X, Y: scalar * v.Y}
}

// Dot returns the dot product of two Vec2s, a scalar.
// Distinct from Scale: Dot collapses two vectors into a float32.
func (v Vec2) Dot(other Vec2) float32 {
	return (v.X * other.X) + (v.Y * other.Y)
}

// Length returns the Euclidean norm of the Vec2.
// No zero guard: sqrt(0) = 0 is well-defined, and NaN/Inf propagate
// through untouched per IEEE-754.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// CrossProduct returns the cross product of two Vec2s as if they were
// Vec3s with a Z component of 0.
//
// Two vectors in R^2 cannot be cross-multiplied, but promoting both with
// Z=0 and crossing in R^3 is well-defined, which is why the result is a
// Vec3.
func (v Vec2) CrossProduct(other Vec2) Vec3 {
	return Vec3{
		// The general formula would multiply through the zero Z
		// components for both X and Y, so short-circuit to literal
		// zeros instead.
		X: 0.0,
		Y: 0.0,
		Z: (v.X * other.Y) - (v.Y * other.X),
	}
}
