// SPDX-License-Identifier: MIT
// Package matriarch: 3D vector type and its associated kernels.

package matriarch

import "math"

// Vec3 is a 3D vector with components X, Y and Z.
//
// Like every type in this package, Vec3 is an immutable value type;
// only the *Assign variants touch the receiver, and they replace its
// whole state at once.
type Vec3 struct {
	X float32
	Y float32
	Z float32
}

// NewVec3 returns a new Vec3 at [0, 0, 0].
func NewVec3() Vec3 {
	return Vec3{}
}

// NewVec3FromValues returns a new Vec3 using the given values.
func NewVec3FromValues(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewVec3FromArray returns a new Vec3 where [0] -> X, [1] -> Y, [2] -> Z.
func NewVec3FromArray(input [3]float32) Vec3 {
	return Vec3{X: input[0], Y: input[1], Z: input[2]}
}

// NewVec3FromSlice builds a Vec3 from a loosely sized buffer.
// Returns ErrInvalidLength unless len(input) == 3; never truncates.
func NewVec3FromSlice(input []float32) (Vec3, error) {
	if len(input) != 3 {
		return Vec3{}, ErrInvalidLength
	}

	return Vec3{X: input[0], Y: input[1], Z: input[2]}, nil
}

// ToArray returns the components in index order; exact inverse of
// NewVec3FromArray.
func (v Vec3) ToArray() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// Add returns the component-wise sum of two Vec3s as a new Vec3.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// AddAssign adds other to the receiver and replaces the receiver's state
// with the result.
func (v *Vec3) AddAssign(other Vec3) {
	*v = Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Subtract returns the component-wise difference of two Vec3s as a new Vec3.
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// SubtractAssign subtracts other from the receiver and replaces the
// receiver's state with the result.
func (v *Vec3) SubtractAssign(other Vec3) {
	*v = Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Negate returns a new Vec3 with every component sign-flipped.
func (v Vec3) Negate() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Scale returns a new Vec3 with every component multiplied by scalar.
func (v Vec3) Scale(scalar float32) Vec3 {
	return Vec3{X: scalar * v.X, Y: scalar * v.Y, Z: scalar * v.Z}
}

// Dot returns the dot product of two Vec3s, a scalar.
func (v Vec3) Dot(other Vec3) float32 {
	return (v.X * other.X) + (v.Y * other.Y) + (v.Z * other.Z)
}

// Length returns the Euclidean norm of the Vec3.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// CrossProduct returns the cross product of two Vec3s using the standard
// right-handed formula. The result is perpendicular to both inputs.
func (v Vec3) CrossProduct(other Vec3) Vec3 {
	return Vec3{
		X: (v.Y * other.Z) - (v.Z * other.Y),
		Y: (v.Z * other.X) - (v.X * other.Z),
		Z: (v.X * other.Y) - (v.Y * other.X),
	}
}
