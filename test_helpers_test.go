// SPDX-License-Identifier: MIT
// Package matriarch_test: shared fixtures and reference kernels.
//
// The reference determinants below are deliberately naive: the full
// signed permutation expansion, one product per permutation. They exist
// so the grouped production kernels can be checked against a formula a
// reviewer can verify against a textbook term by term.
//
// Random fixtures draw small integer values. Every product and sum of
// such entries is exactly representable in float32, so the grouped and
// the naive expansions agree bit-for-bit and the property tests can use
// exact equality without an epsilon.

package matriarch_test

import (
	"math/rand"

	"github.com/katalvlaran/matriarch"
)

// randInts fills dst with integer values in [-8, 8].
func randInts(r *rand.Rand, dst []float32) {
	for i := range dst {
		dst[i] = float32(r.Intn(17) - 8)
	}
}

// randMat2 returns a Mat2 with small integer entries.
func randMat2(r *rand.Rand) matriarch.Mat2 {
	var buf [4]float32
	randInts(r, buf[:])

	return matriarch.NewMat2FromArray(buf)
}

// randMat3 returns a Mat3 with small integer entries.
func randMat3(r *rand.Rand) matriarch.Mat3 {
	var buf [9]float32
	randInts(r, buf[:])

	return matriarch.NewMat3FromArray(buf)
}

// randMat4 returns a Mat4 with small integer entries.
func randMat4(r *rand.Rand) matriarch.Mat4 {
	var buf [16]float32
	randInts(r, buf[:])

	return matriarch.NewMat4FromArray(buf)
}

// refDeterminantMat2 is the 2-permutation reference: ad - bc.
func refDeterminantMat2(m matriarch.Mat2) float32 {
	return m.A*m.D - m.B*m.C
}

// refDeterminantMat3 is the 6-permutation reference (rule of Sarrus).
func refDeterminantMat3(m matriarch.Mat3) float32 {
	return (m.A * m.E * m.I) - (m.A * m.F * m.H) -
		(m.B * m.D * m.I) + (m.B * m.F * m.G) +
		(m.C * m.D * m.H) - (m.C * m.E * m.G)
}

// refDeterminantMat4 is the 24-permutation reference: the full Laplace
// expansion with 72 multiplications and no factoring.
func refDeterminantMat4(m matriarch.Mat4) float32 {
	return (m.A * m.F * m.K * m.P) - (m.A * m.F * m.L * m.O) -
		(m.A * m.G * m.J * m.P) + (m.A * m.G * m.L * m.N) +
		(m.A * m.H * m.J * m.O) - (m.A * m.H * m.K * m.N) -
		(m.B * m.E * m.K * m.P) + (m.B * m.E * m.L * m.O) +
		(m.B * m.G * m.I * m.P) - (m.B * m.G * m.L * m.M) -
		(m.B * m.H * m.I * m.O) + (m.B * m.H * m.K * m.M) +
		(m.C * m.E * m.J * m.P) - (m.C * m.E * m.L * m.N) -
		(m.C * m.F * m.I * m.P) + (m.C * m.F * m.L * m.M) +
		(m.C * m.H * m.I * m.N) - (m.C * m.H * m.J * m.M) -
		(m.D * m.E * m.J * m.O) + (m.D * m.E * m.K * m.N) +
		(m.D * m.F * m.I * m.O) - (m.D * m.F * m.K * m.M) -
		(m.D * m.G * m.I * m.N) + (m.D * m.G * m.J * m.M)
}
