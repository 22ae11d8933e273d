package matriarch_test

import (
	"testing"

	"github.com/katalvlaran/matriarch"
	"github.com/stretchr/testify/require"
)

func TestNewVec3(t *testing.T) {
	require.Equal(t, matriarch.Vec3{X: 0.0, Y: 0.0, Z: 0.0}, matriarch.NewVec3())
}

func TestNewVec3FromValues(t *testing.T) {
	v := matriarch.NewVec3FromValues(1.0, 2.0, 3.0)
	require.Equal(t, matriarch.Vec3{X: 1.0, Y: 2.0, Z: 3.0}, v)
}

func TestNewVec3FromArray(t *testing.T) {
	v := matriarch.NewVec3FromArray([3]float32{1.0, 2.5, -3.0})
	require.Equal(t, matriarch.Vec3{X: 1.0, Y: 2.5, Z: -3.0}, v)
}

func TestNewVec3FromSlice(t *testing.T) {
	v, err := matriarch.NewVec3FromSlice([]float32{1.0, 2.5, -3.0})
	require.NoError(t, err)
	require.Equal(t, matriarch.Vec3{X: 1.0, Y: 2.5, Z: -3.0}, v)
}

func TestNewVec3FromSlice_InvalidLength(t *testing.T) {
	_, err := matriarch.NewVec3FromSlice([]float32{1.0, 2.5})
	require.ErrorIs(t, err, matriarch.ErrInvalidLength)
}

func TestVec3ToArray(t *testing.T) {
	v := matriarch.Vec3{X: 1.0, Y: 3.5, Z: 0.5}
	require.Equal(t, [3]float32{1.0, 3.5, 0.5}, v.ToArray())
}

func TestVec3ArrayRoundTrip(t *testing.T) {
	v := matriarch.Vec3{X: 1.25, Y: -7.5, Z: 42.0}
	require.Equal(t, v, matriarch.NewVec3FromArray(v.ToArray()))
}

func TestVec3CrossProduct(t *testing.T) {
	v1 := matriarch.Vec3{X: 2.0, Y: 4.5, Z: 0.0}
	v2 := matriarch.Vec3{X: 3.0, Y: 1.5, Z: 4.0}
	require.Equal(t, matriarch.Vec3{X: 18.0, Y: -8.0, Z: -10.5}, v1.CrossProduct(v2))
}

// The cross product of two parallel vectors is the zero vector.
func TestVec3CrossProductParallel(t *testing.T) {
	v1 := matriarch.Vec3{X: 1.0, Y: 2.0, Z: 3.0}
	v2 := v1.Scale(2.0)
	require.Equal(t, matriarch.NewVec3(), v1.CrossProduct(v2))
}

func TestVec3Length(t *testing.T) {
	v := matriarch.Vec3{X: 2.0, Y: 3.0, Z: 6.0}
	require.Equal(t, float32(7.0), v.Length())
}

func TestVec3Add(t *testing.T) {
	v1 := matriarch.Vec3{X: 1.0, Y: 0.0, Z: 2.0}
	v2 := matriarch.Vec3{X: 0.0, Y: 1.0, Z: 2.0}
	require.Equal(t, matriarch.Vec3{X: 1.0, Y: 1.0, Z: 4.0}, v1.Add(v2))
}

func TestVec3AddAssign(t *testing.T) {
	v1 := matriarch.Vec3{X: 1.0, Y: 0.0, Z: 2.0}
	v2 := matriarch.Vec3{X: 0.0, Y: 1.0, Z: 2.0}
	v1.AddAssign(v2)
	require.Equal(t, matriarch.Vec3{X: 1.0, Y: 1.0, Z: 4.0}, v1)
}

func TestVec3Scale(t *testing.T) {
	v := matriarch.Vec3{X: 1.0, Y: 3.5, Z: -2.0}
	require.Equal(t, matriarch.Vec3{X: 2.0, Y: 7.0, Z: -4.0}, v.Scale(2.0))
}

func TestVec3Dot(t *testing.T) {
	v1 := matriarch.Vec3{X: 3.0, Y: 2.0, Z: 1.0}
	v2 := matriarch.Vec3{X: 3.0, Y: 4.0, Z: 5.0}
	require.Equal(t, float32(22.0), v1.Dot(v2))
}

func TestVec3Negate(t *testing.T) {
	v := matriarch.Vec3{X: 0.0, Y: 2.0, Z: -3.0}
	require.Equal(t, matriarch.Vec3{X: 0.0, Y: -2.0, Z: 3.0}, v.Negate())
}

func TestVec3Subtract(t *testing.T) {
	v1 := matriarch.Vec3{X: 1.0, Y: 2.0, Z: 3.0}
	v2 := matriarch.Vec3{X: 1.0, Y: 1.0, Z: 1.0}
	require.Equal(t, matriarch.Vec3{X: 0.0, Y: 1.0, Z: 2.0}, v1.Subtract(v2))
}

func TestVec3SubtractAssign(t *testing.T) {
	v1 := matriarch.Vec3{X: 1.0, Y: 2.0, Z: 3.0}
	v2 := matriarch.Vec3{X: 1.0, Y: 1.0, Z: 1.0}
	v1.SubtractAssign(v2)
	require.Equal(t, matriarch.Vec3{X: 0.0, Y: 1.0, Z: 2.0}, v1)
}
