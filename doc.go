// Package matriarch is a fixed-size linear-algebra kernel library for
// geometric computation — 2x2/3x3/4x4 matrices and 2/3/4-component
// vectors with the closed-form kernels 3D transforms need.
//
// 🚀 What is matriarch?
//
//	A small, zero-allocation, pure-Go library that brings together:
//		• Vector types: Vec2, Vec3, Vec4 — add, subtract, negate, scale,
//		  dot product, Euclidean length, cross product (Vec2 promotes to
//		  Vec3 with a documented Z-only short circuit)
//		• Matrix types: Mat2, Mat3, Mat4 — construction, row-major and
//		  column-major array conversion, column-vector decomposition,
//		  transpose, determinant, matrix×matrix / matrix×vector / scalar
//		  multiplication
//		• A 40-multiplication grouped Mat4 determinant with a pinned
//		  evaluation order, exactly equivalent to the naive 72-multiply
//		  cofactor expansion
//
// ✨ Why choose matriarch?
//
//   - Value semantics – every type is a flat float32 struct; copy is
//     duplication, no sharing, no heap, trivially safe across goroutines
//   - Reproducible floats – evaluation order of every kernel is fixed and
//     documented, so results are bit-stable across calls and versions
//   - Total functions – no panics on user input; the only error surface is
//     the *FromSlice constructors, which fail fast with ErrInvalidLength
//   - Hand-specialized – three concrete arities, no generic dimension-N
//     abstraction: the size-4 determinant grouping does not generalize
//
// Element layout is row-major and public. A Mat4, for example:
//
//	    [ A  B  C  D ]
//	M = [ E  F  G  H ]
//	    [ I  J  K  L ]
//	    [ M  N  O  P ]
//
// with ToArray walking rows and ToColArray walking columns (the layout
// graphics APIs expecting column-major uniforms consume).
//
// Equality is exact field-wise float32 comparison via ==; callers who
// need tolerance bring their own epsilon. NaN and Inf are never
// filtered; IEEE-754 semantics propagate through every kernel.
//
// Dive into the examples/ directory and the Example tests for usage
// patterns.
//
//	go get github.com/katalvlaran/matriarch
package matriarch
