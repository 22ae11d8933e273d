// SPDX-License-Identifier: MIT
// Package matriarch: sentinel error set.
// Every operation in this package is a total function over well-typed
// fixed-size inputs; the only user-triggered failure is constructing a
// type from a loosely sized buffer. Constructors MUST return these
// sentinels and tests MUST check them via errors.Is. No algorithm panics
// on user input.

package matriarch

import "errors"

// ErrInvalidLength is returned by the *FromSlice constructors when the
// input buffer's length does not match the type's fixed element count.
// Constructors fail fast; they never truncate or read past the buffer.
var ErrInvalidLength = errors.New("matriarch: input length does not match element count")
