// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

// Even reports whether n is even by direct mutual recursion with [Odd].
//
// Each decrement occupies one native call frame until the base case
// unwinds, so evaluation needs stack proportional to n. The goroutine
// stack grows on demand up to the runtime cap (debug.SetMaxStack);
// beyond the cap the runtime aborts the process with a fatal stack
// overflow. That fault is expected, unrecoverable, and the reason the
// other strategies in this package exist. Callers who cannot bound n
// should use any of the stack-safe variants instead.
//
// The noinline directives keep the two calls real: inlined into each
// other the pair becomes self-recursive, and the compiler eliminates
// self tail calls, which would quietly change this variant's stack
// behavior from one frame per decrement to none.
//
//go:noinline
func Even(n int) bool {
	if n == 0 {
		return true
	}
	return Odd(n - 1)
}

// Odd reports whether n is odd by direct mutual recursion with [Even].
// It shares the stack growth and failure mode of [Even].
//
//go:noinline
func Odd(n int) bool {
	if n == 0 {
		return false
	}
	return Even(n - 1)
}
