// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

// escapeSignal is the dedicated control-flow signal of the
// exception-escape trampoline: it is raised instead of returned and
// carries the deferred continuation for the next step. It is not an
// application fault and is recognized only by [RunEscape].
type escapeSignal[A any] struct {
	next func() A
}

// Escape abandons the current step and hands next to the innermost
// [RunEscape] driving a computation of the same result type. It never
// returns; declaring the A result lets call sites stay in return
// position:
//
//	return Escape(func() bool { return odd(n - 1) })
//
// Calling Escape outside a [RunEscape] region leaves the raw signal
// value propagating as a panic.
func Escape[A any](next func() A) A {
	panic(escapeSignal[A]{next: next})
}

// RunEscape evaluates step inside a region that catches the dedicated
// escape signal, and only that signal. Catching one, it resumes from
// the carried continuation and re-enters the region; on normal
// completion it returns the value. Every other panic propagates
// unmodified: this driver is not a fault handler, and treating it as
// one would mask real bugs as resumptions.
//
// Each step pays one raise/catch round trip, the defining cost of this
// technique; the package benchmarks put a number on it.
func RunEscape[A any](step func() A) A {
	for {
		v, sig := catchEscape(step)
		if sig == nil {
			return v
		}
		step = sig.next
	}
}

// catchEscape runs one step, converting a raised escapeSignal[A] into
// a non-nil signal return. Foreign panics pass through unchanged.
func catchEscape[A any](step func() A) (v A, sig *escapeSignal[A]) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s, ok := r.(escapeSignal[A])
		if !ok {
			panic(r)
		}
		sig = &s
	}()
	return step(), nil
}

// escapeEven applies the even rule, raising the escape signal in place
// of the recursive call.
func escapeEven(n int) bool {
	if n == 0 {
		return true
	}
	return Escape(func() bool { return escapeOdd(n - 1) })
}

// escapeOdd applies the odd rule, raising likewise.
func escapeOdd(n int) bool {
	if n == 0 {
		return false
	}
	return Escape(func() bool { return escapeEven(n - 1) })
}

// EscapeEven reports whether n is even using the exception-escape
// trampoline.
func EscapeEven(n int) bool {
	return RunEscape(func() bool { return escapeEven(n) })
}
