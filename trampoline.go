// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

// Comp is a suspended computation producing a value of type A: either
// a completed result or a deferred remainder represented as a
// zero-argument thunk. The zero value is a completed computation
// carrying the zero value of A.
//
// Comp generalizes [ParityState]: where the specialized machine can
// only name its two transitions, a thunk can close over anything, so
// the same [Run] driver executes any computation phrased as a finite
// chain of [Continue]s ending in [Done]. The generality costs one
// closure allocation per step.
type Comp[A any] struct {
	// Value holds the result once the computation has completed.
	Value A

	// Next is the deferred remainder of the computation; nil marks
	// completion. The driver invokes it exactly once and discards it.
	Next func() Comp[A]
}

// Done returns a completed computation carrying v.
func Done[A any](v A) Comp[A] {
	return Comp[A]{Value: v}
}

// Continue returns a suspended computation that resumes by invoking
// next. next must not be nil; Continue(nil) is indistinguishable from
// Done of the zero value.
func Continue[A any](next func() Comp[A]) Comp[A] {
	return Comp[A]{Next: next}
}

// Run drives c to completion and returns its result. Each thunk is
// invoked from this loop frame, never from a deeper call, so native
// stack depth stays constant however long the chain is. Run is total
// for any finite chain; a computation that keeps returning [Continue]
// loops forever, faithfully to the non-terminating recursion it
// encodes.
func Run[A any](c Comp[A]) A {
	for c.Next != nil {
		c = c.Next()
	}
	return c.Value
}

// EvenComp suspends one application of the even rule: a completed true
// at zero, otherwise a thunk for the odd rule on n-1.
func EvenComp(n int) Comp[bool] {
	if n == 0 {
		return Done(true)
	}
	return Continue(func() Comp[bool] { return OddComp(n - 1) })
}

// OddComp suspends one application of the odd rule.
func OddComp(n int) Comp[bool] {
	if n == 0 {
		return Done(false)
	}
	return Continue(func() Comp[bool] { return EvenComp(n - 1) })
}

// TrampolineEven reports whether n is even via the generic trampoline.
func TrampolineEven(n int) bool {
	return Run(EvenComp(n))
}
