// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tailcall provides a reusable stack-safe tail-call utility.
//
// A [TailRec] value is a computation whose recursive calls have been
// marked rather than made: [Done] marks completion, [Call] marks
// "suspend here, resume by evaluating this call". [TailRec.Result]
// owns the driving loop, so code built on this package has no driver
// of its own to get wrong; its single obligation is to mark every
// recursive call site with [Call] and never invoke the next step
// directly, since an unmarked call consumes native stack exactly as if
// this package were not used.
//
// [FlatMap] and [Map] compose computations without forcing them; both
// defer their function application behind [Call], so composition
// preserves stack safety. Go has no language-level tail-call
// elimination, mutual or self, that code may rely on; this package is
// the explicit substitute.
package tailcall

// TailRec is a computation producing a value of type A whose tail
// calls are data. The zero value is a completed computation carrying
// the zero value of A.
//
// Values are immutable once constructed and are consumed by the driver
// in [TailRec.Result]; a value may be driven any number of times, each
// evaluation independent.
type TailRec[A any] struct {
	value A
	next  func() TailRec[A]
}

// Done marks completion with v.
func Done[A any](v A) TailRec[A] {
	return TailRec[A]{value: v}
}

// Call marks a tail call: suspend here, resume by evaluating next.
// next must not be nil.
func Call[A any](next func() TailRec[A]) TailRec[A] {
	return TailRec[A]{next: next}
}

// Result evaluates the computation to completion and returns its
// value. Every suspended call is resumed from this loop frame; native
// stack depth does not grow with the number of marked calls.
func (t TailRec[A]) Result() A {
	for t.next != nil {
		t = t.next()
	}
	return t.value
}

// FlatMap sequences f after t, deferring both t's remaining steps and
// the application of f behind [Call]. Stack use per driven step is
// constant in the length of t; each layer of nested FlatMap adds one
// frame per step, so only composition depth, never computation length,
// reaches the native stack.
//
// Each driven step allocates one closure.
func FlatMap[A, B any](t TailRec[A], f func(A) TailRec[B]) TailRec[B] {
	if t.next == nil {
		v := t.value
		return Call(func() TailRec[B] { return f(v) })
	}
	return Call(func() TailRec[B] { return FlatMap(t.next(), f) })
}

// Map transforms the result of t with f.
// Equivalent to FlatMap(t, func(a A) TailRec[B] { return Done(f(a)) }).
func Map[A, B any](t TailRec[A], f func(A) B) TailRec[B] {
	return FlatMap(t, func(a A) TailRec[B] { return Done(f(a)) })
}
