// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

import "code.hybscloud.com/kont"

// suspendExpr defers f behind a lazy bind frame so that kont's
// evaluator, not the native stack, performs the iteration. The frame
// is built directly: kont.ExprBind applies its function eagerly when
// the first computation is already completed, which here would force
// the entire recursion at construction time. f runs once, inside the
// driver's loop frame, when evaluation reaches the frame.
func suspendExpr[A any](f func() kont.Expr[A]) kont.Expr[A] {
	return kont.ExprSuspend[A](&kont.BindFrame[kont.Erased, kont.Erased]{
		F: func(kont.Erased) kont.Expr[kont.Erased] {
			e := f()
			return kont.Expr[kont.Erased]{Value: kont.Erased(e.Value), Frame: e.Frame}
		},
		Next: kont.ReturnFrame{},
	})
}

// kontEven expresses the even rule as a kont.Expr: done is ExprReturn,
// the recursive step is suspended and never forced eagerly.
func kontEven(n int) kont.Expr[bool] {
	if n == 0 {
		return kont.ExprReturn(true)
	}
	return suspendExpr(func() kont.Expr[bool] { return kontOdd(n - 1) })
}

// kontOdd expresses the odd rule as a kont.Expr.
func kontOdd(n int) kont.Expr[bool] {
	if n == 0 {
		return kont.ExprReturn(false)
	}
	return suspendExpr(func() kont.Expr[bool] { return kontEven(n - 1) })
}

// KontEven reports whether n is even by handing the suspended parity
// computation to kont's own driver. The single top-level RunPure call
// is the only driving done here; the computation contains no effect
// frames, so RunPure cannot panic.
func KontEven(n int) bool {
	return kont.RunPure(kontEven(n))
}
