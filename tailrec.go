// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

import "code.hybscloud.com/bounce/tailcall"

// tailEven applies the even rule with the recursive call site marked
// as a tail call instead of invoked. Invoking tailOdd directly here
// would silently reintroduce the baseline's stack growth; marking is
// this code's entire obligation, the tailcall driver does the rest.
func tailEven(n int) tailcall.TailRec[bool] {
	if n == 0 {
		return tailcall.Done(true)
	}
	return tailcall.Call(func() tailcall.TailRec[bool] { return tailOdd(n - 1) })
}

// tailOdd applies the odd rule, marking its call site likewise.
func tailOdd(n int) tailcall.TailRec[bool] {
	if n == 0 {
		return tailcall.Done(false)
	}
	return tailcall.Call(func() tailcall.TailRec[bool] { return tailEven(n - 1) })
}

// TailEven reports whether n is even using the tailcall utility's
// driver.
func TailEven(n int) bool {
	return tailEven(n).Result()
}
