// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

// DefaultMaxDepth is the direct-recursion budget used by [HybridEven].
// The value trades stack against throughput: each batch of
// DefaultMaxDepth steps runs as plain calls with a single re-encoding
// at the end. See [HybridEvenAt] to tune it per call.
const DefaultMaxDepth = 6000

// HybridTag discriminates the states of the batched hybrid machine.
type HybridTag uint8

const (
	// HybridDone marks a completed evaluation; Result carries the answer.
	HybridDone HybridTag = iota

	// HybridPendingEven marks a pending application of the even rule.
	HybridPendingEven

	// HybridPendingOdd marks a pending application of the odd rule.
	HybridPendingOdd
)

// HybridState is the suspended-computation value of the hybrid
// machine. Pending states additionally record Depth, the native
// recursion depth at which re-encoding happened: when a step function
// is entered at depth zero with budget limit >= 0, every pending state
// it produces carries limit+1. Tests use that to observe the stack
// bound without inspecting the runtime stack.
type HybridState struct {
	// Tag selects the state.
	Tag HybridTag

	// Remaining is the next transition's argument. Valid when Tag is
	// HybridPendingEven or HybridPendingOdd.
	Remaining int

	// Depth is the recursion depth recorded at re-encoding time.
	// Valid when Tag is HybridPendingEven or HybridPendingOdd.
	Depth int

	// Result is the final answer. Valid when Tag is HybridDone.
	Result bool
}

// HybridStepEven applies the even rule under a direct-recursion
// budget. While depth < limit the next step is an ordinary call,
// exactly like the baseline with depth+1 frames outstanding; once the
// budget is spent the remaining work is returned re-encoded instead of
// recursed into.
func HybridStepEven(n, depth, limit int) HybridState {
	if n == 0 {
		return HybridState{Tag: HybridDone, Result: true}
	}
	if depth < limit {
		return HybridStepOdd(n-1, depth+1, limit)
	}
	return HybridState{Tag: HybridPendingOdd, Remaining: n - 1, Depth: depth + 1}
}

// HybridStepOdd applies the odd rule under the same budget.
func HybridStepOdd(n, depth, limit int) HybridState {
	if n == 0 {
		return HybridState{Tag: HybridDone, Result: false}
	}
	if depth < limit {
		return HybridStepEven(n-1, depth+1, limit)
	}
	return HybridState{Tag: HybridPendingEven, Remaining: n - 1, Depth: depth + 1}
}

// RunHybrid resumes pending states until completion, restarting each
// batch at depth zero. The deepest native chain is one batch, so stack
// depth is bounded by limit plus the constant overhead of this loop,
// independent of the input.
//
// An unknown tag panics, as in [RunMachine].
func RunHybrid(st HybridState, limit int) bool {
	for {
		switch st.Tag {
		case HybridDone:
			return st.Result
		case HybridPendingEven:
			st = HybridStepEven(st.Remaining, 0, limit)
		case HybridPendingOdd:
			st = HybridStepOdd(st.Remaining, 0, limit)
		default:
			unknownHybridTag()
		}
	}
}

// HybridEven reports whether n is even with the default budget.
func HybridEven(n int) bool {
	return HybridEvenAt(n, DefaultMaxDepth)
}

// HybridEvenAt reports whether n is even, bounding native recursion to
// maxDepth frames between re-encodings. maxDepth <= 0 re-encodes every
// step, degenerating to the specialized machine's behavior at higher
// cost; a budget beyond the environment's stack cap restores the
// baseline's failure mode. Both extremes are legal, the trade-off
// belongs to the caller.
func HybridEvenAt(n, maxDepth int) bool {
	return RunHybrid(HybridStepEven(n, 0, maxDepth), maxDepth)
}

//go:noinline
func unknownHybridTag() {
	panic("bounce: unknown hybrid state tag")
}
