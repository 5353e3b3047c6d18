// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

// ParityTag discriminates the states of the specialized parity machine.
type ParityTag uint8

const (
	// ParityDone marks a completed evaluation; Result carries the answer.
	ParityDone ParityTag = iota

	// ParityEven marks a pending application of the even rule to Remaining.
	ParityEven

	// ParityOdd marks a pending application of the odd rule to Remaining.
	ParityOdd
)

// ParityState is the suspended-computation value of the specialized
// machine: a completed result, or the name of the next transition and
// its argument. Exactly these three states exist for the parity
// problem, which is what lets the state be a plain value. Producing
// and consuming one does not allocate.
//
// States are produced by [StepEven] and [StepOdd] and consumed exactly
// once by the driver that requested them.
type ParityState struct {
	// Tag selects the state.
	Tag ParityTag

	// Remaining is the next transition's argument.
	// Valid when Tag is ParityEven or ParityOdd.
	Remaining int

	// Result is the final answer. Valid when Tag is ParityDone.
	Result bool
}

// StepEven applies the even rule once: 0 is even, otherwise the next
// step is the odd rule on n-1. The recursive call of the baseline
// becomes a tagged value here; nothing is invoked.
func StepEven(n int) ParityState {
	if n == 0 {
		return ParityState{Tag: ParityDone, Result: true}
	}
	return ParityState{Tag: ParityOdd, Remaining: n - 1}
}

// StepOdd applies the odd rule once: 0 is not odd, otherwise the next
// step is the even rule on n-1.
func StepOdd(n int) ParityState {
	if n == 0 {
		return ParityState{Tag: ParityDone, Result: false}
	}
	return ParityState{Tag: ParityEven, Remaining: n - 1}
}

// RunMachine drives st to completion and returns the carried result.
// Every transition is applied from this loop frame, so native stack
// depth stays constant no matter how many steps remain.
//
// A tag outside the three defined states panics: such a state can only
// be hand-constructed, and silently ignoring it would hide the bug.
func RunMachine(st ParityState) bool {
	for {
		switch st.Tag {
		case ParityDone:
			return st.Result
		case ParityEven:
			st = StepEven(st.Remaining)
		case ParityOdd:
			st = StepOdd(st.Remaining)
		default:
			unknownParityTag()
		}
	}
}

// MachineEven reports whether n is even by driving the specialized
// machine. This is defunctionalization (Reynolds 1972) applied to the
// baseline: its two call sites become [ParityEven] and [ParityOdd],
// and [RunMachine] is the apply loop.
func MachineEven(n int) bool {
	return RunMachine(StepEven(n))
}

//go:noinline
func unknownParityTag() {
	panic("bounce: unknown parity state tag")
}
