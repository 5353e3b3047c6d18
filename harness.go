// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce

// Result markers returned by the harness entry points. A harness only
// needs to observe that computation occurred; the marker carries no
// payload beyond the parity itself.
const (
	MarkEven = "even"
	MarkOdd  = "odd"
)

// FixedInput is the input magnitude the entry points evaluate. It is
// chosen so the contrast between the baseline's linear stack and every
// other strategy's bounded stack is pronounced: on the order of a
// million frames for the baseline. Whether the baseline actually
// faults at this magnitude depends on the environment's stack cap
// (debug.SetMaxStack); cmd/bouncebench demonstrates the fault by
// lowering the cap in a child process.
const FixedInput = 1_000_000

// mark converts a parity result to its marker.
func mark(even bool) string {
	if even {
		return MarkEven
	}
	return MarkOdd
}

// The entry points below are the package's entire external surface for
// measurement harnesses: zero arguments, fixed input, marker result.
// Returning the marker keeps the computed value observed so a harness
// loop cannot be optimized into skipping the work.

// EntryBaseline evaluates the baseline at [FixedInput].
func EntryBaseline() string { return mark(Even(FixedInput)) }

// EntryMachine evaluates the specialized state machine at [FixedInput].
func EntryMachine() string { return mark(MachineEven(FixedInput)) }

// EntryTrampoline evaluates the generic trampoline at [FixedInput].
func EntryTrampoline() string { return mark(TrampolineEven(FixedInput)) }

// EntryTailCall evaluates the tailcall-utility variant at [FixedInput].
func EntryTailCall() string { return mark(TailEven(FixedInput)) }

// EntryKont evaluates the library monad trampoline at [FixedInput].
func EntryKont() string { return mark(KontEven(FixedInput)) }

// EntryEscape evaluates the exception-escape trampoline at [FixedInput].
func EntryEscape() string { return mark(EscapeEven(FixedInput)) }

// EntryHybrid evaluates the batched hybrid at [FixedInput] with
// [DefaultMaxDepth].
func EntryHybrid() string { return mark(HybridEven(FixedInput)) }

// Strategy describes one evaluation strategy to external drivers.
type Strategy struct {
	// Name is a short stable identifier, unique across [Strategies].
	Name string

	// StackSafe reports whether evaluation is safe at any input
	// magnitude. False only for the baseline, whose stack use is
	// linear in the input.
	StackSafe bool

	// Eval evaluates parity of an arbitrary non-negative input.
	Eval func(n int) bool

	// Entry is the zero-argument fixed-input harness entry point.
	Entry func() string
}

// Strategies returns the evaluation strategies in presentation order,
// baseline first. The slice is freshly allocated; callers may filter
// or reorder it.
func Strategies() []Strategy {
	return []Strategy{
		{Name: "baseline", StackSafe: false, Eval: Even, Entry: EntryBaseline},
		{Name: "machine", StackSafe: true, Eval: MachineEven, Entry: EntryMachine},
		{Name: "trampoline", StackSafe: true, Eval: TrampolineEven, Entry: EntryTrampoline},
		{Name: "tailcall", StackSafe: true, Eval: TailEven, Entry: EntryTailCall},
		{Name: "kont", StackSafe: true, Eval: KontEven, Entry: EntryKont},
		{Name: "escape", StackSafe: true, Eval: EscapeEven, Entry: EntryEscape},
		{Name: "hybrid", StackSafe: true, Eval: HybridEven, Entry: EntryHybrid},
	}
}
