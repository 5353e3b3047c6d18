// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bounce implements a family of evaluation strategies that make
// an unbounded mutually recursive computation stack-safe without
// changing its observable result, and exposes uniform entry points so
// the strategies can be measured against each other.
//
// The reference problem is parity: even(0) = true, even(n) = odd(n-1),
// odd(0) = false, odd(n) = even(n-1). Naive recursion consumes one
// native call frame per decrement, so evaluation cost in stack is
// linear in n. Go does not eliminate mutual tail calls; every strategy
// here except the baseline re-encodes "the next step" as data and
// drives that data to a result with an explicit loop.
//
// # Strategies
//
// Each strategy evaluates the same two transition rules and differs
// only in how a suspended step is represented and resumed:
//
//   - [Even], [Odd]: unsafe baseline. Direct mutual recursion on the
//     native stack; the correctness and performance reference, and the
//     failure mode the rest of the package exists to avoid.
//   - [MachineEven]: specialized state machine. A three-state tagged
//     value ([ParityState]) produced by [StepEven]/[StepOdd] and driven
//     by [RunMachine]. Defunctionalization (Reynolds 1972) in
//     miniature: recursive calls become tags, the driver is the
//     apply function. Allocation-free.
//   - [TrampolineEven]: generic trampoline. [Comp] carries either a
//     completed value or a deferred thunk; [Run] is total for any
//     finite chain of [Continue]s ending in [Done], whatever the
//     result type. One closure allocation per step.
//   - [TailEven]: the tailcall subpackage owns the bookkeeping. Parity
//     code only marks call sites with tailcall.Call and completion
//     with tailcall.Done; the utility's driver performs the loop.
//   - [KontEven]: library monad trampoline. Parity expressed as
//     kont.Expr values (code.hybscloud.com/kont) with every recursive
//     step suspended behind a lazy bind frame, evaluated by a single
//     top-level kont.RunPure call.
//   - [EscapeEven]: exception-escape trampoline. Each step raises a
//     dedicated control-flow signal via [Escape]; [RunEscape] catches
//     exactly that signal, resumes from the carried continuation, and
//     lets every other panic propagate. Trades stack growth for a
//     raise/catch per step.
//   - [HybridEven], [HybridEvenAt]: batched hybrid. Direct recursion
//     up to a depth budget, then one re-encoded [HybridState] hands
//     control back to [RunHybrid]. Native stack depth is bounded by
//     the budget plus a constant, while most steps stay cheap direct
//     calls.
//
// # Stack and cost
//
// For input n, every strategy performs exactly n+1 rule applications.
// Native stack depth: baseline O(n); machine, trampoline, tailcall,
// kont and escape O(1); hybrid O(maxDepth). Per-step overhead grows
// roughly in the order machine < hybrid < trampoline ~ tailcall < kont
// < escape; the package benchmarks quantify this.
//
// # Harness boundary
//
// [Strategies] enumerates the strategies with their zero-argument
// entry points ([EntryBaseline] through [EntryHybrid]). Each entry
// evaluates parity of [FixedInput] and returns [MarkEven] or [MarkOdd]
// so an external harness can observe that computation occurred. The
// cmd/bouncebench command is one such harness.
//
// # Faults
//
// The package distinguishes three conditions. Stack exhaustion is
// fatal, expected only from the baseline at large inputs, and is never
// recovered. An unknown state tag panics with a "bounce:" prefixed
// message; it indicates a hand-constructed state, never a driver bug.
// The escape signal of [RunEscape] is control flow, not a fault, and
// never crosses its driver.
//
// Evaluation is single-threaded and deterministic. Suspended values
// are created per step, consumed exactly once, and never shared;
// concurrent evaluations of any strategy are independent.
package bounce
