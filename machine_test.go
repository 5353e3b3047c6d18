// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce_test

import (
	"strings"
	"testing"

	"code.hybscloud.com/bounce"
)

// =============================================================================
// Transition functions
// =============================================================================

func TestStepEvenBaseCase(t *testing.T) {
	st := bounce.StepEven(0)
	if st.Tag != bounce.ParityDone {
		t.Fatalf("StepEven(0).Tag = %v, want ParityDone", st.Tag)
	}
	if st.Result != true {
		t.Errorf("StepEven(0).Result = %v, want true", st.Result)
	}
}

func TestStepEvenPending(t *testing.T) {
	st := bounce.StepEven(5)
	if st.Tag != bounce.ParityOdd {
		t.Fatalf("StepEven(5).Tag = %v, want ParityOdd", st.Tag)
	}
	if st.Remaining != 4 {
		t.Errorf("StepEven(5).Remaining = %d, want 4", st.Remaining)
	}
}

func TestStepOddBaseCase(t *testing.T) {
	st := bounce.StepOdd(0)
	if st.Tag != bounce.ParityDone {
		t.Fatalf("StepOdd(0).Tag = %v, want ParityDone", st.Tag)
	}
	if st.Result != false {
		t.Errorf("StepOdd(0).Result = %v, want false", st.Result)
	}
}

func TestStepOddPending(t *testing.T) {
	st := bounce.StepOdd(1)
	if st.Tag != bounce.ParityEven {
		t.Fatalf("StepOdd(1).Tag = %v, want ParityEven", st.Tag)
	}
	if st.Remaining != 0 {
		t.Errorf("StepOdd(1).Remaining = %d, want 0", st.Remaining)
	}
}

// =============================================================================
// Driver
// =============================================================================

func TestMachineEvenScenarios(t *testing.T) {
	cases := []struct {
		n    int
		want bool
	}{
		{0, true},
		{1, false},
		{2, true},
		{3, false},
		{3000, true},
	}
	for _, c := range cases {
		if got := bounce.MachineEven(c.n); got != c.want {
			t.Errorf("MachineEven(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestRunMachineFromHandConstructedState(t *testing.T) {
	// A pending odd state is the machine's encoding of "evaluate odd(5)".
	got := bounce.RunMachine(bounce.ParityState{Tag: bounce.ParityOdd, Remaining: 5})
	if got != true {
		t.Errorf("RunMachine(pending odd 5) = %v, want true", got)
	}
	got = bounce.RunMachine(bounce.ParityState{Tag: bounce.ParityDone, Result: false})
	if got != false {
		t.Errorf("RunMachine(done false) = %v, want false", got)
	}
}

func TestRunMachineUnknownTagPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unknown tag")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "unknown parity state tag") {
			t.Fatalf("panic = %v, want unknown parity state tag message", r)
		}
	}()
	bounce.RunMachine(bounce.ParityState{Tag: bounce.ParityTag(37)})
}

func TestMachineEvenLargeInput(t *testing.T) {
	// One million steps in a constant number of native frames.
	if got := bounce.MachineEven(1_000_000); got != true {
		t.Errorf("MachineEven(1_000_000) = %v, want true", got)
	}
	if got := bounce.MachineEven(1_000_001); got != false {
		t.Errorf("MachineEven(1_000_001) = %v, want false", got)
	}
}

// TestMachineAppliesNPlusOneRules checks the termination bound by
// driving the exported transition functions by hand: input n reaches
// ParityDone after exactly n+1 rule applications.
func TestMachineAppliesNPlusOneRules(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 100, 2001} {
		applications := 1
		st := bounce.StepEven(n)
		for st.Tag != bounce.ParityDone {
			switch st.Tag {
			case bounce.ParityEven:
				st = bounce.StepEven(st.Remaining)
			case bounce.ParityOdd:
				st = bounce.StepOdd(st.Remaining)
			}
			applications++
		}
		if applications != n+1 {
			t.Errorf("n=%d: %d rule applications, want %d", n, applications, n+1)
		}
	}
}
