// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce_test

import (
	"testing"

	"code.hybscloud.com/bounce"
)

// FixedInput is even, so every entry point must report MarkEven. The
// baseline entry is included: a million frames fit under the runtime's
// default stack cap, the fault only appears once a harness lowers it.
func TestEntriesReportEven(t *testing.T) {
	entries := []struct {
		name  string
		entry func() string
	}{
		{"EntryBaseline", bounce.EntryBaseline},
		{"EntryMachine", bounce.EntryMachine},
		{"EntryTrampoline", bounce.EntryTrampoline},
		{"EntryTailCall", bounce.EntryTailCall},
		{"EntryKont", bounce.EntryKont},
		{"EntryEscape", bounce.EntryEscape},
		{"EntryHybrid", bounce.EntryHybrid},
	}
	for _, e := range entries {
		if got := e.entry(); got != bounce.MarkEven {
			t.Errorf("%s() = %q, want %q", e.name, got, bounce.MarkEven)
		}
	}
}

func TestMarkers(t *testing.T) {
	if bounce.MarkEven == bounce.MarkOdd {
		t.Fatal("result markers must be distinguishable")
	}
	if bounce.FixedInput%2 != 0 {
		t.Fatalf("FixedInput = %d, want an even fixed input", bounce.FixedInput)
	}
}

func TestStrategiesRegistry(t *testing.T) {
	strategies := bounce.Strategies()
	if len(strategies) != 7 {
		t.Fatalf("len(Strategies()) = %d, want 7", len(strategies))
	}
	if strategies[0].Name != "baseline" {
		t.Errorf("Strategies()[0].Name = %q, want %q", strategies[0].Name, "baseline")
	}

	seen := make(map[string]bool, len(strategies))
	for _, s := range strategies {
		if s.Name == "" {
			t.Error("strategy with empty name")
		}
		if seen[s.Name] {
			t.Errorf("duplicate strategy name %q", s.Name)
		}
		seen[s.Name] = true
		if s.Eval == nil {
			t.Errorf("strategy %q has nil Eval", s.Name)
		}
		if s.Entry == nil {
			t.Errorf("strategy %q has nil Entry", s.Name)
		}
		if stackSafe := s.Name != "baseline"; s.StackSafe != stackSafe {
			t.Errorf("strategy %q StackSafe = %v, want %v", s.Name, s.StackSafe, stackSafe)
		}
	}
}

func TestStrategiesEvalAgree(t *testing.T) {
	for _, s := range bounce.Strategies() {
		for n := range 64 {
			if got := s.Eval(n); got != (n%2 == 0) {
				t.Errorf("%s.Eval(%d) = %v, want %v", s.Name, n, got, n%2 == 0)
			}
		}
	}
}

func TestStrategiesFreshSlice(t *testing.T) {
	// Callers may reorder or filter without affecting later calls.
	first := bounce.Strategies()
	first[0], first[1] = first[1], first[0]
	second := bounce.Strategies()
	if second[0].Name != "baseline" {
		t.Errorf("Strategies() shares state across calls: first entry %q", second[0].Name)
	}
}
