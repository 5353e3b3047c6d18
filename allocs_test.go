// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounce_test

import (
	"testing"

	"code.hybscloud.com/bounce"
)

func TestMachineAllocationFree(t *testing.T) {
	// States are plain values produced and consumed in the driver loop;
	// no step boxes, defers, or closes over anything.
	allocs := testing.AllocsPerRun(100, func() {
		_ = bounce.MachineEven(1000)
	})
	if allocs > 0 {
		t.Errorf("MachineEven(1000) allocs = %v; want 0", allocs)
	}
}

func TestHybridAllocationFree(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = bounce.HybridEvenAt(1000, 64)
	})
	if allocs > 0 {
		t.Errorf("HybridEvenAt(1000, 64) allocs = %v; want 0", allocs)
	}
}

func TestBaselineAllocationFree(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = bounce.Even(256)
	})
	if allocs > 0 {
		t.Errorf("Even(256) allocs = %v; want 0", allocs)
	}
}

func TestTrampolinePerStepAllocation(t *testing.T) {
	// The generality of Comp costs one escaping closure per pending
	// step: input 64 takes 65 rule applications, the last of which
	// completes without suspending.
	allocs := testing.AllocsPerRun(100, func() {
		_ = bounce.TrampolineEven(64)
	})
	if allocs != 64 {
		t.Errorf("TrampolineEven(64) allocs = %v; want 64, one closure per suspension", allocs)
	}
}

func TestTailCallPerStepAllocation(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = bounce.TailEven(64)
	})
	if allocs != 64 {
		t.Errorf("TailEven(64) allocs = %v; want 64, one closure per marked call", allocs)
	}
}
