package epicycles

import (
	"testing"
)

// TestDecimationStep exercises the stride selection rules.
func TestDecimationStep(t *testing.T) {
	tests := []struct {
		name   string
		target int
		count  int
		want   int
	}{
		{"UnderTarget", 1000, 500, 1},
		{"AtTarget", 1000, 1000, 1},
		{"JustOverTarget", 1000, 1001, 1},
		{"DoubleTarget", 1000, 2000, 2},
		{"FractionalRatio", 1000, 2500, 2},
		{"ZeroTarget", 0, 5000, 1},
		{"NegativeTarget", -3, 100, 1},
		{"TargetOne", 1, 7, 7},
		{"EmptyInput", 1000, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecimationStep(tt.target, tt.count); got != tt.want {
				t.Errorf("DecimationStep(%d, %d) = %d, want %d",
					tt.target, tt.count, got, tt.want)
			}
		})
	}
}

// TestDecimate verifies stride selection of elements and that the result
// never aliases the input.
func TestDecimate(t *testing.T) {
	s := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	got := Decimate(s, 3)
	want := []int{0, 3, 6, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	// Step 1 copies the whole slice into fresh backing storage.
	clone := Decimate(s, 1)
	if len(clone) != len(s) {
		t.Fatalf("step 1: got %d elements, want %d", len(clone), len(s))
	}
	clone[0] = 99
	if s[0] != 0 {
		t.Error("step 1 result aliases the input")
	}

	if got := Decimate([]int{}, 4); len(got) != 0 {
		t.Errorf("empty input: got %v, want empty", got)
	}
}

// TestDecimateToTarget verifies the end-to-end thinning used before a
// transform. The stride is the floor of count/target, so the result may
// overshoot the target but never collapses below it.
func TestDecimateToTarget(t *testing.T) {
	path := noisePath(2500, 13)

	got := DecimateToTarget(path, 1000)
	if len(got) != 1250 {
		t.Fatalf("got %d points, want 1250", len(got))
	}
	for i := range got {
		if got[i] != path[2*i] {
			t.Fatalf("point %d: got %v, want %v", i, got[i], path[2*i])
		}
	}

	// A path already under the target is copied unchanged.
	short := noisePath(300, 13)
	if got := DecimateToTarget(short, 1000); len(got) != len(short) {
		t.Errorf("short path: got %d points, want %d", len(got), len(short))
	}
}
