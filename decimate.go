package epicycles

import (
	"slices"
)

// DecimationStep returns the keep-every-nth stride that reduces count
// samples to approximately target. When count is at most target the stride
// is 1 and every sample is kept; otherwise the stride is count/target using
// integer division, leaving between target and 2·target-1 samples. A target
// of 0 or less disables decimation.
func DecimationStep(target, count int) int {
	if target <= 0 || count <= target {
		return 1
	}
	return count / target
}

// Decimate returns a new slice keeping every step-th element of s, starting
// at index 0. A step of 1 or less returns a copy of s. The element type is
// generic so sample paths and coefficient slices decimate alike.
func Decimate[S ~[]E, E any](s S, step int) S {
	if step <= 1 {
		return slices.Clone(s)
	}
	out := make(S, 0, (len(s)+step-1)/step)
	for i := 0; i < len(s); i += step {
		out = append(out, s[i])
	}
	return out
}

// DecimateToTarget reduces s to approximately target elements by combining
// DecimationStep and Decimate.
func DecimateToTarget[S ~[]E, E any](s S, target int) S {
	return Decimate(s, DecimationStep(target, len(s)))
}
