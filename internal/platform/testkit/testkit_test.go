package testkit

import "testing"

func TestMustPanic(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() {
		panic("boom")
	})
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()

	MustNotPanic(t, func() {
		// no panic
	})
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	haystack := "alpha beta gamma"
	MustContain(t, haystack, "beta")
}

func TestInDeltaAndInRel(t *testing.T) {
	t.Parallel()

	InDelta(t, "beta", 0.42712, 0.4271, 1e-3)
	InRel(t, "flow", 0.0200001, 0.02, 1e-4)
}

var (
	readDensity = func() float64 { return 1000 }
	maxIter     = 100
)

func TestSwap_RestoresAfterSubtest(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &readDensity, func() float64 { return 998.2 })
		Swap(t, &maxIter, 3)
		if readDensity() != 998.2 || maxIter != 3 {
			t.Fatalf("swap not applied: %v %d", readDensity(), maxIter)
		}
	})
	if readDensity() != 1000 || maxIter != 100 {
		t.Fatalf("swap not restored: %v %d", readDensity(), maxIter)
	}
}
