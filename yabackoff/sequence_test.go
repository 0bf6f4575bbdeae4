package yabackoff_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/YaCodeDev/GoYaBackoff/yabackoff"
)

func TestSequence_YieldsExactlyMaxIterations(t *testing.T) {
	t.Parallel()

	constant := yabackoff.GrowthFunc[uint64](func(_ uint64) uint64 {
		return 0
	})

	for _, n := range []uint64{0, 1, 1000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			seq := yabackoff.NewBoundedSequence[uint64](constant, n)

			got := slices.Collect(seq.All())

			assert.Len(t, got, int(n))

			_, ok := seq.Next()
			assert.False(t, ok, "an exhausted sequence must stay exhausted")
		})
	}
}

func TestSequence_ExponentialBinary_Works(t *testing.T) {
	t.Parallel()

	seq := yabackoff.NewBoundedSequence[uint64](yabackoff.NewBinary[uint64](), 15)

	want := []uint64{1, 3, 7, 15, 31, 63, 127, 255, 511, 1023, 2047, 4095, 8191, 16383, 32767}

	if diff := cmp.Diff(want, slices.Collect(seq.All())); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestSequence_Geometric_Works(t *testing.T) {
	t.Parallel()

	tests := []struct {
		factor uint64
		want   []uint64
	}{
		{factor: 2, want: []uint64{2, 4, 6, 8, 10, 12, 14, 16, 18, 20}},
		{factor: 10, want: []uint64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}},
	}

	for _, tt := range tests {
		seq := yabackoff.NewBoundedSequence[uint64](yabackoff.NewGeometric[uint64](tt.factor), 10)

		if diff := cmp.Diff(tt.want, slices.Collect(seq.All())); diff != "" {
			t.Fatalf("factor %d sequence mismatch (-want +got):\n%s", tt.factor, diff)
		}
	}
}

func TestSequence_ClampedExponential_Works(t *testing.T) {
	t.Parallel()

	calc := yabackoff.NewClamped[uint64](yabackoff.NewExponential[uint64](10), 150)
	seq := yabackoff.NewBoundedSequence[uint64](calc, 4)

	want := []uint64{9, 99, 150, 150}

	if diff := cmp.Diff(want, slices.Collect(seq.All())); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestSequence_MaxSaturationShortCircuitsCalculator(t *testing.T) {
	t.Parallel()

	calls := 0

	growth := yabackoff.CalculatorFunc[uint64](func(iteration uint64) (uint64, bool) {
		calls++

		return iteration * 100, true
	})

	seq := yabackoff.NewConfig[uint64](growth).
		MaxIterations(5).
		Max(150).
		Iter()

	want := []uint64{100, 150, 150, 150, 150}

	if diff := cmp.Diff(want, slices.Collect(seq.All())); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 2, calls, "calculator must stay dormant after saturation")
}

func TestSequence_TerminalCalculatorStops(t *testing.T) {
	t.Parallel()

	growth := yabackoff.CalculatorFunc[uint64](func(iteration uint64) (uint64, bool) {
		if iteration > 3 {
			return 0, false
		}

		return iteration, true
	})

	seq := yabackoff.NewBoundedSequence[uint64](growth, 10)

	want := []uint64{1, 2, 3}

	if diff := cmp.Diff(want, slices.Collect(seq.All())); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}

	_, ok := seq.Next()
	assert.False(t, ok, "a terminal signal must be sticky")
}

func TestSequence_UnboundedOverflow_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		seq := yabackoff.NewSequence[uint64](yabackoff.NewBinary[uint64]())

		for range 1000 {
			seq.Next()
		}
	})
}

func TestSequence_CurrentAndRemaining_Work(t *testing.T) {
	t.Parallel()

	seq := yabackoff.NewBoundedSequence[uint64](yabackoff.NewBinary[uint64](), 3)

	_, produced := seq.Current()
	assert.False(t, produced, "no value produced yet")

	remaining, bounded := seq.Remaining()
	assert.True(t, bounded)
	assert.Equal(t, uint64(3), remaining)

	seq.Next()
	seq.Next()

	current, produced := seq.Current()
	assert.True(t, produced)
	assert.Equal(t, uint64(3), current)

	remaining, bounded = seq.Remaining()
	assert.True(t, bounded)
	assert.Equal(t, uint64(1), remaining)

	unbounded := yabackoff.NewSequence[uint64](yabackoff.NewBinary[uint64]())

	_, bounded = unbounded.Remaining()
	assert.False(t, bounded)
}
