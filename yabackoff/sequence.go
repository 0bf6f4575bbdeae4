package yabackoff

import "iter"

// Sequence is the stateful driver of a back-off sequence: it pulls raw
// values from a Calculator and applies the iteration budget, the one-shot
// minimum floor and the maximum ceiling, one value per Next call.
//
// A Sequence is owned by exactly one consumer; it is not safe for
// concurrent use.  Independent sequences over the same stateless
// calculator may run on separate goroutines.
//
// Example:
//
//	seq := yabackoff.NewBoundedSequence[uint64](yabackoff.NewBinary[uint64](), 4)
//	for {
//		v, ok := seq.Next()
//		if !ok {
//			break
//		}
//		fmt.Println(v) // 1, 3, 7, 15
//	}
type Sequence[V Value] struct {
	calculator Calculator[V]

	iteration     uint64
	maxIterations *uint64
	minValue      *V
	maxValue      *V
	current       *V
	terminal      bool
}

// NewSequence creates an unbounded sequence over the given calculator.
// Unbounded exponential growth eventually panics on overflow; see the
// package documentation.
func NewSequence[V Value](calculator Calculator[V]) *Sequence[V] {
	return &Sequence[V]{
		calculator: calculator,
	}
}

// NewBoundedSequence creates a sequence that yields exactly maxIterations
// values, including zero.
func NewBoundedSequence[V Value](calculator Calculator[V], maxIterations uint64) *Sequence[V] {
	return &Sequence[V]{
		calculator:    calculator,
		maxIterations: &maxIterations,
	}
}

// Next produces the next back-off value.  It returns false once the
// iteration budget is spent or the calculator signals a terminal point;
// after that every call returns false.
//
// Per step, in order: the iteration budget is checked, the cursor
// advances, a value already saturated at the ceiling is re-emitted without
// consulting the calculator, a fresh candidate is computed, sub-minimum
// candidates are skipped (once, at the start of the sequence, without
// shrinking the caller's budget), and the result is clamped to the
// ceiling.
func (s *Sequence[V]) Next() (V, bool) {
	var zero V

	if s.terminal {
		return zero, false
	}

	if s.maxIterations != nil && s.iteration >= *s.maxIterations {
		return zero, false
	}

	s.iteration++

	// Saturation check before any calculation: once the previous value
	// reached the ceiling the calculator is never consulted again, so an
	// overflowing growth function stays dormant for the rest of the
	// sequence.
	if s.current != nil && s.maxValue != nil && *s.current >= *s.maxValue {
		return s.emit(*s.maxValue), true
	}

	candidate, ok := s.calculator.Value(s.iteration)
	if !ok {
		s.terminal = true

		return zero, false
	}

	if s.minValue != nil {
		candidate, ok = s.skipBelowMin(candidate)
		if !ok {
			s.terminal = true

			return zero, false
		}
	}

	if s.maxValue != nil && candidate > *s.maxValue {
		candidate = *s.maxValue
	}

	return s.emit(candidate), true
}

// skipBelowMin advances past iterations whose value falls below the
// minimum.  The skipped iterations are refunded to the budget, so the
// caller still receives the full number of values, and the minimum is
// cleared afterwards: it suppresses the too-small opening values once and
// is never reapplied, even if the growth function later dips again.
func (s *Sequence[V]) skipBelowMin(candidate V) (V, bool) {
	iteration := s.iteration

	for candidate < *s.minValue {
		iteration++

		var ok bool

		candidate, ok = s.calculator.Value(iteration)
		if !ok {
			return candidate, false
		}
	}

	if delta := iteration - s.iteration; delta > 0 {
		if s.maxIterations != nil {
			refunded := *s.maxIterations + delta
			s.maxIterations = &refunded
		}

		s.iteration = iteration
	}

	s.minValue = nil

	return candidate, true
}

// emit caches and returns the produced value.
func (s *Sequence[V]) emit(value V) V {
	s.current = &value

	return value
}

// All returns a range-over-func view of the remaining values, so a retry
// loop can be written as a plain range statement:
//
//	for delay := range seq.All() {
//		// wait, retry, break on success
//	}
//
// Iteration stops at exhaustion or when the loop breaks; values already
// pulled through Next are not replayed.
func (s *Sequence[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for {
			value, ok := s.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}

// Current reports the most recently produced value, if any.  It never
// mutates state.
func (s *Sequence[V]) Current() (V, bool) {
	if s.current == nil {
		var zero V

		return zero, false
	}

	return *s.current, true
}

// Remaining reports how many values are still due, or false if the
// sequence is unbounded.  A terminal signal from the calculator ends the
// sequence early regardless.
func (s *Sequence[V]) Remaining() (uint64, bool) {
	if s.maxIterations == nil {
		return 0, false
	}

	if s.terminal || s.iteration >= *s.maxIterations {
		return 0, true
	}

	return *s.maxIterations - s.iteration, true
}
