package yabackoff

// Clamped decorates another Calculator with a ceiling: once the inner
// value reaches the ceiling, every later call returns the ceiling without
// invoking the inner calculator at all.  Skipping the inner call matters:
// an exponential inner calculator would overflow at high iteration counts,
// so saturation must be detected before computing, not after.
//
// Example:
//
//	calc := yabackoff.NewClamped[uint64](yabackoff.NewExponential[uint64](10), 150)
//	fmt.Println(calc.Value(1)) // 9
//	fmt.Println(calc.Value(2)) // 99
//	fmt.Println(calc.Value(3)) // 150
//	fmt.Println(calc.Value(4)) // 150, inner no longer invoked
//
// Clamped tracks the running value and is therefore stateful: confine each
// instance to a single consuming Sequence.  Sharing one between concurrent
// sequences gives wrong results even without a data race.
type Clamped[V Value] struct {
	inner   Calculator[V]
	current V
	ceiling V
}

// NewClamped wraps inner with the given ceiling.  The running value starts
// at zero, the floor sentinel below any real back-off value.
func NewClamped[V Value](inner Calculator[V], ceiling V) *Clamped[V] {
	return &Clamped[V]{
		inner:   inner,
		ceiling: ceiling,
	}
}

// Value returns the inner value clamped to the ceiling.  A terminal signal
// from the inner calculator is propagated unchanged.
func (c *Clamped[V]) Value(iteration uint64) (V, bool) {
	// Saturation check before any calculation, to avoid overflow in the
	// inner calculator.
	if c.current >= c.ceiling {
		return c.ceiling, true
	}

	value, ok := c.inner.Value(iteration)
	if !ok {
		return value, false
	}

	c.current = value

	if c.current >= c.ceiling {
		c.current = c.ceiling
	}

	return c.current, true
}

// Current reports the running value without mutating state.
func (c *Clamped[V]) Current() V {
	return c.current
}

// Reset puts the running value back to the floor sentinel so the
// calculator can drive a fresh sequence.
func (c *Clamped[V]) Reset() {
	var zero V

	c.current = zero
}
