package yabackoff

// Config is a fluent, reusable description of a back-off sequence: a
// growth calculator plus an optional iteration budget, minimum floor and
// maximum ceiling.  The setters mutate the config in place and return it
// for chaining; Iter snapshots the current settings into a fresh,
// independent Sequence, so one config can be iterated any number of times
// and mutated between iterations without disturbing engines already
// handed out.
//
// Example:
//
//	cfg := yabackoff.NewConfig[uint64](yabackoff.NewExponential[uint64](10)).
//		MaxIterations(4).
//		Min(10).
//		Max(10000)
//
//	for v := range cfg.Iter().All() {
//		fmt.Println(v) // 99, 999, 9999, 10000
//	}
//
// Sequences only borrow the calculator, so sequences made from the same
// config share it: that is safe for the stateless built-ins and for plain
// growth functions, but a Clamped calculator carries state and must not
// drive more than one sequence at a time.
type Config[V Value] struct {
	calculator    Calculator[V]
	maxIterations *uint64
	minValue      *V
	maxValue      *V
}

// NewConfig creates a config over the given calculator with no bounds
// set: unbounded iteration, no floor, no ceiling.
func NewConfig[V Value](calculator Calculator[V]) *Config[V] {
	return &Config[V]{
		calculator: calculator,
	}
}

// MaxIterations bounds the sequence to exactly n values.
func (c *Config[V]) MaxIterations(n uint64) *Config[V] {
	c.maxIterations = &n

	return c
}

// Min sets the floor: opening values below it are skipped, without
// shrinking the iteration budget.  The floor applies once, at the start
// of each sequence, and is never reapplied after a value meets it.
//
// Setting Min above Max is defined but counter-intuitive: the skip logic
// advances until some value reaches the floor, and every such value is
// then clamped down to the ceiling, so the whole sequence is pinned to
// Max.
func (c *Config[V]) Min(v V) *Config[V] {
	c.minValue = &v

	return c
}

// Max sets the ceiling: values above it are clamped to it, and once a
// sequence saturates there the calculator is no longer consulted.  A
// saturated sequence keeps re-emitting the ceiling until its budget runs
// out, or forever when unbounded.
func (c *Config[V]) Max(v V) *Config[V] {
	c.maxValue = &v

	return c
}

// Iter creates a new Sequence from a snapshot of the current settings,
// starting at the first iteration.  The config itself is never consumed.
func (c *Config[V]) Iter() *Sequence[V] {
	s := &Sequence[V]{
		calculator: c.calculator,
	}

	if c.maxIterations != nil {
		n := *c.maxIterations
		s.maxIterations = &n
	}

	if c.minValue != nil {
		v := *c.minValue
		s.minValue = &v
	}

	if c.maxValue != nil {
		v := *c.maxValue
		s.maxValue = &v
	}

	return s
}
