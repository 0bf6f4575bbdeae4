// Package yabackoff generates bounded or unbounded numeric back-off
// sequences for retry loops.  A back-off sequence is an ordered, usually
// increasing, series of delay values; the caller pulls one value per retry
// attempt and does the actual waiting itself.  The package performs no I/O,
// no sleeping and no timing; it only computes numbers.
//
// # Quick start
//
//	cfg := yabackoff.NewConfig[uint64](yabackoff.NewBinary[uint64]()).
//		MaxIterations(5)
//
//	for delay := range cfg.Iter().All() {
//		fmt.Println(delay) // 1, 3, 7, 15, 31
//	}
//
// Growth is pluggable: use a built-in Calculator (Exponential, Geometric,
// Clamped) or supply your own mapping from attempt index to value via
// CalculatorFunc or GrowthFunc.
//
// # Overflow
//
// Unbounded exponential growth eventually exceeds the numeric range of the
// value type.  This is a fatal panic, never a silent wrap: bound the
// sequence with MaxIterations or wrap the calculator in Clamped to stay in
// range.  The package is dependency-free and can be safely vendored.
package yabackoff

// Value is the numeric domain of a back-off sequence.  It admits every
// integer kind, so plain counters (uint64) and duration-like types
// (time.Duration) both qualify.  Values are compared, copied and printed;
// nothing else is assumed.
type Value interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Calculator maps a 1-based iteration index to a raw back-off value.  The
// built-in calculators are stateless and never signal a terminal point;
// Clamped keeps internal state and must therefore be confined to a single
// consuming Sequence at a time.
//
// Example:
//
//	exp := yabackoff.NewExponential[uint64](10)
//	v, _ := exp.Value(2) // 99
type Calculator[V Value] interface {
	// Value computes the raw value for the given 1-based iteration.  The
	// first call of a sequence uses iteration 1.  Returning false signals
	// the calculator has nothing further to produce; a Sequence treats
	// that identically to exhaustion.
	Value(iteration uint64) (V, bool)
}

// CalculatorFunc adapts an ordinary function to the Calculator interface,
// in the manner of http.HandlerFunc.
//
// Example:
//
//	calc := yabackoff.CalculatorFunc[uint64](func(i uint64) (uint64, bool) {
//		return i * i, true
//	})
type CalculatorFunc[V Value] func(iteration uint64) (V, bool)

// Value calls f(iteration).
func (f CalculatorFunc[V]) Value(iteration uint64) (V, bool) {
	return f(iteration)
}

// GrowthFunc adapts a total growth function, one that always produces a
// value, to the Calculator interface.  Most hand-written growth rules are
// total, which makes this the lighter adapter of the two.
//
// Example:
//
//	calc := yabackoff.GrowthFunc[time.Duration](func(i uint64) time.Duration {
//		return time.Duration(i) * 100 * time.Millisecond
//	})
type GrowthFunc[V Value] func(iteration uint64) V

// Value calls f(iteration); a GrowthFunc is never terminal.
func (f GrowthFunc[V]) Value(iteration uint64) (V, bool) {
	return f(iteration), true
}
