package yabackoff

// DefaultBase is substituted when an Exponential is declared as a zero
// value, or constructed with base 0, and then used.
const DefaultBase = 2

// Exponential grows as base^iteration − 1: attempt 1 yields base − 1,
// attempt 2 yields base² − 1, and so on.
//
// Example:
//
//	exp := yabackoff.NewExponential[uint64](10)
//	fmt.Println(exp.Value(1)) // 9
//	fmt.Println(exp.Value(2)) // 99
//	fmt.Println(exp.Value(3)) // 999
//
// The computation panics once base^iteration exceeds the range of V; bound
// the sequence or wrap the calculator in Clamped to avoid that.  The zero
// value of Exponential is usable: on first use DefaultBase is substituted.
type Exponential[V Value] struct {
	base V
}

// NewExponential creates an exponential calculator with the given base.
// A zero base is replaced by DefaultBase.
func NewExponential[V Value](base V) *Exponential[V] {
	return &Exponential[V]{
		base: base,
	}
}

// NewBinary is shorthand for NewExponential with base 2, the classic
// binary exponential back-off: 1, 3, 7, 15, 31, ...
func NewBinary[V Value]() *Exponential[V] {
	return &Exponential[V]{
		base: DefaultBase,
	}
}

// Value returns base^iteration − 1.  It never signals a terminal point.
func (e *Exponential[V]) Value(iteration uint64) (V, bool) {
	e.safety()

	return pow(e.base, iteration) - 1, true
}

// safety lazily substitutes the default base the first time the struct is
// used, so a zero value Exponential is fully functional.
func (e *Exponential[V]) safety() {
	if e.base == 0 {
		e.base = DefaultBase
	}
}
