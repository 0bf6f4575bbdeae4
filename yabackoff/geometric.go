package yabackoff

// DefaultFactor is substituted when a Geometric is declared as a zero
// value, or constructed with factor 0, and then used.
const DefaultFactor = 1

// Geometric grows linearly as factor × iteration.
//
// Example:
//
//	geo := yabackoff.NewGeometric[uint64](2)
//	fmt.Println(geo.Value(1)) // 2
//	fmt.Println(geo.Value(2)) // 4
//	fmt.Println(geo.Value(3)) // 6
//
// Overflow is only possible at extreme iteration counts, and panics like
// every growth overflow in this package.  The zero value of Geometric is
// usable: on first use DefaultFactor is substituted.
type Geometric[V Value] struct {
	factor V
}

// NewGeometric creates a geometric calculator with the given factor.
// A zero factor is replaced by DefaultFactor.
func NewGeometric[V Value](factor V) *Geometric[V] {
	return &Geometric[V]{
		factor: factor,
	}
}

// Value returns factor × iteration.  It never signals a terminal point.
func (g *Geometric[V]) Value(iteration uint64) (V, bool) {
	g.safety()

	return mul(g.factor, V(iteration)), true
}

// safety lazily substitutes the default factor the first time the struct
// is used, so a zero value Geometric is fully functional.
func (g *Geometric[V]) safety() {
	if g.factor == 0 {
		g.factor = DefaultFactor
	}
}
