package yabackoff

// mul multiplies two values, panicking on overflow.  Growth calculations
// must never wrap silently or hand a garbage value to a retry loop; an
// overflow here means the caller ran an unbounded, unclamped sequence past
// the range of its value type.
func mul[V Value](a, b V) V {
	if a == 0 || b == 0 {
		return 0
	}

	product := a * b
	if product/b != a {
		panic("yabackoff: arithmetic overflow in growth calculation")
	}

	return product
}

// pow raises base to exp by repeated checked multiplication.
func pow[V Value](base V, exp uint64) V {
	result := V(1)

	for range exp {
		result = mul(result, base)
	}

	return result
}
