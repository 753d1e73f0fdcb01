package ast

// Equal reports whether a and b are structurally equal: same variants all the
// way down, with sequences compared element by element in order.
func Equal(a, b Sexp) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch x := a.(type) {
	case Constant:
		y, ok := b.(Constant)
		return ok && atomEqual(x.atom, y.atom)
	case List:
		y, ok := b.(List)
		return ok && elementsEqual(x.elements, y.elements)
	case Vector:
		y, ok := b.(Vector)
		return ok && elementsEqual(x.elements, y.elements)
	case Quoted:
		y, ok := b.(Quoted)
		return ok && x.kind == y.kind && Equal(x.inner, y.inner)
	}

	return false
}

func atomEqual(a, b Atom) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	// Atoms are comparable named types, so identical dynamic type and value
	// is all there is to check.
	return a == b
}

func elementsEqual(a, b []Sexp) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
