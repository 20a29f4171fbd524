package literal

// Equal implements the category-pair equality matrix:
//
//	string    x string    -> same size and element-wise equal by code
//	                         point; character widths promote, so a narrow
//	                         and a wide string holding the same text are
//	                         equal
//	string    x undefined -> the string is empty
//	string    x value     -> both empty, or the string holds exactly one
//	                         element equal to the value; requires comparable
//	                         element types, otherwise unequal
//	value     x value     -> single elements compare equal; distinct element
//	                         types are never comparable and never equal
//	undefined x undefined -> always equal
//	value     x undefined -> never equal
//
// Outside the string-string row, comparability across element types maps
// onto Go interface equality: a float64 and a rune never compare equal no
// matter the contents.
func Equal[L, R comparable](lhs Literal[L], rhs Literal[R]) bool {
	switch {
	case lhs.kind == KindString && rhs.kind == KindString:
		lv, rv := lhs.View(), rhs.View()
		if len(lv) != len(rv) {
			return false
		}
		for i := range lv {
			if !elemEqual(any(lv[i]), any(rv[i])) {
				return false
			}
		}
		return true

	case lhs.kind == KindString:
		if rhs.kind == KindUndefined {
			return lhs.Empty()
		}
		if !sameElem[L, R]() {
			return false
		}
		// values are "empty" by convention, so an empty string matches
		return lhs.Empty() || (lhs.Size() == 1 && any(lhs.first()) == any(rhs.first()))

	case rhs.kind == KindString:
		if lhs.kind == KindUndefined {
			return rhs.Empty()
		}
		if !sameElem[L, R]() {
			return false
		}
		return rhs.Empty() || (rhs.Size() == 1 && any(rhs.first()) == any(lhs.first()))

	case lhs.kind == KindUndefined && rhs.kind == KindUndefined:
		return true

	case lhs.kind == KindUndefined || rhs.kind == KindUndefined:
		return false

	default:
		return any(lhs.first()) == any(rhs.first())
	}
}

// elemEqual compares two string elements. Character elements of different
// widths promote to a common code point before comparing; anything outside
// the character kinds falls back to interface equality.
func elemEqual(a, b any) bool {
	ac, aok := codePoint(a)
	bc, bok := codePoint(b)
	if aok && bok {
		return ac == bc
	}
	return a == b
}

// codePoint widens the character kinds to a common comparison type.
func codePoint(v any) (uint32, bool) {
	switch c := v.(type) {
	case byte:
		return uint32(c), true
	case rune:
		return uint32(c), true
	case uint16:
		return uint32(c), true
	}
	return 0, false
}

// sameElem reports whether the two element types are the same concrete
// type, the only case Go considers them comparable with each other.
func sameElem[L, R comparable]() bool {
	var l L
	_, ok := any(l).(R)
	return ok
}

// EqualView compares against a raw counted buffer with terminated-array
// semantics: only the visible prefix (up to the first zero element)
// participates, so a terminated source array equals the literal built from
// it. A string compares its view, a value compares slot 0 against the
// buffer's first element, undefined equals a visibly empty buffer.
func EqualView[T comparable](l Literal[T], view []T) bool {
	switch l.kind {
	case KindString:
		v := l.View()
		w := view[:visible(view)]
		if len(v) != len(w) {
			return false
		}
		for i := range v {
			if v[i] != w[i] {
				return false
			}
		}
		return true
	case KindValue:
		var first T
		if len(view) > 0 {
			first = view[0]
		}
		return l.first() == first
	default:
		return visible(view) == 0
	}
}

// Compare orders two string literals lexicographically over their views.
// No order exists across categories: passing a value or undefined literal
// panics rather than inventing one.
func Compare[C Char](lhs, rhs Literal[C]) int {
	mustString(lhs.kind)
	mustString(rhs.kind)
	return lexCompare(lhs.View(), rhs.View())
}

// CompareView orders a string literal against a raw buffer's visible
// prefix.
func CompareView[C Char](l Literal[C], view []C) int {
	mustString(l.kind)
	return lexCompare(l.View(), view[:visible(view)])
}

// CompareRange orders the [pos, pos+count) region of the literal against an
// external view, clamping pos and count like Substr. count < 0 means
// through the end.
func CompareRange[C Char](l Literal[C], pos, count int, view []C) int {
	mustString(l.kind)
	v := l.View()
	if pos < 0 {
		pos = 0
	}
	if pos > len(v) {
		pos = len(v)
	}
	if count < 0 || count > len(v)-pos {
		count = len(v) - pos
	}
	return lexCompare(v[pos:pos+count], view)
}

// Less reports lhs < rhs in the lexicographic order.
func Less[C Char](lhs, rhs Literal[C]) bool { return Compare(lhs, rhs) < 0 }

func mustString(k Kind) {
	if k != KindString {
		panic("literal: ordering is only defined between string literals")
	}
}

func lexCompare[C Char](a, b []C) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
