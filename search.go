package literal

// The search family mirrors string_view semantics over the view projection:
// values and undefined literals project an empty view and never match
// anything non-trivial. Each operation takes three operand shapes: a
// same-family literal, a raw counted buffer or external view ([]T), and a
// single element. Forward searches clamp pos below 0 to 0; reverse searches
// treat a negative pos as "from the end".

// Find returns the first index >= pos where other's content occurs. A
// same-family operand with a larger capacity cannot fit in the receiver and
// reports NotFound without scanning.
func (l Literal[T]) Find(other Literal[T], pos int) int {
	if other.n > l.n {
		return NotFound
	}
	return indexOf(l.View(), other.View(), pos)
}

func (l Literal[T]) FindView(view []T, pos int) int {
	return indexOf(l.View(), view, pos)
}

func (l Literal[T]) FindElem(c T, pos int) int {
	return indexElem(l.View(), c, pos)
}

// Rfind returns the highest index <= pos where other's content starts.
func (l Literal[T]) Rfind(other Literal[T], pos int) int {
	if other.n > l.n {
		return NotFound
	}
	return lastIndexOf(l.View(), other.View(), pos)
}

func (l Literal[T]) RfindView(view []T, pos int) int {
	return lastIndexOf(l.View(), view, pos)
}

func (l Literal[T]) RfindElem(c T, pos int) int {
	return lastIndexElem(l.View(), c, pos)
}

// FindFirstOf returns the first index >= pos whose element belongs to the
// operand's content, treated as a set.
func (l Literal[T]) FindFirstOf(other Literal[T], pos int) int {
	if other.n > l.n {
		return NotFound
	}
	return indexAny(l.View(), other.View(), pos)
}

func (l Literal[T]) FindFirstOfView(set []T, pos int) int {
	return indexAny(l.View(), set, pos)
}

func (l Literal[T]) FindFirstOfElem(c T, pos int) int {
	return indexElem(l.View(), c, pos)
}

// FindLastOf returns the highest index <= pos whose element belongs to the
// operand's content.
func (l Literal[T]) FindLastOf(other Literal[T], pos int) int {
	if other.n > l.n {
		return NotFound
	}
	return lastIndexAny(l.View(), other.View(), pos)
}

func (l Literal[T]) FindLastOfView(set []T, pos int) int {
	return lastIndexAny(l.View(), set, pos)
}

func (l Literal[T]) FindLastOfElem(c T, pos int) int {
	return lastIndexElem(l.View(), c, pos)
}

// FindFirstNotOf returns the first index >= pos whose element does not
// belong to the operand's content.
func (l Literal[T]) FindFirstNotOf(other Literal[T], pos int) int {
	if other.n > l.n {
		return NotFound
	}
	return indexNotAny(l.View(), other.View(), pos)
}

func (l Literal[T]) FindFirstNotOfView(set []T, pos int) int {
	return indexNotAny(l.View(), set, pos)
}

func (l Literal[T]) FindFirstNotOfElem(c T, pos int) int {
	v := l.View()
	if pos < 0 {
		pos = 0
	}
	for i := pos; i < len(v); i++ {
		if v[i] != c {
			return i
		}
	}
	return NotFound
}

// FindLastNotOf returns the highest index <= pos whose element does not
// belong to the operand's content.
func (l Literal[T]) FindLastNotOf(other Literal[T], pos int) int {
	if other.n > l.n {
		return NotFound
	}
	return lastIndexNotAny(l.View(), other.View(), pos)
}

func (l Literal[T]) FindLastNotOfView(set []T, pos int) int {
	return lastIndexNotAny(l.View(), set, pos)
}

func (l Literal[T]) FindLastNotOfElem(c T, pos int) int {
	v := l.View()
	i := len(v) - 1
	if pos >= 0 && pos < i {
		i = pos
	}
	for ; i >= 0; i-- {
		if v[i] != c {
			return i
		}
	}
	return NotFound
}

// StartsWith reports whether the view begins with prefix.
func (l Literal[T]) StartsWith(prefix []T) bool {
	v := l.View()
	if len(prefix) > len(v) {
		return false
	}
	return matchAt(v, prefix, 0)
}

func (l Literal[T]) StartsWithElem(c T) bool {
	v := l.View()
	return len(v) > 0 && v[0] == c
}

// EndsWith reports whether the view ends with suffix.
func (l Literal[T]) EndsWith(suffix []T) bool {
	v := l.View()
	if len(suffix) > len(v) {
		return false
	}
	return matchAt(v, suffix, len(v)-len(suffix))
}

func (l Literal[T]) EndsWithElem(c T) bool {
	v := l.View()
	return len(v) > 0 && v[len(v)-1] == c
}

func (l Literal[T]) Contains(view []T) bool { return l.FindView(view, 0) != NotFound }
func (l Literal[T]) ContainsElem(c T) bool  { return l.FindElem(c, 0) != NotFound }

// An empty needle matches at any pos <= len(hay), string_view style.
func indexOf[T comparable](hay, needle []T, pos int) int {
	if pos < 0 {
		pos = 0
	}
	if len(needle) == 0 {
		if pos <= len(hay) {
			return pos
		}
		return NotFound
	}
	for i := pos; i+len(needle) <= len(hay); i++ {
		if matchAt(hay, needle, i) {
			return i
		}
	}
	return NotFound
}

// An empty needle rfinds at min(pos, len(hay)).
func lastIndexOf[T comparable](hay, needle []T, pos int) int {
	start := len(hay) - len(needle)
	if pos >= 0 && pos < start {
		start = pos
	}
	if len(needle) == 0 {
		return start
	}
	for i := start; i >= 0; i-- {
		if matchAt(hay, needle, i) {
			return i
		}
	}
	return NotFound
}

func matchAt[T comparable](hay, needle []T, at int) bool {
	for j, c := range needle {
		if hay[at+j] != c {
			return false
		}
	}
	return true
}

func indexElem[T comparable](hay []T, c T, pos int) int {
	if pos < 0 {
		pos = 0
	}
	for i := pos; i < len(hay); i++ {
		if hay[i] == c {
			return i
		}
	}
	return NotFound
}

func lastIndexElem[T comparable](hay []T, c T, pos int) int {
	i := len(hay) - 1
	if pos >= 0 && pos < i {
		i = pos
	}
	for ; i >= 0; i-- {
		if hay[i] == c {
			return i
		}
	}
	return NotFound
}

func inSet[T comparable](set []T, c T) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}

func indexAny[T comparable](hay, set []T, pos int) int {
	if pos < 0 {
		pos = 0
	}
	for i := pos; i < len(hay); i++ {
		if inSet(set, hay[i]) {
			return i
		}
	}
	return NotFound
}

func lastIndexAny[T comparable](hay, set []T, pos int) int {
	i := len(hay) - 1
	if pos >= 0 && pos < i {
		i = pos
	}
	for ; i >= 0; i-- {
		if inSet(set, hay[i]) {
			return i
		}
	}
	return NotFound
}

func indexNotAny[T comparable](hay, set []T, pos int) int {
	if pos < 0 {
		pos = 0
	}
	for i := pos; i < len(hay); i++ {
		if !inSet(set, hay[i]) {
			return i
		}
	}
	return NotFound
}

func lastIndexNotAny[T comparable](hay, set []T, pos int) int {
	i := len(hay) - 1
	if pos >= 0 && pos < i {
		i = pos
	}
	for ; i >= 0; i-- {
		if !inSet(set, hay[i]) {
			return i
		}
	}
	return NotFound
}
