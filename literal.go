// Package literal implements a fixed-capacity literal value: a single
// container that acts as a bare scalar, a bounded character string, or an
// explicit undefined placeholder. Instances are meant to be fully known up
// front and carried through metadata layers (type names, fixed identifiers,
// reflection tags) without ever growing.
//
// The backing buffer holds capacity+1 slots and is allocated exactly once;
// appends that overflow it truncate silently by contract. Capacities are
// bucketed to powers of two (see Bucket) so literals of nearby lengths
// collapse onto shared shapes.
package literal

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unsafe"
)

var (
	ErrOutOfRange = errors.New("index outside literal limits")
)

// NotFound is returned by the search family when nothing matches.
const NotFound = -1

// Char covers the element types a string literal may carry: byte for
// narrow/UTF-8 text, rune for wide text, uint16 for UTF-16 code units.
type Char interface {
	~byte | ~rune | ~uint16
}

// Literal is the fixed-capacity container. Its category (see Kind) is
// derived once at construction: capacity 0 makes it a value or the
// undefined placeholder, capacity > 0 makes it a string. The slot at Size()
// always holds the zero element, acting as the terminator.
//
// The zero Literal is the undefined placeholder.
//
// Plain assignment copies the header only and shares the backing buffer;
// that is fine for read-only use, use Clone before mutating a copy.
type Literal[T comparable] struct {
	kind Kind
	n    int // capacity; 0 for value/undefined
	buf  []T // n+1 slots, zero-terminated at Size()
}

// NewUndefined returns the undefined placeholder, identical to the zero
// value of the struct.
func NewUndefined[T comparable]() Literal[T] {
	return Literal[T]{}
}

// NewValue wraps a single scalar into slot 0 of a capacity-0 literal.
func NewValue[T comparable](v T) Literal[T] {
	l := Literal[T]{kind: KindValue, buf: make([]T, 1)}
	l.buf[0] = v
	return l
}

// NewString copies the visible content of src (everything before the first
// zero element) into a string literal whose capacity is the bucketed
// visible length. The copy is terminated automatically.
func NewString[C Char](src []C) Literal[C] {
	return NewStringCap(src, visible(src))
}

// NewStringCap copies src into a string literal with a caller-requested
// capacity, bucketed up. Content that does not fit is dropped. String
// literals keep a minimum capacity of 1 so the category is stable.
func NewStringCap[C Char](src []C, capacity int) Literal[C] {
	n := Bucket(capacity)
	if n < 1 {
		n = 1
	}
	l := Literal[C]{kind: KindString, n: n, buf: make([]C, n+1)}
	m := visible(src)
	if m > n {
		m = n
	}
	copy(l.buf, src[:m])
	return l
}

// From is the convenience constructor for Go string sources.
func From(s string) Literal[byte] {
	return NewString([]byte(s))
}

// visible reports the length of src up to its first zero element.
func visible[T comparable](src []T) int {
	var zero T
	for i, c := range src {
		if c == zero {
			return i
		}
	}
	return len(src)
}

// Resized copies the literal into a fresh instance of capacity Bucket(m).
// A smaller capacity truncates content; callers needing a controlled shrink
// should use Substr instead. Values and undefined literals always have
// capacity 0 and come back as clones.
func (l Literal[T]) Resized(m int) Literal[T] {
	if l.kind != KindString {
		return l.Clone()
	}
	n := Bucket(m)
	if n < 1 {
		n = 1
	}
	out := Literal[T]{kind: KindString, n: n, buf: make([]T, n+1)}
	s := l.Size()
	if s > n {
		s = n
	}
	copy(out.buf, l.buf[:s])
	return out
}

// Clone returns an independently owned copy with no storage aliasing.
func (l Literal[T]) Clone() Literal[T] {
	if l.buf == nil {
		return l
	}
	out := l
	out.buf = make([]T, len(l.buf))
	copy(out.buf, l.buf)
	return out
}

// Size scans from slot 0 until the terminator or capacity. Deliberately
// O(n): literals are short and mostly fixed up front, and a stored length
// could drift out of sync with the terminator. Always 0 for values and
// undefined.
func (l Literal[T]) Size() int {
	if l.kind != KindString {
		return 0
	}
	var zero T
	for i := 0; i < l.n; i++ {
		if l.buf[i] == zero {
			return i
		}
	}
	return l.n
}

// Cap returns the capacity: 0 for values and undefined.
func (l Literal[T]) Cap() int { return l.n }

// Empty reports Size() == 0. Always true for values and undefined.
func (l Literal[T]) Empty() bool { return l.Size() == 0 }

// Bool reports whether slot 0 holds a non-zero element. Always false for
// the undefined placeholder.
func (l Literal[T]) Bool() bool {
	if l.kind == KindUndefined || len(l.buf) == 0 {
		return false
	}
	var zero T
	return l.buf[0] != zero
}

// Get returns element i. For capacity-0 literals i is ignored and slot 0 is
// always returned. Under the literalsafe build tag an
// out-of-range access on a string panics with ErrOutOfRange before anything
// is read; in the default build the access is unchecked and staying in
// range is the caller's contract.
func (l Literal[T]) Get(i int) T {
	if l.n > 0 {
		boundsCheck(i, l.Size())
		return l.buf[i]
	}
	return l.first()
}

// At is the always-checked sibling of Get.
func (l Literal[T]) At(i int) (T, error) {
	var zero T
	if l.n == 0 {
		if i != 0 {
			return zero, fmt.Errorf("%w: index %d on capacity 0", ErrOutOfRange, i)
		}
		return l.first(), nil
	}
	if i < 0 || i >= l.Size() {
		return zero, fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, l.Size())
	}
	return l.buf[i], nil
}

// Set writes element i in place, with the same checking rules as Get.
// The undefined placeholder carries no real slot and ignores writes.
// Header copies share the backing buffer and observe the write; Clone
// first for an isolated instance.
func (l *Literal[T]) Set(i int, v T) {
	if l.kind == KindUndefined {
		return
	}
	if l.n > 0 {
		boundsCheck(i, l.Size())
		l.buf[i] = v
		return
	}
	l.buf[0] = v
}

// Assign overwrites a string literal with the visible content of src,
// truncating to capacity, re-terminating and zeroing the tail. No-op for
// other kinds. Like Set, the write is visible through header copies that
// share the buffer.
func (l *Literal[T]) Assign(src []T) {
	if l.kind != KindString {
		return
	}
	m := visible(src)
	if m > l.n {
		m = l.n
	}
	copy(l.buf, src[:m])
	var zero T
	for i := m; i <= l.n; i++ {
		l.buf[i] = zero
	}
}

// Front returns slot 0, unchecked.
func (l Literal[T]) Front() T { return l.first() }

// Back returns the last populated element. Unchecked: calling it on an
// empty literal is the caller's bug.
func (l Literal[T]) Back() T { return l.buf[l.Size()-1] }

// Data exposes the raw backing storage, terminator slot included. Mutating
// it is allowed, keeping the terminator invariant is on the caller.
func (l Literal[T]) Data() []T { return l.buf }

// View projects the populated content of a string literal. Values and
// undefined literals project an empty view. The projection is non-owning
// and derived on demand; do not persist it across mutations.
func (l Literal[T]) View() []T {
	if l.kind != KindString {
		return nil
	}
	return l.buf[:l.Size()]
}

// Value returns slot 0, the scalar conversion for capacity-0 literals.
func (l Literal[T]) Value() T { return l.first() }

func (l Literal[T]) first() T {
	var zero T
	if len(l.buf) == 0 {
		return zero
	}
	return l.buf[0]
}

// Each visits the populated elements front to back. Return false to stop.
func (l Literal[T]) Each(fn func(i int, v T) bool) {
	for i, s := 0, l.Size(); i < s; i++ {
		if !fn(i, l.buf[i]) {
			return
		}
	}
}

// EachReverse visits the populated elements back to front.
func (l Literal[T]) EachReverse(fn func(i int, v T) bool) {
	for i := l.Size() - 1; i >= 0; i-- {
		if !fn(i, l.buf[i]) {
			return
		}
	}
}

// Substr extracts a region into a fresh literal of the same capacity.
// count < 0 means through the end; an out-of-range pos yields an empty
// result. Non-string literals come back as clones.
func (l Literal[T]) Substr(pos, count int) Literal[T] {
	if l.kind != KindString {
		return l.Clone()
	}
	out := Literal[T]{kind: KindString, n: l.n, buf: make([]T, l.n+1)}
	s := l.Size()
	if pos < 0 || pos >= s {
		return out
	}
	if count < 0 || count > s-pos {
		count = s - pos
	}
	copy(out.buf, l.buf[pos:pos+count])
	return out
}

// String renders the literal for display. Byte content converts without a
// copy, wide and UTF-16 content decode through the stdlib. Values print via
// fmt, the undefined placeholder prints empty.
func (l Literal[T]) String() string {
	switch l.kind {
	case KindUndefined:
		return ""
	case KindValue:
		return fmt.Sprint(l.first())
	}
	switch v := any(l.View()).(type) {
	case []byte:
		if len(v) == 0 {
			return ""
		}
		return unsafe.String(&v[0], len(v))
	case []rune:
		return string(v)
	case []uint16:
		return string(utf16.Decode(v))
	default:
		return fmt.Sprint(v)
	}
}
