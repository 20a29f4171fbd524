package literal

// Append copies rhs's populated content onto the receiver's logical end,
// stopping when the source is consumed or the last capacity slot is
// written. Overflow is dropped on purpose: the buffer never reallocates,
// callers needing lossless growth pre-size via Bucket or Resized.
func (l *Literal[T]) Append(rhs Literal[T]) *Literal[T] {
	return l.AppendView(rhs.View())
}

// AppendView is Append for a raw counted buffer; only the visible prefix of
// src is copied. The write mutates the shared backing buffer, so header
// copies observe it; Clone first for an isolated instance.
func (l *Literal[T]) AppendView(src []T) *Literal[T] {
	if l.kind != KindString || l.n == 0 {
		return l
	}
	var zero T
	i := l.Size()
	for _, c := range src {
		if c == zero || i == l.n {
			break
		}
		l.buf[i] = c
		i++
	}
	l.buf[i] = zero
	return l
}

// Concat builds a fresh string literal of capacity Bucket(lhs.Cap() +
// rhs.Cap()) holding lhs's content followed by rhs's. The capacity sum
// always covers both contents, so the append below never truncates.
// Concatenating values or undefined literals is unsupported and panics.
func Concat[C Char](lhs, rhs Literal[C]) Literal[C] {
	mustString(lhs.kind)
	mustString(rhs.kind)
	out := NewStringCap(lhs.View(), lhs.n+rhs.n)
	out.AppendView(rhs.View())
	return out
}

// ConcatView concatenates a string literal with a raw buffer's visible
// prefix, sizing the result like Concat.
func ConcatView[C Char](lhs Literal[C], rhs []C) Literal[C] {
	mustString(lhs.kind)
	out := NewStringCap(lhs.View(), lhs.n+len(rhs))
	out.AppendView(rhs)
	return out
}
