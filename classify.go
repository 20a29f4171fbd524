package literal

// Kind is the semantic category a literal represents. It is derived once at
// construction and reused by every downstream operation, so comparison and
// concatenation dispatch never re-derive it.
type Kind uint8

const (
	KindUndefined Kind = iota // explicit placeholder, carries nothing
	KindValue                 // bare scalar, capacity 0
	KindString                // bounded character string, capacity > 0
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindValue:
		return "value"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Any is satisfied by every Literal instantiation, letting the classifier
// predicates take operands of mixed element types.
type Any interface {
	Kind() Kind
}

// Kind returns the literal's category.
func (l Literal[T]) Kind() Kind { return l.kind }

func (l Literal[T]) IsString() bool    { return l.kind == KindString }
func (l Literal[T]) IsValue() bool     { return l.kind == KindValue }
func (l Literal[T]) IsUndefined() bool { return l.kind == KindUndefined }

// IsLiteral reports whether every operand belongs to the literal family.
// The type system already guarantees membership for anything satisfying
// Any, so after validating the pack this only rejects nil operands. At
// least one operand is required by the signature.
func IsLiteral(first Any, rest ...Any) bool {
	validate(first, rest)
	return true
}

// IsString reports whether every operand is a string literal. At least one
// operand is required by the signature.
func IsString(first Any, rest ...Any) bool { return allOf(KindString, first, rest) }

// IsValue reports whether every operand is a value literal.
func IsValue(first Any, rest ...Any) bool { return allOf(KindValue, first, rest) }

// IsUndefined reports whether every operand is an undefined placeholder.
func IsUndefined(first Any, rest ...Any) bool { return allOf(KindUndefined, first, rest) }

// allOf checks kinds across a heterogeneous operand pack. Every operand is
// validated before any is classified.
func allOf(k Kind, first Any, rest []Any) bool {
	validate(first, rest)
	if first.Kind() != k {
		return false
	}
	for _, r := range rest {
		if r.Kind() != k {
			return false
		}
	}
	return true
}

// validate fails loudly on nil operands instead of silently classifying; a
// nil here is always a caller bug.
func validate(first Any, rest []Any) {
	if first == nil {
		panic("literal: nil operand in classifier")
	}
	for _, r := range rest {
		if r == nil {
			panic("literal: nil operand in classifier")
		}
	}
}
