package literal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEqualStringString(t *testing.T) {
	require.True(t, Equal(From("Test String"), From("Test String")))
	require.False(t, Equal(From("Test String"), From("test string")))
	require.False(t, Equal(From("Test"), From("Test ")))

	// capacity does not matter, content does
	require.True(t, Equal(From("ab"), NewStringCap([]byte("ab"), 30)))

	// character widths promote before comparing, content decides
	require.True(t, Equal(From("ab"), NewString([]rune("ab"))))
	require.True(t, Equal(From(""), NewString([]rune{})))
}

func TestEqualCrossWidthStrings(t *testing.T) {
	narrow := From("Test String")
	wide := NewString([]rune("Test String"))
	utf16s := NewString([]uint16{'T', 'e', 's', 't', ' ', 'S', 't', 'r', 'i', 'n', 'g'})

	require.True(t, Equal(narrow, wide))
	require.True(t, Equal(wide, narrow))
	require.True(t, Equal(narrow, utf16s))
	require.True(t, Equal(wide, utf16s))

	require.False(t, Equal(narrow, NewString([]rune("Test STRING"))))
	require.False(t, Equal(From("Test"), wide))

	// code points beyond the narrow range only exist on one side
	require.False(t, Equal(From("a"), NewString([]rune{0x2603})))
	require.True(t, Equal(NewString([]uint16{0x2603}), NewString([]rune{0x2603})))
}

func TestEqualStringUndefined(t *testing.T) {
	u := NewUndefined[byte]()
	require.True(t, Equal(From(""), u))
	require.True(t, Equal(u, From("\x00\x00\x00")))
	require.False(t, Equal(From("x"), u))
	require.False(t, Equal(u, From("Test String")))
}

func TestEqualStringValue(t *testing.T) {
	// a one-element string equals a value of the same element
	require.True(t, Equal(From("a"), NewValue(byte('a'))))
	require.True(t, Equal(NewValue(byte('a')), From("a")))
	require.False(t, Equal(From("b"), NewValue(byte('a'))))
	require.False(t, Equal(From("aa"), NewValue(byte('a'))))

	// values are empty by convention, so an empty string matches any value
	// of a comparable element type
	require.True(t, Equal(From(""), NewValue(byte('x'))))

	// uncomparable element types are never equal, empty or not
	require.False(t, Equal(From(""), NewValue(5.5)))
	require.False(t, Equal(From("a"), NewValue('a'))) // byte string vs rune value
}

func TestEqualValueValue(t *testing.T) {
	require.True(t, Equal(NewValue(5.5), NewValue(5.5)))
	require.False(t, Equal(NewValue(5.5), NewValue(5.6)))

	// 5.5 and 'a' have uncomparable element types
	require.False(t, Equal(NewValue(5.5), NewValue('a')))
	// even equal numeric values across types stay unequal
	require.False(t, Equal(NewValue(int16(97)), NewValue('a')))
	require.True(t, Equal(NewValue('a'), NewValue('a')))
}

func TestEqualUndefinedPairs(t *testing.T) {
	require.True(t, Equal(NewUndefined[byte](), NewUndefined[byte]()))
	require.True(t, Equal(NewUndefined[byte](), NewUndefined[float64]()))
	require.False(t, Equal(NewUndefined[float64](), NewValue(0.0)))
	require.False(t, Equal(NewValue(byte(0)), NewUndefined[byte]()))
}

func TestEqualView(t *testing.T) {
	s := From("Test String")
	require.True(t, EqualView(s, []byte("Test String")))
	require.True(t, EqualView(s, append([]byte("Test String"), 0)))
	require.False(t, EqualView(s, []byte("Test")))
	require.False(t, EqualView(s, []byte("Test String!")))

	// value compares slot 0 against the first element
	v := NewValue(byte('a'))
	require.True(t, EqualView(v, []byte("abc")))
	require.False(t, EqualView(v, []byte("bca")))
	require.False(t, EqualView(v, nil))

	// undefined equals a visibly empty buffer
	u := NewUndefined[byte]()
	require.True(t, EqualView(u, nil))
	require.True(t, EqualView(u, []byte{0, 'x'}))
	require.False(t, EqualView(u, []byte("x")))
}

func TestOrdering(t *testing.T) {
	a, b := From("abc"), From("abd")

	require.Equal(t, 0, Compare(a, From("abc")))
	require.Equal(t, -1, Compare(a, b))
	require.Equal(t, 1, Compare(b, a))
	require.Equal(t, -1, Compare(From("ab"), a)) // prefix orders first
	require.True(t, Less(a, b))
	require.False(t, Less(b, a))
	require.False(t, Less(a, a))

	require.Equal(t, 0, CompareView(a, []byte("abc")))
	require.Equal(t, 0, CompareView(a, append([]byte("abc"), 0)))
	require.Equal(t, -1, CompareView(a, []byte("b")))

	s := From("Test String")
	require.Equal(t, 0, CompareRange(s, 5, 6, []byte("String")))
	require.Equal(t, 0, CompareRange(s, 5, -1, []byte("String")))
	require.Equal(t, 1, CompareRange(s, 5, 6, []byte("Strin")))
	require.Equal(t, -1, CompareRange(s, 100, 6, []byte("x"))) // clamped to empty
}

func TestOrderingUndefinedAcrossCategories(t *testing.T) {
	// no order exists across categories
	require.Panics(t, func() { Compare(From("a"), NewValue(byte('a'))) })
	require.Panics(t, func() { Compare(NewUndefined[byte](), From("a")) })
	require.Panics(t, func() { Less(NewValue(byte('a')), NewValue(byte('b'))) })
	require.Panics(t, func() { CompareView(NewUndefined[byte](), []byte("a")) })
}

func TestOrderingWideElements(t *testing.T) {
	require.True(t, Less(NewString([]rune("alpha")), NewString([]rune("beta"))))
	require.Equal(t, 0, Compare(NewString([]uint16{'h', 'i'}), NewString([]uint16{'h', 'i'})))
}
