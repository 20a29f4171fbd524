package literal

import (
	"unsafe"

	"github.com/zeebo/xxh3"
)

// Hash digests the raw bytes of the view projection. Values and the
// undefined placeholder hash as the empty view, so every empty-displaying
// literal lands in the same slot. The element slice is aliased into bytes
// without copying.
func (l Literal[T]) Hash() uint64 {
	v := l.View()
	if len(v) == 0 {
		return xxh3.Hash(nil)
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*int(unsafe.Sizeof(v[0])))
	return xxh3.Hash(b)
}
