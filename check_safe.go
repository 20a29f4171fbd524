//go:build literalsafe

package literal

import "fmt"

// SafeMode reports whether invariant checks were compiled in.
const SafeMode = true

// boundsCheck rejects out-of-range string access before anything is read or
// written. The panic carries ErrOutOfRange so callers can recover and keep
// using the same instance.
func boundsCheck(i, size int) {
	if i < 0 || i >= size {
		panic(fmt.Errorf("%w: index %d outside size %d", ErrOutOfRange, i, size))
	}
}
