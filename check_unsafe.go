//go:build !literalsafe

package literal

// SafeMode reports whether invariant checks were compiled in.
const SafeMode = false

// Access is unchecked in the default build; staying in range is the
// caller's contract.
func boundsCheck(int, int) {}
