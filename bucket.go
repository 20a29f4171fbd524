package literal

import "math/bits"

// Bucket rounds n up to the smallest power of two that holds it, 0 for 0.
// Deliberately many-to-one: literals of nearby lengths collapse onto shared
// container shapes, bounding how many distinct shapes a program needs.
func Bucket(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 << bits.Len(uint(n-1))
}
