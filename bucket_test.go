package literal

import (
	"math/bits"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// vectors kept as data so the capacity policy reads at a glance
const bucketVectors = `
- {in: 0, out: 0}
- {in: 1, out: 1}
- {in: 2, out: 2}
- {in: 3, out: 4}
- {in: 4, out: 4}
- {in: 5, out: 8}
- {in: 8, out: 8}
- {in: 9, out: 16}
- {in: 11, out: 16}
- {in: 1000, out: 1024}
- {in: 1024, out: 1024}
- {in: 1025, out: 2048}
`

func TestBucketVectors(t *testing.T) {
	var cases []struct {
		In  int `yaml:"in"`
		Out int `yaml:"out"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(bucketVectors), &cases))
	require.NotEmpty(t, cases)
	for _, c := range cases {
		require.Equal(t, c.Out, Bucket(c.In), "Bucket(%d)", c.In)
	}
}

func TestBucketProperties(t *testing.T) {
	condition := func(n uint16) bool {
		b := Bucket(int(n))
		if n == 0 {
			return b == 0
		}
		// covering, power of two, idempotent
		return b >= int(n) &&
			bits.OnesCount(uint(b)) == 1 &&
			Bucket(b) == b
	}
	if err := quick.Check(condition, nil); err != nil {
		t.Errorf("Error: %v", err)
	}
}

func TestBucketNegative(t *testing.T) {
	require.Equal(t, 0, Bucket(-1))
	require.Equal(t, 0, Bucket(-1000))
}
