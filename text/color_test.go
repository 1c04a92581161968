package text

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisplayOrder(t *testing.T) {
	t.Run("markers are distinct and deterministic", func(t *testing.T) {
		seen := map[string]int{}
		for i := 0; i < DisplayOrderLen; i++ {
			marker := DisplayOrder(i)
			require.NotEmpty(t, marker)
			require.Equal(t, marker, DisplayOrder(i))
			if prev, dup := seen[marker]; dup {
				t.Fatalf("marker %q assigned to both %d and %d", marker, prev, i)
			}
			seen[marker] = i
		}
	})

	t.Run("palette covers a full sidebar", func(t *testing.T) {
		// the sidebar shows 15 lines at most, all of them may tie
		require.GreaterOrEqual(t, DisplayOrderLen, 15)
	})

	t.Run("out of range panics", func(t *testing.T) {
		require.Panics(t, func() { DisplayOrder(-1) })
		require.Panics(t, func() { DisplayOrder(DisplayOrderLen) })
	})
}
