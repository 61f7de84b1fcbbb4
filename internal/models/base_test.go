package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDList(t *testing.T) {
	t.Run("add is idempotent", func(t *testing.T) {
		l := IDList{"a"}
		l = l.Add("b")
		l = l.Add("b")
		assert.Equal(t, IDList{"a", "b"}, l)
	})

	t.Run("remove of absent id is a no-op", func(t *testing.T) {
		l := IDList{"a", "b"}
		assert.Equal(t, IDList{"a", "b"}, l.Remove("c"))
		assert.Equal(t, IDList{"a"}, l.Remove("b"))
	})

	t.Run("contains", func(t *testing.T) {
		l := IDList{"a", "b"}
		assert.True(t, l.Contains("a"))
		assert.False(t, l.Contains("x"))
	})

	t.Run("value and scan round-trip", func(t *testing.T) {
		l := IDList{"a", "b"}
		v, err := l.Value()
		require.NoError(t, err)

		var out IDList
		require.NoError(t, out.Scan(v))
		assert.Equal(t, l, out)
	})

	t.Run("scan of nil yields empty list", func(t *testing.T) {
		var out IDList
		require.NoError(t, out.Scan(nil))
		assert.Empty(t, out)
	})
}
