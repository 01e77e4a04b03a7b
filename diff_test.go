package jsondoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergePatch(t *testing.T) {
	t.Run("added key appears in the patch", func(t *testing.T) {
		patch, err := MergePatch(`{"a": 1}`, `{"a": 1, "b": 2}`)
		require.NoError(t, err)
		require.JSONEq(t, `{"b": 2}`, patch)
	})

	t.Run("removed key becomes null", func(t *testing.T) {
		patch, err := MergePatch(`{"a": 1, "b": 2}`, `{"a": 1}`)
		require.NoError(t, err)
		require.JSONEq(t, `{"b": null}`, patch)
	})

	t.Run("formatting-only differences produce the empty patch", func(t *testing.T) {
		patch, err := MergePatch("{\n  \"b\": 2, \"a\": 1\n}", `{"a":1,"b":2}`)
		require.NoError(t, err)
		require.Equal(t, `{}`, patch)
	})

	t.Run("invalid input fails", func(t *testing.T) {
		_, err := MergePatch(`not json`, `{}`)
		require.Error(t, err)
	})
}

func TestTextDiff(t *testing.T) {
	t.Run("structurally equal documents yield an empty diff", func(t *testing.T) {
		require.Equal(t, "", TextDiff(`{"b":2,"a":1}`, "{ \"a\": 1, \"b\": 2 }"))
	})

	t.Run("changed value shows as removed and added lines", func(t *testing.T) {
		out := TextDiff(`{"a": 1}`, `{"a": 2}`)
		require.True(t, strings.Contains(out, "- "))
		require.True(t, strings.Contains(out, "+ "))
		require.True(t, strings.Contains(out, "1"))
		require.True(t, strings.Contains(out, "2"))
	})

	t.Run("unparseable input falls back to raw text diff", func(t *testing.T) {
		out := TextDiff("not json at all", "still not json")
		require.NotEmpty(t, out)
	})
}
