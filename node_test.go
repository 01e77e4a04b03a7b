package jsondoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildDisplayTree(t *testing.T) {
	t.Run("identifiers are dot-joined paths from root", func(t *testing.T) {
		root := mustParse(t, `{"items": [{"name": "first"}], "count": 1}`)
		tree := BuildDisplayTree(root)

		require.Equal(t, "root", tree.ID)
		ids := tree.IDSet()
		for _, want := range []string{
			"root",
			"root.items",
			"root.items.[0]",
			"root.items.[0].name",
			"root.count",
		} {
			require.Contains(t, ids, want)
		}
		require.Len(t, ids, 5)
	})

	t.Run("children follow display order", func(t *testing.T) {
		tree := BuildDisplayTree(mustParse(t, `{"b": 1, "a": 2}`))
		require.Len(t, tree.Children, 2)
		require.Equal(t, "root.b", tree.Children[0].ID)
		require.Equal(t, "root.a", tree.Children[1].ID)
	})

	t.Run("node path resolves back to its value", func(t *testing.T) {
		root := mustParse(t, `{"items": ["a", "b"]}`)
		tree := BuildDisplayTree(root)
		tree.Walk(func(n *DisplayNode) {
			r := Resolve(root, n.Path)
			require.Equal(t, Found, r.State)
			require.Equal(t, n.Value, r.Value)
		})
	})

	t.Run("scalar root has no children", func(t *testing.T) {
		tree := BuildDisplayTree(Number(42))
		require.Equal(t, "root", tree.ID)
		require.Empty(t, tree.Children)
	})
}

func TestDisplayIdentityStability(t *testing.T) {
	t.Run("same structure yields the same identifiers regardless of leaf values", func(t *testing.T) {
		before := BuildDisplayTree(mustParse(t, `{"items": [{"name": "old"}], "n": 1}`))
		after := BuildDisplayTree(mustParse(t, `{"items": [{"name": "completely different"}], "n": 99}`))
		require.Equal(t, before.IDSet(), after.IDSet())
	})

	t.Run("structural change shows up as identifier change", func(t *testing.T) {
		before := BuildDisplayTree(mustParse(t, `{"items": [1, 2]}`))
		after := BuildDisplayTree(mustParse(t, `{"items": [1]}`))
		beforeIDs, afterIDs := before.IDSet(), after.IDSet()
		require.Contains(t, beforeIDs, "root.items.[1]")
		require.NotContains(t, afterIDs, "root.items.[1]")
	})

	t.Run("identifiers survive an edit and reparse cycle", func(t *testing.T) {
		doc := `{"items": [{"name": "first"}]}`
		edited, err := Update(doc, Path{Key("items"), Index(0), Key("name")}, String("renamed"))
		require.NoError(t, err)

		before := BuildDisplayTree(mustParse(t, doc))
		after := BuildDisplayTree(mustParse(t, edited))
		require.Equal(t, before.IDSet(), after.IDSet())
	})
}
