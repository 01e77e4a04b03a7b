package jsondoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseToken(t *testing.T) {
	t.Run("bracketed integer is an index", func(t *testing.T) {
		require.Equal(t, Index(0), ParseToken("[0]"))
		require.Equal(t, Index(42), ParseToken("[42]"))
	})

	t.Run("anything else is a key", func(t *testing.T) {
		require.Equal(t, Key("name"), ParseToken("name"))
		require.Equal(t, Key("[x]"), ParseToken("[x]"))
		require.Equal(t, Key("[]"), ParseToken("[]"))
		require.Equal(t, Key("[1"), ParseToken("[1"))
		require.Equal(t, Key(""), ParseToken(""))
	})

	t.Run("negative indices are keys", func(t *testing.T) {
		require.Equal(t, Key("[-1]"), ParseToken("[-1]"))
	})

	t.Run("wire form round trips", func(t *testing.T) {
		for _, s := range []string{"name", "[0]", "[17]"} {
			require.Equal(t, s, ParseToken(s).String())
		}
	})
}

func TestPath(t *testing.T) {
	t.Run("parse and render", func(t *testing.T) {
		p := ParsePath([]string{"items", "[0]", "name"})
		require.Equal(t, Path{Key("items"), Index(0), Key("name")}, p)
		require.Equal(t, "items.[0].name", p.String())
	})

	t.Run("empty path is the root", func(t *testing.T) {
		require.Nil(t, ParsePath(nil))
		require.Equal(t, "", Path{}.String())
	})
}
