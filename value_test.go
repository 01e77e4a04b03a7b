package jsondoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObject(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var o Object
		require.Len(t, o, 0)
		require.Nil(t, o) // zero value of Object is nil slice
	})

	t.Run("initialized object is not nil", func(t *testing.T) {
		o := Object{}
		require.Len(t, o, 0)
		require.NotNil(t, o)
	})

	t.Run("member order is preserved", func(t *testing.T) {
		o := Object{
			{Key: "first", Value: Number(1)},
			{Key: "second", Value: Number(2)},
			{Key: "third", Value: Number(3)},
		}
		require.Equal(t, 3, o.Len())
		require.Equal(t, "first", o[0].Key)
		require.Equal(t, "second", o[1].Key)
		require.Equal(t, "third", o[2].Key)
	})

	t.Run("find returns first match", func(t *testing.T) {
		o := Object{{Key: "a", Value: Number(1)}, {Key: "b", Value: String("x")}}
		v, ok := o.Find("b")
		require.True(t, ok)
		require.Equal(t, String("x"), v)

		_, ok = o.Find("missing")
		require.False(t, ok)
	})

	t.Run("withMember overwrites in place", func(t *testing.T) {
		o := Object{{Key: "a", Value: Number(1)}, {Key: "b", Value: Number(2)}}
		got := o.withMember("a", Number(9))
		require.Equal(t, "a", got[0].Key)
		require.Equal(t, Number(9), got[0].Value)
		require.Equal(t, Number(1), o[0].Value) // original untouched
	})

	t.Run("withMember appends new key", func(t *testing.T) {
		o := Object{{Key: "a", Value: Number(1)}}
		got := o.withMember("b", Number(2))
		require.Equal(t, 2, got.Len())
		require.Equal(t, "b", got[1].Key)
		require.Equal(t, 1, o.Len())
	})

	t.Run("without removes key", func(t *testing.T) {
		o := Object{{Key: "a", Value: Number(1)}, {Key: "b", Value: Number(2)}}
		got := o.without("a")
		require.Equal(t, 1, got.Len())
		require.Equal(t, "b", got[0].Key)
		require.Equal(t, 2, o.Len())
	})

	t.Run("without absent key is unchanged copy", func(t *testing.T) {
		o := Object{{Key: "a", Value: Number(1)}}
		require.Equal(t, o, o.without("missing"))
	})
}

func TestArray(t *testing.T) {
	t.Run("withElement replaces without aliasing", func(t *testing.T) {
		a := Array{Number(1), Number(2), Number(3)}
		got := a.withElement(1, String("x"))
		require.Equal(t, Array{Number(1), String("x"), Number(3)}, got)
		require.Equal(t, Number(2), a[1])
	})

	t.Run("withoutElement shifts subsequent elements down", func(t *testing.T) {
		a := Array{Number(1), Number(2), Number(3)}
		require.Equal(t, Array{Number(1), Number(3)}, a.withoutElement(1))
		require.Len(t, a, 3)
	})
}

func TestKinds(t *testing.T) {
	cases := []struct {
		value Value
		kind  Kind
		name  string
	}{
		{Object{}, KindObject, "object"},
		{Array{}, KindArray, "array"},
		{String("x"), KindString, "string"},
		{Number(1.5), KindNumber, "number"},
		{Bool(true), KindBool, "bool"},
		{Null{}, KindNull, "null"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.kind, tc.value.Kind())
			require.Equal(t, tc.name, tc.kind.String())
		})
	}
}
