package dynmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ordmap/ordmap/pkg/ordmap"
)

func TestMapBasicAccess(t *testing.T) {
	m := New()
	m.Set("a", 1)
	m.Set("b", "two")

	value, err := m.Get("a")
	require.NoError(t, err)
	require.Equal(t, 1, value)

	_, err = m.Get("missing")
	var knfe ordmap.KeyNotFoundError[string]
	require.True(t, errors.As(err, &knfe))
	require.Equal(t, "missing", knfe.NotFoundKey())

	require.Equal(t, "fallback", m.GetOr("missing", "fallback"))
	require.Equal(t, 2, m.Len())
	require.Equal(t, []string{"a", "b"}, m.Keys())
}

func TestMapSingleValueSetRewritesInPosition(t *testing.T) {
	m := New()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 9)

	require.Equal(t, []Entry{{Key: "a", Value: 9}, {Key: "b", Value: 2}}, m.Entries())
}

func TestMapSingleValueUpdateCollapsesDuplicateKeys(t *testing.T) {
	m := New()
	m.Set("a", 1)
	m.Update(Entry{Key: "x", Value: 1}, Entry{Key: "x", Value: 2})

	require.Equal(t, 2, m.Len())
	require.Equal(t, []Entry{{Key: "a", Value: 1}, {Key: "x", Value: 2}}, m.Entries())
	require.Equal(t, []string{"a", "x"}, m.Keys())
}

func TestMapMultiValueSetAppends(t *testing.T) {
	m := New(WithMultiValue())
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 9)

	require.Equal(t, []Entry{{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "a", Value: 9}}, m.Entries())
	require.Equal(t, []any{1, 9}, m.GetAll("a"))

	value, err := m.Get("a")
	require.NoError(t, err)
	require.Equal(t, 9, value)

	require.NoError(t, m.Delete("a"))
	require.Equal(t, []Entry{{Key: "b", Value: 2}}, m.Entries())
}

func TestMapGetOrInsert(t *testing.T) {
	t.Run("without factory a miss fails", func(t *testing.T) {
		m := New()
		_, err := m.GetOrInsert("missing")
		var knfe ordmap.KeyNotFoundError[string]
		require.True(t, errors.As(err, &knfe))
	})

	t.Run("factory result is stored and returned", func(t *testing.T) {
		calls := 0
		m := New(WithFactory(func() any {
			calls++
			return []int{}
		}))

		value, err := m.GetOrInsert("bucket")
		require.NoError(t, err)
		require.Equal(t, []int{}, value)
		require.Equal(t, 1, calls)

		// A second access hits the stored value.
		_, err = m.GetOrInsert("bucket")
		require.NoError(t, err)
		require.Equal(t, 1, calls)
		require.True(t, m.Has("bucket"))
	})

	t.Run("plain Get never autovivifies", func(t *testing.T) {
		m := New(WithFactory(func() any { return 0 }))
		_, err := m.Get("missing")
		require.Error(t, err)
		require.False(t, m.Has("missing"))
	})
}

func TestMapRecursiveAutovivification(t *testing.T) {
	m := New(Recursive())

	// A deep attribute chain needs no explicit initialization.
	level1, err := m.GetAttr("one")
	require.NoError(t, err)

	level2, err := level1.(*Map).GetAttr("two")
	require.NoError(t, err)

	level2.(*Map).SetAttr("three", 42)

	// The chain is durable.
	one, err := m.Get("one")
	require.NoError(t, err)
	two, err := one.(*Map).Get("two")
	require.NoError(t, err)
	three, err := two.(*Map).Get("three")
	require.NoError(t, err)
	require.Equal(t, 42, three)

	// Autovivified children share the parent's capabilities.
	child, err := m.GetOrInsert("another")
	require.NoError(t, err)
	grandchild, err := child.(*Map).GetOrInsert("nested")
	require.NoError(t, err)
	require.IsType(t, &Map{}, grandchild)
}

func TestMapAttrVsKeyErrorTaxonomy(t *testing.T) {
	m := New()

	_, keyErr := m.Get("missing")
	var knfe ordmap.KeyNotFoundError[string]
	require.True(t, errors.As(keyErr, &knfe))

	_, attrErr := m.GetAttr("missing")
	var anfe AttrNotFoundError
	require.True(t, errors.As(attrErr, &anfe))
	require.Equal(t, "missing", anfe.NotFoundAttr())
	require.False(t, errors.As(attrErr, &knfe), "attribute misses never surface as key misses")
}

func TestMapUnderscorePolicy(t *testing.T) {
	m := New()

	// Leading-underscore attributes bypass the entry store.
	m.SetAttr("_private", "hidden")
	require.False(t, m.Has("_private"))
	require.Empty(t, m.Entries())

	value, err := m.GetAttr("_private")
	require.NoError(t, err)
	require.Equal(t, "hidden", value)

	// Subscript access to underscore names still hits the store.
	m.Set("_stored", 1)
	stored, err := m.Get("_stored")
	require.NoError(t, err)
	require.Equal(t, 1, stored)
	_, err = m.GetAttr("_stored")
	require.Error(t, err, "the side storage and the entry store never alias")

	// Public attributes go through the store.
	m.SetAttr("public", 2)
	require.True(t, m.Has("public"))

	require.NoError(t, m.DeleteAttr("_private"))
	var anfe AttrNotFoundError
	require.True(t, errors.As(m.DeleteAttr("_private"), &anfe))
	require.True(t, errors.As(m.DeleteAttr("gone"), &anfe))
}

func TestMapUnderscoreNeverAutovivifies(t *testing.T) {
	m := New(Recursive())
	_, err := m.GetAttr("_missing")
	var anfe AttrNotFoundError
	require.True(t, errors.As(err, &anfe))
	require.Empty(t, m.Entries())
}

func TestMapPop(t *testing.T) {
	m := New(WithMultiValue())
	m.Set("a", 1)
	m.Set("a", 2)

	value, err := m.Pop("a")
	require.NoError(t, err)
	require.Equal(t, 2, value)
	require.False(t, m.Has("a"))
}
