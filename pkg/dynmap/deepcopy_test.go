package dynmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeepCopyIndependence(t *testing.T) {
	m := New(WithMultiValue())
	m.Set("a", 1)
	m.Set("a", 2)

	inner := New()
	inner.Set("x", 1)
	m.Set("nested", inner)
	m.SetAttr("_hidden", "kept")

	dup := m.DeepCopy()
	require.Equal(t, m.Entries()[:2], dup.Entries()[:2])

	// The nested map is a distinct copy.
	copiedNested, err := dup.Get("nested")
	require.NoError(t, err)
	require.NotSame(t, inner, copiedNested)

	copiedNested.(*Map).Set("x", 99)
	value, err := inner.Get("x")
	require.NoError(t, err)
	require.Equal(t, 1, value)

	// Private attributes are copied too.
	hidden, err := dup.GetAttr("_hidden")
	require.NoError(t, err)
	require.Equal(t, "kept", hidden)
}

func TestDeepCopySelfReference(t *testing.T) {
	m := New()
	m.Set("name", "root")
	m.Set("self", m)

	dup := m.DeepCopy()

	copiedSelf, err := dup.Get("self")
	require.NoError(t, err)
	require.Same(t, dup, copiedSelf, "the self-reference points at the copy, not the original")
	require.NotSame(t, m, copiedSelf)
}

func TestDeepCopyIndirectCycle(t *testing.T) {
	a := New()
	b := New()
	a.Set("b", b)
	b.Set("a", a)

	dupA := a.DeepCopy()
	dupB, err := dupA.Get("b")
	require.NoError(t, err)

	back, err := dupB.(*Map).Get("a")
	require.NoError(t, err)
	require.Same(t, dupA, back)
	require.NotSame(t, b, dupB)
}

func TestDeepCopySharedValueCopiedOnce(t *testing.T) {
	shared := New()
	shared.Set("x", 1)

	m := New()
	m.Set("first", shared)
	m.Set("second", shared)

	dup := m.DeepCopy()
	first, err := dup.Get("first")
	require.NoError(t, err)
	second, err := dup.Get("second")
	require.NoError(t, err)
	require.Same(t, first, second, "a shared value stays shared in the copy")
}

func TestDeepCopyContainers(t *testing.T) {
	m := New()
	m.Set("xs", []any{1, []any{2}})
	m.Set("props", map[string]any{"k": "v"})

	dup := m.DeepCopy()

	xs, err := m.Get("xs")
	require.NoError(t, err)
	xs.([]any)[0] = 99
	(xs.([]any)[1]).([]any)[0] = 99

	duplicated, err := dup.Get("xs")
	require.NoError(t, err)
	require.Equal(t, []any{1, []any{2}}, duplicated)

	props, err := m.Get("props")
	require.NoError(t, err)
	props.(map[string]any)["k"] = "changed"

	duplicatedProps, err := dup.Get("props")
	require.NoError(t, err)
	require.Equal(t, map[string]any{"k": "v"}, duplicatedProps)
}

func TestDeepCopyPreservesCapabilities(t *testing.T) {
	m := New(Recursive())
	dup := m.DeepCopy()

	child, err := dup.GetOrInsert("auto")
	require.NoError(t, err)
	require.IsType(t, &Map{}, child, "the copy keeps the recursive factory")
}
