package dynmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ordmap/ordmap/pkg/ordmap"
)

func TestPairsFromArgsSources(t *testing.T) {
	kwargs := []Entry{{Key: "z", Value: 26}}

	t.Run("no arguments", func(t *testing.T) {
		pairs, err := PairsFromArgs(nil, nil, false)
		require.NoError(t, err)
		require.Empty(t, pairs)
	})

	t.Run("kwargs only", func(t *testing.T) {
		pairs, err := PairsFromArgs(nil, kwargs, true)
		require.NoError(t, err)
		require.Equal(t, kwargs, pairs)
	})

	t.Run("pair slice", func(t *testing.T) {
		pairs, err := PairsFromArgs([]any{[]Entry{{Key: "a", Value: 1}}}, kwargs, false)
		require.NoError(t, err)
		require.Equal(t, []Entry{{Key: "a", Value: 1}, {Key: "z", Value: 26}}, pairs)
	})

	t.Run("two-element arrays", func(t *testing.T) {
		pairs, err := PairsFromArgs([]any{[][2]any{{"a", 1}, {"b", 2}}}, nil, false)
		require.NoError(t, err)
		require.Equal(t, []Entry{{Key: "a", Value: 1}, {Key: "b", Value: 2}}, pairs)
	})

	t.Run("nested any slices", func(t *testing.T) {
		pairs, err := PairsFromArgs([]any{[]any{[]any{"a", 1}, [2]any{"b", 2}}}, nil, false)
		require.NoError(t, err)
		require.Equal(t, []Entry{{Key: "a", Value: 1}, {Key: "b", Value: 2}}, pairs)
	})

	t.Run("plain map", func(t *testing.T) {
		pairs, err := PairsFromArgs([]any{map[string]any{"a": 1}}, nil, false)
		require.NoError(t, err)
		require.Equal(t, []Entry{{Key: "a", Value: 1}}, pairs)
	})

	t.Run("compatible instances", func(t *testing.T) {
		source := New()
		source.Set("a", 1)
		pairs, err := PairsFromArgs([]any{source}, nil, false)
		require.NoError(t, err)
		require.Equal(t, []Entry{{Key: "a", Value: 1}}, pairs)

		mm := ordmap.NewMultiMap[string, any]()
		mm.Add("b", 2)
		pairs, err = PairsFromArgs([]any{mm}, nil, false)
		require.NoError(t, err)
		require.Equal(t, []Entry{{Key: "b", Value: 2}}, pairs)
	})
}

func TestPairsFromArgsFailures(t *testing.T) {
	t.Run("more than one positional source", func(t *testing.T) {
		_, err := PairsFromArgs([]any{map[string]any{}, map[string]any{}}, nil, false)
		var tmae TooManyArgsError
		require.True(t, errors.As(err, &tmae))
		require.Equal(t, 2, tmae.ArgCount())
	})

	t.Run("strict rejects positional plus kwargs", func(t *testing.T) {
		_, err := PairsFromArgs([]any{map[string]any{"a": 1}}, []Entry{{Key: "b", Value: 2}}, true)
		var aae AmbiguousArgsError
		require.True(t, errors.As(err, &aae))
	})

	t.Run("non-strict allows positional plus kwargs", func(t *testing.T) {
		pairs, err := PairsFromArgs([]any{[]Entry{{Key: "a", Value: 1}}}, []Entry{{Key: "b", Value: 2}}, false)
		require.NoError(t, err)
		require.Equal(t, []Entry{{Key: "a", Value: 1}, {Key: "b", Value: 2}}, pairs)
	})

	t.Run("malformed pair carries index and length", func(t *testing.T) {
		_, err := PairsFromArgs([]any{[][]any{{"a", 1}, {"b", 2, 3}}}, nil, false)
		var mpe MalformedPairError
		require.True(t, errors.As(err, &mpe))
		require.Equal(t, 1, mpe.PairIndex())
		require.Equal(t, 3, mpe.PairLength())
	})

	t.Run("non-string key carries index", func(t *testing.T) {
		_, err := PairsFromArgs([]any{[][2]any{{1, "one"}}}, nil, false)
		var nske NonStringKeyError
		require.True(t, errors.As(err, &nske))
		require.Equal(t, 0, nske.PairIndex())
	})

	t.Run("unsupported source", func(t *testing.T) {
		_, err := PairsFromArgs([]any{42}, nil, false)
		var use UnsupportedSourceError
		require.True(t, errors.As(err, &use))
		require.Equal(t, "int", use.SourceType())
	})
}

func TestFromArgs(t *testing.T) {
	m, err := FromArgs([]any{[]Entry{{Key: "a", Value: 1}, {Key: "a", Value: 2}}}, nil, false, WithMultiValue())
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())
	require.Equal(t, []any{1, 2}, m.GetAll("a"))

	// Without multi-value, duplicate keys collapse with update semantics.
	m, err = FromArgs([]any{[]Entry{{Key: "a", Value: 1}, {Key: "a", Value: 2}}}, nil, false)
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())

	value, err := m.Get("a")
	require.NoError(t, err)
	require.Equal(t, 2, value)
}

func TestUpdateArgs(t *testing.T) {
	m := New()
	m.Set("a", 1)

	require.NoError(t, m.UpdateArgs([]any{map[string]any{"a": 9}}, []Entry{{Key: "b", Value: 2}}, false))
	require.Equal(t, []Entry{{Key: "a", Value: 9}, {Key: "b", Value: 2}}, m.Entries())

	err := m.UpdateArgs([]any{1, 2}, nil, false)
	require.Error(t, err)
}
