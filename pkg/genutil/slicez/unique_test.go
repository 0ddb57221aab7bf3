package slicez

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniqueSlice(t *testing.T) {
	tcs := []struct {
		input  []int
		output []int
	}{
		{
			[]int{},
			[]int{},
		},
		{
			[]int{1, 2, 3},
			[]int{1, 2, 3},
		},
		{
			[]int{2, 3, 1},
			[]int{2, 3, 1},
		},
		{
			[]int{2, 3, 1, 2},
			[]int{2, 3, 1},
		},
		{
			[]int{2, 3, 1, 2, 1},
			[]int{2, 3, 1},
		},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%v", tc.input), func(t *testing.T) {
			require.Equal(t, tc.output, Unique(tc.input))
		})
	}
}

func TestUniqueByFunc(t *testing.T) {
	type pair struct {
		key   string
		value int
	}

	tcs := []struct {
		input  []pair
		output []pair
	}{
		{
			[]pair{},
			[]pair{},
		},
		{
			[]pair{{"a", 1}, {"b", 2}},
			[]pair{{"a", 1}, {"b", 2}},
		},
		{
			[]pair{{"a", 1}, {"b", 2}, {"a", 3}},
			[]pair{{"a", 1}, {"b", 2}},
		},
		{
			[]pair{{"a", 1}, {"a", 2}, {"a", 3}},
			[]pair{{"a", 1}},
		},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%v", tc.input), func(t *testing.T) {
			require.Equal(t, tc.output, UniqueByFunc(tc.input, func(p pair) string { return p.key }))
		})
	}
}
