package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFallsBackToDefaults(t *testing.T) {
	require.Equal(t, Params{Page: 1, Limit: 10}, Parse("", ""))
	require.Equal(t, Params{Page: 1, Limit: 10}, Parse("abc", "-3"))
	require.Equal(t, Params{Page: 3, Limit: 25}, Parse("3", "25"))
	require.Equal(t, Params{Page: 2, Limit: MaxLimit}, Parse("2", "1000"))
}

func TestOffset(t *testing.T) {
	require.Equal(t, 0, New(1, 10).Offset())
	require.Equal(t, 40, New(5, 10).Offset())
}

func TestNewResultMeta(t *testing.T) {
	r := NewResult([]int{1, 2, 3}, 23, New(2, 10))
	require.Equal(t, Meta{Page: 2, Limit: 10, Total: 23, TotalPages: 3, HasNext: true, HasPrev: true}, r.Pagination)

	last := NewResult([]int{}, 23, New(3, 10))
	require.False(t, last.Pagination.HasNext)

	empty := NewResult[int](nil, 0, New(1, 10))
	require.NotNil(t, empty.Data)
	require.Equal(t, 0, empty.Pagination.TotalPages)
	require.False(t, empty.Pagination.HasNext)
	require.False(t, empty.Pagination.HasPrev)
}

func TestMapKeepsMeta(t *testing.T) {
	r := NewResult([]int{1, 2}, 2, New(1, 10))
	m := Map(r, func(v int) string { return string(rune('a' + v)) })
	require.Equal(t, []string{"b", "c"}, m.Data)
	require.Equal(t, r.Pagination, m.Pagination)
}
