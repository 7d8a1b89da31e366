package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/market-service/internal/pkg/query"
)

func TestPagesCount(t *testing.T) {
	tests := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{25, 12, 3},
		{36, 12, 3},
		{5, 0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PagesCount(tt.total, tt.pageSize), "total=%d size=%d", tt.total, tt.pageSize)
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, int64(0), Offset(1, 12))
	assert.Equal(t, int64(24), Offset(3, 12))
	assert.Equal(t, int64(0), Offset(0, 12), "page 0 is page 1")
	assert.Equal(t, int64(36), Offset(4, 12))
	assert.Positive(t, Offset(MaxPage, MaxPageSize), "largest page offset does not overflow")
}

func TestNormalizePageSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NormalizePageSize(0))
	assert.Equal(t, DefaultPageSize, NormalizePageSize(-5))
	assert.Equal(t, 30, NormalizePageSize(30))
	assert.Equal(t, MaxPageSize, NormalizePageSize(1000))
}

func TestBoughtSince(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	since := BoughtSince(now)

	assert.Equal(t, time.Date(2026, 3, 3, 12, 0, 0, 0, time.UTC), since)

	// a cart validated exactly 7 days ago has aged out (now < date+7d is false)
	cartDate := now.Add(-BoughtWindow)
	assert.False(t, cartDate.After(since))

	cartDate = now.Add(-BoughtWindow + time.Second)
	assert.True(t, cartDate.After(since))
}

func TestParseSort(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := ParseSort("", "")
		require.NoError(t, err)
		assert.Equal(t, "p.date", s.Column())
		assert.Equal(t, query.Desc, s.Direction())
	})

	t.Run("zero value behaves as default", func(t *testing.T) {
		var s Sort
		assert.Equal(t, "p.date", s.Column())
		assert.Equal(t, query.Desc, s.Direction())
	})

	t.Run("allowed field and direction", func(t *testing.T) {
		s, err := ParseSort("Price", "asc")
		require.NoError(t, err)
		assert.Equal(t, "price", s.Field())
		assert.Equal(t, "p.price", s.Column())
		assert.Equal(t, query.Asc, s.Direction())
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		_, err := ParseSort("price; DROP TABLE products", "ASC")
		assert.ErrorIs(t, err, ErrInvalidSort)
	})

	t.Run("unknown direction rejected", func(t *testing.T) {
		_, err := ParseSort("date", "sideways")
		assert.ErrorIs(t, err, ErrInvalidSort)
	})
}
