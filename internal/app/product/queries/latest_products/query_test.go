package latest_products

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/market-service/internal/app/product/domain"
	"github.com/light-bringer/market-service/internal/pkg/clock"
	"github.com/light-bringer/market-service/internal/testutil"
)

func intp(v int) *int { return &v }

func TestExecute(t *testing.T) {
	store := testutil.NewMemoryStore(clock.NewMockClock(time.Now()))
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		_, err := store.Insert(ctx, &domain.Product{Title: "item", Status: domain.StatusForSale})
		require.NoError(t, err)
	}
	q := NewQuery(store)

	views, err := q.Execute(ctx, &Request{})
	require.NoError(t, err)
	require.Len(t, views, DefaultLimit)
	assert.Equal(t, int64(10), views[0].ID)
	assert.Equal(t, int64(3), views[DefaultLimit-1].ID)

	views, err = q.Execute(ctx, &Request{Limit: intp(3)})
	require.NoError(t, err)
	assert.Len(t, views, 3)

	// zero and negative limits return everything
	for _, limit := range []int{0, -1} {
		views, err = q.Execute(ctx, &Request{Limit: intp(limit)})
		require.NoError(t, err)
		assert.Len(t, views, 10, "limit %d", limit)
	}
}

func TestExecute_CapsLargeLimits(t *testing.T) {
	store := testutil.NewMemoryStore(clock.NewMockClock(time.Now()))
	ctx := context.Background()
	for i := 0; i < domain.MaxPageSize+5; i++ {
		_, err := store.Insert(ctx, &domain.Product{Title: "item", Status: domain.StatusForSale})
		require.NoError(t, err)
	}

	views, err := NewQuery(store).Execute(ctx, &Request{Limit: intp(domain.MaxPageSize + 1)})
	require.NoError(t, err)
	assert.Len(t, views, domain.MaxPageSize)
}

func TestParseLimit(t *testing.T) {
	limit, err := ParseLimit("")
	require.NoError(t, err)
	assert.Nil(t, limit)

	limit, err = ParseLimit(" 0 ")
	require.NoError(t, err)
	require.NotNil(t, limit)
	assert.Equal(t, 0, *limit)

	limit, err = ParseLimit("5")
	require.NoError(t, err)
	assert.Equal(t, 5, *limit)

	_, err = ParseLimit("five")
	assert.ErrorIs(t, err, ErrInvalidLimit)
}
