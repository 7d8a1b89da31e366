package get_product

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

func TestExecute(t *testing.T) {
	store := testutil.NewMemoryStore(clock.NewMockClock(time.Now()))
	store.AddSeller(5, domain.SellerContact{Pseudo: "marie", Email: "marie@example.com", Rating: 4.5})
	ctx := context.Background()

	id, err := store.Insert(ctx, &domain.Product{Title: "Chair", OwnerID: 5, Status: domain.StatusSold})
	require.NoError(t, err)

	q := NewQuery(store)

	view, err := q.Execute(ctx, &Request{ProductID: id})
	require.NoError(t, err)
	assert.Equal(t, "Chair", view.Title)
	assert.Equal(t, "marie", view.Seller.Pseudo)

	detail, err := q.Detail(ctx, &Request{ProductID: id})
	require.NoError(t, err)
	assert.Equal(t, "marie@example.com", detail.Seller.Email)
}

func TestExecute_NotFound(t *testing.T) {
	q := NewQuery(testutil.NewMemoryStore(clock.NewRealClock()))
	ctx := context.Background()

	for _, id := range []int64{-1, 0, 99} {
		_, err := q.Execute(ctx, &Request{ProductID: id})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)

		_, err = q.Detail(ctx, &Request{ProductID: id})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	}
}
