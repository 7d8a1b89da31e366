package list_user_products

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

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func seed(t *testing.T) (*Query, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(now)
	store := testutil.NewMemoryStore(clk)
	ctx := context.Background()

	store.AddCart(testutil.Cart{ID: 1, UserID: 2, Validated: true, Date: now.Add(-2 * 24 * time.Hour)})
	store.AddCart(testutil.Cart{ID: 2, UserID: 2, Validated: true, Date: now.Add(-8 * 24 * time.Hour)})
	store.AddCart(testutil.Cart{ID: 3, UserID: 3, Validated: false, Date: now})

	cart := func(id int64) *int64 { return &id }
	products := []domain.Product{
		{Title: "listed", OwnerID: 1, Status: domain.StatusForSale},
		{Title: "reserved", OwnerID: 1, Status: domain.StatusForSale, CartID: cart(3)},
		{Title: "bought recently", OwnerID: 1, Status: domain.StatusSold, CartID: cart(1)},
		{Title: "bought long ago", OwnerID: 1, Status: domain.StatusSold, CartID: cart(2)},
	}
	for i := range products {
		_, err := store.Insert(ctx, &products[i])
		require.NoError(t, err)
	}

	return NewQuery(store), clk
}

func titles(views []*domain.ProductView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Title)
	}
	return out
}

func TestExecute_Scopes(t *testing.T) {
	q, _ := seed(t)
	ctx := context.Background()

	tests := []struct {
		req  Request
		want []string
	}{
		{Request{UserID: 1, Scope: ScopeInSale}, []string{"reserved", "listed"}},
		{Request{UserID: 1, Scope: ScopeInCart}, []string{"bought long ago", "bought recently", "reserved"}},
		{Request{UserID: 1, Scope: ScopeSold}, []string{"bought long ago", "bought recently"}},
		{Request{UserID: 2, Scope: ScopeBought}, []string{"bought recently"}},
		{Request{UserID: 3, Scope: ScopeBought}, []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.req.Scope), func(t *testing.T) {
			views, err := q.Execute(ctx, &tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(views))
		})
	}
}

func TestExecute_BoughtWindowFollowsClock(t *testing.T) {
	q, clk := seed(t)
	ctx := context.Background()

	clk.Advance(5*24*time.Hour - time.Second)
	views, err := q.Execute(ctx, &Request{UserID: 2, Scope: ScopeBought})
	require.NoError(t, err)
	assert.Len(t, views, 1)

	clk.Advance(time.Second)
	views, err = q.Execute(ctx, &Request{UserID: 2, Scope: ScopeBought})
	require.NoError(t, err)
	assert.Empty(t, views, "cart validated exactly seven days ago has left the window")
}

func TestExecute_UnknownScope(t *testing.T) {
	q, _ := seed(t)
	_, err := q.Execute(context.Background(), &Request{UserID: 1, Scope: "wishlist"})
	assert.ErrorIs(t, err, ErrUnknownScope)
}
