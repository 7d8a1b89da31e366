// Package storetest holds the behavior every product store must show,
// run by the Spanner and PostgreSQL integration tests alike.
package storetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
	"github.com/light-bringer/market-service/internal/app/product/domain"
	"github.com/light-bringer/market-service/internal/models/m_cart"
	"github.com/light-bringer/market-service/internal/models/m_category"
	"github.com/light-bringer/market-service/internal/models/m_user"
	"github.com/light-bringer/market-service/internal/pkg/clock"
	"github.com/light-bringer/market-service/internal/testutil"
)

// Now is the mock clock's start; fixture dates are relative to it.
var Now = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

// Harness is one backend under test.
type Harness struct {
	ReadModel contracts.CatalogReadModel
	Lifecycle contracts.LifecycleStore
	Products  contracts.ProductRepository
	Seeder    testutil.Seeder
	// Clock must be the clock Lifecycle was built with.
	Clock *clock.MockClock
}

const (
	seller = int64(1)
	buyer  = int64(2)
	kitch  = int64(10)
	garden = int64(11)
)

func seedBase(t *testing.T, h *Harness) {
	t.Helper()
	h.Seeder.Clean(t)
	h.Clock.Set(Now)

	h.Seeder.User(t, &m_user.Data{ID: seller, Pseudo: "seller", Rating: 4.5, Email: "s@example.com", Address: "1 Main St", PhoneNumber: "0102"})
	h.Seeder.User(t, &m_user.Data{ID: buyer, Pseudo: "buyer", Rating: 3})
	h.Seeder.Category(t, &m_category.Data{ID: kitch, Title: "Kitchen", Logo: "kitchen.svg"})
	h.Seeder.Category(t, &m_category.Data{ID: garden, Title: "Garden"})
}

func int64p(v int64) *int64 { return &v }

// Run executes every scenario against h.
func Run(t *testing.T, h *Harness) {
	t.Run("catalog paging", func(t *testing.T) { catalogPaging(t, h) })
	t.Run("catalog paging with tied sort keys", func(t *testing.T) { catalogPagingTies(t, h) })
	t.Run("catalog visibility", func(t *testing.T) { catalogVisibility(t, h) })
	t.Run("catalog search and sort", func(t *testing.T) { catalogSearchAndSort(t, h) })
	t.Run("user scopes", func(t *testing.T) { userScopes(t, h) })
	t.Run("bought window", func(t *testing.T) { boughtWindow(t, h) })
	t.Run("latest", func(t *testing.T) { latest(t, h) })
	t.Run("by id", func(t *testing.T) { byID(t, h) })
	t.Run("photos", func(t *testing.T) { photos(t, h) })
	t.Run("insert and delete", func(t *testing.T) { insertAndDelete(t, h) })
	t.Run("non-positive price rejected", func(t *testing.T) { nonPositivePrice(t, h) })
}

func catalogPaging(t *testing.T, h *Harness) {
	seedBase(t, h)
	ctx := context.Background()

	for i := int64(1); i <= 25; i++ {
		h.Seeder.Product(t, &testutil.ProductFixture{
			ID: i, Title: fmt.Sprintf("item %02d", i), UserID: seller, CategoryID: kitch,
			Date: Now.Add(time.Duration(i) * time.Minute),
		})
	}

	all := domain.NewSearchTerms("", "", "")
	seen := make(map[int64]bool)
	for page := 1; page <= 3; page++ {
		got, err := h.ReadModel.FetchPage(ctx, all.WithPage(page), 12, domain.DefaultSort())
		require.NoError(t, err)
		assert.Equal(t, page, got.CurrentPage)
		assert.Equal(t, 3, got.PagesCount)
		for _, p := range got.Products {
			assert.False(t, seen[p.ID], "product %d on two pages", p.ID)
			seen[p.ID] = true
		}
		if page < 3 {
			assert.Len(t, got.Products, 12)
		} else {
			assert.Len(t, got.Products, 1)
		}
	}
	assert.Len(t, seen, 25)

	first, err := h.ReadModel.FetchPage(ctx, all, 12, domain.DefaultSort())
	require.NoError(t, err)
	assert.Equal(t, int64(25), first.Products[0].ID, "newest first by default")
	assert.Equal(t, "seller", first.Products[0].Seller.Pseudo)

	past, err := h.ReadModel.FetchPage(ctx, all.WithPage(4), 12, domain.DefaultSort())
	require.NoError(t, err)
	assert.Empty(t, past.Products)
	assert.Equal(t, 4, past.CurrentPage)
	assert.Equal(t, 3, past.PagesCount)
	assert.True(t, past.OutOfRange())
}

func catalogPagingTies(t *testing.T, h *Harness) {
	seedBase(t, h)
	ctx := context.Background()

	// same date and price on every row: only the id tells them apart
	for i := int64(1); i <= 25; i++ {
		h.Seeder.Product(t, &testutil.ProductFixture{
			ID: i, Title: fmt.Sprintf("twin %02d", i), Price: 500, UserID: seller, CategoryID: kitch, Date: Now,
		})
	}

	byPrice, err := domain.ParseSort("price", "asc")
	require.NoError(t, err)

	tests := []struct {
		name  string
		sort  domain.Sort
		first int64
	}{
		{"default sort", domain.DefaultSort(), 25},
		{"price ascending", byPrice, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			all := domain.NewSearchTerms("", "", "")
			var ids []int64
			seen := make(map[int64]bool)
			for page := 1; page <= 3; page++ {
				got, err := h.ReadModel.FetchPage(ctx, all.WithPage(page), 12, tt.sort)
				require.NoError(t, err)
				for _, p := range got.Products {
					assert.False(t, seen[p.ID], "product %d on two pages", p.ID)
					seen[p.ID] = true
					ids = append(ids, p.ID)
				}
			}
			require.Len(t, ids, 25)
			assert.Equal(t, tt.first, ids[0], "ties ordered by id in the sort direction")
		})
	}
}

func catalogVisibility(t *testing.T, h *Harness) {
	seedBase(t, h)
	ctx := context.Background()

	h.Seeder.Cart(t, &m_cart.Data{ID: 1, UserID: buyer, StatusValidation: false, Date: Now})
	h.Seeder.Product(t, &testutil.ProductFixture{ID: 1, Title: "listed", UserID: seller, CategoryID: kitch, Date: Now})
	h.Seeder.Product(t, &testutil.ProductFixture{ID: 2, Title: "in cart", UserID: seller, CategoryID: kitch, Date: Now, CartID: int64p(1)})
	h.Seeder.Product(t, &testutil.ProductFixture{ID: 3, Title: "sold", Status: "sold", UserID: seller, CategoryID: kitch, Date: Now, CartID: int64p(1)})

	page, err := h.ReadModel.FetchPage(ctx, domain.NewSearchTerms("", "", ""), 12, domain.DefaultSort())
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "listed", page.Products[0].Title)
	assert.Equal(t, 1, page.PagesCount, "count applies the same visibility rule")

	empty, err := h.ReadModel.FetchPage(ctx, domain.NewSearchTerms("", "sold", ""), 12, domain.DefaultSort())
	require.NoError(t, err)
	assert.Empty(t, empty.Products)
	assert.Equal(t, 0, empty.PagesCount)
}

func catalogSearchAndSort(t *testing.T, h *Harness) {
	seedBase(t, h)
	ctx := context.Background()

	h.Seeder.Product(t, &testutil.ProductFixture{ID: 1, Title: "Desk Lamp", Price: 3000, UserID: seller, CategoryID: kitch, Date: Now})
	h.Seeder.Product(t, &testutil.ProductFixture{ID: 2, Title: "lamp shade", Price: 1000, UserID: seller, CategoryID: garden, Date: Now})
	h.Seeder.Product(t, &testutil.ProductFixture{ID: 3, Title: "100% wool rug", Price: 2000, UserID: seller, CategoryID: kitch, Date: Now})

	byPrice, err := domain.ParseSort("price", "asc")
	require.NoError(t, err)

	titles := func(terms domain.SearchTerms) []string {
		page, err := h.ReadModel.FetchPage(ctx, terms, 12, byPrice)
		require.NoError(t, err)
		out := make([]string, 0, len(page.Products))
		for _, p := range page.Products {
			out = append(out, p.Title)
		}
		return out
	}

	assert.Equal(t, []string{"lamp shade", "Desk Lamp"}, titles(domain.NewSearchTerms("", "LAMP", "")))
	assert.Equal(t, []string{"Desk Lamp"}, titles(domain.NewSearchTerms("", "lamp", "10")))
	assert.Equal(t, []string{"100% wool rug", "Desk Lamp"}, titles(domain.NewSearchTerms("", "", "10")))
	assert.Equal(t, []string{"100% wool rug"}, titles(domain.NewSearchTerms("", "0%", "")), "percent matches literally")
	assert.Empty(t, titles(domain.NewSearchTerms("", "_", "")), "underscore matches literally")
}

func userScopes(t *testing.T, h *Harness) {
	seedBase(t, h)
	ctx := context.Background()

	h.Seeder.Cart(t, &m_cart.Data{ID: 1, UserID: buyer, StatusValidation: false, Date: Now})
	h.Seeder.Cart(t, &m_cart.Data{ID: 2, UserID: buyer, StatusValidation: true, Date: Now.Add(-time.Hour)})
	h.Seeder.Product(t, &testutil.ProductFixture{ID: 1, Title: "listed", UserID: seller, CategoryID: kitch, Date: Now})
	h.Seeder.Product(t, &testutil.ProductFixture{ID: 2, Title: "reserved", UserID: seller, CategoryID: kitch, Date: Now, CartID: int64p(1)})
	h.Seeder.Product(t, &testutil.ProductFixture{ID: 3, Title: "sold", Status: "sold", UserID: seller, CategoryID: kitch, Date: Now, CartID: int64p(2)})

	ids := func(views []*domain.ProductView, err error) []int64 {
		require.NoError(t, err)
		out := make([]int64, 0, len(views))
		for _, v := range views {
			out = append(out, v.ID)
		}
		return out
	}

	assert.Equal(t, []int64{2, 1}, ids(h.Lifecycle.InSaleByUser(ctx, seller)))
	assert.Equal(t, []int64{3, 2}, ids(h.Lifecycle.InCartByUser(ctx, seller)))
	assert.Equal(t, []int64{3}, ids(h.Lifecycle.SoldByUser(ctx, seller)))
	assert.Equal(t, []int64{3}, ids(h.Lifecycle.BoughtByUser(ctx, buyer)))
	assert.Empty(t, ids(h.Lifecycle.BoughtByUser(ctx, seller)))
	assert.Empty(t, ids(h.Lifecycle.InSaleByUser(ctx, buyer)))
}

func boughtWindow(t *testing.T, h *Harness) {
	seedBase(t, h)
	ctx := context.Background()

	h.Seeder.Cart(t, &m_cart.Data{ID: 1, UserID: buyer, StatusValidation: true, Date: Now})
	h.Seeder.Product(t, &testutil.ProductFixture{ID: 1, Title: "chair", Status: "sold", UserID: seller, CategoryID: kitch, Date: Now, CartID: int64p(1)})

	h.Clock.Set(Now.Add(domain.BoughtWindow - time.Second))
	views, err := h.Lifecycle.BoughtByUser(ctx, buyer)
	require.NoError(t, err)
	assert.Len(t, views, 1)

	h.Clock.Set(Now.Add(domain.BoughtWindow))
	views, err = h.Lifecycle.BoughtByUser(ctx, buyer)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func latest(t *testing.T, h *Harness) {
	seedBase(t, h)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		status := "for_sale"
		if i == 5 {
			status = "sold"
		}
		h.Seeder.Product(t, &testutil.ProductFixture{ID: i, Title: fmt.Sprintf("p%d", i), Status: status, UserID: seller, CategoryID: kitch, Date: Now})
	}

	views, err := h.Lifecycle.Latest(ctx, 3)
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, int64(5), views[0].ID, "latest includes every status")
	assert.Equal(t, int64(3), views[2].ID)

	all, err := h.Lifecycle.Latest(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func byID(t *testing.T, h *Harness) {
	seedBase(t, h)
	ctx := context.Background()

	h.Seeder.Product(t, &testutil.ProductFixture{ID: 7, Title: "kettle", Price: 1500, UserID: seller, CategoryID: kitch, Date: Now})

	view, err := h.Lifecycle.ByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "kettle", view.Title)
	assert.Equal(t, int64(1500), view.Price)
	assert.Equal(t, 4.5, view.Seller.Rating)
	assert.True(t, view.CreatedAt.Equal(Now))

	detail, err := h.Lifecycle.ByIDWithCategory(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen", detail.Category.Title)
	assert.Equal(t, "kitchen.svg", detail.Category.Logo)
	assert.Equal(t, "s@example.com", detail.Seller.Email)
	assert.Equal(t, "0102", detail.Seller.Phone)

	_, err = h.Lifecycle.ByID(ctx, 8)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	_, err = h.Lifecycle.ByIDWithCategory(ctx, 8)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func photos(t *testing.T, h *Harness) {
	seedBase(t, h)
	ctx := context.Background()

	h.Seeder.Product(t, &testutil.ProductFixture{ID: 1, Title: "vase", UserID: seller, CategoryID: kitch, Date: Now})

	h.Seeder.RawPhoto(t, 1, nil)
	view, err := h.Lifecycle.ByID(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, view.Photos)
	assert.Empty(t, view.Photos)

	malformed := "not json"
	h.Seeder.RawPhoto(t, 1, &malformed)
	_, err = h.Lifecycle.ByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrMalformedPhoto)
}

func insertAndDelete(t *testing.T, h *Harness) {
	seedBase(t, h)
	ctx := context.Background()

	h.Seeder.Product(t, &testutil.ProductFixture{ID: 40, Title: "old", UserID: seller, CategoryID: kitch, Date: Now})

	product, err := domain.NewProduct(domain.NewProductInput{
		Title: "Bookcase", Description: "Five shelves", Price: 4500,
		Photos: []string{"a.jpg", "b.jpg"}, OwnerID: seller, CategoryID: kitch,
		Room: "study", Material: "pine", Condition: "used", Info: "disassembled",
	}, Now)
	require.NoError(t, err)

	id, err := h.Products.Insert(ctx, product)
	require.NoError(t, err)
	assert.Greater(t, id, int64(40), "new ids follow existing ones")

	view, err := h.Lifecycle.ByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, view.Photos)
	assert.True(t, view.Listed())

	latest, err := h.Lifecycle.Latest(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, id, latest[0].ID)

	require.NoError(t, h.Products.Delete(ctx, id))
	require.NoError(t, h.Products.Delete(ctx, id), "deleting twice is not an error")

	_, err = h.Lifecycle.ByID(ctx, id)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func nonPositivePrice(t *testing.T, h *Harness) {
	seedBase(t, h)
	ctx := context.Background()

	product, err := domain.NewProduct(domain.NewProductInput{
		Title: "Stool", Description: "Three legs", Price: 900,
		Photos: []string{"s.jpg"}, OwnerID: seller, CategoryID: kitch,
		Room: "kitchen", Material: "oak", Condition: "used", Info: "wobbly",
	}, Now)
	require.NoError(t, err)

	// written around the constructor's validation
	product.Price = 0
	_, err = h.Products.Insert(ctx, product)
	require.Error(t, err, "the schema rejects a zero price")

	latest, err := h.Lifecycle.Latest(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, latest)
}
