package list_catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
	"github.com/light-bringer/market-service/internal/app/product/domain"
)

// fakeReadModel pages over a fixed number of listed products.
type fakeReadModel struct {
	total int64
	err   error
	calls []domain.SearchTerms
	sorts []domain.Sort
}

func (f *fakeReadModel) FetchPage(_ context.Context, terms domain.SearchTerms, pageSize int, sort domain.Sort) (*contracts.CatalogPage, error) {
	f.calls = append(f.calls, terms)
	f.sorts = append(f.sorts, sort)
	if f.err != nil {
		return nil, f.err
	}

	pages := domain.PagesCount(f.total, pageSize)
	products := make([]*domain.ProductView, 0)
	if terms.Page() <= pages {
		first := domain.Offset(terms.Page(), pageSize)
		for i := first; i < f.total && i < first+int64(pageSize); i++ {
			products = append(products, &domain.ProductView{Product: domain.Product{ID: f.total - i}})
		}
	}

	return &contracts.CatalogPage{Products: products, CurrentPage: terms.Page(), PagesCount: pages}, nil
}

func TestExecute_InRangePage(t *testing.T) {
	rm := &fakeReadModel{total: 25}
	q := NewQuery(rm, 12)

	page, err := q.Execute(context.Background(), &Request{Page: "2"})
	require.NoError(t, err)

	assert.Len(t, rm.calls, 1)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.PagesCount)
	assert.Len(t, page.Products, 12)
}

func TestExecute_ClampsPastLastPage(t *testing.T) {
	rm := &fakeReadModel{total: 25}
	q := NewQuery(rm, 12)

	page, err := q.Execute(context.Background(), &Request{Page: "9", Search: "lamp"})
	require.NoError(t, err)

	require.Len(t, rm.calls, 2)
	assert.Equal(t, 9, rm.calls[0].Page())
	assert.Equal(t, 3, rm.calls[1].Page())
	assert.Equal(t, "lamp", rm.calls[1].Search(), "retry keeps the search terms")
	assert.Equal(t, 3, page.CurrentPage)
	assert.Len(t, page.Products, 1)
}

func TestExecute_EmptyCatalog(t *testing.T) {
	t.Run("page 1 is fetched once", func(t *testing.T) {
		rm := &fakeReadModel{}
		page, err := NewQuery(rm, 12).Execute(context.Background(), &Request{})
		require.NoError(t, err)

		assert.Len(t, rm.calls, 1)
		assert.Equal(t, 0, page.PagesCount)
		assert.Empty(t, page.Products)
	})

	t.Run("later page falls back to page 1", func(t *testing.T) {
		rm := &fakeReadModel{}
		page, err := NewQuery(rm, 12).Execute(context.Background(), &Request{Page: "4"})
		require.NoError(t, err)

		require.Len(t, rm.calls, 2)
		assert.Equal(t, 1, rm.calls[1].Page())
		assert.Equal(t, 1, page.CurrentPage)
		assert.Empty(t, page.Products)
	})
}

func TestExecute_Sort(t *testing.T) {
	rm := &fakeReadModel{total: 3}
	_, err := NewQuery(rm, 12).Execute(context.Background(), &Request{Sort: "price", Direction: "asc"})
	require.NoError(t, err)
	assert.Equal(t, "p.price", rm.sorts[0].Column())

	_, err = NewQuery(rm, 12).Execute(context.Background(), &Request{Sort: "password"})
	assert.ErrorIs(t, err, domain.ErrInvalidSort)
	assert.Len(t, rm.calls, 1, "invalid sort never reaches the store")
}

func TestExecute_StoreError(t *testing.T) {
	boom := errors.New("unavailable")
	_, err := NewQuery(&fakeReadModel{err: boom}, 12).Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, boom)
}
