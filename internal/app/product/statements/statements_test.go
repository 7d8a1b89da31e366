package statements

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/market-service/internal/app/product/domain"
	"github.com/light-bringer/market-service/internal/pkg/query"
)

const productColumns = "p.id, p.title, p.description, p.price, p.photo, p.status, p.user_id, p.category_item_id, p.room, p.material, p.state, p.info, p.date, p.cart_id"

func whereClause(sql string) string {
	where := sql[strings.Index(sql, " WHERE "):]
	if i := strings.Index(where, " ORDER BY "); i >= 0 {
		where = where[:i]
	}
	return where
}

func TestCatalog_CountAndPageShareVisibility(t *testing.T) {
	terms := domain.NewSearchTerms("4", "lamp", "3")
	sort, err := domain.ParseSort("price", "asc")
	require.NoError(t, err)

	count := CatalogCount(query.Spanner, terms)
	page := CatalogPage(query.Spanner, terms, 12, sort)

	assert.Equal(t,
		"SELECT COUNT(*) FROM products p JOIN users u ON p.user_id = u.id WHERE LOWER(p.title) LIKE @p0 AND p.category_item_id = @p1 AND p.status = @p2 AND p.cart_id IS NULL",
		count.SQL)
	assert.Equal(t, []interface{}{"%lamp%", int64(3), "for_sale"}, count.Args)

	assert.Equal(t,
		"SELECT "+productColumns+", u.pseudo, u.photo, u.rating FROM products p JOIN users u ON p.user_id = u.id WHERE LOWER(p.title) LIKE @p0 AND p.category_item_id = @p1 AND p.status = @p2 AND p.cart_id IS NULL ORDER BY p.price ASC, p.id ASC LIMIT @p3 OFFSET @p4",
		page.SQL)
	assert.Equal(t, []interface{}{"%lamp%", int64(3), "for_sale", int64(12), int64(36)}, page.Args)

	assert.Equal(t, whereClause(count.SQL), whereClause(page.SQL))
}

func TestCatalogPage_FirstPageHasNoOffset(t *testing.T) {
	page := CatalogPage(query.Postgres, domain.NewSearchTerms("", "", ""), 12, domain.DefaultSort())

	assert.True(t, strings.HasSuffix(page.SQL, "WHERE p.status = $1 AND p.cart_id IS NULL ORDER BY p.date DESC, p.id DESC LIMIT $2"), page.SQL)
	assert.Equal(t, []interface{}{"for_sale", int64(12)}, page.Args)
}

func TestCatalogPage_TieBreakOnID(t *testing.T) {
	terms := domain.NewSearchTerms("2", "", "")

	byPrice, err := domain.ParseSort("price", "asc")
	require.NoError(t, err)
	stmt := CatalogPage(query.Postgres, terms, 12, byPrice)
	assert.Contains(t, stmt.SQL, "ORDER BY p.price ASC, p.id ASC LIMIT $2 OFFSET $3")

	stmt = CatalogPage(query.Spanner, terms, 12, domain.DefaultSort())
	assert.Contains(t, stmt.SQL, "ORDER BY p.date DESC, p.id DESC LIMIT @p1 OFFSET @p2")

	// id is already unique
	byID, err := domain.ParseSort("id", "asc")
	require.NoError(t, err)
	stmt = CatalogPage(query.Spanner, terms, 12, byID)
	assert.Contains(t, stmt.SQL, "ORDER BY p.id ASC LIMIT")
}

func TestBoughtByUser(t *testing.T) {
	since := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	stmt := BoughtByUser(query.Postgres, 42, since)

	assert.Contains(t, stmt.SQL, "JOIN carts c ON p.cart_id = c.id")
	assert.Contains(t, stmt.SQL, "WHERE c.user_id = $1 AND c.status_validation = TRUE AND c.date > $2 ORDER BY p.id DESC")
	assert.Equal(t, []interface{}{int64(42), since}, stmt.Args)
}

func TestUserScopes(t *testing.T) {
	inSale := InSaleByUser(query.Spanner, 7)
	assert.Contains(t, inSale.SQL, "WHERE p.user_id = @p0 AND p.status = @p1 ORDER BY p.id DESC")
	assert.NotContains(t, inSale.SQL, "cart_id IS")
	assert.Equal(t, []interface{}{int64(7), "for_sale"}, inSale.Args)

	inCart := InCartByUser(query.Spanner, 7)
	assert.Contains(t, inCart.SQL, "WHERE p.user_id = @p0 AND p.cart_id IS NOT NULL ORDER BY p.id DESC")

	sold := SoldByUser(query.Spanner, 7)
	assert.Contains(t, sold.SQL, "WHERE p.user_id = @p0 AND p.status = @p1")
	assert.Equal(t, []interface{}{int64(7), "sold"}, sold.Args)
}

func TestLatest(t *testing.T) {
	all := Latest(query.Spanner, 0)
	assert.True(t, strings.HasSuffix(all.SQL, "ORDER BY p.id DESC"), all.SQL)
	assert.Empty(t, all.Args)

	five := Latest(query.Spanner, 5)
	assert.True(t, strings.HasSuffix(five.SQL, "ORDER BY p.id DESC LIMIT @p0"), five.SQL)
	assert.Equal(t, []interface{}{int64(5)}, five.Args)
}

func TestByIDWithCategory(t *testing.T) {
	stmt := ByIDWithCategory(query.Spanner, 11)

	assert.Equal(t,
		"SELECT "+productColumns+", ci.title, ci.logo, u.pseudo, u.address, u.email, u.phone_number, u.rating FROM products p JOIN category_items ci ON p.category_item_id = ci.id JOIN users u ON p.user_id = u.id WHERE p.id = @p0",
		stmt.SQL)
	assert.Equal(t, map[string]interface{}{"p0": int64(11)}, stmt.Params)
}
