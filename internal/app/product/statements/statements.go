// Package statements renders every product read as SQL for a given
// dialect, so the Spanner and PostgreSQL stores share one query shape.
package statements

import (
	"time"

	"github.com/light-bringer/market-service/internal/app/product/domain"
	"github.com/light-bringer/market-service/internal/models/m_cart"
	"github.com/light-bringer/market-service/internal/models/m_category"
	"github.com/light-bringer/market-service/internal/models/m_product"
	"github.com/light-bringer/market-service/internal/models/m_user"
	"github.com/light-bringer/market-service/internal/pkg/query"
)

// SellerColumns are the user fields appended to every ProductView row,
// after the product columns.
var SellerColumns = []string{"u." + m_user.Pseudo, "u." + m_user.Photo, "u." + m_user.Rating}

// DetailColumns are the category and seller fields appended to a
// ProductDetail row, after the product columns.
var DetailColumns = []string{
	"ci." + m_category.Title,
	"ci." + m_category.Logo,
	"u." + m_user.Pseudo,
	"u." + m_user.Address,
	"u." + m_user.Email,
	"u." + m_user.PhoneNumber,
	"u." + m_user.Rating,
}

var (
	productsTable   = m_product.TableName + " p"
	usersTable      = m_user.TableName + " u"
	cartsTable      = m_cart.TableName + " c"
	categoriesTable = m_category.TableName + " ci"

	ownerColumn = "p." + m_product.UserID
	idColumn    = "p." + m_product.ID
)

// views is the base SELECT of ProductView rows: products joined with their seller.
func views(d query.Dialect) *query.Builder {
	return query.From(productsTable).
		Dialect(d).
		Select(m_product.Qualified("p")...).
		Select(SellerColumns...).
		Join(usersTable, ownerColumn+" = u."+m_user.ID)
}

// CatalogCount counts the products a catalog page is cut from.
func CatalogCount(d query.Dialect, terms domain.SearchTerms) query.Statement {
	return views(d).Where(domain.CatalogConditions(terms)...).Count().Build()
}

// CatalogPage fetches one catalog page. Rows with equal sort keys are
// ordered by id in the same direction, so consecutive pages partition
// the listed products.
func CatalogPage(d query.Dialect, terms domain.SearchTerms, pageSize int, sort domain.Sort) query.Statement {
	b := views(d).
		Where(domain.CatalogConditions(terms)...).
		OrderBy(sort.Column(), sort.Direction())
	if sort.Column() != idColumn {
		b = b.ThenBy(idColumn, sort.Direction())
	}
	return b.
		Limit(int64(pageSize)).
		Offset(domain.Offset(terms.Page(), pageSize)).
		Build()
}

// BoughtByUser selects products in the user's validated carts whose
// validation date is after since.
func BoughtByUser(d query.Dialect, userID int64, since time.Time) query.Statement {
	return views(d).
		Join(cartsTable, "p."+m_product.CartID+" = c."+m_cart.ID).
		Where(
			query.Eq("c."+m_cart.UserID, userID),
			query.IsTrue("c."+m_cart.StatusValidation),
			query.Gt("c."+m_cart.Date, since),
		).
		OrderBy(idColumn, query.Desc).
		Build()
}

// InSaleByUser selects the user's for-sale products, cart-linked included.
func InSaleByUser(d query.Dialect, userID int64) query.Statement {
	return views(d).
		Where(
			query.Eq(ownerColumn, userID),
			query.Eq(domain.StatusColumn, string(domain.StatusForSale)),
		).
		OrderBy(idColumn, query.Desc).
		Build()
}

// InCartByUser selects the user's products reserved by any cart.
func InCartByUser(d query.Dialect, userID int64) query.Statement {
	return views(d).
		Where(
			query.Eq(ownerColumn, userID),
			query.IsNotNull(domain.CartColumn),
		).
		OrderBy(idColumn, query.Desc).
		Build()
}

// SoldByUser selects the user's sold products.
func SoldByUser(d query.Dialect, userID int64) query.Statement {
	return views(d).
		Where(
			query.Eq(ownerColumn, userID),
			query.Eq(domain.StatusColumn, string(domain.StatusSold)),
		).
		OrderBy(idColumn, query.Desc).
		Build()
}

// Latest selects the newest products; limit <= 0 selects all of them.
func Latest(d query.Dialect, limit int) query.Statement {
	b := views(d).OrderBy(idColumn, query.Desc)
	if limit > 0 {
		b = b.Limit(int64(limit))
	}
	return b.Build()
}

// ByID selects one product with its seller.
func ByID(d query.Dialect, id int64) query.Statement {
	return views(d).Where(query.Eq(idColumn, id)).Build()
}

// ByIDWithCategory selects one product with its category and seller contact.
func ByIDWithCategory(d query.Dialect, id int64) query.Statement {
	return query.From(productsTable).
		Dialect(d).
		Select(m_product.Qualified("p")...).
		Select(DetailColumns...).
		Join(categoriesTable, "p."+m_product.CategoryID+" = ci."+m_category.ID).
		Join(usersTable, ownerColumn+" = u."+m_user.ID).
		Where(query.Eq(idColumn, id)).
		Build()
}
