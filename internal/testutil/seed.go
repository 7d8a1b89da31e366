package testutil

import (
	"testing"
	"time"

	"github.com/light-bringer/market-service/internal/models/m_cart"
	"github.com/light-bringer/market-service/internal/models/m_category"
	"github.com/light-bringer/market-service/internal/models/m_product"
	"github.com/light-bringer/market-service/internal/models/m_user"
)

// Seeder writes fixture rows straight into a store, bypassing the
// repositories. Every row carries an explicit id.
type Seeder interface {
	User(t *testing.T, data *m_user.Data)
	Category(t *testing.T, data *m_category.Data)
	Cart(t *testing.T, data *m_cart.Data)
	Product(t *testing.T, data *ProductFixture)
	// RawPhoto overwrites a product's photo column, NULL when raw is nil.
	RawPhoto(t *testing.T, productID int64, raw *string)
	Clean(t *testing.T)
}

// ProductFixture is a products row with defaults for the fields tests
// rarely care about.
type ProductFixture struct {
	ID         int64
	Title      string
	Price      int64
	Photo      *string
	Status     string
	UserID     int64
	CategoryID int64
	Date       time.Time
	CartID     *int64
}

// Data fills the defaults and returns the row.
func (f *ProductFixture) Data() *m_product.Data {
	photo := `["photo.jpg"]`
	if f.Photo != nil {
		photo = *f.Photo
	}
	status := f.Status
	if status == "" {
		status = "for_sale"
	}
	price := f.Price
	if price == 0 {
		price = 1000
	}

	data := &m_product.Data{
		ID:          f.ID,
		Title:       f.Title,
		Description: "fixture product",
		Price:       price,
		Status:      status,
		UserID:      f.UserID,
		CategoryID:  f.CategoryID,
		Room:        "kitchen",
		Material:    "wood",
		State:       "good",
		Info:        "none",
		Date:        f.Date,
	}
	data.Photo.StringVal, data.Photo.Valid = photo, true
	if f.CartID != nil {
		data.CartID.Int64, data.CartID.Valid = *f.CartID, true
	}
	return data
}
