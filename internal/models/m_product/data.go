package m_product

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
// The photo column holds a JSON array of image references.
type Data struct {
	ID          int64
	Title       string
	Description string
	Price       int64
	Photo       spanner.NullString
	Status      string
	UserID      int64
	CategoryID  int64
	Room        string
	Material    string
	State       string
	Info        string
	Date        time.Time
	CartID      spanner.NullInt64
}
