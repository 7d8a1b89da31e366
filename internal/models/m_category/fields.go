package m_category

// Field name constants for the category_items table.
const (
	TableName = "category_items"

	ID         = "id"
	Title      = "title"
	Logo       = "logo"
	InCarousel = "in_carousel"
)

// Data represents the database model for the category_items table.
type Data struct {
	ID         int64
	Title      string
	Logo       string
	InCarousel bool
}

// Columns lists every category_items column in storage order.
var Columns = []string{ID, Title, Logo, InCarousel}

// Values returns the column values of d in Columns order.
func (d *Data) Values() []interface{} {
	return []interface{}{d.ID, d.Title, d.Logo, d.InCarousel}
}
