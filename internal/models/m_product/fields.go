package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ID          = "id"
	Title       = "title"
	Description = "description"
	Price       = "price"
	Photo       = "photo"
	Status      = "status"
	UserID      = "user_id"
	CategoryID  = "category_item_id"
	Room        = "room"
	Material    = "material"
	State       = "state"
	Info        = "info"
	Date        = "date"
	CartID      = "cart_id"
)

// Columns lists every products column in storage order.
var Columns = []string{
	ID,
	Title,
	Description,
	Price,
	Photo,
	Status,
	UserID,
	CategoryID,
	Room,
	Material,
	State,
	Info,
	Date,
	CartID,
}

// Qualified prefixes each column with alias, for SELECTs over joins.
func Qualified(alias string) []string {
	cols := make([]string, len(Columns))
	for i, col := range Columns {
		cols[i] = alias + "." + col
	}
	return cols
}
