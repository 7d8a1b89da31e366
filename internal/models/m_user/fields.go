package m_user

// Field name constants for the users table.
// The marketplace core only reads users; rows are owned by the account service.
const (
	TableName = "users"

	ID          = "id"
	Pseudo      = "pseudo"
	Photo       = "photo"
	Rating      = "rating"
	Address     = "address"
	Email       = "email"
	PhoneNumber = "phone_number"
)

// Data represents the database model for the users table.
type Data struct {
	ID          int64
	Pseudo      string
	Photo       string
	Rating      float64
	Address     string
	Email       string
	PhoneNumber string
}

// Columns lists every users column in storage order.
var Columns = []string{ID, Pseudo, Photo, Rating, Address, Email, PhoneNumber}

// Values returns the column values of d in Columns order.
func (d *Data) Values() []interface{} {
	return []interface{}{d.ID, d.Pseudo, d.Photo, d.Rating, d.Address, d.Email, d.PhoneNumber}
}
