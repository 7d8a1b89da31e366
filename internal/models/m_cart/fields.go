package m_cart

import "time"

// Field name constants for the carts table.
const (
	TableName = "carts"

	ID               = "id"
	UserID           = "user_id"
	StatusValidation = "status_validation"
	Date             = "date"
)

// Data represents the database model for the carts table.
// Date is the validation date once StatusValidation is set.
type Data struct {
	ID               int64
	UserID           int64
	StatusValidation bool
	Date             time.Time
}

// Columns lists every carts column in storage order.
var Columns = []string{ID, UserID, StatusValidation, Date}

// Values returns the column values of d in Columns order.
func (d *Data) Values() []interface{} {
	return []interface{}{d.ID, d.UserID, d.StatusValidation, d.Date}
}
