package pgrepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertSQL(t *testing.T) {
	assert.Equal(t,
		"INSERT INTO products (title, description, price, photo, status, user_id, category_item_id, room, material, state, info, date, cart_id) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id",
		insertSQL)
	assert.Equal(t, "DELETE FROM products WHERE id = $1", deleteSQL)
}

func TestProductRow_ToDomain(t *testing.T) {
	photo := `["a.jpg"]`
	cartID := int64(4)
	row := productRow{id: 1, title: "Lamp", photo: &photo, status: "for_sale", cartID: &cartID}

	product, err := row.toDomain()
	assert.NoError(t, err)
	assert.Equal(t, []string{"a.jpg"}, product.Photos)
	assert.True(t, product.InCart())

	row.photo = nil
	product, err = row.toDomain()
	assert.NoError(t, err)
	assert.Empty(t, product.Photos)
	assert.NotNil(t, product.Photos)

	bad := "{oops"
	row.photo = &bad
	_, err = row.toDomain()
	assert.Error(t, err)
}
