package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/market-service/internal/app/product/domain"
)

func TestProducts(t *testing.T) {
	cart := int64(9)
	views := []*domain.ProductView{
		{
			Product: domain.Product{ID: 2, Title: "Lamp", Price: 1250, Status: domain.StatusForSale, CreatedAt: time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)},
			Seller:  domain.Seller{Pseudo: "ana"},
		},
		{
			Product: domain.Product{ID: 1, Title: "Rug", Price: 700, Status: domain.StatusForSale, CartID: &cart},
			Seller:  domain.Seller{Pseudo: "ana"},
		},
	}

	var buf bytes.Buffer
	Products(&buf, views)
	out := buf.String()

	assert.Contains(t, out, "Lamp")
	assert.Contains(t, out, "12.50")
	assert.Contains(t, out, "2026-05-04")
	assert.Contains(t, out, "in cart")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 3)
}

func TestProducts_Empty(t *testing.T) {
	var buf bytes.Buffer
	Products(&buf, nil)
	assert.Contains(t, buf.String(), "No products.")
}

func TestDetail(t *testing.T) {
	var buf bytes.Buffer
	Detail(&buf, &domain.ProductDetail{
		Product:  domain.Product{Title: "Sofa", Description: "Three seats", Price: 30000, Status: domain.StatusSold, Photos: []string{"a.jpg", "b.jpg"}},
		Category: domain.Category{Title: "Living room"},
		Seller:   domain.SellerContact{Pseudo: "leo", Email: "leo@example.com", Rating: 4.3},
	})
	out := buf.String()

	assert.Contains(t, out, "Sofa")
	assert.Contains(t, out, "300.00")
	assert.Contains(t, out, "Living room")
	assert.Contains(t, out, "a.jpg, b.jpg")
	assert.Contains(t, out, "leo (4.3)")
	assert.Contains(t, out, "sold")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, map[string]int{"pages": 3}))
	assert.Equal(t, "{\n  \"pages\": 3\n}\n", buf.String())
}

func TestPrice(t *testing.T) {
	assert.Equal(t, "0.05", Price(5))
	assert.Equal(t, "120.00", Price(12000))
}
