package pgrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
	"github.com/light-bringer/market-service/internal/app/product/domain"
	"github.com/light-bringer/market-service/internal/models/m_product"
	"github.com/light-bringer/market-service/internal/pkg/pgdb"
	"github.com/light-bringer/market-service/internal/pkg/query"
)

// insertColumns are the product columns written on insert; id comes from
// the table's identity sequence.
var insertColumns = m_product.Columns[1:]

var (
	insertSQL = buildInsertSQL()
	deleteSQL = "DELETE FROM " + m_product.TableName + " WHERE " + m_product.ID + " = $1"
)

func buildInsertSQL() string {
	placeholders := make([]string, len(insertColumns))
	for i := range insertColumns {
		placeholders[i] = query.Postgres.Placeholder(i)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		m_product.TableName,
		strings.Join(insertColumns, ", "),
		strings.Join(placeholders, ", "),
		m_product.ID,
	)
}

// ProductRepo implements ProductRepository for PostgreSQL.
type ProductRepo struct {
	db *pgdb.DB
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(db *pgdb.DB) contracts.ProductRepository {
	return &ProductRepo{db: db}
}

// Insert writes the product and returns the id the sequence assigned.
func (r *ProductRepo) Insert(ctx context.Context, product *domain.Product) (int64, error) {
	photo, err := domain.EncodePhotos(product.Photos)
	if err != nil {
		return 0, fmt.Errorf("failed to encode photos: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, insertSQL,
		product.Title,
		product.Description,
		product.Price,
		photo,
		string(product.Status),
		product.OwnerID,
		product.CategoryID,
		product.Room,
		product.Material,
		product.Condition,
		product.Info,
		product.CreatedAt,
		product.CartID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}
	return id, nil
}

// Delete removes a product; deleting a missing id affects no rows.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, deleteSQL, id); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}
