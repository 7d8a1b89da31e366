package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/market-service/internal/app/product/domain"
	"github.com/light-bringer/market-service/internal/models/m_product"
)

// querier is satisfied by every Spanner read-only context
// (single-use reads and snapshot transactions).
type querier interface {
	Query(ctx context.Context, statement spanner.Statement) *spanner.RowIterator
}

// productPointers returns scan targets for the product columns, in m_product.Columns order.
func productPointers(data *m_product.Data) []interface{} {
	return []interface{}{
		&data.ID,
		&data.Title,
		&data.Description,
		&data.Price,
		&data.Photo,
		&data.Status,
		&data.UserID,
		&data.CategoryID,
		&data.Room,
		&data.Material,
		&data.State,
		&data.Info,
		&data.Date,
		&data.CartID,
	}
}

// dataToDomain converts database Data to a domain Product, decoding photos.
func dataToDomain(data *m_product.Data) (*domain.Product, error) {
	photos, err := domain.DecodePhotos(data.Photo.StringVal)
	if err != nil {
		return nil, fmt.Errorf("product %d: %w", data.ID, err)
	}

	product := &domain.Product{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Price:       data.Price,
		Photos:      photos,
		Status:      domain.ProductStatus(data.Status),
		OwnerID:     data.UserID,
		CategoryID:  data.CategoryID,
		Room:        data.Room,
		Material:    data.Material,
		Condition:   data.State,
		Info:        data.Info,
		CreatedAt:   data.Date,
	}
	if data.CartID.Valid {
		cartID := data.CartID.Int64
		product.CartID = &cartID
	}
	return product, nil
}

// scanView decodes a product row followed by statements.SellerColumns.
func scanView(row *spanner.Row) (*domain.ProductView, error) {
	var data m_product.Data
	var pseudo, photo spanner.NullString
	var rating spanner.NullFloat64

	dest := append(productPointers(&data), &pseudo, &photo, &rating)
	if err := row.Columns(dest...); err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	product, err := dataToDomain(&data)
	if err != nil {
		return nil, err
	}

	return &domain.ProductView{
		Product: *product,
		Seller: domain.Seller{
			Pseudo: pseudo.StringVal,
			Photo:  photo.StringVal,
			Rating: rating.Float64,
		},
	}, nil
}

// queryViews runs stmt and decodes every row as a ProductView.
func queryViews(ctx context.Context, q querier, stmt spanner.Statement) ([]*domain.ProductView, error) {
	iter := q.Query(ctx, stmt)
	defer iter.Stop()

	views := make([]*domain.ProductView, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		view, err := scanView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// queryInt64 runs a statement returning a single INT64 value.
func queryInt64(ctx context.Context, q querier, stmt spanner.Statement) (int64, error) {
	iter := q.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, err
	}
	return count, nil
}
