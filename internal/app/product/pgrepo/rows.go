// Package pgrepo implements the product contracts on PostgreSQL.
// It renders the same statements as the Spanner store in the
// PostgreSQL dialect and scans them with pgx.
package pgrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/light-bringer/market-service/internal/app/product/domain"
	"github.com/light-bringer/market-service/internal/pkg/query"
)

// querier is satisfied by the pool wrapper and by pgx transactions.
type querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// productRow holds scan targets for the product columns.
type productRow struct {
	id          int64
	title       string
	description string
	price       int64
	photo       *string
	status      string
	userID      int64
	categoryID  int64
	room        string
	material    string
	state       string
	info        string
	date        time.Time
	cartID      *int64
}

// pointers returns scan targets in m_product.Columns order.
func (r *productRow) pointers() []interface{} {
	return []interface{}{
		&r.id,
		&r.title,
		&r.description,
		&r.price,
		&r.photo,
		&r.status,
		&r.userID,
		&r.categoryID,
		&r.room,
		&r.material,
		&r.state,
		&r.info,
		&r.date,
		&r.cartID,
	}
}

func (r *productRow) toDomain() (*domain.Product, error) {
	photos, err := domain.DecodePhotos(deref(r.photo))
	if err != nil {
		return nil, fmt.Errorf("product %d: %w", r.id, err)
	}

	return &domain.Product{
		ID:          r.id,
		Title:       r.title,
		Description: r.description,
		Price:       r.price,
		Photos:      photos,
		Status:      domain.ProductStatus(r.status),
		OwnerID:     r.userID,
		CategoryID:  r.categoryID,
		Room:        r.room,
		Material:    r.material,
		Condition:   r.state,
		Info:        r.info,
		CreatedAt:   r.date.UTC(),
		CartID:      r.cartID,
	}, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

// scanView decodes a product row followed by statements.SellerColumns.
func scanView(row pgx.Row) (*domain.ProductView, error) {
	var data productRow
	var pseudo, photo *string
	var rating *float64

	dest := append(data.pointers(), &pseudo, &photo, &rating)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	product, err := data.toDomain()
	if err != nil {
		return nil, err
	}

	return &domain.ProductView{
		Product: *product,
		Seller: domain.Seller{
			Pseudo: deref(pseudo),
			Photo:  deref(photo),
			Rating: deref(rating),
		},
	}, nil
}

// queryViews runs stmt and decodes every row as a ProductView.
func queryViews(ctx context.Context, q querier, stmt query.Statement) ([]*domain.ProductView, error) {
	rows, err := q.Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]*domain.ProductView, 0)
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return views, nil
}
