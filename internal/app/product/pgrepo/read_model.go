package pgrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
	"github.com/light-bringer/market-service/internal/app/product/domain"
	"github.com/light-bringer/market-service/internal/app/product/statements"
	"github.com/light-bringer/market-service/internal/pkg/pgdb"
	"github.com/light-bringer/market-service/internal/pkg/query"
)

// ReadModel implements CatalogReadModel for PostgreSQL.
type ReadModel struct {
	db *pgdb.DB
}

// NewReadModel creates a catalog read model over db.
func NewReadModel(db *pgdb.DB) contracts.CatalogReadModel {
	return &ReadModel{db: db}
}

// FetchPage counts and fetches one catalog page in a single
// REPEATABLE READ snapshot.
func (rm *ReadModel) FetchPage(ctx context.Context, terms domain.SearchTerms, pageSize int, sort domain.Sort) (*contracts.CatalogPage, error) {
	pageSize = domain.NormalizePageSize(pageSize)

	var total int64
	var products []*domain.ProductView

	err := rm.db.ReadSnapshot(ctx, func(tx pgx.Tx) error {
		count := statements.CatalogCount(query.Postgres, terms)
		if err := tx.QueryRow(ctx, count.SQL, count.Args...).Scan(&total); err != nil {
			return fmt.Errorf("failed to count catalog: %w", err)
		}

		var err error
		products, err = queryViews(ctx, tx, statements.CatalogPage(query.Postgres, terms, pageSize, sort))
		if err != nil {
			return fmt.Errorf("failed to fetch catalog page: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &contracts.CatalogPage{
		Products:    products,
		CurrentPage: terms.Page(),
		PagesCount:  domain.PagesCount(total, pageSize),
	}, nil
}
