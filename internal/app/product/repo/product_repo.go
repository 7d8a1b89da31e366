package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
	"github.com/light-bringer/market-service/internal/app/product/domain"
	"github.com/light-bringer/market-service/internal/models/m_product"
	"github.com/light-bringer/market-service/internal/pkg/committer"
)

// nextIDStatement allocates product ids in insertion order, which Latest relies on.
var nextIDStatement = spanner.Statement{
	SQL: "SELECT IFNULL(MAX(" + m_product.ID + "), 0) + 1 FROM " + m_product.TableName,
}

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	committer *committer.Committer
	model     *m_product.Model
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(comm *committer.Committer) contracts.ProductRepository {
	return &ProductRepo{
		committer: comm,
		model:     m_product.NewModel(),
	}
}

// Insert allocates the next id and writes the product in one read-write transaction.
func (r *ProductRepo) Insert(ctx context.Context, product *domain.Product) (int64, error) {
	data, err := domainToData(product)
	if err != nil {
		return 0, err
	}

	err = r.committer.ApplyWithReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		id, err := queryInt64(ctx, txn, nextIDStatement)
		if err != nil {
			return fmt.Errorf("failed to allocate product id: %w", err)
		}
		data.ID = id

		plan := committer.NewPlan()
		plan.Add(r.model.InsertMut(data))
		return txn.BufferWrite(plan.Mutations())
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert product: %w", err)
	}

	return data.ID, nil
}

// Delete removes a product. Spanner treats deleting a missing key as a no-op.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	plan := committer.NewPlan()
	plan.Add(r.model.DeleteMut(id))

	if err := r.committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	return nil
}

// domainToData converts a domain Product to database Data.
func domainToData(product *domain.Product) (*m_product.Data, error) {
	photo, err := domain.EncodePhotos(product.Photos)
	if err != nil {
		return nil, fmt.Errorf("failed to encode photos: %w", err)
	}

	data := &m_product.Data{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		Price:       product.Price,
		Photo:       spanner.NullString{StringVal: photo, Valid: true},
		Status:      string(product.Status),
		UserID:      product.OwnerID,
		CategoryID:  product.CategoryID,
		Room:        product.Room,
		Material:    product.Material,
		State:       product.Condition,
		Info:        product.Info,
		Date:        product.CreatedAt,
	}
	if product.CartID != nil {
		data.CartID = spanner.NullInt64{Int64: *product.CartID, Valid: true}
	}
	return data, nil
}
