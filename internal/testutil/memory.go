package testutil

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
	"github.com/light-bringer/market-service/internal/app/product/domain"
	"github.com/light-bringer/market-service/internal/pkg/clock"
	"github.com/light-bringer/market-service/internal/pkg/query"
)

// Cart is a validated or pending cart in the MemoryStore.
type Cart struct {
	ID        int64
	UserID    int64
	Validated bool
	Date      time.Time
}

// MemoryStore is an in-memory product store for handler and query tests.
// It implements CatalogReadModel, LifecycleStore and ProductRepository with
// the same visibility rules as the SQL stores.
type MemoryStore struct {
	mu       sync.Mutex
	clock    clock.Clock
	products map[int64]*domain.Product
	sellers  map[int64]domain.SellerContact
	carts    map[int64]Cart
	nextID   int64

	// Err, when set, is returned by every operation.
	Err error
}

var (
	_ contracts.CatalogReadModel  = (*MemoryStore)(nil)
	_ contracts.LifecycleStore    = (*MemoryStore)(nil)
	_ contracts.ProductRepository = (*MemoryStore)(nil)
)

// NewMemoryStore creates an empty store; clk drives the bought window.
func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		clock:    clk,
		products: make(map[int64]*domain.Product),
		sellers:  make(map[int64]domain.SellerContact),
		carts:    make(map[int64]Cart),
		nextID:   1,
	}
}

// AddSeller registers a user that products can reference.
func (m *MemoryStore) AddSeller(userID int64, seller domain.SellerContact) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sellers[userID] = seller
}

// AddCart registers a cart.
func (m *MemoryStore) AddCart(cart Cart) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[cart.ID] = cart
}

// Insert implements ProductRepository.
func (m *MemoryStore) Insert(_ context.Context, product *domain.Product) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}

	stored := *product
	stored.ID = m.nextID
	m.nextID++
	m.products[stored.ID] = &stored
	return stored.ID, nil
}

// Delete implements ProductRepository.
func (m *MemoryStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	delete(m.products, id)
	return nil
}

// FetchPage implements CatalogReadModel.
func (m *MemoryStore) FetchPage(_ context.Context, terms domain.SearchTerms, pageSize int, s domain.Sort) (*contracts.CatalogPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	pageSize = domain.NormalizePageSize(pageSize)
	search := strings.ToLower(terms.Search())
	category, hasCategory := terms.CategoryID()

	matched := m.filter(func(p *domain.Product) bool {
		if !p.Listed() {
			return false
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			return false
		}
		return !hasCategory || p.CategoryID == category
	})
	sortProducts(matched, s)

	products := make([]*domain.ProductView, 0, pageSize)
	first := domain.Offset(terms.Page(), pageSize)
	for i := first; i < int64(len(matched)) && i < first+int64(pageSize); i++ {
		products = append(products, m.view(matched[i]))
	}

	return &contracts.CatalogPage{
		Products:    products,
		CurrentPage: terms.Page(),
		PagesCount:  domain.PagesCount(int64(len(matched)), pageSize),
	}, nil
}

// BoughtByUser implements LifecycleStore.
func (m *MemoryStore) BoughtByUser(_ context.Context, userID int64) ([]*domain.ProductView, error) {
	since := domain.BoughtSince(m.clock.Now())
	return m.list(func(p *domain.Product) bool {
		if p.CartID == nil {
			return false
		}
		cart, ok := m.carts[*p.CartID]
		return ok && cart.UserID == userID && cart.Validated && cart.Date.After(since)
	})
}

// InSaleByUser implements LifecycleStore.
func (m *MemoryStore) InSaleByUser(_ context.Context, userID int64) ([]*domain.ProductView, error) {
	return m.list(func(p *domain.Product) bool {
		return p.OwnerID == userID && p.Status == domain.StatusForSale
	})
}

// InCartByUser implements LifecycleStore.
func (m *MemoryStore) InCartByUser(_ context.Context, userID int64) ([]*domain.ProductView, error) {
	return m.list(func(p *domain.Product) bool {
		return p.OwnerID == userID && p.InCart()
	})
}

// SoldByUser implements LifecycleStore.
func (m *MemoryStore) SoldByUser(_ context.Context, userID int64) ([]*domain.ProductView, error) {
	return m.list(func(p *domain.Product) bool {
		return p.OwnerID == userID && p.Status == domain.StatusSold
	})
}

// Latest implements LifecycleStore.
func (m *MemoryStore) Latest(ctx context.Context, limit int) ([]*domain.ProductView, error) {
	views, err := m.list(func(*domain.Product) bool { return true })
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(views) > limit {
		views = views[:limit]
	}
	return views, nil
}

// ByID implements LifecycleStore.
func (m *MemoryStore) ByID(_ context.Context, id int64) (*domain.ProductView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	p, ok := m.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return m.view(p), nil
}

// ByIDWithCategory implements LifecycleStore. Categories are reported by id only.
func (m *MemoryStore) ByIDWithCategory(_ context.Context, id int64) (*domain.ProductDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	p, ok := m.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &domain.ProductDetail{
		Product: *p,
		Seller:  m.sellers[p.OwnerID],
	}, nil
}

// list returns matching products, newest id first.
func (m *MemoryStore) list(keep func(*domain.Product) bool) ([]*domain.ProductView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	matched := m.filter(keep)
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	views := make([]*domain.ProductView, 0, len(matched))
	for _, p := range matched {
		views = append(views, m.view(p))
	}
	return views, nil
}

func (m *MemoryStore) filter(keep func(*domain.Product) bool) []*domain.Product {
	matched := make([]*domain.Product, 0, len(m.products))
	for _, p := range m.products {
		if keep(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

func (m *MemoryStore) view(p *domain.Product) *domain.ProductView {
	seller := m.sellers[p.OwnerID]
	return &domain.ProductView{
		Product: *p,
		Seller:  domain.Seller{Pseudo: seller.Pseudo, Rating: seller.Rating},
	}
}

// sortProducts orders products by the sort column, ties broken by id.
func sortProducts(products []*domain.Product, s domain.Sort) {
	less := func(a, b *domain.Product) int {
		switch s.Field() {
		case "price":
			return compare(a.Price, b.Price)
		case "title":
			return strings.Compare(a.Title, b.Title)
		case "id":
			return compare(a.ID, b.ID)
		default:
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		c := less(products[i], products[j])
		if c == 0 {
			c = compare(products[i].ID, products[j].ID)
		}
		if s.Direction() == query.Desc {
			return c > 0
		}
		return c < 0
	})
}

func compare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
