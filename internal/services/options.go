package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/market-service/internal/app/product/contracts"
	"github.com/light-bringer/market-service/internal/app/product/pgrepo"
	"github.com/light-bringer/market-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/market-service/internal/app/product/queries/latest_products"
	"github.com/light-bringer/market-service/internal/app/product/queries/list_catalog"
	"github.com/light-bringer/market-service/internal/app/product/queries/list_user_products"
	"github.com/light-bringer/market-service/internal/app/product/repo"
	"github.com/light-bringer/market-service/internal/app/product/usecases/create_product"
	"github.com/light-bringer/market-service/internal/app/product/usecases/delete_product"
	"github.com/light-bringer/market-service/internal/config"
	"github.com/light-bringer/market-service/internal/pkg/clock"
	"github.com/light-bringer/market-service/internal/pkg/committer"
	"github.com/light-bringer/market-service/internal/pkg/pgdb"
	httphandler "github.com/light-bringer/market-service/internal/transport/http"
)

// Stores groups the three product contracts of one backend.
type Stores struct {
	ReadModel contracts.CatalogReadModel
	Lifecycle contracts.LifecycleStore
	Products  contracts.ProductRepository
}

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	PostgresDB    *pgdb.DB

	Stores Stores

	// Queries and commands, shared by the HTTP handler and the CLI
	ListCatalog      *list_catalog.Query
	GetProduct       *get_product.Query
	ListUserProducts *list_user_products.Query
	LatestProducts   *latest_products.Query
	CreateProduct    *create_product.Interactor
	DeleteProduct    *delete_product.Interactor

	ProductHandler *httphandler.ProductHandler
}

// NewServiceOptions connects the configured store and wires up all
// application dependencies.
func NewServiceOptions(ctx context.Context, cfg config.Config, logger logrus.FieldLogger) (*ServiceOptions, error) {
	clk := clock.NewRealClock()
	opts := &ServiceOptions{}

	// 1. Initialize the store
	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := pgdb.Connect(ctx, pgdb.Config{URL: cfg.DatabaseURL})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		opts.PostgresDB = db
		opts.Stores = PostgresStores(db, clk)

	default:
		client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		opts.SpannerClient = client
		opts.Stores = SpannerStores(client, clk)
	}
	logger.WithField("driver", cfg.StoreDriver).Info("store connected")

	// 2. Create use cases and queries
	opts.wire(cfg.PageSize, clk)
	return opts, nil
}

// NewWithStores wires the application over already-built stores.
func NewWithStores(stores Stores, pageSize int, clk clock.Clock) *ServiceOptions {
	opts := &ServiceOptions{Stores: stores}
	opts.wire(pageSize, clk)
	return opts
}

// SpannerStores builds the Spanner implementations of the product contracts.
func SpannerStores(client *spanner.Client, clk clock.Clock) Stores {
	return Stores{
		ReadModel: repo.NewReadModel(client),
		Lifecycle: repo.NewLifecycleStore(client, clk),
		Products:  repo.NewProductRepo(committer.NewCommitter(client)),
	}
}

// PostgresStores builds the PostgreSQL implementations of the product contracts.
func PostgresStores(db *pgdb.DB, clk clock.Clock) Stores {
	return Stores{
		ReadModel: pgrepo.NewReadModel(db),
		Lifecycle: pgrepo.NewLifecycleStore(db, clk),
		Products:  pgrepo.NewProductRepo(db),
	}
}

func (s *ServiceOptions) wire(pageSize int, clk clock.Clock) {
	// Command use cases (write operations)
	s.CreateProduct = create_product.NewInteractor(s.Stores.Products, clk)
	s.DeleteProduct = delete_product.NewInteractor(s.Stores.Products)

	// Query use cases (read operations)
	s.ListCatalog = list_catalog.NewQuery(s.Stores.ReadModel, pageSize)
	s.GetProduct = get_product.NewQuery(s.Stores.Lifecycle)
	s.ListUserProducts = list_user_products.NewQuery(s.Stores.Lifecycle)
	s.LatestProducts = latest_products.NewQuery(s.Stores.Lifecycle)

	s.ProductHandler = httphandler.NewProductHandler(
		s.CreateProduct,
		s.DeleteProduct,
		s.ListCatalog,
		s.GetProduct,
		s.ListUserProducts,
		s.LatestProducts,
	)
}

// Ping verifies the configured store answers.
func (s *ServiceOptions) Ping(ctx context.Context) error {
	if s.PostgresDB != nil {
		return s.PostgresDB.Ping(ctx)
	}
	if s.SpannerClient != nil {
		iter := s.SpannerClient.Single().Query(ctx, spanner.Statement{SQL: "SELECT 1"})
		defer iter.Stop()
		_, err := iter.Next()
		return err
	}
	return nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
	if s.PostgresDB != nil {
		s.PostgresDB.Close()
	}
}
