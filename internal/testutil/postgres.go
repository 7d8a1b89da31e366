package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/light-bringer/market-service/internal/models/m_cart"
	"github.com/light-bringer/market-service/internal/models/m_category"
	"github.com/light-bringer/market-service/internal/models/m_product"
	"github.com/light-bringer/market-service/internal/models/m_user"
	"github.com/light-bringer/market-service/internal/pkg/pgdb"
	"github.com/light-bringer/market-service/internal/pkg/query"
	"github.com/light-bringer/market-service/migrations"
)

// SetupPostgresTest starts a PostgreSQL container, applies the schema and
// returns a connected DB with a cleanup function.
func SetupPostgresTest(t *testing.T) (*pgdb.DB, func()) {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("market"),
		postgres.WithUsername("market"),
		postgres.WithPassword("market"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	db, err := pgdb.Connect(ctx, pgdb.Config{URL: connStr})
	require.NoError(t, err, "failed to connect")

	migs, err := migrations.Load("postgres")
	require.NoError(t, err)
	for _, mig := range migs {
		for _, stmt := range mig.Statements {
			_, err := db.Exec(ctx, stmt)
			require.NoError(t, err, "failed to apply %s", mig.Name)
		}
	}

	cleanup := func() {
		db.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	}
	return db, cleanup
}

// PostgresSeeder implements Seeder with plain INSERTs.
type PostgresSeeder struct {
	db *pgdb.DB
}

// NewPostgresSeeder creates a seeder over db.
func NewPostgresSeeder(db *pgdb.DB) *PostgresSeeder {
	return &PostgresSeeder{db: db}
}

func (s *PostgresSeeder) insert(t *testing.T, table string, columns []string, values []interface{}) {
	t.Helper()
	placeholders := make([]string, len(columns))
	for i := range columns {
		placeholders[i] = query.Postgres.Placeholder(i)
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	_, err := s.db.Exec(context.Background(), sql, values...)
	require.NoError(t, err, "failed to insert %s fixture", table)
}

func (s *PostgresSeeder) User(t *testing.T, data *m_user.Data) {
	t.Helper()
	s.insert(t, m_user.TableName, m_user.Columns, data.Values())
}

func (s *PostgresSeeder) Category(t *testing.T, data *m_category.Data) {
	t.Helper()
	s.insert(t, m_category.TableName, m_category.Columns, data.Values())
}

func (s *PostgresSeeder) Cart(t *testing.T, data *m_cart.Data) {
	t.Helper()
	s.insert(t, m_cart.TableName, m_cart.Columns, data.Values())
}

// Product inserts the row and moves the id sequence past it, so later
// repository inserts do not collide with fixture ids.
func (s *PostgresSeeder) Product(t *testing.T, fixture *ProductFixture) {
	t.Helper()
	data := fixture.Data()

	var cartID *int64
	if data.CartID.Valid {
		cartID = &data.CartID.Int64
	}
	s.insert(t, m_product.TableName, m_product.Columns, []interface{}{
		data.ID, data.Title, data.Description, data.Price, data.Photo.StringVal, data.Status,
		data.UserID, data.CategoryID, data.Room, data.Material, data.State, data.Info,
		data.Date, cartID,
	})

	_, err := s.db.Exec(context.Background(),
		"SELECT setval(pg_get_serial_sequence('products', 'id'), (SELECT MAX(id) FROM products))")
	require.NoError(t, err, "failed to advance product id sequence")
}

func (s *PostgresSeeder) RawPhoto(t *testing.T, productID int64, raw *string) {
	t.Helper()
	_, err := s.db.Exec(context.Background(), "UPDATE products SET photo = $1 WHERE id = $2", raw, productID)
	require.NoError(t, err, "failed to overwrite photo")
}

// Clean deletes all rows and restarts the product id sequence.
func (s *PostgresSeeder) Clean(t *testing.T) {
	t.Helper()
	_, err := s.db.Exec(context.Background(),
		"TRUNCATE TABLE products, carts, category_items, users RESTART IDENTITY")
	require.NoError(t, err, "failed to clean database")
}
