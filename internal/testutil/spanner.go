package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/market-service/internal/models/m_cart"
	"github.com/light-bringer/market-service/internal/models/m_category"
	"github.com/light-bringer/market-service/internal/models/m_product"
	"github.com/light-bringer/market-service/internal/models/m_user"
)

// SetupSpannerTest creates a test Spanner client and returns a cleanup function.
// The database must already be migrated (market migrate against the emulator).
func SetupSpannerTest(t *testing.T) (*spanner.Client, func()) {
	t.Helper()

	if os.Getenv("SPANNER_EMULATOR_HOST") == "" {
		t.Skip("SPANNER_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, GetTestSpannerDB())
	require.NoError(t, err, "failed to create Spanner client")

	seeder := NewSpannerSeeder(client)

	// Clean database before test
	seeder.Clean(t)

	cleanup := func() {
		seeder.Clean(t)
		client.Close()
	}

	return client, cleanup
}

// GetTestSpannerDB returns the test Spanner database string.
func GetTestSpannerDB() string {
	if db := os.Getenv("SPANNER_TEST_DATABASE"); db != "" {
		return db
	}
	return "projects/test-project/instances/test-instance/databases/market-test"
}

// SpannerSeeder implements Seeder with mutations.
type SpannerSeeder struct {
	client *spanner.Client
	model  *m_product.Model
}

// NewSpannerSeeder creates a seeder over client.
func NewSpannerSeeder(client *spanner.Client) *SpannerSeeder {
	return &SpannerSeeder{client: client, model: m_product.NewModel()}
}

func (s *SpannerSeeder) apply(t *testing.T, muts ...*spanner.Mutation) {
	t.Helper()
	_, err := s.client.Apply(context.Background(), muts)
	require.NoError(t, err, "failed to apply fixture")
}

func (s *SpannerSeeder) User(t *testing.T, data *m_user.Data) {
	t.Helper()
	s.apply(t, spanner.Insert(m_user.TableName, m_user.Columns, data.Values()))
}

func (s *SpannerSeeder) Category(t *testing.T, data *m_category.Data) {
	t.Helper()
	s.apply(t, spanner.Insert(m_category.TableName, m_category.Columns, data.Values()))
}

func (s *SpannerSeeder) Cart(t *testing.T, data *m_cart.Data) {
	t.Helper()
	s.apply(t, spanner.Insert(m_cart.TableName, m_cart.Columns, data.Values()))
}

func (s *SpannerSeeder) Product(t *testing.T, fixture *ProductFixture) {
	t.Helper()
	s.apply(t, s.model.InsertMut(fixture.Data()))
}

func (s *SpannerSeeder) RawPhoto(t *testing.T, productID int64, raw *string) {
	t.Helper()
	photo := spanner.NullString{}
	if raw != nil {
		photo = spanner.NullString{StringVal: *raw, Valid: true}
	}
	s.apply(t, s.model.UpdateMut(productID, map[string]interface{}{m_product.Photo: photo}))
}

// Clean deletes all rows from every table.
func (s *SpannerSeeder) Clean(t *testing.T) {
	t.Helper()
	s.apply(t,
		spanner.Delete(m_product.TableName, spanner.AllKeys()),
		spanner.Delete(m_cart.TableName, spanner.AllKeys()),
		spanner.Delete(m_category.TableName, spanner.AllKeys()),
		spanner.Delete(m_user.TableName, spanner.AllKeys()),
	)
}

// AssertRowCount asserts the number of rows in a table.
func AssertRowCount(t *testing.T, client *spanner.Client, table string, expectedCount int) {
	t.Helper()

	stmt := spanner.Statement{SQL: fmt.Sprintf("SELECT COUNT(*) FROM %s", table)}
	iter := client.Single().Query(context.Background(), stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query row count")

	var count int64
	require.NoError(t, row.Columns(&count), "failed to parse count")
	require.Equal(t, int64(expectedCount), count, "unexpected row count in table %s", table)
}
