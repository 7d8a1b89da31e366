package migrations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	stmts := SplitStatements(`-- header
CREATE TABLE a (id INT64 NOT NULL) PRIMARY KEY (id);

-- index
CREATE INDEX idx ON a(id);
`)
	assert.Equal(t, []string{
		"CREATE TABLE a (id INT64 NOT NULL) PRIMARY KEY (id)",
		"CREATE INDEX idx ON a(id)",
	}, stmts)
}

func TestLoad(t *testing.T) {
	for _, dialect := range []string{"spanner", "postgres"} {
		t.Run(dialect, func(t *testing.T) {
			migs, err := Load(dialect)
			require.NoError(t, err)
			require.NotEmpty(t, migs)
			assert.Equal(t, "001_initial_schema.sql", migs[0].Name)

			ddl := strings.Join(migs[0].Statements, "\n")
			for _, table := range []string{"users", "category_items", "carts", "products"} {
				assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS "+table+" (")
			}
			assert.Contains(t, ddl, "CONSTRAINT chk_products_price_positive CHECK (price > 0)")
		})
	}

	_, err := Load("mysql")
	assert.Error(t, err)
}
