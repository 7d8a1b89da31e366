package pgdb

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestQueryError(t *testing.T) {
	cause := errors.New("connection reset")
	err := &QueryError{Query: "SELECT 1", Err: cause}

	assert.Equal(t, "query error: connection reset (query: SELECT 1)", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("read product: %w", pgx.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("boom")))
	assert.False(t, IsNoRows(nil))
}
