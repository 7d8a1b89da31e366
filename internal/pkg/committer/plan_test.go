package committer

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitPlan(t *testing.T) {
	plan := NewPlan()
	assert.True(t, plan.IsEmpty())

	plan.Add(nil)
	assert.True(t, plan.IsEmpty(), "nil mutations are ignored")

	plan.Add(spanner.Delete("products", spanner.Key{int64(1)}))
	plan.Add(spanner.Delete("products", spanner.Key{int64(2)}))

	assert.False(t, plan.IsEmpty())
	assert.Len(t, plan.Mutations(), 2)
}

func TestCommitter_ApplyEmptyPlanIsNoop(t *testing.T) {
	// the client is never touched for an empty plan
	c := NewCommitter(nil)
	require.NoError(t, c.Apply(context.Background(), NewPlan()))
}
