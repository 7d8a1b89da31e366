// Package committer applies batches of Spanner mutations.
//
// Repositories build mutations through the table models (m_product and
// friends) and collect them into a CommitPlan; the plan is applied in one
// call so every mutation in it lands atomically. Writes that must read
// first (id allocation on insert) run inside ApplyWithReadWriteTransaction
// and buffer the same plan's mutations on the transaction.
//
//	plan := committer.NewPlan()
//	plan.Add(model.DeleteMut(productID))
//	return comm.Apply(ctx, plan)
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan is a typed wrapper around Spanner mutations.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan.
// Nil mutations are silently ignored for convenience.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Committer provides transaction execution for CommitPlans.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply executes the CommitPlan atomically.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}

	return nil
}

// ApplyWithReadWriteTransaction runs fn in a read-write transaction.
// fn may be retried by the client when the transaction aborts, so it must
// rebuild its mutations on every call.
func (c *Committer) ApplyWithReadWriteTransaction(ctx context.Context, fn func(context.Context, *spanner.ReadWriteTransaction) error) error {
	if _, err := c.client.ReadWriteTransaction(ctx, fn); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
