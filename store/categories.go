package store

import (
	"context"

	"github.com/goliatone/go-blog/client"
)

// Categories is the admin category slice
type Categories struct {
	api *client.Client
	res *resource[client.Category]
}

func newCategories(api *client.Client, notify func(Event)) *Categories {
	return &Categories{
		api: api,
		res: newResource("categories", func(c client.Category) int64 { return c.ID }, notify),
	}
}

// Fetch replaces the collection with the upstream state. Concurrent
// fetches are not deduplicated; the generation guard keeps only the most
// recently issued one.
func (s *Categories) Fetch(ctx context.Context) error {
	gen := s.res.begin()
	items, err := s.api.ListCategories(ctx)
	s.res.settle(gen, items, err)
	return err
}

// Create validates, calls upstream, and appends the confirmed record.
// A validation failure never reaches the network.
func (s *Categories) Create(ctx context.Context, token string, payload client.CategoryPayload) (*client.Category, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	created, err := s.api.CreateCategory(ctx, token, payload)
	if err != nil {
		return nil, err
	}

	s.res.append(*created)
	return created, nil
}

// Update validates, calls upstream, and swaps the identity-matched record
func (s *Categories) Update(ctx context.Context, token string, id int64, payload client.CategoryPayload) (*client.Category, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.api.UpdateCategory(ctx, token, id, payload)
	if err != nil {
		return nil, err
	}

	s.res.replace(*updated)
	return updated, nil
}

// Delete calls upstream and removes the identity-matched record. Children
// referencing the deleted category keep their ParentID: no cascade, no
// reparenting, locally or upstream.
func (s *Categories) Delete(ctx context.Context, token string, id int64) error {
	if err := s.api.DeleteCategory(ctx, token, id); err != nil {
		return err
	}

	s.res.remove(id)
	return nil
}

// Snapshot returns a copy of the slice state
func (s *Categories) Snapshot() Snapshot[client.Category] {
	return s.res.snapshot()
}
