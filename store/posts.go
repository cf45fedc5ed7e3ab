package store

import (
	"context"

	"github.com/goliatone/go-blog/client"
)

// Posts is the admin post slice. Its fetch is authenticated, unlike the
// public home feed.
type Posts struct {
	api *client.Client
	res *resource[client.Post]
}

func newPosts(api *client.Client, notify func(Event)) *Posts {
	return &Posts{
		api: api,
		res: newResource("posts", func(p client.Post) int64 { return p.ID }, notify),
	}
}

// Fetch replaces the collection with the upstream state
func (s *Posts) Fetch(ctx context.Context, token string) error {
	gen := s.res.begin()
	items, err := s.api.ListPosts(ctx, token)
	s.res.settle(gen, items, err)
	return err
}

// Create validates, calls upstream, and appends the confirmed record.
// CategoryID is required; referential integrity against the category
// cache is NOT checked, that stays the upstream service's problem.
func (s *Posts) Create(ctx context.Context, token string, payload client.PostPayload) (*client.Post, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	created, err := s.api.CreatePost(ctx, token, payload)
	if err != nil {
		return nil, err
	}

	s.res.append(*created)
	return created, nil
}

// Update validates, calls upstream, and swaps the identity-matched record
func (s *Posts) Update(ctx context.Context, token string, id int64, payload client.PostPayload) (*client.Post, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.api.UpdatePost(ctx, token, id, payload)
	if err != nil {
		return nil, err
	}

	s.res.replace(*updated)
	return updated, nil
}

// Delete calls upstream and removes the identity-matched record
func (s *Posts) Delete(ctx context.Context, token string, id int64) error {
	if err := s.api.DeletePost(ctx, token, id); err != nil {
		return err
	}

	s.res.remove(id)
	return nil
}

// Snapshot returns a copy of the slice state
func (s *Posts) Snapshot() Snapshot[client.Post] {
	return s.res.snapshot()
}
