package client

import (
	"context"
	"fmt"
	"strconv"
)

// HomePosts fetches the public feed, newest first, bounded by limit.
// With featuredOnly the upstream filters to featured posts before applying
// the bound.
func (c *Client) HomePosts(ctx context.Context, limit int, featuredOnly bool) ([]Post, error) {
	query := map[string]string{"limit": strconv.Itoa(limit)}
	if featuredOnly {
		query["featured"] = "1"
	}

	var out []Post
	if err := c.get(ctx, "/api/home-posts", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// HomePost fetches a single public post by id
func (c *Client) HomePost(ctx context.Context, id int64) (*Post, error) {
	var out Post
	path := fmt.Sprintf("/api/home-posts/%d", id)
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PostsByCategory fetches the public posts filed under one category
func (c *Client) PostsByCategory(ctx context.Context, categoryID int64) ([]Post, error) {
	var out []Post
	path := fmt.Sprintf("/api/home-categories/%d/posts", categoryID)
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
