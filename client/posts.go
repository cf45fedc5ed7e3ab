package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListPosts fetches the admin post collection. This read is authenticated,
// unlike the public home feed.
func (c *Client) ListPosts(ctx context.Context, token string) ([]Post, error) {
	var out []Post
	if err := c.send(ctx, http.MethodGet, "/api/posts", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePost creates a post and returns the record with its server
// assigned identity
func (c *Client) CreatePost(ctx context.Context, token string, payload PostPayload) (*Post, error) {
	var out Post
	if err := c.send(ctx, http.MethodPost, "/api/posts", token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePost replaces the post with the given id
func (c *Client) UpdatePost(ctx context.Context, token string, id int64, payload PostPayload) (*Post, error) {
	var out Post
	path := fmt.Sprintf("/api/posts/%d", id)
	if err := c.send(ctx, http.MethodPut, path, token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePost removes the post with the given id
func (c *Client) DeletePost(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/posts/%d", id)
	return c.send(ctx, http.MethodDelete, path, token, nil, nil)
}
