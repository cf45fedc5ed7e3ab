package client

import (
	"context"
	"fmt"
	"net/http"
)

// ListCategories fetches the full category collection
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.get(ctx, "/api/home-categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateCategory creates a category and returns the record with its
// server assigned identity
func (c *Client) CreateCategory(ctx context.Context, token string, payload CategoryPayload) (*Category, error) {
	var out Category
	if err := c.send(ctx, http.MethodPost, "/api/categories", token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCategory replaces the category with the given id
func (c *Client) UpdateCategory(ctx context.Context, token string, id int64, payload CategoryPayload) (*Category, error) {
	var out Category
	path := fmt.Sprintf("/api/categories/%d", id)
	if err := c.send(ctx, http.MethodPut, path, token, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCategory removes the category with the given id. Child categories
// referencing it as parent are left untouched upstream: no cascade.
func (c *Client) DeleteCategory(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/api/categories/%d", id)
	return c.send(ctx, http.MethodDelete, path, token, nil, nil)
}
