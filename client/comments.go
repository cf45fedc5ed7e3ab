package client

import (
	"context"
	"fmt"
	"net/http"
)

// CommentsByPost fetches the comments filed under one post. There is no
// global comment collection upstream.
func (c *Client) CommentsByPost(ctx context.Context, postID int64) ([]Comment, error) {
	var out []Comment
	path := fmt.Sprintf("/api/comments/post/%d", postID)
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitComment submits a public comment for moderation. No bearer token:
// this is the one unauthenticated mutation upstream accepts.
func (c *Client) SubmitComment(ctx context.Context, payload CommentPayload) (*Comment, error) {
	var out Comment
	if err := c.send(ctx, http.MethodPost, "/api/comments", "", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
