package store

import (
	"context"
	"sync"

	"github.com/goliatone/go-blog/client"
)

// Comments is the per-post comment slice plus the public submission
// state. Submitted comments go to moderation and are NOT appended to the
// local collection; they only show up after an explicit re-fetch once
// approved.
type Comments struct {
	api *client.Client
	res *resource[client.Comment]

	mu            sync.Mutex
	postID        int64
	submitting    bool
	submitMessage string
}

func newComments(api *client.Client, notify func(Event)) *Comments {
	return &Comments{
		api: api,
		res: newResource("comments", func(c client.Comment) int64 { return c.ID }, notify),
	}
}

// FetchByPost replaces the collection with the comments of one post.
// The slice holds comments for a single post at a time.
func (s *Comments) FetchByPost(ctx context.Context, postID int64) error {
	s.mu.Lock()
	s.postID = postID
	s.mu.Unlock()

	gen := s.res.begin()
	items, err := s.api.CommentsByPost(ctx, postID)
	s.res.settle(gen, items, err)
	return err
}

// Submit validates and sends a public comment upstream
func (s *Comments) Submit(ctx context.Context, payload client.CommentPayload) error {
	if err := payload.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	s.submitting = true
	s.submitMessage = ""
	s.mu.Unlock()

	_, err := s.api.SubmitComment(ctx, payload)

	s.mu.Lock()
	s.submitting = false
	if err != nil {
		s.submitMessage = err.Error()
	} else {
		s.submitMessage = "Comment submitted for review."
	}
	s.mu.Unlock()

	return err
}

// ClearMessage resets the submission message
func (s *Comments) ClearMessage() {
	s.mu.Lock()
	s.submitMessage = ""
	s.mu.Unlock()
}

// Submitting reports whether a submission is in flight, with the last
// submission message
func (s *Comments) Submitting() (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting, s.submitMessage
}

// PostID returns the post the current collection belongs to
func (s *Comments) PostID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.postID
}

// Snapshot returns a copy of the slice state
func (s *Comments) Snapshot() Snapshot[client.Comment] {
	return s.res.snapshot()
}
