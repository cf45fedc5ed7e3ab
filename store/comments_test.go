package store_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-blog/client"
	"github.com/goliatone/go-blog/store"
)

func TestComments_FetchByPost(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/comments/post/7":
			json.NewEncoder(w).Encode([]map[string]any{
				{"id": 1, "postId": 7, "fullName": "Reader", "title": "Nice", "status": 1},
				{"id": 2, "postId": 7, "fullName": "Other", "title": "Thanks", "status": 1},
			})
		case "/api/comments/post/9":
			json.NewEncoder(w).Encode([]map[string]any{
				{"id": 3, "postId": 9, "fullName": "Reader", "title": "Hm", "status": 1},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer upstream.Close()

	st := store.New(client.New(upstream.URL))
	ctx := context.Background()

	require.NoError(t, st.Comments.FetchByPost(ctx, 7))
	assert.Equal(t, int64(7), st.Comments.PostID())
	require.Len(t, st.Comments.Snapshot().Items, 2)

	// switching posts replaces the collection wholesale
	require.NoError(t, st.Comments.FetchByPost(ctx, 9))
	assert.Equal(t, int64(9), st.Comments.PostID())

	snap := st.Comments.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, int64(9), snap.Items[0].PostID)
}

func TestComments_Submit(t *testing.T) {
	t.Run("success records the review message without touching the collection", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/comments", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{"id": 5, "postId": 7, "status": 0})
		}))
		defer upstream.Close()

		st := store.New(client.New(upstream.URL))
		err := st.Comments.Submit(context.Background(), client.CommentPayload{
			PostID: 7, FullName: "Reader", Title: "Nice", Description: "Great post",
		})
		require.NoError(t, err)

		submitting, message := st.Comments.Submitting()
		assert.False(t, submitting)
		assert.Equal(t, "Comment submitted for review.", message)

		// pending moderation: nothing appears locally until re-fetched
		assert.Empty(t, st.Comments.Snapshot().Items)

		st.Comments.ClearMessage()
		_, message = st.Comments.Submitting()
		assert.Empty(t, message)
	})

	t.Run("failure surfaces the upstream message", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "comment rejected"})
		}))
		defer upstream.Close()

		st := store.New(client.New(upstream.URL))
		err := st.Comments.Submit(context.Background(), client.CommentPayload{
			PostID: 7, FullName: "Reader", Title: "Nice", Description: "Great post",
		})
		require.Error(t, err)

		_, message := st.Comments.Submitting()
		assert.Contains(t, message, "comment rejected")
	})

	t.Run("invalid payload never reaches the network", func(t *testing.T) {
		var calls int
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))
		defer upstream.Close()

		st := store.New(client.New(upstream.URL))
		err := st.Comments.Submit(context.Background(), client.CommentPayload{FullName: "Reader"})

		require.Error(t, err)
		assert.Equal(t, 0, calls)
	})
}
