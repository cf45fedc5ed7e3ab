package store_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"github.com/goliatone/go-blog/client"
)

// fakeContent is a minimal in-memory stand-in for the upstream content
// service, just enough surface for the slice round-trips.
type fakeContent struct {
	mu         sync.Mutex
	categories map[int64]client.Category
	posts      map[int64]client.Post
	nextID     int64
	requests   int
	lastToken  string
}

func newFakeContent() *fakeContent {
	return &fakeContent{
		categories: map[int64]client.Category{},
		posts:      map[int64]client.Post{},
		nextID:     1,
	}
}

func (f *fakeContent) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(f.handle))
}

func (f *fakeContent) addCategory(c client.Category) client.Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = f.nextID
	f.nextID++
	f.categories[c.ID] = c
	return c
}

func (f *fakeContent) requestCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *fakeContent) bearer() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastToken
}

func (f *fakeContent) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++

	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		f.lastToken = strings.TrimPrefix(h, "Bearer ")
	}

	path := r.URL.Path
	switch {
	case path == "/api/home-categories" && r.Method == http.MethodGet:
		list := make([]client.Category, 0, len(f.categories))
		for id := int64(1); id < f.nextID; id++ {
			if c, ok := f.categories[id]; ok {
				list = append(list, c)
			}
		}
		json.NewEncoder(w).Encode(list)

	case path == "/api/categories" && r.Method == http.MethodPost:
		var payload client.CategoryPayload
		json.NewDecoder(r.Body).Decode(&payload)
		c := client.Category{
			ID:          f.nextID,
			Name:        payload.Name,
			Slug:        payload.Slug,
			Description: payload.Description,
			Active:      payload.Active,
			ParentID:    payload.ParentID,
		}
		f.nextID++
		f.categories[c.ID] = c
		json.NewEncoder(w).Encode(c)

	case strings.HasPrefix(path, "/api/categories/"):
		id, _ := strconv.ParseInt(strings.TrimPrefix(path, "/api/categories/"), 10, 64)
		existing, ok := f.categories[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "category not found"})
			return
		}
		switch r.Method {
		case http.MethodPut:
			var payload client.CategoryPayload
			json.NewDecoder(r.Body).Decode(&payload)
			existing.Name = payload.Name
			existing.Slug = payload.Slug
			existing.Description = payload.Description
			existing.Active = payload.Active
			existing.ParentID = payload.ParentID
			f.categories[id] = existing
			json.NewEncoder(w).Encode(existing)
		case http.MethodDelete:
			// no cascade: children keep their parent link
			delete(f.categories, id)
			w.WriteHeader(http.StatusNoContent)
		}

	case path == "/api/posts" && r.Method == http.MethodGet:
		list := make([]client.Post, 0, len(f.posts))
		for id := int64(1); id < f.nextID; id++ {
			if p, ok := f.posts[id]; ok {
				list = append(list, p)
			}
		}
		json.NewEncoder(w).Encode(list)

	case path == "/api/posts" && r.Method == http.MethodPost:
		var payload client.PostPayload
		json.NewDecoder(r.Body).Decode(&payload)
		p := client.Post{
			ID:         f.nextID,
			Title:      payload.Title,
			Slug:       payload.Slug,
			Content:    payload.Content,
			ImageName:  payload.ImageName,
			Active:     payload.Active,
			Featured:   payload.Featured,
			CategoryID: payload.CategoryID,
		}
		f.nextID++
		f.posts[p.ID] = p
		json.NewEncoder(w).Encode(p)

	case strings.HasPrefix(path, "/api/posts/"):
		id, _ := strconv.ParseInt(strings.TrimPrefix(path, "/api/posts/"), 10, 64)
		existing, ok := f.posts[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"message": "post not found"})
			return
		}
		switch r.Method {
		case http.MethodPut:
			var payload client.PostPayload
			json.NewDecoder(r.Body).Decode(&payload)
			existing.Title = payload.Title
			existing.Slug = payload.Slug
			existing.Content = payload.Content
			existing.ImageName = payload.ImageName
			existing.Active = payload.Active
			existing.Featured = payload.Featured
			existing.CategoryID = payload.CategoryID
			f.posts[id] = existing
			json.NewEncoder(w).Encode(existing)
		case http.MethodDelete:
			delete(f.posts, id)
			w.WriteHeader(http.StatusNoContent)
		}

	default:
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "no such endpoint"})
	}
}
