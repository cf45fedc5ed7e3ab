package store

import (
	"context"
	"sync"

	"github.com/goliatone/go-blog/client"
)

// View names one home-feed projection
type View string

const (
	ViewFeatured   View = "featured"
	ViewLatest     View = "latest"
	ViewSingle     View = "single"
	ViewByCategory View = "by-category"
)

// homeView is one projection over the shared entity cache: an id order
// plus its own lifecycle. The posts themselves live in the cache, so two
// projections can never disagree about the same post.
type homeView struct {
	ids   []int64
	phase Phase
	err   string
	gen   uint64

	memo        []client.Post
	memoVersion uint64
}

// Home is the public feed: one normalized post cache keyed by id with
// four independently fetched projections assembled from it. Refreshing
// any projection upserts into the cache, converging every view that
// shares an entity.
type Home struct {
	api    *client.Client
	notify func(Event)

	mu         sync.Mutex
	entities   map[int64]client.Post
	version    uint64
	views      map[View]*homeView
	categoryID int64
}

func newHome(api *client.Client, notify func(Event)) *Home {
	return &Home{
		api:      api,
		notify:   notify,
		entities: map[int64]client.Post{},
		views: map[View]*homeView{
			ViewFeatured:   {},
			ViewLatest:     {},
			ViewSingle:     {},
			ViewByCategory: {},
		},
	}
}

// FetchFeatured refreshes the featured projection, bounded by limit
func (h *Home) FetchFeatured(ctx context.Context, limit int) error {
	gen := h.begin(ViewFeatured)
	posts, err := h.api.HomePosts(ctx, limit, true)
	h.settle(ViewFeatured, gen, posts, err)
	return err
}

// FetchLatest refreshes the latest projection, bounded by limit
func (h *Home) FetchLatest(ctx context.Context, limit int) error {
	gen := h.begin(ViewLatest)
	posts, err := h.api.HomePosts(ctx, limit, false)
	h.settle(ViewLatest, gen, posts, err)
	return err
}

// FetchSingle refreshes the single-post projection by id
func (h *Home) FetchSingle(ctx context.Context, id int64) error {
	gen := h.begin(ViewSingle)

	post, err := h.api.HomePost(ctx, id)
	var posts []client.Post
	if post != nil {
		posts = []client.Post{*post}
	}

	h.settle(ViewSingle, gen, posts, err)
	return err
}

// FetchByCategory refreshes the category projection for one category id
func (h *Home) FetchByCategory(ctx context.Context, categoryID int64) error {
	h.mu.Lock()
	h.categoryID = categoryID
	h.mu.Unlock()

	gen := h.begin(ViewByCategory)
	posts, err := h.api.PostsByCategory(ctx, categoryID)
	h.settle(ViewByCategory, gen, posts, err)
	return err
}

// Featured returns the featured projection assembled from the cache
func (h *Home) Featured() Snapshot[client.Post] {
	return h.assemble(ViewFeatured)
}

// Latest returns the latest projection assembled from the cache
func (h *Home) Latest() Snapshot[client.Post] {
	return h.assemble(ViewLatest)
}

// ByCategory returns the category projection assembled from the cache,
// with the category id it was last fetched for
func (h *Home) ByCategory() (Snapshot[client.Post], int64) {
	h.mu.Lock()
	categoryID := h.categoryID
	h.mu.Unlock()
	return h.assemble(ViewByCategory), categoryID
}

// Single returns the single-post projection, nil when nothing resolved
func (h *Home) Single() (*client.Post, Phase, string) {
	snap := h.assemble(ViewSingle)
	if len(snap.Items) == 0 {
		return nil, snap.Phase, snap.Err
	}
	post := snap.Items[0]
	return &post, snap.Phase, snap.Err
}

func (h *Home) begin(v View) uint64 {
	h.mu.Lock()
	view := h.views[v]
	view.gen++
	gen := view.gen
	view.phase = PhaseLoading
	view.err = ""
	h.mu.Unlock()

	h.publish(v, PhaseLoading)
	return gen
}

func (h *Home) settle(v View, gen uint64, posts []client.Post, err error) bool {
	h.mu.Lock()
	view := h.views[v]
	if gen != view.gen {
		h.mu.Unlock()
		return false
	}

	var phase Phase
	if err != nil {
		view.phase = PhaseFailed
		view.err = err.Error()
		phase = PhaseFailed
	} else {
		ids := make([]int64, 0, len(posts))
		for _, p := range posts {
			// upsert: the cache holds one copy per id, so a refresh of
			// this projection updates what every other projection shows
			h.entities[p.ID] = p
			ids = append(ids, p.ID)
		}
		view.ids = ids
		view.phase = PhaseLoaded
		view.err = ""
		h.version++
		phase = PhaseLoaded
	}
	h.mu.Unlock()

	h.publish(v, phase)
	return true
}

// assemble materializes a projection from the cache, memoized until the
// cache version moves
func (h *Home) assemble(v View) Snapshot[client.Post] {
	h.mu.Lock()
	defer h.mu.Unlock()

	view := h.views[v]
	if view.memoVersion != h.version || view.memo == nil {
		memo := make([]client.Post, 0, len(view.ids))
		for _, id := range view.ids {
			if p, ok := h.entities[id]; ok {
				memo = append(memo, p)
			}
		}
		view.memo = memo
		view.memoVersion = h.version
	}

	items := make([]client.Post, len(view.memo))
	copy(items, view.memo)

	return Snapshot[client.Post]{
		Items: items,
		Phase: view.phase,
		Err:   view.err,
	}
}

func (h *Home) publish(v View, phase Phase) {
	if h.notify != nil {
		h.notify(Event{Slice: "home", View: string(v), Phase: phase})
	}
}
