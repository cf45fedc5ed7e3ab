package store

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-blog/client"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Event is published on every slice state transition
type Event struct {
	Slice string
	View  string
	Phase Phase
}

// Store composes the resource slices into one explicitly constructed
// container. It is passed through the call graph, never referenced as
// ambient state. It provides no cross-slice invariants: deleting a
// category does not touch the post slice, a loaded post may keep pointing
// at a category that no longer resolves upstream.
type Store struct {
	Categories *Categories
	Posts      *Posts
	Home       *Home
	Comments   *Comments

	mu      sync.RWMutex
	subs    map[int]func(Event)
	nextSub int
	logger  Logger
}

// New builds a store over the upstream content client. Every slice starts
// Idle; nothing is fetched until asked.
func New(api *client.Client) *Store {
	s := &Store{
		subs:   map[int]func(Event){},
		logger: defLogger{},
	}

	s.Categories = newCategories(api, s.publish)
	s.Posts = newPosts(api, s.publish)
	s.Home = newHome(api, s.publish)
	s.Comments = newComments(api, s.publish)

	return s
}

func (s *Store) WithLogger(logger Logger) *Store {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// Subscribe registers a listener for slice transitions. The returned
// function unsubscribes it. Listeners run synchronously on the goroutine
// that settled the slice; keep them cheap.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) publish(e Event) {
	s.mu.RLock()
	listeners := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(e)
	}
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] STORE "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] STORE "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] STORE "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
