package store

import "sync"

// Phase is the lifecycle state of one resource slice
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// Snapshot is a point-in-time copy of a slice's state. Items always reflect
// the most recently applied fetch; stale settlements never make it in.
type Snapshot[T any] struct {
	Items []T
	Phase Phase
	Err   string
}

// resource is the generic async slice state machine shared by every
// resource kind: Idle -> Loading -> Loaded|Failed, re-fetchable from both
// terminal phases. A generation counter guards against the slow-response
// race: each fetch captures the generation it was issued under, and a
// settlement is dropped when a newer fetch has been issued since.
type resource[T any] struct {
	mu     sync.Mutex
	name   string
	items  []T
	phase  Phase
	err    string
	gen    uint64
	id     func(T) int64
	notify func(Event)
}

func newResource[T any](name string, id func(T) int64, notify func(Event)) *resource[T] {
	return &resource[T]{
		name:   name,
		id:     id,
		notify: notify,
	}
}

// begin transitions to Loading and returns the generation this fetch runs
// under. Issuing a second fetch invalidates the first one's generation.
func (r *resource[T]) begin() uint64 {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.phase = PhaseLoading
	r.err = ""
	r.mu.Unlock()

	r.publish(PhaseLoading)
	return gen
}

// settle applies a fetch outcome. Returns false when the outcome belongs
// to a superseded generation and was discarded; the slice state is then
// owned by the newer fetch, whatever its outcome.
func (r *resource[T]) settle(gen uint64, items []T, err error) bool {
	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		return false
	}

	var phase Phase
	if err != nil {
		// items untouched on failure
		r.phase = PhaseFailed
		r.err = err.Error()
		phase = PhaseFailed
	} else {
		// full replacement, never an incremental merge
		r.items = items
		r.phase = PhaseLoaded
		r.err = ""
		phase = PhaseLoaded
	}
	r.mu.Unlock()

	r.publish(phase)
	return true
}

// append adds a confirmed create. Mutations are applied only after the
// upstream call resolved, so there is nothing to roll back.
func (r *resource[T]) append(item T) {
	r.mu.Lock()
	r.items = append(r.items, item)
	r.mu.Unlock()

	r.publish(r.Phase())
}

// replace swaps the identity-matched item, leaving every other item as is
func (r *resource[T]) replace(item T) {
	id := r.id(item)

	r.mu.Lock()
	for i := range r.items {
		if r.id(r.items[i]) == id {
			r.items[i] = item
			break
		}
	}
	r.mu.Unlock()

	r.publish(r.Phase())
}

// remove drops the identity-matched item
func (r *resource[T]) remove(id int64) {
	r.mu.Lock()
	kept := r.items[:0]
	for _, item := range r.items {
		if r.id(item) != id {
			kept = append(kept, item)
		}
	}
	r.items = kept
	r.mu.Unlock()

	r.publish(r.Phase())
}

// Phase returns the current lifecycle phase
func (r *resource[T]) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// snapshot copies the current state
func (r *resource[T]) snapshot() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]T, len(r.items))
	copy(items, r.items)

	return Snapshot[T]{
		Items: items,
		Phase: r.phase,
		Err:   r.err,
	}
}

func (r *resource[T]) publish(phase Phase) {
	if r.notify != nil {
		r.notify(Event{Slice: r.name, Phase: phase})
	}
}
