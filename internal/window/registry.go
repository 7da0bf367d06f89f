package window

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Info is a read-only view of a registry entry.
type Info struct {
	ID         string
	Policy     Policy
	InstanceID string
	CreatedAt  time.Time
}

type entry struct {
	win        Window
	policy     Policy
	attached   bool
	instanceID string
	createdAt  time.Time
}

// Registry 窗口注册表：id -> 存活窗口，所有访问都经过同一把锁
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	sealed  bool
}

// NewRegistry 创建窗口注册表
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
	}
}

// Lookup returns the live window registered under id.
func (r *Registry) Lookup(id string) (Window, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	return e.win, true
}

// Insert registers w under its id. Inserting the same handle again is a no-op.
func (r *Registry) Insert(w Window) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(w)
}

func (r *Registry) insertLocked(w Window) error {
	if r.sealed {
		return ErrShuttingDown
	}
	id := w.ID()
	if e, ok := r.entries[id]; ok {
		if e.win == w {
			return nil
		}
		return ErrDuplicateWindow
	}

	r.entries[id] = &entry{
		win:        w,
		policy:     PolicyFor(id),
		instanceID: uuid.NewString(),
		createdAt:  time.Now(),
	}
	return nil
}

// claim registers w if needed and marks its observer as attached.
// Returns false when the observer was already attached to this handle.
func (r *Registry) claim(w Window) (Policy, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.insertLocked(w); err != nil {
		return 0, false, err
	}
	e := r.entries[w.ID()]
	if e.attached {
		return e.policy, false, nil
	}
	e.attached = true
	return e.policy, true, nil
}

func (r *Registry) attached(id string) (Window, Policy, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok || !e.attached {
		return nil, 0, false
	}
	return e.win, e.policy, true
}

// Remove drops id from the registry if it still maps to w.
func (r *Registry) Remove(id string, w Window) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok || e.win != w {
		return false
	}
	delete(r.entries, id)
	return true
}

// Snapshot returns every live window at the time of the call.
func (r *Registry) Snapshot() []Window {
	r.mu.Lock()
	defer r.mu.Unlock()

	windows := make([]Window, 0, len(r.entries))
	for _, e := range r.entries {
		windows = append(windows, e.win)
	}
	return windows
}

// seal stops further inserts and returns every live window.
func (r *Registry) seal() []Window {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
	return r.Snapshot()
}

// Len returns the number of live windows.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// List returns entry info sorted by id.
func (r *Registry) List() []Info {
	r.mu.Lock()
	infos := make([]Info, 0, len(r.entries))
	for id, e := range r.entries {
		infos = append(infos, Info{
			ID:         id,
			Policy:     e.policy,
			InstanceID: e.instanceID,
			CreatedAt:  e.createdAt,
		})
	}
	r.mu.Unlock()

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}

func (r *Registry) instanceID(id string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[id]; ok {
		return e.instanceID
	}
	return ""
}
