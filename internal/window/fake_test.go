package window

import (
	"sync"
)

type fakeWindow struct {
	mu        sync.Mutex
	id        string
	opts      Options
	visible   bool
	focused   bool
	destroyed bool
	hides     int
	observers []func(*CloseRequest)

	showErr  error
	focusErr error
	hideErr  error
	closeErr error
}

func newFakeWindow(id string) *fakeWindow {
	return &fakeWindow{id: id, visible: true, opts: Options{ID: id}}
}

func (w *fakeWindow) ID() string { return w.id }

func (w *fakeWindow) Show() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.showErr != nil {
		return w.showErr
	}
	w.visible = true
	return nil
}

func (w *fakeWindow) Hide() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.hides++
	if w.hideErr != nil {
		return w.hideErr
	}
	w.visible = false
	w.focused = false
	return nil
}

func (w *fakeWindow) Focus() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.focusErr != nil {
		return w.focusErr
	}
	w.focused = true
	return nil
}

func (w *fakeWindow) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closeErr != nil {
		return w.closeErr
	}
	w.destroyed = true
	w.visible = false
	return nil
}

func (w *fakeWindow) OnCloseRequest(fn func(*CloseRequest)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.observers = append(w.observers, fn)
}

// userClose simulates the platform close button and reports whether the
// host would have destroyed the window.
func (w *fakeWindow) userClose() bool {
	w.mu.Lock()
	observers := append([]func(*CloseRequest){}, w.observers...)
	w.mu.Unlock()

	req := NewCloseRequest(w.id)
	for _, fn := range observers {
		fn(req)
	}
	if req.DefaultPrevented() {
		return false
	}
	w.mu.Lock()
	w.destroyed = true
	w.visible = false
	w.mu.Unlock()
	return true
}

func (w *fakeWindow) state() (visible, focused, destroyed bool, hides int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible, w.focused, w.destroyed, w.hides
}

type fakeManager struct {
	mu        sync.Mutex
	created   []*fakeWindow
	createErr error
}

func (m *fakeManager) Create(opts Options) (Window, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	w := newFakeWindow(opts.ID)
	w.opts = opts
	w.visible = !opts.Hidden
	m.created = append(m.created, w)
	return w, nil
}

func (m *fakeManager) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.created)
}

type fakeTerminator struct {
	mu    sync.Mutex
	codes []int
	err   error
}

func (t *fakeTerminator) Exit(code int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.codes = append(t.codes, code)
	return t.err
}

func (t *fakeTerminator) exitCodes() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]int(nil), t.codes...)
}
