package desktop

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"github.com/awsl-project/opalchat/internal/window"
)

// Manager 基于 Wails 的窗口管理器
type Manager struct {
	mu  sync.RWMutex
	app *application.App
}

// NewManager creates a window manager. Windows can be created once Bind is called.
func NewManager() *Manager {
	return &Manager{}
}

// Bind sets the application windows are created in.
func (m *Manager) Bind(app *application.App) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.app = app
}

// Create builds a webview window for opts.
func (m *Manager) Create(opts window.Options) (window.Window, error) {
	m.mu.RLock()
	app := m.app
	m.mu.RUnlock()
	if app == nil {
		return nil, errors.New("application not initialized")
	}

	w := app.Window.NewWithOptions(application.WebviewWindowOptions{
		Name:   opts.ID,
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		URL:    opts.URL,
		Hidden: opts.Hidden,
	})
	if opts.Centered {
		w.Center()
	}

	log.Printf("[Desktop] Created webview window %s", opts.ID)
	return newWebviewWindow(opts.ID, w), nil
}

// webviewWindow adapts a Wails window to window.Window.
type webviewWindow struct {
	id         string
	w          *application.WebviewWindow
	destroying atomic.Bool

	mu        sync.Mutex
	observers []func(*window.CloseRequest)
}

func newWebviewWindow(id string, w *application.WebviewWindow) *webviewWindow {
	ww := &webviewWindow{id: id, w: w}
	w.RegisterHook(events.Common.WindowClosing, ww.onClosing)
	return ww
}

func (ww *webviewWindow) onClosing(event *application.WindowEvent) {
	// Close() 主动销毁时不经过关闭策略
	if ww.destroying.Load() {
		return
	}

	ww.mu.Lock()
	observers := make([]func(*window.CloseRequest), len(ww.observers))
	copy(observers, ww.observers)
	ww.mu.Unlock()

	req := window.NewCloseRequest(ww.id)
	for _, fn := range observers {
		fn(req)
	}
	if req.DefaultPrevented() {
		event.Cancel()
	}
}

func (ww *webviewWindow) ID() string {
	return ww.id
}

func (ww *webviewWindow) Show() error {
	ww.w.Show()
	return nil
}

func (ww *webviewWindow) Hide() error {
	ww.w.Hide()
	return nil
}

func (ww *webviewWindow) Focus() error {
	ww.w.Focus()
	return nil
}

func (ww *webviewWindow) Close() error {
	ww.destroying.Store(true)
	ww.w.Close()
	return nil
}

func (ww *webviewWindow) OnCloseRequest(fn func(*window.CloseRequest)) {
	ww.mu.Lock()
	defer ww.mu.Unlock()
	ww.observers = append(ww.observers, fn)
}
