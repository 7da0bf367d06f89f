package window

// Well-known window identifiers
const (
	// PrimaryWindowID 主窗口，关闭即退出应用
	PrimaryWindowID = "main"
	// SettingsWindowID 设置窗口，关闭仅隐藏
	SettingsWindowID = "settings"
)

// Settings window geometry
const (
	SettingsTitle  = "Settings"
	SettingsWidth  = 600
	SettingsHeight = 400
)

// Window is a live on-screen surface owned by the host window manager.
type Window interface {
	ID() string
	Show() error
	Hide() error
	Focus() error
	// Close destroys the window. It does not go through close-request observers.
	Close() error
	// OnCloseRequest registers an observer for the user-facing close action.
	OnCloseRequest(fn func(*CloseRequest))
}

// Options describes a window to construct.
type Options struct {
	ID       string
	Title    string
	Width    int
	Height   int
	Centered bool
	Hidden   bool
	URL      string
}

// Manager creates windows on the host.
type Manager interface {
	Create(opts Options) (Window, error)
}

// Terminator ends the process. A returned error is unrecoverable.
type Terminator interface {
	Exit(code int) error
}

// SettingsOptions returns the fixed options of the settings window.
func SettingsOptions(url string) Options {
	return Options{
		ID:       SettingsWindowID,
		Title:    SettingsTitle,
		Width:    SettingsWidth,
		Height:   SettingsHeight,
		Centered: true,
		URL:      url,
	}
}

// CloseRequest is raised when the user asks to close a window.
type CloseRequest struct {
	WindowID  string
	prevented bool
}

// NewCloseRequest creates a request with default close allowed.
func NewCloseRequest(id string) *CloseRequest {
	return &CloseRequest{WindowID: id}
}

// PreventDefault stops the host from destroying the window.
func (r *CloseRequest) PreventDefault() {
	r.prevented = true
}

// DefaultPrevented reports whether the default close was suppressed.
func (r *CloseRequest) DefaultPrevented() bool {
	return r.prevented
}
