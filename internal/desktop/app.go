package desktop

import (
	"fmt"
	"log"
	"net/url"

	"github.com/pkg/browser"

	"github.com/awsl-project/opalchat/internal/window"
)

// App 绑定到前端的命令服务
type App struct {
	opener      *window.Opener
	settingsURL string
	openBrowser func(url string) error
}

// NewApp creates the command service. settingsURL is where a new settings window loads from.
func NewApp(opener *window.Opener, settingsURL string) *App {
	return &App{
		opener:      opener,
		settingsURL: settingsURL,
		openBrowser: browser.OpenURL,
	}
}

// Greet returns a greeting for name.
func (a *App) Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}

// OpenSettingsWindow shows the settings window, creating it if needed.
func (a *App) OpenSettingsWindow() error {
	if err := a.opener.OpenSettings(a.settingsURL); err != nil {
		log.Printf("[Desktop] Failed to open settings window: %v", err)
		return err
	}
	return nil
}

// OpenURL opens an external link in the system browser.
func (a *App) OpenURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	switch u.Scheme {
	case "http", "https", "mailto":
	default:
		return fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}

	if err := a.openBrowser(u.String()); err != nil {
		return fmt.Errorf("open %s: %w", u.String(), err)
	}
	return nil
}
