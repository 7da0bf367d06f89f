//go:build !windows

package desktop

import "github.com/awsl-project/opalchat/internal/window"

// TrayManager stub for non-Windows platforms
type TrayManager struct{}

// NewTrayManager creates a no-op tray manager
func NewTrayManager(controller *window.Controller, app *App) *TrayManager {
	return &TrayManager{}
}

// Start is a no-op on non-Windows platforms
func (t *TrayManager) Start() {}

// UpdateStatus is a no-op on non-Windows platforms
func (t *TrayManager) UpdateStatus() {}
