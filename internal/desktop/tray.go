//go:build windows

package desktop

import (
	_ "embed"
	"fmt"
	"log"

	"github.com/getlantern/systray"

	"github.com/awsl-project/opalchat/internal/window"
)

//go:embed icon.ico
var iconData []byte

// TrayManager 管理系统托盘
type TrayManager struct {
	controller   *window.Controller
	app          *App
	menuShow     *systray.MenuItem
	menuWindows  *systray.MenuItem
	menuSettings *systray.MenuItem
	menuQuit     *systray.MenuItem
}

// NewTrayManager 创建托盘管理器
func NewTrayManager(controller *window.Controller, app *App) *TrayManager {
	return &TrayManager{
		controller: controller,
		app:        app,
	}
}

// Start 启动托盘（阻塞，需在独立 goroutine 中调用）
func (t *TrayManager) Start() {
	systray.Run(t.onReady, t.onExit)
}

// onReady 托盘就绪回调
func (t *TrayManager) onReady() {
	log.Println("[Tray] Initializing system tray...")

	systray.SetIcon(iconData)
	systray.SetTitle("OpalChat")
	systray.SetTooltip("OpalChat")

	t.menuShow = systray.AddMenuItem("Show window", "Show the main window")
	systray.AddSeparator()

	// 窗口数量（只读）
	t.menuWindows = systray.AddMenuItem("Windows: -", "Open windows")
	t.menuWindows.Disable()

	systray.AddSeparator()
	t.menuSettings = systray.AddMenuItem("Settings", "Open the settings window")
	systray.AddSeparator()
	t.menuQuit = systray.AddMenuItem("Quit", "Quit OpalChat")

	t.UpdateStatus()

	go t.handleMenuEvents()
}

// onExit 托盘退出回调
func (t *TrayManager) onExit() {
	log.Println("[Tray] System tray exited")
}

// handleMenuEvents 处理菜单事件
func (t *TrayManager) handleMenuEvents() {
	for {
		select {
		case <-t.menuShow.ClickedCh:
			log.Println("[Tray] Show window clicked")
			t.showWindow()

		case <-t.menuSettings.ClickedCh:
			log.Println("[Tray] Settings clicked")
			if err := t.app.OpenSettingsWindow(); err != nil {
				log.Printf("[Tray] Failed to open settings: %v", err)
			}

		case <-t.menuQuit.ClickedCh:
			log.Println("[Tray] Quit clicked")
			t.quit()
			return
		}
		t.UpdateStatus()
	}
}

// showWindow 显示主窗口
func (t *TrayManager) showWindow() {
	w, ok := t.controller.Registry().Lookup(window.PrimaryWindowID)
	if !ok {
		log.Println("[Tray] Main window not found")
		return
	}
	if err := w.Show(); err != nil {
		log.Printf("[Tray] Failed to show main window: %v", err)
		return
	}
	if err := w.Focus(); err != nil {
		log.Printf("[Tray] Failed to focus main window: %v", err)
	}
}

// quit 等同于关闭主窗口
func (t *TrayManager) quit() {
	log.Println("[Tray] Quitting application...")
	if err := t.controller.RequestClose(window.PrimaryWindowID); err != nil {
		log.Printf("[Tray] Failed to request main window close: %v", err)
	}
	systray.Quit()
}

// UpdateStatus 更新托盘菜单状态
func (t *TrayManager) UpdateStatus() {
	if t.controller == nil {
		return
	}
	infos := t.controller.Registry().List()
	t.menuWindows.SetTitle(fmt.Sprintf("Windows: %d", len(infos)))
	systray.SetTooltip(windowsTooltip(infos))
}
