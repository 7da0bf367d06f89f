package main

import (
	"embed"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wailsapp/wails/v3/pkg/application"

	"github.com/awsl-project/opalchat/internal/config"
	"github.com/awsl-project/opalchat/internal/desktop"
	"github.com/awsl-project/opalchat/internal/version"
	"github.com/awsl-project/opalchat/internal/window"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// Parse flags
	configPath := flag.String("config", "", "Config file (default: ~/.config/opalchat/config.toml)")
	debug := flag.Bool("debug", false, "Load windows from the dev server")
	showVersion := flag.Bool("version", false, "Show version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("opalchat", version.Full())
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *debug {
		cfg.Debug = true
	}
	log.Printf("[Config] Starting OpalChat %s (debug=%v)", version.Info(), cfg.Debug)

	// Window lifecycle core
	registry := window.NewRegistry()
	shutdown := window.NewShutdownCoordinator(registry, desktop.NewProcessTerminator(), cfg.Shutdown.GraceInterval)
	controller := window.NewController(registry, shutdown)
	manager := desktop.NewManager()
	opener := window.NewOpener(controller, manager)
	settingsURL := cfg.ContentURL(config.SettingsRoute)
	commands := desktop.NewApp(opener, settingsURL)

	wailsApp := application.New(application.Options{
		Name:        "OpalChat",
		Description: "OpalChat desktop",
		Services: []application.Service{
			application.NewService(commands),
		},
		Assets: application.AssetOptions{
			Handler: application.AssetFileServerFS(assets),
		},
		// 窗口关闭只会隐藏，退出由主窗口的关闭请求负责
		Mac: application.MacOptions{
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
		Windows: application.WindowsOptions{
			DisableQuitOnLastWindowClosed: true,
		},
		Linux: application.LinuxOptions{
			DisableQuitOnLastWindowClosed: true,
			ProgramName:                  "opalchat",
		},
	})
	manager.Bind(wailsApp)

	// Pre-declared windows
	mainWindow, err := manager.Create(window.Options{
		ID:       window.PrimaryWindowID,
		Title:    cfg.Main.Title,
		Width:    cfg.Main.Width,
		Height:   cfg.Main.Height,
		Centered: true,
		URL:      cfg.ContentURL(""),
	})
	if err != nil {
		log.Fatalf("Failed to create main window: %v", err)
	}
	if err := controller.Attach(mainWindow); err != nil {
		log.Fatalf("Failed to attach main window: %v", err)
	}

	if cfg.Settings.Preload {
		opts := window.SettingsOptions(settingsURL)
		opts.Hidden = true
		settingsWindow, err := manager.Create(opts)
		if err != nil {
			log.Fatalf("Failed to create settings window: %v", err)
		}
		if err := controller.Attach(settingsWindow); err != nil {
			log.Fatalf("Failed to attach settings window: %v", err)
		}
	}

	// 托盘在独立 goroutine 中运行，避免阻塞主线程
	go desktop.NewTrayManager(controller, commands).Start()

	if err := wailsApp.Run(); err != nil {
		log.Fatal("Error:", err)
	}
}
