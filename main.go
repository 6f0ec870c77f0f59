// Package main provides the entry point for the Media Wall application.
package main

import (
	"os"
	"path/filepath"
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"github.com/charmbracelet/log"

	"media-wall/internal/app"
	"media-wall/internal/layout"
	"media-wall/ui/mainwindow"
	"media-wall/ui/prefs"
)

const appTitle = "Media Wall"

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "media-wall",
	})
	if os.Getenv("MEDIAWALL_DEBUG") != "" {
		logger.SetLevel(log.DebugLevel)
	}

	tuning := loadTuning(logger)
	appPrefs := prefs.Load()
	appState := app.NewState(tuning, logger)

	fyneApp := fyneapp.NewWithID("io.mediawall.app")
	fyneApp.Settings().SetTheme(&app.WallTheme{})

	win := mainwindow.New(fyneApp, appState, tuning, appPrefs)

	// A folder argument skips the last-session restore.
	if len(os.Args) > 1 {
		win.OpenFolderPath(os.Args[1])
	} else {
		win.RestoreLastFolder()
	}

	setupHotReload(win, logger)

	win.ShowAndRun()
}

// loadTuning reads layout tuning overrides from the user config dir, falling
// back to defaults when the file is absent or malformed.
func loadTuning(logger *log.Logger) layout.Tuning {
	configDir, err := os.UserConfigDir()
	if err != nil {
		logger.Warn("no user config dir, using default tuning", "err", err)
		return layout.DefaultTuning()
	}
	path := filepath.Join(configDir, "media-wall", "tuning.toml")
	tuning, err := layout.LoadTuning(path)
	if err != nil {
		logger.Warn("failed to load tuning, using defaults", "path", path, "err", err)
		return layout.DefaultTuning()
	}
	return tuning
}

// setupHotReload configures automatic restart detection when the binary is
// recompiled.
func setupHotReload(win *mainwindow.MainWindow, logger *log.Logger) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		logger.Warn("hot reload: unable to determine executable path")
		return
	}

	logger.Debug("hot reload: watching", "path", reloader.ExecPath())

	reloader.OnTick(func() {
		if err := win.SavePreferencesIfChanged(); err != nil {
			logger.Warn("failed to save preferences", "err", err)
		}
	})

	reloader.OnNewBinary(func() {
		logger.Info("hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if !restart {
					reloader.ResetBaseline()
					reloader.Start()
					return
				}
				if err := win.SavePreferencesIfChanged(); err != nil {
					logger.Warn("failed to save preferences", "err", err)
				}
				logger.Info("hot reload: restarting")
				if err := reloader.Restart(); err != nil {
					logger.Error("hot reload: restart failed", "err", err)
				}
			}, win.Window)
	})

	reloader.Start()
}
