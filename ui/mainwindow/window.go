// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"

	"media-wall/internal/app"
	"media-wall/internal/layout"
	"media-wall/internal/version"
	"media-wall/ui/prefs"
	"media-wall/ui/wall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	prefKeyLastFolder = "lastFolder"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app       fyne.App
	state     *app.State
	prefs     *prefs.Prefs
	wall      *wall.Wall
	statusBar *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, tuning layout.Tuning, preferences *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Media Wall")
	win.Resize(fyne.NewSize(1280, 800))

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  preferences,
	}

	mw.wall = wall.New(state, tuning)

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.statusBar = widget.NewLabel("Ready")

	toolbar := mw.createToolbar()

	content := container.NewBorder(
		toolbar,                           // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		mw.wall,                           // center
	)

	mw.SetContent(content)
}

// createToolbar creates the toolbar with the folder and layout controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	openBtn := widget.NewButton("Open Folder...", mw.onOpenFolder)
	shuffleBtn := widget.NewButton("Shuffle", mw.onShuffle)

	return container.NewHBox(
		openBtn,
		shuffleBtn,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Folder...", mw.onOpenFolder),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	layoutMenu := fyne.NewMenu("Layout",
		fyne.NewMenuItem("Shuffle", mw.onShuffle),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, layoutMenu, helpMenu)
	mw.SetMainMenu(mainMenu)
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventItemsChanged, func(data interface{}) {
		if count, ok := data.(int); ok {
			mw.updateStatus(fmt.Sprintf("Loaded %d items", count))
		}
	})

	mw.state.On(app.EventLayoutComplete, func(data interface{}) {
		mw.wall.Reload()
		stats := mw.state.Stats()
		mw.updateStatus(fmt.Sprintf(
			"Laid out %d items - mean area %.0f px2 (sd %.0f), occupancy %.0f%%",
			stats.Items, stats.MeanArea, stats.StdDevArea, stats.Occupancy*100))
	})

	mw.state.On(app.EventItemMoved, func(data interface{}) {
		mw.wall.Refresh()
	})

	mw.state.On(app.EventCanvasGrown, func(data interface{}) {
		mw.wall.Refresh()
	})

	mw.state.On(app.EventItemSelected, func(data interface{}) {
		if id, ok := data.(string); ok {
			for _, item := range mw.state.Items() {
				if item.ID == id {
					mw.updateStatus("Selected: " + item.Name)
					return
				}
			}
		}
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// OpenFolderPath loads a folder given on the command line.
func (mw *MainWindow) OpenFolderPath(path string) {
	mw.openFolder(path)
}

// RestoreLastFolder reopens the folder from the previous session, if any.
func (mw *MainWindow) RestoreLastFolder() {
	path := mw.prefs.String(prefKeyLastFolder)
	if path == "" {
		return
	}
	mw.openFolder(path)
}

// SavePreferencesIfChanged flushes dirty preferences to disk.
func (mw *MainWindow) SavePreferencesIfChanged() error {
	return mw.prefs.SaveIfDirty()
}

// getLastDir returns the last used folder as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefKeyLastFolder)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(filepath.Dir(path))
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// Menu action handlers

func (mw *MainWindow) onOpenFolder() {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		if uri == nil {
			return
		}
		mw.openFolder(uri.Path())
	}, mw.Window)
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) openFolder(path string) {
	mw.prefs.SetString(prefKeyLastFolder, path)
	mw.SetTitle("Media Wall - " + filepath.Base(path))
	mw.updateStatus("Loading " + path + "...")

	viewport := mw.wall.ViewportSize()
	go func() {
		if err := mw.state.OpenFolder(path, viewport); err != nil {
			dialog.ShowError(err, mw.Window)
			mw.updateStatus("Failed to open " + path)
		}
	}()
}

func (mw *MainWindow) onShuffle() {
	if len(mw.state.Items()) == 0 {
		mw.updateStatus("No folder open")
		return
	}
	mw.state.Relayout(mw.wall.ViewportSize())
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Media Wall",
		fmt.Sprintf("Media Wall v%s\n\n"+
			"A freeform canvas for browsing image collections.\n\n"+
			"Drag items to rearrange them; drag the background to pan.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
