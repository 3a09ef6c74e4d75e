//go:build !nogui

// Package gui hosts the form list in a fyne window.
package gui

import (
	"time"

	"formkeep/internal/config"
	"formkeep/internal/i18n"
	"formkeep/internal/log"
	"formkeep/internal/screen"
	"formkeep/internal/watch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config

	view   *formList
	screen *screen.Screen
	text   *i18n.Catalog

	watcher *watch.Watcher
	ignore  func(name string) bool
}

// ignorer is implemented by stores that hide some names from the list.
type ignorer interface {
	Ignored(name string) bool
}

// NewApp creates the application on a fresh fyne app.
func NewApp(cfg *config.Config, store screen.Store) *App {
	return NewWithApp(app.NewWithID("org.formkeep"), cfg, store)
}

// NewWithApp builds the window on an existing fyne app. Tests pass the
// fyne test app here.
func NewWithApp(fyneApp fyne.App, cfg *config.Config, store screen.Store) *App {
	text := i18n.NewCatalog(cfg.Settings.Language)
	a := &App{
		fyneApp:    fyneApp,
		mainWindow: fyneApp.NewWindow("formkeep"),
		cfg:        cfg,
		text:       text,
	}
	if ig, ok := store.(ignorer); ok {
		a.ignore = ig.Ignored
	}

	notifyFor := time.Duration(cfg.Settings.NotifySeconds) * time.Second
	a.view = newFormList(a.mainWindow, text.NoItems(), notifyFor)
	a.screen = screen.New(screen.Config{
		FormsRoot:     cfg.Directories.Forms,
		InstancesRoot: cfg.Directories.Instances,
	}, store, a.view, a.view, text)
	a.view.onPick = a.screen.Select

	a.setupMainWindow()
	a.setupLifecycle()
	return a
}

func (a *App) setupMainWindow() {
	actions := make([]widget.ToolbarItem, 0, 3)
	menuItems := make([]*fyne.MenuItem, 0, 2)
	for _, item := range a.screen.OptionsMenu() {
		id := item.ID
		do := func() { a.screen.MenuSelected(id) }
		actions = append(actions, widget.NewToolbarAction(iconFor(item.Icon), do))
		menuItems = append(menuItems, fyne.NewMenuItem(item.Title, do))
	}
	actions = append(actions, widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.ViewRefreshIcon(), a.screen.Resume))

	a.mainWindow.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("File", menuItems...)))
	a.mainWindow.SetContent(container.NewBorder(
		widget.NewToolbar(actions...),
		a.view.notice,
		nil, nil,
		a.view.tabs,
	))
	a.mainWindow.Resize(fyne.NewSize(480, 640))
}

func iconFor(name string) fyne.Resource {
	switch name {
	case "delete":
		return theme.DeleteIcon()
	default:
		return theme.QuestionIcon()
	}
}

// setupLifecycle maps the window coming to the foreground to Resume and
// leaving it to Pause.
func (a *App) setupLifecycle() {
	lc := a.fyneApp.Lifecycle()
	lc.SetOnEnteredForeground(a.screen.Resume)
	lc.SetOnExitedForeground(a.screen.Pause)
	lc.SetOnStopped(a.stopWatching)
}

// startWatching reloads the list whenever a root changes.
func (a *App) startWatching() {
	if !a.cfg.Settings.Watch {
		return
	}
	var opts []watch.Option
	if a.ignore != nil {
		opts = append(opts, watch.WithIgnore(a.ignore))
	}
	w, err := watch.WatchRoots(a.cfg.Directories.Forms, a.cfg.Directories.Instances, opts...)
	if err != nil {
		log.LogError(err, "live refresh disabled")
		return
	}
	a.watcher = w
	go func() {
		for range w.Changes() {
			fyne.Do(a.screen.Reload)
		}
	}()
}

func (a *App) stopWatching() {
	if a.watcher != nil {
		a.watcher.Stop()
		a.watcher = nil
	}
}

// GetMainWindow returns the main window instance
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Screen exposes the hosted screen.
func (a *App) Screen() *screen.Screen {
	return a.screen
}

// Run shows the window and blocks until it is closed.
func (a *App) Run() {
	a.screen.Resume()
	a.startWatching()
	a.mainWindow.ShowAndRun()
}

// Available reports whether this build has a GUI.
func Available() bool {
	return true
}
