//go:build nogui
// +build nogui

package gui

import (
	"formkeep/internal/config"
	"formkeep/internal/log"
	"formkeep/internal/screen"
)

// App is a stub for builds with GUI disabled.
type App struct{}

// NewApp returns the stub.
func NewApp(cfg *config.Config, store screen.Store) *App {
	return &App{}
}

// Run reports that the GUI is missing.
func (a *App) Run() {
	log.Error("GUI is disabled in this build, use the tui command instead")
}

// Available returns whether the GUI is available in this build
func Available() bool {
	return false
}
