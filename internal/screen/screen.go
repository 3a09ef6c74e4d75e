// Package screen implements the local form list: it shows loose forms and
// saved instance folders as one naturally sorted, single-choice list and
// deletes the selected entry after a Yes/No confirmation.
package screen

import (
	"formkeep/internal/entry"
	"formkeep/internal/log"
	"formkeep/internal/natural"
)

// TabID is the header slot the entry count is written to.
const TabID = "tab1"

// NoSelection is the value of Selected when no row is chosen.
const NoSelection = -1

// Config holds the two roots the screen lists.
type Config struct {
	FormsRoot     string
	InstancesRoot string
}

// State is where the delete flow currently is.
type State int

const (
	Idle State = iota
	ConfirmPending
)

func (s State) String() string {
	if s == ConfirmPending {
		return "confirm_pending"
	}
	return "idle"
}

// MenuID identifies an options-menu action.
type MenuID int

const (
	MenuDelete MenuID = iota + 1
)

// MenuItem is one options-menu action.
type MenuItem struct {
	ID    MenuID
	Title string
	Icon  string
}

// Screen is the form list. It is not safe for concurrent use; hosts call it
// from their single event loop.
type Screen struct {
	cfg   Config
	store Store
	view  View
	host  TabHost
	text  Messages

	list     *entry.List
	selected int

	dialog        Dialog
	deletePos     int
	reloadPending bool
}

// New creates a screen. Nothing is listed until Resume.
func New(cfg Config, store Store, view View, host TabHost, text Messages) *Screen {
	return &Screen{
		cfg:       cfg,
		store:     store,
		view:      view,
		host:      host,
		text:      text,
		list:      entry.NewList(nil),
		selected:  NoSelection,
		deletePos: NoSelection,
	}
}

// BuildView relists both roots, sorts the result and binds it to the view.
func (s *Screen) BuildView() {
	files, err := s.store.ListFiles(s.cfg.FormsRoot)
	if err != nil {
		log.LogError(err, "listing forms failed")
		files = nil
	}
	folders, err := s.store.ListFolders(s.cfg.InstancesRoot)
	if err != nil {
		log.LogError(err, "listing instances failed")
		folders = nil
	}

	paths := make([]string, 0, len(files)+len(folders))
	paths = append(paths, files...)
	paths = append(paths, folders...)
	natural.Sort(paths)

	s.list = entry.NewList(paths)
	log.Debugf("built form list with %d entries", s.list.Len())

	if s.list.Len() > 0 {
		s.view.RenderList(s.list.Names())
	} else {
		s.view.ShowEmptyState()
	}
}

// RefreshData clears the selection and writes the entry count to the tab
// header.
func (s *Screen) RefreshData() {
	s.view.ClearChoices()
	s.selected = NoSelection
	s.host.SetTabHeader(s.text.LocalFilesTab(s.list.Len()), TabID)
}

// Resume rebuilds everything from disk. Hosts call it whenever the screen
// becomes visible. An open confirmation is dropped first, as in Pause.
func (s *Screen) Resume() {
	s.Pause()
	s.reloadPending = false
	s.BuildView()
	s.RefreshData()
}

// Pause force-closes an open confirmation; its pending delete is dropped.
func (s *Screen) Pause() {
	if s.dialog != nil && s.dialog.IsShowing() {
		s.dialog.Dismiss()
	}
	s.closeDialog()
}

// Reload is called when a root changed on disk while the screen is shown.
// A rebuild while a confirmation is open would move the remembered index
// under the user's feet, so it waits until the dialog closes.
func (s *Screen) Reload() {
	if s.State() == ConfirmPending {
		s.reloadPending = true
		return
	}
	s.Resume()
}

// Select marks row i as the single choice. An out-of-range index clears the
// selection.
func (s *Screen) Select(i int) {
	if i < 0 || i >= s.list.Len() {
		s.selected = NoSelection
		return
	}
	s.selected = i
}

// Selected returns the chosen row or NoSelection.
func (s *Screen) Selected() int {
	return s.selected
}

// State reports whether a confirmation is pending.
func (s *Screen) State() State {
	if s.dialog != nil && s.dialog.IsShowing() {
		return ConfirmPending
	}
	return Idle
}

// Len returns the number of rows.
func (s *Screen) Len() int {
	return s.list.Len()
}

// Entries returns the rows in display order.
func (s *Screen) Entries() []entry.Entry {
	return s.list.Entries()
}

// Names returns the display names in order.
func (s *Screen) Names() []string {
	return s.list.Names()
}

// OptionsMenu lists the screen's menu actions.
func (s *Screen) OptionsMenu() []MenuItem {
	return []MenuItem{{ID: MenuDelete, Title: s.text.DeleteFile(), Icon: "delete"}}
}

// MenuSelected handles a menu action and reports whether id was one of
// ours.
func (s *Screen) MenuSelected(id MenuID) bool {
	switch id {
	case MenuDelete:
		s.requestDelete()
		return true
	}
	return false
}

func (s *Screen) requestDelete() {
	if s.State() == ConfirmPending {
		return
	}
	if s.selected == NoSelection {
		s.view.Notify(s.text.NoSelectError())
		return
	}

	s.deletePos = s.selected
	e, _ := s.list.At(s.deletePos)
	s.dialog = s.view.ShowConfirmDialog(
		s.text.DeleteConfirm(e.DisplayName),
		s.text.Yes(),
		s.text.No(),
		s.confirmDelete,
		s.cancelDelete,
	)
}

func (s *Screen) confirmDelete() {
	pos := s.deletePos
	s.closeDialog()
	s.deleteEntry(pos)
	s.RefreshData()
	s.flushReload()
}

func (s *Screen) cancelDelete() {
	s.closeDialog()
	s.flushReload()
}

func (s *Screen) closeDialog() {
	s.dialog = nil
	s.deletePos = NoSelection
}

func (s *Screen) flushReload() {
	if s.reloadPending {
		s.reloadPending = false
		s.Resume()
	}
}

func (s *Screen) deleteEntry(pos int) {
	e, ok := s.list.At(pos)
	if !ok {
		return
	}

	if !s.store.DeleteRecursive(e.FullPath) {
		log.LogWithFields(log.F("path", e.FullPath)).Warn("Delete failed")
		s.view.Notify(s.text.DeletedError(e.DisplayName))
		return
	}

	s.view.Notify(s.text.DeletedOK(e.DisplayName))
	s.list.Remove(pos)
	if s.list.Len() == 0 {
		s.view.ShowEmptyState()
		return
	}
	s.view.RenderList(s.list.Names())
}
