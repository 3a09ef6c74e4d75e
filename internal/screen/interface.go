package screen

// View is what the screen needs from a UI toolkit. All calls arrive on the
// host's event loop.
type View interface {
	// RenderList binds names to the list widget, one selectable row each.
	RenderList(names []string)
	// ShowEmptyState replaces the list with the empty-state view.
	ShowEmptyState()
	// ShowConfirmDialog opens a modal that can only be closed through its
	// two buttons. Exactly one of onYes or onNo runs, unless the dialog is
	// dismissed first.
	ShowConfirmDialog(message, yes, no string, onYes, onNo func()) Dialog
	// Notify shows a short-lived message.
	Notify(message string)
	// ClearChoices removes the radio mark from every row.
	ClearChoices()
}

// Dialog is a handle on an open confirmation dialog.
type Dialog interface {
	Dismiss()
	IsShowing() bool
}

// TabHost is the tabbed container the screen lives in.
type TabHost interface {
	SetTabHeader(text, tabID string)
}

// Store lists and removes entries on disk.
type Store interface {
	ListFiles(root string) ([]string, error)
	ListFolders(root string) ([]string, error)
	DeleteRecursive(path string) bool
}

// Messages renders the user-facing strings.
type Messages interface {
	LocalFilesTab(count int) string
	DeleteFile() string
	NoSelectError() string
	DeleteConfirm(name string) string
	DeletedOK(name string) string
	DeletedError(name string) string
	Yes() string
	No() string
}
