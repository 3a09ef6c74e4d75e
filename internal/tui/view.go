package tui

import "formkeep/internal/screen"

// termView is the screen.View and screen.TabHost of the terminal UI. It only
// records state; Model.View draws it.
type termView struct {
	names  []string
	empty  bool
	choice int

	notice    string
	noticeSeq int

	dialog *termDialog
	tabs   map[string]string
}

func newTermView() *termView {
	return &termView{choice: screen.NoSelection, tabs: map[string]string{}}
}

func (v *termView) RenderList(names []string) {
	v.names = append(v.names[:0:0], names...)
	v.empty = false
}

func (v *termView) ShowEmptyState() {
	v.names = nil
	v.empty = true
}

func (v *termView) ShowConfirmDialog(message, yes, no string, onYes, onNo func()) screen.Dialog {
	v.dialog = &termDialog{
		message: message,
		yes:     yes,
		no:      no,
		onYes:   onYes,
		onNo:    onNo,
		showing: true,
	}
	return v.dialog
}

func (v *termView) Notify(message string) {
	v.notice = message
	v.noticeSeq++
}

func (v *termView) ClearChoices() {
	v.choice = screen.NoSelection
}

func (v *termView) SetTabHeader(text, tabID string) {
	v.tabs[tabID] = text
}

// openDialog returns the dialog if it is still on screen.
func (v *termView) openDialog() *termDialog {
	if v.dialog != nil && v.dialog.showing {
		return v.dialog
	}
	return nil
}

// termDialog has no cancel path: it closes through its buttons or Dismiss.
type termDialog struct {
	message, yes, no string
	onYes, onNo      func()
	showing          bool
	focusNo          bool
}

func (d *termDialog) Dismiss()        { d.showing = false }
func (d *termDialog) IsShowing() bool { return d.showing }

func (d *termDialog) press(yes bool) {
	if !d.showing {
		return
	}
	d.showing = false
	if yes {
		d.onYes()
		return
	}
	d.onNo()
}
