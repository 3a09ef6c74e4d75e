//go:build !nogui

package gui

import (
	"sync"
	"time"

	"formkeep/internal/screen"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// formList owns the widgets of the list tab and implements screen.View and
// screen.TabHost on top of them.
type formList struct {
	window fyne.Window

	tabs *container.AppTabs
	tab  *container.TabItem

	list  *widget.List
	empty *widget.Label
	body  *fyne.Container

	notice    *widget.Label
	notifyFor time.Duration

	mu        sync.Mutex
	names     []string
	noticeSeq int

	dialog *confirmDialog
	onPick func(int)
}

func newFormList(window fyne.Window, emptyText string, notifyFor time.Duration) *formList {
	f := &formList{window: window, notifyFor: notifyFor}

	f.list = widget.NewList(
		func() int { return len(f.names) },
		func() fyne.CanvasObject { return widget.NewLabel("template.xml") },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			if id < len(f.names) {
				o.(*widget.Label).SetText(f.names[id])
			}
		},
	)
	f.list.OnSelected = func(id widget.ListItemID) {
		if f.onPick != nil {
			f.onPick(id)
		}
	}

	f.empty = widget.NewLabel(emptyText)
	f.empty.Alignment = fyne.TextAlignCenter
	f.empty.Hide()
	f.body = container.NewStack(f.list, f.empty)

	f.notice = widget.NewLabel("")
	f.notice.Importance = widget.MediumImportance

	f.tab = container.NewTabItem("", f.body)
	f.tabs = container.NewAppTabs(f.tab)
	return f
}

func (f *formList) RenderList(names []string) {
	f.names = append(f.names[:0:0], names...)
	f.empty.Hide()
	f.list.Show()
	f.list.Refresh()
}

func (f *formList) ShowEmptyState() {
	f.names = nil
	f.list.Refresh()
	f.list.Hide()
	f.empty.Show()
}

// ShowConfirmDialog opens a dialog without a dismiss button. Its only exits
// are Yes and No.
func (f *formList) ShowConfirmDialog(message, yes, no string, onYes, onNo func()) screen.Dialog {
	d := &confirmDialog{}
	d.yes = widget.NewButton(yes, func() { d.answer(onYes) })
	d.yes.Importance = widget.DangerImportance
	d.no = widget.NewButton(no, func() { d.answer(onNo) })

	content := container.NewVBox(
		widget.NewLabel(message),
		container.NewGridWithColumns(2, d.no, d.yes),
	)
	d.dlg = dialog.NewCustomWithoutButtons("", content, f.window)
	d.showing = true
	d.dlg.Show()
	f.dialog = d
	return d
}

// Notify shows message under the list until notifyFor has passed or a newer
// notice replaces it.
func (f *formList) Notify(message string) {
	f.mu.Lock()
	f.noticeSeq++
	seq := f.noticeSeq
	f.mu.Unlock()

	f.notice.SetText(message)
	if f.notifyFor <= 0 {
		return
	}
	time.AfterFunc(f.notifyFor, func() {
		fyne.Do(func() {
			f.mu.Lock()
			current := f.noticeSeq
			f.mu.Unlock()
			if seq == current {
				f.notice.SetText("")
			}
		})
	})
}

func (f *formList) ClearChoices() {
	f.list.UnselectAll()
}

func (f *formList) SetTabHeader(text, tabID string) {
	if tabID != screen.TabID {
		return
	}
	f.tab.Text = text
	f.tabs.Refresh()
}

type confirmDialog struct {
	dlg     dialog.Dialog
	yes, no *widget.Button
	showing bool
}

func (d *confirmDialog) answer(fn func()) {
	if !d.showing {
		return
	}
	d.showing = false
	d.dlg.Hide()
	fn()
}

func (d *confirmDialog) Dismiss() {
	d.showing = false
	d.dlg.Hide()
}

func (d *confirmDialog) IsShowing() bool { return d.showing }
