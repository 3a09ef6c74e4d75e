package screen

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// fakeView records every call the screen makes.
type fakeView struct {
	rendered    [][]string
	emptyShown  int
	notices     []string
	cleared     int
	dialogs     []*fakeDialog
	headerTexts []string
	headerTabs  []string
}

func (v *fakeView) RenderList(names []string) {
	cp := make([]string, len(names))
	copy(cp, names)
	v.rendered = append(v.rendered, cp)
}

func (v *fakeView) ShowEmptyState() { v.emptyShown++ }
func (v *fakeView) Notify(m string) { v.notices = append(v.notices, m) }
func (v *fakeView) ClearChoices() { v.cleared++ }

func (v *fakeView) ShowConfirmDialog(message, yes, no string, onYes, onNo func()) Dialog {
	d := &fakeDialog{message: message, yes: yes, no: no, onYes: onYes, onNo: onNo, showing: true}
	v.dialogs = append(v.dialogs, d)
	return d
}

func (v *fakeView) SetTabHeader(text, tabID string) {
	v.headerTexts = append(v.headerTexts, text)
	v.headerTabs = append(v.headerTabs, tabID)
}

func (v *fakeView) lastRendered() []string {
	if len(v.rendered) == 0 {
		return nil
	}
	return v.rendered[len(v.rendered)-1]
}

func (v *fakeView) lastDialog() *fakeDialog {
	if len(v.dialogs) == 0 {
		return nil
	}
	return v.dialogs[len(v.dialogs)-1]
}

func (v *fakeView) lastHeader() string {
	if len(v.headerTexts) == 0 {
		return ""
	}
	return v.headerTexts[len(v.headerTexts)-1]
}

type fakeDialog struct {
	message, yes, no string
	onYes, onNo      func()
	showing          bool
	dismissed        bool
}

func (d *fakeDialog) Dismiss() { d.showing = false; d.dismissed = true }
func (d *fakeDialog) IsShowing() bool { return d.showing }

func (d *fakeDialog) pressYes() {
	d.showing = false
	d.onYes()
}

func (d *fakeDialog) pressNo() {
	d.showing = false
	d.onNo()
}

// fakeStore serves listings from memory.
type fakeStore struct {
	files    map[string][]string
	folders  map[string][]string
	failFor  map[string]bool
	listErr  error
	deleted  []string
	onDelete func(path string)
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		files:   map[string][]string{},
		folders: map[string][]string{},
		failFor: map[string]bool{},
	}
}

func (s *fakeStore) ListFiles(root string) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]string(nil), s.files[root]...), nil
}

func (s *fakeStore) ListFolders(root string) ([]string, error) {
	return append([]string(nil), s.folders[root]...), nil
}

func (s *fakeStore) DeleteRecursive(path string) bool {
	if s.failFor[path] {
		return false
	}
	s.deleted = append(s.deleted, path)
	for root, paths := range s.files {
		s.files[root] = without(paths, path)
	}
	for root, paths := range s.folders {
		s.folders[root] = without(paths, path)
	}
	if s.onDelete != nil {
		s.onDelete(path)
	}
	return true
}

func without(paths []string, p string) []string {
	out := paths[:0:0]
	for _, x := range paths {
		if x != p {
			out = append(out, x)
		}
	}
	return out
}

// plainText is a Messages implementation with fixed English strings.
type plainText struct{}

func (plainText) LocalFilesTab(n int) string { return fmt.Sprintf("Local Files (%d)", n) }
func (plainText) DeleteFile() string { return "Delete" }
func (plainText) NoSelectError() string { return "Please select an item" }
func (plainText) DeleteConfirm(name string) string { return "Delete " + name + "?" }
func (plainText) DeletedOK(name string) string { return name + " deleted" }
func (plainText) DeletedError(name string) string { return name + " could not be deleted" }
func (plainText) Yes() string { return "Yes" }
func (plainText) No() string { return "No" }

// dirStore lists a real directory tree; used by the property test.
type dirStore struct{}

func (dirStore) ListFiles(root string) ([]string, error) { return listDir(root, false) }
func (dirStore) ListFolders(root string) ([]string, error) { return listDir(root, true) }
func (dirStore) DeleteRecursive(path string) bool { return os.RemoveAll(path) == nil }

func listDir(root string, dirs bool) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() == dirs {
			out = append(out, strings.TrimSuffix(root, "/")+"/"+e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}
