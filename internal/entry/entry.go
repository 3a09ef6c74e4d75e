// Package entry holds the rows shown by the form list: a full path paired
// with the label derived from it.
package entry

import (
	"path/filepath"
	"strings"
)

// FormSuffix is appended to labels that do not already carry it. Instance
// folders are labelled with it too, matching the form they were filled from.
const FormSuffix = ".xml"

// Entry is one file or folder shown as one selectable row.
type Entry struct {
	FullPath    string
	DisplayName string
}

// New builds an Entry for path.
func New(path string) Entry {
	return Entry{FullPath: path, DisplayName: DisplayName(path)}
}

// DisplayName returns the basename of path with FormSuffix enforced.
// Applying it to its own output is a no-op.
func DisplayName(path string) string {
	if !strings.HasSuffix(path, FormSuffix) {
		path += FormSuffix
	}
	return filepath.Base(path)
}

// List keeps full paths and display names as parallel sequences. Index i in
// one always names the same entry as index i in the other.
type List struct {
	paths []string
	names []string
}

// NewList derives display names for paths, keeping their order.
func NewList(paths []string) *List {
	l := &List{
		paths: make([]string, len(paths)),
		names: make([]string, len(paths)),
	}
	copy(l.paths, paths)
	for i, p := range paths {
		l.names[i] = DisplayName(p)
	}
	return l
}

// Len returns the number of entries.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.paths)
}

// At returns entry i.
func (l *List) At(i int) (Entry, bool) {
	if i < 0 || i >= l.Len() {
		return Entry{}, false
	}
	return Entry{FullPath: l.paths[i], DisplayName: l.names[i]}, true
}

// Remove drops index i from both sequences. Later entries shift down by one.
func (l *List) Remove(i int) bool {
	if i < 0 || i >= l.Len() {
		return false
	}
	l.paths = append(l.paths[:i], l.paths[i+1:]...)
	l.names = append(l.names[:i], l.names[i+1:]...)
	return true
}

// IndexOf returns the index of the first entry whose display name or full
// path equals s, or -1.
func (l *List) IndexOf(s string) int {
	for i := 0; i < l.Len(); i++ {
		if l.names[i] == s || l.paths[i] == s {
			return i
		}
	}
	return -1
}

// Paths returns a copy of the full-path sequence.
func (l *List) Paths() []string {
	out := make([]string, l.Len())
	if l != nil {
		copy(out, l.paths)
	}
	return out
}

// Names returns a copy of the display-name sequence.
func (l *List) Names() []string {
	out := make([]string, l.Len())
	if l != nil {
		copy(out, l.names)
	}
	return out
}

// Entries returns every row in order.
func (l *List) Entries() []Entry {
	out := make([]Entry, l.Len())
	for i := range out {
		out[i] = Entry{FullPath: l.paths[i], DisplayName: l.names[i]}
	}
	return out
}
