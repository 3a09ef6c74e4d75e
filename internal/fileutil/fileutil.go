// Package fileutil lists and removes the files and folders under the form
// and instance roots.
package fileutil

import (
	"os"
	"path/filepath"
	"time"

	"formkeep/internal/errors"
	"formkeep/internal/log"

	"github.com/gobwas/glob"
)

// Lister reads directory contents, hiding names that match any ignore glob.
type Lister struct {
	ignore []glob.Glob
}

// NewLister compiles the ignore patterns. Patterns match base names.
func NewLister(ignore []string) (*Lister, error) {
	l := &Lister{}
	for _, p := range ignore {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.NewConfigError("invalid ignore pattern", p, errors.InvalidConfig, err)
		}
		l.ignore = append(l.ignore, g)
	}
	return l, nil
}

// Ignored reports whether a base name is hidden by the ignore globs.
func (l *Lister) Ignored(name string) bool {
	for _, g := range l.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// ListFiles returns the full paths of the regular files directly inside
// root. A missing root yields an empty list.
func (l *Lister) ListFiles(root string) ([]string, error) {
	return l.list(root, false)
}

// ListFolders returns the full paths of the directories directly inside
// root. A missing root yields an empty list.
func (l *Lister) ListFolders(root string) ([]string, error) {
	return l.list(root, true)
}

func (l *Lister) list(root string, dirs bool) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("root %s does not exist", root)
			return []string{}, nil
		}
		if os.IsPermission(err) {
			return nil, errors.NewFileError("cannot read directory", root, errors.FileAccessDenied, err)
		}
		return nil, errors.NewFileError("cannot read directory", root, errors.InvalidPath, err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if l.Ignored(e.Name()) {
			continue
		}
		full := filepath.Join(root, e.Name())
		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(full)
			if err != nil {
				continue
			}
			isDir = info.IsDir()
		} else if !isDir && !e.Type().IsRegular() {
			continue
		}
		if isDir == dirs {
			paths = append(paths, full)
		}
	}
	return paths, nil
}

// DeleteRecursive removes path and everything below it. Failures are logged
// and reported as false.
func DeleteRecursive(path string) bool {
	if err := Remove(path); err != nil {
		log.LogError(err, "delete failed")
		return false
	}
	return true
}

// DeleteRecursive lets a Lister act as the screen's store.
func (l *Lister) DeleteRecursive(path string) bool {
	return DeleteRecursive(path)
}

// Remove deletes path recursively and classifies the failure.
func Remove(path string) error {
	if path == "" || path == string(filepath.Separator) {
		return errors.NewFileError("refusing to delete", path, errors.InvalidPath, nil)
	}
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.NewFileError("delete failed", path, errors.DeleteFailed,
				errors.NewFileError("file not found", path, errors.FileNotFound, err))
		}
		return errors.NewFileError("delete failed", path, errors.DeleteFailed, err)
	}
	if err := os.RemoveAll(path); err != nil {
		return errors.NewFileError("delete failed", path, errors.DeleteFailed, err)
	}
	log.LogWithFields(log.F("path", path)).Info("Deleted entry")
	return nil
}

// Info is the subset of file metadata the long listing shows.
type Info struct {
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// Stat returns metadata for path. Folder sizes are the sum of the files
// below them.
func Stat(path string) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Info{}, errors.NewFileError("file not found", path, errors.FileNotFound, err)
		}
		return Info{}, errors.NewFileError("cannot stat", path, errors.FileAccessDenied, err)
	}
	info := Info{Size: fi.Size(), ModTime: fi.ModTime(), IsDir: fi.IsDir()}
	if !fi.IsDir() {
		return info, nil
	}

	var total int64
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			if fi, err := d.Info(); err == nil {
				total += fi.Size()
			}
		}
		return nil
	})
	info.Size = total
	return info, err
}
