package watch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"formkeep/internal/errors"
	"formkeep/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitChange(t *testing.T, ch <-chan Change) Change {
	t.Helper()
	select {
	case c, ok := <-ch:
		require.True(t, ok, "change channel closed unexpectedly")
		return c
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for change")
	}
	return Change{}
}

func TestWatcherReportsCreateAndRemove(t *testing.T) {
	roots := testutils.NewRoots(t)

	w, err := New(WithDebounce(0))
	require.NoError(t, err)
	require.NoError(t, w.AddRoot(roots.Forms))
	require.NoError(t, w.AddRoot(roots.Instances))
	require.NoError(t, w.Start())
	defer w.Stop()

	// fsnotify needs a moment to arm its watches on some platforms
	time.Sleep(100 * time.Millisecond)

	roots.AddForms(t, "new.xml")
	c := waitChange(t, w.Changes())
	assert.Contains(t, c.Paths, filepath.Join(roots.Forms, "new.xml"))
	assert.False(t, c.Timestamp.IsZero())

	// drain follow-ups such as a second create event on some platforms
	time.Sleep(100 * time.Millisecond)
	for len(w.Changes()) > 0 {
		<-w.Changes()
	}

	folder := filepath.Join(roots.Instances, "gone")
	require.NoError(t, os.Mkdir(folder, 0755))
	waitChange(t, w.Changes())
	require.NoError(t, os.RemoveAll(folder))

	deadline := time.After(3 * time.Second)
	for {
		select {
		case c := <-w.Changes():
			for _, p := range c.Paths {
				if p == folder {
					return
				}
			}
		case <-deadline:
			t.Fatal("timeout waiting for remove")
		}
	}
}

func TestWatcherDebounceCoalesces(t *testing.T) {
	roots := testutils.NewRoots(t)

	w, err := New(WithDebounce(300 * time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.AddRoot(roots.Forms))
	require.NoError(t, w.Start())
	defer w.Stop()
	time.Sleep(100 * time.Millisecond)

	roots.AddForms(t, "a.xml", "b.xml", "c.xml")

	c := waitChange(t, w.Changes())
	joined := strings.Join(c.Paths, "\n")
	for _, n := range []string{"a.xml", "b.xml", "c.xml"} {
		assert.Contains(t, joined, n)
	}
}

func TestWatcherIgnoresMatchingNames(t *testing.T) {
	roots := testutils.NewRoots(t)

	w, err := New(WithDebounce(0), WithIgnore(func(name string) bool {
		return strings.HasPrefix(name, ".")
	}))
	require.NoError(t, err)
	require.NoError(t, w.AddRoot(roots.Forms))
	require.NoError(t, w.Start())
	defer w.Stop()
	time.Sleep(100 * time.Millisecond)

	roots.AddForms(t, ".swap")
	select {
	case c := <-w.Changes():
		t.Fatalf("unexpected change %v", c.Paths)
	case <-time.After(300 * time.Millisecond):
	}

	roots.AddForms(t, "visible.xml")
	c := waitChange(t, w.Changes())
	assert.NotContains(t, c.Paths, filepath.Join(roots.Forms, ".swap"))
}

func TestAddRootErrors(t *testing.T) {
	w, err := New()
	require.NoError(t, err)
	defer w.Stop()

	err = w.AddRoot(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.IsFileNotFound(err))

	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	err = w.AddRoot(file)
	require.Error(t, err)
	assert.Equal(t, errors.InvalidPath, errors.KindOf(err))
}

func TestStartStop(t *testing.T) {
	roots := testutils.NewRoots(t)
	w, err := New()
	require.NoError(t, err)
	require.NoError(t, w.AddRoot(roots.Forms))
	require.NoError(t, w.AddRoot(roots.Forms))
	assert.Equal(t, []string{roots.Forms}, w.Roots())

	require.NoError(t, w.Start())
	assert.True(t, w.IsRunning())
	assert.Error(t, w.Start())

	w.Stop()
	assert.False(t, w.IsRunning())
	_, ok := <-w.Changes()
	assert.False(t, ok, "Stop closes the change channel")
	assert.NotPanics(t, w.Stop)
}

func TestWatchRootsSkipsMissing(t *testing.T) {
	roots := testutils.NewRoots(t)
	w, err := WatchRoots(roots.Forms, filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	defer w.Stop()
	assert.Equal(t, []string{roots.Forms}, w.Roots())
	assert.True(t, w.IsRunning())
}
