//go:build !nogui

package gui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"formkeep/internal/config"
	"formkeep/internal/fileutil"
	"formkeep/internal/screen"
	"formkeep/pkg/testutils"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, testutils.Roots) {
	t.Helper()
	roots := testutils.NewRoots(t)
	roots.AddForms(t, "a.xml")
	roots.AddInstances(t, "b")

	lister, err := fileutil.NewLister(nil)
	require.NoError(t, err)
	a := NewWithApp(test.NewTempApp(t), config.NewTestConfig(roots.Forms, roots.Instances), lister)
	a.Screen().Resume()
	return a, roots
}

func TestWindowShowsList(t *testing.T) {
	a, _ := newTestApp(t)

	assert.Equal(t, "Local Files (2)", a.view.tab.Text)
	assert.Equal(t, []string{"a.xml", "b.xml"}, a.view.names)
	assert.Equal(t, 2, a.view.list.Length())
	assert.True(t, a.view.list.Visible())
	assert.False(t, a.view.empty.Visible())
	assert.NotNil(t, a.GetMainWindow().Content())
}

func TestWatcherSharesStoreIgnoreList(t *testing.T) {
	roots := testutils.NewRoots(t)
	lister, err := fileutil.NewLister([]string{".*"})
	require.NoError(t, err)

	a := NewWithApp(test.NewTempApp(t), config.NewTestConfig(roots.Forms, roots.Instances), lister)

	require.NotNil(t, a.ignore)
	assert.True(t, a.ignore(".sync-journal"))
	assert.False(t, a.ignore("a.xml"))
}

func TestListSelectionDrivesScreen(t *testing.T) {
	a, _ := newTestApp(t)

	a.view.list.Select(1)
	assert.Equal(t, 1, a.Screen().Selected())

	a.Screen().RefreshData()
	assert.Equal(t, screen.NoSelection, a.Screen().Selected())
}

func TestDeleteWithoutSelection(t *testing.T) {
	a, _ := newTestApp(t)

	a.Screen().MenuSelected(screen.MenuDelete)

	assert.Equal(t, "Please select an item", a.view.notice.Text)
	assert.Nil(t, a.view.dialog)
}

func TestConfirmYesDeletes(t *testing.T) {
	a, roots := newTestApp(t)

	a.view.list.Select(0)
	a.Screen().MenuSelected(screen.MenuDelete)
	require.NotNil(t, a.view.dialog)
	assert.True(t, a.view.dialog.IsShowing())
	assert.Equal(t, screen.ConfirmPending, a.Screen().State())

	test.Tap(a.view.dialog.yes)

	assert.False(t, a.view.dialog.IsShowing())
	assert.Equal(t, "a.xml deleted", a.view.notice.Text)
	assert.Equal(t, "Local Files (1)", a.view.tab.Text)
	assert.Equal(t, []string{"b.xml"}, a.view.names)
	_, err := os.Stat(filepath.Join(roots.Forms, "a.xml"))
	assert.True(t, os.IsNotExist(err))
}

func TestConfirmNoKeeps(t *testing.T) {
	a, roots := newTestApp(t)

	a.view.list.Select(1)
	a.Screen().MenuSelected(screen.MenuDelete)
	test.Tap(a.view.dialog.no)

	assert.Equal(t, screen.Idle, a.Screen().State())
	assert.Equal(t, 2, a.Screen().Len())
	assert.DirExists(t, filepath.Join(roots.Instances, "b"))
	assert.Empty(t, a.view.notice.Text)
}

func TestPauseHidesDialog(t *testing.T) {
	a, roots := newTestApp(t)

	a.view.list.Select(0)
	a.Screen().MenuSelected(screen.MenuDelete)
	d := a.view.dialog
	a.Screen().Pause()

	assert.False(t, d.IsShowing())
	test.Tap(d.yes)
	assert.FileExists(t, filepath.Join(roots.Forms, "a.xml"), "a dismissed dialog cannot confirm")
}

func TestEmptyStateSwap(t *testing.T) {
	roots := testutils.NewRoots(t)
	lister, err := fileutil.NewLister(nil)
	require.NoError(t, err)
	a := NewWithApp(test.NewTempApp(t), config.NewTestConfig(roots.Forms, roots.Instances), lister)
	a.Screen().Resume()

	assert.False(t, a.view.list.Visible())
	assert.True(t, a.view.empty.Visible())
	assert.Equal(t, "No forms or saved instances", a.view.empty.Text)
	assert.Equal(t, "Local Files (0)", a.view.tab.Text)

	roots.AddForms(t, "late.xml")
	a.Screen().Reload()
	assert.True(t, a.view.list.Visible())
	assert.False(t, a.view.empty.Visible())
}

func TestNoticeExpires(t *testing.T) {
	a, _ := newTestApp(t)
	a.view.notifyFor = 20 * time.Millisecond

	a.Screen().MenuSelected(screen.MenuDelete)
	assert.NotEmpty(t, a.view.notice.Text)

	assert.Eventually(t, func() bool {
		return a.view.notice.Text == ""
	}, time.Second, 10*time.Millisecond)
}

func TestIconFor(t *testing.T) {
	assert.NotNil(t, iconFor("delete"))
	assert.NotNil(t, iconFor("unknown"))
	assert.True(t, Available())
}
