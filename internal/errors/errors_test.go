package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	err = Newf("formatted %s", "error")
	assert.Equal(t, "formatted error", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())
	assert.Equal(t, origErr, Unwrap(wrappedErr))

	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())
	assert.True(t, Is(deepWrapped, origErr))
}

func TestFileError(t *testing.T) {
	fileErr := NewFileError("cannot access", "/forms/a.xml", FileAccessDenied, nil)
	assert.Equal(t, "cannot access: /forms/a.xml", fileErr.Error())
	assert.Equal(t, "/forms/a.xml", fileErr.Path())
	assert.Equal(t, FileAccessDenied, fileErr.Kind())

	origErr := fmt.Errorf("permission denied")
	fileErr = NewFileError("cannot access", "/forms/a.xml", FileAccessDenied, origErr)
	assert.Equal(t, "cannot access: /forms/a.xml: permission denied", fileErr.Error())
	assert.Equal(t, origErr, Unwrap(fileErr))

	notFound := NewFileError("file not found", "/missing", FileNotFound, nil)
	assert.True(t, IsFileNotFound(notFound))
	assert.False(t, IsFileNotFound(fileErr))
	assert.True(t, IsFileAccessDenied(fileErr))
}

func TestFileErrorMatchesSentinelByKind(t *testing.T) {
	err := Wrap(NewFileError("delete failed", "/instances/b", DeleteFailed, nil), "removing entry")

	assert.True(t, IsDeleteFailed(err))
	assert.False(t, errors.Is(err, ErrFileNotFound))
	assert.Equal(t, DeleteFailed, KindOf(err))

	missing := Wrap(NewFileError("root does not exist", "/odk/forms", FileNotFound, nil), "watching")
	assert.True(t, errors.Is(missing, ErrFileNotFound))
}

func TestConfigError(t *testing.T) {
	err := NewConfigError("invalid configuration", "directories.forms", InvalidConfig, nil)
	assert.Equal(t, "invalid configuration: directories.forms", err.Error())
	assert.Equal(t, "directories.forms", err.Param())
	assert.True(t, IsInvalidConfig(err))
	assert.False(t, IsInvalidConfig(New("other")))

	missing := NewConfigError("config file not found", "/etc/formkeep.yaml", ConfigNotFound, nil)
	assert.True(t, IsConfigNotFound(missing))
	assert.False(t, IsConfigNotFound(err))
	assert.Equal(t, "config_not_found", ConfigNotFound.String())
}

func TestInputError(t *testing.T) {
	err := NewInputError("no entry named", "c.xml", IndexOutOfRange)
	assert.Equal(t, "no entry named: c.xml", err.Error())
	assert.Equal(t, IndexOutOfRange, KindOf(err))
	assert.Equal(t, "c.xml", err.Input())

	assert.True(t, IsNoSelection(ErrNoSelection))
	assert.True(t, IsNoSelection(Wrap(ErrNoSelection, "delete")))
	assert.False(t, IsNoSelection(err))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "delete_failed", DeleteFailed.String())
	assert.Equal(t, "unknown", ErrorKind(99).String())
	assert.Equal(t, Unknown, KindOf(fmt.Errorf("plain")))
}
