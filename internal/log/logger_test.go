package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"formkeep/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.Info("info message")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	l.Warn("warn message")
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "warn message")
	buf.Reset()

	l.Error("error message")
	assert.Contains(t, buf.String(), "level=error")
	assert.Contains(t, buf.String(), "error message")
	buf.Reset()

	l.Infof("formatted %s", "message")
	assert.Contains(t, buf.String(), "formatted message")
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	SetDebug(false)
	l.Debug("debug message")
	assert.Empty(t, buf.String())

	SetDebug(true)
	defer SetDebug(false)
	l.Debug("debug message")
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "debug message")
	buf.Reset()

	l.Debugf("formatted %s", "debug")
	assert.Contains(t, buf.String(), "formatted debug")
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured message")
	output := buf.String()
	assert.Contains(t, output, "structured message")
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
	buf.Reset()

	l.With(F("key1", "value1")).With(F("key2", 123)).Info("chained fields")
	output = buf.String()
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
}

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithJSON())

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured json")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "structured json", entry["message"])
	assert.Contains(t, entry, "timestamp")
	assert.Equal(t, "value1", entry["key1"])
	assert.Equal(t, float64(123), entry["key2"])
}

func TestErrorLogging(t *testing.T) {
	var buf bytes.Buffer
	original := logger
	Configure(WithOutput(&buf))
	defer func() { logger = original }()

	LogWithFields(F("error", fmt.Errorf("standard error"))).Error("error occurred")
	assert.Contains(t, buf.String(), "error occurred")
	assert.Contains(t, buf.String(), "standard error")
	buf.Reset()

	fileErr := errors.NewFileError("delete failed", "/forms/a.xml", errors.DeleteFailed, nil)
	LogWithError(fileErr).Error("file error occurred")
	output := buf.String()
	assert.Contains(t, output, "file error occurred")
	assert.Contains(t, output, "path=/forms/a.xml")
	assert.Contains(t, output, "error_kind=delete_failed")
	buf.Reset()

	configErr := errors.NewConfigError("invalid configuration", "directories.forms", errors.InvalidConfig, nil)
	LogError(configErr, "config error occurred")
	output = buf.String()
	assert.Contains(t, output, "param=directories.forms")
	assert.Contains(t, output, "error_kind=invalid_config")
}

func TestNilErrorHandling(t *testing.T) {
	var buf bytes.Buffer
	original := logger
	Configure(WithOutput(&buf))
	defer func() { logger = original }()

	LogWithError(nil).Error("nil error test")
	assert.Contains(t, buf.String(), "nil error test")
	assert.Contains(t, buf.String(), "error=\"<nil>\"")
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formkeep.log")
	original := logger
	Configure(WithFile(path))
	defer func() {
		if logger.file != nil {
			logger.file.Close()
		}
		logger = original
	}()

	Info("file test message")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "file test message")
}

func TestPackageHelpers(t *testing.T) {
	var buf bytes.Buffer
	original := logger
	Configure(WithOutput(&buf))
	defer func() { logger = original }()

	Warn("listing failed", "boom")
	assert.Contains(t, buf.String(), "listing failed: boom")
	buf.Reset()

	Error("plain")
	assert.Contains(t, buf.String(), "plain")
	buf.Reset()

	Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())
}
