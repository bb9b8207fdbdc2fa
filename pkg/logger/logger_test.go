package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer Close()

	SetDebug(false)
	Debug("hidden", "k", 1)
	Info("shown", "k", 2)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "k=2")

	SetDebug(true)
	defer SetDebug(false)
	Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

type failingCloser struct{ bytes.Buffer }

func (failingCloser) Close() error { return errors.New("disk gone") }

func TestSetOutputReportsCloseFailure(t *testing.T) {
	SetOutput(&failingCloser{})

	var buf bytes.Buffer
	SetOutput(&buf)
	defer Close()

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "closing previous log output failed")
	assert.Contains(t, buf.String(), "disk gone")
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fittracker.log")

	require.NoError(t, Init(path))
	Warn("drawer stuck", "position", 0.5)
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "logger initialized")
	assert.Contains(t, string(data), "level=WARN")
	assert.Contains(t, string(data), "position=0.5")
}

func TestInitBadPath(t *testing.T) {
	err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	assert.Error(t, err)
}

func TestLoggingAfterCloseIsDiscarded(t *testing.T) {
	require.NoError(t, Close())
	assert.NotPanics(t, func() { Error("after close") })
}
