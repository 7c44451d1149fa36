package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log, err := New(Options{Mode: "prod", File: path})
	require.NoError(t, err)

	log.With("component", "test").Info("hello", "user_id", "u1")
	log.Debug("dropped at info level")
	log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"component":"test"`)
	assert.Contains(t, out, `"user_id":"u1"`)
	assert.False(t, strings.Contains(out, "dropped"), "debug entry written at info level")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("ignored", "k", "v")
	log.Warn("ignored")
	log.Sync()
}
