package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	logTestWriter = buf
	t.Cleanup(func() { logTestWriter = io.Discard })
	require.NoError(t, Init(level, logTestWriterName))
	return buf
}

func TestKeyValues(t *testing.T) {
	buf := captureLogs(t, "debug")

	Infow("encoded", "t", big.NewInt(7).Text(16), "backend", "fast")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "encoded", entry["message"])
	assert.Equal(t, "7", entry["t"])
	assert.Equal(t, "fast", entry["backend"])
}

func TestOddKeyValues(t *testing.T) {
	buf := captureLogs(t, "debug")
	Debugw("odd", "key")
	assert.Contains(t, buf.String(), `"key":"MISSING"`)
}

func TestLevelFilter(t *testing.T) {
	buf := captureLogs(t, "warn")

	Debugw("hidden")
	Infof("hidden %d", 1)
	assert.Empty(t, buf.String())

	Warnw("shown")
	Errorw(errors.New("boom"), "failed", "step", 5)
	Error(errors.New("plain"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], `"error":"boom"`)
	assert.Contains(t, lines[1], `"step":5`)
}

func TestInitErrors(t *testing.T) {
	assert.Error(t, Init("loud", "stderr"))
	assert.Error(t, Init("info", filepath.Join(t.TempDir(), "missing", "out.log")))
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	require.NoError(t, Init("info", path))
	t.Cleanup(func() { _ = Init("info", "stderr") })

	Infow("to file", "n", 1)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
