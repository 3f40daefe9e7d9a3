package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/smallyu/go-elligator1174/pkg/elligator"
)

const (
	x7 = "0xab65983cf55a18c0e2c8bb8a156e030566d23767d6c1473acfcf4d17439ac7"
	y7 = "0x49c01f8d8c86ecb362b3952fa93abd8cf512b09225bcee9e76bc5e0c9a6e17e"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	out := new(bytes.Buffer)
	app.Writer = out
	app.ErrWriter = out
	err := app.Run(append([]string{"elligator1174", "--log-level", "disabled"}, args...))
	return out.String(), err
}

func TestEncodeDecode(t *testing.T) {
	for _, backend := range []string{"reference", "fast"} {
		t.Run(backend, func(t *testing.T) {
			out, err := run(t, "--backend", backend, "encode", "7")
			require.NoError(t, err)
			assert.Equal(t, "x="+x7+"\ny="+y7+"\n", out)

			out, err = run(t, "--backend", backend, "decode", x7, y7)
			require.NoError(t, err)
			assert.Equal(t, "t=0x7\n", out)
		})
	}
}

func TestDecimalFormat(t *testing.T) {
	out, err := run(t, "--format", "dec", "decode", x7, y7)
	require.NoError(t, err)
	assert.Equal(t, "t=7\n", out)
}

func TestDecodeCheck(t *testing.T) {
	_, err := run(t, "decode", "--check", "1", "2")
	assert.ErrorIs(t, err, api.ErrNotOnCurve)

	out, err := run(t, "decode", "--check", x7, y7)
	require.NoError(t, err)
	assert.Equal(t, "t=0x7\n", out)
}

func TestHideReveal(t *testing.T) {
	out, err := run(t, "hide", x7, y7)
	require.NoError(t, err)
	rep := strings.TrimSpace(out)
	assert.Len(t, rep, 64)

	out, err = run(t, "reveal", rep)
	require.NoError(t, err)
	assert.Equal(t, "x="+x7+"\ny="+y7+"\n", out)

	_, err = run(t, "reveal", "abcd")
	assert.ErrorIs(t, err, api.ErrInvalidRepresentative)
}

func TestHash(t *testing.T) {
	first, err := run(t, "hash", "--domain", "test", "hello")
	require.NoError(t, err)
	second, err := run(t, "--backend", "fast", "hash", "--domain", "test", "hello")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "t=0x"))
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: fast\nformat: dec\nlog_level: disabled\n"), 0o600))

	out, err := run(t, "--config", path, "decode", x7, y7)
	require.NoError(t, err)
	assert.Equal(t, "t=7\n", out)

	// flags override the file
	out, err = run(t, "--config", path, "--format", "hex", "decode", x7, y7)
	require.NoError(t, err)
	assert.Equal(t, "t=0x7\n", out)
}

func TestArgumentErrors(t *testing.T) {
	_, err := run(t, "encode")
	assert.ErrorIs(t, err, errArgs)

	_, err = run(t, "encode", "not-a-number")
	assert.Error(t, err)

	_, err = run(t, "--backend", "simd", "encode", "7")
	assert.Error(t, err)
}
