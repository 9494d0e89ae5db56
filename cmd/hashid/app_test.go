package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Siddarth2230/hashlink/pkg/hashids"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"hashid"}, args...))
	return strings.TrimSpace(out.String()), err
}

func isolate(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("HASHID_SALT", "")
	t.Setenv("HASHID_ALPHABET", "")
	t.Setenv("HASHID_MIN_LENGTH", "")
}

func TestEncodeDecode(t *testing.T) {
	isolate(t)

	out, err := run(t, "--salt", "this is my salt", "encode", "683", "94108", "123", "5")
	require.NoError(t, err)
	assert.Equal(t, "aBMswoO2UB3Sj", out)

	out, err = run(t, "--salt", "this is my salt", "decode", "aBMswoO2UB3Sj")
	require.NoError(t, err)
	assert.Equal(t, "683 94108 123 5", out)

	out, err = run(t, "-s", "this is my salt", "-m", "8", "encode", "1")
	require.NoError(t, err)
	assert.Equal(t, "gB0NV05e", out)
}

func TestSaltFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("HASHID_SALT", "this is my salt")

	out, err := run(t, "encode", "12345")
	require.NoError(t, err)
	assert.Equal(t, "NkK9", out)
}

func TestConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "hashid.toml")
	body := "[hashids]\nsalt = \"this is my salt\"\nalphabet = \"0123456789abcdef\"\nmin_length = 0\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	out, err := run(t, "--config", path, "encode", "1234567")
	require.NoError(t, err)
	assert.Equal(t, "b332db5", out)

	// flags win over the file
	out, err = run(t, "--config", path, "--alphabet", hashids.DefaultAlphabet, "encode", "1")
	require.NoError(t, err)
	assert.Equal(t, "NV", out)
}

func TestHexCommands(t *testing.T) {
	isolate(t)

	hash, err := run(t, "-s", "this is my salt", "encode-hex", "deadbeef")
	require.NoError(t, err)

	out, err := run(t, "-s", "this is my salt", "decode-hex", hash)
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", out)
}

func TestShuffleCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "-s", "this is my salt", "shuffle", "anything really goes")
	require.NoError(t, err)
	// leading space of the shuffled text is trimmed by run
	assert.Equal(t, "eagnrlityas oelygnh", out)
}

func TestInspectCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "-s", "this is my salt", "inspect")
	require.NoError(t, err)
	assert.Contains(t, out, "separators: ")
	assert.Contains(t, out, "min length: 4")
}

func TestCommandErrors(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing salt", []string{"encode", "1"}},
		{"no numbers", []string{"-s", "x", "encode"}},
		{"not a number", []string{"-s", "x", "encode", "abc"}},
		{"too large", []string{"-s", "x", "encode", "9007199254740993"}},
		{"decode needs one arg", []string{"-s", "x", "decode"}},
		{"invalid hash", []string{"-s", "x", "decode", "!!!!"}},
		{"bad hex", []string{"-s", "x", "encode-hex", "xyz"}},
		{"short alphabet", []string{"-s", "x", "-a", "abc", "inspect"}},
		{"non-ascii shuffle", []string{"-s", "x", "shuffle", "größe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}
