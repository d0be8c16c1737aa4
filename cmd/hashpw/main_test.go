package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func stdinWith(t *testing.T, content string) *os.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stdin")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	return f
}

func TestRun_HashFromPipe(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run([]string{"-cost", "4"}, stdinWith(t, "secret1\n"), &stdout, &stderr)
	require.NoError(t, err)

	hash := strings.TrimSpace(stdout.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 4, cost)
}

func TestRun_Verify(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-verify", string(hash)}, stdinWith(t, "secret1"), &stdout, &stderr))
	assert.Equal(t, "OK\n", stdout.String())

	err = run([]string{"-verify", string(hash)}, stdinWith(t, "wrong-one"), &stdout, &stderr)
	assert.EqualError(t, err, "password does not match")
}

func TestRun_ShortSecret(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(nil, stdinWith(t, "abc\n"), &stdout, &stderr)

	require.Error(t, err)
	assert.Empty(t, stdout.String())
}

func TestRun_TerminalInput(t *testing.T) {
	origIsTerminal, origRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = origIsTerminal, origRead })

	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("typed-secret"), nil }

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-cost", "4"}, stdinWith(t, ""), &stdout, &stderr))

	assert.Contains(t, stderr.String(), "Password: ")
	hash := strings.TrimSpace(stdout.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("typed-secret")))
}
