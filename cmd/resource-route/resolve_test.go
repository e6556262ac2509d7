package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	out, err := execute(t, "resolve", "photos.show", "-p", "photo=42")
	require.NoError(t, err)
	assert.Equal(t, "/photos/42\n", out)
}

func TestResolveCommand_Flags(t *testing.T) {
	out, err := execute(t, "resolve", "photos.show",
		"-p", "user=7", "-p", "photo=42",
		"--prefix", "/users/{user}",
		"--base-url", "https://api.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/users/7/photos/42\n", out)
}

func TestResolveCommand_WithMethod(t *testing.T) {
	out, err := execute(t, "resolve", "photos.store", "--method")
	require.NoError(t, err)
	assert.Equal(t, "POST /photos\n", out)
}

func TestResolveCommand_ResolutionError(t *testing.T) {
	_, err := execute(t, "resolve", "photos.show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "identifier")
}

func TestResolveCommand_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
resources:
  - resource: photos
    prefix: /users/{user}
`), 0644))

	out, err := execute(t, "resolve", "photos.index", "--config", path, "-p", "user=7")
	require.NoError(t, err)
	assert.Equal(t, "/users/7/photos\n", out)
}

func TestResolveCommand_UnknownResourceInConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yml")
	require.NoError(t, os.WriteFile(path, []byte("resources:\n  - resource: albums\n"), 0644))

	_, err := execute(t, "resolve", "photos.index", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `resource "photos" not defined`)
}

func TestMethodCommand(t *testing.T) {
	out, err := execute(t, "method", "destroy")
	require.NoError(t, err)
	assert.Equal(t, "DELETE\n", out)

	_, err = execute(t, "method", "archive")
	assert.Error(t, err)
}

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"user=7", "tag=a", "tag=b", "tag=c"})
	require.NoError(t, err)
	assert.Equal(t, "7", params["user"])
	assert.Equal(t, []string{"a", "b", "c"}, params["tag"])

	_, err = parseParams([]string{"noequals"})
	assert.Error(t, err)

	_, err = parseParams([]string{"=value"})
	assert.Error(t, err)
}
