package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoadmapFile(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "main.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600), "failed to set up test file")
	return path
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	err := run(out, out, args)
	require.Error(t, err)
}

func TestRun_InvalidRoadmapIsRejected(t *testing.T) {
	t.Parallel()

	// Syntax error: missing closing brace.
	path := writeRoadmapFile(t, `
feature "a" {
  name = "A"
`)
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	err := run(out, errW, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load roadmap")
}

func TestRun_RendersPlan(t *testing.T) {
	t.Parallel()

	path := writeRoadmapFile(t, `
feature "auth" {
  name       = "Auth"
  priority   = "high"
  complexity = 2
}
feature "billing" {
  name       = "Billing"
  complexity = 5
}
dependency "auth" "billing" {
  strength = "required"
}
`)
	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}

	err := run(out, errW, []string{"--output", "json", path})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	planObj := decoded["plan"].(map[string]any)
	assert.Equal(t, []any{"auth", "billing"}, planObj["build_order"])
}
