package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/lessonpad/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandsCmd(t *testing.T) {
	out, err := execute(t, "commands")

	require.NoError(t, err)
	assert.Contains(t, out, "ai-meeting-notes")
	assert.Contains(t, out, "Heading 2")
	assert.Contains(t, out, "Basic blocks")
	assert.Contains(t, out, "Beta")
}

func TestMarkdownCmd(t *testing.T) {
	out, err := execute(t, "markdown", "--sample")

	require.NoError(t, err)
	assert.Contains(t, out, "# ")
	assert.Contains(t, out, "| --- |")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "lessonpad version dev")
}

func TestConfigCmd_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: nord\nfilterMode: fuzzy\n"), 0o644))

	out, err := execute(t, "config", "--config", path, "--theme", "dracula", "--trigger", ";")

	require.NoError(t, err)
	assert.Contains(t, out, "theme: dracula")
	assert.Contains(t, out, "filterMode: fuzzy")
	assert.Regexp(t, `trigger: '?;'?`, out)
}

func TestConfigCmd_InvalidFlag(t *testing.T) {
	_, err := execute(t, "config", "--theme", "neon")

	assert.ErrorIs(t, err, config.ErrUnknownTheme)
}
