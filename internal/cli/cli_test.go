package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/codeditor/internal/cli"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test-version", Commit: "test-commit", Date: "test-date"})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--color", "never"}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewRootCommand(t *testing.T) {
	cmd := cli.NewRootCommand(cli.BuildInfo{})

	require.NotNil(t, cmd)
	assert.Equal(t, "codeditor", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, flagName := range []string{"debug", "config", "color"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flagName), "flag %q", flagName)
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	cmd := cli.NewRootCommand(cli.BuildInfo{})

	for _, name := range []string{"lines", "run", "settings", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, "subcommand %q", name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "test-version")
	assert.Contains(t, out, "test-commit")
	assert.Contains(t, out, "test-date")
}

func TestLinesCommand(t *testing.T) {
	path := writeTemp(t, "sample.txt", "ab\n日本\n")

	out, _, err := execute(t, "lines", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "LINE  START  END  WIDTH  TEXT", lines[0])
	assert.Equal(t, "   1      0    2      2  ab", lines[2])
	assert.Equal(t, "   2      3    5      4  日本", lines[3])
	assert.Equal(t, "   3      6    6      0  ", lines[4])
	assert.Equal(t, "3 lines", lines[6])
}

func TestLinesCommandMissingFile(t *testing.T) {
	_, _, err := execute(t, "lines", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLinesCommandRejectsBadColor(t *testing.T) {
	path := writeTemp(t, "sample.txt", "x")

	cmd := cli.NewRootCommand(cli.BuildInfo{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--color", "sometimes", "lines", path})

	assert.Error(t, cmd.Execute())
}

func TestRunCommandPrintsResult(t *testing.T) {
	script := writeTemp(t, "edit.lua", `
		editor.replace(0, 0, "a\nb\nc")
		editor.replace(1, 3, "")
		print(editor.line_count())
	`)

	out, stderr, err := execute(t, "run", "--check", script)
	require.NoError(t, err)

	assert.Equal(t, "a\nc", out)
	assert.Contains(t, stderr, "2\n")
	assert.Contains(t, stderr, "index ok (2 lines)")
}

func TestRunCommandWritesFile(t *testing.T) {
	file := writeTemp(t, "main.go", "package main\n")
	script := writeTemp(t, "edit.lua", `
		local n = editor.replace_all("main", "app")
		assert(n == 1)
	`)

	out, _, err := execute(t, "run", "--write", script, file)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "package app\n", string(data))
}

func TestRunCommandWriteRequiresFile(t *testing.T) {
	script := writeTemp(t, "edit.lua", "")

	_, _, err := execute(t, "run", "--write", script)
	assert.Error(t, err)
}

func TestRunCommandScriptError(t *testing.T) {
	script := writeTemp(t, "edit.lua", `error("nope")`)

	_, _, err := execute(t, "run", script)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestSettingsCommand(t *testing.T) {
	path := writeTemp(t, "settings.toml", "tab_width = 2\nlanguage = \"go\"\n")

	out, _, err := execute(t, "--config", path, "settings")
	require.NoError(t, err)

	assert.Contains(t, out, "tab_width              = 2\n")
	assert.Contains(t, out, "language               = go\n")
	assert.Contains(t, out, "font_size              = 14\n")
}

func TestSettingsCommandUnknownKey(t *testing.T) {
	path := writeTemp(t, "settings.yaml", "tab_size: 2\n")

	_, _, err := execute(t, "--config", path, "settings")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tab_size")
}

func TestSettingsWatchRequiresConfig(t *testing.T) {
	_, _, err := execute(t, "settings", "--watch")
	assert.Error(t, err)
}
