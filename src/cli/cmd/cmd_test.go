package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/goaround-icons/src/icons"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag variables are package globals; reset them between runs.
	cfgFile, verbose, cfg = "", false, nil
	rnType, rnCategory, rnColor, rnRotation, rnNormalize, rnOutput = "", "", "", 0, false, ""
	ctFormat, ctOutput = "", ""
	resolveCategory = ""
	for _, c := range []*cobra.Command{rootCmd, renderCmd, resolveCmd, catalogCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "icons.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "goaround-icons dev")
}

func TestRenderCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, "render", "--type", "B738", "--color", "#ff0000", "--rotation", "45")
	require.NoError(t, err)
	assert.Equal(t, icons.Render("B738", "", "#ff0000", 45)+"\n", out)

	out, err = run(t, "render", "-c", "C3")
	require.NoError(t, err)
	assert.Equal(t, icons.RenderDefault("", "C3")+"\n", out)
}

func TestRenderCommand_ConfigDefaults(t *testing.T) {
	path := writeConfig(t, "version: 1\nrender:\n  color: teal\n  rotation: 90\n")

	out, err := run(t, "--config", path, "render", "--type", "A320")
	require.NoError(t, err)
	assert.Equal(t, icons.Render("A320", "", "teal", 90)+"\n", out)

	out, err = run(t, "--config", path, "render", "--type", "A320", "--rotation=-90", "--normalize")
	require.NoError(t, err)
	assert.Contains(t, out, "rotate(270 16 16)")
}

func TestRenderCommand_File(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, "render", "--type", "R44", "-o", filepath.Join("icons", "r44.svg"))
	require.NoError(t, err)
	assert.Contains(t, out, "icon helicopter")

	data, err := os.ReadFile(filepath.Join("icons", "r44.svg"))
	require.NoError(t, err)
	assert.Equal(t, icons.RenderDefault("R44", ""), string(data))
}

func TestResolveCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NO_COLOR", "1")

	out, err := run(t, "resolve", "B738", "--category", "C1")
	require.NoError(t, err)
	assert.Contains(t, out, "airliner")
	assert.Contains(t, out, "type designator")
}

func TestCatalogCommand_Export(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := run(t, "catalog", "--format", "json")
	require.NoError(t, err)

	var legend icons.Legend
	require.NoError(t, json.Unmarshal([]byte(out), &legend))
	assert.Len(t, legend.Icons, len(icons.IDs()))

	_, err = run(t, "catalog", "--format", "xml")
	assert.ErrorIs(t, err, icons.ErrUnknownFormat)

	_, err = run(t, "catalog", "--output", "legend.json")
	assert.Error(t, err)
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `
version: 1
generate:
  output_dir: `+dir+`
  items:
    - name: b738
      type: B738
    - name: heli
      category: B4
`)

	_, err := run(t, "--config", path, "generate", "heli")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "heli.svg"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "b738.svg"))
	assert.True(t, os.IsNotExist(err))

	_, err = run(t, "--config", path, "generate", "nope")
	assert.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	path := writeConfig(t, "version: 3\n")

	_, err := run(t, "--config", path, "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version: must be 1")
}

func TestResolveCommand_BufferHasNoColor(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")

	out, err := run(t, "resolve", "A320")
	require.NoError(t, err)
	assert.Contains(t, out, "airliner")
	assert.NotContains(t, out, "\033[")

	out, err = run(t, "catalog")
	require.NoError(t, err)
	assert.NotContains(t, out, "\033[")
}
