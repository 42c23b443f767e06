package cmd

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `<!DOCTYPE html><html><head><title>Shop</title></head><body><main id="app">Hello</main></body></html>`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRenderCommand_Flags(t *testing.T) {
	cmd := newRenderCmd()

	for _, name := range []string{"type", "background", "height", "svg-file", "ticks", "complete", "output"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "expected --%s flag", name)
	}
	assert.Equal(t, "n", cmd.Flags().Lookup("ticks").Shorthand)
	assert.Equal(t, "0", cmd.Flags().Lookup("ticks").DefValue)
}

func TestRenderCommand_DefaultBar(t *testing.T) {
	setupWorkDir(t)

	out, _, err := execute("render")
	require.NoError(t, err)

	assert.Contains(t, out, `<body><div id="progress__bar" style="width: 0%; opacity: 1; height: 5px; background: #aaaaaa;">`)
}

func TestRenderCommand_ConfiguredBar(t *testing.T) {
	setupWorkDir(t)
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "page.html", []byte(testPage), 0644))

	out, _, err := execute("render", "page.html", "--background", "#ff0000", "--height", "8")
	require.NoError(t, err)

	assert.Contains(t, out, `style="width: 0%; opacity: 1; height: 8px; background: #ff0000;"`)
	assert.Contains(t, out, `<main id="app">Hello</main>`)
}

func TestRenderCommand_Ticks(t *testing.T) {
	setupWorkDir(t)

	out, _, err := execute("render", "--ticks", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "width: 11.8")
}

func TestRenderCommand_Complete(t *testing.T) {
	setupWorkDir(t)

	out, _, err := execute("render", "-n", "5", "--complete")
	require.NoError(t, err)

	assert.Contains(t, out, "width: 100%; opacity: 0;")
}

func TestRenderCommand_Fullpage(t *testing.T) {
	setupWorkDir(t)
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "page.html", []byte(testPage), 0644))

	out, _, err := execute("render", "page.html", "--type", "fullpage", "--ticks", "1")
	require.NoError(t, err)

	assert.Contains(t, out, `<div id="progress__fullpage" role="none presentation" tabindex="-1" style="background: #aaaaaa; opacity: 1;">`)
	assert.Contains(t, out, "Your SVG")
	assert.Contains(t, out, `id="progress__fullpage__inner_skeleton"`)
}

func TestRenderCommand_FullpageComplete(t *testing.T) {
	setupWorkDir(t)

	out, _, err := execute("render", "--type", "fullpage", "--complete")
	require.NoError(t, err)

	assert.NotContains(t, out, "progress__fullpage")
}

func TestRenderCommand_SVGFile(t *testing.T) {
	setupWorkDir(t)
	fs := useMemFs(t)
	require.NoError(t, afero.WriteFile(fs, "logo.svg", []byte(`<svg id="logo"><rect width="4" height="4"></rect></svg>`), 0644))

	out, _, err := execute("render", "--type", "fullpage", "--svg-file", "logo.svg")
	require.NoError(t, err)

	assert.Contains(t, out, `<svg id="logo">`)
	assert.NotContains(t, out, "<defs>")
}

func TestRenderCommand_ConfigFile(t *testing.T) {
	dir := setupWorkDir(t)
	writeFile(t, dir+"/loadbar.yaml", "progress:\n  background: \"#00ff00\"\n  height: 3\n")

	out, _, err := execute("render")
	require.NoError(t, err)

	assert.Contains(t, out, "height: 3px; background: #00ff00;")
}

func TestRenderCommand_Output(t *testing.T) {
	setupWorkDir(t)
	fs := useMemFs(t)

	out, _, err := execute("render", "-o", "out.html")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := afero.ReadFile(fs, "out.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), `id="progress__bar"`)
}

func TestRenderCommand_Errors(t *testing.T) {
	t.Run("invalid type", func(t *testing.T) {
		setupWorkDir(t)
		_, _, err := execute("render", "--type", "spinner")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid --type")
	})

	t.Run("missing page", func(t *testing.T) {
		setupWorkDir(t)
		useMemFs(t)
		_, _, err := execute("render", "missing.html")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open page")
	})

	t.Run("missing svg file", func(t *testing.T) {
		setupWorkDir(t)
		useMemFs(t)
		_, _, err := execute("render", "--svg-file", "missing.svg")
		require.Error(t, err)
	})

	t.Run("negative ticks", func(t *testing.T) {
		setupWorkDir(t)
		_, _, err := execute("render", "--ticks", "-1")
		require.Error(t, err)
	})
}
