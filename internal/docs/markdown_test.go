package docs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenMarkdown(t *testing.T) {
	root := newTestRootCmd()

	var buf bytes.Buffer
	require.NoError(t, GenMarkdown(root, &buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "## prompter\n\n"))
	assert.Contains(t, out, "### Synopsis")
	assert.Contains(t, out, "* [prompter config](prompter_config.md) - Configuration management commands")
	assert.Contains(t, out, "* [prompter preview](prompter_preview.md)")
	assert.NotContains(t, out, "secret")
	assert.NotContains(t, out, "### See also")
}

func TestGenMarkdown_Subcommand(t *testing.T) {
	root := newTestRootCmd()

	var buf bytes.Buffer
	require.NoError(t, GenMarkdown(find(root, "config", "init"), &buf))
	out := buf.String()

	assert.Contains(t, out, "## prompter config init")
	assert.Contains(t, out, "prompter config init [flags]")
	assert.Contains(t, out, "### Options\n")
	assert.Contains(t, out, "--force")
	assert.Contains(t, out, "### Options inherited from parent commands")
	assert.Contains(t, out, "--config string")
	assert.Contains(t, out, "* [prompter config](prompter_config.md)")
}

func TestGenMarkdown_NonRunnableParent(t *testing.T) {
	root := newTestRootCmd()

	var buf bytes.Buffer
	require.NoError(t, GenMarkdown(find(root, "config"), &buf))
	assert.NotContains(t, buf.String(), "### Synopsis")
}

func TestGenMarkdownTreeCustom(t *testing.T) {
	dir := t.TempDir()
	prepend := func(filename string) string {
		return "---\ntitle: " + strings.TrimSuffix(filepath.Base(filename), ".md") + "\n---\n\n"
	}
	links := func(cmdPath string) string {
		return "/cli/" + strings.ReplaceAll(cmdPath, " ", "/") + "/"
	}

	require.NoError(t, GenMarkdownTreeCustom(newTestRootCmd(), dir, prepend, links))

	data, err := os.ReadFile(filepath.Join(dir, "prompter_config.md"))
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "---\ntitle: prompter_config\n---\n\n## prompter config"))
	assert.Contains(t, content, "(/cli/prompter/config/init/)")

	_, err = os.Stat(filepath.Join(dir, "prompter_secret.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenMarkdownTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, GenMarkdownTree(newTestRootCmd(), dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"prompter.md", "prompter_preview.md", "prompter_config.md",
		"prompter_config_init.md", "prompter_config_path.md",
	}, names)
}
