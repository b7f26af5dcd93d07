package docs

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
)

// LinkHandler turns a command path into the link target of its page.
type LinkHandler func(cmdPath string) string

// Prepender returns content written before a page, such as front matter.
type Prepender func(filename string) string

// MarkdownFilename is the page name for cmd: the command path joined with
// underscores (prompter_config_init.md).
func MarkdownFilename(cmd *cobra.Command) string {
	return joinPath(cmd, "_") + ".md"
}

// GenMarkdownTree writes one Markdown page per visible command into dir.
func GenMarkdownTree(cmd *cobra.Command, dir string) error {
	return GenMarkdownTreeCustom(cmd, dir, nil, nil)
}

// GenMarkdownTreeCustom is GenMarkdownTree with an optional prepender and
// link handler. Nil means no prepended content and links to the sibling
// .md file.
func GenMarkdownTreeCustom(cmd *cobra.Command, dir string, prepend Prepender, links LinkHandler) error {
	return walk(cmd, func(c *cobra.Command) error {
		filename := filepath.Join(dir, MarkdownFilename(c))
		var buf bytes.Buffer
		if prepend != nil {
			buf.WriteString(prepend(filename))
		}
		if err := GenMarkdownCustom(c, &buf, links); err != nil {
			return err
		}
		return writeFile(filename, buf.Bytes())
	})
}

// GenMarkdown renders the page for a single command.
func GenMarkdown(cmd *cobra.Command, w io.Writer) error {
	return GenMarkdownCustom(cmd, w, nil)
}

// GenMarkdownCustom renders the page for a single command, linking other
// commands through links.
func GenMarkdownCustom(cmd *cobra.Command, w io.Writer, links LinkHandler) error {
	if links == nil {
		links = func(p string) string { return joinPathString(p, "_") + ".md" }
	}
	cmd.InitDefaultHelpFlag()

	var buf bytes.Buffer
	buf.WriteString("## " + cmd.CommandPath() + "\n\n")
	if cmd.Short != "" {
		buf.WriteString(cmd.Short + "\n\n")
	}

	if cmd.Long != "" || cmd.Runnable() {
		buf.WriteString("### Synopsis\n\n")
		if cmd.Long != "" {
			buf.WriteString(cmd.Long + "\n\n")
		}
		if cmd.Runnable() {
			buf.WriteString("```\n" + cmd.UseLine() + "\n```\n\n")
		}
	}

	if cmd.Example != "" {
		buf.WriteString("### Examples\n\n")
		buf.WriteString("```\n" + cmd.Example + "\n```\n\n")
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		buf.WriteString("### Subcommands\n\n")
		for _, c := range subs {
			fmt.Fprintf(&buf, "* [%s](%s) - %s\n", c.CommandPath(), links(c.CommandPath()), c.Short)
		}
		buf.WriteString("\n")
	}

	if flags := cmd.NonInheritedFlags(); flags.HasAvailableFlags() {
		buf.WriteString("### Options\n\n```\n" + flags.FlagUsages() + "```\n\n")
	}
	if flags := cmd.InheritedFlags(); flags.HasAvailableFlags() {
		buf.WriteString("### Options inherited from parent commands\n\n```\n" + flags.FlagUsages() + "```\n\n")
	}

	if cmd.HasParent() {
		parent := cmd.Parent()
		buf.WriteString("### See also\n\n")
		fmt.Fprintf(&buf, "* [%s](%s) - %s\n", parent.CommandPath(), links(parent.CommandPath()), parent.Short)
	}

	_, err := buf.WriteTo(w)
	return err
}
