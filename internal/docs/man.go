package docs

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// GenManHeader contains man page metadata
type GenManHeader struct {
	Title   string
	Section string
	Date    *time.Time
	Manual  string
}

func (h *GenManHeader) section() string {
	if h == nil || h.Section == "" {
		return "1"
	}
	return h.Section
}

// DefaultManHeader is the header GenManTree uses.
func DefaultManHeader() *GenManHeader {
	return &GenManHeader{
		Section: "1",
		Manual:  "Prompter Manual",
	}
}

// GenManTree writes one man page per visible command into dir, named
// after the command path joined with "-" (prompter-config-init.1).
func GenManTree(cmd *cobra.Command, dir string) error {
	return GenManTreeWithHeader(cmd, dir, DefaultManHeader())
}

// GenManTreeWithHeader is GenManTree with a custom header. Title is
// derived per page when empty.
func GenManTreeWithHeader(cmd *cobra.Command, dir string, header *GenManHeader) error {
	return walk(cmd, func(c *cobra.Command) error {
		var buf bytes.Buffer
		if err := GenMan(c, header, &buf); err != nil {
			return err
		}
		name := joinPath(c, "-") + "." + header.section()
		return writeFile(filepath.Join(dir, name), buf.Bytes())
	})
}

// GenMan renders the man page for a single command as roff.
func GenMan(cmd *cobra.Command, header *GenManHeader, w io.Writer) error {
	if header == nil {
		header = DefaultManHeader()
	}
	_, err := w.Write(md2man.Render(manMarkdown(cmd, header)))
	return err
}

func manMarkdown(cmd *cobra.Command, header *GenManHeader) []byte {
	cmd.InitDefaultHelpFlag()

	var buf bytes.Buffer
	name := cmd.CommandPath()
	section := header.section()

	title := header.Title
	if title == "" {
		title = strings.ToUpper(joinPath(cmd, "-"))
	}
	date := ""
	if header.Date != nil {
		date = header.Date.Format("Jan 2006")
	}
	fmt.Fprintf(&buf, "%% %s(%s) %s | %s\n\n", title, section, date, header.Manual)

	buf.WriteString("# NAME\n")
	short := cmd.Short
	if short == "" {
		short = "manual page for " + name
	}
	fmt.Fprintf(&buf, "%s \\- %s\n\n", name, short)

	buf.WriteString("# SYNOPSIS\n")
	fmt.Fprintf(&buf, "**%s**", cmd.UseLine())
	if cmd.HasAvailableSubCommands() {
		buf.WriteString(" COMMAND")
	}
	buf.WriteString("\n\n")

	if cmd.Long != "" {
		buf.WriteString("# DESCRIPTION\n")
		buf.WriteString(cmd.Long + "\n\n")
	}

	if subs := visibleCommands(cmd); len(subs) > 0 {
		buf.WriteString("# COMMANDS\n")
		for _, c := range subs {
			fmt.Fprintf(&buf, "**%s**\n: %s\n\n", c.Name(), c.Short)
		}
	}

	local, inherited := cmd.NonInheritedFlags(), cmd.InheritedFlags()
	if local.HasAvailableFlags() || inherited.HasAvailableFlags() {
		buf.WriteString("# OPTIONS\n")
		manFlags(&buf, local)
		manFlags(&buf, inherited)
	}

	if cmd.Example != "" {
		buf.WriteString("# EXAMPLES\n")
		buf.WriteString("```\n" + cmd.Example + "\n```\n\n")
	}

	manSeeAlso(&buf, cmd, section)
	return buf.Bytes()
}

func manFlags(buf *bytes.Buffer, flags *pflag.FlagSet) {
	flags.SortFlags = true
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		if f.Shorthand != "" {
			fmt.Fprintf(buf, "**-%s**, **--%s**", f.Shorthand, f.Name)
		} else {
			fmt.Fprintf(buf, "**--%s**", f.Name)
		}
		if t := f.Value.Type(); t != "bool" {
			fmt.Fprintf(buf, " <%s>", t)
		}
		buf.WriteString("\n: " + f.Usage)
		switch f.DefValue {
		case "", "false", "0", "[]":
		default:
			fmt.Fprintf(buf, " (default: %s)", f.DefValue)
		}
		buf.WriteString("\n\n")
	})
}

func manSeeAlso(buf *bytes.Buffer, cmd *cobra.Command, section string) {
	var refs []string
	if cmd.HasParent() {
		parent := cmd.Parent()
		refs = append(refs, joinPath(parent, "-"))
		for _, s := range visibleCommands(parent) {
			if s != cmd {
				refs = append(refs, joinPath(s, "-"))
			}
		}
	}
	for _, c := range visibleCommands(cmd) {
		refs = append(refs, joinPath(c, "-"))
	}
	if len(refs) == 0 {
		return
	}

	buf.WriteString("# SEE ALSO\n")
	for i, r := range refs {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "**%s(%s)**", r, section)
	}
	buf.WriteString("\n")
}
