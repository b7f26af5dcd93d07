// Package docs renders the cobra command tree as man pages and Markdown.
package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// visibleCommands returns the non-hidden subcommands of cmd sorted by name.
// The generated help command is left out.
func visibleCommands(cmd *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, c := range cmd.Commands() {
		if c.Hidden || c.Name() == "help" {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// walk calls fn for cmd and every visible command below it, children first.
func walk(cmd *cobra.Command, fn func(*cobra.Command) error) error {
	for _, c := range visibleCommands(cmd) {
		if err := walk(c, fn); err != nil {
			return err
		}
	}
	return fn(cmd)
}

// joinPath turns "prompter config init" into "prompter<sep>config<sep>init".
func joinPath(cmd *cobra.Command, sep string) string {
	return joinPathString(cmd.CommandPath(), sep)
}

func joinPathString(cmdPath, sep string) string {
	return strings.ReplaceAll(cmdPath, " ", sep)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
