package git

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/osfs"
	"github.com/go-git/go-git/v6/plumbing/format/gitignore"
)

// excludePatterns returns the patterns of the core.excludesFile in effect
// for the repository, resolved the way git does: repository config, then
// ~/.gitconfig, then /etc/gitconfig, then $XDG_CONFIG_HOME/git/ignore.
// .gitignore files and info/exclude are read by go-git itself.
func (r *Repo) excludePatterns() []gitignore.Pattern {
	fs := osfs.Default

	if cfg, err := r.repo.Config(); err == nil && cfg.Raw != nil && cfg.Raw.HasSection("core") {
		if path := cfg.Raw.Section("core").Options.Get("excludesfile"); path != "" {
			return readExcludesFile(fs, path)
		}
	}
	if ps, err := gitignore.LoadGlobalPatterns(fs); err == nil && len(ps) > 0 {
		return ps
	}
	if ps, err := gitignore.LoadSystemPatterns(fs); err == nil && len(ps) > 0 {
		return ps
	}
	return readExcludesFile(fs, defaultExcludesFile())
}

// defaultExcludesFile is the ignore file git reads when core.excludesFile
// is unset.
func defaultExcludesFile() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "git", "ignore")
}

// readExcludesFile parses a gitignore-format file. A missing or unreadable
// file yields no patterns.
func readExcludesFile(fs billy.Filesystem, path string) []gitignore.Pattern {
	if path == "" {
		return nil
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, rest)
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var ps []gitignore.Pattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		ps = append(ps, gitignore.ParsePattern(line, nil))
	}
	return ps
}
