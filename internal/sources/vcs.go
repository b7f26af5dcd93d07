package sources

import (
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v6/plumbing"
	"github.com/schmitthub/prompter/internal/git"
	"github.com/schmitthub/prompter/internal/logger"
)

// Slot offsets written by a VersionControl source.
const (
	vcsLabel = iota
	vcsRoot
	vcsInfo
	vcsRest
)

// fillVersionControl classifies the repository containing the cwd. When no
// repository is found the four slots are left as they were.
func (d *Dispatcher) fillVersionControl(base int, v Vars) {
	repo, err := git.Open(d.Env.Cwd, d.Env.Home)
	if err != nil {
		logger.Debug().Str("source", VersionControl.String()).Err(err).Msg("no repository")
		return
	}

	root := repo.Root()
	v[base+vcsLabel] = VCSLabel
	v[base+vcsRoot] = AbbreviateHome(root, d.Env.Home)
	v[base+vcsRest] = string(filepath.Separator) + PathBelow(root, d.Env.Cwd)
	v[base+vcsInfo] = headInfo(repo)
}

// headInfo renders "<head>:<short id><status code>".
func headInfo(repo *git.Repo) string {
	name := UnknownHead
	hash := plumbing.ZeroHash
	if head, err := repo.Head(); err == nil {
		name = head.Name
		if head.IsTag {
			name = TagPrefix + name
		}
		hash = head.Hash
	} else {
		logger.Debug().Err(err).Msg("unresolvable HEAD")
	}

	code := ""
	if entries, err := repo.Status(git.PromptStatusOptions()); err == nil {
		code = git.Summarize(entries).Code()
	} else {
		logger.Debug().Err(err).Msg("status unavailable")
	}

	return name + ":" + git.ShortID(hash) + code
}

// AbbreviateHome rewrites a path strictly inside home to start with "~".
// home itself, and paths outside it, are returned unchanged.
func AbbreviateHome(path, home string) string {
	if home == "" {
		return path
	}
	home = filepath.Clean(home)
	prefix := home + string(filepath.Separator)
	if home == string(filepath.Separator) || !strings.HasPrefix(path, prefix) {
		return path
	}
	return "~" + string(filepath.Separator) + strings.TrimPrefix(path, prefix)
}

// PathBelow returns cwd relative to root, or "" when cwd is root or not
// inside it.
func PathBelow(root, cwd string) string {
	rel, err := filepath.Rel(root, cwd)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return rel
}
