// Package git reads the repository state shown in the prompt: where the
// repository is, what HEAD points at, and a summary of working-tree status.
//
// This is a leaf package: it imports only stdlib, go-git and go-billy.
// Callers pass paths in explicitly; nothing here reads the process
// environment.
package git

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/osfs"
	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
)

var (
	// ErrNotRepository is returned when no repository is found at or above a path.
	ErrNotRepository = errors.New("not a git repository")

	// ErrNoHead is returned when HEAD cannot be resolved to a commit
	// (unborn branch, broken ref).
	ErrNoHead = errors.New("HEAD does not resolve")
)

// MetadataDir is the name of the repository metadata directory (or gitfile).
const MetadataDir = ".git"

// Repo is an opened repository together with the metadata path it was
// discovered through.
type Repo struct {
	repo   *gogit.Repository
	gitDir string
}

// Open discovers the repository containing start and opens it.
// Discovery never walks into any of the ceiling directories from below;
// see Discover.
//
// Returns ErrNotRepository (wrapped) if no repository is found.
func Open(start string, ceilings ...string) (*Repo, error) {
	gitDir, err := Discover(start, ceilings...)
	if err != nil {
		return nil, err
	}

	// PlainOpen takes the worktree for ordinary repositories and the
	// metadata directory itself for bare ones.
	repo, err := gogit.PlainOpenWithOptions(RootFromGitDir(gitDir), &gogit.PlainOpenOptions{
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, start)
		}
		return nil, fmt.Errorf("opening repository at %s: %w", gitDir, err)
	}

	return &Repo{repo: repo, gitDir: gitDir}, nil
}

// NewRepo wraps an already opened go-git repository.
// gitDir is the logical metadata path used for Root; it may be a fake path
// for in-memory repositories.
func NewRepo(repo *gogit.Repository, gitDir string) *Repo {
	return &Repo{repo: repo, gitDir: gitDir}
}

// Discover walks upward from start looking for a repository. At each level
// it checks for a .git entry (directory or gitfile) and then for a bare
// repository layout. It returns the metadata path: "<dir>/.git" for
// ordinary repositories, the directory itself for bare ones.
//
// The walk stops before moving into any ceiling directory, matching git's
// GIT_CEILING_DIRECTORIES: start itself is always examined, even when it is
// a ceiling. Mount points are crossed.
func Discover(start string, ceilings ...string) (string, error) {
	return DiscoverFS(osfs.Default, start, ceilings...)
}

// DiscoverFS is Discover over fs, which must be rooted at the filesystem
// root.
func DiscoverFS(fs billy.Filesystem, start string, ceilings ...string) (string, error) {
	current, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	ceiling := make(map[string]bool, len(ceilings))
	for _, c := range ceilings {
		if c == "" {
			continue
		}
		ceiling[filepath.Clean(c)] = true
	}

	for {
		dotGit := filepath.Join(current, MetadataDir)
		if _, err := fs.Stat(dotGit); err == nil {
			return dotGit, nil
		}
		if isBare(fs, current) {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current || ceiling[parent] {
			return "", fmt.Errorf("%w: %s", ErrNotRepository, start)
		}
		current = parent
	}
}

// isBare reports whether dir has the layout of a bare repository.
func isBare(fs billy.Filesystem, dir string) bool {
	head, err := fs.Stat(fs.Join(dir, "HEAD"))
	if err != nil || head.IsDir() {
		return false
	}
	objects, err := fs.Stat(fs.Join(dir, "objects"))
	return err == nil && objects.IsDir()
}

// Repository returns the underlying go-git Repository.
func (r *Repo) Repository() *gogit.Repository {
	return r.repo
}

// GitDir returns the metadata path the repository was discovered through.
func (r *Repo) GitDir() string {
	return r.gitDir
}

// Root returns the repository root: the metadata path with one trailing
// .git component removed. Bare repositories are their own root.
func (r *Repo) Root() string {
	return RootFromGitDir(r.gitDir)
}

// RootFromGitDir strips a single trailing ".git" path component.
// Any other path, including "repo.git", is returned cleaned but otherwise
// unchanged.
func RootFromGitDir(gitDir string) string {
	clean := filepath.Clean(gitDir)
	if filepath.Base(clean) == MetadataDir {
		return filepath.Dir(clean)
	}
	return clean
}

// Head describes what HEAD points at.
type Head struct {
	// Name is the short reference name ("main", "v1.0", "HEAD" when detached).
	Name string
	// IsTag is set when HEAD is a symbolic reference into refs/tags.
	IsTag bool
	// Hash is the target of the resolved reference.
	Hash plumbing.Hash
}

// Head resolves HEAD. Returns ErrNoHead (wrapped) when HEAD is unborn or
// otherwise unresolvable.
func (r *Repo) Head() (Head, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return Head{}, fmt.Errorf("%w: %v", ErrNoHead, err)
	}

	h := Head{
		Name: ref.Name().Short(),
		Hash: ref.Hash(),
	}
	if ref.Name() == plumbing.HEAD {
		// Detached.
		h.Name = "HEAD"
	}
	h.IsTag = ref.Name().IsTag()

	// repo.Head() hands back the resolved reference; look at the raw HEAD to
	// see whether it is symbolic into refs/tags.
	if raw, err := r.repo.Storer.Reference(plumbing.HEAD); err == nil &&
		raw.Type() == plumbing.SymbolicReference && raw.Target().IsTag() {
		h.IsTag = true
		h.Name = raw.Target().Short()
	}

	return h, nil
}
