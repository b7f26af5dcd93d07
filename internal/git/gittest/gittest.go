// Package gittest builds throwaway repositories for tests.
package gittest

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/memfs"
	"github.com/go-git/go-billy/v6/util"
	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/cache"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/storage/filesystem"
	"github.com/stretchr/testify/require"
)

// DefaultBranch is the branch HEAD points at in every repository built here.
const DefaultBranch = "main"

// Repo is a repository on disk with helpers for shaping its state.
type Repo struct {
	t    *testing.T
	Dir  string
	Repo *gogit.Repository
}

// NewRepo initialises a repository in dir (created if missing) with HEAD on
// DefaultBranch and one commit containing README.md.
func NewRepo(t *testing.T, dir string) *Repo {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err, "init test repo")
	setDefaultBranch(t, repo)

	r := &Repo{t: t, Dir: dir, Repo: repo}
	r.WriteFile("README.md", "# Test Repo\n")
	r.Add("README.md")
	r.Commit("initial commit")
	return r
}

// NewEmptyRepo initialises a repository with no commits (unborn HEAD).
func NewEmptyRepo(t *testing.T, dir string) *Repo {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err, "init test repo")
	setDefaultBranch(t, repo)
	return &Repo{t: t, Dir: dir, Repo: repo}
}

func setDefaultBranch(t *testing.T, repo *gogit.Repository) {
	t.Helper()
	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(DefaultBranch))
	require.NoError(t, repo.Storer.SetReference(head), "pointing HEAD at %s", DefaultBranch)
}

// WriteFile writes content to a path relative to the worktree.
func (r *Repo) WriteFile(name, content string) {
	r.t.Helper()
	path := filepath.Join(r.Dir, name)
	require.NoError(r.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(r.t, os.WriteFile(path, []byte(content), 0o644))
}

// RemoveFile deletes a worktree file without touching the index.
func (r *Repo) RemoveFile(name string) {
	r.t.Helper()
	require.NoError(r.t, os.Remove(filepath.Join(r.Dir, name)))
}

// RenameFile renames a worktree file without touching the index.
func (r *Repo) RenameFile(from, to string) {
	r.t.Helper()
	require.NoError(r.t, os.Rename(filepath.Join(r.Dir, from), filepath.Join(r.Dir, to)))
}

// Add stages a path.
func (r *Repo) Add(name string) {
	r.t.Helper()
	wt, err := r.Repo.Worktree()
	require.NoError(r.t, err)
	_, err = wt.Add(name)
	require.NoError(r.t, err, "staging %s", name)
}

// Remove stages the deletion of a path and removes it from the worktree.
func (r *Repo) Remove(name string) {
	r.t.Helper()
	wt, err := r.Repo.Worktree()
	require.NoError(r.t, err)
	_, err = wt.Remove(name)
	require.NoError(r.t, err, "removing %s", name)
}

// Commit records the index and returns the new commit id.
func (r *Repo) Commit(msg string) plumbing.Hash {
	r.t.Helper()
	wt, err := r.Repo.Worktree()
	require.NoError(r.t, err)
	h, err := wt.Commit(msg, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(r.t, err, "committing %q", msg)
	return h
}

// Head returns the commit HEAD resolves to.
func (r *Repo) Head() plumbing.Hash {
	r.t.Helper()
	ref, err := r.Repo.Head()
	require.NoError(r.t, err)
	return ref.Hash()
}

// Tag creates a lightweight tag at HEAD.
func (r *Repo) Tag(name string) {
	r.t.Helper()
	_, err := r.Repo.CreateTag(name, r.Head(), nil)
	require.NoError(r.t, err, "tagging %s", name)
}

// PointHeadAt makes HEAD a symbolic reference to target.
func (r *Repo) PointHeadAt(target plumbing.ReferenceName) {
	r.t.Helper()
	require.NoError(r.t, r.Repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, target)))
}

// Detach points HEAD directly at the current commit.
func (r *Repo) Detach() {
	r.t.Helper()
	require.NoError(r.t, r.Repo.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, r.Head())))
}

// SetConfig sets an option in the repository's own config file.
func (r *Repo) SetConfig(section, key, value string) {
	r.t.Helper()
	cfg, err := r.Repo.Config()
	require.NoError(r.t, err)
	cfg.Raw.Section(section).SetOption(key, value)
	require.NoError(r.t, r.Repo.SetConfig(cfg), "setting %s.%s", section, key)
}

// RequireGitCLI skips the test when the git binary is not installed.
func RequireGitCLI(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// Git runs the git binary in the worktree with a fixed identity and no
// user or system config, returning combined output.
func (r *Repo) Git(args ...string) (string, error) {
	r.t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(),
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_CONFIG_GLOBAL="+os.DevNull,
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// MustGit is Git for commands expected to succeed.
func (r *Repo) MustGit(args ...string) string {
	r.t.Helper()
	out, err := r.Git(args...)
	require.NoError(r.t, err, "git %v: %s", args, out)
	return out
}

// Conflict leaves path unmerged: two branches change it differently and
// the second is merged into DefaultBranch.
func (r *Repo) Conflict(path string) {
	r.t.Helper()
	r.WriteFile(path, "base\n")
	r.Add(path)
	r.Commit("add " + path)

	r.MustGit("checkout", "-q", "-b", "conflicting")
	r.WriteFile(path, "theirs\n")
	r.MustGit("commit", "-q", "-a", "-m", "theirs")

	r.MustGit("checkout", "-q", DefaultBranch)
	r.WriteFile(path, "ours\n")
	r.MustGit("commit", "-q", "-a", "-m", "ours")

	out, err := r.Git("merge", "conflicting")
	require.Error(r.t, err, "merge should conflict: %s", out)
}

// InMemory is a repository whose metadata and worktree live in memfs.
type InMemory struct {
	Repo     *gogit.Repository
	Worktree billy.Filesystem
}

// NewInMemory creates a memfs-backed repository seeded with one commit so
// HEAD exists.
func NewInMemory(t *testing.T) *InMemory {
	t.Helper()

	dotGitFS := memfs.New()
	worktreeFS := memfs.New()
	storer := filesystem.NewStorage(dotGitFS, cache.NewObjectLRUDefault())

	repo, err := gogit.Init(storer, gogit.WithWorkTree(worktreeFS))
	require.NoError(t, err, "failed to init in-memory repo")
	setDefaultBranch(t, repo)

	require.NoError(t, util.WriteFile(worktreeFS, "README.md", []byte("# Test Repository\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err, "failed to get worktree")
	_, err = wt.Add("README.md")
	require.NoError(t, err, "failed to add README")
	_, err = wt.Commit("Initial commit", &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err, "failed to create initial commit")

	return &InMemory{Repo: repo, Worktree: worktreeFS}
}
