package git

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v6/memfs"
	"github.com/go-git/go-billy/v6/util"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/schmitthub/prompter/internal/git/gittest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	t.Run("finds repo from root", func(t *testing.T) {
		r := gittest.NewRepo(t, t.TempDir())

		gitDir, err := Discover(r.Dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(r.Dir, ".git"), gitDir)
	})

	t.Run("finds repo from subdirectory", func(t *testing.T) {
		r := gittest.NewRepo(t, t.TempDir())
		sub := filepath.Join(r.Dir, "src", "pkg")
		require.NoError(t, os.MkdirAll(sub, 0o755))

		gitDir, err := Discover(sub)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(r.Dir, ".git"), gitDir)
	})

	t.Run("returns ErrNotRepository for non-git directory", func(t *testing.T) {
		dir := t.TempDir()

		_, err := Discover(dir, filepath.Dir(dir))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotRepository), "expected ErrNotRepository, got: %v", err)
	})

	t.Run("does not walk into a ceiling directory", func(t *testing.T) {
		home := t.TempDir()
		gittest.NewRepo(t, home)
		sub := filepath.Join(home, "projects", "scratch")
		require.NoError(t, os.MkdirAll(sub, 0o755))

		_, err := Discover(sub, home)
		assert.ErrorIs(t, err, ErrNotRepository)
	})

	t.Run("examines the start directory even when it is a ceiling", func(t *testing.T) {
		home := t.TempDir()
		gittest.NewRepo(t, home)

		gitDir, err := Discover(home, home)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".git"), gitDir)
	})

	t.Run("stops below the ceiling but finds repos between", func(t *testing.T) {
		home := t.TempDir()
		r := gittest.NewRepo(t, filepath.Join(home, "code", "proj"))
		sub := filepath.Join(r.Dir, "a", "b")
		require.NoError(t, os.MkdirAll(sub, 0o755))

		gitDir, err := Discover(sub, home)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(r.Dir, ".git"), gitDir)
	})

	t.Run("recognises a gitfile", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: /elsewhere\n"), 0o644))

		gitDir, err := Discover(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, ".git"), gitDir)
	})
}

func TestDiscoverFS(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, fs.MkdirAll("/home/u/code/proj/.git", 0o755))
	require.NoError(t, fs.MkdirAll("/home/u/code/proj/src/pkg", 0o755))
	require.NoError(t, fs.MkdirAll("/srv/bare.git/objects", 0o755))
	require.NoError(t, util.WriteFile(fs, "/srv/bare.git/HEAD", []byte("ref: refs/heads/main\n"), 0o644))
	require.NoError(t, fs.MkdirAll("/home/u/.git", 0o755))
	require.NoError(t, fs.MkdirAll("/home/u/scratch", 0o755))

	t.Run("worktree repository from a subdirectory", func(t *testing.T) {
		gitDir, err := DiscoverFS(fs, "/home/u/code/proj/src/pkg", "/home/u")
		require.NoError(t, err)
		assert.Equal(t, "/home/u/code/proj/.git", gitDir)
	})

	t.Run("bare layout", func(t *testing.T) {
		gitDir, err := DiscoverFS(fs, "/srv/bare.git")
		require.NoError(t, err)
		assert.Equal(t, "/srv/bare.git", gitDir)
	})

	t.Run("ceiling stops the walk", func(t *testing.T) {
		_, err := DiscoverFS(fs, "/home/u/scratch", "/home/u")
		assert.ErrorIs(t, err, ErrNotRepository)
	})

	t.Run("repository at the ceiling is found from the ceiling", func(t *testing.T) {
		gitDir, err := DiscoverFS(fs, "/home/u", "/home/u")
		require.NoError(t, err)
		assert.Equal(t, "/home/u/.git", gitDir)
	})
}

func TestRootFromGitDir(t *testing.T) {
	tests := []struct {
		name   string
		gitDir string
		want   string
	}{
		{name: "strips trailing .git", gitDir: "/home/u/proj/.git", want: "/home/u/proj"},
		{name: "strips trailing .git with slash", gitDir: "/home/u/proj/.git/", want: "/home/u/proj"},
		{name: "keeps bare repo suffix", gitDir: "/srv/repo.git", want: "/srv/repo.git"},
		{name: "strips only one component", gitDir: "/a/.git/.git", want: "/a/.git"},
		{name: "leaves plain dir alone", gitDir: "/srv/bare", want: "/srv/bare"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RootFromGitDir(tt.gitDir))
		})
	}
}

func TestOpen(t *testing.T) {
	t.Run("opens from subdirectory", func(t *testing.T) {
		r := gittest.NewRepo(t, t.TempDir())
		sub := filepath.Join(r.Dir, "src")
		require.NoError(t, os.MkdirAll(sub, 0o755))

		repo, err := Open(sub)
		require.NoError(t, err)
		assert.Equal(t, r.Dir, repo.Root())
		assert.Equal(t, filepath.Join(r.Dir, ".git"), repo.GitDir())
		assert.NotNil(t, repo.Repository())
	})

	t.Run("returns ErrNotRepository outside a repo", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Open(dir, filepath.Dir(dir))
		assert.ErrorIs(t, err, ErrNotRepository)
	})
}

func TestRepo_Head(t *testing.T) {
	t.Run("branch", func(t *testing.T) {
		r := gittest.NewRepo(t, t.TempDir())
		repo, err := Open(r.Dir)
		require.NoError(t, err)

		head, err := repo.Head()
		require.NoError(t, err)
		assert.Equal(t, gittest.DefaultBranch, head.Name)
		assert.False(t, head.IsTag)
		assert.Equal(t, r.Head(), head.Hash)
	})

	t.Run("symbolic to tag", func(t *testing.T) {
		r := gittest.NewRepo(t, t.TempDir())
		r.Tag("v1.0")
		r.PointHeadAt(plumbing.NewTagReferenceName("v1.0"))
		repo, err := Open(r.Dir)
		require.NoError(t, err)

		head, err := repo.Head()
		require.NoError(t, err)
		assert.True(t, head.IsTag)
		assert.Equal(t, "v1.0", head.Name)
	})

	t.Run("detached", func(t *testing.T) {
		r := gittest.NewRepo(t, t.TempDir())
		r.Detach()
		repo, err := Open(r.Dir)
		require.NoError(t, err)

		head, err := repo.Head()
		require.NoError(t, err)
		assert.Equal(t, "HEAD", head.Name)
		assert.Equal(t, r.Head(), head.Hash)
	})

	t.Run("unborn", func(t *testing.T) {
		r := gittest.NewEmptyRepo(t, t.TempDir())
		repo, err := Open(r.Dir)
		require.NoError(t, err)

		_, err = repo.Head()
		assert.ErrorIs(t, err, ErrNoHead)
	})
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0000000", ShortID(plumbing.ZeroHash))

	r := gittest.NewRepo(t, t.TempDir())
	h := r.Head()
	assert.Equal(t, h.String()[:7], ShortID(h))
}

func TestNewRepo_InMemory(t *testing.T) {
	mem := gittest.NewInMemory(t)
	repo := NewRepo(mem.Repo, "/virtual/proj/.git")

	assert.Equal(t, "/virtual/proj", repo.Root())

	head, err := repo.Head()
	require.NoError(t, err)
	assert.Equal(t, gittest.DefaultBranch, head.Name)
}
