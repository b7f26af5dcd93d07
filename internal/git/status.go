package git

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v6"
	"github.com/go-git/go-billy/v6/util"
	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/format/index"
	"github.com/go-git/go-git/v6/plumbing/object"
)

// StatusOptions selects what Status reports.
type StatusOptions struct {
	// IncludeUntracked keeps untracked files in the result.
	IncludeUntracked bool
	// RenamesHeadToIndex pairs staged deletions with staged additions of
	// identical content.
	RenamesHeadToIndex bool
	// RenamesIndexToWorkdir pairs worktree deletions with untracked files of
	// identical content.
	RenamesIndexToWorkdir bool
	// RenamesFromRewrites lets a modified file's index content pair with an
	// untracked file, as if the rewrite had been split into delete + add.
	RenamesFromRewrites bool
}

// PromptStatusOptions is the option set the prompt uses: everything on.
func PromptStatusOptions() StatusOptions {
	return StatusOptions{
		IncludeUntracked:      true,
		RenamesHeadToIndex:    true,
		RenamesIndexToWorkdir: true,
		RenamesFromRewrites:   true,
	}
}

// Entry is the status of one path, split into its index (Staging) and
// worktree halves.
type Entry struct {
	Path string
	// From is the original path of a detected rename.
	From     string
	Staging  gogit.StatusCode
	Worktree gogit.StatusCode
}

// Conflicted reports whether the entry is an unmerged path.
func (e Entry) Conflicted() bool {
	return e.Staging == gogit.UpdatedButUnmerged || e.Worktree == gogit.UpdatedButUnmerged
}

func (e Entry) clean() bool {
	return (e.Staging == gogit.Unmodified || e.Staging == 0) &&
		(e.Worktree == gogit.Unmodified || e.Worktree == 0)
}

// Status enumerates the status entries of the worktree, sorted by path.
// Bare repositories have no worktree and return an error.
func (r *Repo) Status(opts StatusOptions) ([]Entry, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}
	wt.Excludes = append(wt.Excludes, r.excludePatterns()...)
	st, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("computing status: %w", err)
	}

	byPath := make(map[string]*Entry, len(st))
	for path, fs := range st {
		byPath[path] = &Entry{Path: path, Staging: fs.Staging, Worktree: fs.Worktree}
	}

	idx, idxErr := r.repo.Storer.Index()
	if idxErr == nil {
		markConflicts(idx, byPath)
	}

	if opts.RenamesHeadToIndex && idxErr == nil {
		r.pairStagedRenames(idx, byPath)
	}
	if (opts.RenamesIndexToWorkdir || opts.RenamesFromRewrites) && idxErr == nil {
		r.pairWorktreeRenames(wt, idx, byPath, opts)
	}

	entries := make([]Entry, 0, len(byPath))
	for _, e := range byPath {
		if e.clean() {
			continue
		}
		if !opts.IncludeUntracked && e.Worktree == gogit.Untracked {
			continue
		}
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}

// markConflicts flags every path with a non-zero index stage as unmerged.
// An unmerged path carries no other status.
func markConflicts(idx *index.Index, byPath map[string]*Entry) {
	for _, ie := range idx.Entries {
		if ie.Stage == 0 {
			continue
		}
		e, ok := byPath[ie.Name]
		if !ok {
			e = &Entry{Path: ie.Name}
			byPath[ie.Name] = e
		}
		e.Staging = gogit.UpdatedButUnmerged
		e.Worktree = gogit.UpdatedButUnmerged
	}
}

// pairStagedRenames turns a staged deletion plus a staged addition with the
// same blob into a single staged rename.
func (r *Repo) pairStagedRenames(idx *index.Index, byPath map[string]*Entry) {
	tree, err := r.headTree()
	if err != nil {
		return
	}

	deleted := map[plumbing.Hash][]*Entry{}
	for _, e := range sortedEntries(byPath) {
		if e.Staging != gogit.Deleted {
			continue
		}
		te, err := tree.FindEntry(e.Path)
		if err != nil {
			continue
		}
		deleted[te.Hash] = append(deleted[te.Hash], e)
	}
	if len(deleted) == 0 {
		return
	}

	for _, e := range sortedEntries(byPath) {
		if e.Staging != gogit.Added {
			continue
		}
		ie, err := idx.Entry(e.Path)
		if err != nil {
			continue
		}
		src := takeFirst(deleted, ie.Hash)
		if src == nil {
			continue
		}
		e.Staging = gogit.Renamed
		e.From = src.Path
		src.Staging = gogit.Unmodified
	}
}

// pairWorktreeRenames matches untracked files against worktree deletions
// (and, for rewrites, modified files) by content. Only untracked files whose
// size equals some candidate's indexed size are read.
func (r *Repo) pairWorktreeRenames(wt *gogit.Worktree, idx *index.Index, byPath map[string]*Entry, opts StatusOptions) {
	sources := map[plumbing.Hash][]*Entry{}
	sizes := map[uint32]bool{}
	for _, e := range sortedEntries(byPath) {
		deleted := opts.RenamesIndexToWorkdir && e.Worktree == gogit.Deleted
		rewritten := opts.RenamesFromRewrites && e.Worktree == gogit.Modified
		if !deleted && !rewritten {
			continue
		}
		ie, err := idx.Entry(e.Path)
		if err != nil {
			continue
		}
		sources[ie.Hash] = append(sources[ie.Hash], e)
		sizes[ie.Size] = true
	}
	if len(sources) == 0 {
		return
	}

	for _, e := range sortedEntries(byPath) {
		if e.Worktree != gogit.Untracked {
			continue
		}
		if !sizeMatches(wt.Filesystem, e.Path, sizes) {
			continue
		}
		content, err := util.ReadFile(wt.Filesystem, e.Path)
		if err != nil {
			continue
		}
		h, err := r.blobHash(content)
		if err != nil {
			continue
		}
		src := takeFirst(sources, h)
		if src == nil {
			continue
		}
		e.Staging = gogit.Unmodified
		e.Worktree = gogit.Renamed
		e.From = src.Path
		if src.Worktree == gogit.Deleted {
			src.Worktree = gogit.Unmodified
		}
	}
}

// sizeMatches reports whether path is a regular file whose size is one of
// sizes, so that only plausible rename targets are read and hashed.
func sizeMatches(fs billy.Filesystem, path string, sizes map[uint32]bool) bool {
	fi, err := fs.Lstat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return false
	}
	return sizes[uint32(fi.Size())]
}

func (r *Repo) headTree() (*object.Tree, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return nil, err
	}
	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, err
	}
	return commit.Tree()
}

// blobHash computes the object id content would have as a blob, without
// writing it to the object store.
func (r *Repo) blobHash(content []byte) (plumbing.Hash, error) {
	obj := r.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(content)))
	w, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	if _, err := w.Write(content); err != nil {
		_ = w.Close()
		return plumbing.ZeroHash, err
	}
	if err := w.Close(); err != nil {
		return plumbing.ZeroHash, err
	}
	return obj.Hash(), nil
}

func sortedEntries(byPath map[string]*Entry) []*Entry {
	out := make([]*Entry, 0, len(byPath))
	for _, e := range byPath {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func takeFirst(m map[plumbing.Hash][]*Entry, h plumbing.Hash) *Entry {
	list := m[h]
	if len(list) == 0 {
		return nil
	}
	m[h] = list[1:]
	return list[0]
}

// Summary is the aggregate of all status entries: each flag is set if any
// entry has that property.
type Summary struct {
	Untracked bool
	Added     bool
	Removed   bool
	Renamed   bool
	Modified  bool
	Conflicts int
}

// Summarize ORs the per-entry flags across entries and counts conflicts.
// The result does not depend on the order of entries.
func Summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		if e.Conflicted() {
			s.Conflicts++
			continue
		}
		s.Untracked = s.Untracked || e.Worktree == gogit.Untracked
		s.Added = s.Added || e.Staging == gogit.Added
		s.Removed = s.Removed || e.Staging == gogit.Deleted || e.Worktree == gogit.Deleted
		s.Renamed = s.Renamed || e.Staging == gogit.Renamed || e.Worktree == gogit.Renamed
		s.Modified = s.Modified || e.Staging == gogit.Modified || e.Worktree == gogit.Modified
	}
	return s
}

// Code renders the summary as the compact prompt code: one letter per set
// flag in the fixed order ? A D R M, then C[n] for conflicts, the whole
// thing prefixed with a comma. A clean summary renders as "".
func (s Summary) Code() string {
	var b strings.Builder
	if s.Untracked {
		b.WriteByte('?')
	}
	if s.Added {
		b.WriteByte('A')
	}
	if s.Removed {
		b.WriteByte('D')
	}
	if s.Renamed {
		b.WriteByte('R')
	}
	if s.Modified {
		b.WriteByte('M')
	}
	if s.Conflicts > 0 {
		b.WriteString("C[" + strconv.Itoa(s.Conflicts) + "]")
	}
	if b.Len() == 0 {
		return ""
	}
	return "," + b.String()
}

// ShortID returns the first seven hex digits of h. The zero hash renders
// as "0000000".
func ShortID(h plumbing.Hash) string {
	s := h.String()
	if len(s) > 7 {
		return s[:7]
	}
	return s
}
