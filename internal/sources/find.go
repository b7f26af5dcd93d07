package sources

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// FindUpwards looks for name in start and each of its ancestors and returns
// the first path that exists. An empty name never matches.
func FindUpwards(fs afero.Fs, start, name string) (string, bool) {
	if name == "" {
		return "", false
	}
	dir := filepath.Clean(start)
	for {
		candidate := filepath.Join(dir, name)
		if _, err := fs.Stat(candidate); err == nil {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
