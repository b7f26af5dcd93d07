package sources

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Env is the read-only view of the process environment that sources
// consult. Tests build one by hand instead of touching the real process.
type Env struct {
	// Cwd is the directory the prompt is drawn for.
	Cwd string
	// Home is the user's home directory; empty disables tilde shortening
	// and the discovery ceiling.
	Home string
	// Lookup reads environment variables. Nil means every variable is unset.
	Lookup func(key string) (string, bool)
	// FS is searched for marker files. Nil means the OS filesystem.
	FS afero.Fs
}

// FromOS captures the current process environment. A cwd that cannot be
// read degrades to "." rather than failing.
func FromOS() Env {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	if home != "" {
		home = filepath.Clean(home)
	}
	return Env{
		Cwd:    cwd,
		Home:   home,
		Lookup: os.LookupEnv,
		FS:     afero.NewOsFs(),
	}
}

// Getenv looks up key, treating a missing Lookup as an empty environment.
func (e Env) Getenv(key string) (string, bool) {
	if e.Lookup == nil || key == "" {
		return "", false
	}
	return e.Lookup(key)
}

func (e Env) fs() afero.Fs {
	if e.FS == nil {
		return afero.NewOsFs()
	}
	return e.FS
}

// MapLookup adapts a map into an Env.Lookup function.
func MapLookup(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}
