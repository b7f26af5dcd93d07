// Package sources computes prompt variables. Each Source writes one or more
// slots of a Vars array; a Dispatcher runs sources in declaration order.
package sources

import (
	"fmt"
	"strings"
)

// Kind identifies what a Source computes.
type Kind int

const (
	// VersionControl writes four slots from its base: label, repository
	// root, head info, path below the root.
	VersionControl Kind = iota
	// Privilege writes a marker when privilege escalation works without a
	// password prompt.
	Privilege
	// Toolchain appends a toolchain glyph when a toolchain marker file is
	// found above the current directory.
	Toolchain
	// DirectoryEnv appends a glyph when a directory environment is active.
	DirectoryEnv
	// KeyAgent writes a glyph when a hardware key is available.
	KeyAgent
	// ProjectMarker writes a glyph when a marker file is found above the
	// current directory.
	ProjectMarker
)

var kindNames = map[Kind]string{
	VersionControl: "git",
	Privilege:      "sudo",
	Toolchain:      "rust",
	DirectoryEnv:   "direnv",
	KeyAgent:       "key",
	ProjectMarker:  "flake",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a configuration name to a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown source kind %q (want one of %s)", name, strings.Join(KindNames(), ", "))
}

// KindNames lists the configuration names of all kinds in Kind order.
func KindNames() []string {
	names := make([]string, 0, len(kindNames))
	for k := VersionControl; k <= ProjectMarker; k++ {
		names = append(names, kindNames[k])
	}
	return names
}

// vcsSlots is the number of contiguous slots a VersionControl source writes.
const vcsSlots = 4

// Source is one declared data source and the slot it writes. For
// VersionControl, Slot is the base of four contiguous slots.
type Source struct {
	Kind Kind
	Slot int
}

// Git declares a VersionControl source at base.
func Git(base int) Source { return Source{Kind: VersionControl, Slot: base} }

// Sudo declares a Privilege source.
func Sudo(slot int) Source { return Source{Kind: Privilege, Slot: slot} }

// Rust declares a Toolchain source.
func Rust(slot int) Source { return Source{Kind: Toolchain, Slot: slot} }

// Direnv declares a DirectoryEnv source.
func Direnv(slot int) Source { return Source{Kind: DirectoryEnv, Slot: slot} }

// Key declares a KeyAgent source.
func Key(slot int) Source { return Source{Kind: KeyAgent, Slot: slot} }

// Flake declares a ProjectMarker source.
func Flake(slot int) Source { return Source{Kind: ProjectMarker, Slot: slot} }

// MaxIndex is the highest slot the source writes.
func (s Source) MaxIndex() int {
	if s.Kind == VersionControl {
		return s.Slot + vcsSlots - 1
	}
	return s.Slot
}

func (s Source) String() string {
	return fmt.Sprintf("%s(%d)", s.Kind, s.Slot)
}

// DefaultSources is the stock source list:
//
//	1-4  git: label, root, head info, path below root
//	5    sudo available
//	6    labels: direnv then rust
//	7    hardware key
//	8    flake
func DefaultSources() []Source {
	return []Source{Git(1), Sudo(5), Direnv(6), Rust(6), Key(7), Flake(8)}
}
