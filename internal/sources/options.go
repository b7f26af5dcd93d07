package sources

// Glyphs are the decorations sources write into their slots.
type Glyphs struct {
	Privilege    string
	Toolchain    string
	Stable       string
	Beta         string
	Nightly      string
	Other        string
	DirectoryEnv string
	Key          string
	Project      string
}

// Options configures the external collaborators each source kind consults.
type Options struct {
	PrivilegeCommand Command
	ToolchainCommand Command
	KeyCommand       Command

	// ToolchainMarker gates the Toolchain source.
	ToolchainMarker string
	// ProjectMarker is the file the ProjectMarker source looks for.
	ProjectMarker string

	// DirectoryEnvVar being set activates the DirectoryEnv source.
	DirectoryEnvVar string
	// KeyEnvVar must be set for the KeyAgent source to run its command.
	KeyEnvVar string

	Glyphs Glyphs
}

// VCSLabel is the value written to the base slot of a VersionControl source.
const VCSLabel = "git"

// UnknownHead names HEAD when it does not resolve.
const UnknownHead = "UNKNOWN"

// TagPrefix marks a head that is a tag.
const TagPrefix = "tag:"

// DefaultGlyphs returns the stock glyph set.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Privilege:    "yes",
		Toolchain:    "🦀",
		Stable:       "🏠",
		Beta:         "🧪",
		Nightly:      "🌙",
		Other:        "🔧",
		DirectoryEnv: "📂",
		Key:          "🔑",
		Project:      "❄ ",
	}
}

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		PrivilegeCommand: MustParseCommand("sudo -n true"),
		ToolchainCommand: MustParseCommand("rustup show active-toolchain"),
		KeyCommand:       MustParseCommand("gpg --card-status"),
		ToolchainMarker:  "Cargo.toml",
		ProjectMarker:    "flake.nix",
		DirectoryEnvVar:  "DIRENV_DIR",
		KeyEnvVar:        "SSH_AUTH_SOCK",
		Glyphs:           DefaultGlyphs(),
	}
}
