package config

const (
	// ConfigFileName is the name of the configuration file inside the
	// config directory.
	ConfigFileName = "config.yaml"

	// ConfigDirEnv overrides the configuration directory.
	ConfigDirEnv = "PROMPTER_CONFIG_DIR"
	// StateDirEnv overrides the state directory (logs).
	StateDirEnv = "PROMPTER_STATE_DIR"

	// EnvPrefix prefixes environment overrides of individual keys, e.g.
	// PROMPTER_COMMANDS_TIMEOUT.
	EnvPrefix = "PROMPTER"

	appDir     = "prompter"
	logsSubdir = "logs"
)
