package cli

import (
	envparse "github.com/caarlos0/env/v11"
)

// baseEnv defines root CLI defaults sourced from KEYCHAINCTL_* env vars.
type baseEnv struct {
	// ConfigPath is the config file path from KEYCHAINCTL_CONFIG.
	ConfigPath string `env:"KEYCHAINCTL_CONFIG"`
	// SSHFile is the keychain SSH file path from KEYCHAINCTL_SSH_FILE.
	SSHFile string `env:"KEYCHAINCTL_SSH_FILE"`
	// GPGFile is the keychain GPG file path from KEYCHAINCTL_GPG_FILE.
	GPGFile string `env:"KEYCHAINCTL_GPG_FILE"`
	// GPG toggles GPG mode from KEYCHAINCTL_GPG.
	GPG bool `env:"KEYCHAINCTL_GPG"`
	// LogLevel is the logging level from KEYCHAINCTL_LOG_LEVEL.
	LogLevel string `env:"KEYCHAINCTL_LOG_LEVEL"`
}

// execEnv captures KEYCHAINCTL_* inputs for the exec command.
type execEnv struct {
	// Vars is a k=v,k2=v2 list from KEYCHAINCTL_VARS.
	Vars string `env:"KEYCHAINCTL_VARS"`
	// WorkDir is the child working directory from KEYCHAINCTL_WORKDIR.
	WorkDir string `env:"KEYCHAINCTL_WORKDIR"`
}

// parseEnv fills target from KEYCHAINCTL_* env vars via caarlos0/env.
func parseEnv(target interface{}) error {
	return envparse.Parse(target)
}
