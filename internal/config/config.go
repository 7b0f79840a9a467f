// Package config contains the loader and typed model for the keychainctl
// configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config describes the optional keychainctl configuration file. All fields are
// optional; unset fields fall back to environment variables, flags, or the
// per-host keychain defaults.
type Config struct {
	// SSHFile overrides the keychain SSH file path.
	SSHFile string `yaml:"sshFile,omitempty"`
	// GPGFile overrides the keychain GPG file path.
	GPGFile string `yaml:"gpgFile,omitempty"`
	// GPG toggles reading the GPG file alongside the SSH file.
	GPG bool `yaml:"gpg,omitempty"`
	// LogLevel sets the default log level (debug, info, warn, error).
	LogLevel string `yaml:"logLevel,omitempty"`
	// EnvFiles lists extra .env files merged into the child environment of
	// "exec". Relative paths are resolved against the config file directory.
	EnvFiles []string `yaml:"envFiles,omitempty"`

	// Dir is the directory containing the loaded file, used to resolve
	// relative EnvFiles entries. Not part of the file itself.
	Dir string `yaml:"-"`
}

// DefaultPath returns <user-config-dir>/keychainctl/config.yaml.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("look up user config dir: %w", err)
	}
	return filepath.Join(base, "keychainctl", "config.yaml"), nil
}

// Load reads and parses the YAML config at path.
func Load(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	rawBytes, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", absPath, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(rawBytes, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", absPath, err)
	}

	cfg.Dir = filepath.Dir(absPath)
	return &cfg, nil
}

// LoadOptional loads the config at path when it exists. A missing file yields
// an empty config, so the default location never has to exist; any other
// error is reported.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}
