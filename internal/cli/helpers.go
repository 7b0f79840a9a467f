package cli

import (
	"github.com/cofi/keychainctl/internal/config"
	"github.com/cofi/keychainctl/internal/keychain"
)

// loadConfig resolves the config file for the current invocation. An explicit
// path must exist; the default location may be absent.
func loadConfig(opts *Options) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	return config.LoadOptional(path)
}

// gpgEnabled reports whether the invocation should read the GPG file. Any of
// the toggle or an explicit GPG file path turns it on.
func gpgEnabled(opts *Options, cfg *config.Config) bool {
	return opts.GPG || cfg.GPG || opts.GPGFile != "" || cfg.GPGFile != ""
}

// newRefresher builds a keychain.Refresher for the invocation. Flag and env
// values (already merged into opts) win over the config file, which wins over
// the per-host keychain defaults.
func newRefresher(opts *Options, cfg *config.Config) (*keychain.Refresher, error) {
	sshFile := opts.SSHFile
	if sshFile == "" {
		sshFile = cfg.SSHFile
	}
	if sshFile == "" {
		var err error
		sshFile, err = keychain.DefaultSSHFile()
		if err != nil {
			return nil, err
		}
	}

	r := &keychain.Refresher{SSHFile: sshFile}

	if gpgEnabled(opts, cfg) {
		gpgFile := opts.GPGFile
		if gpgFile == "" {
			gpgFile = cfg.GPGFile
		}
		if gpgFile == "" {
			var err error
			gpgFile, err = keychain.DefaultGPGFile()
			if err != nil {
				return nil, err
			}
		}
		r.GPGFile = gpgFile
	}

	return r, nil
}
