// Package keychain reads the per-host files written by the keychain agent
// manager and injects the agent connection variables into an environment.
package keychain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvAuthSock is the SSH agent socket variable name.
	EnvAuthSock = "SSH_AUTH_SOCK"
	// EnvAgentPID is the SSH agent process id variable name.
	EnvAgentPID = "SSH_AGENT_PID"
	// EnvAgentInfo is the GPG agent connection string variable name.
	EnvAgentInfo = "GPG_AGENT_INFO"
)

// Setter receives extracted variables. The process environment is the usual
// sink; tests and read-only commands substitute an in-memory map.
type Setter interface {
	Set(name, value string) error
}

// OSEnv is a Setter backed by the process environment.
type OSEnv struct{}

// Set writes the variable into the process environment.
func (OSEnv) Set(name, value string) error {
	return os.Setenv(name, value)
}

// MapEnv is an in-memory Setter used for tests and side-effect-free inspection.
type MapEnv map[string]string

// Set stores the variable in the map.
func (m MapEnv) Set(name, value string) error {
	m[name] = value
	return nil
}

// Refresher reads keychain files and pushes the extracted variables into a Setter.
type Refresher struct {
	// SSHFile is the path of the keychain SSH file.
	SSHFile string
	// GPGFile is the path of the keychain GPG file; empty disables GPG mode.
	GPGFile string
	// Env receives the extracted variables; nil means the process environment.
	Env Setter
}

// Result holds the variable values extracted by a single refresh, in the order
// socket, pid, agent info.
type Result struct {
	// AuthSock is the SSH agent socket path, empty when absent from the file.
	AuthSock string
	// AgentPID is the SSH agent process id, empty when absent from the file.
	AgentPID string
	// AgentInfo is the GPG agent connection string, empty when absent.
	AgentInfo string
	// GPG reports whether a GPG file was read.
	GPG bool
}

// Vars returns the refreshed variables as a name-to-value map. The GPG entry
// is included only when GPG mode was active.
func (r Result) Vars() map[string]string {
	vars := map[string]string{
		EnvAuthSock: r.AuthSock,
		EnvAgentPID: r.AgentPID,
	}
	if r.GPG {
		vars[EnvAgentInfo] = r.AgentInfo
	}
	return vars
}

// HostKey returns the local hostname truncated at the first dot. Keychain
// names its per-host files after this short form.
func HostKey() (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("look up hostname: %w", err)
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	return name, nil
}

// DefaultSSHFile returns <home>/.keychain/<host>-sh.
func DefaultSSHFile() (string, error) {
	return defaultFile("-sh")
}

// DefaultGPGFile returns <home>/.keychain/<host>-sh-gpg.
func DefaultGPGFile() (string, error) {
	return defaultFile("-sh-gpg")
}

func defaultFile(suffix string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("look up home directory: %w", err)
	}
	host, err := HostKey()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".keychain", host+suffix), nil
}

// New returns a Refresher for the default per-host file paths, with the GPG
// file configured when gpg is true. The sink defaults to the process
// environment.
func New(gpg bool) (*Refresher, error) {
	sshFile, err := DefaultSSHFile()
	if err != nil {
		return nil, err
	}
	r := &Refresher{SSHFile: sshFile}
	if gpg {
		gpgFile, err := DefaultGPGFile()
		if err != nil {
			return nil, err
		}
		r.GPGFile = gpgFile
	}
	return r, nil
}

// Refresh reads the configured files, extracts the agent variables and writes
// them into the environment sink. All files are read before anything is
// written, so a failed read leaves the environment untouched. A variable
// missing from its file is written as an empty value rather than skipped, so
// stale values never survive a refresh.
func (r *Refresher) Refresh() (Result, error) {
	env := r.Env
	if env == nil {
		env = OSEnv{}
	}

	sshText, err := os.ReadFile(r.SSHFile)
	if err != nil {
		return Result{}, fmt.Errorf("read keychain file %q: %w", r.SSHFile, err)
	}

	res := Result{
		AuthSock: extract(string(sshText), EnvAuthSock, nil),
		AgentPID: extract(string(sshText), EnvAgentPID, digits),
	}

	if r.GPGFile != "" {
		gpgText, err := os.ReadFile(r.GPGFile)
		if err != nil {
			return Result{}, fmt.Errorf("read keychain file %q: %w", r.GPGFile, err)
		}
		res.GPG = true
		res.AgentInfo = extract(string(gpgText), EnvAgentInfo, nil)
	}

	if err := env.Set(EnvAuthSock, res.AuthSock); err != nil {
		return Result{}, fmt.Errorf("set %s: %w", EnvAuthSock, err)
	}
	if err := env.Set(EnvAgentPID, res.AgentPID); err != nil {
		return Result{}, fmt.Errorf("set %s: %w", EnvAgentPID, err)
	}
	if res.GPG {
		if err := env.Set(EnvAgentInfo, res.AgentInfo); err != nil {
			return Result{}, fmt.Errorf("set %s: %w", EnvAgentInfo, err)
		}
	}

	return res, nil
}
