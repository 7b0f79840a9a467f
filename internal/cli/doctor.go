package cli

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cofi/keychainctl/internal/keychain"
	"github.com/cofi/keychainctl/internal/logging"
)

// newDoctorCommand creates the "doctor" subcommand that runs keychain preflight checks.
func newDoctorCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run keychain environment preflight checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			r, err := newRefresher(opts, opts.cfg)
			if err != nil {
				return err
			}

			if err := runDoctorChecks(ctx, logger, r); err != nil {
				return err
			}

			logger.Info("doctor checks completed successfully")
			return nil
		},
	}
}

// runKeychainVersion runs `keychain --version`, forwarding its output to the logger.
func runKeychainVersion(ctx context.Context, logger *slog.Logger) error {
	if _, err := exec.LookPath("keychain"); err != nil {
		return fmt.Errorf("keychain binary not found in PATH: %w", err)
	}
	cmd := exec.CommandContext(ctx, "keychain", "--version")
	w := logging.NewWriter(logger, logging.LevelDebug)
	cmd.Stdout = w
	cmd.Stderr = w
	return cmd.Run()
}

// checkSocket verifies that path exists and is a unix socket.
func checkSocket(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat agent socket: %w", err)
	}
	if info.Mode()&fs.ModeSocket == 0 {
		return fmt.Errorf("%q is not a socket", path)
	}
	return nil
}

func runDoctorChecks(ctx context.Context, logger *slog.Logger, r *keychain.Refresher) error {
	var fatalErrs []error

	if err := runKeychainVersion(ctx, logger); err != nil {
		logger.Warn("keychain binary check failed", "error", err)
	} else {
		logger.Info("keychain binary check ok")
	}

	dir := filepath.Dir(r.SSHFile)
	if _, err := os.Stat(dir); err != nil {
		logger.Error("keychain directory missing", "dir", dir, "error", err)
		fatalErrs = append(fatalErrs, err)
	} else {
		logger.Info("keychain directory present", "dir", dir)
	}

	// Read through an in-memory sink so doctor never mutates the environment.
	r.Env = keychain.MapEnv{}
	res, err := r.Refresh()
	if err != nil {
		logger.Error("keychain file check failed", "error", err)
		fatalErrs = append(fatalErrs, err)
	} else {
		logger.Info("keychain files readable", "ssh_file", r.SSHFile, "gpg", res.GPG)

		if res.AuthSock == "" {
			err := fmt.Errorf("no SSH_AUTH_SOCK assignment in %q", r.SSHFile)
			logger.Error("agent socket missing from keychain file", "error", err)
			fatalErrs = append(fatalErrs, err)
		} else if err := checkSocket(res.AuthSock); err != nil {
			logger.Error("agent socket check failed", "socket", res.AuthSock, "error", err)
			fatalErrs = append(fatalErrs, err)
		} else {
			logger.Info("agent socket check ok", "socket", res.AuthSock)
		}

		if res.AgentPID == "" {
			logger.Warn("no SSH_AGENT_PID assignment in keychain file", "file", r.SSHFile)
		}
		if res.GPG && res.AgentInfo == "" {
			logger.Warn("no GPG_AGENT_INFO assignment in keychain file", "file", r.GPGFile)
		}
	}

	if len(fatalErrs) > 0 {
		return fmt.Errorf("doctor found %d fatal issue(s); see log for details", len(fatalErrs))
	}

	return nil
}
