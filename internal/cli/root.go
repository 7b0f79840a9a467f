// Package cli defines the command-line interface for keychainctl.
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cofi/keychainctl/internal/config"
	"github.com/cofi/keychainctl/internal/logging"
)

// Options stores global CLI options shared between commands.
type Options struct {
	ConfigPath string
	SSHFile    string
	GPGFile    string
	GPG        bool
	LogLevel   logging.Level

	// cfg is the config file loaded in the root pre-run, shared by commands.
	cfg *config.Config
}

// Execute builds the root command, runs it with the provided args and logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewLogger(os.Stderr, logging.LevelInfo)
	}

	var be baseEnv
	if err := parseEnv(&be); err != nil {
		return err
	}

	rootOpts := &Options{
		ConfigPath: be.ConfigPath,
		SSHFile:    be.SSHFile,
		GPGFile:    be.GPGFile,
		GPG:        be.GPG,
		LogLevel:   logging.LevelInfo,
	}

	rootCmd := newRootCommand(rootOpts, logger, be.LogLevel)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command with global flags and subcommands.
// envLogLevel carries a KEYCHAINCTL_LOG_LEVEL default for the --log-level flag.
func newRootCommand(opts *Options, logger *slog.Logger, envLogLevel string) *cobra.Command {
	envLevelSet := envLogLevel != ""
	if !envLevelSet {
		envLogLevel = "info"
	}

	cmd := &cobra.Command{
		Use:   "keychainctl",
		Short: "keychainctl injects keychain agent variables into the environment",
		Long: "keychainctl reads the per-host files written by the keychain agent manager " +
			"and injects SSH_AUTH_SOCK, SSH_AGENT_PID and (optionally) GPG_AGENT_INFO " +
			"into the process environment, a child process, or shell export lines.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			levelText := cmd.Flag("log-level").Value.String()
			if !cmd.Flag("log-level").Changed && !envLevelSet && cfg.LogLevel != "" {
				levelText = cfg.LogLevel
			}
			level := logging.ParseLevel(levelText)
			opts.LogLevel = level
			logger = logging.NewLogger(os.Stderr, level)
			cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
			logger.Debug("logger initialized", "level", level, "config", opts.ConfigPath)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", opts.ConfigPath, "Path to config.yaml (default: user config dir)")
	cmd.PersistentFlags().StringVar(&opts.SSHFile, "ssh-file", opts.SSHFile, "Keychain SSH file (default: ~/.keychain/<host>-sh)")
	cmd.PersistentFlags().StringVar(&opts.GPGFile, "gpg-file", opts.GPGFile, "Keychain GPG file (default: ~/.keychain/<host>-sh-gpg)")
	cmd.PersistentFlags().BoolVar(&opts.GPG, "gpg", opts.GPG, "Also read the GPG file and set GPG_AGENT_INFO")
	cmd.PersistentFlags().String("log-level", envLogLevel, "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		newRefreshCommand(opts),
		newExportCommand(opts),
		newExecCommand(opts),
		newStatusCommand(opts),
		newDoctorCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.NewLogger(os.Stderr, logging.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.NewLogger(os.Stderr, logging.LevelInfo)
}
