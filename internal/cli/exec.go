package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cofi/keychainctl/internal/env"
	"github.com/cofi/keychainctl/internal/execenv"
)

// newExecCommand creates the "exec" subcommand that runs a child process with
// the refreshed agent variables injected into its environment.
func newExecCommand(opts *Options) *cobra.Command {
	var (
		inlineVars string
		workDir    string
	)

	cmd := &cobra.Command{
		Use:   "exec -- <command> [args...]",
		Short: "Run a command with the refreshed agent variables",
		Long: "exec refreshes the agent variables and runs the given command with them " +
			"injected into its environment, together with any envFiles from the config " +
			"file and inline --set variables. The child's exit code is preserved.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := LoggerFromContext(cmd.Context())

			var ee execEnv
			if err := parseEnv(&ee); err != nil {
				return err
			}
			if inlineVars == "" {
				inlineVars = ee.Vars
			}
			if workDir == "" {
				workDir = ee.WorkDir
			}

			userVars, err := env.ParseInlineVars(inlineVars)
			if err != nil {
				return err
			}

			fileVars, err := env.LoadEnvFiles(opts.cfg.Dir, opts.cfg.EnvFiles)
			if err != nil {
				return err
			}

			r, err := newRefresher(opts, opts.cfg)
			if err != nil {
				return err
			}
			res, err := r.Refresh()
			if err != nil {
				return err
			}

			vars := env.Merge(fileVars, env.Vars(res.Vars()), userVars)

			code, err := execenv.Run(cmd.Context(), logger, execenv.Options{
				Argv: args,
				Vars: vars,
				Dir:  workDir,
			})
			if err != nil {
				return err
			}
			if code != 0 {
				logger.Debug("command exited nonzero", "code", code)
				os.Exit(code)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inlineVars, "set", "", "Additional variables in k=v,k2=v2 format")
	cmd.Flags().StringVar(&workDir, "workdir", "", "Working directory for the command")

	return cmd
}
