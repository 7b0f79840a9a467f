package cli

import (
	"github.com/spf13/cobra"
)

// newRefreshCommand creates the "refresh" subcommand that re-reads the
// keychain files and writes the agent variables into the process environment.
func newRefreshCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-read the keychain files and refresh the agent variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			r, err := newRefresher(opts, opts.cfg)
			if err != nil {
				return err
			}

			res, err := r.Refresh()
			if err != nil {
				return err
			}

			attrs := []any{
				"SSH_AUTH_SOCK", res.AuthSock,
				"SSH_AGENT_PID", res.AgentPID,
			}
			if res.GPG {
				attrs = append(attrs, "GPG_AGENT_INFO", res.AgentInfo)
			}
			logger.Info("environment refreshed", attrs...)
			return nil
		},
	}
}
