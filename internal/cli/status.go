package cli

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/agent"

	"github.com/cofi/keychainctl/internal/keychain"
)

// newStatusCommand creates the "status" subcommand that reports on the agent
// reachable through the keychain files.
func newStatusCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the agent recorded in the keychain files and its loaded keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := LoggerFromContext(cmd.Context())

			r, err := newRefresher(opts, opts.cfg)
			if err != nil {
				return err
			}
			// Inspect without touching the process environment.
			r.Env = keychain.MapEnv{}

			res, err := r.Refresh()
			if err != nil {
				return err
			}

			if res.AuthSock == "" {
				return fmt.Errorf("no SSH_AUTH_SOCK recorded in %q", r.SSHFile)
			}

			conn, err := net.Dial("unix", res.AuthSock)
			if err != nil {
				return fmt.Errorf("connect to agent socket %q: %w", res.AuthSock, err)
			}
			defer func() { _ = conn.Close() }()

			keys, err := agent.NewClient(conn).List()
			if err != nil {
				return fmt.Errorf("list agent keys: %w", err)
			}

			logger.Info("agent reachable", "socket", res.AuthSock, "pid", res.AgentPID, "keys", len(keys))
			for _, key := range keys {
				logger.Info("agent key", "type", key.Type(), "comment", key.Comment)
			}
			if res.GPG {
				logger.Info("gpg agent recorded", "GPG_AGENT_INFO", res.AgentInfo)
			}
			return nil
		},
	}
}
