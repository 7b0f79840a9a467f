package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cofi/keychainctl/internal/keychain"
)

// newExportCommand creates the "export" subcommand that prints eval-able
// shell export lines for the refreshed agent variables.
func newExportCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print shell export lines for the refreshed agent variables",
		Long: "export refreshes the agent variables and prints them as POSIX shell " +
			"export lines, so a shell can pick them up with eval \"$(keychainctl export)\".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := newRefresher(opts, opts.cfg)
			if err != nil {
				return err
			}

			res, err := r.Refresh()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printExport(out, keychain.EnvAuthSock, res.AuthSock)
			printExport(out, keychain.EnvAgentPID, res.AgentPID)
			if res.GPG {
				printExport(out, keychain.EnvAgentInfo, res.AgentInfo)
			}
			return nil
		},
	}
}

// printExport writes one keychain-style export line.
func printExport(w io.Writer, name, value string) {
	fmt.Fprintf(w, "%s=%s; export %s;\n", name, shellQuote(value), name)
}

// shellQuote single-quotes a value for POSIX shells, escaping embedded quotes.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
