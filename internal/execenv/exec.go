// Package execenv runs child processes with an injected environment.
package execenv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/cofi/keychainctl/internal/env"
)

// Options configures a single child process run.
type Options struct {
	// Argv is the command and its arguments.
	Argv []string
	// Vars are variables layered over the current process environment.
	Vars env.Vars
	// Dir is an optional working directory for the command.
	Dir string
}

// Environ merges vars over the current process environment into a sorted
// slice suitable for exec.Cmd.Env.
func Environ(vars env.Vars) []string {
	merged := env.Merge(env.FromOS(), vars)
	out := make([]string, 0, len(merged))
	for k, v := range merged {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

// Run executes the command with the merged environment, wiring the child to
// this process's stdio, and returns the child's exit code. A command that
// could not be started at all is reported as an error instead.
func Run(ctx context.Context, logger *slog.Logger, opts Options) (int, error) {
	if len(opts.Argv) == 0 {
		return 0, fmt.Errorf("no command specified")
	}

	name := opts.Argv[0]
	if _, err := exec.LookPath(name); err != nil {
		return 0, fmt.Errorf("command %q not found in PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, name, opts.Argv[1:]...)
	cmd.Env = Environ(opts.Vars)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	logger.Debug("running command", "argv", strings.Join(opts.Argv, " "), "vars", len(opts.Vars))

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 0, fmt.Errorf("run %q: %w", name, err)
	}
	return 0, nil
}
