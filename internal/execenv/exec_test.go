package execenv

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cofi/keychainctl/internal/env"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEnviron_InjectedVarsOverrideProcessEnv(t *testing.T) {
	t.Setenv("EXECENV_TEST_VAR", "from-os")

	environ := Environ(env.Vars{"EXECENV_TEST_VAR": "injected", "EXECENV_EXTRA": "x"})

	assert.Contains(t, environ, "EXECENV_TEST_VAR=injected")
	assert.Contains(t, environ, "EXECENV_EXTRA=x")
	assert.NotContains(t, environ, "EXECENV_TEST_VAR=from-os")
	assert.True(t, sort.StringsAreSorted(environ))
}

func TestRun_NoCommand(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), discardLogger(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestRun_CommandNotFound(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), discardLogger(), Options{
		Argv: []string{"keychainctl-no-such-binary"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in PATH")
}

func TestRun_PreservesExitCode(t *testing.T) {
	t.Parallel()

	code, err := Run(context.Background(), discardLogger(), Options{
		Argv: []string{"sh", "-c", "exit 3"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	code, err := Run(context.Background(), discardLogger(), Options{
		Argv: []string{"sh", "-c", "true"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestRun_ChildSeesInjectedVar(t *testing.T) {
	t.Parallel()

	code, err := Run(context.Background(), discardLogger(), Options{
		Argv: []string{"sh", "-c", `test "$EXECENV_CHILD_VAR" = "ok"`},
		Vars: env.Vars{"EXECENV_CHILD_VAR": "ok"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}
