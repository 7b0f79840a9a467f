package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cofi/keychainctl/internal/config"
)

func TestNewRefresher_FlagWinsOverConfig(t *testing.T) {
	t.Parallel()

	opts := &Options{SSHFile: "/from/flag"}
	cfg := &config.Config{SSHFile: "/from/config"}

	r, err := newRefresher(opts, cfg)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", r.SSHFile)
	assert.Empty(t, r.GPGFile)
}

func TestNewRefresher_ConfigWinsOverDefault(t *testing.T) {
	t.Parallel()

	r, err := newRefresher(&Options{}, &config.Config{SSHFile: "/from/config"})
	require.NoError(t, err)
	assert.Equal(t, "/from/config", r.SSHFile)
}

func TestNewRefresher_DefaultPath(t *testing.T) {
	t.Parallel()

	r, err := newRefresher(&Options{}, &config.Config{})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(r.SSHFile, "-sh"), r.SSHFile)
}

func TestNewRefresher_GPGFilePathImpliesGPGMode(t *testing.T) {
	t.Parallel()

	r, err := newRefresher(&Options{GPGFile: "/from/flag-gpg"}, &config.Config{})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag-gpg", r.GPGFile)
}

func TestNewRefresher_GPGToggleUsesDefaultGPGPath(t *testing.T) {
	t.Parallel()

	r, err := newRefresher(&Options{GPG: true}, &config.Config{})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(r.GPGFile, "-sh-gpg"), r.GPGFile)
}

func TestGPGEnabled(t *testing.T) {
	t.Parallel()

	assert.False(t, gpgEnabled(&Options{}, &config.Config{}))
	assert.True(t, gpgEnabled(&Options{GPG: true}, &config.Config{}))
	assert.True(t, gpgEnabled(&Options{}, &config.Config{GPG: true}))
	assert.True(t, gpgEnabled(&Options{GPGFile: "/x"}, &config.Config{}))
	assert.True(t, gpgEnabled(&Options{}, &config.Config{GPGFile: "/x"}))
}
