package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `sshFile: /custom/ssh-file
gpgFile: /custom/gpg-file
gpg: true
logLevel: debug
envFiles:
  - extra.env
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/custom/ssh-file", cfg.SSHFile)
	assert.Equal(t, "/custom/gpg-file", cfg.GPGFile)
	assert.True(t, cfg.GPG)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"extra.env"}, cfg.EnvFiles)
	assert.Equal(t, dir, cfg.Dir)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sshFile: [broken\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadOptional_MissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadOptional_ExistingFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gpg: true\n"), 0o644))

	cfg, err := LoadOptional(path)
	require.NoError(t, err)
	assert.True(t, cfg.GPG)
}

func TestDefaultPath(t *testing.T) {
	t.Parallel()

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join("keychainctl", "config.yaml")), path)
}
