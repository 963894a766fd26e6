package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("storage", "", "")
	fs.String("file", "", "")
	fs.String("on-error", "", "")
	fs.String("log-level", "", "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Backend)
	assert.Equal(t, "contacts.json", cfg.Path)
	assert.Equal(t, OnErrorContinue, cfg.OnError)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadConfigFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	yaml := "storage:\n  backend: sqlite\non_error: abort\nlog:\n  format: json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(yaml), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, "contacts.db", cfg.Path, "default path follows backend")
	assert.Equal(t, OnErrorAbort, cfg.OnError)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadIgnoresDataFilesInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	saved := "- 'name: Ann, phone: 12345, birthday: 2000-01-01'\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "contacts.json"),
		[]byte("[\n    \"name: Ann, phone: 12345, birthday: 2000-01-01\"\n]\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "contacts.yaml"), []byte(saved), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Backend)
	assert.Equal(t, "contacts.json", cfg.Path)
}

func TestLoadExplicitConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: yaml\n  path: /tmp/book.yaml\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Backend)
	assert.Equal(t, "/tmp/book.yaml", cfg.Path)
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFile),
		[]byte("storage:\n  backend: yaml\n  path: from-file.yaml\n"), 0o644))
	t.Setenv("CONTACTS_STORAGE_PATH", "from-env.yaml")
	t.Setenv("CONTACTS_ON_ERROR", "abort")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--file", "from-flag.yaml"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Backend, "file value kept when nothing overrides it")
	assert.Equal(t, "from-flag.yaml", cfg.Path, "flag beats env and file")
	assert.Equal(t, OnErrorAbort, cfg.OnError, "env beats default")
}

func TestLoadUnchangedFlagsDoNotOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONTACTS_STORAGE_BACKEND", "sqlite")

	cfg, err := Load("", newFlags())
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Backend)
}

func TestValidate(t *testing.T) {
	valid := Config{Backend: "json", OnError: OnErrorContinue, LogFormat: "console"}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Backend = "csv"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.OnError = "ignore"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.LogFormat = "xml"
	assert.Error(t, bad.Validate())
}

func TestLoadRejectsInvalidBackend(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONTACTS_STORAGE_BACKEND", "csv")

	_, err := Load("", nil)
	assert.ErrorContains(t, err, "invalid storage backend")
}
