package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("pagekeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pagekeeper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, rest, err := Load(newFlagSet(), []string{"status"}, envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, []string{"status"}, rest)
	assert.Equal(t, "sms", cfg.Namespace)
	assert.Equal(t, "sms-content-sync", cfg.Bus.Channel)
	assert.Equal(t, "main", cfg.Site.Branch)
	assert.Equal(t, "https://api.github.com", cfg.Site.APIURL)
	assert.Equal(t, "CMS Auto-Commit", cfg.Site.CommitterName)
	assert.Equal(t, 500*time.Millisecond, cfg.Store.PollInterval)
	assert.False(t, cfg.HasPublisherRepo())
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, `
site:
  owner: file-owner
  repo: site
  branch: gh-pages
namespace: fromfile
bus:
  channel: file-channel
store:
  poll_interval: 2s
`)

	env := envFrom(map[string]string{
		"PAGEKEEPER_CONFIG":    path,
		"PAGEKEEPER_BRANCH":    "env-branch",
		"PAGEKEEPER_NAMESPACE": "fromenv",
		"PAGEKEEPER_RELAY_KEY": "secret",
	})

	cfg, rest, err := Load(newFlagSet(), []string{"--namespace", "fromflag", "edit", "index"}, env)
	require.NoError(t, err)

	assert.Equal(t, []string{"edit", "index"}, rest)
	// файл
	assert.Equal(t, "file-owner", cfg.Site.Owner)
	assert.Equal(t, "file-channel", cfg.Bus.Channel)
	assert.Equal(t, 2*time.Second, cfg.Store.PollInterval)
	// окружение поверх файла
	assert.Equal(t, "env-branch", cfg.Site.Branch)
	assert.Equal(t, "secret", cfg.Bus.Key)
	// флаг поверх окружения
	assert.Equal(t, "fromflag", cfg.Namespace)
	assert.True(t, cfg.HasPublisherRepo())
}

func TestLoad_ConfigFlagOverridesEnv(t *testing.T) {
	fromFlag := writeConfig(t, "site:\n  owner: flag-file\n")
	fromEnv := writeConfig(t, "site:\n  owner: env-file\n")

	cfg, _, err := Load(newFlagSet(), []string{"--config", fromFlag},
		envFrom(map[string]string{"PAGEKEEPER_CONFIG": fromEnv}))
	require.NoError(t, err)
	assert.Equal(t, "flag-file", cfg.Site.Owner)
}

func TestLoad_SecretsNotReadFromFile(t *testing.T) {
	path := writeConfig(t, "passphrase: leaked\nidentity:\n  secret: leaked\n")

	cfg, _, err := Load(newFlagSet(), []string{"--config", path}, envFrom(nil))
	require.NoError(t, err)
	assert.Empty(t, cfg.Passphrase)
	assert.Empty(t, cfg.Identity.Secret)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "missing file", args: []string{"--config", "/nonexistent/pagekeeper.yaml"}},
		{name: "bad poll interval env", env: map[string]string{"PAGEKEEPER_STORE_POLL_INTERVAL": "soon"}},
		{name: "negative poll interval", args: []string{"--poll-interval", "-1s"}},
		{name: "invalid namespace", args: []string{"--namespace", "../x"}},
		{name: "empty cache", args: []string{"--cache", ""}},
		{name: "unknown flag", args: []string{"--bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(newFlagSet(), tt.args, envFrom(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "site: [not, a, map")

	_, _, err := Load(newFlagSet(), []string{"--config", path}, envFrom(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestStoreConfig_IsPostgres(t *testing.T) {
	assert.True(t, StoreConfig{DSN: "postgres://localhost/pk"}.IsPostgres())
	assert.True(t, StoreConfig{DSN: "postgresql://localhost/pk"}.IsPostgres())
	assert.False(t, StoreConfig{DSN: "pages.db"}.IsPostgres())
	assert.False(t, StoreConfig{}.IsPostgres())
}

func TestConfig_PublisherConfig(t *testing.T) {
	cfg := Default()
	cfg.Site.Owner = "owner"
	cfg.Site.Repo = "site"
	cfg.Site.Dir = "public"
	cfg.Site.CommitterEmail = "cms@example.com"

	pc := cfg.PublisherConfig()
	assert.Equal(t, "owner", pc.Owner)
	assert.Equal(t, "site", pc.Repo)
	assert.Equal(t, "main", pc.Branch)
	assert.Equal(t, "public", pc.Dir)
	assert.Equal(t, "cms@example.com", pc.CommitterEmail)
}
