// Package config собирает настройки клиента из четырех источников с
// возрастающим приоритетом: значения по умолчанию, YAML файл, переменные
// окружения PAGEKEEPER_* и флаги командной строки.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iudanet/pagekeeper/internal/client/publisher"
	"github.com/iudanet/pagekeeper/internal/client/storage"
	"github.com/iudanet/pagekeeper/internal/validation"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "PAGEKEEPER_"

// Config is the client configuration.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Identity IdentityConfig `yaml:"identity"`
	Bus      BusConfig      `yaml:"bus"`
	Store    StoreConfig    `yaml:"store"`

	// CachePath файл локального кэша (bbolt)
	CachePath string `yaml:"cache_path"`
	// Namespace префикс ключей кэша
	Namespace string `yaml:"namespace"`
	// Passphrase запечатывает токен публикации; пустая строка - хранение как есть
	Passphrase string `yaml:"-"`
	LogLevel   string `yaml:"log_level"`
}

// SiteConfig describes the repository the pages are published to.
type SiteConfig struct {
	APIURL         string `yaml:"api_url"`
	Owner          string `yaml:"owner"`
	Repo           string `yaml:"repo"`
	Branch         string `yaml:"branch"`
	Dir            string `yaml:"dir"`
	CommitterName  string `yaml:"committer_name"`
	CommitterEmail string `yaml:"committer_email"`
}

// IdentityConfig verifies identity tokens issued by the sign-in provider.
type IdentityConfig struct {
	Secret string `yaml:"-"`
	Issuer string `yaml:"issuer"`
}

// BusConfig selects the broadcast relay.
type BusConfig struct {
	RelayURL string `yaml:"relay_url"`
	Key      string `yaml:"-"`
	Channel  string `yaml:"channel"`
}

// StoreConfig selects the document store. DSN вида postgres://... выбирает
// PostgreSQL, любое другое значение считается путем к файлу SQLite.
type StoreConfig struct {
	DSN          string        `yaml:"dsn"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// Default returns the configuration with every default applied
func Default() *Config {
	return &Config{
		Site: SiteConfig{
			APIURL:        publisher.DefaultAPIURL,
			Branch:        "main",
			CommitterName: publisher.DefaultCommitterName,
		},
		Identity: IdentityConfig{
			Issuer: "pagekeeper",
		},
		Bus: BusConfig{
			Channel: "sms-content-sync",
		},
		Store: StoreConfig{
			PollInterval: 500 * time.Millisecond,
		},
		CachePath: "pagekeeper-cache.db",
		Namespace: storage.DefaultNamespace,
		LogLevel:  "info",
	}
}

// LoadFile merges a YAML file into cfg. Отсутствующие в файле ключи не меняются.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings from PAGEKEEPER_* variables.
// lookup обычно os.LookupEnv; в тестах подменяется.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	for name, target := range c.stringVars() {
		if value, ok := lookup(EnvPrefix + envName(name)); ok {
			*target = value
		}
	}

	if value, ok := lookup(EnvPrefix + "STORE_POLL_INTERVAL"); ok {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("%sSTORE_POLL_INTERVAL: %w", EnvPrefix, err)
		}
		c.Store.PollInterval = d
	}
	return nil
}

// stringVars связывает имя флага с полем конфигурации
func (c *Config) stringVars() map[string]*string {
	return map[string]*string{
		"api-url":         &c.Site.APIURL,
		"owner":           &c.Site.Owner,
		"repo":            &c.Site.Repo,
		"branch":          &c.Site.Branch,
		"dir":             &c.Site.Dir,
		"committer-name":  &c.Site.CommitterName,
		"committer-email": &c.Site.CommitterEmail,
		"identity-secret": &c.Identity.Secret,
		"identity-issuer": &c.Identity.Issuer,
		"relay":           &c.Bus.RelayURL,
		"relay-key":       &c.Bus.Key,
		"channel":         &c.Bus.Channel,
		"store":           &c.Store.DSN,
		"cache":           &c.CachePath,
		"namespace":       &c.Namespace,
		"passphrase":      &c.Passphrase,
		"log-level":       &c.LogLevel,
	}
}

// envName переводит имя флага в суффикс переменной окружения: relay-key -> RELAY_KEY
func envName(flagName string) string {
	return strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

var flagUsage = map[string]string{
	"api-url":         "Repository API base URL",
	"owner":           "Repository owner",
	"repo":            "Repository name",
	"branch":          "Branch to commit to",
	"dir":             "Directory of the pages inside the repository",
	"committer-name":  "Committer name for automatic commits",
	"committer-email": "Committer email for automatic commits",
	"identity-secret": "Secret that signs identity tokens",
	"identity-issuer": "Expected identity token issuer",
	"relay":           "Broadcast relay URL (empty: no bus)",
	"relay-key":       "Broadcast relay key",
	"channel":         "Broadcast channel name",
	"store":           "Document store: postgres:// URL or SQLite file (empty: none)",
	"cache":           "Path to the local cache file",
	"namespace":       "Local cache key namespace",
	"passphrase":      "Passphrase sealing the publisher token (prefer the env var)",
	"log-level":       "Log level: debug, info, warn, error",
}

// Load builds the configuration from args and the environment.
// Возвращает оставшиеся аргументы (команду и ее параметры).
func Load(fs *flag.FlagSet, args []string, lookup func(string) (string, bool)) (*Config, []string, error) {
	cfg := Default()

	configPath := fs.String("config", "", "Path to YAML config file")
	// флаги пишут во временные значения: порядок слоев применяется после разбора
	values := make(map[string]*string, len(flagUsage))
	for name, usage := range flagUsage {
		values[name] = fs.String(name, "", usage)
	}
	pollInterval := fs.Duration("poll-interval", 0, "SQLite document store poll interval")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	path := *configPath
	if path == "" {
		path, _ = lookup(EnvPrefix + "CONFIG")
	}
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, nil, err
		}
	}

	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, nil, err
	}

	targets := cfg.stringVars()
	fs.Visit(func(f *flag.Flag) {
		if target, ok := targets[f.Name]; ok {
			*target = *values[f.Name]
		}
		if f.Name == "poll-interval" {
			cfg.Store.PollInterval = *pollInterval
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, fs.Args(), nil
}

// Validate checks the settings that every command relies on
func (c *Config) Validate() error {
	var errs []error
	if c.CachePath == "" {
		errs = append(errs, errors.New("cache path is required"))
	}
	if err := validation.ValidatePageID(c.Namespace); err != nil {
		errs = append(errs, fmt.Errorf("namespace: %w", err))
	}
	if c.Bus.RelayURL != "" && c.Bus.Channel == "" {
		errs = append(errs, errors.New("channel is required when a relay is configured"))
	}
	if c.Store.PollInterval <= 0 {
		errs = append(errs, errors.New("poll interval must be positive"))
	}
	return errors.Join(errs...)
}

// HasPublisherRepo reports whether the repository coordinates are configured
func (c *Config) HasPublisherRepo() bool {
	return c.Site.Owner != "" && c.Site.Repo != ""
}

// PublisherConfig returns the publisher client settings
func (c *Config) PublisherConfig() publisher.Config {
	return publisher.Config{
		APIURL:         c.Site.APIURL,
		Owner:          c.Site.Owner,
		Repo:           c.Site.Repo,
		Branch:         c.Site.Branch,
		Dir:            c.Site.Dir,
		CommitterName:  c.Site.CommitterName,
		CommitterEmail: c.Site.CommitterEmail,
	}
}

// IsPostgres reports whether the store DSN points to PostgreSQL
func (s StoreConfig) IsPostgres() bool {
	return strings.HasPrefix(s.DSN, "postgres://") || strings.HasPrefix(s.DSN, "postgresql://")
}
