// Package cli реализует команды клиента pagekeeper.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/iudanet/pagekeeper/internal/client/auth"
	"github.com/iudanet/pagekeeper/internal/client/iocli"
	"github.com/iudanet/pagekeeper/internal/client/storage"
	"github.com/iudanet/pagekeeper/internal/config"
)

// Secrets describes where a secret value may come from besides the environment
type Secrets struct {
	FromFile string
	FromArgs string
}

type Cli struct {
	io          iocli.IO
	cfg         *config.Config
	logger      *slog.Logger
	cache       storage.ContentCache
	authService auth.Service
	backends    Backends
	lookupEnv   func(string) (string, bool)
}

func New(io iocli.IO, cfg *config.Config, logger *slog.Logger, cache storage.ContentCache, authService auth.Service, backends Backends) *Cli {
	return &Cli{
		io:          io,
		cfg:         cfg,
		logger:      logger,
		cache:       cache,
		authService: authService,
		backends:    backends,
		lookupEnv:   os.LookupEnv,
	}
}

// readSecret reads a secret from various sources with priority:
// 1. Environment variable envName
// 2. File specified in secrets.FromFile
// 3. Command-line parameter secrets.FromArgs
// 4. Interactive prompt (fallback)
func (c *Cli) readSecret(envName, prompt string, secrets Secrets) (string, error) {
	// Priority 1: Environment variable
	if c.lookupEnv != nil {
		if value, ok := c.lookupEnv(envName); ok && value != "" {
			return value, nil
		}
	}

	// Priority 2: File
	if secrets.FromFile != "" {
		content, err := os.ReadFile(secrets.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read secret file: %w", err)
		}
		// Убираем trailing newline/whitespace
		value := strings.TrimSpace(string(content))
		if value == "" {
			return "", fmt.Errorf("secret file is empty")
		}
		return value, nil
	}

	// Priority 3: CLI parameter
	if secrets.FromArgs != "" {
		return secrets.FromArgs, nil
	}

	// Priority 4: Interactive prompt (fallback)
	value, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("value cannot be empty")
	}
	return value, nil
}

// Confirm asks a yes/no question, default is no
func (c *Cli) Confirm(ctx context.Context, message string) bool {
	answer, err := c.io.ReadInput(message + " [y/N]: ")
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// LoginRequired tells the user how to sign in
func (c *Cli) LoginRequired(ctx context.Context) {
	c.io.Println("Sign in to edit content: run 'pagekeeper login' first.")
}

func PrintUsage(w io.Writer) {
	_, _ = fmt.Fprint(w, `pagekeeper - in-page content editor with real-time sync

Usage:
  pagekeeper [OPTIONS] COMMAND [ARGS]

Options:
  --version                 Show version information
  --config PATH             YAML config file (env PAGEKEEPER_CONFIG)
  --cache PATH              Local cache file (default: pagekeeper-cache.db)
  --namespace NS            Cache key namespace (default: sms)
  --store DSN               Document store: postgres:// URL or SQLite file
  --relay URL               Broadcast relay URL, e.g. http://127.0.0.1:8765
  --relay-key KEY           Broadcast relay key
  --channel NAME            Broadcast channel (default: sms-content-sync)
  --owner, --repo           Repository to publish to
  --branch NAME             Branch to commit to (default: main)
  --dir PATH                Site directory inside the repository
  --committer-email EMAIL   Committer email for automatic commits
  --identity-secret SECRET  Secret that signs identity tokens
  --passphrase PASS         Seal the publisher token at rest

Every option can be set as PAGEKEEPER_<NAME>, e.g. PAGEKEEPER_RELAY_KEY.

Commands:
  login [--id-token T | --id-token-file F]   Sign in with an identity token
  logout                                     Sign out
  status                                     Show session and configuration
  issue-token EMAIL [--ttl D]                Issue a local identity token
  token set [--token-file F]                 Store the publisher token
  token show [--reveal]                      Show the publisher token (masked)
  token remove                               Remove the publisher token
  edit [--root DIR] PAGE                     Interactive edit session
  watch [--root DIR] PAGE                    Apply remote changes to the page file
  publish PAGE                               Commit the cached content of a page

Examples:
  pagekeeper --identity-secret dev issue-token admin@example.com
  pagekeeper login
  pagekeeper --store pages.db --relay http://127.0.0.1:8765 edit index
  pagekeeper --owner me --repo site publish about
`)
}
