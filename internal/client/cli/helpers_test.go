package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	gosync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/pagekeeper/internal/client/auth"
	"github.com/iudanet/pagekeeper/internal/client/iocli"
	"github.com/iudanet/pagekeeper/internal/client/storage/boltdb"
	"github.com/iudanet/pagekeeper/internal/config"
)

const (
	testSecret = "test-identity-secret"
	testEmail  = "admin@example.com"
)

const testPageHTML = `<!doctype html>
<html><head><title>Site</title></head><body>
<h1 data-field="hero-title">Welcome</h1>
<p data-field="hero-subtitle">Original subtitle</p>
</body></html>`

// console поддельный терминал: ввод по сценарию, вывод в буфер
type console struct {
	mock   *iocli.IOMock
	out    bytes.Buffer
	inputs []string
	mu     gosync.Mutex
}

func newConsole(inputs ...string) *console {
	c := &console{inputs: inputs}
	next := func(prompt string) (string, error) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.out.WriteString(prompt)
		if len(c.inputs) == 0 {
			return "", io.EOF
		}
		line := c.inputs[0]
		c.inputs = c.inputs[1:]
		return line, nil
	}
	c.mock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			c.mu.Lock()
			defer c.mu.Unlock()
			_, _ = fmt.Fprintln(&c.out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			c.mu.Lock()
			defer c.mu.Unlock()
			_, _ = fmt.Fprintf(&c.out, format, a...)
		},
		WriteFunc: func(p []byte) (int, error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			return c.out.Write(p)
		},
		ReadInputFunc:    next,
		ReadPasswordFunc: next,
	}
	return c
}

func (c *console) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.String()
}

type testEnv struct {
	cli     *Cli
	console *console
	cache   *boltdb.Storage
	auth    auth.Service
	root    string
	env     map[string]string
}

func newTestEnv(t *testing.T, inputs ...string) *testEnv {
	t.Helper()

	cfg := config.Default()
	cfg.Identity.Secret = testSecret
	cfg.CachePath = filepath.Join(t.TempDir(), "cache.db")

	cache, err := boltdb.New(context.Background(), cfg.CachePath, cfg.Namespace)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authService := auth.NewService(cache, auth.NewTokenVault(cache, ""),
		auth.NewIdentityVerifier(cfg.Identity.Secret, cfg.Identity.Issuer), logger)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte(testPageHTML), 0600))

	e := &testEnv{
		console: newConsole(inputs...),
		cache:   cache,
		auth:    authService,
		root:    root,
		env:     map[string]string{},
	}
	e.cli = New(e.console.mock, cfg, logger, cache, authService, Backends{})
	e.cli.lookupEnv = func(key string) (string, bool) {
		v, ok := e.env[key]
		return v, ok
	}
	return e
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()
	token, err := auth.IssueIdentityToken(testSecret, e.cli.cfg.Identity.Issuer, testEmail, time.Hour)
	require.NoError(t, err)
	_, err = e.auth.Login(context.Background(), token)
	require.NoError(t, err)
}

func (e *testEnv) readPage(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.root, "index.html"))
	require.NoError(t, err)
	return string(data)
}

func lastLine(out string) string {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

func containsString(s, sub string) bool {
	return strings.Contains(s, sub)
}

func e2eLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
