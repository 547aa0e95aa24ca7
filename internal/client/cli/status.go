package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	cred, err := c.authService.Credential(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	switch {
	case cred.Authenticated:
		c.io.Println("Status: Authenticated")
		c.io.Printf("Identity: %s\n", cred.Identity)
		if !cred.ExpiresAt.IsZero() {
			c.io.Printf("Session expires: %s\n", cred.ExpiresAt.Format(time.RFC3339))
			c.io.Printf("Time remaining: %s\n", time.Until(cred.ExpiresAt).Round(time.Second))
		}
	case cred.Identity != "":
		c.io.Println("Status: Session expired")
		c.io.Printf("Identity: %s\n", cred.Identity)
		c.io.Println("⚠️  Please login again.")
	default:
		c.io.Println("Status: Not authenticated")
		c.io.Println("Run 'pagekeeper login' to authenticate.")
	}

	c.io.Println()
	if cred.HasPublisherToken() {
		c.io.Printf("Publisher token: %s\n", cred.MaskedToken())
	} else {
		c.io.Println("Publisher token: not set")
	}

	c.io.Println()
	c.io.Println("=== Configuration ===")
	c.io.Printf("Cache: %s (namespace %s)\n", c.cfg.CachePath, c.cfg.Namespace)
	c.io.Printf("Document store: %s\n", orNone(c.cfg.Store.DSN))
	c.io.Printf("Relay: %s (channel %s)\n", orNone(c.cfg.Bus.RelayURL), c.cfg.Bus.Channel)
	if c.cfg.HasPublisherRepo() {
		c.io.Printf("Repository: %s/%s@%s\n", c.cfg.Site.Owner, c.cfg.Site.Repo, c.cfg.Site.Branch)
	} else {
		c.io.Println("Repository: none")
	}

	return nil
}

func orNone(value string) string {
	if value == "" {
		return "none"
	}
	return value
}
