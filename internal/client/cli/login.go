package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/iudanet/pagekeeper/internal/client/auth"
)

// EnvIdentityToken environment variable with the identity token
const EnvIdentityToken = "PAGEKEEPER_ID_TOKEN"

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(c.io)
	var secrets Secrets
	fs.StringVar(&secrets.FromArgs, "id-token", "", "Identity token (not recommended, use env var or file)")
	fs.StringVar(&secrets.FromFile, "id-token-file", "", "Path to file containing identity token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.io.Println("=== Login ===")
	c.io.Println()

	idToken, err := c.readSecret(EnvIdentityToken, "Identity token: ", secrets)
	if err != nil {
		return fmt.Errorf("failed to get identity token: %w", err)
	}

	c.io.Println("Authenticating...")

	cred, err := c.authService.Login(ctx, idToken)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Identity: %s\n", cred.Identity)
	if !cred.ExpiresAt.IsZero() {
		c.io.Printf("Session expires: %s\n", cred.ExpiresAt.Format(time.RFC3339))
	}

	// без токена публикации сохранение работает только локально
	if !cred.HasPublisherToken() {
		c.io.Println()
		c.io.Println("No publisher token stored: changes will not be committed.")
		c.io.Println("Run 'pagekeeper token set' to enable publishing.")
	}

	return nil
}

func (c *Cli) runIssueToken(args []string) error {
	fs := flag.NewFlagSet("issue-token", flag.ContinueOnError)
	fs.SetOutput(c.io)
	ttl := fs.Duration("ttl", 8*time.Hour, "Token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("missing email. Usage: pagekeeper issue-token EMAIL")
	}
	if c.cfg.Identity.Secret == "" {
		return fmt.Errorf("identity secret is not configured (--identity-secret or PAGEKEEPER_IDENTITY_SECRET)")
	}

	token, err := auth.IssueIdentityToken(c.cfg.Identity.Secret, c.cfg.Identity.Issuer, fs.Arg(0), *ttl)
	if err != nil {
		return err
	}
	c.io.Println(token)
	return nil
}
