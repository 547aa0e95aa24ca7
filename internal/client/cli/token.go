package cli

import (
	"context"
	"flag"
	"fmt"
)

// EnvPublisherToken environment variable with the publisher token
const EnvPublisherToken = "PAGEKEEPER_PUBLISHER_TOKEN"

func (c *Cli) runToken(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: pagekeeper token <set|show|remove>")
	}

	switch args[0] {
	case "set":
		return c.runTokenSet(ctx, args[1:])
	case "show":
		return c.runTokenShow(ctx, args[1:])
	case "remove":
		return c.runTokenRemove(ctx)
	default:
		return fmt.Errorf("unknown subcommand: %s. Use: set, show or remove", args[0])
	}
}

func (c *Cli) runTokenSet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("token set", flag.ContinueOnError)
	fs.SetOutput(c.io)
	var secrets Secrets
	fs.StringVar(&secrets.FromFile, "token-file", "", "Path to file containing publisher token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cred, err := c.authService.Credential(ctx)
	if err != nil {
		return err
	}
	if cred.HasPublisherToken() {
		c.io.Printf("Current token: %s\n", cred.MaskedToken())
		if !c.Confirm(ctx, "Replace the stored publisher token?") {
			c.io.Println("Cancelled.")
			return nil
		}
	}

	token, err := c.readSecret(EnvPublisherToken, "Publisher token: ", secrets)
	if err != nil {
		return fmt.Errorf("failed to get publisher token: %w", err)
	}

	if err := c.authService.SetPublisherToken(ctx, token); err != nil {
		return err
	}

	c.io.Println("✓ Publisher token saved.")
	if c.cfg.Passphrase == "" {
		c.io.Println("⚠️  Stored without a passphrase. Set PAGEKEEPER_PASSPHRASE to seal it.")
	}
	return nil
}

func (c *Cli) runTokenShow(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("token show", flag.ContinueOnError)
	fs.SetOutput(c.io)
	reveal := fs.Bool("reveal", false, "Print the token unmasked")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cred, err := c.authService.Credential(ctx)
	if err != nil {
		return err
	}
	if !cred.HasPublisherToken() {
		c.io.Println("No publisher token stored.")
		return nil
	}

	if *reveal {
		c.io.Println(cred.PublisherToken)
	} else {
		c.io.Println(cred.MaskedToken())
	}
	return nil
}

func (c *Cli) runTokenRemove(ctx context.Context) error {
	cred, err := c.authService.Credential(ctx)
	if err != nil {
		return err
	}
	if !cred.HasPublisherToken() {
		c.io.Println("No publisher token stored.")
		return nil
	}

	if !c.Confirm(ctx, "Remove the publisher token? Publishing will be disabled.") {
		c.io.Println("Cancelled.")
		return nil
	}
	if err := c.authService.RemovePublisherToken(ctx); err != nil {
		return err
	}
	c.io.Println("✓ Publisher token removed.")
	return nil
}
