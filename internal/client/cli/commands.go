package cli

import (
	"context"
	"fmt"
)

// Run executes one command
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "issue-token":
		return c.runIssueToken(args)
	case "token":
		return c.runToken(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "watch":
		return c.runWatch(ctx, args)
	case "publish":
		return c.runPublish(ctx, args)
	case "help":
		PrintUsage(c.io)
		return nil
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}
