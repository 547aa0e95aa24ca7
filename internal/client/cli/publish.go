package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/pagekeeper/internal/client/publisher"
	"github.com/iudanet/pagekeeper/internal/validation"
)

// runPublish commits the cached snapshot of a page
func (c *Cli) runPublish(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("missing page. Usage: pagekeeper publish PAGE")
	}
	pageID := args[0]
	if err := validation.ValidatePageID(pageID); err != nil {
		return err
	}

	if c.backends.Publisher == nil {
		return fmt.Errorf("repository is not configured (--owner and --repo)")
	}

	cred, err := c.authService.Credential(ctx)
	if err != nil {
		return err
	}
	if !cred.HasPublisherToken() {
		return fmt.Errorf("%w. Run 'pagekeeper token set' first", publisher.ErrNoToken)
	}

	snapshot, err := c.cache.LoadSnapshot(ctx, pageID)
	if err != nil {
		return fmt.Errorf("failed to load cached content: %w", err)
	}
	if len(snapshot) == 0 {
		c.io.Printf("Nothing to publish for %s.\n", pageID)
		return nil
	}

	c.io.Printf("Publishing %d field(s) of %s...\n", len(snapshot), pageID)

	result, err := c.backends.Publisher.Publish(ctx, publisher.Request{
		Page:    pageID,
		Changes: snapshot,
		Token:   cred.PublisherToken,
		Author:  cred.Identity,
	})
	if err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}

	c.io.Println("✓", result.String())
	if len(result.SkippedFields) > 0 {
		c.io.Printf("⚠️  Fields not found in the file: %s\n", strings.Join(result.SkippedFields, ", "))
	}
	return nil
}
