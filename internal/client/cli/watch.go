package cli

import (
	"context"

	"github.com/iudanet/pagekeeper/internal/client/page"
	"github.com/iudanet/pagekeeper/internal/client/sync"
)

// runWatch держит страницу открытой и записывает в файл каждое удаленное изменение
func (c *Cli) runWatch(ctx context.Context, args []string) error {
	pageID, root, err := c.pageArgs("watch", args)
	if err != nil {
		return err
	}

	session, err := c.openPage(ctx, pageID, root, func(doc *page.Document) sync.Notifier {
		return &savingNotifier{
			consoleNotifier: consoleNotifier{io: c.io},
			doc:             doc,
			onSave: func(err error) {
				if err != nil {
					c.logger.Error("Failed to write page", "page", pageID, "error", err)
				}
			},
		}
	})
	if err != nil {
		return err
	}
	defer session.Close()

	// контент из кэша применен при старте
	if err := session.doc.Save(); err != nil {
		return err
	}

	caps := session.orch.Capabilities()
	c.io.Printf("Watching %s (document store: %t, bus: %t). Press Ctrl+C to stop.\n",
		pageID, caps.DocumentStore, caps.Bus)

	<-ctx.Done()
	c.io.Println("Stopped.")
	return nil
}
