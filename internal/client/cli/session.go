package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/iudanet/pagekeeper/internal/client/bus"
	"github.com/iudanet/pagekeeper/internal/client/docstore"
	"github.com/iudanet/pagekeeper/internal/client/iocli"
	"github.com/iudanet/pagekeeper/internal/client/page"
	"github.com/iudanet/pagekeeper/internal/client/sync"
	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/validation"
)

// pageSession is an open page with its orchestrator and backends
type pageSession struct {
	orch  *sync.Orchestrator
	doc   *page.Document
	store docstore.Store
	bus   bus.Bus
}

// openPage opens the page file under root and starts its orchestrator.
// Недоступные store и bus не мешают работе: остается локальный кэш.
func (c *Cli) openPage(ctx context.Context, pageID, root string, notifier func(doc *page.Document) sync.Notifier) (*pageSession, error) {
	if err := validation.ValidatePageID(pageID); err != nil {
		return nil, err
	}

	doc, err := page.Open(filepath.Join(root, models.PageFile(pageID)))
	if err != nil {
		return nil, err
	}

	s := &pageSession{doc: doc}

	if c.backends.OpenStore != nil {
		if s.store, err = c.backends.OpenStore(ctx); err != nil {
			c.logger.Warn("Document store unavailable", "error", err)
			s.store = nil
		}
	}
	if c.backends.DialBus != nil {
		if s.bus, err = c.backends.DialBus(ctx); err != nil {
			c.logger.Warn("Broadcast relay unavailable", "error", err)
			s.bus = nil
		}
	}

	s.orch, err = sync.NewOrchestrator(sync.Options{
		Page:      pageID,
		Document:  doc,
		Cache:     c.cache,
		Session:   c.authService,
		Store:     s.store,
		Bus:       s.bus,
		Publisher: c.backends.Publisher,
		Notifier:  notifier(doc),
		Prompter:  c,
		Logger:    c.logger,
	})
	if err != nil {
		s.Close()
		return nil, err
	}
	if err := s.orch.Start(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to start sync: %w", err)
	}
	return s, nil
}

func (s *pageSession) Close() {
	if s.orch != nil {
		_ = s.orch.Close()
	}
	if s.bus != nil {
		_ = s.bus.Close()
	}
	if s.store != nil {
		_ = s.store.Close()
	}
}

// consoleNotifier печатает уведомления orchestrator
type consoleNotifier struct {
	io iocli.IO
}

func (n *consoleNotifier) Notify(kind sync.NoticeKind, message string) {
	n.io.Printf("[%s] %s\n", kind, message)
}

// savingNotifier печатает уведомление и записывает страницу после удаленных изменений
type savingNotifier struct {
	consoleNotifier
	doc    *page.Document
	onSave func(err error)
}

func (n *savingNotifier) Notify(kind sync.NoticeKind, message string) {
	n.consoleNotifier.Notify(kind, message)
	if kind != sync.NoticeInfo {
		return
	}
	err := n.doc.Save()
	if n.onSave != nil {
		n.onSave(err)
	}
}
