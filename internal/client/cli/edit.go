package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/iudanet/pagekeeper/internal/client/page"
	"github.com/iudanet/pagekeeper/internal/client/sync"
)

const editHelp = `Commands:
  set KEY HTML   Save one field
  saveall        Save every field and publish
  reset          Restore the original content
  fields         List fields
  show KEY       Print one field
  write          Write the page file
  help           Show this help
  exit           Leave edit mode and write the page file`

// pageArgs разбирает [--root DIR] PAGE
func (c *Cli) pageArgs(name string, args []string) (pageID, root string, err error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.io)
	fs.StringVar(&root, "root", ".", "Directory with the page files")
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	if fs.NArg() != 1 {
		return "", "", fmt.Errorf("missing page. Usage: pagekeeper %s [--root DIR] PAGE", name)
	}
	return fs.Arg(0), root, nil
}

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	pageID, root, err := c.pageArgs("edit", args)
	if err != nil {
		return err
	}

	session, err := c.openPage(ctx, pageID, root, func(doc *page.Document) sync.Notifier {
		return &consoleNotifier{io: c.io}
	})
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.orch.EnterEdit(ctx); err != nil {
		return err
	}

	caps := session.orch.Capabilities()
	c.io.Printf("=== Editing %s ===\n", pageID)
	c.io.Printf("Document store: %t, publisher: %t, bus: %t\n", caps.DocumentStore, caps.Publisher, caps.Bus)
	c.io.Println(editHelp)

	return c.editLoop(ctx, session)
}

// editLoop читает команды до exit, EOF или отмены контекста
func (c *Cli) editLoop(ctx context.Context, session *pageSession) error {
	orch := session.orch
	for {
		if err := ctx.Err(); err != nil {
			return c.finishEdit(session)
		}

		line, err := c.io.ReadInput("> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return c.finishEdit(session)
			}
			return err
		}

		command, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch command {
		case "":
		case "set":
			key, value, ok := strings.Cut(rest, " ")
			if !ok || key == "" {
				c.io.Println("Usage: set KEY HTML")
				continue
			}
			report, err := orch.SaveField(ctx, key, strings.TrimSpace(value))
			if err != nil {
				c.io.Printf("Error: %v\n", err)
				continue
			}
			c.printReport(report)
		case "saveall":
			report, err := orch.SaveAll(ctx)
			if err != nil {
				c.io.Printf("Error: %v\n", err)
				continue
			}
			c.printReport(report)
		case "reset":
			report, err := orch.ResetPage(ctx)
			if errors.Is(err, sync.ErrResetCancelled) {
				c.io.Println("Reset cancelled.")
				continue
			}
			if err != nil {
				c.io.Printf("Error: %v\n", err)
				continue
			}
			c.printReport(report)
		case "fields":
			fields := orch.Fields()
			for _, key := range session.doc.Keys() {
				c.io.Printf("%s = %s\n", key, fields[key])
			}
		case "show":
			value, ok := session.doc.Get(rest)
			if !ok {
				c.io.Printf("Unknown field: %s\n", rest)
				continue
			}
			c.io.Println(value)
		case "write":
			if err := session.doc.Save(); err != nil {
				c.io.Printf("Error: %v\n", err)
				continue
			}
			c.io.Println("Page written.")
		case "help":
			c.io.Println(editHelp)
		case "exit", "quit":
			return c.finishEdit(session)
		default:
			c.io.Printf("Unknown command: %s (type 'help')\n", command)
		}
	}
}

// finishEdit выходит из режима редактирования и записывает страницу
func (c *Cli) finishEdit(session *pageSession) error {
	if err := session.orch.ExitEdit(context.Background()); err != nil && !errors.Is(err, sync.ErrNotEditing) {
		return err
	}
	if err := session.doc.Save(); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	c.io.Println("Page written. Bye!")
	return nil
}

func (c *Cli) printReport(report *sync.SaveReport) {
	c.io.Printf("%s (timestamp %d)\n", report.Summary(), report.Timestamp)
	if report.Published != nil {
		c.io.Printf("  %s\n", report.Published)
	}
}
