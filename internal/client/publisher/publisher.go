package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/pagekeeper/internal/crypto"
	"github.com/iudanet/pagekeeper/internal/models"
	"github.com/iudanet/pagekeeper/internal/validation"
)

// Request is one publish of changed fields of a page.
type Request struct {
	Changes models.Snapshot
	Token   string
	Page    string
	Author  string
}

// Result describes the outcome of a publish.
type Result struct {
	// SHA version token файла после публикации
	SHA       string
	CommitSHA string
	CommitURL string
	// SkippedFields ключи, не найденные в файле
	SkippedFields []string
	// Unchanged true, если содержимое не изменилось и коммит не создавался
	Unchanged bool
}

// Publisher runs fetch, patch and commit for a page.
type Publisher struct {
	client *Client
	logger *slog.Logger
	now    func() time.Time
}

// New создает publisher
func New(client *Client, logger *slog.Logger) *Publisher {
	return &Publisher{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// Publish fetches the page file, applies the changes and commits the result
// with the fetched version token. Любая ошибка прерывает публикацию до коммита.
func (p *Publisher) Publish(ctx context.Context, req Request) (*Result, error) {
	if err := validation.ValidatePageID(req.Page); err != nil {
		return nil, err
	}
	if req.Token == "" {
		return nil, ErrNoToken
	}

	path := p.client.FilePath(req.Page)

	file, err := p.client.FetchFile(ctx, req.Token, path)
	if err != nil {
		return nil, err
	}

	patched, skipped := ApplyPatch(file.Content, req.Changes)
	if len(skipped) > 0 {
		p.logger.Warn("Fields not found in page file", "page", req.Page, "fields", skipped)
	}

	result := &Result{SkippedFields: skipped}

	if patched == file.Content {
		p.logger.Info("Page file unchanged, commit skipped", "page", req.Page, "sha", file.SHA)
		result.SHA = file.SHA
		result.Unchanged = true
		return result, nil
	}

	message := CommitMessage(req.Page, req.Changes.Keys(), req.Author, p.now())
	resp, err := p.client.Commit(ctx, CommitRequest{
		Token:       req.Token,
		Path:        path,
		Content:     patched,
		SHA:         file.SHA,
		Message:     message,
		AuthorEmail: req.Author,
	})
	if err != nil {
		return nil, err
	}

	result.SHA = resp.Content.SHA
	if result.SHA == "" {
		result.SHA = crypto.GitBlobSHA([]byte(patched))
	}
	result.CommitSHA = resp.Commit.SHA
	result.CommitURL = resp.Commit.HTMLURL

	p.logger.Info("Page published",
		"page", req.Page,
		"commit", result.CommitSHA,
		"fields", len(req.Changes),
	)

	return result, nil
}

// String краткое описание результата
func (r *Result) String() string {
	if r.Unchanged {
		return fmt.Sprintf("unchanged (%s)", r.SHA)
	}
	return fmt.Sprintf("commit %s, version %s", r.CommitSHA, r.SHA)
}
