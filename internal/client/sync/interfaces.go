package sync

import (
	"context"

	"github.com/iudanet/pagekeeper/internal/client/publisher"
	"github.com/iudanet/pagekeeper/internal/models"
)

//go:generate moq -out deps_mock.go . Page SessionProvider Publisher Notifier Prompter

// Page is the live document with editable slots.
// Реализуется page.Document.
type Page interface {
	Keys() []string
	Get(key string) (string, bool)
	Set(key, value string) error
	Snapshot() models.Snapshot
	Apply(snapshot models.Snapshot) []string
	SetEditable(editable bool)
	Reload(ctx context.Context) error
}

// SessionProvider returns the current admin credential.
// Реализуется auth.Service.
type SessionProvider interface {
	Credential(ctx context.Context) (*models.Credential, error)
}

// Publisher commits changed fields into the site repository.
// Реализуется publisher.Publisher.
type Publisher interface {
	Publish(ctx context.Context, req publisher.Request) (*publisher.Result, error)
}

// NoticeKind вид уведомления пользователю
type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeWarning NoticeKind = "warning"
	NoticeError   NoticeKind = "error"
)

// Notifier shows transient notifications to the user.
type Notifier interface {
	Notify(kind NoticeKind, message string)
}

// Prompter asks the user for decisions.
type Prompter interface {
	// Confirm задает вопрос да/нет
	Confirm(ctx context.Context, message string) bool

	// LoginRequired сообщает, что для действия нужен вход
	LoginRequired(ctx context.Context)
}
