package storage

import (
	"context"
)

// SessionStorage stores the admin session produced by the identity provider.
// Слой хранения работает с данными как есть и ничего не проверяет.
type SessionStorage interface {
	// SaveSession stores the session
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session
	// Returns ErrAuthNotFound if no session exists
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout, forced sign-out)
	DeleteSession(ctx context.Context) error
}

// TokenStorage stores the publisher token.
// Value is either plaintext or sealed (see crypto.Seal); salt is empty for plaintext.
type TokenStorage interface {
	// SaveToken stores the token value and the salt it was sealed with
	SaveToken(ctx context.Context, value, salt string) error

	// GetToken returns stored token value and salt
	// Returns ErrTokenNotFound if no token is stored
	GetToken(ctx context.Context) (value, salt string, err error)

	// DeleteToken removes the token
	DeleteToken(ctx context.Context) error
}

// Session represents admin session information in storage
type Session struct {
	Identity      string `json:"identity"`
	ExpiresAt     int64  `json:"expires_at"` // unix seconds, 0 - без ограничения
	Authenticated bool   `json:"authenticated"`
}
