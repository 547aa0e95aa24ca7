package boltdb

import (
	"context"
	"fmt"
	"strconv"

	"go.etcd.io/bbolt"

	"github.com/iudanet/pagekeeper/internal/client/storage"
)

// SaveSession stores admin session under the admin-auth/admin-email keys
func (s *Storage) SaveSession(ctx context.Context, session *storage.Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}

	return s.setItems(map[string]string{
		storage.AdminAuthKey(s.namespace):      strconv.FormatBool(session.Authenticated),
		storage.AdminEmailKey(s.namespace):     session.Identity,
		storage.SessionExpiresKey(s.namespace): strconv.FormatInt(session.ExpiresAt, 10),
	})
}

// GetSession retrieves stored admin session
func (s *Storage) GetSession(ctx context.Context) (*storage.Session, error) {
	authRaw, ok, err := s.getItem(storage.AdminAuthKey(s.namespace))
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if !ok {
		return nil, storage.ErrAuthNotFound
	}

	identity, _, err := s.getItem(storage.AdminEmailKey(s.namespace))
	if err != nil {
		return nil, fmt.Errorf("failed to get session identity: %w", err)
	}

	expiresRaw, hasExpiry, err := s.getItem(storage.SessionExpiresKey(s.namespace))
	if err != nil {
		return nil, fmt.Errorf("failed to get session expiry: %w", err)
	}

	session := &storage.Session{
		Identity: identity,
		// как в браузере: аутентифицирован только при "true" и непустом email
		Authenticated: authRaw == "true" && identity != "",
	}

	if hasExpiry {
		expiresAt, err := strconv.ParseInt(expiresRaw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: session expiry: %v", storage.ErrMalformed, err)
		}
		session.ExpiresAt = expiresAt
	}

	return session, nil
}

// DeleteSession removes stored admin session (logout)
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.removeItems(
		storage.AdminAuthKey(s.namespace),
		storage.AdminEmailKey(s.namespace),
		storage.SessionExpiresKey(s.namespace),
	)
}

// SaveToken stores publisher token value and its salt (empty salt - plaintext)
func (s *Storage) SaveToken(ctx context.Context, value, salt string) error {
	if value == "" {
		return fmt.Errorf("token cannot be empty")
	}

	// токен и соль меняются в одной транзакции
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLocal)
		if bucket == nil {
			return fmt.Errorf("local bucket not found")
		}
		if err := bucket.Put([]byte(storage.GitHubTokenKey(s.namespace)), []byte(value)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
		saltKey := []byte(storage.GitHubTokenSaltKey(s.namespace))
		if salt == "" {
			return bucket.Delete(saltKey)
		}
		return bucket.Put(saltKey, []byte(salt))
	})
}

// GetToken returns stored publisher token value and salt
func (s *Storage) GetToken(ctx context.Context) (string, string, error) {
	value, ok, err := s.getItem(storage.GitHubTokenKey(s.namespace))
	if err != nil {
		return "", "", fmt.Errorf("failed to get token: %w", err)
	}
	if !ok || value == "" {
		return "", "", storage.ErrTokenNotFound
	}

	salt, _, err := s.getItem(storage.GitHubTokenSaltKey(s.namespace))
	if err != nil {
		return "", "", fmt.Errorf("failed to get token salt: %w", err)
	}

	return value, salt, nil
}

// DeleteToken removes publisher token
func (s *Storage) DeleteToken(ctx context.Context) error {
	return s.removeItems(
		storage.GitHubTokenKey(s.namespace),
		storage.GitHubTokenSaltKey(s.namespace),
	)
}
