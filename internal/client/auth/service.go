package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/pagekeeper/internal/client/storage"
	"github.com/iudanet/pagekeeper/internal/models"
)

// service реализует Service поверх локального хранилища
type service struct {
	now      func() time.Time
	sessions storage.SessionStorage
	vault    *TokenVault
	verifier *IdentityVerifier
	logger   *slog.Logger
}

// Compile-time check
var _ Service = (*service)(nil)

// NewService создает новый сервис авторизации
func NewService(sessions storage.SessionStorage, vault *TokenVault, verifier *IdentityVerifier, logger *slog.Logger) Service {
	return &service{
		now:      time.Now,
		sessions: sessions,
		vault:    vault,
		verifier: verifier,
		logger:   logger,
	}
}

// Login проверяет identity token и сохраняет сессию
func (s *service) Login(ctx context.Context, idToken string) (*models.Credential, error) {
	if idToken == "" {
		return nil, fmt.Errorf("%w: token is empty", ErrInvalidIdentity)
	}

	identity, err := s.verifier.Verify(idToken)
	if err != nil {
		return nil, err
	}

	session := &storage.Session{
		Identity:      identity.Email,
		Authenticated: true,
	}
	if !identity.ExpiresAt.IsZero() {
		session.ExpiresAt = identity.ExpiresAt.Unix()
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("Admin signed in", "identity", identity.Email)

	return s.Credential(ctx)
}

// Logout удаляет сессию администратора
func (s *service) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.logger.Info("Admin signed out")
	return nil
}

// Credential собирает состояние сессии и токен публикации
func (s *service) Credential(ctx context.Context) (*models.Credential, error) {
	cred := &models.Credential{}

	session, err := s.sessions.GetSession(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		// нет сессии - анонимный пользователь
	case errors.Is(err, storage.ErrMalformed):
		s.logger.Warn("Stored session is malformed, treating as signed out", "error", err)
	case err != nil:
		return nil, fmt.Errorf("failed to get session: %w", err)
	default:
		cred.Identity = session.Identity
		cred.Authenticated = session.Authenticated
		if session.ExpiresAt > 0 {
			cred.ExpiresAt = time.Unix(session.ExpiresAt, 0)
			if s.now().After(cred.ExpiresAt) {
				cred.Authenticated = false
			}
		}
	}

	token, err := s.vault.Load(ctx)
	switch {
	case err == nil:
		cred.PublisherToken = token
	case errors.Is(err, storage.ErrTokenNotFound):
	case errors.Is(err, ErrPassphraseRequired):
		s.logger.Warn("Publisher token is sealed and no passphrase is set, publishing disabled")
	default:
		s.logger.Warn("Failed to load publisher token, publishing disabled", "error", err)
	}

	return cred, nil
}

// IsAuthenticated проверяет наличие действующей сессии
func (s *service) IsAuthenticated(ctx context.Context) (bool, error) {
	cred, err := s.Credential(ctx)
	if err != nil {
		return false, err
	}
	return cred.Authenticated, nil
}

// SetPublisherToken сохраняет токен публикации
func (s *service) SetPublisherToken(ctx context.Context, token string) error {
	if err := s.vault.Save(ctx, token); err != nil {
		return fmt.Errorf("failed to save publisher token: %w", err)
	}
	s.logger.Info("Publisher token saved", "token", models.MaskSecret(token))
	return nil
}

// RemovePublisherToken удаляет токен публикации
func (s *service) RemovePublisherToken(ctx context.Context) error {
	if err := s.vault.Delete(ctx); err != nil {
		return fmt.Errorf("failed to remove publisher token: %w", err)
	}
	s.logger.Info("Publisher token removed")
	return nil
}
