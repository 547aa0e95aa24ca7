package auth

import (
	"context"

	"github.com/iudanet/pagekeeper/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service defines the main interface for admin session and publisher token management.
// Провайдер идентичности (sign-in flow) внешний: сервис получает от него только подписанный identity token.
type Service interface {
	// Login проверяет identity token и сохраняет сессию администратора
	Login(ctx context.Context, idToken string) (*models.Credential, error)

	// Logout удаляет сессию. Токен публикации не трогает
	Logout(ctx context.Context) error

	// Credential returns the current session state with the publisher token.
	// Отсутствие сессии не ошибка: возвращается Credential{Authenticated: false}
	Credential(ctx context.Context) (*models.Credential, error)

	// IsAuthenticated checks if a valid (not expired) session exists
	IsAuthenticated(ctx context.Context) (bool, error)

	// SetPublisherToken stores publisher token, sealed when a passphrase is configured
	SetPublisherToken(ctx context.Context, token string) error

	// RemovePublisherToken removes publisher token
	RemovePublisherToken(ctx context.Context) error
}
