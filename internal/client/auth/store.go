package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/pagekeeper/internal/client/storage"
	"github.com/iudanet/pagekeeper/internal/crypto"
)

// TokenVault is the sealing layer between the auth service and token storage.
// С passphrase токен хранится запечатанным (argon2id + XChaCha20-Poly1305),
// без нее - открытым текстом, как в localStorage браузера.
type TokenVault struct {
	storage    storage.TokenStorage
	passphrase string
}

// NewTokenVault creates a vault; empty passphrase stores tokens as plaintext
func NewTokenVault(tokens storage.TokenStorage, passphrase string) *TokenVault {
	return &TokenVault{
		storage:    tokens,
		passphrase: passphrase,
	}
}

// Save stores the token, sealing it when a passphrase is configured
func (v *TokenVault) Save(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if v.passphrase == "" {
		return v.storage.SaveToken(ctx, token, "")
	}

	// Новая соль на каждое сохранение
	salt, err := crypto.GenerateSaltBase64()
	if err != nil {
		return err
	}

	key, err := crypto.DeriveTokenKey(v.passphrase, salt)
	if err != nil {
		return fmt.Errorf("failed to derive token key: %w", err)
	}

	sealed, err := crypto.Seal(token, key)
	if err != nil {
		return fmt.Errorf("failed to seal token: %w", err)
	}

	return v.storage.SaveToken(ctx, sealed, salt)
}

// Load returns the plaintext token.
// Returns storage.ErrTokenNotFound if no token is stored,
// ErrPassphraseRequired if the token is sealed and no passphrase is configured.
func (v *TokenVault) Load(ctx context.Context) (string, error) {
	value, salt, err := v.storage.GetToken(ctx)
	if err != nil {
		return "", err
	}

	if !crypto.IsSealed(value) {
		return value, nil
	}

	if v.passphrase == "" {
		return "", ErrPassphraseRequired
	}

	key, err := crypto.DeriveTokenKey(v.passphrase, salt)
	if err != nil {
		return "", fmt.Errorf("failed to derive token key: %w", err)
	}

	token, err := crypto.Open(value, key)
	if err != nil {
		return "", fmt.Errorf("failed to open token: %w", err)
	}

	return token, nil
}

// Delete removes the stored token
func (v *TokenVault) Delete(ctx context.Context) error {
	return v.storage.DeleteToken(ctx)
}

// Exists reports whether any token (sealed or not) is stored
func (v *TokenVault) Exists(ctx context.Context) (bool, error) {
	_, _, err := v.storage.GetToken(ctx)
	if errors.Is(err, storage.ErrTokenNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
