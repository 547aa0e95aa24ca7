package auth

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/pagekeeper/internal/client/storage/boltdb"
)

func newTestService(t *testing.T, passphrase string, logOut io.Writer) (*service, *boltdb.Storage) {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "auth.db"), "sms")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	if logOut == nil {
		logOut = io.Discard
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))

	svc := NewService(store, NewTokenVault(store, passphrase), NewIdentityVerifier(testSecret, ""), logger)
	return svc.(*service), store
}

func TestService_LoginAndCredential(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, "", nil)

	token, err := IssueIdentityToken(testSecret, "", "admin@example.com", time.Hour)
	require.NoError(t, err)

	cred, err := svc.Login(ctx, token)
	require.NoError(t, err)
	assert.True(t, cred.Authenticated)
	assert.Equal(t, "admin@example.com", cred.Identity)
	assert.False(t, cred.HasPublisherToken())

	ok, err := svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_LoginInvalidToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, "", nil)

	_, err := svc.Login(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidIdentity)

	_, err = svc.Login(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidIdentity)

	ok, err := svc.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "failed login must not create a session")
}

func TestService_CredentialAnonymous(t *testing.T) {
	svc, _ := newTestService(t, "", nil)

	cred, err := svc.Credential(context.Background())
	require.NoError(t, err)
	assert.False(t, cred.Authenticated)
	assert.Empty(t, cred.Identity)
}

func TestService_SessionExpiry(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, "", nil)

	token, err := IssueIdentityToken(testSecret, "", "admin@example.com", time.Hour)
	require.NoError(t, err)
	_, err = svc.Login(ctx, token)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	cred, err := svc.Credential(ctx)
	require.NoError(t, err)
	assert.False(t, cred.Authenticated, "expired session is not authenticated")
	assert.Equal(t, "admin@example.com", cred.Identity)
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, "", nil)

	token, err := IssueIdentityToken(testSecret, "", "admin@example.com", time.Hour)
	require.NoError(t, err)
	_, err = svc.Login(ctx, token)
	require.NoError(t, err)
	require.NoError(t, svc.SetPublisherToken(ctx, "ghp_keepme12345"))

	require.NoError(t, svc.Logout(ctx))

	cred, err := svc.Credential(ctx)
	require.NoError(t, err)
	assert.False(t, cred.Authenticated)
	// logout не удаляет токен публикации
	assert.Equal(t, "ghp_keepme12345", cred.PublisherToken)
}

func TestService_PublisherTokenNeverLoggedInClear(t *testing.T) {
	ctx := context.Background()
	var logs bytes.Buffer
	svc, _ := newTestService(t, "passphrase", &logs)

	require.NoError(t, svc.SetPublisherToken(ctx, "ghp_supersecretvalue"))

	cred, err := svc.Credential(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ghp_supersecretvalue", cred.PublisherToken)
	assert.Equal(t, "****************alue", cred.MaskedToken())

	assert.NotContains(t, logs.String(), "ghp_supersecretvalue")
	assert.Contains(t, logs.String(), "alue")

	require.NoError(t, svc.RemovePublisherToken(ctx))
	cred, err = svc.Credential(ctx)
	require.NoError(t, err)
	assert.False(t, cred.HasPublisherToken())
}

func TestService_SealedTokenWithoutPassphrase(t *testing.T) {
	ctx := context.Background()
	sealedSvc, store := newTestService(t, "passphrase", nil)
	require.NoError(t, sealedSvc.SetPublisherToken(ctx, "ghp_sealed_token"))

	plainSvc := NewService(store, NewTokenVault(store, ""), NewIdentityVerifier(testSecret, ""),
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	cred, err := plainSvc.Credential(ctx)
	require.NoError(t, err)
	assert.False(t, cred.HasPublisherToken(), "sealed token without passphrase disables publishing")
}
