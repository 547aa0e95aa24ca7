package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims claims identity token, выданного провайдером
type IdentityClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Identity is a verified admin identity.
type Identity struct {
	ExpiresAt time.Time
	Email     string
}

// IdentityVerifier verifies HS256 identity tokens issued by the sign-in provider
type IdentityVerifier struct {
	now    func() time.Time
	secret []byte
	issuer string
}

// NewIdentityVerifier creates a verifier.
// issuer может быть пустым, тогда claim iss не проверяется
func NewIdentityVerifier(secret, issuer string) *IdentityVerifier {
	return &IdentityVerifier{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// Verify проверяет подпись, срок действия и наличие email
func (v *IdentityVerifier) Verify(token string) (*Identity, error) {
	if len(v.secret) == 0 {
		return nil, fmt.Errorf("%w: identity secret is not configured", ErrInvalidIdentity)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &IdentityClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", ErrInvalidIdentity)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidIdentity, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidIdentity
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("%w: email claim is missing", ErrInvalidIdentity)
	}

	identity := &Identity{Email: claims.Email}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}

// IssueIdentityToken creates a signed identity token.
// Используется для локальной разработки и тестов вместо внешнего провайдера.
func IssueIdentityToken(secret, issuer, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := IdentityClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign identity token: %w", err)
	}
	return token, nil
}
