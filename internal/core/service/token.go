package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/idaccess/identity-service/internal/core/domain"
)

const defaultTokenTTL = 3 * time.Hour

// tokenClaims is the claim set embedded in issued tokens: the registered
// claims plus one role value per role the user holds at issuance.
type tokenClaims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer builds and HS256-signs the bearer tokens returned by Login.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewTokenIssuer(secret, issuer, audience string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// Issue signs a claim set for username holding roles. Each issuance gets a
// fresh jti; role order follows the order the caller read from the store.
func (t *TokenIssuer) Issue(username string, roles []string, now time.Time) (*domain.Token, error) {
	// Second precision keeps the returned expiry identical to the exp claim,
	// which serializes as whole seconds.
	expiresAt := now.Add(t.ttl).Truncate(time.Second)

	claims := tokenClaims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ID:        uuid.NewString(),
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &domain.Token{AccessToken: signed, ExpiresAt: expiresAt}, nil
}
