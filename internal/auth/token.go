package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"

	"github.com/oceanwatch/oceanwatch-be/internal/models"
)

// tokenTTL is fixed: expiry is always issued-at + 24h, with no refresh.
const tokenTTL = 24 * time.Hour

// ErrInvalidToken covers every validation failure. Callers cannot tell a
// missing token from an expired or mis-signed one and must not try to.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the decoded identity carried by a bearer token.
type Claims struct {
	Subject string
	Name    string
	Role    models.Role
}

// TokenManager issues and validates signed bearer tokens.
type TokenManager struct {
	secret []byte
	clock  clockwork.Clock
}

// NewTokenManager creates a manager signing with the process-wide shared secret.
func NewTokenManager(secret string) *TokenManager {
	return NewTokenManagerWithClock(secret, clockwork.NewRealClock())
}

// NewTokenManagerWithClock allows tests to control token time.
func NewTokenManagerWithClock(secret string, clock clockwork.Clock) *TokenManager {
	return &TokenManager{secret: []byte(secret), clock: clock}
}

// Issue signs a token for the user. The role is captured at issuance time;
// there is no revocation, so a demoted user keeps the old role until expiry.
func (m *TokenManager) Issue(user models.User) (string, error) {
	now := m.clock.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

type tokenClaims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Validate verifies signature and expiry and returns the decoded claims.
// All failures collapse into ErrInvalidToken.
func (m *TokenManager) Validate(tokenStr string) (Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.clock.Now), jwt.WithExpirationRequired())
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	c, ok := tok.Claims.(*tokenClaims)
	if !ok || c.Subject == "" {
		return Claims{}, ErrInvalidToken
	}
	role, ok := models.ParseRole(c.Role)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	return Claims{Subject: c.Subject, Name: c.Name, Role: role}, nil
}
