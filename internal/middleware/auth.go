package middleware

import (
	"net/http"
	"strings"

	"github.com/oceanwatch/oceanwatch-be/internal/auth"
	"github.com/oceanwatch/oceanwatch-be/internal/http/respond"
	"github.com/oceanwatch/oceanwatch-be/internal/models"
)

// Guard produces role-checking middleware backed by a token manager.
type Guard struct {
	tokens *auth.TokenManager
}

// NewGuard constructs a Guard.
func NewGuard(tokens *auth.TokenManager) *Guard {
	return &Guard{tokens: tokens}
}

// Require returns a handler transformer enforcing bearer-token auth.
// An empty role list admits any authenticated role; a non-empty list
// rejects valid tokens whose role is absent with 403, not 401.
func (g *Guard) Require(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			scheme, token, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				respond.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			claims, err := g.tokens.Validate(strings.TrimSpace(token))
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "Invalid token")
				return
			}
			if len(roles) > 0 && !roleAllowed(claims.Role, roles) {
				respond.Error(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithClaims(r.Context(), claims)))
		})
	}
}

func roleAllowed(role models.Role, allowed []models.Role) bool {
	for _, candidate := range allowed {
		if candidate == role {
			return true
		}
	}
	return false
}
