package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/flashnote-app/flashnote/internal/api/services"
	"github.com/flashnote-app/flashnote/internal/models"
	"github.com/flashnote-app/flashnote/internal/repositories"
	"github.com/flashnote-app/flashnote/internal/utils"
)

type contextKey string

const userKey contextKey = "user"

// Auth resolves bearer tokens to user records for downstream handlers.
type Auth struct {
	tokens services.TokenService
	users  repositories.UserRepository
}

// NewAuth creates the authentication middleware.
func NewAuth(tokens services.TokenService, users repositories.UserRepository) *Auth {
	return &Auth{tokens: tokens, users: users}
}

// RequireAuth rejects requests without a valid Authorization: Bearer
// token resolving to an existing user, and attaches that user to the
// request context otherwise.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := a.resolve(r)
		if !ok {
			utils.Error(w, http.StatusUnauthorized, "Not authorized, invalid or missing bearer token.")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}

// OptionalAuth attaches the user when valid credentials are present but
// lets the request through anonymously otherwise. Used where an edit
// token may stand in for identity.
func (a *Auth) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := a.resolve(r); ok {
			r = r.WithContext(context.WithValue(r.Context(), userKey, user))
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Auth) resolve(r *http.Request) (*models.User, bool) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, false
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")
	if tokenStr == "" {
		return nil, false
	}

	claims, err := a.tokens.Verify(tokenStr)
	if err != nil {
		return nil, false
	}

	// Stale tokens referencing a deleted user do not authenticate.
	user, err := a.users.FindByID(r.Context(), claims.UserID)
	if err != nil {
		return nil, false
	}
	return user, true
}

// UserFrom returns the authenticated user attached to ctx, or nil for
// anonymous requests.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
