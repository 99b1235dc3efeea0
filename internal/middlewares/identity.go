package middlewares

//go:generate mockgen -source=identity.go -destination=identity_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/neko-list/internal/models"
)

// Resolver maps a request to its caller, nil meaning anonymous.
type Resolver interface {
	Resolve(r *http.Request) *models.UserDB
}

// IdentityMiddleware attaches the resolved caller to the request context.
// It never rejects a request; handlers decide whether a caller is required.
func IdentityMiddleware(resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := resolver.Resolve(r); user != nil {
				r = r.WithContext(SetUserToContext(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SetUserToContext stores the caller in the context.
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the caller, or nil for anonymous requests.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}
