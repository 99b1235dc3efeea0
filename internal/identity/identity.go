// Package identity resolves the caller of an HTTP request.
package identity

//go:generate mockgen -source=identity.go -destination=identity_mock.go -package=identity

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sbilibin2017/neko-list/internal/logger"
	"github.com/sbilibin2017/neko-list/internal/models"
	"golang.org/x/sync/singleflight"
)

// HeaderUserID carries the caller id in the legacy identity scheme.
const HeaderUserID = "X-User-Id"

// UserReader loads users from the store.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserCache is an optional read-through cache in front of UserReader.
type UserCache interface {
	Get(ctx context.Context, id int64) (*models.UserDB, error)
	Set(ctx context.Context, user *models.UserDB) error
}

// TokenParser extracts the user id from a bearer token.
type TokenParser interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// Resolver maps requests to users. It never fails: anything that does not
// lead to an existing user resolves to anonymous (nil).
type Resolver struct {
	users         UserReader
	cache         UserCache
	tokens        TokenParser
	headerEnabled bool
	scope         ScopeFunc
	group         singleflight.Group
}

// ScopeFunc names the data scope a context reads from, such as its
// transaction. Lookups are only shared between callers of the same scope.
type ScopeFunc func(ctx context.Context) string

// Opt configures a Resolver.
type Opt func(*Resolver)

// WithCache puts cache in front of the user store.
func WithCache(cache UserCache) Opt {
	return func(r *Resolver) {
		r.cache = cache
	}
}

// WithTokens enables bearer token identity.
func WithTokens(tokens TokenParser) Opt {
	return func(r *Resolver) {
		r.tokens = tokens
	}
}

// WithScope limits lookup sharing to callers whose contexts share a scope.
func WithScope(scope ScopeFunc) Opt {
	return func(r *Resolver) {
		r.scope = scope
	}
}

// WithHeader switches the X-User-Id header scheme on or off. It is on by default.
func WithHeader(enabled bool) Opt {
	return func(r *Resolver) {
		r.headerEnabled = enabled
	}
}

// NewResolver creates a Resolver backed by users.
func NewResolver(users UserReader, opts ...Opt) *Resolver {
	r := &Resolver{
		users:         users,
		headerEnabled: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the caller of req, or nil for an anonymous request.
func (r *Resolver) Resolve(req *http.Request) *models.UserDB {
	ctx := req.Context()

	id, ok := r.callerID(req)
	if !ok {
		return nil
	}

	user, err := r.lookup(ctx, id)
	if err != nil {
		logger.Log.Warnw("identity lookup failed, treating as anonymous", "user_id", id, "error", err)
		return nil
	}
	if user == nil {
		logger.Log.Debugw("identity refers to unknown user", "user_id", id)
	}
	return user
}

// callerID reads the claimed user id from the token, then from the header.
func (r *Resolver) callerID(req *http.Request) (int64, bool) {
	ctx := req.Context()

	if r.tokens != nil && req.Header.Get("Authorization") != "" {
		id, err := r.tokenUserID(ctx, req)
		if err == nil {
			return id, true
		}
		logger.Log.Debugw("bearer token rejected", "error", err)
	}

	if !r.headerEnabled {
		return 0, false
	}

	raw := strings.TrimSpace(req.Header.Get(HeaderUserID))
	if raw == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.Log.Debugw("malformed identity header", "value", raw)
		return 0, false
	}
	return id, true
}

func (r *Resolver) tokenUserID(ctx context.Context, req *http.Request) (int64, error) {
	token, err := r.tokens.GetTokenFromRequest(ctx, req)
	if err != nil {
		return 0, err
	}
	return r.tokens.GetUserID(ctx, token)
}

// lookup reads through the cache; concurrent lookups of one id within one
// scope share a single call. The shared call runs on the first caller's
// context, so a caller that is still live retries on its own when that
// context was canceled underneath it.
func (r *Resolver) lookup(ctx context.Context, id int64) (*models.UserDB, error) {
	key := strconv.FormatInt(id, 10)
	if r.scope != nil {
		key = r.scope(ctx) + "/" + key
	}

	ch := r.group.DoChan(key, func() (any, error) {
		return r.load(ctx, id)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			if isCanceled(res.Err) && ctx.Err() == nil {
				return r.load(ctx, id)
			}
			return nil, res.Err
		}
		user, _ := res.Val.(*models.UserDB)
		return user, nil
	}
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (r *Resolver) load(ctx context.Context, id int64) (*models.UserDB, error) {
	if r.cache != nil {
		user, err := r.cache.Get(ctx, id)
		if err != nil {
			logger.Log.Warnw("user cache read failed", "user_id", id, "error", err)
		} else if user != nil {
			return user, nil
		}
	}

	user, err := r.users.GetByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, user); err != nil {
			logger.Log.Warnw("user cache write failed", "user_id", id, "error", err)
		}
	}
	return user, nil
}
