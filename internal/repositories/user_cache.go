package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/neko-list/internal/logger"
	"github.com/sbilibin2017/neko-list/internal/models"
)

// UserCacheRepository caches user lookups by id in Redis
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached users
}

// NewUserCacheRepository creates a new cache repository with the given TTL
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// cachedUser is the stored form; the digest is never written to the cache.
type cachedUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Country   *string   `json:"country"`
	Hobby     *string   `json:"hobby"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func userKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

// Get returns the cached user, or nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, id int64) (*models.UserDB, error) {
	key := userKey(id)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("cache get",
			"key", key,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var cu cachedUser
	if err := json.Unmarshal([]byte(val), &cu); err != nil {
		logger.Log.Infow("cache get",
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("cache get",
		"key", key,
		"result", cu.ID,
		"error", nil,
	)

	return &models.UserDB{
		ID:        cu.ID,
		Name:      cu.Name,
		Email:     cu.Email,
		Country:   cu.Country,
		Hobby:     cu.Hobby,
		CreatedAt: cu.CreatedAt,
		UpdatedAt: cu.UpdatedAt,
	}, nil
}

// Set caches user with the repository TTL
func (r *UserCacheRepository) Set(ctx context.Context, user *models.UserDB) error {
	key := userKey(user.ID)

	data, err := json.Marshal(cachedUser{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Country:   user.Country,
		Hobby:     user.Hobby,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
