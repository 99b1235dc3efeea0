package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/neko-list/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func TestUserCacheRepository_SetGet(t *testing.T) {
	mr, client := setupRedis(t)
	repo := NewUserCacheRepository(client, time.Minute)
	ctx := context.Background()

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	user := &models.UserDB{
		ID:           9,
		Name:         "Taro",
		Email:        "taro@example.com",
		PasswordHash: "digest",
		Country:      strPtr("Japan"),
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	require.NoError(t, repo.Set(ctx, user))

	raw, err := mr.Get("user:9")
	require.NoError(t, err)
	assert.NotContains(t, raw, "digest")
	assert.Equal(t, time.Minute, mr.TTL("user:9"))

	got, err := repo.Get(ctx, 9)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, "Taro", got.Name)
	assert.Equal(t, "Japan", *got.Country)
	assert.True(t, created.Equal(got.CreatedAt))
	assert.Empty(t, got.PasswordHash)
}

func TestUserCacheRepository_Miss(t *testing.T) {
	_, client := setupRedis(t)
	repo := NewUserCacheRepository(client, time.Minute)

	got, err := repo.Get(context.Background(), 1)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserCacheRepository_Expired(t *testing.T) {
	mr, client := setupRedis(t)
	repo := NewUserCacheRepository(client, time.Second)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, &models.UserDB{ID: 2, Name: "Hana"}))
	mr.FastForward(2 * time.Second)

	got, err := repo.Get(ctx, 2)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserCacheRepository_CorruptValue(t *testing.T) {
	mr, client := setupRedis(t)
	repo := NewUserCacheRepository(client, time.Minute)

	require.NoError(t, mr.Set("user:3", "not-json"))

	got, err := repo.Get(context.Background(), 3)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestUserCacheRepository_ServerDown(t *testing.T) {
	mr, client := setupRedis(t)
	repo := NewUserCacheRepository(client, time.Minute)
	mr.Close()

	got, err := repo.Get(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, got)
}
