package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"trivia-api/internal/cache"
	"trivia-api/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

var errRedisDown = errors.New("connection refused")

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()
	key := cache.CategoryMapKey

	t.Run("hit", func(t *testing.T) {
		mock.ExpectGet(key).SetVal(`{"1":"Science"}`)
		val, err := adapter.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, `{"1":"Science"}`, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(redis.Nil)
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error", func(t *testing.T) {
		mock.ExpectGet(key).SetErr(errRedisDown)
		_, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, errRedisDown)
		assert.NotErrorIs(t, err, domain.ErrCacheMiss)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()
	ttl := 5 * time.Minute

	mock.ExpectSet(cache.DrinksShortKey, "[]", ttl).SetVal("OK")
	assert.NoError(t, adapter.Set(ctx, cache.DrinksShortKey, "[]", ttl))

	mock.ExpectSet(cache.DrinksShortKey, "[]", ttl).SetErr(errRedisDown)
	assert.ErrorIs(t, adapter.Set(ctx, cache.DrinksShortKey, "[]", ttl), errRedisDown)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	t.Run("several keys", func(t *testing.T) {
		mock.ExpectDel(cache.DrinksShortKey, cache.DrinksDetailKey).SetVal(2)
		assert.NoError(t, adapter.Delete(ctx, cache.DrinksShortKey, cache.DrinksDetailKey))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent key", func(t *testing.T) {
		mock.ExpectDel(cache.CategoryMapKey).SetVal(0)
		assert.NoError(t, adapter.Delete(ctx, cache.CategoryMapKey))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no keys", func(t *testing.T) {
		assert.NoError(t, adapter.Delete(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error", func(t *testing.T) {
		mock.ExpectDel(cache.CategoryMapKey).SetErr(errRedisDown)
		assert.ErrorIs(t, adapter.Delete(ctx, cache.CategoryMapKey), errRedisDown)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, adapter.Ping(context.Background()))

	mock.ExpectPing().SetErr(errRedisDown)
	assert.ErrorIs(t, adapter.Ping(context.Background()), errRedisDown)

	assert.NoError(t, mock.ExpectationsWereMet())
}
