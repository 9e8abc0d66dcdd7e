package prefs

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

const themeKey = "storefront:theme"

// RedisThemeStore persists the theme preference in Redis. Errors are logged
// and swallowed; a missing or unreachable Redis only costs the saved
// preference, never correctness.
type RedisThemeStore struct {
	rdb *redis.Client
	ctx context.Context
}

// NewRedisThemeStore creates a store over the given client.
func NewRedisThemeStore(rdb *redis.Client, ctx context.Context) *RedisThemeStore {
	return &RedisThemeStore{rdb: rdb, ctx: ctx}
}

func (s *RedisThemeStore) Load() (string, bool) {
	val, err := s.rdb.Get(s.ctx, themeKey).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Printf("theme load failed: %v", err)
		return "", false
	}
	return val, val == ThemeDark || val == ThemeLight
}

func (s *RedisThemeStore) Save(theme string) {
	if err := s.rdb.Set(s.ctx, themeKey, theme, 0).Err(); err != nil {
		log.Printf("theme save failed: %v", err)
	}
}
