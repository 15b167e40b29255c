package refcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Cache TTL-кэш справочных данных поверх redis, значения хранятся как JSON
// Ошибка кэша для вызывающего неотличима от промаха
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log Logger
}

// New создает новый кэш справочников
func New(rdb *redis.Client, ttl time.Duration, log Logger) *Cache {
	return &Cache{
		rdb: rdb,
		ttl: ttl,
		log: log,
	}
}

// Get читает значение по ключу и декодирует его в dest
// Возвращает false при промахе или любой ошибке кэша
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("refcache: failed to get key=%s: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		c.log.Warn("refcache: failed to unmarshal key=%s: %v", key, err)
		return false
	}

	return true
}

// Set сохраняет значение по ключу с TTL, best-effort
func (c *Cache) Set(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("refcache: failed to marshal key=%s: %v", key, err)
		return
	}

	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("refcache: failed to set key=%s: %v", key, err)
	}
}

// Key собирает ключ кэша из частей
func Key(parts ...interface{}) string {
	key := "refdata"
	for _, part := range parts {
		key += fmt.Sprintf(":%v", part)
	}
	return key
}
