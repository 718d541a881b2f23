package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

// Cache is a Redis-backed response cache. Repeat queries inside the TTL
// skip the upstream source call entirely, which keeps a busy instance
// inside the NewsAPI rate limit.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// Config holds Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// New creates a cache over the given Redis instance.
func New(cfg Config) *Cache {
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Cache{client: client, ttl: cfg.TTL}
}

// NewFromEnv creates a cache from REDIS_ADDR, REDIS_PASS, REDIS_DB and
// CACHE_TTL_SECONDS. Returns nil when REDIS_ADDR is unset; a nil *Cache
// is safe to use and behaves as a no-op.
func NewFromEnv() *Cache {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil
	}

	cfg := Config{Addr: addr, Password: os.Getenv("REDIS_PASS")}
	if db := os.Getenv("REDIS_DB"); db != "" {
		if n, err := strconv.Atoi(db); err == nil {
			cfg.DB = n
		}
	}
	if secs := os.Getenv("CACHE_TTL_SECONDS"); secs != "" {
		if n, err := strconv.Atoi(secs); err == nil && n > 0 {
			cfg.TTL = time.Duration(n) * time.Second
		}
	}
	return New(cfg)
}

// Key derives a stable cache key from the request parameters.
func Key(keyword string, maxArticles int) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s|%d", keyword, maxArticles)))
	return "news:response:" + hex.EncodeToString(hash[:])[:16]
}

// Get returns the cached payload for the key, if present.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("Warning: cache read failed: %v", err)
		return nil, false
	}
	return data, true
}

// Set stores a payload under the key with the configured TTL. Failures
// are logged and swallowed; caching is best-effort.
func (c *Cache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Printf("Warning: cache write failed: %v", err)
	}
}

// Close releases the underlying Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
