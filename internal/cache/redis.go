package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"nba_dfs/maintenance/internal/metrics"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cache keys for reference datasets.
const (
	keyNamePairs    = "refdata:name_pairs"
	keyKnownMissing = "refdata:known_missing"
)

// Config holds Redis connection configuration
type Config struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisCache caches reference datasets between integrity sessions so
// repeated runs do not reload them from Postgres.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(cfg Config) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Info().
		Str("addr", client.Options().Addr).
		Msg("Connected to Redis")

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = time.Hour
	}
	return &RedisCache{client: client, ttl: ttl}, nil
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetNamePairs returns the cached conversion pairs, or ok=false on a miss.
func (c *RedisCache) GetNamePairs(ctx context.Context) (map[string]string, bool) {
	var pairs map[string]string
	if !c.getJSON(ctx, keyNamePairs, &pairs) {
		return nil, false
	}
	return pairs, true
}

// SetNamePairs caches the conversion pairs for the configured TTL.
func (c *RedisCache) SetNamePairs(ctx context.Context, pairs map[string]string) {
	c.setJSON(ctx, keyNamePairs, pairs)
}

// GetKnownMissing returns the cached known-missing names, or ok=false on
// a miss.
func (c *RedisCache) GetKnownMissing(ctx context.Context) ([]string, bool) {
	var missing []string
	if !c.getJSON(ctx, keyKnownMissing, &missing) {
		return nil, false
	}
	return missing, true
}

// SetKnownMissing caches the known-missing names for the configured TTL.
func (c *RedisCache) SetKnownMissing(ctx context.Context, missing []string) {
	c.setJSON(ctx, keyKnownMissing, missing)
}

func (c *RedisCache) getJSON(ctx context.Context, key string, dest interface{}) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		metrics.CacheMissesTotal.Inc()
		return false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache read failed")
		metrics.CacheMissesTotal.Inc()
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache entry corrupt, ignoring")
		metrics.CacheMissesTotal.Inc()
		return false
	}
	metrics.CacheHitsTotal.Inc()
	return true
}

func (c *RedisCache) setJSON(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache encode failed")
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Cache write failed")
	}
}
