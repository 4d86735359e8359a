// Package cache stores lookup results in Redis so repeated clicks on the
// same word in the same sentence skip the model call.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mwhite7112/webreader/internal/lookup"
)

const keyPrefix = "webreader:lookup:"

// RedisCache implements the lookup result cache on top of go-redis.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCache parses url, connects and pings the server.
func NewRedisCache(ctx context.Context, url string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisCache{rdb: rdb, ttl: ttl}, nil
}

// Key derives the cache key for a lookup. The word is matched
// case-insensitively by the sentence extractor, so it is folded here too.
func Key(word, sentence, language string) string {
	h := sha256.New()
	for _, part := range []string{strings.ToLower(word), sentence, strings.ToLower(language)} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached result and whether it was present.
func (c *RedisCache) Get(ctx context.Context, key string) (lookup.Result, bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return lookup.Result{}, false, nil
	}
	if err != nil {
		return lookup.Result{}, false, fmt.Errorf("redis get: %w", err)
	}

	var res lookup.Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return lookup.Result{}, false, fmt.Errorf("decode cached result: %w", err)
	}
	if res.Synonyms == nil {
		res.Synonyms = []string{}
	}
	return res, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, res lookup.Result) error {
	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisCache) Close() error {
	return c.rdb.Close()
}
