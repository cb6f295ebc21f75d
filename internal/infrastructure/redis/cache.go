// Package redis holds Redis-backed caches for listing read models.
package redis

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/sngm3741/property-match-services/api/internal/search/domain"
)

const mostSearchedPrefix = "properties:most-searched"

// PropertyCache は人気物件ランキングを JSON で Redis に保持する。TTL 経過で自然失効させる。
type PropertyCache struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewPropertyCache returns a cache bound to client. A non-positive ttl defaults to one minute.
func NewPropertyCache(client *goredis.Client, ttl time.Duration) *PropertyCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &PropertyCache{client: client, ttl: ttl}
}

// GetMostSearched reports ok=false on a miss.
func (c *PropertyCache) GetMostSearched(ctx context.Context, limit int) ([]domain.Property, bool, error) {
	var properties []domain.Property
	ok, err := c.getCached(ctx, MostSearchedKey(limit), &properties)
	if err != nil || !ok {
		return nil, false, err
	}
	return properties, true, nil
}

func (c *PropertyCache) SetMostSearched(ctx context.Context, limit int, properties []domain.Property) error {
	if properties == nil {
		properties = []domain.Property{}
	}
	return c.setCached(ctx, MostSearchedKey(limit), properties)
}

// Ping reports whether Redis is reachable.
func (c *PropertyCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *PropertyCache) getCached(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, dest)
}

func (c *PropertyCache) setCached(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// MostSearchedKey builds the cache key for a ranking of the given size.
func MostSearchedKey(limit int) string {
	return QueryKey(mostSearchedPrefix, map[string]string{"limit": strconv.Itoa(limit)})
}

// QueryKey はパラメータをキー順に連結して md5 を取り、prefix と組み合わせたキーを返す。
func QueryKey(prefix string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(params[k])
	}

	hash := md5.Sum([]byte(builder.String()))
	return prefix + ":" + hex.EncodeToString(hash[:])
}
