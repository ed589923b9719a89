package resolvers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/character-validator/internal"
	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	"github.com/KirkDiggler/character-validator/internal/domain/sheet"
	"github.com/redis/go-redis/v9"
)

// DefaultCacheTTL is used when CacheConfig.TTL is zero
const DefaultCacheTTL = 24 * time.Hour

type CacheConfig struct {
	Client redis.UniversalClient
	Next   sheet.AssetResolver
	TTL    time.Duration
}

// Cache keeps resolved assets in Redis in front of another resolver.
// Redis failures are logged and fall through to the wrapped resolver; only
// the wrapped resolver's errors are returned.
type Cache struct {
	client redis.UniversalClient
	next   sheet.AssetResolver
	ttl    time.Duration
}

func NewCache(cfg *CacheConfig) (*Cache, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("CacheConfig")
	}

	if cfg.Client == nil {
		return nil, internal.NewMissingParamError("CacheConfig.Client")
	}

	if cfg.Next == nil {
		return nil, internal.NewMissingParamError("CacheConfig.Next")
	}

	if cfg.TTL < 0 {
		return nil, internal.NewInvalidParamError("CacheConfig.TTL must not be negative")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}

	return &Cache{
		client: cfg.Client,
		next:   cfg.Next,
		ttl:    ttl,
	}, nil
}

func (c *Cache) key(assetType assets.AssetType, id string) string {
	return fmt.Sprintf("asset:%s:%s", assetType, id)
}

func (c *Cache) FetchAssetDefinition(ctx context.Context, assetType assets.AssetType, id string) (*assets.Asset, error) {
	key := c.key(assetType, id)

	if asset, ok := c.lookup(ctx, key); ok {
		return asset, nil
	}

	asset, err := c.next.FetchAssetDefinition(ctx, assetType, id)
	if err != nil {
		return nil, err
	}

	c.store(ctx, key, asset)

	return asset, nil
}

func (c *Cache) lookup(ctx context.Context, key string) (*assets.Asset, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("asset cache: failed to read %s: %v", key, err)
		return nil, false
	}

	var asset assets.Asset
	if err := json.Unmarshal(data, &asset); err != nil {
		log.Printf("asset cache: dropping unreadable entry %s: %v", key, err)
		return nil, false
	}

	return &asset, true
}

func (c *Cache) store(ctx context.Context, key string, asset *assets.Asset) {
	if asset == nil {
		return
	}

	data, err := json.Marshal(asset)
	if err != nil {
		log.Printf("asset cache: failed to encode %s: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, string(data), c.ttl).Err(); err != nil {
		log.Printf("asset cache: failed to write %s: %v", key, err)
	}
}
