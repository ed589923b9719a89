package resolvers

import (
	"context"
	"sync"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
)

type assetKey struct {
	assetType assets.AssetType
	id        string
}

type InMemoryConfig struct {
	Assets []*assets.Asset

	// Echo answers every miss with a metadata only asset whose id is the
	// requested id
	Echo bool
}

// InMemory resolves assets from a map
type InMemory struct {
	mu     sync.RWMutex
	assets map[assetKey]*assets.Asset
	echo   bool
}

func NewInMemory(cfg *InMemoryConfig) *InMemory {
	if cfg == nil {
		cfg = &InMemoryConfig{}
	}

	r := &InMemory{
		assets: make(map[assetKey]*assets.Asset, len(cfg.Assets)),
		echo:   cfg.Echo,
	}

	for _, asset := range cfg.Assets {
		r.Put(asset)
	}

	return r
}

// NewEcho returns a resolver that knows nothing and echoes every request
func NewEcho() *InMemory {
	return NewInMemory(&InMemoryConfig{Echo: true})
}

// Put adds or replaces an asset
func (r *InMemory) Put(asset *assets.Asset) {
	if asset == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.assets[assetKey{assetType: asset.Type, id: asset.Metadata.ID}] = asset
}

func (r *InMemory) FetchAssetDefinition(ctx context.Context, assetType assets.AssetType, id string) (*assets.Asset, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("asset ID is required")
	}

	r.mu.RLock()
	asset, ok := r.assets[assetKey{assetType: assetType, id: id}]
	r.mu.RUnlock()

	if ok {
		return asset, nil
	}

	if r.echo {
		return assets.NewMetadataAsset(assetType, assets.MetaData{ID: id}), nil
	}

	return nil, notFound(assetType, id)
}

func notFound(assetType assets.AssetType, id string) *dnderr.Error {
	return dnderr.NotFoundf("%s '%s' not found", assetType, id).
		WithMeta("asset_type", string(assetType)).
		WithMeta("asset_id", id)
}
