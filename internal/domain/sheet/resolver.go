package sheet

//go:generate mockgen -destination=mock/mock_resolver.go -package=mocksheet . AssetResolver

import (
	"context"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
)

// AssetResolver resolves an asset type and id to its full definition.
// Implementations may do file or network I/O; retries, caching and timeouts
// are theirs to handle.
type AssetResolver interface {
	FetchAssetDefinition(ctx context.Context, assetType assets.AssetType, id string) (*assets.Asset, error)
}

// ResolverFunc adapts a function to AssetResolver
type ResolverFunc func(ctx context.Context, assetType assets.AssetType, id string) (*assets.Asset, error)

// FetchAssetDefinition calls f
func (f ResolverFunc) FetchAssetDefinition(ctx context.Context, assetType assets.AssetType, id string) (*assets.Asset, error) {
	return f(ctx, assetType, id)
}
