package resolvers

import (
	"context"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	"github.com/KirkDiggler/character-validator/internal/domain/sheet"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
)

// Chain asks each resolver in turn. Only a not found error moves on to the
// next one; any other error stops the lookup.
type Chain struct {
	resolvers []sheet.AssetResolver
}

func NewChain(resolvers ...sheet.AssetResolver) *Chain {
	chain := &Chain{}
	for _, r := range resolvers {
		if r != nil {
			chain.resolvers = append(chain.resolvers, r)
		}
	}
	return chain
}

// Len is the number of resolvers in the chain
func (c *Chain) Len() int {
	return len(c.resolvers)
}

func (c *Chain) FetchAssetDefinition(ctx context.Context, assetType assets.AssetType, id string) (*assets.Asset, error) {
	for _, r := range c.resolvers {
		asset, err := r.FetchAssetDefinition(ctx, assetType, id)
		if err == nil {
			return asset, nil
		}

		if !dnderr.IsNotFound(err) {
			return nil, err
		}
	}

	return nil, notFound(assetType, id).WithMeta("resolvers", len(c.resolvers))
}
