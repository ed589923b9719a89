package resolvers

import (
	"context"

	"github.com/KirkDiggler/character-validator/internal"
	"github.com/KirkDiggler/character-validator/internal/clients/dnd5e"
	"github.com/KirkDiggler/character-validator/internal/domain/assets"
)

type APIConfig struct {
	Client dnd5e.Client
}

// API resolves proficiencies, classes and races from the dnd5e api.
// Other asset types are reported as not found.
type API struct {
	client dnd5e.Client
}

func NewAPI(cfg *APIConfig) (*API, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("APIConfig")
	}

	if cfg.Client == nil {
		return nil, internal.NewMissingParamError("APIConfig.Client")
	}

	return &API{client: cfg.Client}, nil
}

func (r *API) FetchAssetDefinition(ctx context.Context, assetType assets.AssetType, id string) (*assets.Asset, error) {
	switch assetType {
	case assets.AssetTypeProficiency:
		return r.client.GetProficiency(ctx, id)
	case assets.AssetTypeClass:
		return r.client.GetClass(ctx, id)
	case assets.AssetTypeRace:
		return r.client.GetRace(ctx, id)
	default:
		return nil, notFound(assetType, id)
	}
}
