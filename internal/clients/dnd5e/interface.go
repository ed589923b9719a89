package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

import (
	"context"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
)

// Client looks up rules content from the dnd5e api and returns it as assets
type Client interface {
	GetProficiency(ctx context.Context, key string) (*assets.Asset, error)
	GetClass(ctx context.Context, key string) (*assets.Asset, error)
	GetRace(ctx context.Context, key string) (*assets.Asset, error)
}
