package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
)

// Repository stores character documents
type Repository interface {
	// Create stores a new character, assigning an id when it has none
	Create(ctx context.Context, character *assets.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*assets.Character, error)

	// List retrieves every stored character ordered by id
	List(ctx context.Context) ([]*assets.Character, error)

	// Update replaces an existing character
	Update(ctx context.Context, character *assets.Character) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error
}
