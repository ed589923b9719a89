package characters

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
	"github.com/KirkDiggler/character-validator/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the character repository.
// Documents are kept encoded so callers never share grant slices with the store.
type InMemoryRepository struct {
	mu            sync.RWMutex
	characters    map[string][]byte
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		characters:    make(map[string][]byte),
		uuidGenerator: uuid.NewGoogleUUIDGenerator(),
	}
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, character *assets.Character) error {
	if err := validateCharacter(character); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if character.Metadata.ID == "" {
		character.Metadata.ID = r.uuidGenerator.New()
	}
	id := character.Metadata.ID

	if _, exists := r.characters[id]; exists {
		return dnderr.AlreadyExistsf("character with ID '%s' already exists", id).
			WithMeta("character_id", id)
	}

	data, err := marshalCharacter(character)
	if err != nil {
		return err
	}
	r.characters[id] = data

	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*assets.Character, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.characters[id]
	if !exists {
		return nil, dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return unmarshalCharacter(data)
}

// List retrieves every character ordered by id
func (r *InMemoryRepository) List(ctx context.Context) ([]*assets.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.characters))
	for id := range r.characters {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	result := make([]*assets.Character, 0, len(ids))
	for _, id := range ids {
		character, err := unmarshalCharacter(r.characters[id])
		if err != nil {
			return nil, err
		}
		result = append(result, character)
	}

	return result, nil
}

// Update replaces an existing character
func (r *InMemoryRepository) Update(ctx context.Context, character *assets.Character) error {
	if err := validateCharacter(character); err != nil {
		return err
	}

	id := character.Metadata.ID
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	data, err := marshalCharacter(character)
	if err != nil {
		return err
	}
	r.characters[id] = data

	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("character ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return dnderr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.characters, id)
	return nil
}
