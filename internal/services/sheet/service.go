package sheet

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	domainsheet "github.com/KirkDiggler/character-validator/internal/domain/sheet"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
	"github.com/KirkDiggler/character-validator/internal/repositories/characters"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentDerivations bounds DeriveSheets fan-out
const maxConcurrentDerivations = 8

// Service derives character sheets for documents and stored characters
type Service interface {
	// DeriveSheet derives a sheet for a character document
	DeriveSheet(ctx context.Context, character *assets.Character) (*domainsheet.CharacterSheet, error)

	// DeriveSheetByID loads a stored character and derives its sheet
	DeriveSheetByID(ctx context.Context, id string) (*domainsheet.CharacterSheet, error)

	// DeriveSheets derives sheets for several stored characters, in the order of ids
	DeriveSheets(ctx context.Context, ids []string) ([]*domainsheet.CharacterSheet, error)

	// ImportCharacter stores a character document, assigning an id when it has none
	ImportCharacter(ctx context.Context, character *assets.Character) (*assets.Character, error)
}

// ServiceConfig holds dependencies for the sheet service
type ServiceConfig struct {
	Repository      characters.Repository
	Resolver        domainsheet.AssetResolver
	StrictAbilities bool
}

type service struct {
	repository characters.Repository
	builder    *domainsheet.Builder
}

// NewService creates a new sheet service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	builder, err := domainsheet.NewBuilder(&domainsheet.BuilderConfig{
		Resolver:        cfg.Resolver,
		StrictAbilities: cfg.StrictAbilities,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to create sheet builder: %v", err))
	}

	return &service{
		repository: cfg.Repository,
		builder:    builder,
	}
}

func (s *service) DeriveSheet(ctx context.Context, character *assets.Character) (*domainsheet.CharacterSheet, error) {
	if character == nil {
		return nil, dnderr.InvalidArgument("character is required")
	}

	return s.builder.Derive(ctx, character)
}

func (s *service) DeriveSheetByID(ctx context.Context, id string) (*domainsheet.CharacterSheet, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("character ID is required")
	}

	character, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, dnderr.Wrap(err, "failed to load character").
			WithMeta("character_id", id)
	}

	return s.builder.Derive(ctx, character)
}

// DeriveSheets stops at the first failure; each derivation runs on its own
// accumulator so only the resolver is shared between goroutines.
func (s *service) DeriveSheets(ctx context.Context, ids []string) ([]*domainsheet.CharacterSheet, error) {
	sheets := make([]*domainsheet.CharacterSheet, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDerivations)

	for i, id := range ids {
		g.Go(func() error {
			result, err := s.DeriveSheetByID(gctx, id)
			if err != nil {
				return dnderr.Wrapf(err, "failed to derive sheet %d of %d", i+1, len(ids))
			}
			sheets[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sheets, nil
}

func (s *service) ImportCharacter(ctx context.Context, character *assets.Character) (*assets.Character, error) {
	if character == nil {
		return nil, dnderr.InvalidArgument("character is required")
	}

	if err := s.repository.Create(ctx, character); err != nil {
		return nil, dnderr.Wrap(err, "failed to import character").
			WithMeta("character_id", character.Metadata.ID)
	}

	return character, nil
}
