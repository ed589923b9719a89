package sheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/character-validator/internal"
	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
)

// CharacterSheet is the derived, read-only view of a character
type CharacterSheet struct {
	Level         int               `json:"level" yaml:"level"`
	ArmorClass    int               `json:"armor_class" yaml:"armor_class"`
	Size          string            `json:"size" yaml:"size"`
	Languages     []string          `json:"languages" yaml:"languages"`
	AbilityScores AbilityScores     `json:"ability_scores" yaml:"ability_scores"`
	Proficiencies []assets.MetaData `json:"proficiencies" yaml:"proficiencies"`
}

// BaseArmorClass is the armor class before the dexterity modifier
const BaseArmorClass = 10

type BuilderConfig struct {
	Resolver AssetResolver

	// StrictAbilities turns a modifier aimed at an unknown ability into a
	// derivation error instead of a logged warning
	StrictAbilities bool
}

// Builder derives character sheets
type Builder struct {
	resolver AssetResolver
	strict   bool
}

func NewBuilder(cfg *BuilderConfig) (*Builder, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("BuilderConfig")
	}

	if cfg.Resolver == nil {
		return nil, internal.NewMissingParamError("BuilderConfig.Resolver")
	}

	return &Builder{
		resolver: cfg.Resolver,
		strict:   cfg.StrictAbilities,
	}, nil
}

// Derive computes a sheet with a non-strict builder around resolver
func Derive(ctx context.Context, character *assets.Character, resolver AssetResolver) (*CharacterSheet, error) {
	b := &Builder{resolver: resolver}
	return b.Derive(ctx, character)
}

// Derive flattens every grant of the character, folds them in order and
// computes the level and armor class. Any failure aborts the whole
// derivation; no partial sheet is returned.
func (b *Builder) Derive(ctx context.Context, character *assets.Character) (*CharacterSheet, error) {
	if character == nil {
		return nil, dnderr.InvalidArgument("character is required")
	}

	id := character.Metadata.ID
	acc := NewAccumulator(character.Spec.Abilities, b.resolver)

	for _, grant := range character.AllGrants() {
		if err := acc.Apply(ctx, grant); err != nil {
			return nil, dnderr.WrapWithCode(err, dnderr.CodeDerivation,
				fmt.Sprintf("failed to derive sheet for character '%s'", id)).
				WithMeta("character_id", id).
				WithMeta("grant_type", string(grant.GrantType())).
				WithMeta("grant_id", grant.GrantID())
		}
	}

	if b.strict && len(acc.Warnings()) > 0 {
		return nil, dnderr.Derivationf("character '%s' has modifiers for unknown abilities: %s",
			id, strings.Join(acc.Warnings(), "; ")).
			WithMeta("character_id", id)
	}

	scores := acc.Scores()

	return &CharacterSheet{
		Level:         character.Level(),
		ArmorClass:    BaseArmorClass + scores.Dexterity.Modifier(),
		Size:          acc.Size(),
		Languages:     acc.Languages(),
		AbilityScores: scores,
		Proficiencies: acc.Proficiencies(),
	}, nil
}
