package sheet

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
)

// Accumulator folds grants, one at a time, into the mutable parts of a sheet
type Accumulator struct {
	resolver      AssetResolver
	scores        AbilityScores
	size          string
	languages     []string
	proficiencies []assets.MetaData
	warnings      []string
}

// NewAccumulator starts from base abilities with zeroed modifiers, no size,
// no languages and no proficiencies
func NewAccumulator(base assets.Abilities, resolver AssetResolver) *Accumulator {
	return &Accumulator{
		resolver:      resolver,
		scores:        NewAbilityScores(base),
		languages:     []string{},
		proficiencies: []assets.MetaData{},
	}
}

// Apply folds a single grant. Composite grants are not expanded here,
// callers flatten first.
func (a *Accumulator) Apply(ctx context.Context, grant assets.Grant) error {
	switch g := grant.(type) {
	case assets.AbilityImprovement:
		if g.Second == assets.AbilityNone {
			a.addToMod(g.Ability, 2)
		} else {
			a.addToMod(g.Ability, 1)
			a.addToMod(g.Second, 1)
		}
	case assets.AbilityScore:
		a.addToMod(g.ID, g.Add)
	case assets.Size:
		// last one wins
		a.size = g.ID
	case assets.Language:
		a.languages = append(a.languages, g.ID)
	case assets.Proficiency:
		return a.resolveProficiency(ctx, g.ID)
	default:
		// features, spells, advantages and the composite containers
		// carry nothing onto the sheet
	}

	return nil
}

func (a *Accumulator) resolveProficiency(ctx context.Context, id string) error {
	if a.resolver == nil {
		return dnderr.AssetResolutionf("no asset resolver configured for proficiency '%s'", id).
			WithMeta("asset_id", id)
	}

	asset, err := a.resolver.FetchAssetDefinition(ctx, assets.AssetTypeProficiency, id)
	if err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeAssetResolution,
			fmt.Sprintf("failed to resolve proficiency '%s'", id)).
			WithMeta("asset_type", string(assets.AssetTypeProficiency)).
			WithMeta("asset_id", id)
	}

	if asset == nil {
		return dnderr.AssetResolutionf("resolver returned no asset for proficiency '%s'", id).
			WithMeta("asset_id", id)
	}

	if asset.Type != assets.AssetTypeProficiency {
		return dnderr.AssetResolutionf("resolver returned a %s asset for proficiency '%s'", asset.Type, id).
			WithMeta("asset_id", id).
			WithMeta("asset_type", string(asset.Type))
	}

	a.proficiencies = append(a.proficiencies, asset.Metadata)
	return nil
}

func (a *Accumulator) addToMod(ability assets.Ability, v int) {
	if a.scores.AddToMod(ability, v) {
		return
	}

	msg := fmt.Sprintf("ignoring modifier %+d for unknown ability %q", v, string(ability))
	log.Printf("WARN: %s", msg)
	a.warnings = append(a.warnings, msg)
}

// Scores returns the ability scores folded so far
func (a *Accumulator) Scores() AbilityScores {
	return a.scores
}

// Size returns the last size granted, empty if none
func (a *Accumulator) Size() string {
	return a.size
}

// Languages returns granted languages in grant order, duplicates kept
func (a *Accumulator) Languages() []string {
	return a.languages
}

// Proficiencies returns resolved proficiency metadata in grant order
func (a *Accumulator) Proficiencies() []assets.MetaData {
	return a.proficiencies
}

// Warnings lists modifiers that were dropped because the ability was unknown
func (a *Accumulator) Warnings() []string {
	return a.warnings
}
