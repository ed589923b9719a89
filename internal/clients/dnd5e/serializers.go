package dnd5e

import (
	"log"
	"strings"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
)

const (
	ExtraProficiencyType = "proficiency_type"
	ExtraSpeed           = "speed"
	ExtraAbilityBonuses  = "ability_bonuses"
	ExtraSource          = "source"

	sourceName = "dnd5e-api"
)

func apiProficiencyToAsset(input *apiEntities.Proficiency) *assets.Asset {
	return assets.NewMetadataAsset(assets.AssetTypeProficiency, assets.MetaData{
		ID:   input.Key,
		Name: input.Name,
		Extra: map[string]any{
			ExtraProficiencyType: apiProficiencyTypeToString(input.Type),
			ExtraSource:          sourceName,
		},
	})
}

func apiProficiencyTypeToString(input apiEntities.ProficiencyType) string {
	switch input {
	case apiEntities.ProficiencyTypeArmor:
		return "armor"
	case apiEntities.ProficiencyTypeWeapon:
		return "weapon"
	case apiEntities.ProficiencyTypeTool:
		return "tool"
	case apiEntities.ProficiencyTypeSavingThrow:
		return "saving-throw"
	case apiEntities.ProficiencyTypeSkill:
		return "skill"
	case apiEntities.ProficiencyTypeInstrument:
		return "instrument"
	default:
		return "unknown"
	}
}

func apiClassToAsset(input *apiEntities.Class) (*assets.Asset, error) {
	die, ok := assets.DieForSides(input.HitDie)
	if !ok {
		return nil, dnderr.Internalf("class '%s' has unsupported hit die %d", input.Key, input.HitDie).
			WithMeta("key", input.Key)
	}

	spec := &assets.ClassSpec{
		Set:    assets.ClassSetter{HitDice: die},
		Grant:  apiReferenceItemsToProficiencies(input.Proficiencies),
		Select: apiChoicesToSelects(input.Key, input.ProficiencyChoices),
	}

	asset := assets.NewMetadataAsset(assets.AssetTypeClass, assets.MetaData{
		ID:    input.Key,
		Name:  input.Name,
		Extra: map[string]any{ExtraSource: sourceName},
	})
	asset.Class = spec

	return asset, nil
}

func apiReferenceItemsToProficiencies(input []*apiEntities.ReferenceItem) assets.Grants {
	output := make(assets.Grants, 0, len(input))
	for _, item := range input {
		if item == nil || item.Key == "" {
			continue
		}
		output = append(output, assets.Proficiency{ID: item.Key})
	}

	return output
}

func apiChoicesToSelects(classKey string, input []*apiEntities.ChoiceOption) []assets.ClassSelect {
	output := make([]assets.ClassSelect, 0, len(input))
	for _, choice := range input {
		variant := apiChoiceOptionToSelectVariant(choice)
		if variant == nil {
			continue
		}

		if variant.Number > len(variant.ID) {
			// nested choices are flattened away; what is left cannot satisfy the count
			log.Printf("dnd5e: skipping proficiency choice %q for class %s: choose %d of %d",
				variant.Name, classKey, variant.Number, len(variant.ID))
			continue
		}

		output = append(output, assets.ClassSelect{Proficiency: variant})
	}

	return output
}

func apiChoiceOptionToSelectVariant(input *apiEntities.ChoiceOption) *assets.SelectVariant {
	if input == nil || input.OptionList == nil {
		return nil
	}

	if input.ChoiceType != "proficiencies" {
		return nil
	}

	ids := make([]string, 0, len(input.OptionList.Options))
	for _, option := range input.OptionList.Options {
		if option == nil || option.GetOptionType() != apiEntities.OptionTypeReference {
			continue
		}

		item, ok := option.(*apiEntities.ReferenceOption)
		if !ok || item.Reference == nil {
			continue
		}

		ids = append(ids, item.Reference.Key)
	}

	if len(ids) == 0 {
		return nil
	}

	return &assets.SelectVariant{
		Name:   input.Description,
		Number: input.ChoiceCount,
		ID:     ids,
	}
}

func apiRaceToAsset(input *apiEntities.Race) *assets.Asset {
	extra := map[string]any{
		ExtraSpeed:  input.Speed,
		ExtraSource: sourceName,
	}

	if bonuses := apiAbilityBonusesToMap(input.AbilityBonuses); len(bonuses) > 0 {
		extra[ExtraAbilityBonuses] = bonuses
	}

	return assets.NewMetadataAsset(assets.AssetTypeRace, assets.MetaData{
		ID:    input.Key,
		Name:  input.Name,
		Extra: extra,
	})
}

// apiAbilityBonusesToMap keys bonuses by ability name, skipping any the
// api reports for abilities outside the six
func apiAbilityBonusesToMap(input []*apiEntities.AbilityBonus) map[string]any {
	output := make(map[string]any, len(input))
	for _, bonus := range input {
		if bonus == nil || bonus.AbilityScore == nil {
			continue
		}

		ability, ok := referenceKeyToAbility(bonus.AbilityScore.Key)
		if !ok {
			continue
		}

		output[string(ability)] = bonus.Bonus
	}

	return output
}

func referenceKeyToAbility(key string) (assets.Ability, bool) {
	switch strings.ToLower(key) {
	case "str":
		return assets.AbilityStrength, true
	case "dex":
		return assets.AbilityDexterity, true
	case "con":
		return assets.AbilityConstitution, true
	case "int":
		return assets.AbilityIntelligence, true
	case "wis":
		return assets.AbilityWisdom, true
	case "cha":
		return assets.AbilityCharisma, true
	}

	ability, err := assets.ParseAbility(key)
	if err != nil {
		return assets.AbilityNone, false
	}

	return ability, true
}
