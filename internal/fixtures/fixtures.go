// Package fixtures holds sample character documents shared by the CLI and tests
package fixtures

import (
	"github.com/KirkDiggler/character-validator/internal/domain/assets"
)

// ElfFighter is a level 1 elf fighter. Its derived sheet has armor class 16,
// size medium, common and elvish, and the perception proficiency.
func ElfFighter() *assets.Character {
	notes := "yall are sick"
	return &assets.Character{
		Metadata: assets.MetaData{
			ID:    "uuid-lmao-lol",
			Name:  "foobar",
			Notes: &notes,
		},
		Spec: assets.CharacterSpec{
			Abilities: assets.Abilities{
				Strength:     9,
				Dexterity:    20,
				Constitution: 11,
				Intelligence: 11,
				Wisdom:       10,
				Charisma:     13,
			},
			Assets: assets.CharacterAssets{
				Class: assets.SingleClass(assets.CharacterClass{
					ID:    "fighter",
					Level: 1,
					Grants: assets.Grants{
						assets.AbilityImprovement{
							Ability: assets.AbilityStrength,
							Second:  assets.AbilityDexterity,
						},
						assets.Feat{
							ID: "this feat",
							Grants: assets.Grants{
								assets.AbilityScore{ID: assets.AbilityConstitution, Add: 1},
							},
						},
					},
				}),
				Race: ElfRace(),
			},
		},
	}
}

// ElfRace is the race used by ElfFighter
func ElfRace() assets.CharacterRace {
	return assets.CharacterRace{
		ID: "elf",
		Grants: assets.Grants{
			assets.Size{ID: "medium"},
			assets.AbilityScore{ID: assets.AbilityDexterity, Add: 2},
			assets.Language{ID: "common"},
			assets.Language{ID: "elvish"},
			assets.Trait{
				ID: "keen-senses",
				Grants: assets.Grants{
					assets.Proficiency{ID: "perception"},
				},
			},
		},
	}
}

// MulticlassCharacter is a fighter 2 / paladin 1 with an elf race.
// Its level is 3.
func MulticlassCharacter() *assets.Character {
	c := ElfFighter()
	c.Metadata.ID = "multiclass-test"
	c.Spec.Assets.Class = assets.MultiClass(
		assets.CharacterClass{
			ID:    "fighter",
			Level: 2,
			Grants: assets.Grants{
				assets.AbilityImprovement{Ability: assets.AbilityStrength, Second: assets.AbilityDexterity},
			},
		},
		assets.CharacterClass{
			ID:         "paladin",
			Level:      1,
			Multiclass: true,
			Grants: assets.Grants{
				assets.SubClass{
					ID: "oath-of-devotion",
					Grants: assets.Grants{
						assets.Feature{ID: "sacred-weapon"},
						assets.Proficiency{ID: "religion"},
					},
				},
			},
		},
	)
	return c
}

// ProficiencyMetadata is what a resolver is expected to return for id
func ProficiencyMetadata(id string) assets.MetaData {
	return assets.MetaData{ID: id}
}
