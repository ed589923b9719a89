package sheet

import (
	"fmt"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
)

// AbilityRoll is a base score plus the modifiers granted on top of it
type AbilityRoll struct {
	Base int `json:"base" yaml:"base"`
	Mods int `json:"mods" yaml:"mods"`
}

// Total is the final ability score
func (r AbilityRoll) Total() int {
	return r.Base + r.Mods
}

// Modifier is the bonus derived from the total score.
// Integer division truncates toward zero, so a total of 7 gives -1, not -2.
func (r AbilityRoll) Modifier() int {
	return modifierFor(r.Total())
}

func (r AbilityRoll) String() string {
	return fmt.Sprintf("%d (%+d)", r.Total(), r.Modifier())
}

func modifierFor(total int) int {
	return (total - 10) / 2
}

// AbilityScores holds one AbilityRoll per ability
type AbilityScores struct {
	Strength     AbilityRoll `json:"strength" yaml:"strength"`
	Dexterity    AbilityRoll `json:"dexterity" yaml:"dexterity"`
	Constitution AbilityRoll `json:"constitution" yaml:"constitution"`
	Intelligence AbilityRoll `json:"intelligence" yaml:"intelligence"`
	Wisdom       AbilityRoll `json:"wisdom" yaml:"wisdom"`
	Charisma     AbilityRoll `json:"charisma" yaml:"charisma"`
}

// NewAbilityScores seeds scores from base abilities with no modifiers
func NewAbilityScores(base assets.Abilities) AbilityScores {
	var scores AbilityScores
	for _, ability := range assets.AllAbilities {
		score, _ := base.Score(ability)
		scores.roll(ability).Base = score
	}
	return scores
}

func (s *AbilityScores) roll(ability assets.Ability) *AbilityRoll {
	switch ability {
	case assets.AbilityStrength:
		return &s.Strength
	case assets.AbilityDexterity:
		return &s.Dexterity
	case assets.AbilityConstitution:
		return &s.Constitution
	case assets.AbilityIntelligence:
		return &s.Intelligence
	case assets.AbilityWisdom:
		return &s.Wisdom
	case assets.AbilityCharisma:
		return &s.Charisma
	}
	return nil
}

// Get returns the roll for ability. The bool is false for an invalid Ability.
func (s AbilityScores) Get(ability assets.Ability) (AbilityRoll, bool) {
	r := s.roll(ability)
	if r == nil {
		return AbilityRoll{}, false
	}
	return *r, true
}

// AddToMod adds v to the modifiers of ability.
// An invalid ability changes nothing and returns false.
func (s *AbilityScores) AddToMod(ability assets.Ability, v int) bool {
	r := s.roll(ability)
	if r == nil {
		return false
	}
	r.Mods += v
	return true
}
