package assets

import (
	"strings"

	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
)

// Ability is one of the six ability names
type Ability string

// AllAbilities lists every valid Ability in sheet order
var AllAbilities = []Ability{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

const (
	AbilityNone         Ability = ""
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// ParseAbility converts a document ability name into an Ability.
// Names outside the six abilities are malformed input.
func ParseAbility(name string) (Ability, error) {
	a := Ability(strings.ToLower(strings.TrimSpace(name)))
	if !a.Valid() {
		return AbilityNone, dnderr.MalformedInputf("unknown ability %q", name).
			WithMeta("ability", name)
	}
	return a, nil
}

// Valid reports whether a is one of the six abilities
func (a Ability) Valid() bool {
	switch a {
	case AbilityStrength, AbilityDexterity, AbilityConstitution,
		AbilityIntelligence, AbilityWisdom, AbilityCharisma:
		return true
	}
	return false
}

// Short returns the three letter abbreviation used on printed sheets
func (a Ability) Short() string {
	if !a.Valid() {
		return ""
	}
	return strings.ToUpper(string(a)[:3])
}

// Abilities holds a character's base ability scores
type Abilities struct {
	Strength     int `json:"strength" yaml:"strength"`
	Dexterity    int `json:"dexterity" yaml:"dexterity"`
	Constitution int `json:"constitution" yaml:"constitution"`
	Intelligence int `json:"intelligence" yaml:"intelligence"`
	Wisdom       int `json:"wisdom" yaml:"wisdom"`
	Charisma     int `json:"charisma" yaml:"charisma"`
}

// Score returns the base score for a. The bool is false for an invalid Ability.
func (a Abilities) Score(ability Ability) (int, bool) {
	switch ability {
	case AbilityStrength:
		return a.Strength, true
	case AbilityDexterity:
		return a.Dexterity, true
	case AbilityConstitution:
		return a.Constitution, true
	case AbilityIntelligence:
		return a.Intelligence, true
	case AbilityWisdom:
		return a.Wisdom, true
	case AbilityCharisma:
		return a.Charisma, true
	}
	return 0, false
}
