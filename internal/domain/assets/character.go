package assets

import (
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
)

// Character is a character document: metadata plus the spec the sheet is
// derived from.
type Character struct {
	Metadata MetaData      `json:"metadata" yaml:"metadata"`
	Spec     CharacterSpec `json:"spec" yaml:"spec"`
}

// CharacterSpec holds the base abilities and the assets that grant everything else
type CharacterSpec struct {
	Abilities Abilities       `json:"abilities" yaml:"abilities"`
	Assets    CharacterAssets `json:"assets" yaml:",inline"`
}

// CharacterAssets are the class(es) and race of a character
type CharacterAssets struct {
	Class CharacterClassSpec `json:"class" yaml:"class"`
	Race  CharacterRace      `json:"race" yaml:"race"`
}

// CharacterClassSpec is either a single class or an ordered list of classes.
// Documents do not tag which one they hold; a mapping is Single and a
// sequence is Multi.
type CharacterClassSpec struct {
	Single *CharacterClass
	Multi  []CharacterClass
}

// SingleClass builds a spec for a single-class character
func SingleClass(class CharacterClass) CharacterClassSpec {
	return CharacterClassSpec{Single: &class}
}

// MultiClass builds a spec for a multiclassed character
func MultiClass(classes ...CharacterClass) CharacterClassSpec {
	return CharacterClassSpec{Multi: classes}
}

// IsMulti reports whether the spec holds a list of classes
func (s CharacterClassSpec) IsMulti() bool {
	return s.Single == nil
}

// Classes returns the classes in document order
func (s CharacterClassSpec) Classes() []CharacterClass {
	if s.Single != nil {
		return []CharacterClass{*s.Single}
	}
	return s.Multi
}

// CharacterClass is one of a character's classes
type CharacterClass struct {
	ID         string `json:"id" yaml:"id"`
	Level      int    `json:"level" yaml:"level"`
	Multiclass bool   `json:"multiclass,omitempty" yaml:"multiclass,omitempty"`
	Grants     Grants `json:"grants" yaml:"grants"`
}

// CharacterRace is a character's race
type CharacterRace struct {
	ID     string `json:"id" yaml:"id"`
	Grants Grants `json:"grants" yaml:"grants"`
}

// Validate checks the shape a derivation relies on: at least one class, and
// ids on every class and the race.
func (s *CharacterSpec) Validate() error {
	classes := s.Assets.Class.Classes()
	if len(classes) == 0 {
		return dnderr.MalformedInputf("character needs at least one class")
	}
	for i, class := range classes {
		if class.ID == "" {
			return dnderr.MalformedInputf("class %d is missing an id", i)
		}
	}
	if s.Assets.Race.ID == "" {
		return dnderr.MalformedInputf("race is missing an id")
	}
	return nil
}
