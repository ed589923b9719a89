package assets

import (
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
)

// Die is a hit die size
type Die string

const (
	DieD4  Die = "d4"
	DieD6  Die = "d6"
	DieD8  Die = "d8"
	DieD10 Die = "d10"
	DieD12 Die = "d12"
	DieD20 Die = "d20"
)

// Sides returns the number of faces, or 0 for an unknown die
func (d Die) Sides() int {
	switch d {
	case DieD4:
		return 4
	case DieD6:
		return 6
	case DieD8:
		return 8
	case DieD10:
		return 10
	case DieD12:
		return 12
	case DieD20:
		return 20
	}
	return 0
}

// DieForSides maps a number of faces back to a Die
func DieForSides(sides int) (Die, bool) {
	for _, d := range []Die{DieD4, DieD6, DieD8, DieD10, DieD12, DieD20} {
		if d.Sides() == sides {
			return d, true
		}
	}
	return "", false
}

// ClassSpec is the spec of a class asset
type ClassSpec struct {
	Set    ClassSetter   `json:"set" yaml:"set"`
	Grant  Grants        `json:"grant" yaml:"grant"`
	Select []ClassSelect `json:"select" yaml:"select"`
}

// ClassSetter holds the values a class sets on a character
type ClassSetter struct {
	HitDice Die `json:"hit_dice" yaml:"hit-dice"`
}

// ClassSelect is a choice the player makes when taking the class
type ClassSelect struct {
	Proficiency *SelectVariant `json:"proficiency,omitempty" yaml:"proficiency,omitempty"`
}

// SelectVariant picks Number ids out of ID
type SelectVariant struct {
	Name   string   `json:"name" yaml:"name"`
	Number int      `json:"number" yaml:"number"`
	ID     []string `json:"id" yaml:"id"`
}

// Validate checks the parts of a class spec the type system cannot
func (s *ClassSpec) Validate() error {
	if s.Set.HitDice.Sides() == 0 {
		return dnderr.MalformedInputf("unknown hit die %q", s.Set.HitDice)
	}

	for i, g := range s.Grant {
		if g.GrantType() != GrantTypeProficiency {
			return dnderr.MalformedInputf("class grant %d: only proficiency grants are allowed, got %q", i, g.GrantType())
		}
	}

	for i, sel := range s.Select {
		if sel.Proficiency == nil {
			return dnderr.MalformedInputf("class select %d: missing proficiency choice", i)
		}
		if sel.Proficiency.Number < 0 || sel.Proficiency.Number > len(sel.Proficiency.ID) {
			return dnderr.MalformedInputf("class select %d: cannot choose %d of %d options",
				i, sel.Proficiency.Number, len(sel.Proficiency.ID))
		}
	}

	return nil
}
