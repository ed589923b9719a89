package sheet_test

import (
	"testing"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	"github.com/KirkDiggler/character-validator/internal/domain/sheet"
	"github.com/stretchr/testify/assert"
)

func TestAbilityRoll_Modifier(t *testing.T) {
	tests := []struct {
		name     string
		roll     sheet.AbilityRoll
		total    int
		modifier int
	}{
		{name: "ten is zero", roll: sheet.AbilityRoll{Base: 10}, total: 10, modifier: 0},
		{name: "dex with mods", roll: sheet.AbilityRoll{Base: 20, Mods: 3}, total: 23, modifier: 6},
		{name: "nine truncates to zero", roll: sheet.AbilityRoll{Base: 9}, total: 9, modifier: 0},
		{name: "seven truncates to minus one", roll: sheet.AbilityRoll{Base: 7}, total: 7, modifier: -1},
		{name: "one", roll: sheet.AbilityRoll{Base: 1}, total: 1, modifier: -4},
		{name: "negative total", roll: sheet.AbilityRoll{Base: 0, Mods: -3}, total: -3, modifier: -6},
		{name: "odd above ten", roll: sheet.AbilityRoll{Base: 13}, total: 13, modifier: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.total, tt.roll.Total())
			assert.Equal(t, tt.modifier, tt.roll.Modifier())
		})
	}
}

func TestAbilityRoll_String(t *testing.T) {
	assert.Equal(t, "23 (+6)", sheet.AbilityRoll{Base: 20, Mods: 3}.String())
	assert.Equal(t, "7 (-1)", sheet.AbilityRoll{Base: 7}.String())
}

func TestAbilityScores_AddToMod(t *testing.T) {
	scores := sheet.NewAbilityScores(assets.Abilities{Strength: 9, Charisma: 13})

	assert.True(t, scores.AddToMod(assets.AbilityStrength, 1))
	assert.True(t, scores.AddToMod(assets.AbilityStrength, 2))
	assert.True(t, scores.AddToMod(assets.AbilityCharisma, -1))

	assert.Equal(t, sheet.AbilityRoll{Base: 9, Mods: 3}, scores.Strength)
	assert.Equal(t, sheet.AbilityRoll{Base: 13, Mods: -1}, scores.Charisma)

	roll, ok := scores.Get(assets.AbilityStrength)
	assert.True(t, ok)
	assert.Equal(t, 12, roll.Total())
}

func TestAbilityScores_UnknownAbilityIsNoop(t *testing.T) {
	scores := sheet.NewAbilityScores(assets.Abilities{Strength: 9})
	before := scores

	assert.False(t, scores.AddToMod(assets.Ability("luck"), 5))
	assert.False(t, scores.AddToMod(assets.AbilityNone, 1))
	assert.Equal(t, before, scores)

	_, ok := scores.Get(assets.Ability("luck"))
	assert.False(t, ok)
}

func TestNewAbilityScores_SeedsEveryBase(t *testing.T) {
	base := assets.Abilities{
		Strength:     9,
		Dexterity:    20,
		Constitution: 11,
		Intelligence: 12,
		Wisdom:       10,
		Charisma:     13,
	}

	scores := sheet.NewAbilityScores(base)

	for _, ability := range assets.AllAbilities {
		want, ok := base.Score(ability)
		assert.True(t, ok, ability)

		got, ok := scores.Get(ability)
		assert.True(t, ok, ability)
		assert.Equal(t, sheet.AbilityRoll{Base: want}, got, ability)
	}

	_, ok := base.Score(assets.Ability("luck"))
	assert.False(t, ok)
}
