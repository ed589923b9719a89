package assets_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
	"github.com/KirkDiggler/character-validator/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const multiclassDoc = `
type: character
metadata:
  id: multi-1
  name: Tamsin
  source: homebrew
spec:
  abilities:
    strength: 15
    dexterity: 12
    constitution: 14
    intelligence: 8
    wisdom: 10
    charisma: 16
  class:
    - id: paladin
      level: 2
      grants:
        - type: asi
          ability: [charisma, null]
    - id: warlock
      level: 1
      multiclass: true
      grants:
        - type: sub-class
          id: fiend
          grants:
            - type: spell
              id: burning-hands
  race:
    id: half-elf
    grants:
      - type: size
        id: medium
      - type: abilityscore
        id: charisma
        add: 2
      - type: sub-race
        id: aquatic
        grants:
          - type: language
            id: aquan
      - type: asi
        feat:
          id: skill-expert
          grants:
            - type: ability-score
              id: wisdom
              add: 1
`

func TestDecodeAsset_Multiclass(t *testing.T) {
	asset, err := assets.DecodeAsset(strings.NewReader(multiclassDoc))
	require.NoError(t, err)

	char, ok := asset.AsCharacter()
	require.True(t, ok)

	assert.Equal(t, "multi-1", char.Metadata.ID)
	assert.Equal(t, "homebrew", char.Metadata.Extra["source"])
	assert.True(t, char.Spec.Assets.Class.IsMulti())
	assert.Equal(t, 3, char.Level())

	classes := char.Spec.Assets.Class.Classes()
	require.Len(t, classes, 2)
	assert.False(t, classes[0].Multiclass)
	assert.True(t, classes[1].Multiclass)
	assert.Equal(t, assets.Grants{
		assets.AbilityImprovement{Ability: assets.AbilityCharisma},
	}, classes[0].Grants)
	assert.Equal(t, assets.Grants{
		assets.SubClass{ID: "fiend", Grants: assets.Grants{assets.Spell{ID: "burning-hands"}}},
	}, classes[1].Grants)

	race := char.Spec.Assets.Race
	assert.Equal(t, "half-elf", race.ID)
	require.Len(t, race.Grants, 4)
	assert.Equal(t, assets.AbilityScore{ID: assets.AbilityCharisma, Add: 2}, race.Grants[1])
	assert.Equal(t, assets.Feat{
		ID:     "skill-expert",
		Grants: assets.Grants{assets.AbilityScore{ID: assets.AbilityWisdom, Add: 1}},
	}, race.Grants[3])
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	want := fixtures.ElfFighter()

	var buf bytes.Buffer
	require.NoError(t, assets.EncodeAsset(&buf, assets.NewCharacterAsset(want)))

	asset, err := assets.DecodeAsset(&buf)
	require.NoError(t, err)

	got, ok := asset.AsCharacter()
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.False(t, got.Spec.Assets.Class.IsMulti())
}

func TestEncodeAsset_WireShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, assets.EncodeAsset(&buf, assets.NewCharacterAsset(fixtures.ElfFighter())))
	out := buf.String()

	assert.Contains(t, out, "type: character")
	assert.Contains(t, out, "type: asi")
	assert.Contains(t, out, "- strength\n")
	assert.Contains(t, out, "- dexterity\n")
	assert.Contains(t, out, "type: abilityscore")
	assert.Contains(t, out, "type: trait")
	// assets are inlined into the spec
	assert.NotContains(t, out, "assets:")
}

func TestWriteAsset_ReadAsset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "character.yml")

	require.NoError(t, assets.WriteAsset(path, assets.NewCharacterAsset(fixtures.MulticlassCharacter())))

	asset, err := assets.ReadAsset(path)
	require.NoError(t, err)
	char, ok := asset.AsCharacter()
	require.True(t, ok)
	assert.Equal(t, fixtures.MulticlassCharacter(), char)
}

func TestReadAsset_MissingFile(t *testing.T) {
	_, err := assets.ReadAsset(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
	assert.False(t, dnderr.IsMalformedInput(err))
}

func TestDecodeAsset_MetadataExtraIsPreserved(t *testing.T) {
	doc := `
type: proficiency
metadata:
  id: skill-perception
  name: Skill Perception
  description: Notice things.
  category: skills
  tags: [wis, passive]
`
	asset, err := assets.DecodeAsset(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, assets.AssetTypeProficiency, asset.Type)
	require.NotNil(t, asset.Metadata.Description)
	assert.Equal(t, "Notice things.", *asset.Metadata.Description)
	assert.Nil(t, asset.Metadata.Notes)
	assert.Equal(t, "skills", asset.Metadata.Extra["category"])
	assert.Equal(t, []any{"wis", "passive"}, asset.Metadata.Extra["tags"])

	var buf bytes.Buffer
	require.NoError(t, assets.EncodeAsset(&buf, asset))
	assert.Contains(t, buf.String(), "category: skills")
}

func TestDecodeAsset_Class(t *testing.T) {
	doc := `
type: class
metadata:
  id: fighter
  name: Fighter
  description: |
    Lorem ipsum dolor sit amet.
spec:
  set:
    hit-dice: d10
  grant:
    - type: proficiency
      id: armor-light
    - type: proficiency
      id: armor-medium
  select:
    - proficiency:
        name: Skill Proficiency
        number: 2
        id: [skill-acrobatics, skill-athletics, skill-perception]
`
	asset, err := assets.DecodeAsset(strings.NewReader(doc))
	require.NoError(t, err)

	require.NotNil(t, asset.Class)
	assert.Equal(t, "Lorem ipsum dolor sit amet.\n", *asset.Metadata.Description)
	assert.Equal(t, assets.DieD10, asset.Class.Set.HitDice)
	assert.Equal(t, 10, asset.Class.Set.HitDice.Sides())
	assert.Equal(t, assets.Grants{
		assets.Proficiency{ID: "armor-light"},
		assets.Proficiency{ID: "armor-medium"},
	}, asset.Class.Grant)
	require.Len(t, asset.Class.Select, 1)
	assert.Equal(t, 2, asset.Class.Select[0].Proficiency.Number)

	_, ok := asset.AsCharacter()
	assert.False(t, ok)
}

func TestDecodeAsset_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "unknown asset type",
			doc:  "type: weapon\nmetadata: {id: longsword, name: Longsword}\n",
		},
		{
			name: "missing metadata id",
			doc:  "type: language\nmetadata: {name: Elvish}\n",
		},
		{
			name: "character without spec",
			doc:  "type: character\nmetadata: {id: a, name: b}\n",
		},
		{
			name: "unknown ability",
			doc: `type: character
metadata: {id: a, name: b}
spec:
  abilities: {strength: 1, dexterity: 1, constitution: 1, intelligence: 1, wisdom: 1, charisma: 1}
  class: {id: fighter, level: 1, grants: [{type: abilityscore, id: strenght, add: 1}]}
  race: {id: elf, grants: []}
`,
		},
		{
			name: "unknown grant type",
			doc: `type: character
metadata: {id: a, name: b}
spec:
  abilities: {strength: 1, dexterity: 1, constitution: 1, intelligence: 1, wisdom: 1, charisma: 1}
  class: {id: fighter, level: 1, grants: [{type: weapon, id: longsword}]}
  race: {id: elf, grants: []}
`,
		},
		{
			name: "asi with three abilities",
			doc: `type: character
metadata: {id: a, name: b}
spec:
  abilities: {strength: 1, dexterity: 1, constitution: 1, intelligence: 1, wisdom: 1, charisma: 1}
  class: {id: fighter, level: 1, grants: [{type: asi, ability: [strength, wisdom, charisma]}]}
  race: {id: elf, grants: []}
`,
		},
		{
			name: "class is a scalar",
			doc: `type: character
metadata: {id: a, name: b}
spec:
  abilities: {strength: 1, dexterity: 1, constitution: 1, intelligence: 1, wisdom: 1, charisma: 1}
  class: fighter
  race: {id: elf, grants: []}
`,
		},
		{
			name: "missing race id",
			doc: `type: character
metadata: {id: a, name: b}
spec:
  abilities: {strength: 1, dexterity: 1, constitution: 1, intelligence: 1, wisdom: 1, charisma: 1}
  class: {id: fighter, level: 1, grants: []}
  race: {grants: []}
`,
		},
		{
			name: "class with a language grant",
			doc: `type: class
metadata: {id: fighter, name: Fighter}
spec:
  set: {hit-dice: d10}
  grant: [{type: language, id: common}]
  select: []
`,
		},
		{
			name: "class with unknown hit die",
			doc: `type: class
metadata: {id: fighter, name: Fighter}
spec:
  set: {hit-dice: d7}
  grant: []
  select: []
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset, err := assets.DecodeAsset(strings.NewReader(tt.doc))
			assert.Nil(t, asset)
			require.Error(t, err)
			assert.True(t, dnderr.IsMalformedInput(err), "expected malformed input, got %v", err)
		})
	}
}

func TestAsset_JSONRoundTrip(t *testing.T) {
	want := assets.NewCharacterAsset(fixtures.MulticlassCharacter())

	data, err := json.Marshal(want)
	require.NoError(t, err)

	var got assets.Asset
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want, &got)
}

func TestAsset_JSONMetadataOnly(t *testing.T) {
	want := assets.NewMetadataAsset(assets.AssetTypeProficiency, assets.MetaData{
		ID:    "skill-stealth",
		Name:  "Skill: Stealth",
		Extra: map[string]any{"proficiency_type": "Skills"},
	})

	data, err := json.Marshal(want)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"spec"`)

	var got assets.Asset
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want, &got)
}

func TestParseAbility(t *testing.T) {
	for _, a := range assets.AllAbilities {
		parsed, err := assets.ParseAbility(strings.ToUpper(string(a)))
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}

	_, err := assets.ParseAbility("luck")
	assert.True(t, dnderr.IsMalformedInput(err))
	assert.Equal(t, "STR", assets.AbilityStrength.Short())
	assert.Equal(t, "", assets.Ability("luck").Short())
}
