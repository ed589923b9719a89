package dnd5e

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresConfig(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{})
	assert.Error(t, err)
}

func TestClient_RejectsEmptyKey(t *testing.T) {
	c, err := New(&Config{HttpClient: http.DefaultClient})
	require.NoError(t, err)

	_, err = c.GetProficiency(context.Background(), "")
	assert.Error(t, err)
	_, err = c.GetClass(context.Background(), "")
	assert.Error(t, err)
	_, err = c.GetRace(context.Background(), "")
	assert.Error(t, err)
}

func TestClient_CanceledContext(t *testing.T) {
	c, err := New(&Config{HttpClient: http.DefaultClient})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.GetProficiency(ctx, "skill-perception")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApiProficiencyToAsset(t *testing.T) {
	result := apiProficiencyToAsset(&apiEntities.Proficiency{
		Key:  "skill-perception",
		Name: "Skill: Perception",
		Type: apiEntities.ProficiencyTypeSkill,
	})

	assert.Equal(t, assets.AssetTypeProficiency, result.Type)
	assert.Equal(t, "skill-perception", result.Metadata.ID)
	assert.Equal(t, "Skill: Perception", result.Metadata.Name)
	assert.Equal(t, "skill", result.Metadata.Extra[ExtraProficiencyType])
	assert.Equal(t, "dnd5e-api", result.Metadata.Extra[ExtraSource])
}

func TestApiProficiencyTypeToString(t *testing.T) {
	assert.Equal(t, "armor", apiProficiencyTypeToString(apiEntities.ProficiencyTypeArmor))
	assert.Equal(t, "weapon", apiProficiencyTypeToString(apiEntities.ProficiencyTypeWeapon))
	assert.Equal(t, "saving-throw", apiProficiencyTypeToString(apiEntities.ProficiencyTypeSavingThrow))
	assert.Equal(t, "instrument", apiProficiencyTypeToString(apiEntities.ProficiencyTypeInstrument))
}

func TestApiClassToAsset(t *testing.T) {
	result, err := apiClassToAsset(&apiEntities.Class{
		Key:    "fighter",
		Name:   "Fighter",
		HitDie: 10,
		Proficiencies: []*apiEntities.ReferenceItem{
			{Key: "all-armor", Name: "All armor"},
			nil,
			{Key: "saving-throw-str", Name: "Saving Throw: STR"},
		},
		ProficiencyChoices: []*apiEntities.ChoiceOption{
			{ChoiceCount: 2, Description: "Choose two skills", ChoiceType: "proficiencies"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, assets.AssetTypeClass, result.Type)
	assert.Equal(t, "fighter", result.Metadata.ID)
	require.NotNil(t, result.Class)
	assert.Equal(t, assets.DieD10, result.Class.Set.HitDice)
	assert.Equal(t, assets.Grants{
		assets.Proficiency{ID: "all-armor"},
		assets.Proficiency{ID: "saving-throw-str"},
	}, result.Class.Grant)

	// a choice without options has nothing to select from
	assert.Empty(t, result.Class.Select)
	assert.NoError(t, result.Class.Validate())
}

func TestApiClassToAsset_UnsupportedHitDie(t *testing.T) {
	_, err := apiClassToAsset(&apiEntities.Class{Key: "odd", HitDie: 7})
	assert.Error(t, err)
}

func TestApiRaceToAsset(t *testing.T) {
	result := apiRaceToAsset(&apiEntities.Race{
		Key:   "elf",
		Name:  "Elf",
		Speed: 30,
		AbilityBonuses: []*apiEntities.AbilityBonus{
			{AbilityScore: &apiEntities.ReferenceItem{Key: "dex", Name: "DEX"}, Bonus: 2},
			{AbilityScore: nil, Bonus: 1},
		},
	})

	assert.Equal(t, assets.AssetTypeRace, result.Type)
	assert.Equal(t, "Elf", result.Metadata.Name)
	assert.EqualValues(t, 30, result.Metadata.Extra[ExtraSpeed])
	assert.Equal(t, map[string]any{"dexterity": 2}, result.Metadata.Extra[ExtraAbilityBonuses])
}

func TestReferenceKeyToAbility(t *testing.T) {
	ability, ok := referenceKeyToAbility("STR")
	assert.True(t, ok)
	assert.Equal(t, assets.AbilityStrength, ability)

	ability, ok = referenceKeyToAbility("wisdom")
	assert.True(t, ok)
	assert.Equal(t, assets.AbilityWisdom, ability)

	_, ok = referenceKeyToAbility("luck")
	assert.False(t, ok)
}

type statusRoundTripper struct {
	status int
}

func (rt statusRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: rt.status,
		Status:     http.StatusText(rt.status),
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(`{"error":"Not found"}`)),
		Request:    req,
	}, nil
}

func TestClient_MissingKeyIsNotFound(t *testing.T) {
	c, err := New(&Config{HttpClient: &http.Client{Transport: statusRoundTripper{status: http.StatusNotFound}}})
	require.NoError(t, err)

	ctx := context.Background()

	_, err = c.GetProficiency(ctx, "perception")
	require.Error(t, err)
	assert.True(t, dnderr.IsNotFound(err))
	assert.Equal(t, "perception", dnderr.GetMeta(err)["key"])

	_, err = c.GetClass(ctx, "artificer")
	assert.True(t, dnderr.IsNotFound(err))

	_, err = c.GetRace(ctx, "warforged")
	assert.True(t, dnderr.IsNotFound(err))
}

func TestClient_ServerErrorIsUnavailable(t *testing.T) {
	c, err := New(&Config{HttpClient: &http.Client{Transport: statusRoundTripper{status: http.StatusInternalServerError}}})
	require.NoError(t, err)

	_, err = c.GetProficiency(context.Background(), "perception")
	require.Error(t, err)
	assert.False(t, dnderr.IsNotFound(err))
	assert.True(t, dnderr.Is(err, dnderr.CodeUnavailable))
}

func TestApiError(t *testing.T) {
	err := apiError(errors.New("unexpected status code: 404"), "class", "artificer")
	assert.True(t, dnderr.IsNotFound(err))
	assert.Contains(t, err.Error(), "class 'artificer' not found")

	err = apiError(errors.New("dial tcp: connection refused"), "class", "fighter")
	assert.True(t, dnderr.Is(err, dnderr.CodeUnavailable))
}
