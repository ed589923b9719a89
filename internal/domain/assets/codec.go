package assets

import (
	"bytes"
	"encoding/json"
	"strings"

	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
	"gopkg.in/yaml.v3"
)

// grantData is the wire form shared by every grant variant
type grantData struct {
	Type    string      `json:"type" yaml:"type"`
	ID      string      `json:"id,omitempty" yaml:"id,omitempty"`
	Add     *int        `json:"add,omitempty" yaml:"add,omitempty"`
	Grants  []grantData `json:"grants,omitempty" yaml:"grants,omitempty"`
	Ability []*string   `json:"ability,omitempty" yaml:"ability,omitempty"`
	Feat    *featData   `json:"feat,omitempty" yaml:"feat,omitempty"`
}

type featData struct {
	ID     string      `json:"id" yaml:"id"`
	Grants []grantData `json:"grants" yaml:"grants"`
}

func grantToData(g Grant) (grantData, error) {
	switch v := g.(type) {
	case Proficiency, Language, Feature, Spell, Size, Advantage, Disadvantage:
		return grantData{Type: string(v.GrantType()), ID: v.GrantID()}, nil
	case AbilityScore:
		add := v.Add
		return grantData{Type: string(GrantTypeAbilityScore), ID: string(v.ID), Add: &add}, nil
	case Trait, SubRace, SubClass:
		children, err := grantsToData(v.(CompositeGrant).Children())
		if err != nil {
			return grantData{}, err
		}
		return grantData{Type: string(v.GrantType()), ID: v.GrantID(), Grants: children}, nil
	case AbilityImprovement:
		first := string(v.Ability)
		var second *string
		if v.Second != AbilityNone {
			s := string(v.Second)
			second = &s
		}
		return grantData{Type: string(GrantTypeASI), Ability: []*string{&first, second}}, nil
	case Feat:
		children, err := grantsToData(v.Grants)
		if err != nil {
			return grantData{}, err
		}
		return grantData{Type: string(GrantTypeASI), Feat: &featData{ID: v.ID, Grants: children}}, nil
	case nil:
		return grantData{}, dnderr.InvalidArgument("grant cannot be nil")
	default:
		return grantData{}, dnderr.InvalidArgumentf("unsupported grant %T", g)
	}
}

func grantsToData(grants Grants) ([]grantData, error) {
	out := make([]grantData, len(grants))
	for i, g := range grants {
		data, err := grantToData(g)
		if err != nil {
			return nil, err
		}
		out[i] = data
	}
	return out, nil
}

func grantFromData(data grantData) (Grant, error) {
	grantType := GrantType(strings.ToLower(data.Type))

	switch grantType {
	case GrantTypeProficiency, GrantTypeLanguage, GrantTypeFeature, GrantTypeSpell,
		GrantTypeSize, GrantTypeAdvantage, GrantTypeDisadvantage:
		if data.ID == "" {
			return nil, dnderr.MalformedInputf("%s grant is missing an id", grantType)
		}
		return leafGrant(grantType, data.ID), nil

	case GrantTypeAbilityScore, "ability-score":
		ability, err := ParseAbility(data.ID)
		if err != nil {
			return nil, err
		}
		if data.Add == nil {
			return nil, dnderr.MalformedInputf("abilityscore grant for %q is missing add", data.ID)
		}
		return AbilityScore{ID: ability, Add: *data.Add}, nil

	case GrantTypeTrait, GrantTypeSubRace, GrantTypeSubClass:
		if data.ID == "" {
			return nil, dnderr.MalformedInputf("%s grant is missing an id", grantType)
		}
		children, err := grantsFromData(data.Grants)
		if err != nil {
			return nil, dnderr.Wrapf(err, "%s '%s'", grantType, data.ID)
		}
		switch grantType {
		case GrantTypeTrait:
			return Trait{ID: data.ID, Grants: children}, nil
		case GrantTypeSubRace:
			return SubRace{ID: data.ID, Grants: children}, nil
		default:
			return SubClass{ID: data.ID, Grants: children}, nil
		}

	case GrantTypeASI:
		return asiFromData(data)

	case "":
		return nil, dnderr.MalformedInputf("grant is missing a type")
	default:
		return nil, dnderr.MalformedInputf("unknown grant type %q", data.Type)
	}
}

func leafGrant(grantType GrantType, id string) Grant {
	switch grantType {
	case GrantTypeProficiency:
		return Proficiency{ID: id}
	case GrantTypeLanguage:
		return Language{ID: id}
	case GrantTypeFeature:
		return Feature{ID: id}
	case GrantTypeSpell:
		return Spell{ID: id}
	case GrantTypeSize:
		return Size{ID: id}
	case GrantTypeAdvantage:
		return Advantage{ID: id}
	default:
		return Disadvantage{ID: id}
	}
}

func asiFromData(data grantData) (Grant, error) {
	switch {
	case data.Feat != nil && data.Ability != nil:
		return nil, dnderr.MalformedInputf("asi grant cannot have both ability and feat")

	case data.Feat != nil:
		if data.Feat.ID == "" {
			return nil, dnderr.MalformedInputf("asi feat is missing an id")
		}
		children, err := grantsFromData(data.Feat.Grants)
		if err != nil {
			return nil, dnderr.Wrapf(err, "feat '%s'", data.Feat.ID)
		}
		return Feat{ID: data.Feat.ID, Grants: children}, nil

	case len(data.Ability) == 1 || len(data.Ability) == 2:
		if data.Ability[0] == nil {
			return nil, dnderr.MalformedInputf("asi ability improvement is missing its first ability")
		}
		first, err := ParseAbility(*data.Ability[0])
		if err != nil {
			return nil, err
		}
		improvement := AbilityImprovement{Ability: first}
		if len(data.Ability) == 2 && data.Ability[1] != nil {
			second, err := ParseAbility(*data.Ability[1])
			if err != nil {
				return nil, err
			}
			improvement.Second = second
		}
		return improvement, nil

	default:
		return nil, dnderr.MalformedInputf("asi grant needs one or two abilities or a feat")
	}
}

func grantsFromData(data []grantData) (Grants, error) {
	out := make(Grants, len(data))
	for i, d := range data {
		g, err := grantFromData(d)
		if err != nil {
			return nil, err
		}
		out[i] = g
	}
	return out, nil
}

// UnmarshalYAML decodes a list of tagged grants
func (g *Grants) UnmarshalYAML(value *yaml.Node) error {
	var data []grantData
	if err := value.Decode(&data); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeMalformedInput, "invalid grant list")
	}
	grants, err := grantsFromData(data)
	if err != nil {
		return err
	}
	*g = grants
	return nil
}

// MarshalYAML encodes grants in their tagged wire form
func (g Grants) MarshalYAML() (any, error) {
	return grantsToData(g)
}

// UnmarshalJSON decodes a list of tagged grants
func (g *Grants) UnmarshalJSON(b []byte) error {
	var data []grantData
	if err := json.Unmarshal(b, &data); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeMalformedInput, "invalid grant list")
	}
	grants, err := grantsFromData(data)
	if err != nil {
		return err
	}
	*g = grants
	return nil
}

// MarshalJSON encodes grants in their tagged wire form
func (g Grants) MarshalJSON() ([]byte, error) {
	data, err := grantsToData(g)
	if err != nil {
		return nil, err
	}
	return json.Marshal(data)
}

// UnmarshalYAML picks Single for a mapping and Multi for a sequence
func (s *CharacterClassSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.MappingNode:
		var class CharacterClass
		if err := value.Decode(&class); err != nil {
			return err
		}
		*s = SingleClass(class)
		return nil
	case yaml.SequenceNode:
		var classes []CharacterClass
		if err := value.Decode(&classes); err != nil {
			return err
		}
		*s = MultiClass(classes...)
		return nil
	default:
		return dnderr.MalformedInputf("class must be a class or a list of classes (line %d)", value.Line)
	}
}

// MarshalYAML encodes the held variant without a tag
func (s CharacterClassSpec) MarshalYAML() (any, error) {
	if s.Single != nil {
		return s.Single, nil
	}
	if s.Multi == nil {
		return []CharacterClass{}, nil
	}
	return s.Multi, nil
}

// UnmarshalJSON picks Single for an object and Multi for an array
func (s *CharacterClassSpec) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	switch {
	case bytes.HasPrefix(trimmed, []byte("{")):
		var class CharacterClass
		if err := json.Unmarshal(trimmed, &class); err != nil {
			return err
		}
		*s = SingleClass(class)
		return nil
	case bytes.HasPrefix(trimmed, []byte("[")):
		var classes []CharacterClass
		if err := json.Unmarshal(trimmed, &classes); err != nil {
			return err
		}
		*s = MultiClass(classes...)
		return nil
	default:
		return dnderr.MalformedInputf("class must be a class or a list of classes")
	}
}

// MarshalJSON encodes the held variant without a tag
func (s CharacterClassSpec) MarshalJSON() ([]byte, error) {
	if s.Single != nil {
		return json.Marshal(s.Single)
	}
	if s.Multi == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Multi)
}

type assetYAML struct {
	Type     AssetType `yaml:"type"`
	Metadata MetaData  `yaml:"metadata"`
	Spec     yaml.Node `yaml:"spec"`
}

type assetJSON struct {
	Type     AssetType       `json:"type"`
	Metadata MetaData        `json:"metadata"`
	Spec     json.RawMessage `json:"spec,omitempty"`
}

type assetOut struct {
	Type     AssetType `json:"type" yaml:"type"`
	Metadata MetaData  `json:"metadata" yaml:"metadata"`
	Spec     any       `json:"spec,omitempty" yaml:"spec,omitempty"`
}

func (a *Asset) setHeader(assetType AssetType, metadata MetaData) error {
	if !assetType.Valid() {
		return dnderr.MalformedInputf("unknown asset type %q", assetType)
	}
	if metadata.ID == "" {
		return dnderr.MalformedInputf("%s asset is missing metadata.id", assetType)
	}
	a.Type = assetType
	a.Metadata = metadata
	return nil
}

func (a *Asset) out() (assetOut, error) {
	out := assetOut{Type: a.Type, Metadata: a.Metadata}
	switch a.Type {
	case AssetTypeCharacter:
		if a.Character == nil {
			return out, dnderr.InvalidArgument("character asset has no spec")
		}
		out.Spec = a.Character
	case AssetTypeClass:
		if a.Class == nil {
			return out, dnderr.InvalidArgument("class asset has no spec")
		}
		out.Spec = a.Class
	}
	return out, nil
}

// UnmarshalYAML decodes an asset document tagged on type
func (a *Asset) UnmarshalYAML(value *yaml.Node) error {
	var raw assetYAML
	if err := value.Decode(&raw); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeMalformedInput, "invalid asset document")
	}
	if err := a.setHeader(raw.Type, raw.Metadata); err != nil {
		return err
	}

	switch a.Type {
	case AssetTypeCharacter:
		if raw.Spec.Kind == 0 {
			return dnderr.MalformedInputf("character '%s' has no spec", a.Metadata.ID)
		}
		var spec CharacterSpec
		if err := raw.Spec.Decode(&spec); err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeMalformedInput,
				"invalid character spec for '"+a.Metadata.ID+"'")
		}
		if err := spec.Validate(); err != nil {
			return dnderr.Wrapf(err, "character '%s'", a.Metadata.ID)
		}
		a.Character = &spec
	case AssetTypeClass:
		if raw.Spec.Kind == 0 {
			return dnderr.MalformedInputf("class '%s' has no spec", a.Metadata.ID)
		}
		var spec ClassSpec
		if err := raw.Spec.Decode(&spec); err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeMalformedInput,
				"invalid class spec for '"+a.Metadata.ID+"'")
		}
		if err := spec.Validate(); err != nil {
			return dnderr.Wrapf(err, "class '%s'", a.Metadata.ID)
		}
		a.Class = &spec
	}
	return nil
}

// MarshalYAML encodes an asset document tagged on type
func (a Asset) MarshalYAML() (any, error) {
	return a.out()
}

// UnmarshalJSON decodes an asset tagged on type
func (a *Asset) UnmarshalJSON(b []byte) error {
	var raw assetJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeMalformedInput, "invalid asset document")
	}
	if err := a.setHeader(raw.Type, raw.Metadata); err != nil {
		return err
	}

	switch a.Type {
	case AssetTypeCharacter:
		var spec CharacterSpec
		if err := json.Unmarshal(raw.Spec, &spec); err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeMalformedInput, "invalid character spec")
		}
		if err := spec.Validate(); err != nil {
			return dnderr.Wrapf(err, "character '%s'", a.Metadata.ID)
		}
		a.Character = &spec
	case AssetTypeClass:
		var spec ClassSpec
		if err := json.Unmarshal(raw.Spec, &spec); err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeMalformedInput, "invalid class spec")
		}
		if err := spec.Validate(); err != nil {
			return dnderr.Wrapf(err, "class '%s'", a.Metadata.ID)
		}
		a.Class = &spec
	}
	return nil
}

// MarshalJSON encodes an asset tagged on type
func (a Asset) MarshalJSON() ([]byte, error) {
	out, err := a.out()
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}
