package assets

// GrantType is the document tag of a grant
type GrantType string

const (
	GrantTypeProficiency  GrantType = "proficiency"
	GrantTypeLanguage     GrantType = "language"
	GrantTypeFeature      GrantType = "feature"
	GrantTypeSpell        GrantType = "spell"
	GrantTypeSize         GrantType = "size"
	GrantTypeTrait        GrantType = "trait"
	GrantTypeSubRace      GrantType = "sub-race"
	GrantTypeSubClass     GrantType = "sub-class"
	GrantTypeASI          GrantType = "asi"
	GrantTypeAdvantage    GrantType = "advantage"
	GrantTypeDisadvantage GrantType = "disadvantage"
	GrantTypeAbilityScore GrantType = "abilityscore"
)

// Grant is a unit of benefit attached to a class, race, trait, subrace,
// subclass or feat. The set of implementations is closed to this package.
type Grant interface {
	GrantType() GrantType
	GrantID() string
	isGrant()
}

// CompositeGrant is a grant that owns further grants.
// Children are owned by value, so a grant tree can never contain a cycle.
type CompositeGrant interface {
	Grant
	Children() Grants
}

// Grants is an ordered list of grants
type Grants []Grant

// Proficiency grants the proficiency asset with the given id
type Proficiency struct {
	ID string
}

func (g Proficiency) GrantType() GrantType { return GrantTypeProficiency }
func (g Proficiency) GrantID() string      { return g.ID }
func (Proficiency) isGrant()               {}

// Language grants a language
type Language struct {
	ID string
}

func (g Language) GrantType() GrantType { return GrantTypeLanguage }
func (g Language) GrantID() string      { return g.ID }
func (Language) isGrant()               {}

// Feature grants a class or racial feature
type Feature struct {
	ID string
}

func (g Feature) GrantType() GrantType { return GrantTypeFeature }
func (g Feature) GrantID() string      { return g.ID }
func (Feature) isGrant()               {}

// Spell grants a spell
type Spell struct {
	ID string
}

func (g Spell) GrantType() GrantType { return GrantTypeSpell }
func (g Spell) GrantID() string      { return g.ID }
func (Spell) isGrant()               {}

// Size sets the character's size category
type Size struct {
	ID string
}

func (g Size) GrantType() GrantType { return GrantTypeSize }
func (g Size) GrantID() string      { return g.ID }
func (Size) isGrant()               {}

// Advantage grants advantage on the roll with the given id
type Advantage struct {
	ID string
}

func (g Advantage) GrantType() GrantType { return GrantTypeAdvantage }
func (g Advantage) GrantID() string      { return g.ID }
func (Advantage) isGrant()               {}

// Disadvantage imposes disadvantage on the roll with the given id
type Disadvantage struct {
	ID string
}

func (g Disadvantage) GrantType() GrantType { return GrantTypeDisadvantage }
func (g Disadvantage) GrantID() string      { return g.ID }
func (Disadvantage) isGrant()               {}

// AbilityScore adds Add (possibly negative) to an ability
type AbilityScore struct {
	ID  Ability
	Add int
}

func (g AbilityScore) GrantType() GrantType { return GrantTypeAbilityScore }
func (g AbilityScore) GrantID() string      { return string(g.ID) }
func (AbilityScore) isGrant()               {}

// Trait is a named bundle of grants
type Trait struct {
	ID     string
	Grants Grants
}

func (g Trait) GrantType() GrantType { return GrantTypeTrait }
func (g Trait) GrantID() string      { return g.ID }
func (g Trait) Children() Grants     { return g.Grants }
func (Trait) isGrant()               {}

// SubRace is the subrace chosen for the character's race
type SubRace struct {
	ID     string
	Grants Grants
}

func (g SubRace) GrantType() GrantType { return GrantTypeSubRace }
func (g SubRace) GrantID() string      { return g.ID }
func (g SubRace) Children() Grants     { return g.Grants }
func (SubRace) isGrant()               {}

// SubClass is the subclass chosen for a class
type SubClass struct {
	ID     string
	Grants Grants
}

func (g SubClass) GrantType() GrantType { return GrantTypeSubClass }
func (g SubClass) GrantID() string      { return g.ID }
func (g SubClass) Children() Grants     { return g.Grants }
func (SubClass) isGrant()               {}

// ASI is an ability score improvement: either AbilityImprovement or Feat
type ASI interface {
	Grant
	isASI()
}

// AbilityImprovement raises Ability by one and Second by one, or Ability by
// two when Second is AbilityNone.
type AbilityImprovement struct {
	Ability Ability
	Second  Ability
}

func (g AbilityImprovement) GrantType() GrantType { return GrantTypeASI }
func (g AbilityImprovement) GrantID() string      { return string(g.Ability) }
func (AbilityImprovement) isGrant()               {}
func (AbilityImprovement) isASI()                 {}

// Feat is taken in place of an ability improvement and carries its own grants
type Feat struct {
	ID     string
	Grants Grants
}

func (g Feat) GrantType() GrantType { return GrantTypeASI }
func (g Feat) GrantID() string      { return g.ID }
func (g Feat) Children() Grants     { return g.Grants }
func (Feat) isGrant()               {}
func (Feat) isASI()                 {}
