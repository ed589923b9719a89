package assets

import (
	"bufio"
	"io"
	"os"

	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
	"gopkg.in/yaml.v3"
)

// AssetType is the document tag of an asset
type AssetType string

const (
	AssetTypeCharacter   AssetType = "character"
	AssetTypeClass       AssetType = "class"
	AssetTypeRace        AssetType = "race"
	AssetTypeProficiency AssetType = "proficiency"
	AssetTypeLanguage    AssetType = "language"
)

// Valid reports whether t is a known asset type
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeCharacter, AssetTypeClass, AssetTypeRace, AssetTypeProficiency, AssetTypeLanguage:
		return true
	}
	return false
}

// Asset is any asset definition document.
// Character is set for character assets and Class for class assets; the
// remaining types carry metadata only.
type Asset struct {
	Type      AssetType
	Metadata  MetaData
	Character *CharacterSpec
	Class     *ClassSpec
}

// NewCharacterAsset wraps a character in an asset document
func NewCharacterAsset(c *Character) *Asset {
	spec := c.Spec
	return &Asset{
		Type:      AssetTypeCharacter,
		Metadata:  c.Metadata,
		Character: &spec,
	}
}

// NewMetadataAsset builds a metadata only asset such as a proficiency
func NewMetadataAsset(assetType AssetType, metadata MetaData) *Asset {
	return &Asset{
		Type:     assetType,
		Metadata: metadata,
	}
}

// AsCharacter returns the character held by a character asset
func (a *Asset) AsCharacter() (*Character, bool) {
	if a == nil || a.Type != AssetTypeCharacter || a.Character == nil {
		return nil, false
	}
	return &Character{
		Metadata: a.Metadata,
		Spec:     *a.Character,
	}, true
}

// ReadAsset reads an asset document from a YAML file
func ReadAsset(path string) (*Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to open asset file '%s'", path).
			WithMeta("path", path)
	}
	defer f.Close()

	asset, err := DecodeAsset(bufio.NewReader(f))
	if err != nil {
		return nil, dnderr.Wrapf(err, "failed to read asset file '%s'", path).
			WithMeta("path", path)
	}
	return asset, nil
}

// DecodeAsset decodes one YAML asset document
func DecodeAsset(r io.Reader) (*Asset, error) {
	var asset Asset
	if err := yaml.NewDecoder(r).Decode(&asset); err != nil {
		if dnderr.IsMalformedInput(err) {
			return nil, err
		}
		return nil, dnderr.WrapWithCode(err, dnderr.CodeMalformedInput, "invalid asset document")
	}
	return &asset, nil
}

// WriteAsset writes an asset document to path as YAML, replacing the file
func WriteAsset(path string, asset *Asset) error {
	f, err := os.Create(path)
	if err != nil {
		return dnderr.Wrapf(err, "failed to create asset file '%s'", path).
			WithMeta("path", path)
	}

	w := bufio.NewWriter(f)
	if err := EncodeAsset(w, asset); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return dnderr.Wrapf(err, "failed to write asset file '%s'", path)
	}
	return f.Close()
}

// EncodeAsset encodes an asset as a YAML document
func EncodeAsset(w io.Writer, asset *Asset) error {
	if asset == nil {
		return dnderr.InvalidArgument("asset cannot be nil")
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(asset); err != nil {
		return dnderr.Wrap(err, "failed to encode asset")
	}
	return enc.Close()
}
