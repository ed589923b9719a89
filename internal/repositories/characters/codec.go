package characters

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
)

// Characters are stored as character asset documents so a stored value can
// be read back with the same codec the CLI uses for files.

func marshalCharacter(character *assets.Character) ([]byte, error) {
	data, err := json.Marshal(assets.NewCharacterAsset(character))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal character: %w", err)
	}

	return data, nil
}

func unmarshalCharacter(data []byte) (*assets.Character, error) {
	var asset assets.Asset
	if err := json.Unmarshal(data, &asset); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}

	character, ok := asset.AsCharacter()
	if !ok {
		return nil, dnderr.Internalf("stored document '%s' is a %s, not a character", asset.Metadata.ID, asset.Type).
			WithMeta("character_id", asset.Metadata.ID)
	}

	return character, nil
}

func validateCharacter(character *assets.Character) error {
	if character == nil {
		return dnderr.InvalidArgument("character cannot be nil")
	}

	if err := character.Spec.Validate(); err != nil {
		return dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "invalid character").
			WithMeta("character_id", character.Metadata.ID)
	}

	return nil
}
