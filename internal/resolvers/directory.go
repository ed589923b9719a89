package resolvers

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/character-validator/internal"
	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
)

var documentExtensions = []string{".yaml", ".yml"}

type DirectoryConfig struct {
	Root string
}

// Directory resolves assets from documents laid out as <root>/<type>/<id>.yaml
type Directory struct {
	root string
}

func NewDirectory(cfg *DirectoryConfig) (*Directory, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("DirectoryConfig")
	}

	if cfg.Root == "" {
		return nil, internal.NewMissingParamError("DirectoryConfig.Root")
	}

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return nil, dnderr.Wrapf(err, "asset directory '%s' is not readable", cfg.Root)
	}
	if !info.IsDir() {
		return nil, internal.NewInvalidParamError("DirectoryConfig.Root is not a directory")
	}

	return &Directory{root: cfg.Root}, nil
}

func (r *Directory) FetchAssetDefinition(ctx context.Context, assetType assets.AssetType, id string) (*assets.Asset, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("asset ID is required")
	}

	if !assetType.Valid() {
		return nil, dnderr.InvalidArgumentf("unknown asset type '%s'", assetType)
	}

	// ids name files directly, so anything that could leave the type
	// directory is refused
	if strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return nil, dnderr.InvalidArgumentf("asset ID '%s' is not a valid file name", id).
			WithMeta("asset_id", id)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, ext := range documentExtensions {
		path := filepath.Join(r.root, string(assetType), id+ext)

		asset, err := assets.ReadAsset(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to read asset document '%s'", path)
		}

		if asset.Type != assetType || asset.Metadata.ID != id {
			return nil, dnderr.AssetResolutionf("document '%s' holds %s '%s', expected %s '%s'",
				path, asset.Type, asset.Metadata.ID, assetType, id).
				WithMeta("path", path)
		}

		return asset, nil
	}

	return nil, notFound(assetType, id)
}
