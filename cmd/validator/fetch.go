package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
)

func fetchCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "fetch <type> <id>",
		Short: "Resolve an asset definition and print it",
		Long:  "Resolve an asset definition through the asset directory, then the dnd5e api. Types: class, race, proficiency, language, character.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			assetType := assets.AssetType(args[0])
			if !assetType.Valid() {
				return dnderr.InvalidArgumentf("unknown asset type %q", args[0])
			}
			if format != formatYAML && format != formatJSON {
				return dnderr.InvalidArgumentf("unknown format %q, expected yaml or json", format)
			}

			ctx := context.Background()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			asset, err := a.provider.Resolver.FetchAssetDefinition(ctx, assetType, args[1])
			if err != nil {
				return err
			}

			if format == formatJSON {
				data, err := json.MarshalIndent(asset, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode asset: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}

			return assets.EncodeAsset(cmd.OutOrStdout(), asset)
		},
	}
	cmd.Flags().StringVar(&format, "format", formatYAML, "Output format: yaml or json")
	return cmd
}
