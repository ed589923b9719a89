package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
)

func readCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <filename>",
		Short: "Decode and validate an asset document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asset, err := assets.ReadAsset(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "type: %s\n", asset.Type)
			fmt.Fprintf(out, "id: %s\n", asset.Metadata.ID)
			fmt.Fprintf(out, "name: %s\n", asset.Metadata.Name)

			if character, ok := asset.AsCharacter(); ok {
				fmt.Fprintf(out, "level: %d\n", character.Level())
				fmt.Fprintf(out, "grants: %d\n", len(character.AllGrants()))
			}

			return nil
		},
	}
}
