package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	"github.com/KirkDiggler/character-validator/internal/fixtures"
)

func writeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write <filename>",
		Short: "Write the sample character document to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := assets.WriteAsset(args[0], assets.NewCharacterAsset(fixtures.ElfFighter())); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "written!")
			return nil
		},
	}
}
