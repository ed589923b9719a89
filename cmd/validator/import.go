package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-validator/internal/repositories/characters"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <filename>",
		Short: "Store a character document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			character, err := readCharacter(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if _, ok := a.provider.CharacterRepository.(*characters.InMemoryRepository); ok {
				log.Println("No Redis configured, the imported character will not outlive this run")
			}

			stored, err := a.provider.SheetService.ImportCharacter(ctx, character)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %s\n", stored.Metadata.ID)
			return nil
		},
	}
}
