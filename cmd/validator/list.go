package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			stored, err := a.provider.CharacterRepository.List(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(stored) == 0 {
				fmt.Fprintln(out, "No characters found.")
				return nil
			}

			for _, character := range stored {
				fmt.Fprintf(out, "%s %s (level %d)\n", character.Metadata.ID, character.Metadata.Name, character.Level())
			}
			return nil
		},
	}
}
