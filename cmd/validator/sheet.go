package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/character-validator/internal/domain/assets"
	domainsheet "github.com/KirkDiggler/character-validator/internal/domain/sheet"
	dnderr "github.com/KirkDiggler/character-validator/internal/errors"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func sheetCmd() *cobra.Command {
	var format string
	var ids []string
	cmd := &cobra.Command{
		Use:   "sheet [filename]",
		Short: "Derive the character sheet of a document or of stored characters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSheet(cmd, args, ids, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", formatYAML, "Output format: yaml or json")
	cmd.Flags().StringSliceVar(&ids, "id", nil, "Stored character id; repeat or comma separate for several")
	return cmd
}

func runSheet(cmd *cobra.Command, args, ids []string, format string) error {
	if format != formatYAML && format != formatJSON {
		return dnderr.InvalidArgumentf("unknown format %q, expected yaml or json", format)
	}

	if (len(args) == 0) == (len(ids) == 0) {
		return dnderr.InvalidArgument("pass either a filename or --id")
	}

	ctx := context.Background()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	var sheets []*domainsheet.CharacterSheet
	if len(ids) > 0 {
		sheets, err = a.provider.SheetService.DeriveSheets(ctx, ids)
		if err != nil {
			return err
		}
	} else {
		character, readErr := readCharacter(args[0])
		if readErr != nil {
			return readErr
		}

		result, deriveErr := a.provider.SheetService.DeriveSheet(ctx, character)
		if deriveErr != nil {
			return deriveErr
		}
		sheets = append(sheets, result)
	}

	return printSheets(cmd.OutOrStdout(), sheets, format)
}

func readCharacter(path string) (*assets.Character, error) {
	asset, err := assets.ReadAsset(path)
	if err != nil {
		return nil, err
	}

	character, ok := asset.AsCharacter()
	if !ok {
		return nil, dnderr.InvalidArgumentf("%s holds a %s asset, not a character", path, asset.Type)
	}

	return character, nil
}

func printSheets(w io.Writer, sheets []*domainsheet.CharacterSheet, format string) error {
	var value any = sheets
	if len(sheets) == 1 {
		value = sheets[0]
	}

	if format == formatJSON {
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode sheet: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("failed to encode sheet: %w", err)
	}
	return enc.Close()
}
