package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stdout, "Oops, something went wrong! %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "validator",
		Short:         "Read, write and validate character documents and derive their sheets",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.AddCommand(writeCmd())
	root.AddCommand(readCmd())
	root.AddCommand(sheetCmd())
	root.AddCommand(importCmd())
	root.AddCommand(listCmd())
	root.AddCommand(fetchCmd())
	root.AddCommand(versionCmd())
	return root
}
