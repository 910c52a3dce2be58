package main

import (
	"context"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/aretw0/zett"
)

var readJSON bool

// readCmd prints a note's content.
var readCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		svc, err := zett.New(resolveVault(cfg), append(serviceOptions(cfg), zett.WithMustExist(true))...)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		note, err := svc.GetNote(context.Background(), args[0])
		if err != nil {
			fatal("Failed to read note", err)
		}

		if readJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(note); err != nil {
				fatal("Failed to encode note", err)
			}
			return
		}

		fmt.Print(note.Content)
	},
}

func init() {
	readCmd.Flags().BoolVar(&readJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(readCmd)
}
