package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/zett"
)

// deleteCmd removes a note and its index entries.
var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a note",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		svc, err := zett.New(resolveVault(cfg), append(serviceOptions(cfg), zett.WithMustExist(true))...)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		if err := svc.DeleteNote(context.Background(), args[0]); err != nil {
			fatal("Failed to delete note", err)
		}

		fmt.Printf("Deleted %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
