package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/zett"
)

// lookupCmd resolves a content digest to a note ID.
var lookupCmd = &cobra.Command{
	Use:   "lookup <digest>",
	Short: "Resolve a content digest to a note ID",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		svc, err := zett.New(resolveVault(cfg), append(serviceOptions(cfg), zett.WithMustExist(true))...)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		id, ok := svc.Lookup(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "No note found for digest %s\n", args[0])
			os.Exit(1)
		}
		fmt.Println(id)
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
