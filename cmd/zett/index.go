package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/zett"
)

// indexCmd rebuilds the content-hash index from the vault's files.
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the content-hash index",
	Long: `Walks the vault, hashes every note's on-disk bytes with the
configured algorithm and rewrites the index file. Stale entries for
notes that no longer exist are dropped.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		svc, err := zett.New(resolveVault(cfg), append(serviceOptions(cfg), zett.WithMustExist(true))...)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		count, err := svc.Reindex(context.Background())
		if err != nil {
			fatal("Failed to rebuild index", err)
		}

		fmt.Printf("Indexed %d notes\n", count)
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
