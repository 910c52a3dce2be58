package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/zett"
)

var watchGlob string

// watchCmd observes the vault and keeps the index current.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault and reindex on changes",
	Long: `Watches the vault for note creations, edits and deletions. Each
batch of changes triggers an index rebuild so content digests stay
accurate. Stops on Ctrl-C.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		svc, err := zett.New(resolveVault(cfg), append(serviceOptions(cfg), zett.WithMustExist(true))...)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := svc.Watch(ctx, watchGlob)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		fmt.Println("Watching vault (Ctrl-C to stop)...")
		for ev := range events {
			slog.Info("change detected", "type", ev.Type, "id", ev.ID)
			if _, err := svc.Reindex(ctx); err != nil {
				slog.Error("reindex failed", "error", err)
			}
		}
		fmt.Println("Watcher stopped")
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchGlob, "glob", "", "Only react to note IDs matching this glob pattern")
	rootCmd.AddCommand(watchCmd)
}
