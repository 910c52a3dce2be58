package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/zett"
	"github.com/aretw0/zett/internal/config"
)

var (
	verbose   bool
	cfgFile   string
	vaultFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "zett",
	Short: "A plain-text zettelkasten with a content-hash index",
	Long: `zett keeps timestamped Markdown notes in a vault directory.
Notes are created from a placeholder template and tracked in a small
JSON index that maps content digests back to note IDs.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to zett.toml")
	rootCmd.PersistentFlags().StringVar(&vaultFlag, "vault", "", "Vault directory (overrides config)")
}

// loadConfig reads the TOML configuration (defaults when absent).
func loadConfig() *config.Config {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fatal("Failed to load config", err)
	}
	return cfg
}

// resolveVault picks the vault directory: flag first, then config.
func resolveVault(cfg *config.Config) string {
	if vaultFlag != "" {
		return config.ExpandHome(vaultFlag)
	}
	return cfg.VaultPath()
}

// serviceOptions translates config into service options.
func serviceOptions(cfg *config.Config) []zett.Option {
	return []zett.Option{
		zett.WithSystemDir(cfg.Vault.SystemDir),
		zett.WithExtension(cfg.Note.Extension),
		zett.WithTemplateFile(cfg.Note.Template),
		zett.WithHashAlgorithm(cfg.Index.Algorithm),
		zett.WithLogger(slog.Default()),
	}
}
