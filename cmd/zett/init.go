package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/zett"
)

const starterConfig = `# zett configuration

[vault]
path = "%s"
system_dir = ".zett"

[note]
extension = ".md"
template = "note.tmpl"

[index]
algorithm = "xxh3"

[editor]
# command = "code --wait"
`

// initCmd initializes a vault in the given (or current) directory.
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a new vault",
	Long: `Creates the vault directory, the hidden system directory with the
default note template, an empty index and a starter zett.toml.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			fatal("Failed to resolve path", err)
		}

		cfg := loadConfig()
		opts := append(serviceOptions(cfg), zett.WithAutoInit(true))
		if _, err := zett.New(abs, opts...); err != nil {
			fatal("Failed to initialize vault", err)
		}

		cfgPath := filepath.Join(abs, "zett.toml")
		if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
			content := fmt.Sprintf(starterConfig, abs)
			if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
				fatal("Failed to write zett.toml", err)
			}
		}

		fmt.Printf("Initialized vault in %s\n", abs)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
