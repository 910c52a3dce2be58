package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/zett"
)

// versionCmd prints the zett version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("zett v%s\n", strings.TrimSpace(zett.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
