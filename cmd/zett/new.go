package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/zett"
	"github.com/aretw0/zett/internal/editor"
	"github.com/aretw0/zett/pkg/template"
)

var (
	noEdit  bool
	newSubs []string
)

// newCmd creates a note from the vault template.
var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Create a new note",
	Long: `Renders the vault's note template with the built-in substitutions
(id, title, created, uid) plus any --set overrides, saves the result
as a timestamped note and opens it in your editor.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := strings.Join(args, " ")
		cfg := loadConfig()
		vault := resolveVault(cfg)

		opts := append(serviceOptions(cfg), zett.WithMustExist(true))
		svc, err := zett.New(vault, opts...)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		tmplPath := filepath.Join(vault, cfg.Vault.SystemDir, cfg.Note.Template)
		tmplData, err := os.ReadFile(tmplPath)
		if err != nil {
			fatal("Failed to read note template", err)
		}

		extra := template.Substitutions{}
		for _, s := range newSubs {
			k, v, ok := strings.Cut(s, "=")
			if !ok {
				fatal("Invalid --set value", fmt.Errorf("expected name=value, got %q", s))
			}
			extra[k] = v
		}

		note, err := svc.CreateNote(context.Background(), title, string(tmplData), extra)
		if err != nil {
			fatal("Failed to create note", err)
		}

		notePath := filepath.Join(vault, note.ID+cfg.Note.Extension)
		fmt.Printf("Created %s\n", notePath)

		if !noEdit {
			if err := editor.Open(cfg.Editor.Command, notePath); err != nil {
				fatal("Failed to open editor", err)
			}
		}
	},
}

func init() {
	newCmd.Flags().BoolVar(&noEdit, "no-edit", false, "Do not open the note in an editor")
	newCmd.Flags().StringArrayVar(&newSubs, "set", nil, "Extra template substitution (name=value, repeatable)")
	rootCmd.AddCommand(newCmd)
}
