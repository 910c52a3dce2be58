package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/aretw0/zett"
	"github.com/aretw0/zett/pkg/core"
)

var (
	listJSON bool
	listTag  string
	listGlob string
)

// listCmd lists the notes in the vault.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		svc, err := zett.New(resolveVault(cfg), append(serviceOptions(cfg), zett.WithMustExist(true))...)
		if err != nil {
			fatal("Failed to open vault", err)
		}

		notes, err := svc.ListNotes(context.Background())
		if err != nil {
			fatal("Failed to list notes", err)
		}

		filtered := notes[:0]
		for _, n := range notes {
			if listTag != "" && !hasTag(n, listTag) {
				continue
			}
			if listGlob != "" {
				ok, err := doublestar.Match(listGlob, n.ID)
				if err != nil {
					fatal("Invalid glob pattern", err)
				}
				if !ok {
					continue
				}
			}
			filtered = append(filtered, n)
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(filtered); err != nil {
				fatal("Failed to encode notes", err)
			}
			return
		}

		for _, n := range filtered {
			fmt.Printf("%s\t%s\n", n.ID, noteTitle(n))
		}
	},
}

// hasTag reports whether the note's frontmatter tags contain tag.
func hasTag(n core.Note, tag string) bool {
	raw, ok := n.Metadata["tags"]
	if !ok {
		return false
	}
	tags, ok := raw.([]any)
	if !ok {
		return false
	}
	for _, t := range tags {
		if s, ok := t.(string); ok && s == tag {
			return true
		}
	}
	return false
}

// noteTitle pulls a display title from frontmatter or the first heading.
func noteTitle(n core.Note) string {
	if t, ok := n.Metadata["title"].(string); ok && t != "" {
		return t
	}
	for _, line := range strings.Split(n.Content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Only notes carrying this frontmatter tag")
	listCmd.Flags().StringVar(&listGlob, "glob", "", "Only note IDs matching this glob pattern")
	rootCmd.AddCommand(listCmd)
}
