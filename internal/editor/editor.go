// Package editor spawns the user's external editor on a note file.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Resolve picks the editor command: explicit configuration first, then
// $VISUAL, then $EDITOR, then vi.
func Resolve(configured string) string {
	if configured != "" {
		return configured
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "vi"
}

// Open blocks until the editor exits. The configured command may carry
// arguments ("code --wait"); the file path is appended last.
func Open(configured, path string) error {
	parts := strings.Fields(Resolve(configured))
	if len(parts) == 0 {
		return fmt.Errorf("no editor configured")
	}

	args := append(parts[1:], path)
	cmd := exec.Command(parts[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s failed: %w", parts[0], err)
	}
	return nil
}
