// Package config loads the zett configuration file.
//
// The file is TOML, looked up at {vault}/zett.toml or the path given via
// --config. Missing file means defaults; a present file only overrides
// what it sets.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aretw0/zett/internal/hash"
)

// Config is the top-level configuration.
type Config struct {
	Vault  VaultConfig  `toml:"vault"`
	Note   NoteConfig   `toml:"note"`
	Index  IndexConfig  `toml:"index"`
	Editor EditorConfig `toml:"editor"`
}

// VaultConfig locates the notes directory.
type VaultConfig struct {
	Path      string `toml:"path"`
	SystemDir string `toml:"system_dir"`
}

// NoteConfig controls note files.
type NoteConfig struct {
	Extension string `toml:"extension"`
	Template  string `toml:"template"` // Filename inside the system dir
}

// IndexConfig controls the content-hash index.
type IndexConfig struct {
	Algorithm string `toml:"algorithm"` // xxh3, fnv or blake2b
}

// EditorConfig controls how notes are opened for editing.
type EditorConfig struct {
	Command string `toml:"command"` // Falls back to $VISUAL / $EDITOR
}

// Defaults returns a Config with sane defaults.
func Defaults() *Config {
	return &Config{
		Vault: VaultConfig{
			Path:      "~/zettel",
			SystemDir: ".zett",
		},
		Note: NoteConfig{
			Extension: ".md",
			Template:  "note.tmpl",
		},
		Index: IndexConfig{
			Algorithm: hash.AlgXXH3,
		},
	}
}

// Load reads a TOML config file and returns the parsed Config.
// If path is empty, the default location is tried; a missing file there
// just yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		path = ExpandHome("~/zettel/zett.toml")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Index.Algorithm {
	case hash.AlgXXH3, hash.AlgFNV1a, hash.AlgBlake2b:
	default:
		return fmt.Errorf("unknown index algorithm: %q", c.Index.Algorithm)
	}
	if c.Vault.Path == "" {
		return fmt.Errorf("vault path cannot be empty")
	}
	return nil
}

// VaultPath returns the vault directory with ~ expanded.
func (c *Config) VaultPath() string {
	return ExpandHome(c.Vault.Path)
}

// ExpandHome resolves a leading ~/ to the user's home directory.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
