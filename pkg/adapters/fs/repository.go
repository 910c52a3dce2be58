package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aretw0/zett/pkg/core"
)

// DefaultTemplate is written into the system directory on Initialize when
// no template exists yet. Placeholders are resolved at note creation.
const DefaultTemplate = `---
id: <id>
title: <title>
created: <created>
uid: <uid>
tags: []
---

`

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path         string       // Vault root directory
	SystemDir    string       // Hidden directory for index and template, e.g. ".zett"
	Extension    string       // Note file extension, default ".md"
	TemplateFile string       // Template filename inside SystemDir
	MustExist    bool         // Fail Initialize if the vault is missing
	Logger       *slog.Logger // Optional
}

// Repository implements core.Repository using plain files: one note per
// Markdown file with optional YAML frontmatter.
type Repository struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.SystemDir == "" {
		config.SystemDir = ".zett"
	}
	if config.Extension == "" {
		config.Extension = ".md"
	}
	if config.TemplateFile == "" {
		config.TemplateFile = "note.tmpl"
	}
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// TemplatePath returns the location of the note template.
func (r *Repository) TemplatePath() string {
	return filepath.Join(r.Path, r.config.SystemDir, r.config.TemplateFile)
}

// IndexPath returns the location of the content-hash index backing file.
func (r *Repository) IndexPath() string {
	return filepath.Join(r.Path, r.config.SystemDir, "index.json")
}

// Initialize performs the necessary setup for the repository: it creates
// the vault and system directories and seeds the default note template.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.MustExist {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("vault path does not exist: %s", r.Path)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("vault path is not a directory: %s", r.Path)
		}
	} else {
		if err := os.MkdirAll(r.Path, 0755); err != nil {
			return fmt.Errorf("failed to create vault directory: %w", err)
		}
	}

	systemDir := filepath.Join(r.Path, r.config.SystemDir)
	if err := os.MkdirAll(systemDir, 0755); err != nil {
		return fmt.Errorf("failed to create system directory: %w", err)
	}

	tmplPath := r.TemplatePath()
	if _, err := os.Stat(tmplPath); os.IsNotExist(err) {
		if err := os.WriteFile(tmplPath, []byte(DefaultTemplate), 0644); err != nil {
			return fmt.Errorf("failed to write default template: %w", err)
		}
		if r.config.Logger != nil {
			r.config.Logger.Debug("seeded default template", "path", tmplPath)
		}
	}

	return nil
}

// Template reads the note template fresh from disk. It is re-read per
// note creation so edits take effect immediately.
func (r *Repository) Template() (string, error) {
	data, err := os.ReadFile(r.TemplatePath())
	if err != nil {
		return "", fmt.Errorf("failed to read template: %w", err)
	}
	return string(data), nil
}

// filename maps a note ID to its path relative to the vault root.
func (r *Repository) filename(id string) string {
	if filepath.Ext(id) == r.config.Extension {
		return id
	}
	return id + r.config.Extension
}

// Save persists a note to the filesystem.
//
// Workflow:
//  1. Validate the ID.
//  2. Create parent directories (namespace support).
//  3. Serialize (frontmatter + content) and write atomically to disk.
func (r *Repository) Save(ctx context.Context, n core.Note) error {
	if n.ID == "" {
		return core.ErrEmptyID
	}

	fullPath := filepath.Join(r.Path, r.filename(n.ID))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	data, err := serialize(n)
	if err != nil {
		return fmt.Errorf("failed to serialize note: %w", err)
	}

	if r.config.Logger != nil {
		r.config.Logger.Debug("writing note to disk", "id", n.ID, "path", fullPath)
	}

	if err := writeFileAtomic(fullPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Get retrieves a note from the filesystem and parses its frontmatter.
func (r *Repository) Get(ctx context.Context, id string) (core.Note, error) {
	fullPath := filepath.Join(r.Path, r.filename(id))

	f, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return core.Note{}, fmt.Errorf("%w: %s", core.ErrNotFound, id)
		}
		return core.Note{}, err
	}
	defer f.Close()

	note, err := parse(f)
	if err != nil {
		return core.Note{}, fmt.Errorf("failed to parse note %s: %w", id, err)
	}
	note.ID = id

	return *note, nil
}

// Raw returns the exact on-disk bytes of a note.
func (r *Repository) Raw(ctx context.Context, id string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(r.Path, r.filename(id)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", core.ErrNotFound, id)
		}
		return nil, err
	}
	return data, nil
}

// List scans the vault for all notes, skipping the .git and system
// directories. Unparseable files are skipped with a warning.
func (r *Repository) List(ctx context.Context) ([]core.Note, error) {
	var notes []core.Note

	err := filepath.WalkDir(r.Path, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == r.config.SystemDir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(d.Name()) != r.config.Extension {
			return nil
		}
		if strings.HasPrefix(d.Name(), TempFilePrefix) {
			return nil
		}

		relPath, err := filepath.Rel(r.Path, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)
		id := strings.TrimSuffix(relPath, r.config.Extension)

		note, err := r.Get(ctx, id)
		if err != nil {
			if r.config.Logger != nil {
				r.config.Logger.Warn("failed to parse note during list", "id", id, "error", err)
			}
			return nil // Continue walking
		}

		notes = append(notes, note)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk vault dir: %w", err)
	}

	return notes, nil
}

// Delete removes a note.
func (r *Repository) Delete(ctx context.Context, id string) error {
	fullPath := filepath.Join(r.Path, r.filename(id))

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", core.ErrNotFound, id)
	}

	if r.config.Logger != nil {
		r.config.Logger.Debug("deleting note", "id", id, "path", fullPath)
	}

	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}

	return nil
}

// resolveID maps an absolute file path back to a note ID.
func (r *Repository) resolveID(path string) (string, error) {
	relPath, err := filepath.Rel(r.Path, path)
	if err != nil {
		return "", err
	}
	relPath = filepath.ToSlash(relPath)
	return strings.TrimSuffix(relPath, r.config.Extension), nil
}
