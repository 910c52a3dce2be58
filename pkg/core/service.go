package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/zett/internal/hash"
	"github.com/aretw0/zett/pkg/template"
)

// IDFormat is the layout for timestamp note IDs (zettelkasten style).
const IDFormat = "20060102150405"

// ServiceConfig holds the collaborators and policies for the Service.
type ServiceConfig struct {
	IndexPath     string           // Backing file for the content-hash index
	HashAlgorithm string           // hash.AlgXXH3, hash.AlgFNV1a or hash.AlgBlake2b
	Logger        *slog.Logger     // Optional
	Clock         func() time.Time // Defaults to time.Now
	UID           func() string    // Defaults to uuid.NewString
}

// Service handles the business logic for notes. It orchestrates the
// repository, the template engine and the content-hash index.
type Service struct {
	repo   Repository
	index  Indexer
	config ServiceConfig
}

// NewService creates a new Service.
func NewService(repo Repository, index Indexer, config ServiceConfig) *Service {
	if config.Clock == nil {
		config.Clock = time.Now
	}
	if config.UID == nil {
		config.UID = uuid.NewString
	}
	if config.HashAlgorithm == "" {
		config.HashAlgorithm = hash.AlgXXH3
	}
	return &Service{repo: repo, index: index, config: config}
}

// CreateNote renders templateText and persists the result as a new note.
//
// The substitution map is built fresh per call: 'id' (timestamp ID),
// 'created' (RFC 3339), 'title' and 'uid'. Entries in extra overwrite the
// built-ins on name collision. The rendered bytes are hashed and recorded
// in the index before it is saved to disk.
func (s *Service) CreateNote(ctx context.Context, title, templateText string, extra template.Substitutions) (Note, error) {
	now := s.config.Clock()
	id := now.Format(IDFormat)

	if _, err := s.repo.Get(ctx, id); err == nil {
		return Note{}, fmt.Errorf("%w: %s", ErrExists, id)
	}

	subs := template.Substitutions{
		"id":      id,
		"title":   title,
		"created": now.Format(time.RFC3339),
		"uid":     s.config.UID(),
	}
	for k, v := range extra {
		subs[k] = v
	}

	content := template.Render(templateText, subs)
	note := Note{ID: id, Content: content}

	if err := s.repo.Save(ctx, note); err != nil {
		return Note{}, fmt.Errorf("failed to save note: %w", err)
	}

	digest := hash.Sum([]byte(content), s.config.HashAlgorithm)
	s.index.Put(digest, id)
	if err := s.index.Save(s.config.IndexPath); err != nil {
		return Note{}, fmt.Errorf("failed to save index: %w", err)
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("note created", "id", id, "digest", digest)
	}

	return note, nil
}

// GetNote retrieves a note.
func (s *Service) GetNote(ctx context.Context, id string) (Note, error) {
	if id == "" {
		return Note{}, ErrEmptyID
	}
	return s.repo.Get(ctx, id)
}

// ListNotes retrieves all notes.
func (s *Service) ListNotes(ctx context.Context) ([]Note, error) {
	return s.repo.List(ctx)
}

// DeleteNote removes a note and drops every index entry pointing at it.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	dropped := false
	for digest, noteID := range s.index.Pairs() {
		if noteID == id {
			s.index.Delete(digest)
			dropped = true
		}
	}
	if !dropped {
		return nil
	}
	return s.index.Save(s.config.IndexPath)
}

// Reindex rebuilds the content-hash index from scratch by walking the
// vault, hashing every note's on-disk bytes. Returns the number of notes
// indexed.
func (s *Service) Reindex(ctx context.Context) (int, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list notes: %w", err)
	}

	for digest := range s.index.Pairs() {
		s.index.Delete(digest)
	}

	count := 0
	for _, n := range notes {
		raw, err := s.repo.Raw(ctx, n.ID)
		if err != nil {
			if s.config.Logger != nil {
				s.config.Logger.Warn("skipping unreadable note during reindex", "id", n.ID, "error", err)
			}
			continue
		}
		s.index.Put(hash.Sum(raw, s.config.HashAlgorithm), n.ID)
		count++
	}

	if err := s.index.Save(s.config.IndexPath); err != nil {
		return count, fmt.Errorf("failed to save index: %w", err)
	}

	if s.config.Logger != nil {
		s.config.Logger.Debug("reindex complete", "notes", count, "entries", s.index.Len())
	}

	return count, nil
}

// Lookup resolves a content digest to a note ID via the index.
func (s *Service) Lookup(digest string) (string, bool) {
	return s.index.Get(digest)
}

// Watch observes changes in the repository if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx, pattern)
}
