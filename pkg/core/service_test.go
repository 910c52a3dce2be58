package core

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/zett/internal/hash"
	"github.com/aretw0/zett/pkg/kv"
	"github.com/aretw0/zett/pkg/template"
)

// memRepo is an in-memory Repository for exercising the service without
// touching the filesystem adapter.
type memRepo struct {
	notes map[string]Note
}

func newMemRepo() *memRepo {
	return &memRepo{notes: make(map[string]Note)}
}

func (m *memRepo) Save(_ context.Context, n Note) error {
	m.notes[n.ID] = n
	return nil
}

func (m *memRepo) Get(_ context.Context, id string) (Note, error) {
	n, ok := m.notes[id]
	if !ok {
		return Note{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return n, nil
}

func (m *memRepo) Raw(_ context.Context, id string) ([]byte, error) {
	n, ok := m.notes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return []byte(n.Content), nil
}

func (m *memRepo) List(_ context.Context) ([]Note, error) {
	var out []Note
	for _, n := range m.notes {
		out = append(out, n)
	}
	return out, nil
}

func (m *memRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.notes[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(m.notes, id)
	return nil
}

func (m *memRepo) Initialize(_ context.Context) error { return nil }

func newTestService(t *testing.T, repo Repository) (*Service, *kv.Store, string) {
	t.Helper()
	indexPath := filepath.Join(t.TempDir(), "index.json")
	index := kv.New()
	svc := NewService(repo, index, ServiceConfig{
		IndexPath: indexPath,
		Clock: func() time.Time {
			return time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
		},
		UID: func() string { return "fixed-uid" },
	})
	return svc, index, indexPath
}

const testTemplate = "---\nid: <id>\ntitle: <title>\ncreated: <created>\nuid: <uid>\n---\n\n"

func TestCreateNote(t *testing.T) {
	repo := newMemRepo()
	svc, index, indexPath := newTestService(t, repo)
	ctx := context.Background()

	note, err := svc.CreateNote(ctx, "Hello World", testTemplate, nil)
	require.NoError(t, err)

	assert.Equal(t, "20240102150405", note.ID)
	want := "---\nid: 20240102150405\ntitle: Hello World\ncreated: 2024-01-02T15:04:05Z\nuid: fixed-uid\n---\n\n"
	assert.Equal(t, want, note.Content)

	// The note was persisted.
	saved, err := repo.Get(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, note.Content, saved.Content)

	// The content digest points back at the ID.
	digest := hash.Sum([]byte(note.Content), hash.AlgXXH3)
	id, ok := svc.Lookup(digest)
	assert.True(t, ok)
	assert.Equal(t, note.ID, id)

	// The index reached disk.
	fresh := kv.New()
	require.NoError(t, fresh.Load(indexPath))
	assert.Equal(t, index.Pairs(), fresh.Pairs())
}

func TestCreateNoteExtraSubstitutions(t *testing.T) {
	repo := newMemRepo()
	svc, _, _ := newTestService(t, repo)

	note, err := svc.CreateNote(context.Background(), "t", "tags: <tags>\n", template.Substitutions{"tags": "inbox"})
	require.NoError(t, err)
	assert.Equal(t, "tags: inbox\n", note.Content)
}

func TestCreateNoteCollision(t *testing.T) {
	repo := newMemRepo()
	svc, _, _ := newTestService(t, repo)
	ctx := context.Background()

	_, err := svc.CreateNote(ctx, "first", testTemplate, nil)
	require.NoError(t, err)

	// Same fixed clock, same ID.
	_, err = svc.CreateNote(ctx, "second", testTemplate, nil)
	assert.ErrorIs(t, err, ErrExists)
}

func TestDeleteNoteDropsIndexEntries(t *testing.T) {
	repo := newMemRepo()
	svc, index, _ := newTestService(t, repo)
	ctx := context.Background()

	note, err := svc.CreateNote(ctx, "doomed", testTemplate, nil)
	require.NoError(t, err)
	require.Equal(t, 1, index.Len())

	require.NoError(t, svc.DeleteNote(ctx, note.ID))

	assert.Equal(t, 0, index.Len())
	_, err = svc.GetNote(ctx, note.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteNoteEmptyID(t *testing.T) {
	repo := newMemRepo()
	svc, _, _ := newTestService(t, repo)

	assert.ErrorIs(t, svc.DeleteNote(context.Background(), ""), ErrEmptyID)
}

func TestReindex(t *testing.T) {
	repo := newMemRepo()
	svc, index, indexPath := newTestService(t, repo)
	ctx := context.Background()

	// Notes written behind the service's back.
	repo.notes["20230101000000"] = Note{ID: "20230101000000", Content: "alpha"}
	repo.notes["20230202000000"] = Note{ID: "20230202000000", Content: "beta"}

	// A stale entry that no note produces anymore.
	index.Put("deadbeefdeadbeef", "20220101000000")

	count, err := svc.Reindex(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, index.Len())

	id, ok := svc.Lookup(hash.Sum([]byte("alpha"), hash.AlgXXH3))
	assert.True(t, ok)
	assert.Equal(t, "20230101000000", id)

	_, ok = svc.Lookup("deadbeefdeadbeef")
	assert.False(t, ok)

	fresh := kv.New()
	require.NoError(t, fresh.Load(indexPath))
	assert.Equal(t, index.Pairs(), fresh.Pairs())
}

func TestWatchUnsupported(t *testing.T) {
	repo := newMemRepo()
	svc, _, _ := newTestService(t, repo)

	_, err := svc.Watch(context.Background(), "**/*.md")
	assert.Error(t, err)
}

func TestServiceIntrospection(t *testing.T) {
	repo := newMemRepo()
	svc, index, _ := newTestService(t, repo)
	index.Put("k", "v")

	state, ok := svc.State().(ServiceState)
	require.True(t, ok)
	assert.Equal(t, 1, state.IndexEntries)
	assert.Equal(t, hash.AlgXXH3, state.HashAlgorithm)
	assert.Equal(t, "service", svc.ComponentType())
}
