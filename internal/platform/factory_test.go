package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/zett/internal/hash"
	"github.com/aretw0/zett/pkg/core"
)

func TestNewCreatesVaultAndIndex(t *testing.T) {
	vault := filepath.Join(t.TempDir(), "vault")

	svc, err := New(vault, WithAutoInit(true))
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(vault, ".zett"))
	assert.FileExists(t, filepath.Join(vault, ".zett", "note.tmpl"))

	state := svc.State().(core.ServiceState)
	assert.Equal(t, "fs", state.RepositoryType)
	assert.Equal(t, hash.AlgXXH3, state.HashAlgorithm)
	assert.Equal(t, 0, state.IndexEntries)
}

func TestNewMustExist(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), WithMustExist(true))
	assert.Error(t, err)
}

func TestNewLoadsExistingIndex(t *testing.T) {
	vault := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(vault, ".zett"), 0755))
	indexPath := filepath.Join(vault, ".zett", "index.json")
	require.NoError(t, os.WriteFile(indexPath, []byte(`{"abc": "20240101000000"}`), 0644))

	svc, err := New(vault)
	require.NoError(t, err)

	id, ok := svc.Lookup("abc")
	assert.True(t, ok)
	assert.Equal(t, "20240101000000", id)
}

func TestNewRejectsCorruptIndex(t *testing.T) {
	vault := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(vault, ".zett"), 0755))
	indexPath := filepath.Join(vault, ".zett", "index.json")
	require.NoError(t, os.WriteFile(indexPath, []byte(`[1,2,3]`), 0644))

	_, err := New(vault)
	assert.Error(t, err)
}

func TestNewEndToEndCreate(t *testing.T) {
	vault := t.TempDir()
	svc, err := New(vault,
		WithAutoInit(true),
		WithClock(func() time.Time {
			return time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)
		}),
	)
	require.NoError(t, err)

	note, err := svc.CreateNote(context.Background(), "My Note", "# <title>\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "20240304050607", note.ID)
	assert.FileExists(t, filepath.Join(vault, "20240304050607.md"))

	// A fresh service over the same vault sees the index entry.
	again, err := New(vault)
	require.NoError(t, err)
	count, err := again.Reindex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	id, ok := again.Lookup(hash.Sum([]byte("# My Note\n"), hash.AlgXXH3))
	assert.True(t, ok)
	assert.Equal(t, "20240304050607", id)
}
