package kv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string]string
	}{
		{
			name:    "Empty",
			entries: map[string]string{},
		},
		{
			name:    "Basic",
			entries: map[string]string{"a1b2c3d4e5f60718": "20240101120000"},
		},
		{
			name: "Special Characters",
			entries: map[string]string{
				"quotes":    `he said "hi"`,
				"backslash": `C:\notes\inbox`,
				"control":   "line1\nline2\ttabbed",
				"unicode":   "zettelkästen",
			},
		},
		{
			name: "Many Entries",
			entries: map[string]string{
				"k1": "v1", "k2": "v2", "k3": "v3", "k4": "", "": "empty key",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "index.json")

			s := New()
			for k, v := range tt.entries {
				s.Put(k, v)
			}
			require.NoError(t, s.Save(path))

			fresh := New()
			require.NoError(t, fresh.Load(path))
			assert.Equal(t, tt.entries, fresh.Pairs())
		})
	}
}

func TestLoadIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")

	s := New()
	s.Put("k1", "v1")
	s.Put("k2", "v2")
	require.NoError(t, s.Save(path))

	fresh := New()
	require.NoError(t, fresh.Load(path))
	require.NoError(t, fresh.Load(path))

	// Second load is a strict overwrite, not an accumulation.
	assert.Equal(t, 2, fresh.Len())
	assert.Equal(t, s.Pairs(), fresh.Pairs())
}

func TestPutOverwrite(t *testing.T) {
	s := New()
	s.Put("k", "a")
	s.Put("k", "b")

	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, 1, s.Len())
}

func TestLoadMissingFile(t *testing.T) {
	s := New()
	err := s.Load(filepath.Join(t.TempDir(), "does-not-exist.json"))

	assert.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestLoadKeepsExistingEntriesOnMissingFile(t *testing.T) {
	s := New()
	s.Put("k", "v")

	require.NoError(t, s.Load(filepath.Join(t.TempDir(), "nope.json")))
	assert.Equal(t, 1, s.Len())
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "Array Root", content: `[1,2,3]`, wantErr: true},
		{name: "Null Root", content: `null`, wantErr: true},
		{name: "Number Root", content: `42`, wantErr: true},
		{name: "String Root", content: `"hello"`, wantErr: true},
		{name: "Nested Object Value", content: `{"k": {"nested": true}}`, wantErr: true},
		{name: "Number Value", content: `{"k": 1}`, wantErr: true},
		{name: "Boolean Value", content: `{"k": true}`, wantErr: true},
		{name: "Null Value", content: `{"k": null}`, wantErr: true},
		{name: "Truncated", content: `{"k": "v"`, wantErr: true},
		{name: "Empty File", content: ``, wantErr: false},
		{name: "Whitespace Only", content: "  \n\t", wantErr: false},
		{name: "Empty Object", content: `{}`, wantErr: false},
		{name: "Flat Strings", content: `{"k": "v"}`, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "index.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			s := New()
			err := s.Load(path)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrParse)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadOverwritesInMemoryEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"k": "from-disk", "other": "x"}`), 0644))

	s := New()
	s.Put("k", "in-memory")
	s.Put("extra", "kept")
	require.NoError(t, s.Load(path))

	v, _ := s.Get("k")
	assert.Equal(t, "from-disk", v)
	v, _ = s.Get("extra")
	assert.Equal(t, "kept", v)
	assert.Equal(t, 3, s.Len())
}

func TestSaveEmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")

	require.NoError(t, New().Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestSaveCreatesNoTempLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index.json")

	s := New()
	s.Put("k", "v")
	require.NoError(t, s.Save(path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "index.json", entries[0].Name())
}

func TestPairsIsACopy(t *testing.T) {
	s := New()
	s.Put("k", "v")

	pairs := s.Pairs()
	pairs["k"] = "mutated"
	pairs["new"] = "entry"

	v, _ := s.Get("k")
	assert.Equal(t, "v", v)
	assert.Equal(t, 1, s.Len())
}

func TestDelete(t *testing.T) {
	s := New()
	s.Put("k", "v")
	s.Delete("k")
	s.Delete("absent") // no-op

	_, ok := s.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}
