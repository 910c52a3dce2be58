// Package kv implements the persistent index store: an in-memory mapping
// from string keys to string values, durable via whole-file JSON
// serialization. The backing file is a single flat JSON object whose keys
// and values are all strings; anything else is rejected on load.
//
// The store is single-threaded by contract. Callers that share a Store
// across goroutines must serialize access themselves.
package kv

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// ErrParse signals that the backing file exists but is not a flat
// string-to-string JSON object. Callers can use errors.Is to distinguish
// it from plain I/O failures.
var ErrParse = errors.New("backing file is not a flat string map")

// Store holds the in-memory mapping. Keys are unique; inserting an
// existing key replaces its value entirely.
type Store struct {
	entries map[string]string
}

// New returns an empty store.
func New() *Store {
	return &Store{
		entries: make(map[string]string),
	}
}

// Load reads the backing file at path and merges its pairs into the store,
// overwriting entries that share a key. A missing file is not an error:
// the store is left as-is (typically empty). A file that is empty or
// contains {} loads successfully and contributes nothing.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil // Start fresh
	}
	if err != nil {
		return fmt.Errorf("failed to read index: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	// json.Unmarshal accepts "null" for a map target without complaint,
	// so the object root has to be checked up front.
	if trimmed[0] != '{' {
		return fmt.Errorf("%w: root is not an object", ErrParse)
	}

	parsed := make(map[string]string)
	if err := json.Unmarshal(trimmed, &parsed); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}

	for k, v := range parsed {
		s.entries[k] = v
	}
	return nil
}

// Save serializes the full mapping as a JSON object and writes it to path
// via a temp file + rename. An empty store serializes to {}. Key order in
// the file follows the encoder (sorted), not insertion order; only the set
// of pairs is preserved across a round trip.
func (s *Store) Save(path string) error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return err
	}

	return writeFileAtomic(path, data, 0644)
}

// Get returns the current value for key, or false if absent. It never
// mutates the store.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Put inserts or replaces the mapping for key. The prior value, if any,
// is discarded.
func (s *Store) Put(key, value string) {
	s.entries[key] = value
}

// Delete removes the mapping for key if present.
func (s *Store) Delete(key string) {
	delete(s.entries, key)
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Pairs returns a copy of the mapping. Mutating the returned map does not
// affect the store.
func (s *Store) Pairs() map[string]string {
	out := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}
