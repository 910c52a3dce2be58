package core

import "context"

// Repository defines the contract for storing and retrieving notes.
// Adhering to this interface allows the core to be independent of the
// underlying storage mechanism.
type Repository interface {
	// Save persists a note. It creates if not exists, or updates if it does.
	Save(ctx context.Context, n Note) error

	// Get retrieves a note by its ID.
	Get(ctx context.Context, id string) (Note, error)

	// Raw returns the exact on-disk bytes of a note. Content digests are
	// computed over these bytes so that a reindex agrees with the bytes
	// written at creation time.
	Raw(ctx context.Context, id string) ([]byte, error)

	// List returns all available notes.
	List(ctx context.Context) ([]Note, error)

	// Delete removes a note by its ID.
	Delete(ctx context.Context, id string) error

	// Initialize ensures the underlying storage is ready (e.g. create
	// directories, write the default template).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for repositories that can emit change
// events for the vault.
type Watchable interface {
	// Watch observes the repository for changes matching pattern.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// Indexer persists the content-hash index: a durable mapping from content
// digest to note ID. The zero state is empty; Load on a missing backing
// file succeeds and leaves the index as-is.
type Indexer interface {
	// Load reads the backing file at path if it exists.
	Load(path string) error

	// Save serializes the full mapping to path.
	Save(path string) error

	// Get returns the value for key, or false if absent.
	Get(key string) (string, bool)

	// Put inserts or replaces the mapping for key.
	Put(key, value string)

	// Delete removes the mapping for key.
	Delete(key string)

	// Len returns the number of entries.
	Len() int

	// Pairs returns a copy of the full mapping.
	Pairs() map[string]string
}
