package zett

import (
	"log/slog"
	"time"

	"github.com/aretw0/zett/internal/platform"
	"github.com/aretw0/zett/pkg/core"
)

// --- Configuration ---

// Option defines a functional option for configuring zett.
type Option = platform.Option

// WithAutoInit enables automatic initialization of the vault (creates the
// directory tree and seeds the default template).
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".zett").
func WithSystemDir(name string) Option {
	return platform.WithSystemDir(name)
}

// WithExtension sets the note file extension.
func WithExtension(ext string) Option {
	return platform.WithExtension(ext)
}

// WithTemplateFile sets the template filename inside the system dir.
func WithTemplateFile(name string) Option {
	return platform.WithTemplateFile(name)
}

// WithHashAlgorithm selects the content digest algorithm (xxh3, fnv, blake2b).
func WithHashAlgorithm(alg string) Option {
	return platform.WithHashAlgorithm(alg)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithIndexer allows injecting a custom index store.
func WithIndexer(idx core.Indexer) Option {
	return platform.WithIndexer(idx)
}

// WithClock overrides the timestamp source (useful for testing).
func WithClock(clock func() time.Time) Option {
	return platform.WithClock(clock)
}

// --- Factory ---

// New creates a new zett Service.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a repository explicitly.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// FindVaultRoot recursively looks upwards for a vault root indicator.
func FindVaultRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
