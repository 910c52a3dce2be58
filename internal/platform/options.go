package platform

import (
	"log/slog"
	"time"

	"github.com/aretw0/zett/pkg/core"
)

// options holds the internal configuration for the zett service.
type options struct {
	autoInit     bool
	mustExist    bool
	systemDir    string
	extension    string
	templateFile string
	hashAlg      string
	repository   core.Repository
	indexer      core.Indexer
	logger       *slog.Logger
	clock        func() time.Time
}

// Option defines a functional option for configuring zett.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		autoInit:     false,
		mustExist:    false,
		systemDir:    ".zett",
		extension:    ".md",
		templateFile: "note.tmpl",
	}
}

// WithAutoInit enables automatic initialization of the vault (creates the
// directory tree and seeds the default template).
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithMustExist ensures the vault directory must already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithSystemDir allows specifying the hidden directory name (e.g. ".zett").
func WithSystemDir(name string) Option {
	return func(o *options) {
		if name != "" {
			o.systemDir = name
		}
	}
}

// WithExtension sets the note file extension.
func WithExtension(ext string) Option {
	return func(o *options) {
		if ext != "" {
			o.extension = ext
		}
	}
}

// WithTemplateFile sets the template filename inside the system dir.
func WithTemplateFile(name string) Option {
	return func(o *options) {
		if name != "" {
			o.templateFile = name
		}
	}
}

// WithHashAlgorithm selects the content digest algorithm.
func WithHashAlgorithm(alg string) Option {
	return func(o *options) {
		o.hashAlg = alg
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock, s3).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithIndexer allows injecting a custom index store.
func WithIndexer(idx core.Indexer) Option {
	return func(o *options) {
		o.indexer = idx
	}
}

// WithClock overrides the timestamp source (useful for testing).
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}
