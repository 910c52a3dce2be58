package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/zett/pkg/adapters/fs"
	"github.com/aretw0/zett/pkg/core"
	"github.com/aretw0/zett/pkg/kv"
)

// Init builds and initializes the note repository for a vault path.
func Init(path string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo := o.repository
	if repo == nil {
		repo = fs.NewRepository(fs.Config{
			Path:         path,
			SystemDir:    o.systemDir,
			Extension:    o.extension,
			TemplateFile: o.templateFile,
			MustExist:    o.mustExist && !o.autoInit,
			Logger:       o.logger,
		})
	}

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return repo, nil
}

// New wires a fully configured Service: repository, content-hash index
// (loaded from disk if present) and policies.
//
//	svc, err := zett.New("~/zettel", zett.WithAutoInit(true))
func New(path string, opts ...Option) (*core.Service, error) {
	repo, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	// We also need the parsed options here for wiring.
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	indexPath := filepath.Join(path, o.systemDir, "index.json")

	var index core.Indexer = o.indexer
	if index == nil {
		index = kv.New()
	}
	if err := index.Load(indexPath); err != nil {
		return nil, fmt.Errorf("failed to load index: %w", err)
	}

	service := core.NewService(repo, index, core.ServiceConfig{
		IndexPath:     indexPath,
		HashAlgorithm: o.hashAlg,
		Logger:        o.logger,
		Clock:         o.clock,
	})

	return service, nil
}
