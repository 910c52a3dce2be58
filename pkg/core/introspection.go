package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	RepositoryType string `json:"repository_type"`
	IndexEntries   int    `json:"index_entries"`
	HashAlgorithm  string `json:"hash_algorithm"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	repoType := "unknown"
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	entries := 0
	if s.index != nil {
		entries = s.index.Len()
	}

	return ServiceState{
		RepositoryType: repoType,
		IndexEntries:   entries,
		HashAlgorithm:  s.config.HashAlgorithm,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
