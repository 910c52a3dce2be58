// Package zett is the Composition Root for the zett application.
//
// It connects the core business logic (Domain Layer) with the infrastructure
// adapters (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// zett is a plain-text zettelkasten. Notes are Markdown files with YAML
// frontmatter, identified by timestamp IDs, created from a user-editable
// template. A small persistent index maps content digests to note IDs so
// duplicate or known content can be resolved back to its note. The core is
// storage-agnostic; the default adapter is the local filesystem.
//
// Features:
//
//   - **Template-driven creation**: notes are rendered from a `<name>`
//     placeholder template, re-read from disk per creation.
//   - **Content-hash index**: a durable JSON-backed string map from digest
//     to note ID, rebuilt on demand.
//   - **Metadata first**: native support for frontmatter parsing.
//   - **Watchable**: repositories can emit vault change events.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := zett.New("~/zettel",
//		zett.WithAutoInit(true),
//		zett.WithLogger(logger),
//	)
//
//	// Create a note from a template
//	note, err := svc.CreateNote(ctx, "My idea", tmpl, nil)
package zett
