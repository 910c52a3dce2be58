// Note is the central entity of the domain.
package core

// Metadata represents the flexible key-value pairs associated with a note,
// typically parsed from YAML frontmatter.
type Metadata map[string]any

// Note is the central entity of the domain.
// It represents a single zettel identified by a timestamp ID.
// It is agnostic to storage format.
type Note struct {
	ID       string
	Content  string
	Metadata Metadata
}

// EventType represents the type of change in the vault.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in the vault.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String renders the event for logs and generic event sinks.
func (e Event) String() string {
	return string(e.Type) + " " + e.ID
}
