package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/zett/pkg/core"
)

// parse reads a stream and decodes it into a Note.
// It detects if the stream starts with a frontmatter block (delimited by ---).
func parse(r io.Reader) (*core.Note, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	n := &core.Note{
		Metadata: make(core.Metadata),
	}

	// Frontmatter must start at the very beginning of the file.
	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		n.Content = string(data)
		return n, nil
	}

	rest := data[3:] // Skip first ---

	parts := bytes.SplitN(rest, []byte("---"), 2)
	if len(parts) == 1 {
		return nil, errors.New("frontmatter started but no closing delimiter found")
	}

	yamlData := parts[0]
	contentData := parts[1]

	if err := yaml.Unmarshal(yamlData, &n.Metadata); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}

	// Trim the newline that follows the closing fence.
	n.Content = strings.TrimPrefix(string(contentData), "\n")
	n.Content = strings.TrimPrefix(n.Content, "\r\n")

	return n, nil
}

// serialize writes the note back as Markdown with optional frontmatter.
// A note without metadata is written as its content verbatim, so bytes
// produced by template rendering survive the round trip untouched.
func serialize(n core.Note) ([]byte, error) {
	var buf bytes.Buffer

	if len(n.Metadata) > 0 {
		buf.WriteString("---\n")
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(n.Metadata); err != nil {
			return nil, err
		}
		encoder.Close()
		buf.WriteString("---\n")
	}

	buf.WriteString(n.Content)
	return buf.Bytes(), nil
}
