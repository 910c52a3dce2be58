// Package template performs placeholder substitution over note templates.
//
// Placeholders are spans of the form <name>. The name is the exact text
// between a literal '<' and the next literal '>', spaces included. There
// is no nesting and no escaping; rendering is a pure function of its
// inputs and never fails. Unresolved placeholders pass through literally.
package template

import "strings"

// Substitutions maps placeholder names to their replacement text.
// Lookup is an exact string match against the text between '<' and '>'.
type Substitutions map[string]string

// scanState is the state of the render scanner.
type scanState int

const (
	// stateLiteral copies bytes through until a '<' is seen.
	stateLiteral scanState = iota
	// statePlaceholder is active between a '<' and the next '>'.
	statePlaceholder
)

// Render substitutes placeholders in text left to right.
//
// On '<' the scanner enters statePlaceholder and collects the candidate
// name up to the next '>'. A known name emits its replacement and resumes
// after the '>'. An unknown name emits the '<' alone and rescans from the
// character after it, so the remainder may still contain placeholders.
// A '<' with no closing '>' before end of input is emitted literally.
func Render(text string, subs Substitutions) string {
	var out strings.Builder
	out.Grow(len(text))

	state := stateLiteral
	start := 0 // Index of the '<' that opened the current placeholder.

	for i := 0; i < len(text); {
		switch state {
		case stateLiteral:
			c := text[i]
			if c == '<' {
				state = statePlaceholder
				start = i
				i++
				continue
			}
			out.WriteByte(c)
			i++

		case statePlaceholder:
			if text[i] != '>' {
				i++
				continue
			}

			name := text[start+1 : i]
			if val, ok := subs[name]; ok {
				out.WriteString(val)
				i++ // Consume the '>'.
			} else {
				// Unknown name: only the '<' is consumed; the rest of
				// the span is rescanned through the literal path.
				out.WriteByte('<')
				i = start + 1
			}
			state = stateLiteral
		}
	}

	// End of input inside a placeholder: the '<' never closed. Emit it
	// literally followed by whatever it swallowed (which, by construction,
	// contains no '>').
	if state == statePlaceholder {
		out.WriteByte('<')
		out.WriteString(text[start+1:])
	}

	return out.String()
}
