package shader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Marker starts a section line in a shader document, e.g. "#shader vertex".
const Marker = "#shader"

// Source holds the per-stage sources split out of a shader document.
// A stage missing from the document is an empty string.
type Source struct {
	Vertex   string
	Fragment string
}

// Parse splits a shader document into its vertex and fragment sections.
// Lines before the first marker, and lines under a marker naming no known
// stage, are dropped. Marker lines never appear in the output.
func Parse(r io.Reader) (Source, error) {
	var sections [3]strings.Builder
	current := KindNone

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			if strings.Contains(line, Marker) {
				current = markerKind(line)
			} else if current != KindNone {
				sections[current].WriteString(line)
				sections[current].WriteByte('\n')
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Source{}, err
		}
	}

	return Source{
		Vertex:   sections[Vertex].String(),
		Fragment: sections[Fragment].String(),
	}, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(doc string) Source {
	src, _ := Parse(strings.NewReader(doc))
	return src
}

// ParseFile reads and splits the shader document at path.
func ParseFile(path string) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return Source{}, fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}
	defer f.Close()

	src, err := Parse(f)
	if err != nil {
		return Source{}, fmt.Errorf("%w: %s: %w", ErrFileUnreadable, path, err)
	}
	return src, nil
}

// markerKind picks the stage named on a marker line. The vertex keyword is
// checked first, so a line naming both stages selects Vertex.
func markerKind(line string) Kind {
	switch {
	case strings.Contains(line, "vertex"):
		return Vertex
	case strings.Contains(line, "fragment"):
		return Fragment
	default:
		return KindNone
	}
}
