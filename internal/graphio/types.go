package graphio

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for graph input and output.
var (
	// ErrMalformedInput indicates a line or document that cannot be parsed.
	ErrMalformedInput = errors.New("graphio: malformed input")

	// ErrUnknownFormat indicates an unsupported format name.
	ErrUnknownFormat = errors.New("graphio: unknown format")
)

// Format names an input or output encoding.
type Format string

const (
	// FormatText is the line-oriented operator dialogue and report.
	FormatText Format = "text"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied name (case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q (want text or yaml): %w", name, ErrUnknownFormat)
	}
}

// graphDoc is the YAML shape of a graph; indices are 1-based.
type graphDoc struct {
	X         int     `yaml:"x"`
	Y         int     `yaml:"y"`
	Adjacency [][]int `yaml:"adjacency"`
}

// matchingDoc is the YAML shape of a result; indices are 1-based.
type matchingDoc struct {
	Size  int     `yaml:"size"`
	Seed  []int   `yaml:"seed,omitempty,flow"`
	Edges [][]int `yaml:"edges,flow"`
}
