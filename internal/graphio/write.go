package graphio

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bimatch/matching"
)

// Write encodes res to w in the given format.
func Write(format Format, w io.Writer, res *matching.Result) error {
	switch format {
	case FormatText:
		return WriteText(w, res)
	case FormatYAML:
		return WriteYAML(w, res)
	default:
		return fmt.Errorf("Write: %q: %w", format, ErrUnknownFormat)
	}
}

// WriteText prints the operator report: a banner, a headline with the size
// and one "[xa, yb]" line per edge.
func WriteText(w io.Writer, res *matching.Result) error {
	var b strings.Builder
	b.WriteString("\n********************\n\n")

	m := res.Matching
	if m.Size == 0 {
		b.WriteString("The graph has no edges, so its maximum matching is empty.\n")
	} else {
		fmt.Fprintf(&b, "A maximum matching of the graph contains the following %d edges in the form [xa, yb],\n", m.Size)
		b.WriteString("where xa is vertex a in the set X and yb is vertex b in the set Y:\n\n")
		for _, e := range m.Edges() {
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// WriteYAML emits {size, seed, edges} with 1-based indices.
func WriteYAML(w io.Writer, res *matching.Result) error {
	doc := matchingDoc{
		Size:  res.Matching.Size,
		Edges: make([][]int, 0, res.Matching.Size),
	}
	if res.HasSeed {
		doc.Seed = []int{res.Seed.X + 1, res.Seed.Y + 1}
	}
	for _, e := range res.Matching.Edges() {
		doc.Edges = append(doc.Edges, []int{e.X + 1, e.Y + 1})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}
