// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bimatch/bipartite"
)

// maxLineBytes bounds one dialogue answer; a dense adjacency row for a large
// Y side runs well past bufio's default 64 KiB token.
const maxLineBytes = 64 << 20

// Read decodes a graph from r in the given format. prompts is only used by
// FormatText; pass nil for non-interactive input.
func Read(format Format, r io.Reader, prompts io.Writer) (*bipartite.Graph, error) {
	switch format {
	case FormatText:
		return ReadText(r, prompts)
	case FormatYAML:
		return ReadYAML(r)
	default:
		return nil, fmt.Errorf("Read: %q: %w", format, ErrUnknownFormat)
	}
}

// ReadText runs the operator dialogue over r. When prompts is non-nil each
// question is written to it before the answer is read.
//
// Steps:
//  1. Read |X| and |Y| (non-negative integers, one per line).
//  2. Explain the vertex numbering.
//  3. For x1..x|X| read the adjacent Y vertices (1-based, space separated).
//  4. Build the graph; indices are range-checked here with 1-based messages.
func ReadText(r io.Reader, prompts io.Writer) (*bipartite.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	d := dialogue{sc: sc, out: prompts}

	// 1) Side sizes
	xCount, err := d.count("Enter the number of vertices in X: ")
	if err != nil {
		return nil, err
	}
	yCount, err := d.count("Enter the number of vertices in Y: ")
	if err != nil {
		return nil, err
	}

	// 2) Numbering instructions
	d.say(fmt.Sprintf("Order the vertices in X as x1 to x%d and the vertices in Y from y1 to y%d.\n\n", xCount, yCount))
	d.say("For each vertex in X, list the vertices in Y that are adjacent to it, separated by spaces; " +
		"for example, if y1 and y3 are adjacent to the given vertex, then you would enter '1 3'.\n")

	// 3) One adjacency row per X vertex
	adj := make([][]int, xCount)
	for x := 0; x < xCount; x++ {
		line, ok, err := d.ask(fmt.Sprintf("Enter the values of each vertex in Y that is adjacent to x%d: ", x+1))
		if err != nil {
			return nil, err
		}
		if !ok {
			break // remaining rows are blank
		}
		if adj[x], err = parseRow(line, d.line, yCount); err != nil {
			return nil, err
		}
	}

	// 4) Build
	g, err := bipartite.New(xCount, yCount, adj)
	if err != nil {
		return nil, fmt.Errorf("ReadText: %w", err)
	}

	return g, nil
}

// dialogue pairs a line scanner with an optional prompt sink.
type dialogue struct {
	sc   *bufio.Scanner
	out  io.Writer
	line int
}

func (d *dialogue) say(s string) {
	if d.out != nil {
		_, _ = io.WriteString(d.out, s)
	}
}

// ask prompts and returns the next line; ok is false at end of input.
func (d *dialogue) ask(prompt string) (string, bool, error) {
	d.say(prompt)
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return "", false, fmt.Errorf("ReadText: line %d: %w", d.line+1, err)
		}
		return "", false, nil
	}
	d.line++

	return d.sc.Text(), true, nil
}

func (d *dialogue) count(prompt string) (int, error) {
	line, ok, err := d.ask(prompt)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("ReadText: line %d: unexpected end of input: %w", d.line+1, ErrMalformedInput)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("ReadText: line %d: %q is not an integer: %w", d.line, line, ErrMalformedInput)
	}
	if n < 0 {
		return 0, fmt.Errorf("ReadText: line %d: count %d: %w", d.line, n, bipartite.ErrNegativeCount)
	}

	return n, nil
}

// parseRow converts "1 3" into []int{0, 2}, checking 1 ≤ y ≤ yCount.
func parseRow(line string, lineNo, yCount int) ([]int, error) {
	fields := strings.Fields(line)
	row := make([]int, 0, len(fields))
	for _, f := range fields {
		y, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("ReadText: line %d: %q is not an integer: %w", lineNo, f, ErrMalformedInput)
		}
		if y < 1 || y > yCount {
			return nil, fmt.Errorf("ReadText: line %d: y%d outside y1..y%d: %w", lineNo, y, yCount, bipartite.ErrIndexOutOfRange)
		}
		row = append(row, y-1)
	}

	return row, nil
}

// ReadYAML decodes a {x, y, adjacency} document with 1-based indices.
// Unknown keys are rejected.
func ReadYAML(r io.Reader) (*bipartite.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc graphDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("ReadYAML: empty document: %w", ErrMalformedInput)
		}
		return nil, fmt.Errorf("ReadYAML: %v: %w", err, ErrMalformedInput)
	}

	if doc.X < 0 || doc.Y < 0 {
		return nil, fmt.Errorf("ReadYAML: x=%d, y=%d: %w", doc.X, doc.Y, bipartite.ErrNegativeCount)
	}
	adj := make([][]int, len(doc.Adjacency))
	for x, row := range doc.Adjacency {
		adj[x] = make([]int, len(row))
		for i, y := range row {
			if y < 1 || y > doc.Y {
				return nil, fmt.Errorf("ReadYAML: x%d lists y%d outside y1..y%d: %w", x+1, y, doc.Y, bipartite.ErrIndexOutOfRange)
			}
			adj[x][i] = y - 1
		}
	}

	g, err := bipartite.New(doc.X, doc.Y, adj)
	if err != nil {
		return nil, fmt.Errorf("ReadYAML: %w", err)
	}

	return g, nil
}
