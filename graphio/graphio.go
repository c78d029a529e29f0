// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/partree/core"
)

// commentPrefix starts a comment line outside the vertex block.
const commentPrefix = "#"

// Sentinel errors for malformed input.
var (
	// ErrBadHeader indicates a missing, non-numeric or negative vertex count,
	// or fewer vertex names than announced.
	ErrBadHeader = errors.New("graphio: bad header")

	// ErrBadVertex indicates a vertex name that is not a single token or that
	// starts with '#'.
	ErrBadVertex = errors.New("graphio: bad vertex line")

	// ErrBadEdge indicates an edge line without exactly three fields.
	ErrBadEdge = errors.New("graphio: bad edge line")

	// ErrBadWeight indicates an edge weight that is not an integer.
	ErrBadWeight = errors.New("graphio: bad weight")
)

// ParseError ties an error to the 1-based input line it came from.
type ParseError struct {
	Line int
	Err  error
}

// Error implements error.
func (e *ParseError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }

// Read parses a graph from r.
//
// A bad header stops parsing at once. Every other malformed line is
// collected; if any were found the returned error is a *multierror.Error
// holding one *ParseError per line, and the graph is nil.
func Read(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	// next returns the next non-blank line. Comment lines are skipped only
	// when comments is set; inside the vertex block they count as names.
	next := func(comments bool) (string, bool) {
		for sc.Scan() {
			lineNo++
			line := strings.TrimSpace(sc.Text())
			if line == "" || (comments && strings.HasPrefix(line, commentPrefix)) {
				continue
			}
			return line, true
		}
		return "", false
	}

	// 1. Header.
	header, ok := next(true)
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("graphio: read: %w", err)
		}
		return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	n, err := strconv.Atoi(header)
	if err != nil || n < 0 {
		return nil, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: %q", ErrBadHeader, header)}
	}

	g := core.NewGraph()
	var result *multierror.Error

	// 2. Vertex names.
	for i := 0; i < n; i++ {
		line, ok := next(false)
		if !ok {
			result = multierror.Append(result, &ParseError{
				Line: lineNo,
				Err:  fmt.Errorf("%w: expected %d vertices, got %d", ErrBadHeader, n, i),
			})
			break
		}
		if err := checkName(line); err != nil {
			result = multierror.Append(result, &ParseError{Line: lineNo, Err: err})
			continue
		}
		if g.HasVertex(line) {
			result = multierror.Append(result, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: %q", core.ErrDuplicateVertex, line)})
			continue
		}
		if _, err := g.AddVertex(line); err != nil {
			result = multierror.Append(result, &ParseError{Line: lineNo, Err: err})
		}
	}

	// 3. Edges.
	for {
		line, ok := next(true)
		if !ok {
			break
		}
		if err := addEdgeLine(g, line); err != nil {
			result = multierror.Append(result, &ParseError{Line: lineNo, Err: err})
		}
	}
	if err := sc.Err(); err != nil {
		result = multierror.Append(result, fmt.Errorf("graphio: read: %w", err))
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return g, nil
}

// checkName rejects names that cannot be written back as a vertex line.
func checkName(name string) error {
	if strings.ContainsAny(name, " \t") || strings.HasPrefix(name, commentPrefix) {
		return fmt.Errorf("%w: %q", ErrBadVertex, name)
	}

	return nil
}

// addEdgeLine validates one "a b w" line and records the edge.
func addEdgeLine(g *core.Graph, line string) error {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return fmt.Errorf("%w: %q", ErrBadEdge, line)
	}
	w, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrBadWeight, fields[2])
	}
	for _, name := range fields[:2] {
		if !g.HasVertex(name) {
			return fmt.Errorf("%w: %q", core.ErrVertexNotFound, name)
		}
	}

	return g.AddEdge(fields[0], fields[1], w)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("graphio: %s: %w", path, err)
	}

	return g, nil
}

// Write serialises g in the format accepted by Read.
// Vertices keep insertion order; each edge is written once. Names that Read
// would reject (whitespace, leading '#') fail with ErrBadVertex before
// anything is written.
func Write(w io.Writer, g *core.Graph) error {
	for _, v := range g.Vertices() {
		if err := checkName(v.Name); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", g.Order())
	for _, v := range g.Vertices() {
		fmt.Fprintln(bw, v.Name)
	}
	for _, a := range g.Arcs() {
		fmt.Fprintf(bw, "%s %s %d\n", a.V1.Name, a.V2.Name, a.Weight)
	}

	return bw.Flush()
}

// WriteArcs writes one "a b weight" line per arc, endpoints in name order,
// lines sorted by endpoint names then weight.
func WriteArcs(w io.Writer, arcs []core.Arc) error {
	lines := make([]core.Arc, len(arcs))
	copy(lines, arcs)
	for i, a := range lines {
		if a.V2.Name < a.V1.Name {
			lines[i].V1, lines[i].V2 = a.V2, a.V1
		}
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].ID().Compare(lines[j].ID()) < 0
	})

	bw := bufio.NewWriter(w)
	for _, a := range lines {
		fmt.Fprintf(bw, "%s %s %d\n", a.V1.Name, a.V2.Name, a.Weight)
	}

	return bw.Flush()
}
