// SPDX-License-Identifier: MIT

package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/partree/core"
)

// Options configures DOT output.
type Options struct {
	// Name is the graph name written after the "graph" keyword.
	Name string

	// HideUnused drops edges that are not part of the forest.
	HideUnused bool
}

// DOT renders g as an undirected DOT graph. Edges that appear in arcs are
// drawn bold; the rest are dashed and grey unless opts.HideUnused is set.
//
// Arcs are matched to graph edges by endpoint names and weight, so parallel
// edges of equal weight are highlighted once per selected arc.
func DOT(g *core.Graph, arcs []core.Arc, opts Options) string {
	name := opts.Name
	if name == "" {
		name = "G"
	}

	selected := make(map[core.ArcID]int, len(arcs))
	for _, a := range arcs {
		selected[a.ID()]++
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph %s {\n", strconv.Quote(name))
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %s;\n", strconv.Quote(v.Name))
	}

	buf.WriteString("\n")
	for _, e := range g.Arcs() {
		id := e.ID()
		attrs := fmt.Sprintf("label=%q", strconv.FormatInt(e.Weight, 10))
		if selected[id] > 0 {
			selected[id]--
			attrs += ", penwidth=3, color=\"#2a9d8f\""
		} else if opts.HideUnused {
			continue
		} else {
			attrs += ", style=dashed, color=gray60, fontcolor=gray60"
		}
		fmt.Fprintf(&buf, "  %s -- %s [%s];\n", strconv.Quote(e.V1.Name), strconv.Quote(e.V2.Name), attrs)
	}

	buf.WriteString("}\n")

	return buf.String()
}

// SVG renders DOT source to SVG using the embedded Graphviz build.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
