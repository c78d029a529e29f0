// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/partree/mst"
)

var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary values
	colorGreen = lipgloss.Color("35")  // Green - success
	colorGray  = lipgloss.Color("245") // Gray - labels
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

const iconSuccess = "✓"

// printSummary writes a short styled report of res to w.
func printSummary(w io.Writer, source string, vertices int, res mst.Result) {
	kind := "spanning tree"
	if res.Components > 1 {
		kind = fmt.Sprintf("spanning forest (%d trees)", res.Components)
	}

	fmt.Fprintf(w, "%s %s\n", styleSuccess.Render(iconSuccess), styleTitle.Render(kind))
	fmt.Fprintln(w, styleDim.Render(source))
	row := func(label string, value any) {
		fmt.Fprintf(w, "  %s%s\n", styleLabel.Render(label), styleNumber.Render(fmt.Sprint(value)))
	}
	row("vertices", vertices)
	row("arcs", len(res.Arcs))
	row("weight", res.TotalWeight)
	row("merges", res.Stats.Merges)
	row("stale arcs", res.Stats.Discarded)
	row("list scans", res.Stats.Scans)
}
