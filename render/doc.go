// SPDX-License-Identifier: MIT

// Package render draws a graph and its spanning forest as Graphviz DOT, and
// turns DOT into SVG.
package render
