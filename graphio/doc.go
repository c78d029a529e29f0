// SPDX-License-Identifier: MIT

// Package graphio reads and writes graphs in a line-oriented text format:
//
//	<n>                 number of vertices
//	<name_1>            n lines, one vertex name each
//	...
//	<a> <b> <weight>    zero or more undirected edges
//
// Blank lines are ignored everywhere. Lines starting with '#' are comments
// before the header and among the edges; inside the vertex block they are
// read as names and rejected, so a vertex name may not start with '#'. Names
// are single whitespace-free tokens and must be declared before edges use them.
package graphio
