// SPDX-License-Identifier: MIT

// Package partialtree defines partial trees (growing MST components that own a
// heap of candidate arcs) and the FIFO list that holds every tree still
// awaiting a merge.
package partialtree
