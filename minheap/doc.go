// SPDX-License-Identifier: MIT

// Package minheap provides a generic binary min-heap with a linear-time merge.
package minheap
