// SPDX-License-Identifier: MIT

package builder

import "errors"

// Sentinel errors returned by constructors. Callers branch with errors.Is;
// constructors attach the method name and offending values with %w.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or a graph mutation failure.
	ErrConstructFailed = errors.New("builder: construction failed")
)
