// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is used when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight from an optional RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeight returns a WeightFn that always yields w.
func ConstantWeight(w int64) WeightFn {
	return func(_ *rand.Rand) int64 { return w }
}

// UniformWeight returns a WeightFn sampling integers uniformly in [lo, hi].
// Any int64 range is accepted, including [math.MinInt64, math.MaxInt64].
// With a nil RNG it yields lo. Panics if hi < lo.
func UniformWeight(lo, hi int64) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("builder: UniformWeight: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	// span is computed in uint64 so ranges wider than MaxInt64 do not wrap
	// negative; 0 means the full 2^64 values.
	span := uint64(hi) - uint64(lo) + 1

	return func(rng *rand.Rand) int64 {
		switch {
		case rng == nil || span == 1:
			return lo
		case span == 0:
			return int64(rng.Uint64())
		case span <= math.MaxInt64:
			return lo + rng.Int63n(int64(span))
		default:
			// More than half of all uint64 values are in range.
			for {
				if x := rng.Uint64(); x < span {
					return int64(uint64(lo) + x)
				}
			}
		}
	}
}
