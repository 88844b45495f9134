// Package engine implements the recovery eligibility decision engine: a set
// of independent pathway evaluators over a single billing encounter and an
// orchestrator that reconciles their signals into one ranked action plan.
// Everything here is pure, synchronous computation — no I/O, no clocks
// beyond the explicit AsOf input, no shared mutable state.
package engine

import (
	"math"

	"github.com/halcyonrcm/recovery/internal/refdata"
)

// Engine evaluates recovery pathways against injected reference tables.
// It carries no per-call state and is safe for unlimited concurrent use.
type Engine struct {
	ref *refdata.Tables
}

// New returns an Engine over the given reference tables; nil uses the
// process-wide defaults.
func New(ref *refdata.Tables) *Engine {
	if ref == nil {
		ref = refdata.Default()
	}
	return &Engine{ref: ref}
}

// safeDivide returns a/b, or 0 when the denominator is 0.
func safeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// clampScore bounds a score to [0,100].
func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// clampRange bounds v to [lo,hi].
func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it == "" || seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
	}
	return out
}
