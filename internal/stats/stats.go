// Package stats collects shape statistics over a compiled PDAG and renders
// a DOT visualization of it (spec.md §4.6).
package stats

import (
	"github.com/rsyslog/go-lognorm/internal/motif"
	"github.com/rsyslog/go-lognorm/internal/pdag"
)

// Report summarizes one PDAG's shape: counts, the longest root-to-leaf
// edge path, and two histograms (spec.md §4.6).
type Report struct {
	Nodes     int
	Terminals int
	Edges     int

	// LongestPath is the greatest number of edges on any root-to-dead-end
	// path.
	LongestPath int

	// MotifHistogram counts edges per motif name ("@name" for a
	// custom-type edge, keyed by the component it invokes).
	MotifHistogram map[string]int

	// EdgeCountHistogram counts nodes by how many outgoing edges they have.
	EdgeCountHistogram map[int]int
}

// Collect traverses ctx.Main and every named component's root, each once
// (visited-guarded by pdag.Walk), and folds the per-root reports into one.
func Collect(ctx *pdag.Context) Report {
	reports := []Report{collectFrom(ctx.Main)}
	for _, c := range ctx.Components() {
		reports = append(reports, collectFrom(c.Root))
	}
	return Merge(reports...)
}

func collectFrom(root *pdag.Node) Report {
	r := Report{
		MotifHistogram:     make(map[string]int),
		EdgeCountHistogram: make(map[int]int),
	}
	pdag.Walk(root, func(n *pdag.Node) {
		r.Nodes++
		if n.IsTerminal {
			r.Terminals++
		}
		r.Edges += len(n.Edges)
		r.EdgeCountHistogram[len(n.Edges)]++
		for _, e := range n.Edges {
			r.MotifHistogram[motifLabel(e)]++
		}
	})
	r.LongestPath = longestPath(root)
	return r
}

func motifLabel(e *pdag.Edge) string {
	if e.MotifID == motif.CustomType {
		return "@" + e.Component().Name
	}
	return e.MotifID.String()
}

// longestPath computes the greatest number of edges reachable from root to
// a node with no further outgoing edges, memoized since the same
// successor may be reached by several paths.
func longestPath(root *pdag.Node) int {
	memo := make(map[*pdag.Node]int)
	var visit func(n *pdag.Node) int
	visit = func(n *pdag.Node) int {
		if v, ok := memo[n]; ok {
			return v
		}
		best := 0
		for _, e := range n.Edges {
			if e.Successor == nil {
				continue
			}
			if l := 1 + visit(e.Successor); l > best {
				best = l
			}
		}
		memo[n] = best
		return best
	}
	return visit(root)
}
