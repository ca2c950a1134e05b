// Package optimizer implements the single post-build pass over a compiled
// PDAG: priority-ordering each node's edges and compacting literal chains
// (spec.md §4.4).
package optimizer

import (
	"sort"

	"github.com/rsyslog/go-lognorm/internal/motif"
	"github.com/rsyslog/go-lognorm/internal/pdag"
)

// Optimize walks every reachable node from ctx.Main and from each named
// component's root exactly once (visited-guarded), stably sorting its
// edges by combined priority and then compacting literal chains, and
// freezes ctx so Builder.Add rejects further configs (spec.md §5: building
// and optimizing are single-writer, matching is read-only thereafter).
func Optimize(ctx *pdag.Context) {
	pdag.Walk(ctx.Main, optimizeNode)
	for _, c := range ctx.Components() {
		pdag.Walk(c.Root, optimizeNode)
	}
	ctx.Freeze()
}

func optimizeNode(n *pdag.Node) {
	sortEdges(n)
	compactLiterals(n)
}

// sortEdges stable-sorts n's edges by ascending combined priority (lower
// wins, spec.md §4.2), preserving configuration order among ties so
// behavior stays deterministic.
func sortEdges(n *pdag.Node) {
	sort.SliceStable(n.Edges, func(i, j int) bool {
		return n.Edges[i].Priority < n.Edges[j].Priority
	})
}

// compactLiterals merges a literal edge into its successor's sole outgoing
// literal edge, repeatedly, stopping at a terminal node, a capturing edge,
// or a node reachable by more than one path (spec.md §9's conservative
// compaction rule: never compact across those).
func compactLiterals(n *pdag.Node) {
	for _, e := range n.Edges {
		for canAbsorb(e) {
			absorbed := e.Successor
			next := absorbed.Edges[0]

			combined := motif.LiteralText(e.Data) + motif.LiteralText(next.Data)
			grandSuccessor := next.Successor

			if grandSuccessor != nil {
				grandSuccessor.Retain()
			}
			e.Data = motif.NewLiteralData(combined)
			e.Fingerprint = "literal:" + combined
			e.Successor = grandSuccessor
			absorbed.Release()
		}
	}
}

func canAbsorb(e *pdag.Edge) bool {
	if e.MotifID != motif.Literal || e.CaptureName != "" {
		return false
	}
	s := e.Successor
	if s == nil || s.IsTerminal || s.Shared() || len(s.Edges) != 1 {
		return false
	}
	next := s.Edges[0]
	return next.MotifID == motif.Literal && next.CaptureName == ""
}
