// Package matcher implements the recursive-descent, priority-ordered,
// backtracking search over a compiled PDAG (spec.md §4.5) and the
// top-level Normalize entry point.
package matcher

import (
	"github.com/rsyslog/go-lognorm/internal/motif"
	"github.com/rsyslog/go-lognorm/internal/pdag"
	"github.com/rsyslog/go-lognorm/internal/record"
)

// Match searches node's edges, in priority order, for a path that
// eventually reaches an accepting node: one reached with no input
// remaining when allowPartial is false (the top-level full-match
// requirement), or any terminal node when allowPartial is true (a
// custom-type invocation only needs to recognize its own chunk).
//
// Matching is read-only with respect to the PDAG: only out is mutated,
// and only along the path that ultimately succeeds — a capture applied
// while trying an edge is rolled back if that edge's continuation fails,
// so a reentrant call against a frozen Context from multiple goroutines
// with independent out records is safe (spec.md §5).
//
// On success, deepest is the offset reached by the winning path. On
// failure, deepest is the farthest offset any attempted path reached,
// for the caller to report as spec.md §6's "unparsed-data".
func Match(node *pdag.Node, input string, offset int, allowPartial bool, out *record.Record) (ok bool, deepest int, terminal *pdag.Node) {
	accept := func(int) bool { return true }
	if !allowPartial {
		accept = func(o int) bool { return o == len(input) }
	}

	deepest = offset

	for _, e := range node.Edges {
		consumed, capValue, matched := tryEdge(e, input, offset, &deepest)
		if !matched {
			continue
		}

		var snap *record.Record
		if e.CaptureName != "" {
			snap = out.Snapshot()
			out.ApplyCapture(e.CaptureName, capValue)
		}

		okSub, reachedSub, termSub := Match(e.Successor, input, offset+consumed, allowPartial, out)
		if reachedSub > deepest {
			deepest = reachedSub
		}
		if okSub {
			return true, reachedSub, termSub
		}
		if snap != nil {
			out.Reset(snap)
		}
	}

	if node.IsTerminal && accept(offset) {
		return true, offset, node
	}
	return false, deepest, nil
}

// tryEdge attempts e's own consumption step (a motif match, or a full
// custom-type sub-search) without touching out, reporting how much input
// it consumed and the value a capture on e would receive.
func tryEdge(e *pdag.Edge, input string, offset int, deepest *int) (consumed int, capValue any, ok bool) {
	if e.MotifID == motif.CustomType {
		sub := record.New()
		okc, end, _ := Match(e.Component().Root, input, offset, true, sub)
		if end > *deepest {
			*deepest = end
		}
		if !okc {
			return 0, nil, false
		}
		return end - offset, sub, true
	}

	entry := motif.Get(e.MotifID)
	res := entry.Match(input, offset, e.Data, e.CaptureName != "")
	if offset+res.Consumed > *deepest {
		*deepest = offset + res.Consumed
	}
	if !res.OK {
		return 0, nil, false
	}
	return res.Consumed, res.Value, true
}
