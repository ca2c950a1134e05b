package pdag

// Node is a state in the compiled automaton (spec.md §3, "PDAG Node").
// Edges are kept in priority order after the optimizer runs; visited is a
// pass-local scratch flag, always cleared before each traversal pass
// (spec.md §5); refs is a simple reference count, since a node may be a
// shared successor of several edges (built by Builder's alternative
// composition).
type Node struct {
	ctx     *Context
	id      NodeID
	Edges   []*Edge
	IsTerminal bool
	Tags    []string

	visited bool
	refs    int
}

// ID returns the node's process-local identity, stable for the lifetime
// of its owning Context.
func (n *Node) ID() NodeID { return n.id }

func (n *Node) retain() { n.refs++ }

// Shared reports whether more than one edge (or component root) points at
// n, the guard the optimizer uses before splicing it out of a literal
// chain: a shared node's other incoming path would otherwise be cut.
func (n *Node) Shared() bool { return n.refs > 1 }

// Release drops one reference to n, tearing it down once unreferenced.
// Exposed for the optimizer's literal-chain compaction, which discards an
// absorbed node after relinking around it.
func (n *Node) Release() { n.release() }

// Retain adds one reference to n. Exposed for the optimizer, which must
// account for a literal edge's successor pointer being retargeted.
func (n *Node) Retain() { n.retain() }

// release decrements the refcount and, at zero, tears down the node's own
// edges (invoking each edge's motif destructor and releasing its
// successor in turn), matching the teacher's RemoveNode/RemoveEdge
// teardown order (graph/probabilistic_adjacency_list_graph.go).
func (n *Node) release() {
	n.refs--
	if n.refs > 0 {
		return
	}
	for _, e := range n.Edges {
		e.teardown(n.ctx)
		if e.Successor != nil {
			e.Successor.release()
		}
	}
	n.Edges = nil
}

// AddTags unions tags into the node's tag set, deduplicated and in
// first-seen order — spec.md §9's "a union is safer" resolution of the
// tag-merge Open Question.
func (n *Node) AddTags(tags []string) {
	if len(tags) == 0 {
		return
	}
	seen := make(map[string]struct{}, len(n.Tags))
	for _, t := range n.Tags {
		seen[t] = struct{}{}
	}
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		n.Tags = append(n.Tags, t)
	}
}

// clearVisited recursively clears the visited flag across every node
// reachable from n, guarding the walk with the very flag it clears so it
// terminates on any acyclic graph the Builder can produce (spec.md §8,
// property 4, "Acyclicity").
func clearVisited(n *Node) {
	if n == nil || !n.visited {
		return
	}
	n.visited = false
	for _, e := range n.Edges {
		clearVisited(e.Successor)
	}
}

// Walk invokes visit once per node reachable from root (root included),
// in edge order, guarded by the visited flag. The flag is left clear on
// return. Used by the optimizer and by stats.Collect.
func Walk(root *Node, visit func(*Node)) {
	walk(root, visit)
	clearVisited(root)
}

func walk(n *Node, visit func(*Node)) {
	if n == nil || n.visited {
		return
	}
	n.visited = true
	visit(n)
	for _, e := range n.Edges {
		walk(e.Successor, visit)
	}
}
