package pdag

import (
	"github.com/rsyslog/go-lognorm/internal/config"
	"github.com/rsyslog/go-lognorm/internal/motif"
)

// Builder adds parser configurations to a node, merging identical edges to
// share successors, and supports sequence/alternative composition and
// named components (spec.md §4.3).
type Builder struct {
	ctx *Context
}

// NewBuilder returns a Builder writing into ctx.
func NewBuilder(ctx *Context) *Builder { return &Builder{ctx: ctx} }

// Component returns (creating if necessary) the named component's root
// node, so a rulebase's components can be declared before any rule
// references them via "@name".
func (b *Builder) Component(name string) *Node {
	return b.ctx.Component(name).Root
}

// Add applies a parser configuration to node, advancing and returning the
// reached frontier node (spec.md §4.3, "Add parser config"). A BadConfig
// failure is also surfaced via the Context's error callback, per spec.md §7.
func (b *Builder) Add(node *Node, n config.Node) (*Node, error) {
	if b.ctx.Frozen() {
		return nil, BuildError{Kind: "Frozen", Message: "context has been optimized and no longer accepts parser configs"}
	}
	frontier, err := b.add(node, n, nil)
	if err != nil {
		if be, ok := err.(BuildError); ok {
			b.ctx.errorf(be.Kind, "%s", be.Message)
		}
		return nil, err
	}
	return frontier, nil
}

// Terminal marks node as accepting and unions in the given tags (spec.md
// §4.3 "Terminal marking"; spec.md §9 resolves the tag-merge Open
// Question in favor of union).
func (b *Builder) Terminal(node *Node, tags []string) {
	node.IsTerminal = true
	node.AddTags(tags)
}

func (b *Builder) add(node *Node, n config.Node, shared **Node) (*Node, error) {
	switch {
	case n.Seq != nil:
		return b.addSequence(node, n.Seq, shared)
	case n.Alt != nil:
		return b.addAlternative(node, n.Alt, shared)
	case n.Single != nil:
		return b.addSingle(node, n.Single, shared)
	default:
		return nil, errMissingType()
	}
}

func (b *Builder) addSequence(node *Node, seq config.Sequence, shared **Node) (*Node, error) {
	cur := node
	for i, elem := range seq {
		var s **Node
		if i == len(seq)-1 {
			s = shared
		}
		next, err := b.add(cur, elem, s)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// addAlternative adds every element of alt.Parser as an edge from node,
// forcing them to share one successor (spec.md §4.3, "Alternative").
// Elements that are themselves sequences converge via their final step;
// an element that is itself an alternative resolves its own branches
// first and is then unified with the outer shared slot — two
// already-established, distinct shared nodes cannot be merged after the
// fact, which surfaces as a BuildError rather than silent graph surgery.
func (b *Builder) addAlternative(node *Node, alt *config.Alternative, outerShared **Node) (*Node, error) {
	if len(alt.Parser) == 0 {
		return nil, errBadAlternative()
	}

	var local *Node
	for _, elem := range alt.Parser {
		if _, err := b.add(node, elem, &local); err != nil {
			return nil, err
		}
	}
	if local == nil {
		return nil, errBadAlternative()
	}

	if outerShared != nil {
		if *outerShared == nil {
			*outerShared = local
		} else if *outerShared != local {
			return nil, BuildError{
				Kind:    "UnsupportedComposition",
				Message: "nested alternative could not be reconciled with its enclosing alternative's shared successor",
			}
		}
	}
	return local, nil
}

// addSingle implements the Merge rule of spec.md §4.3: reuse an existing
// edge with the same (motif id, fingerprint), or otherwise create a new
// edge, adopting the caller's shared-successor slot when one is supplied.
func (b *Builder) addSingle(node *Node, p *config.Parser, shared **Node) (*Node, error) {
	edge, err := b.buildEdge(p)
	if err != nil {
		return nil, err
	}

	for _, existing := range node.Edges {
		if existing.MotifID == edge.MotifID && existing.Fingerprint == edge.Fingerprint {
			edge.teardown(b.ctx)
			return b.reconcileShared(shared, existing.Successor)
		}
	}

	if shared != nil && *shared != nil {
		edge.Successor = *shared
		edge.Successor.retain()
	} else {
		edge.Successor = b.ctx.newNode()
		if shared != nil {
			*shared = edge.Successor
		}
	}

	node.Edges = append(node.Edges, edge)
	return edge.Successor, nil
}

func (b *Builder) reconcileShared(shared **Node, successor *Node) (*Node, error) {
	if shared == nil {
		return successor, nil
	}
	if *shared == nil {
		*shared = successor
		return successor, nil
	}
	if *shared != successor {
		return nil, BuildError{
			Kind:    "UnsupportedComposition",
			Message: "merged edge's existing successor does not match the alternative's established shared successor",
		}
	}
	return successor, nil
}

const customTypeIntrinsicPriority = 128

func (b *Builder) buildEdge(p *config.Parser) (*Edge, error) {
	if p.Type == "" {
		return nil, errMissingType()
	}

	name := p.Name
	if name == "-" {
		name = ""
	}

	if p.Type[0] == '@' {
		compName := p.Type[1:]
		comp, ok := b.ctx.LookupComponent(compName)
		if !ok {
			return nil, errUnknownComponent(compName)
		}
		priority := combinedPriority(p.Priority, customTypeIntrinsicPriority)
		return &Edge{
			MotifID:     motif.CustomType,
			CaptureName: name,
			Data:        comp,
			Fingerprint: "@" + compName,
			Priority:    priority,
		}, nil
	}

	id, ok := motif.Lookup(p.Type)
	if !ok {
		return nil, errUnknownMotif(p.Type)
	}
	entry := motif.Get(id)

	data, err := entry.Construct(b.ctx.Diag, p.Params)
	if err != nil {
		return nil, errConstruct(p.Type, err)
	}

	priority := combinedPriority(p.Priority, entry.IntrinsicPriority)
	return &Edge{
		MotifID:     id,
		CaptureName: name,
		Data:        data,
		Fingerprint: id.String() + ":" + config.Fingerprint(p),
		Priority:    priority,
	}, nil
}

// combinedPriority implements spec.md §4.2: (user_priority<<8) |
// (intrinsic_priority & 0xff). A nil user priority means "not specified",
// which is represented by defaultUserPriority: edges with an explicit
// priority below it rank ahead of unset ones, and intrinsic ordering
// governs among edges that share a user priority.
const defaultUserPriority = 30000

func combinedPriority(user *int, intrinsic int) int {
	u := defaultUserPriority
	if user != nil {
		u = *user
	}
	return (u << 8) | (intrinsic & 0xff)
}

// Compile builds an entire rulebase into ctx: components first (so
// forward "@name" references within rules resolve), terminal-marking
// each component body's reached frontier (without tags) so a custom-type
// invocation can accept there, then each rule's body, terminal-marking
// the reached frontier with the rule's tags.
func Compile(ctx *Context, rb config.Rulebase) error {
	b := NewBuilder(ctx)

	// Pre-declare every component's root before building any body, so a
	// component may reference another declared later in rb.Components.
	for _, c := range rb.Components {
		b.Component(c.Name)
	}
	for _, c := range rb.Components {
		root := b.Component(c.Name)
		frontier, err := b.Add(root, c.Body)
		if err != nil {
			return err
		}
		b.Terminal(frontier, nil)
		ctx.debugf("compiled component %q", c.Name)
	}

	for i, r := range rb.Rules {
		frontier, err := b.Add(ctx.Main, r.Body)
		if err != nil {
			return err
		}
		b.Terminal(frontier, r.Tags)
		ctx.debugf("compiled rule %d with tags %v", i, r.Tags)
	}

	return nil
}
