// Package pdag implements the compiled rulebase: the Context that owns the
// main root and named components, and the Node/Edge types that make up the
// parse directed acyclic graph (spec.md §3, "Context" and "PDAG Node").
package pdag

import "github.com/rsyslog/go-lognorm/internal/diag"

// NodeID is a process-local sequence number, the Go analogue of the
// teacher's string-keyed NodeID/EdgeID handles (graph.NodeID / graph.EdgeID).
type NodeID uint64

// Context is the process-wide root of a compiled rulebase: it owns the
// main PDAG root, the named components, a frozen flag flipped by the
// optimizer, and the diagnostics sink (spec.md §3, "Context").
type Context struct {
	Main       *Node
	components []*Component
	byName     map[string]*Component
	frozen     bool
	Diag       diag.Sink
	Annotator  diag.Annotator

	nextID NodeID
}

// Component is a named, reusable subgraph (spec.md §3, "Named Component").
type Component struct {
	Name string
	Root *Node
}

// New returns an empty Context with a fresh main root, ready for Builder.
func New() *Context {
	ctx := &Context{byName: make(map[string]*Component), Annotator: diag.NopAnnotator{}}
	ctx.Main = ctx.newNode()
	return ctx
}

func (ctx *Context) newNode() *Node {
	ctx.nextID++
	return &Node{ctx: ctx, id: ctx.nextID, refs: 1}
}

// Component looks up a named component, creating an empty one (a fresh
// root node) on first reference so forward references within a rulebase
// resolve once every component has been declared.
func (ctx *Context) Component(name string) *Component {
	if c, ok := ctx.byName[name]; ok {
		return c
	}
	c := &Component{Name: name, Root: ctx.newNode()}
	ctx.byName[name] = c
	ctx.components = append(ctx.components, c)
	return c
}

// LookupComponent returns the named component without creating it.
func (ctx *Context) LookupComponent(name string) (*Component, bool) {
	c, ok := ctx.byName[name]
	return c, ok
}

// Components returns the declared components in declaration order.
func (ctx *Context) Components() []*Component {
	out := make([]*Component, len(ctx.components))
	copy(out, ctx.components)
	return out
}

// Freeze marks the context as optimized: subsequent Builder.Add calls on
// it are a programmer error (building and optimization are strictly
// single-writer, spec.md §5), but matching remains safe from any number
// of goroutines.
func (ctx *Context) Freeze() { ctx.frozen = true }

// Frozen reports whether Freeze has been called.
func (ctx *Context) Frozen() bool { return ctx.frozen }

func (ctx *Context) debugf(format string, args ...any) {
	if ctx.Diag != nil {
		ctx.Diag.Debugf(format, args...)
	}
}

func (ctx *Context) errorf(code, format string, args ...any) {
	if ctx.Diag != nil {
		ctx.Diag.Errorf(code, format, args...)
	}
}
