package pdag

import "github.com/rsyslog/go-lognorm/internal/motif"

// Edge is a Parser Instance: one attempt at consuming input (spec.md §3,
// "Parser Instance (Edge)"). When MotifID is motif.CustomType, Data holds
// a *Component rather than motif-constructed data, per spec.md §3's
// invariant.
type Edge struct {
	MotifID     motif.ID
	CaptureName string // "" = absent, "." = splice, else a field name
	Data        any
	Successor   *Node
	Fingerprint string // merge key: motif id + semantic config equality
	Priority    int    // combined priority, spec.md §4.2
}

// Component returns the named component a CustomType edge invokes.
func (e *Edge) Component() *Component {
	return e.Data.(*Component)
}

// teardown invokes the motif's destructor (spec.md §3, Parser Instance
// lifecycle: "on destruction the motif's destructor is invoked on the
// opaque data"). CustomType edges have no motif data to destruct.
func (e *Edge) teardown(ctx *Context) {
	if e.MotifID == motif.CustomType {
		return
	}
	motif.Get(e.MotifID).Destruct(ctx.Diag, e.Data)
}
