// Package lognorm is the public entry point to the log-normalization PDAG
// engine: compile a rulebase, then normalize lines against it.
package lognorm

import (
	"context"
	"encoding/json"
	"io"

	"github.com/rsyslog/go-lognorm/internal/batch"
	"github.com/rsyslog/go-lognorm/internal/config"
	"github.com/rsyslog/go-lognorm/internal/diag"
	"github.com/rsyslog/go-lognorm/internal/matcher"
	"github.com/rsyslog/go-lognorm/internal/optimizer"
	"github.com/rsyslog/go-lognorm/internal/pdag"
	"github.com/rsyslog/go-lognorm/internal/result"
	"github.com/rsyslog/go-lognorm/internal/stats"
)

type (
	Outcome  = result.Outcome
	Parsed   = result.Parsed
	Unparsed = result.Unparsed
	Report   = stats.Report
)

// Context wraps a compiled PDAG: the rulebase's main root, its named
// components, and the diagnostics/annotation hooks matching runs through.
type Context struct {
	pdag *pdag.Context
}

// New returns an empty Context, ready to be built up incrementally via
// Builder and finished with Optimize.
func New() *Context {
	return &Context{pdag: pdag.New()}
}

// Builder exposes the Context's underlying pdag.Builder for incremental
// construction (the same shape as the teacher's PGraph.Graph field being
// handed directly to callers that want to build on top of it).
func (c *Context) Builder() *pdag.Builder {
	return pdag.NewBuilder(c.pdag)
}

// Optimize runs the optimizer over the Context's PDAG and freezes it
// against further building. Call once, after all rules have been added.
func (c *Context) Optimize() {
	optimizer.Optimize(c.pdag)
}

// SetDiag installs a diagnostics sink, overriding the default no-op.
func (c *Context) SetDiag(sink diag.Sink) {
	c.pdag.Diag = sink
}

// SetAnnotator installs an annotator, overriding the default no-op.
func (c *Context) SetAnnotator(a diag.Annotator) {
	c.pdag.Annotator = a
}

// Load reads a JSON-encoded rulebase from r, compiles and optimizes it.
func Load(r io.Reader) (*Context, error) {
	rb, err := config.LoadJSON(r)
	if err != nil {
		return nil, err
	}
	return build(rb)
}

// LoadFile reads a JSON-encoded rulebase from path, compiles and
// optimizes it.
func LoadFile(path string) (*Context, error) {
	rb, err := config.LoadJSONFile(path)
	if err != nil {
		return nil, err
	}
	return build(rb)
}

func build(rb config.Rulebase) (*Context, error) {
	pctx := pdag.New()
	if err := pdag.Compile(pctx, rb); err != nil {
		return nil, err
	}
	optimizer.Optimize(pctx)
	return &Context{pdag: pctx}, nil
}

// Normalize matches line against the compiled rulebase, returning a Parsed
// or Unparsed Outcome.
func (c *Context) Normalize(line string) (Outcome, error) {
	return matcher.Normalize(c.pdag, line)
}

// NormalizeBatch normalizes every line concurrently, honoring ctx's
// cancellation (spec.md §5).
func (c *Context) NormalizeBatch(ctx context.Context, lines []string) ([]Outcome, error) {
	return batch.NormalizeAll(ctx, c.pdag, lines)
}

// Stats reports the compiled PDAG's shape.
func (c *Context) Stats() Report {
	return stats.Collect(c.pdag)
}

// DOT renders the compiled PDAG as a Graphviz description.
func (c *Context) DOT() string {
	return stats.DOT(c.pdag)
}

type jsonOutcome struct {
	Kind string `json:"kind"`
	Data any    `json:"data"`
}

// MarshalOutcomeJSON renders an Outcome as a {"kind", "data"} envelope,
// grounded on the teacher's MarshalResultJSON discriminated encoding.
func MarshalOutcomeJSON(o Outcome) ([]byte, error) {
	var jo jsonOutcome
	switch v := o.(type) {
	case result.Parsed:
		jo = jsonOutcome{Kind: "parsed", Data: v}
	case result.Unparsed:
		jo = jsonOutcome{Kind: "unparsed", Data: v}
	default:
		jo = jsonOutcome{Kind: "unknown", Data: o.String()}
	}
	return json.Marshal(jo)
}
