package stats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rsyslog/go-lognorm/internal/motif"
	"github.com/rsyslog/go-lognorm/internal/pdag"
)

// DOT renders ctx as a Graphviz "dot" directed-graph description. Literal
// edges are labeled with their (sanitized) matched text; custom-type edges
// are labeled with the component name they invoke, rendered as a separate
// cluster per named component (spec.md §4.6).
func DOT(ctx *pdag.Context) string {
	var b strings.Builder
	b.WriteString("digraph pdag {\n")

	rendered := make(map[pdag.NodeID]bool)
	renderFrom(&b, ctx.Main, rendered)

	for _, c := range ctx.Components() {
		fmt.Fprintf(&b, "  subgraph cluster_%s {\n    label=%s;\n", sanitizeID(c.Name), strconv.Quote(c.Name))
		fmt.Fprintf(&b, "    n%d;\n", c.Root.ID())
		b.WriteString("  }\n")
		renderFrom(&b, c.Root, rendered)
	}

	b.WriteString("}\n")
	return b.String()
}

func renderFrom(b *strings.Builder, root *pdag.Node, rendered map[pdag.NodeID]bool) {
	pdag.Walk(root, func(n *pdag.Node) {
		if rendered[n.ID()] {
			return
		}
		rendered[n.ID()] = true

		if n.IsTerminal {
			fmt.Fprintf(b, "  n%d [shape=doublecircle];\n", n.ID())
		}
		for _, e := range n.Edges {
			if e.Successor == nil {
				continue
			}
			fmt.Fprintf(b, "  n%d -> n%d [label=%s];\n", n.ID(), e.Successor.ID(), strconv.Quote(edgeLabel(e)))
		}
	})
}

func edgeLabel(e *pdag.Edge) string {
	if e.MotifID == motif.CustomType {
		return "@" + e.Component().Name
	}
	if e.MotifID == motif.Literal {
		return sanitizeLiteral(motif.LiteralText(e.Data))
	}
	return e.MotifID.String()
}

func sanitizeLiteral(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return s
}

func sanitizeID(name string) string {
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('_')
	}
	return b.String()
}
