package pdag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsyslog/go-lognorm/internal/config"
	"github.com/rsyslog/go-lognorm/internal/motif"
	"github.com/rsyslog/go-lognorm/internal/pdag"
)

func lit(text string) config.Node {
	return config.Node{Single: &config.Parser{Type: "literal", Params: map[string]any{"text": text}}}
}

func TestAddMergesIdenticalEdges(t *testing.T) {
	ctx := pdag.New()
	b := pdag.NewBuilder(ctx)

	n1, err := b.Add(ctx.Main, lit("foo"))
	require.NoError(t, err)

	n2, err := b.Add(ctx.Main, lit("foo"))
	require.NoError(t, err)

	assert.Same(t, n1, n2, "identical literal configs must merge onto the same edge/successor")
	assert.Len(t, ctx.Main.Edges, 1)
}

func TestAddKeepsDistinctEdgesSeparate(t *testing.T) {
	ctx := pdag.New()
	b := pdag.NewBuilder(ctx)

	n1, err := b.Add(ctx.Main, lit("foo"))
	require.NoError(t, err)
	n2, err := b.Add(ctx.Main, lit("bar"))
	require.NoError(t, err)

	assert.NotSame(t, n1, n2)
	assert.Len(t, ctx.Main.Edges, 2)
}

func TestAddSequenceChains(t *testing.T) {
	ctx := pdag.New()
	b := pdag.NewBuilder(ctx)

	frontier, err := b.Add(ctx.Main, config.Node{Seq: config.Sequence{lit("foo"), lit("bar")}})
	require.NoError(t, err)

	require.Len(t, ctx.Main.Edges, 1)
	mid := ctx.Main.Edges[0].Successor
	require.Len(t, mid.Edges, 1)
	assert.Same(t, frontier, mid.Edges[0].Successor)
}

func TestAddAlternativeSharesSuccessor(t *testing.T) {
	ctx := pdag.New()
	b := pdag.NewBuilder(ctx)

	frontier, err := b.Add(ctx.Main, config.Node{Alt: &config.Alternative{
		Parser: []config.Node{lit("ok"), lit("OK")},
	}})
	require.NoError(t, err)

	require.Len(t, ctx.Main.Edges, 2)
	assert.Same(t, frontier, ctx.Main.Edges[0].Successor)
	assert.Same(t, frontier, ctx.Main.Edges[1].Successor)
}

func TestUnknownMotifIsBuildError(t *testing.T) {
	ctx := pdag.New()
	b := pdag.NewBuilder(ctx)

	_, err := b.Add(ctx.Main, config.Node{Single: &config.Parser{Type: "not-a-motif"}})
	require.Error(t, err)
	var be pdag.BuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "UnknownMotif", be.Kind)
}

func TestUnknownComponentIsBuildError(t *testing.T) {
	ctx := pdag.New()
	b := pdag.NewBuilder(ctx)

	_, err := b.Add(ctx.Main, config.Node{Single: &config.Parser{Type: "@missing"}})
	require.Error(t, err)
	var be pdag.BuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "UnknownComponent", be.Kind)
}

func TestCompileResolvesForwardComponentReference(t *testing.T) {
	rb := config.Rulebase{
		Components: []config.Component{
			{Name: "a", Body: config.Node{Single: &config.Parser{Type: "@b"}}},
			{Name: "b", Body: lit("x")},
		},
		Rules: []config.Rule{
			{Body: config.Node{Single: &config.Parser{Type: "@a"}}},
		},
	}
	ctx := pdag.New()
	require.NoError(t, pdag.Compile(ctx, rb))

	require.Len(t, ctx.Main.Edges, 1)
	assert.Equal(t, motif.CustomType, ctx.Main.Edges[0].MotifID)
}

func TestCombinedPriorityUserOverridesOrdering(t *testing.T) {
	ctx := pdag.New()
	b := pdag.NewBuilder(ctx)

	hi := 1
	_, err := b.Add(ctx.Main, config.Node{Single: &config.Parser{Type: "word"}})
	require.NoError(t, err)
	_, err = b.Add(ctx.Main, config.Node{Single: &config.Parser{Type: "rest", Priority: &hi}})
	require.NoError(t, err)

	require.Len(t, ctx.Main.Edges, 2)
	// rest's intrinsic priority (255) is normally worse than word's (60),
	// but a user priority of 1 gives rest (1<<8)|255, ahead of word's
	// unset default (30000<<8)|60, since the user bits dominate — here it
	// confirms combinedPriority actually factors in Priority rather than
	// ignoring it.
	assert.NotEqual(t, ctx.Main.Edges[0].Priority, ctx.Main.Edges[1].Priority)
}
