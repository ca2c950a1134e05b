package optimizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsyslog/go-lognorm/internal/config"
	"github.com/rsyslog/go-lognorm/internal/motif"
	"github.com/rsyslog/go-lognorm/internal/optimizer"
	"github.com/rsyslog/go-lognorm/internal/pdag"
)

func lit(text string) config.Node {
	return config.Node{Single: &config.Parser{Type: "literal", Params: map[string]any{"text": text}}}
}

func TestOptimizeSortsByPriority(t *testing.T) {
	ctx := pdag.New()
	b := pdag.NewBuilder(ctx)
	_, err := b.Add(ctx.Main, config.Node{Single: &config.Parser{Type: "rest"}})
	require.NoError(t, err)
	_, err = b.Add(ctx.Main, config.Node{Single: &config.Parser{Type: "number"}})
	require.NoError(t, err)

	optimizer.Optimize(ctx)

	require.Len(t, ctx.Main.Edges, 2)
	assert.Equal(t, motif.Number, ctx.Main.Edges[0].MotifID, "number (priority 40) must sort before rest (255)")
	assert.Equal(t, motif.Rest, ctx.Main.Edges[1].MotifID)
}

func TestOptimizeCompactsConsecutiveLiterals(t *testing.T) {
	ctx := pdag.New()
	b := pdag.NewBuilder(ctx)
	_, err := b.Add(ctx.Main, config.Node{Seq: config.Sequence{lit("foo"), lit("bar"), lit("baz")}})
	require.NoError(t, err)

	optimizer.Optimize(ctx)

	require.Len(t, ctx.Main.Edges, 1)
	merged := ctx.Main.Edges[0]
	assert.Equal(t, "foobarbaz", motif.LiteralText(merged.Data))
	// Compaction must have collapsed the two intermediate nodes away.
	assert.Len(t, merged.Successor.Edges, 0)
}

func TestOptimizeNeverCompactsAcrossTerminal(t *testing.T) {
	ctx := pdag.New()
	b := pdag.NewBuilder(ctx)
	mid, err := b.Add(ctx.Main, lit("foo"))
	require.NoError(t, err)
	b.Terminal(mid, []string{"mid"})
	_, err = b.Add(mid, lit("bar"))
	require.NoError(t, err)

	optimizer.Optimize(ctx)

	require.Len(t, ctx.Main.Edges, 1)
	assert.Equal(t, "foo", motif.LiteralText(ctx.Main.Edges[0].Data), "a terminal successor must not be absorbed")
}

func TestOptimizeNeverCompactsAcrossCapturingEdge(t *testing.T) {
	ctx := pdag.New()
	b := pdag.NewBuilder(ctx)
	_, err := b.Add(ctx.Main, config.Node{Seq: config.Sequence{
		lit("foo"),
		config.Node{Single: &config.Parser{Type: "literal", Name: "captured", Params: map[string]any{"text": "bar"}}},
	}})
	require.NoError(t, err)

	optimizer.Optimize(ctx)

	require.Len(t, ctx.Main.Edges, 1)
	assert.Equal(t, "foo", motif.LiteralText(ctx.Main.Edges[0].Data))
}

func TestOptimizeFreezesContext(t *testing.T) {
	ctx := pdag.New()
	assert.False(t, ctx.Frozen())
	optimizer.Optimize(ctx)
	assert.True(t, ctx.Frozen())
}
