package fuzz

import (
	"encoding/json"
	"fmt"

	"github.com/rsyslog/go-lognorm/internal/config"
	"github.com/rsyslog/go-lognorm/internal/matcher"
	"github.com/rsyslog/go-lognorm/internal/optimizer"
	"github.com/rsyslog/go-lognorm/internal/pdag"
	"github.com/rsyslog/go-lognorm/internal/record"
	"github.com/rsyslog/go-lognorm/internal/result"
	"github.com/rsyslog/go-lognorm/internal/stats"
)

func compileSingleRule(body config.Node, tags []string) (*pdag.Context, error) {
	ctx := pdag.New()
	rb := config.Rulebase{Rules: []config.Rule{{Body: body, Tags: tags}}}
	if err := pdag.Compile(ctx, rb); err != nil {
		return nil, err
	}
	return ctx, nil
}

// RoundTrip checks that a freshly-generated rule, once compiled and
// optimized, fully matches the exact text the Generator built it from
// (spec.md §8's acyclicity/termination property, exercised incidentally:
// Normalize must return rather than loop).
func RoundTrip(g *Generator) error {
	body, text := g.RandomRule(1 + g.Rand.IntN(4))

	ctx, err := compileSingleRule(body, []string{"roundtrip"})
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	optimizer.Optimize(ctx)

	outcome, err := matcher.Normalize(ctx, text)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}
	if _, ok := outcome.(result.Parsed); !ok {
		return fmt.Errorf("expected a full match of %q, got %s", text, outcome)
	}
	return nil
}

// MergeIdempotent checks that adding the same rule body to a node twice
// leaves the PDAG's edge count unchanged the second time: the Builder's
// merge-by-fingerprint rule (spec.md §4.3) must recognize the duplicate.
func MergeIdempotent(g *Generator) error {
	body, _ := g.RandomRule(1 + g.Rand.IntN(4))

	ctx := pdag.New()
	b := pdag.NewBuilder(ctx)

	if _, err := b.Add(ctx.Main, body); err != nil {
		return fmt.Errorf("first add: %w", err)
	}
	before := stats.Collect(ctx)

	if _, err := b.Add(ctx.Main, body); err != nil {
		return fmt.Errorf("second add: %w", err)
	}
	after := stats.Collect(ctx)

	if before.Nodes != after.Nodes || before.Edges != after.Edges {
		return fmt.Errorf("merge not idempotent: before=%+v after=%+v", before, after)
	}
	return nil
}

// LiteralCompactionEquivalence checks that running the optimizer's
// literal-chain compaction never changes whether, or how, a generated rule
// matches its own text — only the PDAG's shape should shrink (spec.md §9's
// conservative compaction rule).
func LiteralCompactionEquivalence(g *Generator) error {
	numFields := 2 + g.Rand.IntN(3)
	body, text := g.RandomRule(numFields)

	ctx, err := compileSingleRule(body, []string{"literal"})
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	before := record.New()
	okBefore, _, termBefore := matcher.Match(ctx.Main, text, 0, false, before)

	optimizer.Optimize(ctx)

	after := record.New()
	okAfter, _, termAfter := matcher.Match(ctx.Main, text, 0, false, after)

	if okBefore != okAfter {
		return fmt.Errorf("match outcome changed across optimization: before=%v after=%v", okBefore, okAfter)
	}
	if !okBefore {
		return nil
	}
	if !sameTags(termBefore.Tags, termAfter.Tags) {
		return fmt.Errorf("terminal tags changed across optimization: before=%v after=%v", termBefore.Tags, termAfter.Tags)
	}

	beforeJSON, _ := json.Marshal(before)
	afterJSON, _ := json.Marshal(after)
	if string(beforeJSON) != string(afterJSON) {
		return fmt.Errorf("record changed across optimization: before=%s after=%s", beforeJSON, afterJSON)
	}
	return nil
}

func sameTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
