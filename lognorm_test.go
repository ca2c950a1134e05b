package lognorm_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsyslog/go-lognorm"
)

const rulebaseJSON = `{
  "components": [
    {"name": "addr", "body": {"seq": [
      {"type": "ipv4", "name": "ip"},
      {"type": "literal", "params": {"text": ":"}},
      {"type": "number", "name": "port"}
    ]}}
  ],
  "rules": [
    {"body": {"type": "@addr", "name": "."}, "tags": ["connection"]}
  ]
}`

func TestLoadNormalizeRoundTrip(t *testing.T) {
	ctx, err := lognorm.Load(strings.NewReader(rulebaseJSON))
	require.NoError(t, err)

	outcome, err := ctx.Normalize("10.0.0.1:443")
	require.NoError(t, err)

	parsed, ok := outcome.(lognorm.Parsed)
	require.True(t, ok)
	assert.Equal(t, []string{"connection"}, parsed.Tags)

	ip, _ := parsed.Record.Get("ip")
	port, _ := parsed.Record.Get("port")
	assert.Equal(t, "10.0.0.1", ip)
	assert.Equal(t, int64(443), port)
}

func TestNormalizeUnmatchedLineReturnsUnparsed(t *testing.T) {
	ctx, err := lognorm.Load(strings.NewReader(rulebaseJSON))
	require.NoError(t, err)

	outcome, err := ctx.Normalize("not an address")
	require.NoError(t, err)

	_, ok := outcome.(lognorm.Unparsed)
	assert.True(t, ok)
}

func TestNormalizeBatchMatchesSequentialResults(t *testing.T) {
	ctx, err := lognorm.Load(strings.NewReader(rulebaseJSON))
	require.NoError(t, err)

	lines := []string{"10.0.0.1:443", "garbage", "127.0.0.1:22"}
	outcomes, err := ctx.NormalizeBatch(context.Background(), lines)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	for i, line := range lines {
		want, err := ctx.Normalize(line)
		require.NoError(t, err)
		assert.Equal(t, want.Kind(), outcomes[i].Kind())
	}
}

func TestStatsReportsNonZeroShape(t *testing.T) {
	ctx, err := lognorm.Load(strings.NewReader(rulebaseJSON))
	require.NoError(t, err)

	report := ctx.Stats()
	assert.Greater(t, report.Nodes, 0)
	assert.Equal(t, 2, report.Terminals)
}

func TestDOTIncludesComponentCluster(t *testing.T) {
	ctx, err := lognorm.Load(strings.NewReader(rulebaseJSON))
	require.NoError(t, err)

	assert.Contains(t, ctx.DOT(), "cluster_addr")
}

func TestMarshalOutcomeJSONDiscriminatesKind(t *testing.T) {
	ctx, err := lognorm.Load(strings.NewReader(rulebaseJSON))
	require.NoError(t, err)

	parsed, err := ctx.Normalize("10.0.0.1:443")
	require.NoError(t, err)
	b, err := lognorm.MarshalOutcomeJSON(parsed)
	require.NoError(t, err)

	var envelope struct {
		Kind string         `json:"kind"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(b, &envelope))
	assert.Equal(t, "parsed", envelope.Kind)
	assert.Equal(t, []any{"connection"}, envelope.Data["event.tags"], "tags must be flattened into the record under the reserved event.tags key")

	unparsed, err := ctx.Normalize("garbage")
	require.NoError(t, err)
	b, err = lognorm.MarshalOutcomeJSON(unparsed)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &envelope))
	assert.Equal(t, "unparsed", envelope.Kind)
	assert.Equal(t, "garbage", envelope.Data["originalmsg"])
	_, hasUnparsedData := envelope.Data["unparsed-data"]
	assert.True(t, hasUnparsedData, "unparsed outcomes must expose the reserved unparsed-data key")
}
