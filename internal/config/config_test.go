package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsyslog/go-lognorm/internal/config"
)

const sampleJSON = `{
  "components": [
    {"name": "addr", "body": {"seq": [
      {"type": "ipv4", "name": "ip"},
      {"type": "literal", "params": {"text": ":"}},
      {"type": "number", "name": "port"}
    ]}}
  ],
  "rules": [
    {"body": {"type": "@addr", "name": "."}, "tags": ["net"]}
  ]
}`

func TestLoadJSONRoundTrip(t *testing.T) {
	rb, err := config.LoadJSON(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	require.Len(t, rb.Components, 1)
	assert.Equal(t, "addr", rb.Components[0].Name)
	require.Len(t, rb.Components[0].Body.Seq, 3)

	require.Len(t, rb.Rules, 1)
	assert.Equal(t, []string{"net"}, rb.Rules[0].Tags)
	assert.Equal(t, "@addr", rb.Rules[0].Body.Single.Type)
	assert.Equal(t, ".", rb.Rules[0].Body.Single.Name)
}

func TestLoadJSONRejectsEmptyNode(t *testing.T) {
	_, err := config.LoadJSON(strings.NewReader(`{"rules": [{"body": {}}]}`))
	require.Error(t, err)
}

func TestFingerprintIgnoresKeyOrder(t *testing.T) {
	a := &config.Parser{Type: "literal", Params: map[string]any{"text": "x", "extra": 1}}
	b := &config.Parser{Type: "literal", Params: map[string]any{"extra": 1, "text": "x"}}
	assert.Equal(t, config.Fingerprint(a), config.Fingerprint(b))
}

func TestFingerprintDiffersOnType(t *testing.T) {
	a := &config.Parser{Type: "literal", Params: map[string]any{"text": "x"}}
	b := &config.Parser{Type: "word", Params: map[string]any{"text": "x"}}
	assert.NotEqual(t, config.Fingerprint(a), config.Fingerprint(b))
}

func TestFingerprintIgnoresNameAndPriority(t *testing.T) {
	p := 5
	a := &config.Parser{Type: "literal", Name: "a", Priority: &p, Params: map[string]any{"text": "x"}}
	b := &config.Parser{Type: "literal", Name: "b", Params: map[string]any{"text": "x"}}
	assert.Equal(t, config.Fingerprint(a), config.Fingerprint(b))
}
