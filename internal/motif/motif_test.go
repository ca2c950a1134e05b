package motif_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsyslog/go-lognorm/internal/motif"
)

func construct(t *testing.T, id motif.ID, params map[string]any) any {
	t.Helper()
	data, err := motif.Get(id).Construct(nil, params)
	require.NoError(t, err)
	return data
}

func TestLiteralMatch(t *testing.T) {
	data := construct(t, motif.Literal, map[string]any{"text": "foo"})
	r := motif.Get(motif.Literal).Match("foobar", 0, data, true)
	require.True(t, r.OK)
	assert.Equal(t, 3, r.Consumed)
	assert.Equal(t, "foo", r.Value)
}

func TestLiteralNoMatch(t *testing.T) {
	data := construct(t, motif.Literal, map[string]any{"text": "foo"})
	r := motif.Get(motif.Literal).Match("barfoo", 0, data, false)
	assert.False(t, r.OK)
}

func TestLiteralConstructRejectsEmptyText(t *testing.T) {
	_, err := motif.Get(motif.Literal).Construct(nil, map[string]any{})
	assert.Error(t, err)
}

func TestNumberMatch(t *testing.T) {
	r := motif.Get(motif.Number).Match("err 42", 4, nil, true)
	require.True(t, r.OK)
	assert.Equal(t, 2, r.Consumed)
	assert.Equal(t, int64(42), r.Value)
}

func TestNumberRejectsNonDigit(t *testing.T) {
	r := motif.Get(motif.Number).Match("abc", 0, nil, false)
	assert.False(t, r.OK)
}

func TestFloatRequiresFraction(t *testing.T) {
	r := motif.Get(motif.Float).Match("42", 0, nil, false)
	assert.False(t, r.OK, "a bare integer is left to the Number motif")

	r = motif.Get(motif.Float).Match("4.2", 0, nil, true)
	require.True(t, r.OK)
	assert.Equal(t, 4.2, r.Value)
}

func TestHexNumberOptionalPrefix(t *testing.T) {
	r := motif.Get(motif.HexNumber).Match("0xFF rest", 0, nil, true)
	require.True(t, r.OK)
	assert.Equal(t, 4, r.Consumed)
	assert.Equal(t, uint64(255), r.Value)

	r = motif.Get(motif.HexNumber).Match("ff", 0, nil, true)
	require.True(t, r.OK)
	assert.Equal(t, uint64(255), r.Value)
}

func TestWordStopsAtWhitespace(t *testing.T) {
	r := motif.Get(motif.Word).Match("alice bob", 0, nil, true)
	require.True(t, r.OK)
	assert.Equal(t, "alice", r.Value)
}

func TestAlphaStopsAtDigit(t *testing.T) {
	r := motif.Get(motif.Alpha).Match("abc123", 0, nil, true)
	require.True(t, r.OK)
	assert.Equal(t, "abc", r.Value)
}

func TestRestAlwaysSucceeds(t *testing.T) {
	r := motif.Get(motif.Rest).Match("", 0, nil, false)
	assert.True(t, r.OK)
	assert.Equal(t, 0, r.Consumed)
}

func TestIPv4StopsBeforeColon(t *testing.T) {
	r := motif.Get(motif.IPv4).Match("10.0.0.1:80", 0, nil, true)
	require.True(t, r.OK)
	assert.Equal(t, "10.0.0.1", r.Value)
	assert.Equal(t, 8, r.Consumed)
}

func TestIPv4RejectsBareInteger(t *testing.T) {
	r := motif.Get(motif.IPv4).Match("42", 0, nil, false)
	assert.False(t, r.OK)
}

func TestIPv6Matches(t *testing.T) {
	r := motif.Get(motif.IPv6).Match("::1 rest", 0, nil, true)
	require.True(t, r.OK)
	assert.Equal(t, "::1", r.Value)
}

func TestQuotedStringUnescapes(t *testing.T) {
	r := motif.Get(motif.QuotedString).Match(`"a\"b" tail`, 0, nil, true)
	require.True(t, r.OK)
	assert.Equal(t, `a"b`, r.Value)
}

func TestQuotedStringRequiresClosingQuote(t *testing.T) {
	r := motif.Get(motif.QuotedString).Match(`"unterminated`, 0, nil, false)
	assert.False(t, r.OK)
}

func TestCharToStopsBeforeSeparator(t *testing.T) {
	data := construct(t, motif.CharTo, map[string]any{"char": ","})
	r := motif.Get(motif.CharTo).Match("k=v,rest", 0, data, true)
	require.True(t, r.OK)
	assert.Equal(t, "k=v", r.Value)
	assert.Equal(t, 3, r.Consumed)
}

func TestCharSeparatedConsumesSeparator(t *testing.T) {
	data := construct(t, motif.CharSeparated, map[string]any{"char": ","})
	r := motif.Get(motif.CharSeparated).Match("k=v,rest", 0, data, true)
	require.True(t, r.OK)
	assert.Equal(t, "k=v", r.Value)
	assert.Equal(t, 4, r.Consumed)
}

func TestDateMatchesFormat(t *testing.T) {
	data := construct(t, motif.Date, map[string]any{"format": "%Y-%m-%d"})
	r := motif.Get(motif.Date).Match("2024-01-15 rest", 0, data, true)
	require.True(t, r.OK)
	assert.Equal(t, 10, r.Consumed)
	assert.Equal(t, "2024-01-15", r.Value)
}

func TestDateRejectsWrongWidth(t *testing.T) {
	data := construct(t, motif.Date, map[string]any{"format": "%Y-%m-%d"})
	r := motif.Get(motif.Date).Match("2024-1-15", 0, data, false)
	assert.False(t, r.OK)
}

func TestDateMonthName(t *testing.T) {
	data := construct(t, motif.Date, map[string]any{"format": "%b %d"})
	r := motif.Get(motif.Date).Match("Jan 15", 0, data, true)
	require.True(t, r.OK)
	assert.Equal(t, "Jan 15", r.Value)
}

func TestLookupUnknownMotif(t *testing.T) {
	_, ok := motif.Lookup("not-a-real-motif")
	assert.False(t, ok)
}

func TestLookupKnownMotif(t *testing.T) {
	id, ok := motif.Lookup("number")
	require.True(t, ok)
	assert.Equal(t, motif.Number, id)
}
