package motif

import (
	"strconv"

	"github.com/rsyslog/go-lognorm/internal/diag"
)

func init() {
	register(QuotedString, Entry{
		Name:              "quoted-string",
		IntrinsicPriority: 20,
		Construct:         func(diag.Sink, map[string]any) (any, error) { return nil, nil },
		Match:             matchQuotedString,
		Destruct:          func(diag.Sink, any) {},
	})
}

// matchQuotedString consumes a double-quoted string, including escape
// sequences, using strconv.Unquote for the escape handling (no example in
// the pack owns string-escape parsing; strconv is the idiomatic stdlib
// choice, see DESIGN.md).
func matchQuotedString(input string, offset int, _ any, captureWanted bool) Result {
	if offset >= len(input) || input[offset] != '"' {
		return Result{}
	}
	i := offset + 1
	for i < len(input) {
		switch input[i] {
		case '\\':
			i += 2
			continue
		case '"':
			raw := input[offset : i+1]
			unquoted, err := strconv.Unquote(raw)
			if err != nil {
				return Result{}
			}
			r := Result{OK: true, Consumed: len(raw)}
			if captureWanted {
				r.Value = unquoted
			}
			return r
		}
		i++
	}
	return Result{}
}
