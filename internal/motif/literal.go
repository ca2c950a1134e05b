package motif

import (
	"fmt"
	"strings"

	"github.com/rsyslog/go-lognorm/internal/diag"
)

// literalData is the opaque payload for the Literal motif: the exact text
// to match. Combining adjacent literals (optimizer.go, spec.md §4.4) just
// concatenates Text.
type literalData struct {
	Text string
}

func init() {
	register(Literal, Entry{
		Name:              "literal",
		IntrinsicPriority: 10,
		Construct:         constructLiteral,
		Match:             matchLiteral,
		Destruct:          func(diag.Sink, any) {},
	})
}

func constructLiteral(_ diag.Sink, params map[string]any) (any, error) {
	text, ok := params["text"].(string)
	if !ok || text == "" {
		return nil, fmt.Errorf("motif: literal requires a non-empty string \"text\" parameter")
	}
	return &literalData{Text: text}, nil
}

func matchLiteral(input string, offset int, data any, captureWanted bool) Result {
	d := data.(*literalData)
	if !strings.HasPrefix(input[offset:], d.Text) {
		return Result{}
	}
	r := Result{OK: true, Consumed: len(d.Text)}
	if captureWanted {
		r.Value = d.Text
	}
	return r
}

// LiteralText returns the matched text of a literal edge's data, used by
// the optimizer's literal-chain compaction and by stats.DOT's rendering.
func LiteralText(data any) string {
	return data.(*literalData).Text
}

// NewLiteralData is the optimizer's compaction constructor: it builds a
// combined literal payload without going through Construct (no
// configuration round-trips through JSON here, just concatenation).
func NewLiteralData(text string) any {
	return &literalData{Text: text}
}
