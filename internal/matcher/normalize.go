package matcher

import (
	"github.com/rsyslog/go-lognorm/internal/pdag"
	"github.com/rsyslog/go-lognorm/internal/record"
	"github.com/rsyslog/go-lognorm/internal/result"
)

// Normalize is the top-level entry point of spec.md §4.5: it requires a
// full match of input against ctx.Main and returns a Parsed outcome
// (record plus the winning terminal's tags, with ctx.Annotator given a
// chance to add more) or an Unparsed outcome carrying the original message
// and the unparsed remainder starting at the deepest offset any rule
// managed to reach.
func Normalize(ctx *pdag.Context, input string) (result.Outcome, error) {
	out := record.New()
	ok, deepest, terminal := Match(ctx.Main, input, 0, false, out)
	if !ok {
		return result.Unparsed{
			OriginalMsg:  input,
			UnparsedData: input[deepest:],
		}, nil
	}

	// Attaching event.tags to the record is the matcher's own job (spec.md
	// §4.5 step 3); the annotator is a separate, out-of-scope subsystem
	// that only gets a chance to add more on top of it.
	tags := terminal.Tags
	if len(tags) > 0 {
		out.Set("event.tags", tags)
	}
	if ctx.Annotator != nil {
		ctx.Annotator.Annotate(tags, out.Set)
	}

	return result.Parsed{Record: out, Tags: tags}, nil
}
