package motif

import (
	"fmt"
	"strings"

	"github.com/rsyslog/go-lognorm/internal/diag"
)

type charData struct {
	Sep byte
}

func init() {
	register(CharTo, Entry{
		Name:              "char-to",
		IntrinsicPriority: 50,
		Construct:         constructChar,
		Match:             matchCharTo,
		Destruct:          func(diag.Sink, any) {},
	})
	register(CharSeparated, Entry{
		Name:              "char-separated",
		IntrinsicPriority: 51,
		Construct:         constructChar,
		Match:             matchCharSeparated,
		Destruct:          func(diag.Sink, any) {},
	})
}

func constructChar(_ diag.Sink, params map[string]any) (any, error) {
	sep, ok := params["char"].(string)
	if !ok || len(sep) != 1 {
		return nil, fmt.Errorf("motif: char-to/char-separated require a single-byte string \"char\" parameter")
	}
	return &charData{Sep: sep[0]}, nil
}

// matchCharTo consumes up to (not including) the next occurrence of the
// separator, or to end-of-string if the separator never appears.
func matchCharTo(input string, offset int, data any, captureWanted bool) Result {
	d := data.(*charData)
	rel := strings.IndexByte(input[offset:], d.Sep)
	end := len(input)
	if rel >= 0 {
		end = offset + rel
	}
	if end == offset {
		return Result{}
	}
	r := Result{OK: true, Consumed: end - offset}
	if captureWanted {
		r.Value = input[offset:end]
	}
	return r
}

// matchCharSeparated behaves like matchCharTo but also consumes the
// separator byte itself, so it can be chained to split "k=v,k2=v2" style
// input without a literal edge for the separator.
func matchCharSeparated(input string, offset int, data any, captureWanted bool) Result {
	d := data.(*charData)
	rel := strings.IndexByte(input[offset:], d.Sep)
	if rel < 0 {
		return Result{}
	}
	end := offset + rel
	if end == offset {
		return Result{}
	}
	r := Result{OK: true, Consumed: end - offset + 1}
	if captureWanted {
		r.Value = input[offset:end]
	}
	return r
}
