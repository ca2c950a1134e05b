package motif

import "github.com/rsyslog/go-lognorm/internal/diag"

func init() {
	register(Word, Entry{
		Name:              "word",
		IntrinsicPriority: 60,
		Construct:         func(diag.Sink, map[string]any) (any, error) { return nil, nil },
		Match:             matchWord,
		Destruct:          func(diag.Sink, any) {},
	})
	register(Alpha, Entry{
		Name:              "alpha",
		IntrinsicPriority: 65,
		Construct:         func(diag.Sink, map[string]any) (any, error) { return nil, nil },
		Match:             matchAlpha,
		Destruct:          func(diag.Sink, any) {},
	})
	register(Whitespace, Entry{
		Name:              "whitespace",
		IntrinsicPriority: 45,
		Construct:         func(diag.Sink, map[string]any) (any, error) { return nil, nil },
		Match:             matchWhitespace,
		Destruct:          func(diag.Sink, any) {},
	})
	register(Rest, Entry{
		Name:              "rest",
		IntrinsicPriority: 255,
		Construct:         func(diag.Sink, map[string]any) (any, error) { return nil, nil },
		Match:             matchRest,
		Destruct:          func(diag.Sink, any) {},
	})
}

// matchWord consumes a greedy run of non-whitespace characters.
func matchWord(input string, offset int, _ any, captureWanted bool) Result {
	i := offset
	for i < len(input) && !isSpace(input[i]) {
		i++
	}
	if i == offset {
		return Result{}
	}
	r := Result{OK: true, Consumed: i - offset}
	if captureWanted {
		r.Value = input[offset:i]
	}
	return r
}

// matchAlpha consumes a greedy run of ASCII letters.
func matchAlpha(input string, offset int, _ any, captureWanted bool) Result {
	i := offset
	for i < len(input) && isAlpha(input[i]) {
		i++
	}
	if i == offset {
		return Result{}
	}
	r := Result{OK: true, Consumed: i - offset}
	if captureWanted {
		r.Value = input[offset:i]
	}
	return r
}

// matchWhitespace consumes one or more space/tab characters.
func matchWhitespace(input string, offset int, _ any, captureWanted bool) Result {
	i := offset
	for i < len(input) && isSpace(input[i]) {
		i++
	}
	if i == offset {
		return Result{}
	}
	r := Result{OK: true, Consumed: i - offset}
	if captureWanted {
		r.Value = input[offset:i]
	}
	return r
}

// matchRest is the catch-all: it always succeeds, consuming every
// remaining byte, including zero (spec.md §4.1: "greedy terminal matchers
// (rest) at 255").
func matchRest(input string, offset int, _ any, captureWanted bool) Result {
	r := Result{OK: true, Consumed: len(input) - offset}
	if captureWanted {
		r.Value = input[offset:]
	}
	return r
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
