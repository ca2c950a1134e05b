// Package result defines the Matcher's top-level output value (spec.md §6,
// "Matcher output"): either a Parsed record or an Unparsed fallback. Shaped
// directly on the teacher's Result interface (Kind() + String()).
package result

// Outcome is the result of normalizing one input line.
type Outcome interface {
	Kind() Kind
	String() string
}

// Kind discriminates the two Outcome implementations.
type Kind int

const (
	ParsedKind Kind = iota
	UnparsedKind
)

func (k Kind) String() string {
	switch k {
	case ParsedKind:
		return "parsed"
	case UnparsedKind:
		return "unparsed"
	default:
		return "unknown"
	}
}
