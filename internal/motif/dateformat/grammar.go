// Package dateformat compiles a strftime-flavored format string (e.g.
// "%Y-%m-%d %H:%M:%S") into a sequence of Directive values the date motif
// matches against input text. It exists because the date motif's
// configuration is itself a small grammar worth parsing properly rather
// than hand-scanning — the same role the teacher's query DSL grammar
// plays for pgraph's DSL, here repointed at format strings since the
// rulebase language's own tokenizer is out of scope (spec.md §1).
package dateformat

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Kind enumerates the supported format directives.
type Kind int

const (
	Year4 Kind = iota
	Month2
	Day2
	Hour2
	Minute2
	Second2
	MonthName
	Lit
)

// Directive is one compiled unit of a format string: either a fixed-width
// field (Kind != Lit) or a literal run of filler text (Kind == Lit, Text
// set).
type Directive struct {
	Kind Kind
	Text string // only meaningful for Lit
}

var formatLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Directive", Pattern: `%[A-Za-z%]`},
	{Name: "Literal", Pattern: `[^%]+`},
})

type formatAST struct {
	Tokens []*tokenAST `parser:"@@*"`
}

type tokenAST struct {
	Directive string `parser:"  @Directive"`
	Literal   string `parser:"| @Literal"`
}

var formatParser = participle.MustBuild[formatAST](
	participle.Lexer(formatLexer),
)

// Compile parses a format string into a Directive sequence.
func Compile(format string) ([]Directive, error) {
	ast, err := formatParser.ParseString("", format)
	if err != nil {
		return nil, fmt.Errorf("dateformat: %w", err)
	}

	var out []Directive
	for _, tok := range ast.Tokens {
		if tok.Literal != "" {
			out = append(out, Directive{Kind: Lit, Text: tok.Literal})
			continue
		}
		switch tok.Directive {
		case "%Y":
			out = append(out, Directive{Kind: Year4})
		case "%m":
			out = append(out, Directive{Kind: Month2})
		case "%d":
			out = append(out, Directive{Kind: Day2})
		case "%H":
			out = append(out, Directive{Kind: Hour2})
		case "%M":
			out = append(out, Directive{Kind: Minute2})
		case "%S":
			out = append(out, Directive{Kind: Second2})
		case "%b":
			out = append(out, Directive{Kind: MonthName})
		case "%%":
			out = append(out, Directive{Kind: Lit, Text: "%"})
		default:
			return nil, fmt.Errorf("dateformat: unsupported directive %q", tok.Directive)
		}
	}
	return out, nil
}
