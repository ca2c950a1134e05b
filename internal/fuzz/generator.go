// Package fuzz generates random rulebase configurations and matching
// inputs, and runs a concurrent worker pool over them, to exercise the
// testable properties of spec.md §8 (merge idempotence, literal-compaction
// equivalence, acyclicity/termination). Grounded on the
// teacher's sampling.IndependentEdgeSampler (seeded math/rand/v2 PCG) and
// the worker-pool shape of inference.ReachabilityProbabilityMonteCarlo,
// repurposed from Monte Carlo graph sampling to property-based generation.
package fuzz

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/rsyslog/go-lognorm/internal/config"
)

// Generator produces random parser configurations and text known to match
// them, seeded for reproducibility.
type Generator struct {
	Rand *rand.Rand
}

// NewGenerator seeds a Generator's PCG the same way the teacher derives its
// two Monte Carlo stream constants from one seed value.
func NewGenerator(seed uint64) *Generator {
	return &Generator{Rand: rand.New(rand.NewPCG(seed, seed^0xda942042e4dd58b5))}
}

// Step is one generated field: the config.Node to add to a rule body and
// the literal text that motif is guaranteed to match.
type Step struct {
	Node config.Node
	Text string
}

var wordAlphabet = []byte("abcdefghijklmnopqrstuvwxyz")

func (g *Generator) randomWord(minLen, maxLen int) string {
	n := minLen + g.Rand.IntN(maxLen-minLen+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = wordAlphabet[g.Rand.IntN(len(wordAlphabet))]
	}
	return string(b)
}

func (g *Generator) randomNumber() string {
	return strconv.Itoa(g.Rand.IntN(1_000_000))
}

// captureName returns "" a third of the time (absent capture), otherwise a
// short generated field name.
func (g *Generator) captureName(i int) string {
	if g.Rand.IntN(3) == 0 {
		return ""
	}
	return fmt.Sprintf("field%d", i)
}

// RandomField returns a random literal, number, or word step with capture
// name chosen by index i (so a generated rule's fields get distinct names).
func (g *Generator) RandomField(i int) Step {
	name := g.captureName(i)
	switch g.Rand.IntN(3) {
	case 0:
		text := g.randomWord(3, 8)
		return Step{
			Node: config.Node{Single: &config.Parser{Type: "literal", Name: name, Params: map[string]any{"text": text}}},
			Text: text,
		}
	case 1:
		text := g.randomNumber()
		return Step{
			Node: config.Node{Single: &config.Parser{Type: "number", Name: name}},
			Text: text,
		}
	default:
		text := g.randomWord(3, 8)
		return Step{
			Node: config.Node{Single: &config.Parser{Type: "word", Name: name}},
			Text: text,
		}
	}
}

// RandomRule builds a random sequence of numFields fields separated by a
// single literal space, returning the rule body and the exact input text
// that sequence matches in full.
func (g *Generator) RandomRule(numFields int) (config.Node, string) {
	if numFields < 1 {
		numFields = 1
	}
	seq := make(config.Sequence, 0, numFields*2-1)
	text := ""
	for i := 0; i < numFields; i++ {
		if i > 0 {
			seq = append(seq, config.Node{Single: &config.Parser{Type: "literal", Params: map[string]any{"text": " "}}})
			text += " "
		}
		step := g.RandomField(i)
		seq = append(seq, step.Node)
		text += step.Text
	}
	return config.Node{Seq: seq}, text
}
