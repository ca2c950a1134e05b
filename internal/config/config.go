// Package config defines the structured parser-configuration value the
// Builder accepts (spec.md §6, "Input to Builder") and a JSON loader for
// it. The rulebase's own textual language and tokenizer are out of scope
// per spec.md §1; this is only the shape Builder consumes, plus a
// convenience JSON encoding of that shape, grounded on the teacher's
// internal/serialization package (typed wire struct + converter).
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Parser is a single parser-configuration object: Type is a motif name or
// an "@component" reference; Name is the capture name ("" or "-" means
// absent); Priority is the user priority override (nil means unset);
// Params holds motif-specific keys with "type"/"name"/"priority" removed.
type Parser struct {
	Type     string
	Name     string
	Priority *int
	Params   map[string]any
}

// Sequence is an ordered composition: each element is added in turn,
// advancing the builder frontier after each one (spec.md §4.3).
type Sequence []Node

// Alternative is a set of parser configs that must all resolve to the
// same successor node (spec.md §4.3).
type Alternative struct {
	Parser []Node
}

// Node is the sum type Builder.Add accepts: exactly one of Single,
// Sequence, or Alt is non-nil/non-empty.
type Node struct {
	Single *Parser
	Seq    Sequence
	Alt    *Alternative
}

// Rule is one named top-level rule: a single Node composition plus the
// tags attached to its terminal node once fully built.
type Rule struct {
	Body Node
	Tags []string
}

// Component is a named, reusable subgraph definition (spec.md §3).
type Component struct {
	Name string
	Body Node
}

// Rulebase is the full set of configuration the Builder consumes to
// compile a PDAG: named components (built first, so later rules can
// reference them via "@name") followed by main rules.
type Rulebase struct {
	Components []Component
	Rules      []Rule
}

// --- JSON wire format -------------------------------------------------

// wireNode mirrors Node but as a JSON-friendly union: exactly one of
// these fields is populated in any given document.
type wireNode struct {
	Type     string         `json:"type,omitempty"`
	Name     string         `json:"name,omitempty"`
	Priority *int           `json:"priority,omitempty"`
	Params   map[string]any `json:"params,omitempty"`
	Seq      []wireNode     `json:"seq,omitempty"`
	Alt      []wireNode     `json:"alt,omitempty"`
}

type wireRule struct {
	Body wireNode `json:"body"`
	Tags []string `json:"tags,omitempty"`
}

type wireComponent struct {
	Name string   `json:"name"`
	Body wireNode `json:"body"`
}

type wireRulebase struct {
	Components []wireComponent `json:"components,omitempty"`
	Rules      []wireRule      `json:"rules"`
}

func toNode(w wireNode) (Node, error) {
	switch {
	case len(w.Seq) > 0:
		seq := make(Sequence, len(w.Seq))
		for i, sub := range w.Seq {
			n, err := toNode(sub)
			if err != nil {
				return Node{}, err
			}
			seq[i] = n
		}
		return Node{Seq: seq}, nil

	case len(w.Alt) > 0:
		alts := make([]Node, len(w.Alt))
		for i, sub := range w.Alt {
			n, err := toNode(sub)
			if err != nil {
				return Node{}, err
			}
			alts[i] = n
		}
		return Node{Alt: &Alternative{Parser: alts}}, nil

	case w.Type != "":
		return Node{Single: &Parser{
			Type:     w.Type,
			Name:     w.Name,
			Priority: w.Priority,
			Params:   w.Params,
		}}, nil

	default:
		return Node{}, fmt.Errorf("config: node has neither type, seq, nor alt")
	}
}

func fromRulebase(wrb wireRulebase) (Rulebase, error) {
	rb := Rulebase{
		Components: make([]Component, len(wrb.Components)),
		Rules:      make([]Rule, len(wrb.Rules)),
	}
	for i, c := range wrb.Components {
		body, err := toNode(c.Body)
		if err != nil {
			return Rulebase{}, fmt.Errorf("component %q: %w", c.Name, err)
		}
		rb.Components[i] = Component{Name: c.Name, Body: body}
	}
	for i, r := range wrb.Rules {
		body, err := toNode(r.Body)
		if err != nil {
			return Rulebase{}, fmt.Errorf("rule %d: %w", i, err)
		}
		rb.Rules[i] = Rule{Body: body, Tags: r.Tags}
	}
	return rb, nil
}

// LoadJSON decodes a Rulebase from JSON read from r.
func LoadJSON(r io.Reader) (Rulebase, error) {
	var wrb wireRulebase
	if err := json.NewDecoder(r).Decode(&wrb); err != nil {
		return Rulebase{}, fmt.Errorf("config: decoding rulebase JSON: %w", err)
	}
	return fromRulebase(wrb)
}

// LoadJSONFile reads a Rulebase from a JSON file at path.
func LoadJSONFile(path string) (Rulebase, error) {
	f, err := os.Open(path)
	if err != nil {
		return Rulebase{}, fmt.Errorf("config: opening %s: %w", path, err)
	}
	defer f.Close()
	return LoadJSON(f)
}

// Fingerprint returns a canonical string for cfg's residual Params (and
// Type), used as the Builder's edge-merge key. This resolves spec.md §9's
// open question in favor of semantic equality: keys are sorted before
// encoding, so config documents that differ only in key order merge.
func Fingerprint(p *Parser) string {
	keys := make([]string, 0, len(p.Params))
	for k := range p.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	canon := struct {
		Type   string `json:"type"`
		Params []kv    `json:"params"`
	}{Type: p.Type}
	for _, k := range keys {
		canon.Params = append(canon.Params, kv{K: k, V: p.Params[k]})
	}

	b, err := json.Marshal(canon)
	if err != nil {
		// Params contains something unmarshalable; fall back to a
		// fingerprint that never collides rather than panicking.
		return fmt.Sprintf("%s:%p", p.Type, p)
	}
	return string(b)
}

type kv struct {
	K string `json:"k"`
	V any    `json:"v"`
}
