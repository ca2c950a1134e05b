// Package motif is the static catalog of built-in matchers (spec.md §4.1,
// "Motif Registry"): literal, number, word, ipv4, quoted-string, dates,
// and so on. Each entry exposes construct/match/destruct hooks and a
// default intrinsic priority. The registry is indexed by a small integer
// ID rather than a name lookup at match time, per spec.md §4.1's "indexed
// by a small integer motif id".
package motif

import "github.com/rsyslog/go-lognorm/internal/diag"

// ID is the motif identifier. CustomType is the sentinel spec.md §3
// describes: an edge with MotifID == CustomType carries a *component
// reference instead of motif.Entry-constructed data, and the matcher
// never calls Construct/Match/Destruct for it.
type ID int

const (
	Invalid ID = iota
	Literal
	Number
	HexNumber
	Float
	Word
	Alpha
	Rest
	Whitespace
	IPv4
	IPv6
	QuotedString
	CharTo
	CharSeparated
	Date
	CustomType
	count
)

// Result is what Match returns on success; ok=false means no-match (the
// "WrongParser" internal condition of spec.md §7 — never user-visible,
// it just drives backtracking).
type Result struct {
	OK       bool
	Consumed int
	Value    any // nil unless captureWanted was true
}

// Entry is one row of the registry: {name, intrinsic_priority, construct,
// match, destruct} per spec.md §4.1.
type Entry struct {
	Name              string
	IntrinsicPriority int

	// Construct is called once at build time with the residual
	// configuration (type/name/priority keys already removed). May fail.
	Construct func(diag diag.Sink, params map[string]any) (any, error)

	// Match is pure with respect to the node graph: it must not mutate
	// shared state. If captureWanted is false, Value must stay nil (the
	// optimization contract of spec.md §4.1).
	Match func(input string, offset int, data any, captureWanted bool) Result

	// Destruct is called once at edge teardown.
	Destruct func(diag diag.Sink, data any)
}

var registry [count]Entry
var byName = make(map[string]ID)

func register(id ID, e Entry) {
	registry[id] = e
	byName[e.Name] = id
}

// Lookup resolves a motif name to its ID, returning (Invalid, false) if
// unknown.
func Lookup(name string) (ID, bool) {
	id, ok := byName[name]
	return id, ok
}

// Get returns the registry entry for id.
func Get(id ID) Entry { return registry[id] }

// String returns the registered name for id ("" for Invalid/CustomType).
func (id ID) String() string { return registry[id].Name }
