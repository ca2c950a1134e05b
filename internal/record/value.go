// Package record holds the structured output value model that the matcher
// writes captures into. The spec treats this object model as an opaque
// collaborator; this is the minimal concrete shape needed to implement
// capture-name splicing (spec.md §3, "Capture Name Semantics").
package record

// Kind discriminates the scalar variants a motif can capture.
type Kind int

const (
	IntVal Kind = iota
	FloatVal
	StringVal
	BoolVal
)

// Value is a closed tagged union of leaf scalar types, mirroring the
// teacher's graph.Value ({Kind, I, F, S, B}).
type Value struct {
	Kind Kind
	I    int64
	F    float64
	S    string
	B    bool
}

func Int(i int64) Value    { return Value{Kind: IntVal, I: i} }
func Float(f float64) Value { return Value{Kind: FloatVal, F: f} }
func String(s string) Value { return Value{Kind: StringVal, S: s} }
func Bool(b bool) Value     { return Value{Kind: BoolVal, B: b} }

// Any unwraps the tagged union into a plain Go value, useful at the JSON
// boundary (the annotator and CLI/daemon layers work in terms of this).
func (v Value) Any() any {
	switch v.Kind {
	case IntVal:
		return v.I
	case FloatVal:
		return v.F
	case StringVal:
		return v.S
	case BoolVal:
		return v.B
	default:
		return nil
	}
}
