package record

import (
	"encoding/json"
)

// Record is the structured output tree the matcher writes captures into.
// Field order is preserved for deterministic JSON rendering, the way a
// hand-rolled log record would read back out.
type Record struct {
	order  []string
	fields map[string]any
}

// New returns an empty record.
func New() *Record {
	return &Record{fields: make(map[string]any)}
}

// Set stores v under key, overwriting any prior value but preserving the
// key's original position in iteration order.
func (r *Record) Set(key string, v any) {
	if _, exists := r.fields[key]; !exists {
		r.order = append(r.order, key)
	}
	r.fields[key] = v
}

// Get returns the value stored under key, if any.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Len reports how many top-level fields the record has.
func (r *Record) Len() int { return len(r.order) }

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Splice merges other's fields into r, in other's field order. Used when a
// capture name of "." is applied to an object-shaped value (spec.md §3).
func (r *Record) Splice(other *Record) {
	if other == nil {
		return
	}
	for _, k := range other.order {
		r.Set(k, other.fields[k])
	}
}

// ApplyCapture implements the three-way capture-name semantics of spec.md
// §3: a captureName of "" must never reach here (callers skip capture
// entirely when absent); "." either splices an object-shaped value's
// fields into r or, for a non-object value, stores it under the literal
// key "."; any other name stores the value under that key.
func (r *Record) ApplyCapture(captureName string, value any) {
	if captureName == "" {
		return
	}
	if captureName == "." {
		if sub, ok := value.(*Record); ok {
			r.Splice(sub)
			return
		}
		r.Set(".", value)
		return
	}
	r.Set(captureName, value)
}

// Clone returns a deep-enough copy for use as a temporary custom-type
// record: top-level fields are copied, nested records are not mutated in
// place by the caller so a shallow field copy is sufficient.
func (r *Record) Clone() *Record {
	clone := New()
	for _, k := range r.order {
		clone.Set(k, r.fields[k])
	}
	return clone
}

// Snapshot captures r's current field set for a later Reset, letting the
// matcher apply a capture speculatively and undo it cleanly on backtrack.
func (r *Record) Snapshot() *Record { return r.Clone() }

// Reset restores r's fields to a prior Snapshot.
func (r *Record) Reset(snapshot *Record) {
	r.order = append(r.order[:0], snapshot.order...)
	r.fields = make(map[string]any, len(snapshot.fields))
	for k, v := range snapshot.fields {
		r.fields[k] = v
	}
}

func (r *Record) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.order))
	for _, k := range r.order {
		m[k] = unwrap(r.fields[k])
	}
	return json.Marshal(m)
}

func unwrap(v any) any {
	switch t := v.(type) {
	case Value:
		return t.Any()
	case *Record:
		return t
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = unwrap(e)
		}
		return out
	default:
		return t
	}
}
