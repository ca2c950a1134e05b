package result

import (
	"encoding/json"
	"fmt"

	"github.com/rsyslog/go-lognorm/internal/record"
)

// Parsed is a successful match: the captured record plus the tags of the
// terminal node that was reached (spec.md §6). The matcher already flattens
// Tags into Record under the reserved "event.tags" key (spec.md §4.5 step
// 3), so Parsed's own JSON encoding is just Record's — Tags is kept on the
// struct purely for callers that want it without a map lookup.
type Parsed struct {
	Record *record.Record
	Tags   []string
}

func (p Parsed) Kind() Kind { return ParsedKind }

func (p Parsed) String() string {
	b, err := json.Marshal(p.Record)
	if err != nil {
		return fmt.Sprintf("parsed(tags=%v, <unmarshalable record: %v>)", p.Tags, err)
	}
	if len(p.Tags) == 0 {
		return string(b)
	}
	return fmt.Sprintf("%s tags=%v", b, p.Tags)
}

// MarshalJSON renders p as its record alone: event.tags already lives
// in the record under that reserved key, so Parsed contributes nothing
// beyond it to the wire encoding (spec.md §3, §6).
func (p Parsed) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Record)
}

// Unparsed is the fallback when no rule matches the full input: the
// original message and the fragment the deepest-reaching attempt failed to
// consume, under the reserved "originalmsg"/"unparsed-data" keys (spec.md
// §3, §4.5, §6, scenario S5).
type Unparsed struct {
	OriginalMsg  string `json:"originalmsg"`
	UnparsedData string `json:"unparsed-data"`
}

func (u Unparsed) Kind() Kind { return UnparsedKind }

func (u Unparsed) String() string {
	return fmt.Sprintf("unparsed: originalmsg=%q unparsed-data=%q", u.OriginalMsg, u.UnparsedData)
}
