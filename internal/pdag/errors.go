package pdag

import "fmt"

// BuildError is the BadConfig error kind of spec.md §7: a malformed parser
// configuration (missing type, unknown motif, unknown custom type, wrong
// shape for alternative). Shaped like the teacher's GraphError/QueryError
// ({Kind, Message} + Error()).
type BuildError struct {
	Kind    string
	Message string
}

func (e BuildError) Error() string {
	return fmt.Sprintf("pdag build error (%s): %s", e.Kind, e.Message)
}

func errUnknownMotif(name string) error {
	return BuildError{Kind: "UnknownMotif", Message: fmt.Sprintf("unknown motif type %q", name)}
}

func errUnknownComponent(name string) error {
	return BuildError{Kind: "UnknownComponent", Message: fmt.Sprintf("unknown custom type @%s", name)}
}

func errMissingType() error {
	return BuildError{Kind: "MissingType", Message: "parser configuration is missing required key \"type\""}
}

func errBadAlternative() error {
	return BuildError{Kind: "BadAlternative", Message: "alternative composition requires a non-empty \"parser\" array"}
}

func errConstruct(motifName string, cause error) error {
	return BuildError{Kind: "ConstructFailed", Message: fmt.Sprintf("motif %q constructor failed: %v", motifName, cause)}
}
