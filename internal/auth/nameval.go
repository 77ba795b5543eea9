package auth

import (
	"fmt"
	"strings"
)

// NameVal is a name:value pair given as a single command line token.
// It is used for both basic auth credentials (username:password) and
// custom auth headers (Header:Value).
type NameVal struct {
	Name  string
	Value string
}

// ParseNameVal splits s on the first colon. The value part may itself
// contain colons; a string without a colon is an error.
func ParseNameVal(s string) (NameVal, error) {
	pos := strings.Index(s, ":")
	if pos < 0 {
		return NameVal{}, fmt.Errorf("not a name:value pair, no `:` found in %q", s)
	}
	return NameVal{Name: s[:pos], Value: s[pos+1:]}, nil
}

// String renders the pair back into its command line form.
func (nv NameVal) String() string {
	return nv.Name + ":" + nv.Value
}
