package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// idPartRegex matches the characters allowed in an identifier.
	idPartRegex = regexp.MustCompile(`[a-zA-Z0-9_\-\s]+`)
	// separatorRegex matches hyphen/whitespace runs collapsed into a single underscore.
	separatorRegex = regexp.MustCompile(`[-\s]+`)
)

// MakeID converts a display name into a slug identifier.
//
// The value is NFKC-normalized first so that full-width letters and compatibility
// spaces fold into their ASCII forms, then every character outside the identifier
// class is dropped, the result is lowercased and separator runs become "_".
//
//	"Chaotic Gore Magala Helm β" → "chaotic_gore_magala_helm_"
//	"Attack Boost"               → "attack_boost"
func MakeID(value string) string {
	value = norm.NFKC.String(value)

	var b strings.Builder
	b.Grow(len(value))
	for _, part := range idPartRegex.FindAllString(value, -1) {
		b.WriteString(part)
	}

	return separatorRegex.ReplaceAllString(strings.ToLower(b.String()), "_")
}
