// Package inflect derives singular parameter names from plural resource
// names. It applies the same minimal English heuristic the backend's route
// convention uses, on purpose: matching the backend's derived parameter key
// matters more than linguistic correctness, so irregular plurals like
// "people" pass through unchanged.
package inflect

import "strings"

// Singularize returns the singular form of a resource name.
//
// Rules, tried in order:
//
//	"ies" → "y"       categories → category
//	"ses" → drop "es" buses      → bus
//	"s"   → drop "s"  photos     → photo
//	otherwise unchanged
func Singularize(word string) string {
	switch {
	case strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "ses"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s"):
		return word[:len(word)-1]
	}
	return word
}
