package types

import "strings"

// Sentinel is the marker embedded in a text field meaning the user must
// supply real data there. Its presence is structural: completion status is
// derived from it, so it must never be rewritten or localized.
const Sentinel = "USER_NEEDED"

// NeedsUserInput reports whether a string value still carries the sentinel.
func NeedsUserInput(v string) bool {
	return strings.Contains(v, Sentinel)
}
