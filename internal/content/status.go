package content

import (
	"sort"

	"github.com/yungbote/deckforge-backend/internal/types"
)

// PendingFields returns the names of string-valued content fields that
// still carry the sentinel and have not been explicitly confirmed by the
// user. Sorted for determinism.
func PendingFields(contentMap map[string]any, confirmed []string) []string {
	confirmedSet := make(map[string]bool, len(confirmed))
	for _, f := range confirmed {
		confirmedSet[f] = true
	}
	var pending []string
	for key, value := range contentMap {
		s, ok := value.(string)
		if !ok {
			continue
		}
		if types.NeedsUserInput(s) && !confirmedSet[key] {
			pending = append(pending, key)
		}
	}
	sort.Strings(pending)
	return pending
}

// DeriveStatus computes a slide's completion status from its content and
// the fields the user has explicitly confirmed. The status is never set
// directly:
//
//   - no pending sentinel fields  -> user_completed
//   - some pending, some confirmed -> partial_user_input
//   - some pending, none confirmed -> previous status unchanged
//
// There is no terminal state: merging content that reintroduces a sentinel
// moves a completed slide back.
func DeriveStatus(contentMap map[string]any, confirmed []string, prev types.SlideStatus) types.SlideStatus {
	pending := PendingFields(contentMap, confirmed)
	if len(pending) == 0 {
		return types.StatusUserCompleted
	}
	if len(confirmed) > 0 {
		return types.StatusPartialUserInput
	}
	return prev
}
