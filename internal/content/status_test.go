package content

import (
	"reflect"
	"testing"

	"github.com/yungbote/deckforge-backend/internal/types"
)

func TestDeriveStatusPendingNothingConfirmed(t *testing.T) {
	contentMap := map[string]any{"a": types.Sentinel + " need data"}

	got := DeriveStatus(contentMap, nil, types.StatusAiGenerated)

	if got != types.StatusAiGenerated {
		t.Fatalf("status must stay unchanged: got %s", got)
	}
}

func TestDeriveStatusAllConfirmed(t *testing.T) {
	contentMap := map[string]any{"a": types.Sentinel + " need data"}

	got := DeriveStatus(contentMap, []string{"a"}, types.StatusAiGenerated)

	if got != types.StatusUserCompleted {
		t.Fatalf("want user_completed, got %s", got)
	}
}

func TestDeriveStatusPartiallyConfirmed(t *testing.T) {
	contentMap := map[string]any{
		"a": types.Sentinel + " need data",
		"b": types.Sentinel + " need more data",
	}

	got := DeriveStatus(contentMap, []string{"a"}, types.StatusAiGenerated)

	if got != types.StatusPartialUserInput {
		t.Fatalf("want partial_user_input, got %s", got)
	}
}

func TestDeriveStatusCanRegress(t *testing.T) {
	contentMap := map[string]any{"a": types.Sentinel + " new gap", "b": "done"}

	got := DeriveStatus(contentMap, []string{"b"}, types.StatusUserCompleted)

	if got != types.StatusPartialUserInput {
		t.Fatalf("completed slides regress when a sentinel comes back: got %s", got)
	}
}

func TestPendingFieldsSortedAndFiltered(t *testing.T) {
	contentMap := map[string]any{
		"zeta":    types.Sentinel + ": z",
		"alpha":   types.Sentinel + ": a",
		"done":    "finished text",
		"numeric": 3,
	}

	got := PendingFields(contentMap, []string{"zeta"})

	if !reflect.DeepEqual(got, []string{"alpha"}) {
		t.Fatalf("pending fields: got %v", got)
	}

	all := PendingFields(contentMap, nil)
	if !reflect.DeepEqual(all, []string{"alpha", "zeta"}) {
		t.Fatalf("pending fields must be sorted: got %v", all)
	}
}
