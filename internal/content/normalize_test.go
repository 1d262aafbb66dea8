package content

import (
	"reflect"
	"testing"

	"github.com/yungbote/deckforge-backend/internal/template"
	"github.com/yungbote/deckforge-backend/internal/types"
)

func TestNormalizeAlwaysYieldsCanonicalFields(t *testing.T) {
	inputs := []map[string]any{
		nil,
		{},
		{"garbage": 42, "main_message": true},
		{"title": "A title", "bullet_points": []any{"a", "b"}},
	}
	for _, tt := range types.AllTemplateTypes() {
		for _, raw := range inputs {
			got := Normalize(raw, tt, "head")
			for _, field := range template.CanonicalFields(tt) {
				if _, ok := got[field]; !ok {
					t.Fatalf("type %s: canonical field %q missing for input %v", tt, field, raw)
				}
			}
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	raw := map[string]any{
		"title":             "Revenue doubled",
		"supporting_points": []any{"p1", "p2"},
		"action_guide":      "Act now",
		"custom_field":      "kept",
	}
	for _, tt := range types.AllTemplateTypes() {
		once := Normalize(raw, tt, "head")
		twice := Normalize(once, tt, "head")
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("type %s: normalize not idempotent:\nonce:  %v\ntwice: %v", tt, once, twice)
		}
	}
}

func TestNormalizeMessageOnlyAliases(t *testing.T) {
	got := Normalize(map[string]any{
		"title":             "The title",
		"supporting_points": []any{"a", "b"},
		"action_guide":      "Do it",
	}, types.TemplateMessageOnly, "head")

	if got["main_message"] != "The title" {
		t.Fatalf("main_message: got %v", got["main_message"])
	}
	points, ok := got["bullet_points"].([]any)
	if !ok || len(points) != 2 {
		t.Fatalf("bullet_points: got %v", got["bullet_points"])
	}
	if got["call_to_action"] != "Do it" {
		t.Fatalf("call_to_action: got %v", got["call_to_action"])
	}
}

func TestNormalizeMessageOnlyHeadMessageFallback(t *testing.T) {
	got := Normalize(map[string]any{}, types.TemplateMessageOnly, "the head message")
	if got["main_message"] != "the head message" {
		t.Fatalf("main_message: got %v", got["main_message"])
	}
}

func TestNormalizeAsIsToBeSentinelDefault(t *testing.T) {
	got := Normalize(map[string]any{
		"bullet_points": []any{"current"},
	}, types.TemplateAsIsToBe, "head")

	asIs, ok := got["as_is_points"].([]any)
	if !ok || len(asIs) != 1 || asIs[0] != "current" {
		t.Fatalf("as_is_points should fall back to bullet_points: got %v", got["as_is_points"])
	}
	transition, _ := got["transition_method"].(string)
	if !types.NeedsUserInput(transition) {
		t.Fatalf("transition_method should default to a sentinel value: got %q", transition)
	}
}

func TestNormalizeCaseBoxShapes(t *testing.T) {
	got := Normalize(map[string]any{
		"cases": []any{
			map[string]any{"title": "Case A"},
			"bare string case",
		},
	}, types.TemplateCaseBox, "head")

	cases, ok := got["cases"].([]any)
	if !ok || len(cases) != 2 {
		t.Fatalf("cases: got %v", got["cases"])
	}
	first := cases[0].(map[string]any)
	if first["title"] != "Case A" || first["description"] != "" {
		t.Fatalf("first case: got %v", first)
	}
	second := cases[1].(map[string]any)
	if second["title"] != "bare string case" {
		t.Fatalf("second case: got %v", second)
	}
}

func TestNormalizeStepFlowAssignsOrder(t *testing.T) {
	got := Normalize(map[string]any{
		"steps": []any{
			map[string]any{"title": "first"},
			map[string]any{"title": "second"},
			map[string]any{"title": "third", "order": float64(7)},
		},
	}, types.TemplateStepFlow, "head")

	steps, ok := got["steps"].([]any)
	if !ok || len(steps) != 3 {
		t.Fatalf("steps: got %v", got["steps"])
	}
	if order := stepOrder(steps[0].(map[string]any)); order != 1 {
		t.Fatalf("step 1 order: got %d", order)
	}
	if order := stepOrder(steps[1].(map[string]any)); order != 2 {
		t.Fatalf("step 2 order: got %d", order)
	}
	if order := stepOrder(steps[2].(map[string]any)); order != 7 {
		t.Fatalf("explicit order must survive: got %d", order)
	}
}

func TestNormalizePreservesUnknownKeys(t *testing.T) {
	got := Normalize(map[string]any{
		"main_message": "msg",
		"speaker_note": "keep me",
	}, types.TemplateMessageOnly, "head")
	if got["speaker_note"] != "keep me" {
		t.Fatalf("unconsumed key dropped: %v", got)
	}
}

func TestNormalizeUnknownTypeDegrades(t *testing.T) {
	got := Normalize(map[string]any{"content": "something"}, types.TemplateType("bogus"), "head")
	if got["content"] != "something" {
		t.Fatalf("unknown type should keep generic content field: got %v", got)
	}
}
