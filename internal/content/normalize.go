package content

import (
	"github.com/yungbote/deckforge-backend/internal/template"
	"github.com/yungbote/deckforge-backend/internal/types"
)

// Normalize collapses loosely named generation output onto the canonical
// component set for a template type. Semantically equivalent fields from
// the generator (title vs main_message, action_guide vs call_to_action,
// ...) resolve through a fixed alias chain; canonical fields nobody
// produced default to an empty value or a sentinel placeholder. The
// operation is idempotent: a canonical set passes through unchanged.
//
// Keys that are neither canonical nor consumed as an alias are preserved,
// so user-added fields survive round trips.
func Normalize(raw map[string]any, t types.TemplateType, headMessage string) map[string]any {
	if raw == nil {
		raw = map[string]any{}
	}
	out := map[string]any{}
	consumed := map[string]bool{}

	setStr := func(canonical string, chain []string, fallback string) {
		for _, k := range chain {
			consumed[k] = true
		}
		out[canonical] = firstString(raw, chain, fallback)
	}
	setList := func(canonical string, chain []string) {
		for _, k := range chain {
			consumed[k] = true
		}
		out[canonical] = firstList(raw, chain)
	}

	switch t {
	case types.TemplateMessageOnly:
		setStr("main_message", []string{"main_message", "title"}, headMessage)
		setList("bullet_points", []string{"bullet_points", "supporting_points"})
		setStr("call_to_action", []string{"call_to_action", "action_guide", "sub_message"}, "")

	case types.TemplateAsIsToBe:
		setStr("as_is_title", []string{"as_is_title"}, "")
		setList("as_is_points", []string{"as_is_points", "current_state_points", "bullet_points"})
		setStr("to_be_title", []string{"to_be_title"}, "")
		setList("to_be_points", []string{"to_be_points", "future_state_points"})
		setStr("transition_method", []string{"transition_method", "action_guide"},
			types.Sentinel+": transition method required")

	case types.TemplateCaseBox:
		consumed["cases"] = true
		out["cases"] = normalizeCases(firstList(raw, []string{"cases"}))

	case types.TemplateStepFlow:
		consumed["steps"] = true
		out["steps"] = normalizeSteps(firstList(raw, []string{"steps"}))

	case types.TemplateChartInsight:
		setStr("chart_title", []string{"chart_title"}, headMessage)
		setStr("chart_type", []string{"chart_type"}, "")
		setList("key_insights", []string{"key_insights", "bullet_points"})
		setStr("data_source", []string{"data_source"},
			types.Sentinel+": data source required")

	case types.TemplateNodeMap:
		setStr("central_concept", []string{"central_concept"}, headMessage)
		setList("primary_nodes", []string{"primary_nodes", "bullet_points"})
		setList("connections", []string{"connections"})

	default:
		setStr("content", []string{"content"}, "")
	}

	for k, v := range raw {
		if consumed[k] {
			continue
		}
		if _, ok := out[k]; ok {
			continue
		}
		out[k] = v
	}

	// invariant: every canonical field name for the type is present
	for _, f := range template.CanonicalFields(t) {
		if _, ok := out[f]; !ok {
			out[f] = ""
		}
	}
	return out
}

// firstString walks the alias chain and returns the first non-empty string
// value, or the fallback.
func firstString(m map[string]any, chain []string, fallback string) string {
	for _, k := range chain {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}

// firstList walks the alias chain and returns the first non-empty list
// value, or an empty list.
func firstList(m map[string]any, chain []string) []any {
	for _, k := range chain {
		if l, ok := m[k].([]any); ok && len(l) > 0 {
			return l
		}
	}
	return []any{}
}

func normalizeCases(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			// bare strings become title-only cases
			if s, isStr := item.(string); isStr {
				out = append(out, map[string]any{"title": s, "description": ""})
			}
			continue
		}
		if _, ok := m["title"]; !ok {
			m["title"] = ""
		}
		if _, ok := m["description"]; !ok {
			m["description"] = ""
		}
		out = append(out, m)
	}
	return out
}

func normalizeSteps(items []any) []any {
	out := make([]any, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			if s, isStr := item.(string); isStr {
				m = map[string]any{"title": s}
			} else {
				continue
			}
		}
		if stepOrder(m) <= 0 {
			m["order"] = i + 1
		}
		if _, ok := m["title"]; !ok {
			m["title"] = ""
		}
		if _, ok := m["description"]; !ok {
			m["description"] = ""
		}
		out = append(out, m)
	}
	return out
}

func stepOrder(m map[string]any) int {
	switch v := m["order"].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}
