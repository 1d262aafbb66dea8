// Package template is the static catalog of the six slide template
// variants: prompt instructions, generation schemas, canonical field
// lists and deterministic fallback content. It is pure data plus pure
// lookup; an unrecognized template type never errors, it degrades to a
// generic single-field shape equivalent to message_only.
package template

import (
	"fmt"

	"github.com/yungbote/deckforge-backend/internal/types"
)

// Instruction returns the type-specific structural instruction embedded in
// the generation prompt.
func Instruction(t types.TemplateType) string {
	switch t {
	case types.TemplateMessageOnly:
		return `**Message Only template instructions:**
- main_message: the core message (1-2 sentences)
- supporting_points: supporting logic (3-4 points)
- call_to_action: the suggested next action`
	case types.TemplateAsIsToBe:
		return `**As-Is To-Be template instructions:**
- as_is_title: title for the current state
- as_is_points: current problems/characteristics (3-4 points)
- to_be_title: title for the target state
- to_be_points: the improved picture (3-4 points)
- transition_method: suggested transition approach
- Mark anything that needs concrete data with USER_NEEDED`
	case types.TemplateCaseBox:
		return `**Case Box template instructions:**
- cases: an array of cases/options
- each case: title, description, pros_cons, recommendation
- Mark anything that needs real companies/data with USER_NEEDED`
	case types.TemplateStepFlow:
		return `**Step Flow template instructions:**
- steps: an ordered array of stages
- each step: order, title, description, deliverables, timeline
- Mark anything that needs a concrete schedule/resources with USER_NEEDED`
	case types.TemplateChartInsight:
		return `**Chart Insight template instructions:**
- chart_title: chart title
- chart_type: "bar", "line", "pie", "scatter", etc.
- key_insights: key insights (2-3 items)
- data_source: data source (mark with USER_NEEDED)
- chart_data: provide a sample data structure only, real data is USER_NEEDED`
	case types.TemplateNodeMap:
		return `**Node Map template instructions:**
- central_concept: the central concept
- primary_nodes: first-degree connected nodes (4-6)
- secondary_connections: relationships between nodes
- Mark anything that needs a real org chart/data with USER_NEEDED`
	default:
		return "Generate generic slide content as a single content field."
	}
}

// GenerationSchema returns the response schema descriptor for a variant.
// The descriptor follows JSON-schema conventions; the top-level shape is
// {content, notes, user_needed_fields} for all types.
func GenerationSchema(t types.TemplateType) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content":            contentSchema(t),
			"notes":              map[string]any{"type": "string"},
			"user_needed_fields": stringArray(),
		},
		"required": []string{"content"},
	}
}

func stringArray() map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
}

func str() map[string]any { return map[string]any{"type": "string"} }

func contentSchema(t types.TemplateType) map[string]any {
	var props map[string]any
	switch t {
	case types.TemplateMessageOnly:
		props = map[string]any{
			"main_message":      str(),
			"supporting_points": stringArray(),
			"call_to_action":    str(),
		}
	case types.TemplateAsIsToBe:
		props = map[string]any{
			"as_is_title":       str(),
			"as_is_points":      stringArray(),
			"to_be_title":       str(),
			"to_be_points":      stringArray(),
			"transition_method": str(),
		}
	case types.TemplateCaseBox:
		props = map[string]any{
			"cases": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title":          str(),
						"description":    str(),
						"pros":           stringArray(),
						"cons":           stringArray(),
						"recommendation": str(),
					},
				},
			},
		}
	case types.TemplateStepFlow:
		props = map[string]any{
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"order":        map[string]any{"type": "number"},
						"title":        str(),
						"description":  str(),
						"deliverables": stringArray(),
						"timeline":     str(),
					},
				},
			},
		}
	case types.TemplateChartInsight:
		props = map[string]any{
			"chart_title":           str(),
			"chart_type":            str(),
			"key_insights":          stringArray(),
			"data_source":           str(),
			"sample_data_structure": map[string]any{"type": "object"},
		}
	case types.TemplateNodeMap:
		props = map[string]any{
			"central_concept": str(),
			"primary_nodes":   stringArray(),
			"connections": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"from":         str(),
						"to":           str(),
						"relationship": str(),
					},
				},
			},
		}
	default:
		props = map[string]any{"content": str()}
	}
	return map[string]any{"type": "object", "properties": props}
}

// CanonicalFields returns the ordered canonical field names for a variant.
// After normalization every one of these is present in the content map.
func CanonicalFields(t types.TemplateType) []string {
	switch t {
	case types.TemplateMessageOnly:
		return []string{"main_message", "bullet_points", "call_to_action"}
	case types.TemplateAsIsToBe:
		return []string{"as_is_title", "as_is_points", "to_be_title", "to_be_points", "transition_method"}
	case types.TemplateCaseBox:
		return []string{"cases"}
	case types.TemplateStepFlow:
		return []string{"steps"}
	case types.TemplateChartInsight:
		return []string{"chart_title", "chart_type", "key_insights", "data_source"}
	case types.TemplateNodeMap:
		return []string{"central_concept", "primary_nodes", "connections"}
	default:
		return []string{"content"}
	}
}

// Fallback returns deterministic content for a variant when the text
// backend fails. Every fallback carries the sentinel so the slide stays
// visibly incomplete.
func Fallback(t types.TemplateType, headMessage string) map[string]any {
	switch t {
	case types.TemplateMessageOnly:
		return map[string]any{
			"main_message": headMessage,
			"bullet_points": []any{
				types.Sentinel + ": supporting evidence required",
				types.Sentinel + ": case study results required",
				types.Sentinel + ": expert opinion required",
			},
			"call_to_action": "Proceed to the next step",
		}
	case types.TemplateAsIsToBe:
		return map[string]any{
			"as_is_title":       "Current state",
			"as_is_points":      []any{types.Sentinel + ": current state analysis required"},
			"to_be_title":       "Target state",
			"to_be_points":      []any{types.Sentinel + ": target state definition required"},
			"transition_method": types.Sentinel + ": transition plan required",
		}
	case types.TemplateCaseBox:
		return map[string]any{
			"cases": []any{
				map[string]any{
					"title":       "Case 1",
					"description": types.Sentinel + ": real-world case required",
				},
			},
		}
	case types.TemplateStepFlow:
		return map[string]any{
			"steps": []any{
				map[string]any{
					"order":       1,
					"title":       "Step 1",
					"description": types.Sentinel + ": implementation detail required",
				},
			},
		}
	case types.TemplateChartInsight:
		return map[string]any{
			"chart_title":  headMessage,
			"chart_type":   "bar",
			"key_insights": []any{types.Sentinel + ": data-driven insight required"},
			"data_source":  types.Sentinel + ": data source required",
		}
	case types.TemplateNodeMap:
		return map[string]any{
			"central_concept": headMessage,
			"primary_nodes":   []any{types.Sentinel + ": related concept required"},
			"connections":     []any{},
		}
	default:
		return map[string]any{
			"content": fmt.Sprintf("%s: please write content for %q", types.Sentinel, headMessage),
		}
	}
}
