package template

import "github.com/yungbote/deckforge-backend/internal/types"

// FieldSpec describes one editable content field of a template, served to
// the editing UI.
type FieldSpec struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // text, array, array_object
	Required    bool        `json:"required"`
	Description string      `json:"description"`
	SubFields   []FieldSpec `json:"sub_fields,omitempty"`
}

// TemplateInfo is the catalog entry for one variant.
type TemplateInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Preview     string   `json:"preview"`
	BestFor     []string `json:"best_for"`
}

// Component is one suggested building block of a template, used by the
// template suggestion fallback.
type Component struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// Fields returns the editable field structure for a variant.
func Fields(t types.TemplateType) []FieldSpec {
	switch t {
	case types.TemplateMessageOnly:
		return []FieldSpec{
			{Name: "main_message", Type: "text", Required: true, Description: "The core message"},
			{Name: "bullet_points", Type: "array", Required: true, Description: "Supporting points"},
			{Name: "call_to_action", Type: "text", Required: false, Description: "Next action"},
		}
	case types.TemplateAsIsToBe:
		return []FieldSpec{
			{Name: "as_is_title", Type: "text", Required: true, Description: "Current state title"},
			{Name: "as_is_points", Type: "array", Required: true, Description: "Current state points"},
			{Name: "to_be_title", Type: "text", Required: true, Description: "Target state title"},
			{Name: "to_be_points", Type: "array", Required: true, Description: "Target state points"},
			{Name: "transition_method", Type: "text", Required: false, Description: "How to get there"},
		}
	case types.TemplateCaseBox:
		return []FieldSpec{
			{Name: "cases", Type: "array_object", Required: true, Description: "Cases", SubFields: []FieldSpec{
				{Name: "title", Type: "text"},
				{Name: "description", Type: "text"},
				{Name: "pros", Type: "array"},
				{Name: "cons", Type: "array"},
				{Name: "recommendation", Type: "text"},
			}},
		}
	case types.TemplateStepFlow:
		return []FieldSpec{
			{Name: "steps", Type: "array_object", Required: true, Description: "Ordered steps", SubFields: []FieldSpec{
				{Name: "order", Type: "number"},
				{Name: "title", Type: "text"},
				{Name: "description", Type: "text"},
			}},
		}
	case types.TemplateChartInsight:
		return []FieldSpec{
			{Name: "chart_title", Type: "text", Required: true, Description: "Chart title"},
			{Name: "chart_type", Type: "text", Required: false, Description: "bar, line, pie, scatter"},
			{Name: "key_insights", Type: "array", Required: true, Description: "Key insights"},
			{Name: "data_source", Type: "text", Required: true, Description: "Where the data comes from"},
		}
	case types.TemplateNodeMap:
		return []FieldSpec{
			{Name: "central_concept", Type: "text", Required: true, Description: "Central concept"},
			{Name: "primary_nodes", Type: "array", Required: true, Description: "First-degree nodes"},
			{Name: "connections", Type: "array_object", Required: false, Description: "Node relationships"},
		}
	default:
		return []FieldSpec{
			{Name: "content", Type: "text", Required: true, Description: "Slide content"},
		}
	}
}

// DisplayName returns the human-readable name of a variant. Unknown
// variants fall back to their raw string value.
func DisplayName(t types.TemplateType) string {
	if info, ok := Catalog()[t]; ok {
		return info.Name
	}
	return t.String()
}

// Catalog returns the template overview served to clients.
func Catalog() map[types.TemplateType]TemplateInfo {
	return map[types.TemplateType]TemplateInfo{
		types.TemplateMessageOnly: {
			Name:        "Message Only",
			Description: "Emphasizes the core message with supporting points",
			Preview:     "Title + supporting points + action item",
			BestFor:     []string{"conclusion slides", "key message delivery", "summaries"},
		},
		types.TemplateAsIsToBe: {
			Name:        "As-Is / To-Be",
			Description: "Contrasts the current and target states",
			Preview:     "Current state (left) | target state (right) + transition",
			BestFor:     []string{"problem definition", "improvement plans", "change management"},
		},
		types.TemplateCaseBox: {
			Name:        "Case Box",
			Description: "Separates cases or options into boxes",
			Preview:     "Cases laid out in a 2x2 grid",
			BestFor:     []string{"option comparison", "case studies", "presenting choices"},
		},
		types.TemplateStepFlow: {
			Name:        "Step Flow",
			Description: "A sequential process or execution stages",
			Preview:     "Circular steps connected by arrows",
			BestFor:     []string{"process explanation", "execution plans", "workflows"},
		},
		types.TemplateChartInsight: {
			Name:        "Chart & Insight",
			Description: "A data chart alongside its analysis",
			Preview:     "Chart area (left) + insights (right)",
			BestFor:     []string{"data analysis", "performance reports", "trend analysis"},
		},
		types.TemplateNodeMap: {
			Name:        "Node Map",
			Description: "Visualizes relationships between concepts",
			Preview:     "Central node + connected peripheral nodes",
			BestFor:     []string{"relationship diagrams", "org structures", "concept linking"},
		},
	}
}

// DefaultComponents returns the suggested component list for a variant,
// used when the suggestion backend fails or omits components.
func DefaultComponents(t types.TemplateType) []Component {
	switch t {
	case types.TemplateAsIsToBe:
		return []Component{
			{Type: "title", Description: "Slide title", Required: true},
			{Type: "asis_section", Description: "Current state (As-Is)", Required: true},
			{Type: "tobe_section", Description: "Target state (To-Be)", Required: true},
			{Type: "insight_box", Description: "Change insight", Required: false},
		}
	case types.TemplateCaseBox:
		return []Component{
			{Type: "title", Description: "Slide title", Required: true},
			{Type: "case_boxes", Description: "Case boxes (3-6)", Required: true},
			{Type: "insight_box", Description: "Combined insight", Required: false},
		}
	case types.TemplateStepFlow:
		return []Component{
			{Type: "title", Description: "Slide title", Required: true},
			{Type: "steps", Description: "Process steps (3-7)", Required: true},
			{Type: "action_guide", Description: "Execution guide", Required: false},
		}
	case types.TemplateChartInsight:
		return []Component{
			{Type: "title", Description: "Slide title", Required: true},
			{Type: "chart", Description: "Chart/graph", Required: true},
			{Type: "insight_box", Description: "Data insight", Required: true},
			{Type: "evidence_block", Description: "Supporting data", Required: false},
		}
	case types.TemplateNodeMap:
		return []Component{
			{Type: "title", Description: "Slide title", Required: true},
			{Type: "nodes", Description: "Node elements", Required: true},
			{Type: "connections", Description: "Node connections", Required: true},
		}
	default:
		return []Component{
			{Type: "title", Description: "Slide title", Required: true},
			{Type: "main_message", Description: "The core message", Required: true},
		}
	}
}

// SuggestForPurpose maps a slide purpose onto the template variant that
// usually fits it. Unknown purposes fall back to message_only.
func SuggestForPurpose(purpose string) types.TemplateType {
	switch purpose {
	case "problem_statement":
		return types.TemplateMessageOnly
	case "current_state":
		return types.TemplateAsIsToBe
	case "analysis":
		return types.TemplateChartInsight
	case "solution":
		return types.TemplateCaseBox
	case "implementation":
		return types.TemplateStepFlow
	case "conclusion":
		return types.TemplateMessageOnly
	default:
		return types.TemplateMessageOnly
	}
}

// Descriptions returns the one-line template descriptions embedded in the
// suggestion prompt.
func Descriptions() map[types.TemplateType]string {
	out := make(map[types.TemplateType]string, 6)
	for t, info := range Catalog() {
		out[t] = info.Description
	}
	return out
}
