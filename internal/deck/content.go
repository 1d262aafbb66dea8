package deck

import (
	"fmt"

	"github.com/yungbote/deckforge-backend/internal/types"
)

// Case is one option inside a case_box layout.
type Case struct {
	Title       string
	Description string
}

// Step is one ordered stage inside a step_flow layout.
type Step struct {
	Order       int
	Title       string
	Description string
}

// Content is the typed view of a slide's content map that the layout
// renderer consumes. Only the fields relevant to the slide's template
// type are populated.
type Content struct {
	HeadMessage string

	MainMessage  string
	BulletPoints []string
	CallToAction string

	AsIsTitle        string
	AsIsPoints       []string
	ToBeTitle        string
	ToBePoints       []string
	TransitionMethod string

	Cases []Case

	Steps []Step

	ChartTitle  string
	ChartType   string
	KeyInsights []string
	DataSource  string

	CentralConcept string
	PrimaryNodes   []string
}

// ContentFromMap projects a content map onto the fields the given
// template type renders. Unknown or missing values come back zero.
func ContentFromMap(t types.TemplateType, headMessage string, m map[string]any) Content {
	c := Content{HeadMessage: headMessage}
	if m == nil {
		return c
	}
	switch t {
	case types.TemplateAsIsToBe:
		c.AsIsTitle = asString(m["as_is_title"])
		c.AsIsPoints = asStrings(m["as_is_points"])
		c.ToBeTitle = asString(m["to_be_title"])
		c.ToBePoints = asStrings(m["to_be_points"])
		c.TransitionMethod = asString(m["transition_method"])
	case types.TemplateCaseBox:
		c.Cases = asCases(m["cases"])
	case types.TemplateStepFlow:
		c.Steps = asSteps(m["steps"])
	case types.TemplateChartInsight:
		c.ChartTitle = asString(m["chart_title"])
		c.ChartType = asString(m["chart_type"])
		c.KeyInsights = asStrings(m["key_insights"])
		c.DataSource = asString(m["data_source"])
	case types.TemplateNodeMap:
		c.CentralConcept = asString(m["central_concept"])
		c.PrimaryNodes = asStrings(m["primary_nodes"])
	default:
		c.MainMessage = asString(m["main_message"])
		c.BulletPoints = asStrings(m["bullet_points"])
		c.CallToAction = asString(m["call_to_action"])
	}
	return c
}

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", s)
	}
}

func asStrings(v any) []string {
	list, ok := v.([]any)
	if !ok {
		if ss, ok := v.([]string); ok {
			return ss
		}
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s := asString(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func asCases(v any) []Case {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]Case, 0, len(list))
	for _, item := range list {
		switch cv := item.(type) {
		case map[string]any:
			out = append(out, Case{
				Title:       asString(cv["title"]),
				Description: asString(cv["description"]),
			})
		case string:
			out = append(out, Case{Title: cv})
		}
	}
	return out
}

func asSteps(v any) []Step {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]Step, 0, len(list))
	for i, item := range list {
		sv, ok := item.(map[string]any)
		if !ok {
			continue
		}
		step := Step{
			Order:       i + 1,
			Title:       asString(sv["title"]),
			Description: asString(sv["description"]),
		}
		switch ov := sv["order"].(type) {
		case int:
			step.Order = ov
		case float64:
			step.Order = int(ov)
		}
		out = append(out, step)
	}
	return out
}
