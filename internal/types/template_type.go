package types

// TemplateType is the closed set of slide content shapes the pipeline
// understands. Every switch over it carries a default arm that degrades to
// the message_only behavior, so an unrecognized value never errors.
type TemplateType string

const (
	TemplateMessageOnly  TemplateType = "message_only"
	TemplateAsIsToBe     TemplateType = "asis_tobe"
	TemplateCaseBox      TemplateType = "case_box"
	TemplateStepFlow     TemplateType = "step_flow"
	TemplateChartInsight TemplateType = "chart_insight"
	TemplateNodeMap      TemplateType = "node_map"
)

// AllTemplateTypes lists the known variants in catalog order.
func AllTemplateTypes() []TemplateType {
	return []TemplateType{
		TemplateMessageOnly,
		TemplateAsIsToBe,
		TemplateCaseBox,
		TemplateStepFlow,
		TemplateChartInsight,
		TemplateNodeMap,
	}
}

func (t TemplateType) Known() bool {
	switch t {
	case TemplateMessageOnly, TemplateAsIsToBe, TemplateCaseBox,
		TemplateStepFlow, TemplateChartInsight, TemplateNodeMap:
		return true
	}
	return false
}

func (t TemplateType) String() string { return string(t) }
