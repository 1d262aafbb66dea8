package content

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/template"
	"github.com/yungbote/deckforge-backend/internal/types"
)

// GeneratedComponents is the raw (pre-normalization) output of one
// generation call.
type GeneratedComponents struct {
	Components map[string]any `json:"components"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

type Generator struct {
	log *logger.Logger
	ai  TextBackend
}

func NewGenerator(ai TextBackend, baseLog *logger.Logger) *Generator {
	return &Generator{log: baseLog.With("service", "Generator"), ai: ai}
}

const generateSystemPrompt = `You are a professional consultant and slide writer.
Write each requested slide component from the given context.

You can generate the following elements:
- **title**: slide title (clear and impactful)
- **sub_message**: sub message (complements the title)
- **bullet_points**: bullet point list (3-5 clear points)
- **evidence_block**: supporting evidence block
- **diagram_components**: diagram building blocks (nodes, connections)
- **insight_box**: the key insight
- **action_guide**: how to execute
- **caption**: supplementary caption

Reply strictly as JSON:
{
  "components": {
    "title": "...",
    "sub_message": "...",
    "bullet_points": ["...", "...", "..."]
  },
  "metadata": {
    "tone": "professional",
    "length": "medium"
  }
}`

// Generate fills the requested AI-producible elements. It never fails:
// backend errors and malformed replies resolve to a fixed fallback object.
func (g *Generator) Generate(ctx context.Context, t types.TemplateType, elements []string, promptCtx map[string]string) GeneratedComponents {
	prompt := g.buildPrompt(t, elements, promptCtx)

	// higher temperature than classification: content should vary
	raw, err := g.ai.Generate(ctx, generateSystemPrompt+"\n\n"+prompt, 0.7, 1500)
	if err != nil {
		g.log.Warn("Generation backend call failed, using fallback components", "template_type", t, "error", err)
		return fallbackComponents()
	}

	var parsed GeneratedComponents
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &parsed); err != nil {
		g.log.Warn("Generation response was not valid JSON, using fallback components", "error", err)
		return fallbackComponents()
	}
	if parsed.Components == nil {
		parsed.Components = map[string]any{}
	}
	return parsed
}

func (g *Generator) buildPrompt(t types.TemplateType, elements []string, promptCtx map[string]string) string {
	keys := make([]string, 0, len(promptCtx))
	for k := range promptCtx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Generate content for the following slide.\n\n")
	fmt.Fprintf(&b, "**Slide type**: %s\n", t)
	fmt.Fprintf(&b, "**Elements to generate**: %s\n", strings.Join(elements, ", "))
	b.WriteString("\n**Context**:\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %s\n", k, promptCtx[k])
	}
	b.WriteString("\n" + template.Instruction(t) + "\n")
	b.WriteString("\nWrite each element to fit the context, professionally and clearly.\n")
	b.WriteString("Bullet points should be 3-5 items; keep insights concise and to the point.\n")
	return b.String()
}

func fallbackComponents() GeneratedComponents {
	return GeneratedComponents{
		Components: map[string]any{
			"title":         "Title",
			"sub_message":   "Sub message",
			"bullet_points": []any{"Point 1", "Point 2", "Point 3"},
		},
		Metadata: map[string]any{"status": "fallback"},
	}
}
