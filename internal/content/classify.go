package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/types"
)

const (
	ClassificationUserNeeded  = "USER_NEEDED"
	ClassificationAiGenerated = "AI_GENERATED"
)

// ContentElement is one classified element of a slide. Never mutated after
// creation.
type ContentElement struct {
	ElementType    string `json:"element_type"`
	Description    string `json:"description"`
	Classification string `json:"classification"`
	Reason         string `json:"reason"`
}

// Classification partitions a slide's content elements.
type Classification struct {
	UserNeeded  []ContentElement `json:"user_needed"`
	AiGenerated []ContentElement `json:"ai_generated"`
}

type Classifier struct {
	log *logger.Logger
	ai  TextBackend
}

func NewClassifier(ai TextBackend, baseLog *logger.Logger) *Classifier {
	return &Classifier{log: baseLog.With("service", "Classifier"), ai: ai}
}

const classifySystemPrompt = `You are an expert slide content analyst.
Analyze each element of the slide and classify it into one of two buckets:

1. **USER_NEEDED**: elements the user must supply themselves
   - data that requires research
   - real figures/statistics
   - externally sourced information
   - concrete cases or references
   - information specific to the user's organization

2. **AI_GENERATED**: elements the model can write on its own
   - logical connective phrasing
   - derived insights
   - general explanatory text
   - structural summaries
   - action guides

Reply strictly as JSON:
{
  "user_needed": [
    {"element_type": "...", "description": "...", "classification": "USER_NEEDED", "reason": "..."}
  ],
  "ai_generated": [
    {"element_type": "...", "description": "...", "classification": "AI_GENERATED", "reason": "..."}
  ]
}`

// Classify partitions the described slide content. It never fails: backend
// errors and malformed replies resolve to a fixed one-item-per-bucket
// partition.
func (c *Classifier) Classify(ctx context.Context, slideText string, t types.TemplateType, headMessage string) Classification {
	prompt := c.buildPrompt(slideText, t, headMessage)

	// low temperature: classification should be as deterministic as the
	// backend allows
	raw, err := c.ai.Generate(ctx, classifySystemPrompt+"\n\n"+prompt, 0.2, 1000)
	if err != nil {
		c.log.Warn("Classification backend call failed, using default partition", "template_type", t, "error", err)
		return defaultClassification()
	}

	var parsed Classification
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &parsed); err != nil {
		c.log.Warn("Classification response was not valid JSON, using default partition", "error", err)
		return defaultClassification()
	}
	if parsed.UserNeeded == nil && parsed.AiGenerated == nil {
		return defaultClassification()
	}
	if parsed.UserNeeded == nil {
		parsed.UserNeeded = []ContentElement{}
	}
	if parsed.AiGenerated == nil {
		parsed.AiGenerated = []ContentElement{}
	}
	return parsed
}

func (c *Classifier) buildPrompt(slideText string, t types.TemplateType, headMessage string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Classify the content elements of the following slide into USER_NEEDED and AI_GENERATED.\n\n")
	fmt.Fprintf(&b, "**Slide type**: %s\n", t)
	fmt.Fprintf(&b, "**Slide text/outline**:\n%s\n", slideText)
	if headMessage != "" {
		fmt.Fprintf(&b, "\n**Head message**: %s\n", headMessage)
	}
	b.WriteString("\nDecide per element whether it needs user input (USER_NEEDED) or the model can produce it (AI_GENERATED).\n")
	b.WriteString("Data, figures and real cases are USER_NEEDED; logical explanation and insight are AI_GENERATED.\n")
	return b.String()
}

func defaultClassification() Classification {
	return Classification{
		UserNeeded: []ContentElement{{
			ElementType:    "data",
			Description:    "Data that requires user input",
			Classification: ClassificationUserNeeded,
			Reason:         "External research required",
		}},
		AiGenerated: []ContentElement{{
			ElementType:    "text",
			Description:    "Text the model can draft",
			Classification: ClassificationAiGenerated,
			Reason:         "Logical explanation possible",
		}},
	}
}
