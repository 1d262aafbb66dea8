package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yungbote/deckforge-backend/internal/content"
	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/template"
	"github.com/yungbote/deckforge-backend/internal/types"
)

// TemplateSuggestion is the recommended layout for one slide message.
type TemplateSuggestion struct {
	TemplateType types.TemplateType   `json:"template_type"`
	Reason       string               `json:"reason"`
	Components   []template.Component `json:"components"`
}

type TemplateService interface {
	Suggest(ctx context.Context, headMessage, purpose string) *TemplateSuggestion
	Catalog() map[types.TemplateType]template.TemplateInfo
	Fields(t types.TemplateType) []template.FieldSpec
}

type templateService struct {
	log *logger.Logger
	ai  TextClient
}

func NewTemplateService(log *logger.Logger, ai TextClient) TemplateService {
	return &templateService{log: log.With("service", "TemplateService"), ai: ai}
}

const suggestSystemPrompt = `You are a presentation design expert.
Pick the best slide template for the given message and purpose.

Available templates:
%s

Reply strictly as JSON:
{
  "template_type": "...",
  "reason": "...",
  "components": [
    {"type": "...", "description": "...", "required": true}
  ]
}`

// Suggest asks the backend for a template recommendation. It never
// fails: backend errors and malformed replies resolve to the
// purpose-keyed defaults.
func (ts *templateService) Suggest(ctx context.Context, headMessage, purpose string) *TemplateSuggestion {
	var descriptions strings.Builder
	for t, desc := range template.Descriptions() {
		fmt.Fprintf(&descriptions, "- %s: %s\n", t, desc)
	}
	prompt := fmt.Sprintf(suggestSystemPrompt, descriptions.String()) +
		fmt.Sprintf("\n\nMessage: %s\nPurpose: %s", headMessage, purpose)

	raw, err := ts.ai.Generate(ctx, prompt, 0.3, 800)
	if err != nil {
		ts.log.Warn("Template suggestion backend failed, using defaults", "error", err)
		return ts.defaultSuggestion(purpose)
	}

	var parsed struct {
		TemplateType string               `json:"template_type"`
		Reason       string               `json:"reason"`
		Components   []template.Component `json:"components"`
	}
	if err := json.Unmarshal([]byte(content.StripCodeFence(raw)), &parsed); err != nil {
		ts.log.Warn("Template suggestion reply was malformed, using defaults", "error", err)
		return ts.defaultSuggestion(purpose)
	}

	t := types.TemplateType(parsed.TemplateType)
	if !t.Known() {
		return ts.defaultSuggestion(purpose)
	}
	suggestion := &TemplateSuggestion{
		TemplateType: t,
		Reason:       parsed.Reason,
		Components:   parsed.Components,
	}
	if len(suggestion.Components) == 0 {
		suggestion.Components = template.DefaultComponents(t)
	}
	return suggestion
}

func (ts *templateService) defaultSuggestion(purpose string) *TemplateSuggestion {
	t := template.SuggestForPurpose(purpose)
	return &TemplateSuggestion{
		TemplateType: t,
		Reason:       "Default recommendation for purpose: " + purpose,
		Components:   template.DefaultComponents(t),
	}
}

func (ts *templateService) Catalog() map[types.TemplateType]template.TemplateInfo {
	return template.Catalog()
}

func (ts *templateService) Fields(t types.TemplateType) []template.FieldSpec {
	return template.Fields(t)
}
