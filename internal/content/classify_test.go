package content

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/types"
)

type stubBackend struct {
	reply string
	err   error
}

func (s *stubBackend) Generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	return s.reply, s.err
}

func (s *stubBackend) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) (map[string]any, error) {
	return nil, s.err
}

func TestClassifyBackendFailureYieldsDefaultPartition(t *testing.T) {
	c := NewClassifier(&stubBackend{err: errors.New("connection refused")}, logger.NewNop())

	got := c.Classify(context.Background(), "slide text", types.TemplateMessageOnly, "head")

	if len(got.UserNeeded) != 1 || len(got.AiGenerated) != 1 {
		t.Fatalf("default partition must have one element per bucket: %+v", got)
	}
	if got.UserNeeded[0].Description != "Data that requires user input" {
		t.Fatalf("user_needed description: got %q", got.UserNeeded[0].Description)
	}
	if got.AiGenerated[0].Description != "Text the model can draft" {
		t.Fatalf("ai_generated description: got %q", got.AiGenerated[0].Description)
	}
}

func TestClassifyMalformedReplyYieldsDefaultPartition(t *testing.T) {
	c := NewClassifier(&stubBackend{reply: "sorry, I can't do JSON today"}, logger.NewNop())

	got := c.Classify(context.Background(), "slide text", types.TemplateCaseBox, "head")

	if len(got.UserNeeded) != 1 || len(got.AiGenerated) != 1 {
		t.Fatalf("default partition expected: %+v", got)
	}
}

func TestClassifyParsesFencedReply(t *testing.T) {
	reply := "```json\n" + `{
		"user_needed": [
			{"element_type": "data", "description": "2024 revenue figures", "classification": "USER_NEEDED", "reason": "internal data"}
		],
		"ai_generated": [
			{"element_type": "text", "description": "executive summary", "classification": "AI_GENERATED", "reason": "derivable"},
			{"element_type": "insight", "description": "trend insight", "classification": "AI_GENERATED", "reason": "derivable"}
		]
	}` + "\n```"
	c := NewClassifier(&stubBackend{reply: reply}, logger.NewNop())

	got := c.Classify(context.Background(), "slide text", types.TemplateChartInsight, "head")

	if len(got.UserNeeded) != 1 || len(got.AiGenerated) != 2 {
		t.Fatalf("parsed partition sizes wrong: %+v", got)
	}
	if got.UserNeeded[0].Description != "2024 revenue figures" {
		t.Fatalf("user_needed description: got %q", got.UserNeeded[0].Description)
	}
}

func TestClassifyCancelledContextYieldsDefaultPartition(t *testing.T) {
	c := NewClassifier(&stubBackend{err: context.Canceled}, logger.NewNop())

	got := c.Classify(context.Background(), "slide text", types.TemplateNodeMap, "head")

	if len(got.UserNeeded) != 1 || len(got.AiGenerated) != 1 {
		t.Fatalf("cancellation must behave like any failure: %+v", got)
	}
}
