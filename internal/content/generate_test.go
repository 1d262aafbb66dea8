package content

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/types"
)

func TestGenerateBackendFailureYieldsFallbackVerbatim(t *testing.T) {
	g := NewGenerator(&stubBackend{err: errors.New("boom")}, logger.NewNop())

	got := g.Generate(context.Background(), types.TemplateMessageOnly, []string{"summary"}, map[string]string{"topic": "x"})

	want := map[string]any{
		"title":         "Title",
		"sub_message":   "Sub message",
		"bullet_points": []any{"Point 1", "Point 2", "Point 3"},
	}
	if !reflect.DeepEqual(got.Components, want) {
		t.Fatalf("fallback components:\nwant %v\ngot  %v", want, got.Components)
	}
	if got.Metadata["status"] != "fallback" {
		t.Fatalf("fallback metadata: got %v", got.Metadata)
	}
}

func TestGenerateMalformedReplyYieldsFallback(t *testing.T) {
	g := NewGenerator(&stubBackend{reply: "{not json"}, logger.NewNop())

	got := g.Generate(context.Background(), types.TemplateStepFlow, nil, nil)

	if got.Metadata["status"] != "fallback" {
		t.Fatalf("expected fallback, got %v", got)
	}
}

func TestGenerateParsesComponents(t *testing.T) {
	g := NewGenerator(&stubBackend{reply: `{"components": {"title": "Q3 results", "bullet_points": ["up 12%"]}, "metadata": {"tone": "professional"}}`}, logger.NewNop())

	got := g.Generate(context.Background(), types.TemplateMessageOnly, []string{"title"}, nil)

	if got.Components["title"] != "Q3 results" {
		t.Fatalf("title: got %v", got.Components["title"])
	}
	if got.Metadata["tone"] != "professional" {
		t.Fatalf("metadata: got %v", got.Metadata)
	}
}

func TestGeneratePromptOrdersContextDeterministically(t *testing.T) {
	g := NewGenerator(nil, logger.NewNop())

	prompt := g.buildPrompt(types.TemplateMessageOnly, []string{"title"}, map[string]string{
		"zebra": "z",
		"alpha": "a",
	})

	if strings.Index(prompt, "alpha") > strings.Index(prompt, "zebra") {
		t.Fatalf("context keys must be sorted:\n%s", prompt)
	}
}
