package deck

import (
	"strings"
	"testing"
	"time"

	"github.com/yungbote/deckforge-backend/internal/types"
)

func textOf(slide RenderedSlide) string {
	var b strings.Builder
	for _, p := range slide.Placements {
		for _, r := range p.Runs {
			b.WriteString(r.Text)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func TestAssembleOrdersAndSkipsEmptySlides(t *testing.T) {
	a := NewAssembler(DefaultPalette())
	project := ProjectInput{Title: "Quarterly Review", Topic: "Q3", Goal: "Alignment"}
	slides := []SlideInput{
		{Order: 3, HeadMessage: "third", TemplateType: types.TemplateMessageOnly, Content: nil},
		{Order: 1, HeadMessage: "first", TemplateType: types.TemplateMessageOnly, Content: map[string]any{"main_message": "first body"}},
		{Order: 2, HeadMessage: "second", TemplateType: types.TemplateMessageOnly, Content: map[string]any{"main_message": "second body"}},
	}

	doc := a.Assemble(project, slides, false)

	// title + 2 content + closing
	if len(doc.Slides) != 4 {
		t.Fatalf("want 4 slides, got %d", len(doc.Slides))
	}
	if doc.Slides[0].Layout != LayoutTitle {
		t.Fatalf("first slide must be the title slide")
	}
	if !strings.Contains(textOf(doc.Slides[1]), "first body") {
		t.Fatalf("content slide order wrong: %q", textOf(doc.Slides[1]))
	}
	if !strings.Contains(textOf(doc.Slides[2]), "second body") {
		t.Fatalf("content slide order wrong: %q", textOf(doc.Slides[2]))
	}
	closing := textOf(doc.Slides[3])
	if !strings.Contains(closing, "Thank you") || !strings.Contains(closing, "Quarterly Review") {
		t.Fatalf("closing slide: %q", closing)
	}
}

func TestAssembleIncludeEmptyUsesFallback(t *testing.T) {
	a := NewAssembler(DefaultPalette())
	slides := []SlideInput{
		{Order: 1, HeadMessage: "empty but wanted", TemplateType: types.TemplateStepFlow, Content: nil},
	}

	doc := a.Assemble(ProjectInput{Title: "T"}, slides, true)

	if len(doc.Slides) != 3 {
		t.Fatalf("want title + fallback + closing, got %d", len(doc.Slides))
	}
	body := textOf(doc.Slides[1])
	if !strings.Contains(body, "empty but wanted") {
		t.Fatalf("fallback must use the head message: %q", body)
	}
}

func TestAssembleTitleSlideLinesArePresentFieldsOnly(t *testing.T) {
	a := NewAssembler(DefaultPalette())

	doc := a.Assemble(ProjectInput{Title: "T", Topic: "topic only"}, nil, false)

	title := textOf(doc.Slides[0])
	if !strings.Contains(title, "Topic: topic only") {
		t.Fatalf("topic line missing: %q", title)
	}
	if strings.Contains(title, "Audience:") || strings.Contains(title, "Goal:") {
		t.Fatalf("absent fields must not render: %q", title)
	}
}

func TestArtifactName(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	if got := ArtifactName("My Deck", now); got != "My Deck_20250314_092653.pptx" {
		t.Fatalf("got %q", got)
	}
	if got := ArtifactName("  ", now); got != "presentation_20250314_092653.pptx" {
		t.Fatalf("empty title: got %q", got)
	}
}
