package deck

import (
	"sort"

	"github.com/yungbote/deckforge-backend/internal/types"
)

type SlideLayoutKind string

const (
	LayoutTitle SlideLayoutKind = "title"
	LayoutBlank SlideLayoutKind = "blank"
)

// SlideInput is the assembler's read view of one stored slide.
type SlideInput struct {
	Order        int
	HeadMessage  string
	TemplateType types.TemplateType
	Content      map[string]any
}

// ProjectInput carries the project fields the title and closing slides
// render.
type ProjectInput struct {
	Title          string
	Topic          string
	TargetAudience string
	Goal           string
}

// RenderedSlide is one fully laid-out slide inside a Document.
type RenderedSlide struct {
	Layout     SlideLayoutKind
	Placements []Placement
}

// Document is an ordered, fully rendered deck ready for a
// DocumentWriter.
type Document struct {
	Slides []RenderedSlide
}

// Assembler builds complete documents from project and slide data.
type Assembler struct {
	renderer *Renderer
	pal      Palette
}

func NewAssembler(pal Palette) *Assembler {
	return &Assembler{renderer: NewRenderer(pal), pal: pal}
}

// Assemble produces the full deck: a title slide, one body slide per
// input slide with non-empty content sorted ascending by order, and a
// closing slide. Empty slides are skipped unless includeEmpty is set,
// in which case they render through the message_only fallback.
func (a *Assembler) Assemble(p ProjectInput, slides []SlideInput, includeEmpty bool) Document {
	doc := Document{}
	doc.Slides = append(doc.Slides, a.titleSlide(p))

	ordered := make([]SlideInput, len(slides))
	copy(ordered, slides)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	for _, s := range ordered {
		if len(s.Content) == 0 {
			if !includeEmpty {
				continue
			}
			fb := Content{
				MainMessage:  s.HeadMessage,
				BulletPoints: []string{"Please review this slide content"},
			}
			doc.Slides = append(doc.Slides, RenderedSlide{
				Layout:     LayoutBlank,
				Placements: a.renderer.renderMessageOnly(fb),
			})
			continue
		}
		c := ContentFromMap(s.TemplateType, s.HeadMessage, s.Content)
		doc.Slides = append(doc.Slides, RenderedSlide{
			Layout:     LayoutBlank,
			Placements: a.renderer.Render(s.TemplateType, c),
		})
	}

	doc.Slides = append(doc.Slides, a.closingSlide(p))
	return doc
}

func (a *Assembler) titleSlide(p ProjectInput) RenderedSlide {
	title := p.Title
	if title == "" {
		title = "Untitled Project"
	}
	placements := []Placement{{
		Kind: ShapeText,
		X:    inches(0.5), Y: inches(2.2), W: inches(9), H: inches(1.5),
		Runs: []TextRun{{Text: title, SizePt: 44, Bold: true, Color: a.pal.Dark, Align: AlignCenter}},
	}}

	var lines []TextRun
	for _, pair := range []struct{ label, value string }{
		{"Topic", p.Topic},
		{"Audience", p.TargetAudience},
		{"Goal", p.Goal},
	} {
		if pair.value == "" {
			continue
		}
		lines = append(lines, TextRun{
			Text:   pair.label + ": " + pair.value,
			SizePt: 18,
			Color:  a.pal.Secondary,
			Align:  AlignCenter,
		})
	}
	if len(lines) > 0 {
		placements = append(placements, Placement{
			Kind: ShapeText,
			X:    inches(0.5), Y: inches(3.9), W: inches(9), H: inches(1.5),
			Runs: lines,
		})
	}
	return RenderedSlide{Layout: LayoutTitle, Placements: placements}
}

func (a *Assembler) closingSlide(p ProjectInput) RenderedSlide {
	return RenderedSlide{
		Layout: LayoutBlank,
		Placements: []Placement{
			{
				Kind: ShapeText,
				X:    inches(2), Y: inches(3), W: inches(6), H: inches(2),
				VAlignMid: true,
				Runs:      []TextRun{{Text: "Thank you", SizePt: 48, Bold: true, Color: a.pal.Dark, Align: AlignCenter}},
			},
			{
				Kind: ShapeText,
				X:    inches(2), Y: inches(5.5), W: inches(6), H: inches(1),
				Runs: []TextRun{{
					Text:   "Generated by DeckForge • " + p.Title,
					SizePt: 14,
					Color:  a.pal.Secondary,
					Align:  AlignCenter,
				}},
			},
		},
	}
}
