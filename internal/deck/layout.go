package deck

import (
	"fmt"
	"math"

	"github.com/yungbote/deckforge-backend/internal/types"
)

// Renderer turns typed slide content into absolute shape placements on
// the 10in by 7.5in canvas. Every algorithm is deterministic; the same
// content always yields the same placements.
type Renderer struct {
	pal Palette
}

func NewRenderer(pal Palette) *Renderer {
	return &Renderer{pal: pal}
}

// Render lays out one slide body. Types without a registered layout
// degrade to the message_only layout built from the head message.
func (r *Renderer) Render(t types.TemplateType, c Content) []Placement {
	switch t {
	case types.TemplateMessageOnly:
		return r.renderMessageOnly(c)
	case types.TemplateAsIsToBe:
		return r.renderAsisTobe(c)
	case types.TemplateCaseBox:
		return r.renderCaseBox(c)
	case types.TemplateStepFlow:
		return r.renderStepFlow(c)
	case types.TemplateChartInsight:
		return r.renderChartInsight(c)
	case types.TemplateNodeMap:
		return r.renderNodeMap(c)
	default:
		fb := Content{
			MainMessage:  c.HeadMessage,
			BulletPoints: []string{"Please review this slide content"},
		}
		if fb.MainMessage == "" {
			fb.MainMessage = c.MainMessage
		}
		return r.renderMessageOnly(fb)
	}
}

func (r *Renderer) renderMessageOnly(c Content) []Placement {
	main := c.MainMessage
	if main == "" {
		main = c.HeadMessage
	}
	out := []Placement{{
		Kind: ShapeText,
		X:    inches(0.5), Y: inches(0.3), W: inches(9), H: inches(1.25),
		Runs: []TextRun{{Text: main, SizePt: 36, Bold: true, Color: r.pal.Dark, Align: AlignCenter}},
	}}

	if len(c.BulletPoints) > 0 {
		runs := make([]TextRun, 0, len(c.BulletPoints))
		for _, bp := range c.BulletPoints {
			runs = append(runs, TextRun{
				Text:   "• " + bp,
				SizePt: 20,
				Color:  r.pal.Secondary,
				Align:  AlignLeft,
			})
		}
		out = append(out, Placement{
			Kind: ShapeText,
			X:    inches(1), Y: inches(2.5), W: inches(8), H: inches(4),
			Runs: runs,
		})
	}

	if c.CallToAction != "" {
		out = append(out, Placement{
			Kind: ShapeText,
			X:    inches(1), Y: inches(6.5), W: inches(8), H: inches(0.8),
			Runs: []TextRun{{Text: c.CallToAction, SizePt: 18, Bold: true, Color: r.pal.Primary, Align: AlignCenter}},
		})
	}
	return out
}

func (r *Renderer) renderAsisTobe(c Content) []Placement {
	out := []Placement{{
		Kind: ShapeText,
		X:    inches(0.5), Y: inches(0.3), W: inches(9), H: inches(1.1),
		Runs: []TextRun{{Text: "As-Is vs To-Be", SizePt: 32, Bold: true, Color: r.pal.Dark, Align: AlignCenter}},
	}}

	column := func(left float64, title string, points []string, accent Color) Placement {
		runs := []TextRun{{Text: title, SizePt: 20, Bold: true, Color: accent, Align: AlignLeft}}
		for _, p := range points {
			runs = append(runs, TextRun{Text: "• " + p, SizePt: 14, Color: r.pal.Secondary, Align: AlignLeft})
		}
		return Placement{
			Kind: ShapeText,
			X:    inches(left), Y: inches(2), W: inches(4), H: inches(4),
			Runs: runs,
		}
	}
	asIs := c.AsIsTitle
	if asIs == "" {
		asIs = "As-Is"
	}
	toBe := c.ToBeTitle
	if toBe == "" {
		toBe = "To-Be"
	}
	out = append(out,
		column(0.5, asIs, c.AsIsPoints, r.pal.Danger),
		column(5.5, toBe, c.ToBePoints, r.pal.Success),
	)

	if c.TransitionMethod != "" {
		out = append(out, Placement{
			Kind: ShapeText,
			X:    inches(3), Y: inches(6.5), W: inches(4), H: inches(0.8),
			Runs: []TextRun{{Text: "→ " + c.TransitionMethod, SizePt: 16, Bold: true, Color: r.pal.Primary, Align: AlignCenter}},
		})
	}
	return out
}

const maxCaseBoxes = 4

func (r *Renderer) renderCaseBox(c Content) []Placement {
	out := []Placement{{
		Kind: ShapeText,
		X:    inches(0.5), Y: inches(0.3), W: inches(9), H: inches(1.1),
		Runs: []TextRun{{Text: "Cases & Options", SizePt: 32, Bold: true, Color: r.pal.Dark, Align: AlignCenter}},
	}}

	cases := c.Cases
	if len(cases) > maxCaseBoxes {
		cases = cases[:maxCaseBoxes]
	}
	if len(cases) == 0 {
		return out
	}

	cols := len(cases)
	if cols > 2 {
		cols = 2
	}
	const (
		boxW   = 4.0
		boxH   = 2.5
		startL = 0.5
		startT = 2.0
		gutX   = 0.5
		gutY   = 0.3
	)
	for i, cs := range cases {
		col := i % cols
		row := i / cols
		left := startL + float64(col)*(boxW+gutX)
		top := startT + float64(row)*(boxH+gutY)

		title := cs.Title
		if title == "" {
			title = fmt.Sprintf("Case %d", i+1)
		}
		runs := []TextRun{{Text: title, SizePt: 16, Bold: true, Color: r.pal.Dark, Align: AlignLeft}}
		if cs.Description != "" {
			runs = append(runs, TextRun{Text: cs.Description, SizePt: 12, Color: r.pal.Secondary, Align: AlignLeft})
		}
		out = append(out, Placement{
			Kind: ShapeBox,
			X:    inches(left), Y: inches(top), W: inches(boxW), H: inches(boxH),
			Fill:        colorRef(r.pal.Light),
			Line:        colorRef(r.pal.Primary),
			LineWidthPt: 2,
			Runs:        runs,
		})
	}
	return out
}

func (r *Renderer) renderStepFlow(c Content) []Placement {
	out := []Placement{{
		Kind: ShapeText,
		X:    inches(0.5), Y: inches(0.3), W: inches(9), H: inches(1.1),
		Runs: []TextRun{{Text: "Implementation Steps", SizePt: 32, Bold: true, Color: r.pal.Dark, Align: AlignCenter}},
	}}
	if len(c.Steps) == 0 {
		return out
	}

	const (
		stepW  = 1.5
		stepH  = 1.2
		arrowW = 0.8
		top    = 3.0
	)
	n := len(c.Steps)
	total := float64(n)*stepW + float64(n-1)*arrowW
	startL := (10.0 - total) / 2

	for i, st := range c.Steps {
		left := startL + float64(i)*(stepW+arrowW)

		out = append(out, Placement{
			Kind: ShapeOval,
			X:    inches(left), Y: inches(top), W: inches(stepW), H: inches(stepH),
			Fill:      colorRef(r.pal.Primary),
			Line:      colorRef(r.pal.Dark),
			VAlignMid: true,
			Runs: []TextRun{{
				Text:   fmt.Sprintf("%d", st.Order),
				SizePt: 24,
				Bold:   true,
				Color:  r.pal.White,
				Align:  AlignCenter,
			}},
		})

		caption := st.Title
		if caption == "" {
			caption = fmt.Sprintf("Step %d", st.Order)
		}
		out = append(out, Placement{
			Kind: ShapeText,
			X:    inches(left - 0.5), Y: inches(top + stepH + 0.2), W: inches(2.5), H: inches(0.8),
			Runs: []TextRun{{Text: caption, SizePt: 12, Color: r.pal.Dark, Align: AlignCenter}},
		})

		if i < n-1 {
			out = append(out, Placement{
				Kind: ShapeArrow,
				X:    inches(left + stepW), Y: inches(top + stepH/2), W: inches(arrowW), H: inches(0.4),
				Fill: colorRef(r.pal.Secondary),
			})
		}
	}
	return out
}

func (r *Renderer) renderChartInsight(c Content) []Placement {
	title := c.ChartTitle
	if title == "" {
		title = "Data Insights"
	}
	out := []Placement{{
		Kind: ShapeText,
		X:    inches(0.5), Y: inches(0.3), W: inches(9), H: inches(1.1),
		Runs: []TextRun{{Text: title, SizePt: 32, Bold: true, Color: r.pal.Dark, Align: AlignCenter}},
	}}

	chartType := c.ChartType
	if chartType == "" {
		chartType = "bar"
	}
	chartRuns := []TextRun{{
		Text:   fmt.Sprintf("[%s chart area]", chartType),
		SizePt: 14,
		Color:  r.pal.Dark,
		Align:  AlignCenter,
	}}
	if c.DataSource != "" {
		chartRuns = append(chartRuns, TextRun{
			Text:   "Data source: " + c.DataSource,
			SizePt: 12,
			Color:  r.pal.Secondary,
			Align:  AlignCenter,
		})
	}
	out = append(out, Placement{
		Kind: ShapeBox,
		X:    inches(0.5), Y: inches(2), W: inches(5), H: inches(4),
		Fill:        colorRef(r.pal.Light),
		Line:        colorRef(r.pal.Secondary),
		LineWidthPt: 1,
		VAlignMid:   true,
		Runs:        chartRuns,
	})

	insightRuns := []TextRun{{Text: "Key Insights", SizePt: 18, Bold: true, Color: r.pal.Primary, Align: AlignLeft}}
	for _, ins := range c.KeyInsights {
		insightRuns = append(insightRuns, TextRun{Text: "• " + ins, SizePt: 14, Color: r.pal.Dark, Align: AlignLeft})
	}
	out = append(out, Placement{
		Kind: ShapeText,
		X:    inches(6), Y: inches(2), W: inches(3.5), H: inches(4),
		Runs: insightRuns,
	})
	return out
}

const maxPeripheralNodes = 6

func (r *Renderer) renderNodeMap(c Content) []Placement {
	central := c.CentralConcept
	if central == "" {
		central = "Concept Map"
	}
	out := []Placement{{
		Kind: ShapeText,
		X:    inches(0.5), Y: inches(0.3), W: inches(9), H: inches(1.1),
		Runs: []TextRun{{Text: central, SizePt: 32, Bold: true, Color: r.pal.Dark, Align: AlignCenter}},
	}}

	const (
		centerL = 4.0
		centerT = 3.5
		centerW = 2.0
		centerH = 1.0
		nodeW   = 1.5
		nodeH   = 0.8
		radius  = 2.0
	)
	out = append(out, Placement{
		Kind: ShapeOval,
		X:    inches(centerL), Y: inches(centerT), W: inches(centerW), H: inches(centerH),
		Fill:      colorRef(r.pal.Primary),
		Line:      colorRef(r.pal.Dark),
		VAlignMid: true,
		Runs:      []TextRun{{Text: central, SizePt: 14, Bold: true, Color: r.pal.White, Align: AlignCenter}},
	})

	nodes := c.PrimaryNodes
	if len(nodes) > maxPeripheralNodes {
		nodes = nodes[:maxPeripheralNodes]
	}
	cx := centerL + centerW/2
	cy := centerT + centerH/2
	for i, label := range nodes {
		theta := float64(i) * 60 * math.Pi / 180
		x := cx + radius*math.Cos(theta) - nodeW/2
		y := cy + radius*math.Sin(theta) - nodeH/2
		out = append(out, Placement{
			Kind: ShapeBox,
			X:    inches(x), Y: inches(y), W: inches(nodeW), H: inches(nodeH),
			Fill:      colorRef(r.pal.Success),
			Line:      colorRef(r.pal.Dark),
			VAlignMid: true,
			Runs:      []TextRun{{Text: label, SizePt: 10, Bold: true, Color: r.pal.White, Align: AlignCenter}},
		})
	}
	return out
}
