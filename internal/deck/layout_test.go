package deck

import (
	"fmt"
	"testing"

	"github.com/yungbote/deckforge-backend/internal/types"
)

func testRenderer() *Renderer {
	return NewRenderer(DefaultPalette())
}

func placementsOfKind(ps []Placement, kind ShapeKind) []Placement {
	var out []Placement
	for _, p := range ps {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

func TestCaseBoxTruncatesToFourInTwoByTwoGrid(t *testing.T) {
	cases := make([]Case, 5)
	for i := range cases {
		cases[i] = Case{Title: fmt.Sprintf("Case %d", i+1), Description: "d"}
	}

	got := testRenderer().Render(types.TemplateCaseBox, Content{Cases: cases})

	boxes := placementsOfKind(got, ShapeBox)
	if len(boxes) != 4 {
		t.Fatalf("want 4 boxes, got %d", len(boxes))
	}
	// 2x2 grid: origins strictly increase left-to-right, top-to-bottom.
	if !(boxes[0].X < boxes[1].X) || boxes[0].Y != boxes[1].Y {
		t.Fatalf("row 1 misplaced: %+v %+v", boxes[0], boxes[1])
	}
	if !(boxes[2].X < boxes[3].X) || boxes[2].Y != boxes[3].Y {
		t.Fatalf("row 2 misplaced: %+v %+v", boxes[2], boxes[3])
	}
	if !(boxes[0].Y < boxes[2].Y) {
		t.Fatalf("rows must advance downward: %d vs %d", boxes[0].Y, boxes[2].Y)
	}
	if boxes[0].X != boxes[2].X || boxes[1].X != boxes[3].X {
		t.Fatalf("columns must align: %+v", boxes)
	}
}

func TestCaseBoxSingleCaseSingleColumn(t *testing.T) {
	got := testRenderer().Render(types.TemplateCaseBox, Content{Cases: []Case{{Title: "only"}}})
	if boxes := placementsOfKind(got, ShapeBox); len(boxes) != 1 {
		t.Fatalf("want 1 box, got %d", len(boxes))
	}
}

func TestStepFlowArrowCountAndSpacing(t *testing.T) {
	steps := make([]Step, 4)
	for i := range steps {
		steps[i] = Step{Order: i + 1, Title: fmt.Sprintf("Step %d", i+1)}
	}

	got := testRenderer().Render(types.TemplateStepFlow, Content{Steps: steps})

	arrows := placementsOfKind(got, ShapeArrow)
	if len(arrows) != 3 {
		t.Fatalf("want 3 arrows for 4 steps, got %d", len(arrows))
	}

	circles := placementsOfKind(got, ShapeOval)
	if len(circles) != 4 {
		t.Fatalf("want 4 circles, got %d", len(circles))
	}
	wantSpacing := inches(1.5) + inches(0.8)
	for i := 1; i < len(circles); i++ {
		prevCenter := circles[i-1].X + circles[i-1].W/2
		center := circles[i].X + circles[i].W/2
		if center <= prevCenter {
			t.Fatalf("step centers must strictly increase")
		}
		if center-prevCenter != wantSpacing {
			t.Fatalf("spacing: want %d got %d", wantSpacing, center-prevCenter)
		}
	}

	// The whole flow is centered on the canvas.
	total := circles[3].X + circles[3].W - circles[0].X
	leftMargin := circles[0].X
	rightMargin := int64(CanvasWidth) - (circles[3].X + circles[3].W)
	if leftMargin != rightMargin {
		t.Fatalf("flow not centered: total=%d left=%d right=%d", total, leftMargin, rightMargin)
	}
}

func TestNodeMapTruncatesToSixNodesWithoutOverlap(t *testing.T) {
	nodes := make([]string, 8)
	for i := range nodes {
		nodes[i] = fmt.Sprintf("Node %d", i+1)
	}

	got := testRenderer().Render(types.TemplateNodeMap, Content{
		CentralConcept: "Core",
		PrimaryNodes:   nodes,
	})

	ovals := placementsOfKind(got, ShapeOval)
	if len(ovals) != 1 {
		t.Fatalf("want 1 central oval, got %d", len(ovals))
	}
	central := ovals[0]

	boxes := placementsOfKind(got, ShapeBox)
	if len(boxes) != 6 {
		t.Fatalf("want 6 peripheral nodes, got %d", len(boxes))
	}
	for i, b := range boxes {
		overlapX := b.X < central.X+central.W && central.X < b.X+b.W
		overlapY := b.Y < central.Y+central.H && central.Y < b.Y+b.H
		if overlapX && overlapY {
			t.Fatalf("peripheral node %d overlaps the central node: %+v vs %+v", i, b, central)
		}
	}

	// Nodes at 0° and 180° sit level with the center; 0° to the right,
	// 180° to the left.
	cx := central.X + central.W/2
	if boxes[0].X+boxes[0].W/2 <= cx {
		t.Fatalf("node at 0 degrees must sit right of center")
	}
	if boxes[3].X+boxes[3].W/2 >= cx {
		t.Fatalf("node at 180 degrees must sit left of center")
	}
}

func TestMessageOnlyLayout(t *testing.T) {
	got := testRenderer().Render(types.TemplateMessageOnly, Content{
		MainMessage:  "Main",
		BulletPoints: []string{"a", "b", "c"},
		CallToAction: "Go",
	})

	texts := placementsOfKind(got, ShapeText)
	if len(texts) != 3 {
		t.Fatalf("want title, bullet stack and CTA, got %d placements", len(texts))
	}
	if len(texts[1].Runs) != 3 {
		t.Fatalf("want one run per bullet, got %d", len(texts[1].Runs))
	}
	if !texts[2].Runs[0].Bold {
		t.Fatal("call to action must be bold")
	}
}

func TestAsIsToBeColumnsShareGeometry(t *testing.T) {
	pal := DefaultPalette()
	got := NewRenderer(pal).Render(types.TemplateAsIsToBe, Content{
		AsIsTitle:        "Now",
		AsIsPoints:       []string{"slow"},
		ToBeTitle:        "Future",
		ToBePoints:       []string{"fast"},
		TransitionMethod: "automation",
	})

	texts := placementsOfKind(got, ShapeText)
	if len(texts) != 4 {
		t.Fatalf("want title, two columns and transition, got %d", len(texts))
	}
	left, right := texts[1], texts[2]
	if left.Y != right.Y || left.W != right.W || left.H != right.H {
		t.Fatalf("columns must be symmetric: %+v vs %+v", left, right)
	}
	if left.Runs[0].Color != pal.Danger {
		t.Fatalf("left column accent: got %+v", left.Runs[0].Color)
	}
	if right.Runs[0].Color != pal.Success {
		t.Fatalf("right column accent: got %+v", right.Runs[0].Color)
	}
}

func TestChartInsightHasPlaceholderAndInsightColumn(t *testing.T) {
	got := testRenderer().Render(types.TemplateChartInsight, Content{
		ChartTitle:  "Revenue",
		ChartType:   "line",
		KeyInsights: []string{"up", "to the right"},
		DataSource:  "Internal BI",
	})

	boxes := placementsOfKind(got, ShapeBox)
	if len(boxes) != 1 {
		t.Fatalf("want 1 chart placeholder, got %d", len(boxes))
	}
	texts := placementsOfKind(got, ShapeText)
	insights := texts[len(texts)-1]
	// header line plus one line per insight
	if len(insights.Runs) != 3 {
		t.Fatalf("insight column runs: got %d", len(insights.Runs))
	}
}

func TestUnknownTypeFallsBackToMessageOnly(t *testing.T) {
	got := testRenderer().Render(types.TemplateType("unregistered"), Content{
		HeadMessage: "The head message",
	})

	texts := placementsOfKind(got, ShapeText)
	if len(texts) != 2 {
		t.Fatalf("want title and generic bullet, got %d", len(texts))
	}
	if texts[0].Runs[0].Text != "The head message" {
		t.Fatalf("title must come from head message: got %q", texts[0].Runs[0].Text)
	}
	if len(texts[1].Runs) != 1 {
		t.Fatalf("want a single generic bullet, got %d", len(texts[1].Runs))
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	c := Content{Steps: []Step{{Order: 1, Title: "a"}, {Order: 2, Title: "b"}}}
	first := testRenderer().Render(types.TemplateStepFlow, c)
	second := testRenderer().Render(types.TemplateStepFlow, c)
	if len(first) != len(second) {
		t.Fatalf("placement counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].X != second[i].X || first[i].Y != second[i].Y {
			t.Fatalf("placement %d moved between renders", i)
		}
	}
}
