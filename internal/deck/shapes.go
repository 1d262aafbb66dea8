package deck

// All coordinates are in EMU (English Metric Units). One inch is 914400
// EMU; the canvas is a fixed 10in by 7.5in slide.
const (
	EMUPerInch = 914400

	CanvasWidth  = 10 * EMUPerInch
	CanvasHeight = 15 * EMUPerInch / 2
)

// inches converts a fractional inch measurement to EMU.
func inches(v float64) int64 {
	return int64(v * EMUPerInch)
}

type ShapeKind string

const (
	ShapeText  ShapeKind = "text"
	ShapeBox   ShapeKind = "box"
	ShapeOval  ShapeKind = "oval"
	ShapeArrow ShapeKind = "arrow"
)

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
)

// TextRun is one paragraph of text inside a shape.
type TextRun struct {
	Text   string
	SizePt float64
	Bold   bool
	Color  Color
	Align  Align
}

// Placement is a single positioned shape on a slide. Fill and Line are
// nil for shapes without a background or border.
type Placement struct {
	Kind        ShapeKind
	X, Y, W, H  int64
	Fill        *Color
	Line        *Color
	LineWidthPt float64
	VAlignMid   bool
	Runs        []TextRun
}

func colorRef(c Color) *Color {
	cc := c
	return &cc
}
