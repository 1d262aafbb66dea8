package deck

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// PreviewRenderer rasterizes a laid-out slide to a PNG thumbnail. Text
// is drawn only when a font is available; shape geometry is always
// drawn so previews stay useful without one.
type PreviewRenderer struct {
	widthPx  int
	fontData []byte
}

// NewPreviewRenderer builds a renderer producing images widthPx pixels
// wide. The DECK_FONT env var may point at a TTF file used for text
// runs; when unset, text is omitted from previews.
func NewPreviewRenderer(widthPx int) (*PreviewRenderer, error) {
	if widthPx <= 0 {
		widthPx = 960
	}
	pr := &PreviewRenderer{widthPx: widthPx}

	fontPath := strings.TrimSpace(os.Getenv("DECK_FONT"))
	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, fmt.Errorf("read preview font: %w", err)
		}
		if _, err := truetype.Parse(data); err != nil {
			return nil, fmt.Errorf("parse preview font: %w", err)
		}
		pr.fontData = data
	}
	return pr, nil
}

// RenderPNG draws one slide's placements onto a white canvas and
// returns the encoded PNG.
func (pr *PreviewRenderer) RenderPNG(placements []Placement) (bytes.Buffer, error) {
	var out bytes.Buffer

	w := pr.widthPx
	h := w * CanvasHeight / CanvasWidth
	scale := float64(w) / float64(CanvasWidth)

	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	dc.Fill()

	for _, p := range placements {
		x := float64(p.X) * scale
		y := float64(p.Y) * scale
		pw := float64(p.W) * scale
		ph := float64(p.H) * scale

		switch p.Kind {
		case ShapeBox:
			if p.Fill != nil {
				dc.SetColor(nrgba(*p.Fill))
				dc.DrawRectangle(x, y, pw, ph)
				dc.Fill()
			}
			if p.Line != nil {
				dc.SetColor(nrgba(*p.Line))
				dc.SetLineWidth(lineWidthPx(p.LineWidthPt, scale))
				dc.DrawRectangle(x, y, pw, ph)
				dc.Stroke()
			}
		case ShapeOval:
			if p.Fill != nil {
				dc.SetColor(nrgba(*p.Fill))
				dc.DrawEllipse(x+pw/2, y+ph/2, pw/2, ph/2)
				dc.Fill()
			}
			if p.Line != nil {
				dc.SetColor(nrgba(*p.Line))
				dc.SetLineWidth(lineWidthPx(p.LineWidthPt, scale))
				dc.DrawEllipse(x+pw/2, y+ph/2, pw/2, ph/2)
				dc.Stroke()
			}
		case ShapeArrow:
			fill := Color{108, 117, 125}
			if p.Fill != nil {
				fill = *p.Fill
			}
			dc.SetColor(nrgba(fill))
			// Shaft plus a triangular head.
			headW := pw * 0.4
			shaftH := ph * 0.5
			dc.DrawRectangle(x, y+(ph-shaftH)/2, pw-headW, shaftH)
			dc.Fill()
			dc.MoveTo(x+pw-headW, y)
			dc.LineTo(x+pw, y+ph/2)
			dc.LineTo(x+pw-headW, y+ph)
			dc.ClosePath()
			dc.Fill()
		}

		if len(p.Runs) > 0 && pr.fontData != nil {
			pr.drawRuns(dc, p, x, y, pw, ph, scale)
		}
	}

	if err := dc.EncodePNG(&out); err != nil {
		return out, fmt.Errorf("encode preview png: %w", err)
	}
	return out, nil
}

func (pr *PreviewRenderer) drawRuns(dc *gg.Context, p Placement, x, y, pw, ph, scale float64) {
	// Runs stack top to bottom inside the shape bounds.
	lineY := y
	totalH := 0.0
	heights := make([]float64, len(p.Runs))
	for i, run := range p.Runs {
		heights[i] = run.SizePt * scale * float64(EMUPerInch) / 72 * 1.4
		totalH += heights[i]
	}
	if p.VAlignMid && totalH < ph {
		lineY = y + (ph-totalH)/2
	}

	for i, run := range p.Runs {
		face, err := pr.face(run.SizePt * scale * float64(EMUPerInch) / 72)
		if err != nil {
			continue
		}
		dc.SetFontFace(face)
		dc.SetColor(nrgba(run.Color))

		tx := x
		ax := 0.0
		if run.Align == AlignCenter {
			tx = x + pw/2
			ax = 0.5
		}
		dc.DrawStringAnchored(run.Text, tx, lineY+heights[i]/2, ax, 0.35)
		lineY += heights[i]
	}
}

func (pr *PreviewRenderer) face(sizePx float64) (font.Face, error) {
	parsed, err := truetype.Parse(pr.fontData)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(parsed, &truetype.Options{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingNone,
	}), nil
}

func lineWidthPx(pt, scale float64) float64 {
	if pt <= 0 {
		pt = 1
	}
	return pt * scale * float64(EMUPerInch) / 72
}

func nrgba(c Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
