package deck

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/yungbote/deckforge-backend/internal/types"
)

func TestPreviewRendersExpectedPixelSize(t *testing.T) {
	pr, err := NewPreviewRenderer(400)
	if err != nil {
		t.Fatalf("NewPreviewRenderer: %v", err)
	}

	placements := testRenderer().Render(types.TemplateCaseBox, Content{
		Cases: []Case{{Title: "A"}, {Title: "B"}},
	})
	buf, err := pr.RenderPNG(placements)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 400 || bounds.Dy() != 300 {
		t.Fatalf("want 400x300, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestPreviewDrawsBoxFill(t *testing.T) {
	pr, err := NewPreviewRenderer(200)
	if err != nil {
		t.Fatalf("NewPreviewRenderer: %v", err)
	}

	fill := Color{40, 167, 69}
	buf, err := pr.RenderPNG([]Placement{{
		Kind: ShapeBox,
		X:    0, Y: 0, W: CanvasWidth, H: CanvasHeight,
		Fill: &fill,
	}})
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := img.At(100, 75).RGBA()
	if uint8(r>>8) != fill.R || uint8(g>>8) != fill.G || uint8(b>>8) != fill.B {
		t.Fatalf("center pixel: got %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestPreviewEmptySlideIsWhite(t *testing.T) {
	pr, err := NewPreviewRenderer(100)
	if err != nil {
		t.Fatalf("NewPreviewRenderer: %v", err)
	}
	buf, err := pr.RenderPNG(nil)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := img.At(50, 37).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Fatalf("background must be white, got %d %d %d", r>>8, g>>8, b>>8)
	}
}
