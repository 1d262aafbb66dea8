package pptx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/yungbote/deckforge-backend/internal/deck"
)

func TestWriterProducesReadableArchive(t *testing.T) {
	w := NewWriter()

	sink, err := w.AddSlide(deck.LayoutTitle)
	if err != nil {
		t.Fatalf("AddSlide: %v", err)
	}
	red := deck.Color{R: 220, G: 53, B: 69}
	if err := sink.AddShape(deck.Placement{
		Kind: deck.ShapeText,
		X:    914400, Y: 914400, W: 914400 * 8, H: 914400,
		Runs: []deck.TextRun{{Text: "Hello <деck> & \"friends\"", SizePt: 44, Bold: true, Color: red, Align: deck.AlignCenter}},
	}); err != nil {
		t.Fatalf("AddShape: %v", err)
	}
	if _, err := w.AddSlide(deck.LayoutBlank); err != nil {
		t.Fatalf("AddSlide: %v", err)
	}

	data, err := w.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("archive unreadable: %v", err)
	}
	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/theme/theme1.xml",
	} {
		if !names[want] {
			t.Fatalf("missing part %q in %v", want, names)
		}
	}

	slide1 := readPart(t, zr, "ppt/slides/slide1.xml")
	if !strings.Contains(slide1, "Hello &lt;деck&gt; &amp; &quot;friends&quot;") {
		t.Fatalf("text not escaped: %s", slide1)
	}
	if !strings.Contains(slide1, `sz="4400"`) {
		t.Fatalf("font size missing: %s", slide1)
	}
	if !strings.Contains(slide1, `val="DC3545"`) {
		t.Fatalf("run color missing: %s", slide1)
	}
}

func TestWriterShapeGeometry(t *testing.T) {
	cases := []struct {
		kind deck.ShapeKind
		want string
	}{
		{deck.ShapeText, `prst="rect"`},
		{deck.ShapeBox, `prst="rect"`},
		{deck.ShapeOval, `prst="ellipse"`},
		{deck.ShapeArrow, `prst="rightArrow"`},
	}
	for _, tc := range cases {
		w := NewWriter()
		sink, _ := w.AddSlide(deck.LayoutBlank)
		fill := deck.Color{R: 1, G: 2, B: 3}
		_ = sink.AddShape(deck.Placement{Kind: tc.kind, X: 1, Y: 2, W: 3, H: 4, Fill: &fill})
		data, err := w.Bytes()
		if err != nil {
			t.Fatalf("%s: %v", tc.kind, err)
		}
		zr, _ := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		slide := readPart(t, zr, "ppt/slides/slide1.xml")
		if !strings.Contains(slide, tc.want) {
			t.Fatalf("%s: want %s in %s", tc.kind, tc.want, slide)
		}
		if !strings.Contains(slide, `<a:off x="1" y="2"/><a:ext cx="3" cy="4"/>`) {
			t.Fatalf("%s: geometry missing", tc.kind)
		}
	}
}

func readPart(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(raw)
	}
	t.Fatalf("part %s not found", name)
	return ""
}
