// Package pptx implements deck.DocumentWriter against the OOXML
// presentation container. It emits the minimal part set PowerPoint
// accepts: content types, relationships, one master, one layout, one
// theme, and one slide part per assembled slide.
package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"

	"github.com/yungbote/deckforge-backend/internal/deck"
)

type slidePart struct {
	layout deck.SlideLayoutKind
	shapes []deck.Placement
}

func (s *slidePart) AddShape(p deck.Placement) error {
	s.shapes = append(s.shapes, p)
	return nil
}

// Writer accumulates slides and serializes them into a .pptx archive.
// A Writer is single-use; call Bytes once after all slides are added.
type Writer struct {
	slides []*slidePart
}

func NewWriter() *Writer {
	return &Writer{}
}

func (w *Writer) AddSlide(kind deck.SlideLayoutKind) (deck.ShapeSink, error) {
	part := &slidePart{layout: kind}
	w.slides = append(w.slides, part)
	return part, nil
}

func (w *Writer) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	write := func(name, content string) error {
		f, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		return nil
	}

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", w.contentTypes()},
		{"_rels/.rels", rootRels},
		{"ppt/presentation.xml", w.presentation()},
		{"ppt/_rels/presentation.xml.rels", w.presentationRels()},
		{"ppt/slideMasters/slideMaster1.xml", slideMaster},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", masterRels},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayout},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", layoutRels},
		{"ppt/theme/theme1.xml", themePart},
	}
	for _, part := range parts {
		if err := write(part.name, part.content); err != nil {
			return nil, err
		}
	}

	for i, slide := range w.slides {
		n := i + 1
		if err := write(fmt.Sprintf("ppt/slides/slide%d.xml", n), renderSlide(slide)); err != nil {
			return nil, err
		}
		if err := write(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n), slideRels); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}

func (w *Writer) contentTypes() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := range w.slides {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1)
	}
	b.WriteString(`</Types>`)
	return b.String()
}

func (w *Writer) presentation() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:presentation xmlns:a="` + nsDrawing + `" xmlns:r="` + nsRels + `" xmlns:p="` + nsPresentation + `">`)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := range w.slides {
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, i+2)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, int64(deck.CanvasWidth), int64(deck.CanvasHeight))
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

func (w *Writer) presentationRels() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	b.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	for i := range w.slides {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, i+2, i+1)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

func renderSlide(s *slidePart) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld xmlns:a="` + nsDrawing + `" xmlns:r="` + nsRels + `" xmlns:p="` + nsPresentation + `">`)
	b.WriteString(`<p:cSld><p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)
	for i, p := range s.shapes {
		renderShape(&b, i+2, p)
	}
	b.WriteString(`</p:spTree></p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)
	return b.String()
}

func renderShape(b *strings.Builder, id int, p deck.Placement) {
	b.WriteString(`<p:sp>`)
	fmt.Fprintf(b, `<p:nvSpPr><p:cNvPr id="%d" name="Shape %d"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>`, id, id)

	b.WriteString(`<p:spPr>`)
	fmt.Fprintf(b, `<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`, p.X, p.Y, p.W, p.H)
	fmt.Fprintf(b, `<a:prstGeom prst="%s"><a:avLst/></a:prstGeom>`, presetGeom(p.Kind))
	if p.Fill != nil {
		fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, hexVal(*p.Fill))
	} else {
		b.WriteString(`<a:noFill/>`)
	}
	if p.Line != nil {
		// Line width is in EMU: 12700 per point.
		width := int64(p.LineWidthPt * 12700)
		if width <= 0 {
			width = 12700
		}
		fmt.Fprintf(b, `<a:ln w="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln>`, width, hexVal(*p.Line))
	}
	b.WriteString(`</p:spPr>`)

	if len(p.Runs) > 0 {
		b.WriteString(`<p:txBody>`)
		if p.VAlignMid {
			b.WriteString(`<a:bodyPr wrap="square" anchor="ctr"/>`)
		} else {
			b.WriteString(`<a:bodyPr wrap="square"/>`)
		}
		b.WriteString(`<a:lstStyle/>`)
		for _, run := range p.Runs {
			renderRun(b, run)
		}
		b.WriteString(`</p:txBody>`)
	}
	b.WriteString(`</p:sp>`)
}

func renderRun(b *strings.Builder, run deck.TextRun) {
	b.WriteString(`<a:p>`)
	if run.Align == deck.AlignCenter {
		b.WriteString(`<a:pPr algn="ctr"/>`)
	}
	b.WriteString(`<a:r>`)
	bold := ""
	if run.Bold {
		bold = ` b="1"`
	}
	// Font size unit is hundredths of a point.
	fmt.Fprintf(b, `<a:rPr lang="en-US" sz="%d"%s><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:rPr>`,
		int(run.SizePt*100), bold, hexVal(run.Color))
	fmt.Fprintf(b, `<a:t>%s</a:t>`, escapeXML(run.Text))
	b.WriteString(`</a:r></a:p>`)
}

func presetGeom(kind deck.ShapeKind) string {
	switch kind {
	case deck.ShapeOval:
		return "ellipse"
	case deck.ShapeArrow:
		return "rightArrow"
	default:
		return "rect"
	}
}

func hexVal(c deck.Color) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
