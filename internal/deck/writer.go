package deck

import (
	"fmt"
	"strings"
	"time"
)

// MIMEType is the content type of the produced presentation artifact.
const MIMEType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

// ShapeSink receives the shapes of a single slide in order.
type ShapeSink interface {
	AddShape(p Placement) error
}

// DocumentWriter renders an assembled Document into a binary
// presentation artifact. Implementations own the container format.
type DocumentWriter interface {
	AddSlide(kind SlideLayoutKind) (ShapeSink, error)
	Bytes() ([]byte, error)
}

// WriteTo streams the document's slides and shapes into w and returns
// the finished artifact.
func (d Document) WriteTo(w DocumentWriter) ([]byte, error) {
	for i, slide := range d.Slides {
		sink, err := w.AddSlide(slide.Layout)
		if err != nil {
			return nil, fmt.Errorf("add slide %d: %w", i, err)
		}
		for _, p := range slide.Placements {
			if err := sink.AddShape(p); err != nil {
				return nil, fmt.Errorf("add shape on slide %d: %w", i, err)
			}
		}
	}
	return w.Bytes()
}

// ArtifactName builds the download filename for a generated deck.
func ArtifactName(projectTitle string, now time.Time) string {
	title := strings.TrimSpace(projectTitle)
	if title == "" {
		title = "presentation"
	}
	return fmt.Sprintf("%s_%s.pptx", title, now.Format("20060102_150405"))
}
