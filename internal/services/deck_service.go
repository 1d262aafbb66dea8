package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/deckforge-backend/internal/content"
	"github.com/yungbote/deckforge-backend/internal/deck"
	"github.com/yungbote/deckforge-backend/internal/deck/pptx"
	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/repos"
	"github.com/yungbote/deckforge-backend/internal/types"
)

// DeckArtifact is a finished downloadable presentation.
type DeckArtifact struct {
	Filename string
	MIMEType string
	Data     []byte
}

// SlidePreview summarizes one slide for the deck overview endpoint.
type SlidePreview struct {
	SlideID       uuid.UUID          `json:"slide_id"`
	Order         int                `json:"order"`
	HeadMessage   string             `json:"head_message"`
	TemplateType  types.TemplateType `json:"template_type"`
	Status        types.SlideStatus  `json:"status"`
	HasContent    bool               `json:"has_content"`
	PendingFields []string           `json:"pending_fields"`
	Summary       string             `json:"summary,omitempty"`
}

// DeckPreview is the project-level readiness overview.
type DeckPreview struct {
	ProjectID  uuid.UUID      `json:"project_id"`
	Title      string         `json:"title"`
	SlideCount int            `json:"slide_count"`
	ReadyCount int            `json:"ready_count"`
	Slides     []SlidePreview `json:"slides"`
}

type DeckService interface {
	GenerateDeck(ctx context.Context, userID, projectID uuid.UUID, includeEmpty bool) (*DeckArtifact, error)
	PreviewInfo(ctx context.Context, userID, projectID uuid.UUID) (*DeckPreview, error)
	RenderSlidePNG(ctx context.Context, userID, slideID uuid.UUID) ([]byte, error)
}

type deckService struct {
	db          *gorm.DB
	log         *logger.Logger
	projectRepo repos.ProjectRepo
	slideRepo   repos.SlideRepo
	assembler   *deck.Assembler
	preview     *deck.PreviewRenderer
	newWriter   func() deck.DocumentWriter
}

func NewDeckService(
	db *gorm.DB,
	log *logger.Logger,
	projectRepo repos.ProjectRepo,
	slideRepo repos.SlideRepo,
) (DeckService, error) {
	serviceLog := log.With("service", "DeckService")

	pal := deck.DefaultPalette()
	if themePath := strings.TrimSpace(os.Getenv("DECK_THEME_PATH")); themePath != "" {
		serviceLog.Info("Loading deck theme", "path", themePath)
		loaded, err := deck.LoadPalette(themePath)
		if err != nil {
			return nil, fmt.Errorf("could not load deck theme: %w", err)
		}
		pal = loaded
	}

	preview, err := deck.NewPreviewRenderer(0)
	if err != nil {
		return nil, fmt.Errorf("could not build preview renderer: %w", err)
	}

	return &deckService{
		db:          db,
		log:         serviceLog,
		projectRepo: projectRepo,
		slideRepo:   slideRepo,
		assembler:   deck.NewAssembler(pal),
		preview:     preview,
		newWriter:   func() deck.DocumentWriter { return pptx.NewWriter() },
	}, nil
}

func (ds *deckService) GenerateDeck(ctx context.Context, userID, projectID uuid.UUID, includeEmpty bool) (*DeckArtifact, error) {
	project, slides, err := ds.loadOwnedProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	inputs := make([]deck.SlideInput, 0, len(slides))
	for _, s := range slides {
		inputs = append(inputs, deck.SlideInput{
			Order:        s.OrderIndex,
			HeadMessage:  s.HeadMessage,
			TemplateType: s.TemplateType,
			Content:      s.ContentMap(),
		})
	}

	doc := ds.assembler.Assemble(deck.ProjectInput{
		Title:          project.Title,
		Topic:          project.Topic,
		TargetAudience: project.TargetAudience,
		Goal:           project.Goal,
	}, inputs, includeEmpty)

	data, err := doc.WriteTo(ds.newWriter())
	if err != nil {
		return nil, fmt.Errorf("write deck: %w", err)
	}

	ds.log.Info("Deck generated", "projectID", projectID, "slides", len(doc.Slides), "bytes", len(data))
	return &DeckArtifact{
		Filename: deck.ArtifactName(project.Title, time.Now()),
		MIMEType: deck.MIMEType,
		Data:     data,
	}, nil
}

func (ds *deckService) PreviewInfo(ctx context.Context, userID, projectID uuid.UUID) (*DeckPreview, error) {
	project, slides, err := ds.loadOwnedProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	preview := &DeckPreview{
		ProjectID:  project.ID,
		Title:      project.Title,
		SlideCount: len(slides),
		Slides:     make([]SlidePreview, 0, len(slides)),
	}
	for _, s := range slides {
		contentMap := s.ContentMap()
		sp := SlidePreview{
			SlideID:       s.ID,
			Order:         s.OrderIndex,
			HeadMessage:   s.HeadMessage,
			TemplateType:  s.TemplateType,
			Status:        s.Status,
			HasContent:    len(contentMap) > 0,
			PendingFields: content.PendingFields(contentMap, nil),
			Summary:       contentSummary(s.TemplateType, contentMap),
		}
		if sp.HasContent && len(sp.PendingFields) == 0 {
			preview.ReadyCount++
		}
		preview.Slides = append(preview.Slides, sp)
	}
	return preview, nil
}

func (ds *deckService) RenderSlidePNG(ctx context.Context, userID, slideID uuid.UUID) ([]byte, error) {
	slide, err := ds.slideRepo.GetByID(ctx, nil, slideID)
	if err != nil {
		return nil, err
	}
	project, err := ds.projectRepo.GetByID(ctx, nil, slide.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, ErrForbidden
	}

	c := deck.ContentFromMap(slide.TemplateType, slide.HeadMessage, slide.ContentMap())
	placements := deck.NewRenderer(deck.DefaultPalette()).Render(slide.TemplateType, c)
	buf, err := ds.preview.RenderPNG(placements)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (ds *deckService) loadOwnedProject(ctx context.Context, userID, projectID uuid.UUID) (*types.Project, []*types.Slide, error) {
	project, err := ds.projectRepo.GetByID(ctx, nil, projectID)
	if err != nil {
		return nil, nil, err
	}
	if project.UserID != userID {
		return nil, nil, ErrForbidden
	}
	slides, err := ds.slideRepo.GetForProject(ctx, nil, projectID)
	if err != nil {
		return nil, nil, err
	}
	return project, slides, nil
}

// contentSummary picks the most representative text field for a slide's
// one-line preview.
func contentSummary(t types.TemplateType, contentMap map[string]any) string {
	var key string
	switch t {
	case types.TemplateAsIsToBe:
		key = "as_is_title"
	case types.TemplateChartInsight:
		key = "chart_title"
	case types.TemplateNodeMap:
		key = "central_concept"
	default:
		key = "main_message"
	}
	s, _ := contentMap[key].(string)
	if len(s) > 80 {
		s = s[:77] + "..."
	}
	return s
}
