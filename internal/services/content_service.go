package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/deckforge-backend/internal/content"
	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/repos"
	"github.com/yungbote/deckforge-backend/internal/template"
	"github.com/yungbote/deckforge-backend/internal/types"
	"github.com/yungbote/deckforge-backend/internal/utils"
)

// ErrForbidden is returned when a caller touches a project they do not own.
var ErrForbidden = errors.New("project does not belong to user")

// ErrHasContent is returned when generation would overwrite existing
// content and the caller did not request regeneration.
var ErrHasContent = errors.New("slide already has content")

// SlideGenerationResult is one entry of a batch generation response.
type SlideGenerationResult struct {
	SlideID uuid.UUID `json:"slide_id"`
	Status  string    `json:"status"`
	Error   string    `json:"error,omitempty"`
}

const (
	GenerationStatusGenerated = "generated"
	GenerationStatusFailed    = "failed"
	GenerationStatusSkipped   = "skipped"
)

// SlideContentInfo is the read view of a slide's content plus the
// fields still waiting on user input.
type SlideContentInfo struct {
	SlideID       uuid.UUID          `json:"slide_id"`
	TemplateType  types.TemplateType `json:"template_type"`
	Status        types.SlideStatus  `json:"status"`
	Content       map[string]any     `json:"content"`
	PendingFields []string           `json:"pending_fields"`
}

type ContentService interface {
	ClassifySlide(ctx context.Context, userID, slideID uuid.UUID) (*content.Classification, error)
	GenerateForSlide(ctx context.Context, userID, slideID uuid.UUID, regenerate bool) (*types.Slide, error)
	GenerateForProject(ctx context.Context, userID, projectID uuid.UUID, regenerate bool) ([]SlideGenerationResult, error)
	UpdateContent(ctx context.Context, userID, slideID uuid.UUID, updates map[string]any, confirmed []string) (*types.Slide, error)
	GetContent(ctx context.Context, userID, slideID uuid.UUID) (*SlideContentInfo, error)
}

type contentService struct {
	db          *gorm.DB
	log         *logger.Logger
	projectRepo repos.ProjectRepo
	slideRepo   repos.SlideRepo
	logRepo     repos.GenerationLogRepo
	classifier  *content.Classifier
	generator   *content.Generator
	maxParallel int
}

func NewContentService(
	db *gorm.DB,
	log *logger.Logger,
	projectRepo repos.ProjectRepo,
	slideRepo repos.SlideRepo,
	logRepo repos.GenerationLogRepo,
	ai TextClient,
) ContentService {
	serviceLog := log.With("service", "ContentService")
	return &contentService{
		db:          db,
		log:         serviceLog,
		projectRepo: projectRepo,
		slideRepo:   slideRepo,
		logRepo:     logRepo,
		classifier:  content.NewClassifier(ai, log),
		generator:   content.NewGenerator(ai, log),
		maxParallel: utils.GetEnvAsInt("CONTENT_MAX_PARALLEL", 4, log),
	}
}

func (cs *contentService) ClassifySlide(ctx context.Context, userID, slideID uuid.UUID) (*content.Classification, error) {
	slide, _, err := cs.loadOwnedSlide(ctx, userID, slideID)
	if err != nil {
		return nil, err
	}
	classification := cs.classifier.Classify(ctx, cs.slideText(slide), slide.TemplateType, slide.HeadMessage)
	return &classification, nil
}

func (cs *contentService) GenerateForSlide(ctx context.Context, userID, slideID uuid.UUID, regenerate bool) (*types.Slide, error) {
	slide, project, err := cs.loadOwnedSlide(ctx, userID, slideID)
	if err != nil {
		return nil, err
	}
	if slide.HasContent() && !regenerate {
		return nil, ErrHasContent
	}
	return cs.generateSlide(ctx, project, slide)
}

// GenerateForProject fans out one generation per slide. A failed slide
// is recorded in its result entry and never aborts the rest of the
// batch; slides that already carry content are skipped unless
// regeneration is requested.
func (cs *contentService) GenerateForProject(ctx context.Context, userID, projectID uuid.UUID, regenerate bool) ([]SlideGenerationResult, error) {
	project, err := cs.projectRepo.GetByID(ctx, nil, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, ErrForbidden
	}
	slides, err := cs.slideRepo.GetForProject(ctx, nil, projectID)
	if err != nil {
		return nil, err
	}

	results := make([]SlideGenerationResult, len(slides))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cs.maxParallel)
	for i, slide := range slides {
		i, slide := i, slide
		if slide.HasContent() && !regenerate {
			results[i] = SlideGenerationResult{SlideID: slide.ID, Status: GenerationStatusSkipped}
			continue
		}
		g.Go(func() error {
			_, err := cs.generateSlide(gctx, project, slide)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				results[i] = SlideGenerationResult{
					SlideID: slide.ID,
					Status:  GenerationStatusFailed,
					Error:   err.Error(),
				}
				return nil
			}
			results[i] = SlideGenerationResult{SlideID: slide.ID, Status: GenerationStatusGenerated}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// generateSlide runs the classify, generate, normalize pipeline for one
// slide and persists the result. Backend and parse failures never reach
// this function; they resolve inside the pipeline to fallback content.
func (cs *contentService) generateSlide(ctx context.Context, project *types.Project, slide *types.Slide) (*types.Slide, error) {
	started := time.Now()

	classification := cs.classifier.Classify(ctx, cs.slideText(slide), slide.TemplateType, slide.HeadMessage)

	elements := make([]string, 0, len(classification.AiGenerated))
	for _, el := range classification.AiGenerated {
		elements = append(elements, el.Description)
	}

	promptCtx := project.Context()
	promptCtx["head_message"] = slide.HeadMessage
	promptCtx["purpose"] = slide.Purpose

	generated := cs.generator.Generate(ctx, slide.TemplateType, elements, promptCtx)
	normalized := content.Normalize(generated.Components, slide.TemplateType, slide.HeadMessage)

	// User-needed elements become sentinel entries so completion
	// tracking can surface them.
	for _, el := range classification.UserNeeded {
		key := "user_input_" + el.ElementType
		if _, exists := normalized[key]; exists {
			continue
		}
		normalized[key] = types.Sentinel + ": " + el.Description
	}

	if err := cs.slideRepo.UpdateContent(ctx, nil, slide.ID, normalized, types.StatusAiGenerated); err != nil {
		return nil, fmt.Errorf("persist generated content: %w", err)
	}
	if err := slide.SetContent(normalized); err != nil {
		return nil, err
	}
	slide.Status = types.StatusAiGenerated

	cs.recordGeneration(ctx, project, slide, generated, time.Since(started))
	return slide, nil
}

func (cs *contentService) recordGeneration(ctx context.Context, project *types.Project, slide *types.Slide, generated content.GeneratedComponents, elapsed time.Duration) {
	failed := false
	if status, ok := generated.Metadata["status"].(string); ok && status == "fallback" {
		failed = true
	}
	entry := &types.GenerationLog{
		ProjectID: &project.ID,
		SlideID:   &slide.ID,
		Provider:  "openai",
		Prompt:    cs.slideText(slide),
		Response:  fmt.Sprintf("%v", generated.Components),
		LatencyMS: int(elapsed.Milliseconds()),
		Failed:    failed,
	}
	if err := cs.logRepo.Create(ctx, nil, entry); err != nil {
		cs.log.Warn("Failed to record generation log (ignored)", "slideID", slide.ID, "error", err)
	}
}

// UpdateContent merges user edits into the slide's content, applies the
// alias normalization pass, and re-derives the completion status.
func (cs *contentService) UpdateContent(ctx context.Context, userID, slideID uuid.UUID, updates map[string]any, confirmed []string) (*types.Slide, error) {
	slide, _, err := cs.loadOwnedSlide(ctx, userID, slideID)
	if err != nil {
		return nil, err
	}

	merged := slide.ContentMap()
	for key, value := range updates {
		merged[key] = value
	}
	merged = content.Normalize(merged, slide.TemplateType, slide.HeadMessage)

	status := content.DeriveStatus(merged, confirmed, slide.Status)
	if err := cs.slideRepo.UpdateContent(ctx, nil, slide.ID, merged, status); err != nil {
		return nil, fmt.Errorf("persist updated content: %w", err)
	}
	if err := slide.SetContent(merged); err != nil {
		return nil, err
	}
	slide.Status = status
	return slide, nil
}

func (cs *contentService) GetContent(ctx context.Context, userID, slideID uuid.UUID) (*SlideContentInfo, error) {
	slide, _, err := cs.loadOwnedSlide(ctx, userID, slideID)
	if err != nil {
		return nil, err
	}
	contentMap := slide.ContentMap()
	return &SlideContentInfo{
		SlideID:       slide.ID,
		TemplateType:  slide.TemplateType,
		Status:        slide.Status,
		Content:       contentMap,
		PendingFields: content.PendingFields(contentMap, nil),
	}, nil
}

func (cs *contentService) loadOwnedSlide(ctx context.Context, userID, slideID uuid.UUID) (*types.Slide, *types.Project, error) {
	slide, err := cs.slideRepo.GetByID(ctx, nil, slideID)
	if err != nil {
		return nil, nil, err
	}
	project, err := cs.projectRepo.GetByID(ctx, nil, slide.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	if project.UserID != userID {
		return nil, nil, ErrForbidden
	}
	return slide, project, nil
}

func (cs *contentService) slideText(slide *types.Slide) string {
	parts := []string{slide.HeadMessage}
	if slide.Purpose != "" {
		parts = append(parts, "Purpose: "+slide.Purpose)
	}
	if slide.Notes != "" {
		parts = append(parts, "Notes: "+slide.Notes)
	}
	parts = append(parts, "Template: "+template.DisplayName(slide.TemplateType))
	return strings.Join(parts, "\n")
}
