package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/deckforge-backend/internal/pkg/logger"
	"github.com/yungbote/deckforge-backend/internal/repos"
	"github.com/yungbote/deckforge-backend/internal/types"
)

type stubTextClient struct {
	reply string
	err   error
}

func (s *stubTextClient) Generate(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	return s.reply, s.err
}

func (s *stubTextClient) GenerateJSON(ctx context.Context, system, user, schemaName string, schema map[string]any) (map[string]any, error) {
	return nil, s.err
}

// failingSlideRepo makes content persistence fail for one slide, to
// exercise partial failure in batch generation.
type failingSlideRepo struct {
	repos.SlideRepo
	failID uuid.UUID
}

func (fr *failingSlideRepo) UpdateContent(ctx context.Context, tx *gorm.DB, slideID uuid.UUID, content map[string]any, status types.SlideStatus) error {
	if slideID == fr.failID {
		return errors.New("disk on fire")
	}
	return fr.SlideRepo.UpdateContent(ctx, tx, slideID, content, status)
}

type fixture struct {
	svc       ContentService
	userID    uuid.UUID
	projectID uuid.UUID
	slideRepo repos.SlideRepo
}

func newFixture(t *testing.T, ai TextClient, slideRepo repos.SlideRepo) *fixture {
	t.Helper()
	log := logger.NewNop()
	projectRepo := repos.NewMemoryProjectRepo()
	if slideRepo == nil {
		slideRepo = repos.NewMemorySlideRepo()
	}
	logRepo := repos.NewMemoryGenerationLogRepo()

	userID := uuid.New()
	project, err := projectRepo.Create(context.Background(), nil, &types.Project{
		UserID: userID,
		Title:  "Market Entry",
		Topic:  "APAC expansion",
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}

	return &fixture{
		svc:       NewContentService(nil, log, projectRepo, slideRepo, logRepo, ai),
		userID:    userID,
		projectID: project.ID,
		slideRepo: slideRepo,
	}
}

func (f *fixture) addSlide(t *testing.T, order int, content map[string]any) *types.Slide {
	t.Helper()
	slide := &types.Slide{
		ProjectID:    f.projectID,
		OrderIndex:   order,
		HeadMessage:  "head",
		TemplateType: types.TemplateMessageOnly,
		Purpose:      "general",
		Status:       types.StatusDraft,
	}
	if content != nil {
		if err := slide.SetContent(content); err != nil {
			t.Fatalf("set content: %v", err)
		}
	}
	created, err := f.slideRepo.Create(context.Background(), nil, slide)
	if err != nil {
		t.Fatalf("create slide: %v", err)
	}
	return created
}

func TestGenerateForSlidePersistsNormalizedContent(t *testing.T) {
	// backend always fails, so the pipeline runs entirely on fallbacks
	f := newFixture(t, &stubTextClient{err: errors.New("down")}, nil)
	slide := f.addSlide(t, 1, nil)

	got, err := f.svc.GenerateForSlide(context.Background(), f.userID, slide.ID, false)
	if err != nil {
		t.Fatalf("GenerateForSlide: %v", err)
	}
	if got.Status != types.StatusAiGenerated {
		t.Fatalf("status: got %s", got.Status)
	}

	contentMap := got.ContentMap()
	if _, ok := contentMap["main_message"]; !ok {
		t.Fatalf("canonical field missing: %v", contentMap)
	}

	stored, _ := f.slideRepo.GetByID(context.Background(), nil, slide.ID)
	if !stored.HasContent() {
		t.Fatal("content not persisted")
	}
}

func TestGenerateForSlideRefusesOverwrite(t *testing.T) {
	f := newFixture(t, &stubTextClient{err: errors.New("down")}, nil)
	slide := f.addSlide(t, 1, map[string]any{"main_message": "existing"})

	if _, err := f.svc.GenerateForSlide(context.Background(), f.userID, slide.ID, false); !errors.Is(err, ErrHasContent) {
		t.Fatalf("want ErrHasContent, got %v", err)
	}

	// regenerate flag overrides the guard
	if _, err := f.svc.GenerateForSlide(context.Background(), f.userID, slide.ID, true); err != nil {
		t.Fatalf("regenerate: %v", err)
	}
}

func TestGenerateForSlideForbiddenForOtherUser(t *testing.T) {
	f := newFixture(t, &stubTextClient{err: errors.New("down")}, nil)
	slide := f.addSlide(t, 1, nil)

	if _, err := f.svc.GenerateForSlide(context.Background(), uuid.New(), slide.ID, false); !errors.Is(err, ErrForbidden) {
		t.Fatalf("want ErrForbidden, got %v", err)
	}
}

func TestGenerateForProjectPartialFailure(t *testing.T) {
	inner := repos.NewMemorySlideRepo()
	wrapper := &failingSlideRepo{SlideRepo: inner}
	f := newFixture(t, &stubTextClient{err: errors.New("down")}, wrapper)

	s1 := f.addSlide(t, 1, nil)
	s2 := f.addSlide(t, 2, nil)
	s3 := f.addSlide(t, 3, map[string]any{"main_message": "done already"})
	wrapper.failID = s2.ID

	results, err := f.svc.GenerateForProject(context.Background(), f.userID, f.projectID, false)
	if err != nil {
		t.Fatalf("GenerateForProject: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("want one result per slide, got %d", len(results))
	}

	byID := map[uuid.UUID]SlideGenerationResult{}
	for _, r := range results {
		byID[r.SlideID] = r
	}
	if byID[s1.ID].Status != GenerationStatusGenerated {
		t.Fatalf("slide 1: %+v", byID[s1.ID])
	}
	if byID[s2.ID].Status != GenerationStatusFailed || byID[s2.ID].Error == "" {
		t.Fatalf("slide 2 must fail without aborting the batch: %+v", byID[s2.ID])
	}
	if byID[s3.ID].Status != GenerationStatusSkipped {
		t.Fatalf("slide 3 already had content: %+v", byID[s3.ID])
	}

	// the failure stayed isolated
	stored, _ := inner.GetByID(context.Background(), nil, s1.ID)
	if !stored.HasContent() {
		t.Fatal("successful slide must keep its generated content")
	}
}

func TestUpdateContentDerivesStatus(t *testing.T) {
	f := newFixture(t, &stubTextClient{err: errors.New("down")}, nil)
	slide := f.addSlide(t, 1, map[string]any{
		"main_message": "msg",
		"data_note":    types.Sentinel + ": need figures",
	})

	got, err := f.svc.UpdateContent(context.Background(), f.userID, slide.ID, map[string]any{
		"data_note": types.Sentinel + ": still need figures",
	}, nil)
	if err != nil {
		t.Fatalf("UpdateContent: %v", err)
	}
	if got.Status != types.StatusDraft {
		t.Fatalf("pending with nothing confirmed keeps status: got %s", got.Status)
	}

	got, err = f.svc.UpdateContent(context.Background(), f.userID, slide.ID, map[string]any{
		"data_note": "2024: 12.4M",
	}, []string{"data_note"})
	if err != nil {
		t.Fatalf("UpdateContent: %v", err)
	}
	if got.Status != types.StatusUserCompleted {
		t.Fatalf("want user_completed, got %s", got.Status)
	}
}

func TestGetContentReportsPendingFields(t *testing.T) {
	f := newFixture(t, &stubTextClient{err: errors.New("down")}, nil)
	slide := f.addSlide(t, 1, map[string]any{
		"main_message": "msg",
		"data_note":    types.Sentinel + ": need figures",
	})

	info, err := f.svc.GetContent(context.Background(), f.userID, slide.ID)
	if err != nil {
		t.Fatalf("GetContent: %v", err)
	}
	if len(info.PendingFields) != 1 || info.PendingFields[0] != "data_note" {
		t.Fatalf("pending fields: %v", info.PendingFields)
	}
}

func TestClassifySlideFallsBackOnBackendFailure(t *testing.T) {
	f := newFixture(t, &stubTextClient{err: errors.New("down")}, nil)
	slide := f.addSlide(t, 1, nil)

	classification, err := f.svc.ClassifySlide(context.Background(), f.userID, slide.ID)
	if err != nil {
		t.Fatalf("ClassifySlide: %v", err)
	}
	if len(classification.UserNeeded) != 1 || len(classification.AiGenerated) != 1 {
		t.Fatalf("default partition expected: %+v", classification)
	}
}
