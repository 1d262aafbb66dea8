package repos

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/deckforge-backend/internal/types"
)

// In-memory adapters behind the same repo interfaces, for tests and local
// runs without a database. The tx argument is ignored. These replace the
// process-wide singleton stores the first iteration of the product relied
// on; nothing outside a test should construct them implicitly.

type memoryProjectRepo struct {
	mu       sync.Mutex
	projects map[uuid.UUID]types.Project
}

func NewMemoryProjectRepo() ProjectRepo {
	return &memoryProjectRepo{projects: map[uuid.UUID]types.Project{}}
}

var _ ProjectRepo = (*memoryProjectRepo)(nil)

func (mr *memoryProjectRepo) Create(ctx context.Context, tx *gorm.DB, project *types.Project) (*types.Project, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	mr.projects[project.ID] = *project
	return project, nil
}

func (mr *memoryProjectRepo) GetByID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) (*types.Project, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	p, ok := mr.projects[projectID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (mr *memoryProjectRepo) GetForUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Project, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	var results []*types.Project
	for _, p := range mr.projects {
		if p.UserID == userID {
			cp := p
			results = append(results, &cp)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})
	return results, nil
}

func (mr *memoryProjectRepo) Update(ctx context.Context, tx *gorm.DB, project *types.Project) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	if _, ok := mr.projects[project.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	mr.projects[project.ID] = *project
	return nil
}

func (mr *memoryProjectRepo) Delete(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	delete(mr.projects, projectID)
	return nil
}

type memorySlideRepo struct {
	mu     sync.Mutex
	slides map[uuid.UUID]types.Slide
}

func NewMemorySlideRepo() SlideRepo {
	return &memorySlideRepo{slides: map[uuid.UUID]types.Slide{}}
}

var _ SlideRepo = (*memorySlideRepo)(nil)

func (mr *memorySlideRepo) Create(ctx context.Context, tx *gorm.DB, slide *types.Slide) (*types.Slide, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	if slide.ID == uuid.Nil {
		slide.ID = uuid.New()
	}
	mr.slides[slide.ID] = *slide
	return slide, nil
}

func (mr *memorySlideRepo) GetByID(ctx context.Context, tx *gorm.DB, slideID uuid.UUID) (*types.Slide, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	s, ok := mr.slides[slideID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &s, nil
}

func (mr *memorySlideRepo) GetForProject(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Slide, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	var results []*types.Slide
	for _, s := range mr.slides {
		if s.ProjectID == projectID {
			cp := s
			results = append(results, &cp)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].OrderIndex < results[j].OrderIndex
	})
	return results, nil
}

func (mr *memorySlideRepo) Update(ctx context.Context, tx *gorm.DB, slide *types.Slide) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	if _, ok := mr.slides[slide.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	mr.slides[slide.ID] = *slide
	return nil
}

func (mr *memorySlideRepo) UpdateContent(ctx context.Context, tx *gorm.DB, slideID uuid.UUID, content map[string]any, status types.SlideStatus) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	s, ok := mr.slides[slideID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if err := s.SetContent(content); err != nil {
		return err
	}
	s.Status = status
	mr.slides[slideID] = s
	return nil
}

func (mr *memorySlideRepo) Delete(ctx context.Context, tx *gorm.DB, slideID uuid.UUID) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	delete(mr.slides, slideID)
	return nil
}

type memoryGenerationLogRepo struct {
	mu      sync.Mutex
	entries []types.GenerationLog
}

func NewMemoryGenerationLogRepo() GenerationLogRepo {
	return &memoryGenerationLogRepo{}
}

var _ GenerationLogRepo = (*memoryGenerationLogRepo)(nil)

func (mr *memoryGenerationLogRepo) Create(ctx context.Context, tx *gorm.DB, entry *types.GenerationLog) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	mr.entries = append(mr.entries, *entry)
	return nil
}
