package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AlfonsoMarC/RogalikLessons/internal/model"
	"github.com/AlfonsoMarC/RogalikLessons/internal/repository"
)

// LessonService handles lesson business logic.
type LessonService struct {
	lessonRepo *repository.LessonRepository
}

// NewLessonService creates a new LessonService.
func NewLessonService(lessonRepo *repository.LessonRepository) *LessonService {
	return &LessonService{lessonRepo: lessonRepo}
}

// GetByID retrieves a lesson by its ID.
func (s *LessonService) GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	return s.lessonRepo.GetByID(ctx, id)
}

// List retrieves all lessons, most recent first.
func (s *LessonService) List(ctx context.Context) ([]model.Lesson, error) {
	return s.lessonRepo.List(ctx)
}

// ListInRange retrieves the lessons starting within [from, to).
func (s *LessonService) ListInRange(ctx context.Context, from, to time.Time) ([]model.Lesson, error) {
	return s.lessonRepo.ListInRange(ctx, from, to)
}

// Create creates a new lesson. The caller guarantees the student/group
// reference matches the lesson type; the DB check constraint backs that up.
func (s *LessonService) Create(ctx context.Context, lesson *model.Lesson) error {
	return s.lessonRepo.Create(ctx, lesson)
}

// Update modifies an existing lesson.
func (s *LessonService) Update(ctx context.Context, lesson *model.Lesson) error {
	return s.lessonRepo.Update(ctx, lesson)
}

// Delete removes a lesson.
func (s *LessonService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.lessonRepo.Delete(ctx, id)
}
