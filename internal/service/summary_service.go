package service

import (
	"context"
	"time"

	"github.com/AlfonsoMarC/RogalikLessons/internal/billing"
	"github.com/AlfonsoMarC/RogalikLessons/internal/repository"
)

// SummaryService produces the monthly income summary.
type SummaryService struct {
	lessonRepo *repository.LessonRepository
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(lessonRepo *repository.LessonRepository) *SummaryService {
	return &SummaryService{lessonRepo: lessonRepo}
}

// Monthly aggregates all lessons for one calendar month into the pending and
// collected totals, split between the tutor's own bucket and the external
// one. The figures are recomputed from current data on every call.
func (s *SummaryService) Monthly(ctx context.Context, year int, month time.Month) (billing.Summary, error) {
	lessons, err := s.lessonRepo.List(ctx)
	if err != nil {
		return billing.Summary{}, err
	}
	return billing.SummarizeMonth(lessons, year, month, time.Now()), nil
}
