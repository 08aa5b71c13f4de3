package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AlfonsoMarC/RogalikLessons/internal/billing"
	"github.com/AlfonsoMarC/RogalikLessons/internal/model"
	"github.com/AlfonsoMarC/RogalikLessons/internal/repository"
)

// GroupService handles group business logic.
type GroupService struct {
	groupRepo  *repository.GroupRepository
	lessonRepo *repository.LessonRepository
}

// NewGroupService creates a new GroupService.
func NewGroupService(groupRepo *repository.GroupRepository, lessonRepo *repository.LessonRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo, lessonRepo: lessonRepo}
}

// ListWithPending retrieves all groups, each annotated with the total of
// its unpaid lessons that have already taken place.
func (s *GroupService) ListWithPending(ctx context.Context) ([]model.GroupWithPending, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	lessons, err := s.lessonRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byGroup := make(map[uuid.UUID][]model.Lesson)
	for _, l := range lessons {
		if l.GroupID != nil {
			byGroup[*l.GroupID] = append(byGroup[*l.GroupID], l)
		}
	}

	now := time.Now()
	out := make([]model.GroupWithPending, 0, len(groups))
	for _, g := range groups {
		out = append(out, model.GroupWithPending{
			Group:          g,
			PendingPayment: billing.PendingTotal(byGroup[g.ID], now),
		})
	}
	return out, nil
}

// GetDetail retrieves one group with its lessons and pending total.
func (s *GroupService) GetDetail(ctx context.Context, id uuid.UUID) (*model.GroupDetail, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lessons, err := s.lessonRepo.ListByGroup(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.GroupDetail{
		Group:          *group,
		Lessons:        lessons,
		PendingPayment: billing.PendingTotal(lessons, time.Now()),
	}, nil
}

// Create creates a new group.
func (s *GroupService) Create(ctx context.Context, group *model.Group) error {
	return s.groupRepo.Create(ctx, group)
}

// Update modifies an existing group.
func (s *GroupService) Update(ctx context.Context, group *model.Group) error {
	return s.groupRepo.Update(ctx, group)
}

// Delete removes a group and, via the cascade, its lessons.
func (s *GroupService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.groupRepo.Delete(ctx, id)
}
