package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AlfonsoMarC/RogalikLessons/internal/billing"
	"github.com/AlfonsoMarC/RogalikLessons/internal/model"
	"github.com/AlfonsoMarC/RogalikLessons/internal/repository"
)

// StudentService handles student business logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
	lessonRepo  *repository.LessonRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository, lessonRepo *repository.LessonRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo, lessonRepo: lessonRepo}
}

// ListWithPending retrieves all students, each annotated with the total of
// its unpaid lessons that have already taken place.
func (s *StudentService) ListWithPending(ctx context.Context) ([]model.StudentWithPending, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	lessons, err := s.lessonRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byStudent := make(map[uuid.UUID][]model.Lesson)
	for _, l := range lessons {
		if l.StudentID != nil {
			byStudent[*l.StudentID] = append(byStudent[*l.StudentID], l)
		}
	}

	now := time.Now()
	out := make([]model.StudentWithPending, 0, len(students))
	for _, st := range students {
		out = append(out, model.StudentWithPending{
			Student:        st,
			PendingPayment: billing.PendingTotal(byStudent[st.ID], now),
		})
	}
	return out, nil
}

// GetDetail retrieves one student with its lessons and pending total.
func (s *StudentService) GetDetail(ctx context.Context, id uuid.UUID) (*model.StudentDetail, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lessons, err := s.lessonRepo.ListByStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.StudentDetail{
		Student:        *student,
		Lessons:        lessons,
		PendingPayment: billing.PendingTotal(lessons, time.Now()),
	}, nil
}

// Create creates a new student.
func (s *StudentService) Create(ctx context.Context, student *model.Student) error {
	return s.studentRepo.Create(ctx, student)
}

// Update modifies an existing student.
func (s *StudentService) Update(ctx context.Context, student *model.Student) error {
	return s.studentRepo.Update(ctx, student)
}

// Delete removes a student and, via the cascade, its lessons.
func (s *StudentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.studentRepo.Delete(ctx, id)
}
