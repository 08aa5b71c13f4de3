package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AlfonsoMarC/RogalikLessons/internal/model"
)

// LessonRepository handles lesson data access.
type LessonRepository struct {
	pool *pgxpool.Pool
}

// NewLessonRepository creates a new LessonRepository.
func NewLessonRepository(pool *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{pool: pool}
}

const lessonColumns = `l.id, l.title, l.start_at, l.end_at, l.external, l.paid, l.price,
	 l.lesson_type, l.student_id, l.group_id, s.name, g.name, l.created_at, l.updated_at`

const lessonBase = `SELECT ` + lessonColumns + `
	 FROM lessons l
	 LEFT JOIN students s ON s.id = l.student_id
	 LEFT JOIN groups g ON g.id = l.group_id`

func scanLesson(row pgx.Row) (model.Lesson, error) {
	var l model.Lesson
	err := row.Scan(
		&l.ID, &l.Title, &l.Start, &l.End, &l.External, &l.Paid, &l.Price,
		&l.Type, &l.StudentID, &l.GroupID, &l.StudentName, &l.GroupName,
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func collectLessons(rows pgx.Rows) ([]model.Lesson, error) {
	defer rows.Close()
	var lessons []model.Lesson
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

// GetByID retrieves a lesson by its ID.
func (r *LessonRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Lesson, error) {
	l, err := scanLesson(r.pool.QueryRow(ctx, lessonBase+` WHERE l.id = $1`, id))
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List retrieves all lessons ordered by start descending.
func (r *LessonRepository) List(ctx context.Context) ([]model.Lesson, error) {
	rows, err := r.pool.Query(ctx, lessonBase+` ORDER BY l.start_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectLessons(rows)
}

// ListInRange retrieves lessons whose start falls in [from, to), ordered by
// start descending. The calendar view fetches one visible window at a time.
func (r *LessonRepository) ListInRange(ctx context.Context, from, to time.Time) ([]model.Lesson, error) {
	rows, err := r.pool.Query(ctx,
		lessonBase+` WHERE l.start_at >= $1 AND l.start_at < $2 ORDER BY l.start_at DESC`,
		from, to)
	if err != nil {
		return nil, err
	}
	return collectLessons(rows)
}

// ListByStudent retrieves a student's lessons ordered by start descending.
func (r *LessonRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Lesson, error) {
	rows, err := r.pool.Query(ctx,
		lessonBase+` WHERE l.student_id = $1 ORDER BY l.start_at DESC`, studentID)
	if err != nil {
		return nil, err
	}
	return collectLessons(rows)
}

// ListByGroup retrieves a group's lessons ordered by start descending.
func (r *LessonRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]model.Lesson, error) {
	rows, err := r.pool.Query(ctx,
		lessonBase+` WHERE l.group_id = $1 ORDER BY l.start_at DESC`, groupID)
	if err != nil {
		return nil, err
	}
	return collectLessons(rows)
}

// Create inserts a new lesson.
func (r *LessonRepository) Create(ctx context.Context, l *model.Lesson) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO lessons (title, start_at, end_at, external, paid, price, lesson_type, student_id, group_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		l.Title, l.Start, l.End, l.External, l.Paid, l.Price, l.Type, l.StudentID, l.GroupID,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

// Update modifies an existing lesson.
func (r *LessonRepository) Update(ctx context.Context, l *model.Lesson) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE lessons
		 SET title = $1, start_at = $2, end_at = $3, external = $4, paid = $5,
		     price = $6, lesson_type = $7, student_id = $8, group_id = $9,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = $10`,
		l.Title, l.Start, l.End, l.External, l.Paid, l.Price, l.Type, l.StudentID, l.GroupID, l.ID,
	)
	return err
}

// Delete removes a lesson by its ID.
func (r *LessonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM lessons WHERE id = $1`, id)
	return err
}
