package model

import (
	"time"

	"github.com/google/uuid"
)

// Student represents one tutored student.
type Student struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StudentWithPending is a student annotated with the sum of unpaid lessons
// that have already taken place (all-time, both billing buckets).
type StudentWithPending struct {
	Student
	PendingPayment float64 `json:"pending_payment"`
}

// StudentDetail is returned by the single-student view: the student, its
// lessons ordered most recent first, and the pending total.
type StudentDetail struct {
	Student
	Lessons        []Lesson `json:"lessons"`
	PendingPayment float64  `json:"pending_payment"`
}

// SaveStudentRequest is the payload for creating or updating a student.
type SaveStudentRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}
