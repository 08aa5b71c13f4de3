package model

import (
	"time"

	"github.com/google/uuid"
)

// LessonType says whether a lesson belongs to a single student or a group.
type LessonType string

const (
	LessonTypeStudent LessonType = "student"
	LessonTypeGroup   LessonType = "group"
)

// Lesson is one scheduled class. Exactly one of StudentID/GroupID is set,
// matching Type. External marks lessons billed under the second-party
// revenue bucket instead of the tutor's own.
type Lesson struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Start     time.Time  `json:"start"`
	End       time.Time  `json:"end"`
	External  bool       `json:"external"`
	Paid      bool       `json:"paid"`
	Price     float64    `json:"price"`
	Type      LessonType `json:"type"`
	StudentID *uuid.UUID `json:"student_id,omitempty"`
	GroupID   *uuid.UUID `json:"group_id,omitempty"`
	// StudentName/GroupName are joined in by the list queries for display.
	StudentName *string   `json:"student_name,omitempty"`
	GroupName   *string   `json:"group_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SaveLessonRequest is the payload for creating or updating a lesson.
// StudentID is required for student lessons, GroupID for group lessons;
// the handler clears whichever reference does not match Type.
type SaveLessonRequest struct {
	Title     string     `json:"title" binding:"omitempty,max=200"`
	Start     time.Time  `json:"start" binding:"required"`
	End       time.Time  `json:"end" binding:"required,gtfield=Start"`
	External  bool       `json:"external"`
	Paid      bool       `json:"paid"`
	Price     *float64   `json:"price" binding:"required,min=0"`
	Type      LessonType `json:"type" binding:"required,oneof=student group"`
	StudentID *uuid.UUID `json:"student_id" binding:"required_if=Type student"`
	GroupID   *uuid.UUID `json:"group_id" binding:"required_if=Type group"`
}

// Lesson builds a Lesson value from the request, keeping only the entity
// reference that matches Type.
func (r *SaveLessonRequest) Lesson() *Lesson {
	l := &Lesson{
		Title:    r.Title,
		Start:    r.Start,
		End:      r.End,
		External: r.External,
		Paid:     r.Paid,
		Price:    *r.Price,
		Type:     r.Type,
	}
	switch r.Type {
	case LessonTypeStudent:
		l.StudentID = r.StudentID
	case LessonTypeGroup:
		l.GroupID = r.GroupID
	}
	return l
}
