package model

import (
	"time"

	"github.com/google/uuid"
)

// Group represents a group of students taught together. Lessons attach to
// the group as a whole; the individual members are not tracked.
type Group struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GroupWithPending is a group annotated with the sum of unpaid lessons that
// have already taken place (all-time, both billing buckets).
type GroupWithPending struct {
	Group
	PendingPayment float64 `json:"pending_payment"`
}

// GroupDetail is returned by the single-group view.
type GroupDetail struct {
	Group
	Lessons        []Lesson `json:"lessons"`
	PendingPayment float64  `json:"pending_payment"`
}

// SaveGroupRequest is the payload for creating or updating a group.
type SaveGroupRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}
