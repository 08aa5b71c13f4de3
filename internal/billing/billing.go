// Package billing computes payment figures from lesson records. Everything
// here is a pure function of its inputs: the caller fetches the lessons and
// injects the clock, so results are reproducible and the package does no I/O.
package billing

import (
	"time"

	"github.com/AlfonsoMarC/RogalikLessons/internal/model"
)

// Status classifies a lesson's payment state at a given instant.
type Status int

const (
	// StatusCollected — the lesson has been paid.
	StatusCollected Status = iota
	// StatusPending — unpaid and already finished, so payment is due.
	StatusPending
	// StatusNotYetDue — unpaid but the lesson has not finished yet.
	StatusNotYetDue
)

// Summary is the monthly aggregation result. It is never persisted; it is
// recomputed from current lesson data on every call.
type Summary struct {
	OwnPending        float64 `json:"own_pending"`
	OwnCollected      float64 `json:"own_collected"`
	ExternalPending   float64 `json:"external_pending"`
	ExternalCollected float64 `json:"external_collected"`
	TotalCollected    float64 `json:"total_collected"`
	TotalPending      float64 `json:"total_pending"`
}

// Classify returns the payment status of a single lesson at instant now.
// A lesson ending exactly at now counts as due (the comparison is inclusive).
func Classify(l model.Lesson, now time.Time) Status {
	if l.Paid {
		return StatusCollected
	}
	if !l.End.After(now) {
		return StatusPending
	}
	return StatusNotYetDue
}

// SummarizeMonth aggregates the lessons whose start falls within the given
// calendar month into the four bucket sums and their totals. Unpaid lessons
// that have not finished yet are excluded from every sum. Lessons outside
// the month are ignored regardless of status.
func SummarizeMonth(lessons []model.Lesson, year int, month time.Month, now time.Time) Summary {
	var s Summary
	for _, l := range lessons {
		if l.Start.Year() != year || l.Start.Month() != month {
			continue
		}
		switch Classify(l, now) {
		case StatusCollected:
			if l.External {
				s.ExternalCollected += l.Price
			} else {
				s.OwnCollected += l.Price
			}
		case StatusPending:
			if l.External {
				s.ExternalPending += l.Price
			} else {
				s.OwnPending += l.Price
			}
		}
	}
	s.TotalCollected = s.OwnCollected + s.ExternalCollected
	s.TotalPending = s.OwnPending + s.ExternalPending
	return s
}

// PendingTotal sums every lesson that is unpaid and already due, with no
// month window and no own/external split. This is the per-student and
// per-group "pending payment" figure.
func PendingTotal(lessons []model.Lesson, now time.Time) float64 {
	var total float64
	for _, l := range lessons {
		if Classify(l, now) == StatusPending {
			total += l.Price
		}
	}
	return total
}
