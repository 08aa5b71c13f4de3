package billing

import (
	"testing"
	"time"

	"github.com/AlfonsoMarC/RogalikLessons/internal/model"
)

var now = time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

func lesson(start, end time.Time, price float64, paid, external bool) model.Lesson {
	return model.Lesson{
		Start:    start,
		End:      end,
		Price:    price,
		Paid:     paid,
		External: external,
	}
}

func TestClassify(t *testing.T) {
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	cases := []struct {
		name string
		l    model.Lesson
		want Status
	}{
		{"PaidPast", lesson(yesterday, yesterday.Add(time.Hour), 100, true, false), StatusCollected},
		{"PaidFuture", lesson(tomorrow, tomorrow.Add(time.Hour), 100, true, false), StatusCollected},
		{"UnpaidPast", lesson(yesterday, yesterday.Add(time.Hour), 100, false, false), StatusPending},
		{"UnpaidFuture", lesson(tomorrow, tomorrow.Add(time.Hour), 100, false, false), StatusNotYetDue},
		// The due comparison is inclusive: ending exactly now counts as due.
		{"UnpaidEndsExactlyNow", lesson(now.Add(-time.Hour), now, 100, false, false), StatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.l, now); got != tc.want {
				t.Fatalf("Classify = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSummarizeMonthSingleOwnPending(t *testing.T) {
	yesterday := now.Add(-24 * time.Hour)
	lessons := []model.Lesson{
		lesson(yesterday, yesterday.Add(time.Hour), 100, false, false),
	}

	s := SummarizeMonth(lessons, 2026, time.August, now)

	want := Summary{OwnPending: 100, TotalPending: 100}
	if s != want {
		t.Fatalf("SummarizeMonth = %+v, want %+v", s, want)
	}
}

func TestSummarizeMonthMixedStatuses(t *testing.T) {
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)
	lessons := []model.Lesson{
		// Collected in the external bucket.
		lesson(yesterday, yesterday.Add(time.Hour), 50, true, true),
		// Unpaid but not finished yet: excluded from every sum.
		lesson(tomorrow, tomorrow.Add(time.Hour), 30, false, false),
	}

	s := SummarizeMonth(lessons, 2026, time.August, now)

	want := Summary{ExternalCollected: 50, TotalCollected: 50}
	if s != want {
		t.Fatalf("SummarizeMonth = %+v, want %+v", s, want)
	}
}

func TestSummarizeMonthEmpty(t *testing.T) {
	s := SummarizeMonth(nil, 2026, time.August, now)
	if s != (Summary{}) {
		t.Fatalf("expected all-zero summary, got %+v", s)
	}
}

func TestSummarizeMonthAllBuckets(t *testing.T) {
	yesterday := now.Add(-24 * time.Hour)
	lessons := []model.Lesson{
		lesson(yesterday, yesterday.Add(time.Hour), 10, false, false), // own pending
		lesson(yesterday, yesterday.Add(time.Hour), 20, true, false),  // own collected
		lesson(yesterday, yesterday.Add(time.Hour), 40, false, true),  // external pending
		lesson(yesterday, yesterday.Add(time.Hour), 80, true, true),   // external collected
	}

	s := SummarizeMonth(lessons, 2026, time.August, now)

	want := Summary{
		OwnPending:        10,
		OwnCollected:      20,
		ExternalPending:   40,
		ExternalCollected: 80,
		TotalCollected:    100,
		TotalPending:      50,
	}
	if s != want {
		t.Fatalf("SummarizeMonth = %+v, want %+v", s, want)
	}
}

func TestSummarizeMonthExcludesOtherMonths(t *testing.T) {
	july := time.Date(2026, time.July, 10, 9, 0, 0, 0, time.UTC)
	augustLastYear := time.Date(2025, time.August, 10, 9, 0, 0, 0, time.UTC)
	lessons := []model.Lesson{
		// Both lessons are collected, but start outside August 2026:
		// a different month and the same month of a different year.
		lesson(july, july.Add(time.Hour), 100, true, false),
		lesson(augustLastYear, augustLastYear.Add(time.Hour), 100, true, true),
	}

	s := SummarizeMonth(lessons, 2026, time.August, now)

	if s != (Summary{}) {
		t.Fatalf("lessons outside the month leaked into summary: %+v", s)
	}
}

func TestSummarizeMonthFiltersOnStartNotEnd(t *testing.T) {
	// A lesson starting in July and ending in August belongs to July.
	start := time.Date(2026, time.July, 31, 23, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.August, 1, 1, 0, 0, 0, time.UTC)
	lessons := []model.Lesson{lesson(start, end, 100, true, false)}

	if s := SummarizeMonth(lessons, 2026, time.August, now); s != (Summary{}) {
		t.Fatalf("lesson starting in July counted in August: %+v", s)
	}
	if s := SummarizeMonth(lessons, 2026, time.July, now); s.OwnCollected != 100 {
		t.Fatalf("lesson starting in July missing from July: %+v", s)
	}
}

func TestPendingTotal(t *testing.T) {
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	t.Run("Empty", func(t *testing.T) {
		if got := PendingTotal(nil, now); got != 0 {
			t.Fatalf("PendingTotal = %v, want 0", got)
		}
	})

	t.Run("IgnoresExternalFlag", func(t *testing.T) {
		// The per-entity figure counts unpaid due lessons from both
		// billing buckets.
		lessons := []model.Lesson{
			lesson(yesterday, yesterday.Add(time.Hour), 25, false, false),
			lesson(yesterday, yesterday.Add(time.Hour), 75, false, true),
		}
		if got := PendingTotal(lessons, now); got != 100 {
			t.Fatalf("PendingTotal = %v, want 100", got)
		}
	})

	t.Run("IgnoresMonthWindow", func(t *testing.T) {
		lastYear := now.AddDate(-1, 0, 0)
		lessons := []model.Lesson{
			lesson(lastYear, lastYear.Add(time.Hour), 60, false, false),
		}
		if got := PendingTotal(lessons, now); got != 60 {
			t.Fatalf("PendingTotal = %v, want 60", got)
		}
	})

	t.Run("SkipsPaidAndNotYetDue", func(t *testing.T) {
		lessons := []model.Lesson{
			lesson(yesterday, yesterday.Add(time.Hour), 40, true, false),
			lesson(tomorrow, tomorrow.Add(time.Hour), 55, false, false),
		}
		if got := PendingTotal(lessons, now); got != 0 {
			t.Fatalf("PendingTotal = %v, want 0", got)
		}
	})
}
