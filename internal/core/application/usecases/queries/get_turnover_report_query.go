package queries

import (
	"errors"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// MaxReportDays bounds the length of a turnover report.
const MaxReportDays = 366

var ErrGetTurnoverReportQueryIsNotConstructed = errors.New(
	"GetTurnoverReportQuery must be created via NewGetTurnoverReportQuery constructor",
)

// GetTurnoverReportQuery reports per-day turnover and order counts for the
// calendar days from begin to end inclusive, in the location of begin.
type GetTurnoverReportQuery struct {
	begin time.Time
	days  int

	guard guard.ConstructorGuard
}

func NewGetTurnoverReportQuery(begin, end time.Time) (GetTurnoverReportQuery, error) {
	if begin.IsZero() {
		return GetTurnoverReportQuery{}, errs.NewValueIsRequiredError("begin")
	}
	if end.IsZero() {
		return GetTurnoverReportQuery{}, errs.NewValueIsRequiredError("end")
	}
	first := startOfDay(begin)
	last := startOfDay(end.In(begin.Location()))
	if last.Before(first) {
		return GetTurnoverReportQuery{}, errs.NewValueIsInvalidErrorWithCause("end", errors.New("end is before begin"))
	}
	days := 1
	for d := first; d.Before(last); d = d.AddDate(0, 0, 1) {
		days++
		if days > MaxReportDays {
			return GetTurnoverReportQuery{}, errs.NewValueIsOutOfRangeError("days", days, 1, MaxReportDays)
		}
	}
	return GetTurnoverReportQuery{begin: first, days: days, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTurnoverReportQuery) Validate() error {
	return q.guard.Validate(ErrGetTurnoverReportQueryIsNotConstructed)
}

// Days returns the first instant of every reported day.
func (q GetTurnoverReportQuery) Days() []time.Time {
	days := make([]time.Time, 0, q.days)
	for i := range q.days {
		days = append(days, q.begin.AddDate(0, 0, i))
	}
	return days
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
