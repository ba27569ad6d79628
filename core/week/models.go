package week

import (
	"time"

	"github.com/trezcool/housepoints/core"
)

// Week is a persisted scoring week, keyed by its Monday.
type Week struct {
	ID         string    `json:"id" db:"id"`
	WeekStart  core.Date `json:"week_start" db:"week_start"`
	DeadlineAt time.Time `json:"deadline_at" db:"deadline_at"` // UTC, set at creation only
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // UTC
}

// Filter selects weeks by start date; a nil bound is open.
type Filter struct {
	From *core.Date
	To   *core.Date
}

// WeekEnd is the Sunday closing the week.
func (w Week) WeekEnd() core.Date {
	return w.WeekStart.AddDays(6)
}
