// Package calendar resolves scoring weeks, entry weeks and deadlines in the
// school's timezone.
//
// Values called "wall clock" below are time.Time values whose UTC fields hold
// the local calendar fields of the school's zone. Week arithmetic is done on
// them with plain UTC date math; absolute instants are only rebuilt for
// deadlines, which are displayed to users.
package calendar

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/housepoints/core"
)

const (
	daysInWeek = 7

	// Friday 15:15: submissions at or after this instant go to the following week.
	reopenOffsetDays = 4
	reopenHour       = 15
	reopenMinute     = 15

	// Friday 14:25: informational cutoff, never enforced.
	deadlineOffsetDays = 4
	deadlineHour       = 14
	deadlineMinute     = 25
)

// Clock returns the current instant.
type Clock func() time.Time

// LoadZone loads the named timezone. Callers are expected to fail at startup on error.
func LoadZone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("timezone name is empty")
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "loading timezone %q", name)
	}
	return loc, nil
}

type Resolver struct {
	loc *time.Location
	now Clock
}

// NewResolver returns a Resolver for loc. A nil clock defaults to time.Now.
func NewResolver(loc *time.Location, now Clock) *Resolver {
	if now == nil {
		now = time.Now
	}
	return &Resolver{loc: loc, now: now}
}

func (r *Resolver) Location() *time.Location {
	return r.loc
}

// WallClock projects the instant t onto the resolver's zone.
func (r *Resolver) WallClock(t time.Time) time.Time {
	return wall(t.In(r.loc))
}

// Instant is the current absolute instant, as given by the clock.
func (r *Resolver) Instant() time.Time {
	return r.now()
}

// Now is the current instant as a wall-clock value.
func (r *Resolver) Now() time.Time {
	return r.WallClock(r.now())
}

// WeekOf returns the calendar week containing the instant t.
func (r *Resolver) WeekOf(t time.Time) core.Date {
	return WeekStart(r.WallClock(t))
}

// EntryWeekOf returns the week a submission made at the instant t is attributed to.
func (r *Resolver) EntryWeekOf(t time.Time) core.Date {
	return EntryWeekStart(r.WallClock(t))
}

func (r *Resolver) CurrentWeek() core.Date {
	return WeekStart(r.Now())
}

func (r *Resolver) CurrentEntryWeek() core.Date {
	return EntryWeekStart(r.Now())
}

// DeadlineFor returns the absolute instant of week's Friday 14:25 in the resolver's zone.
func (r *Resolver) DeadlineFor(week core.Date) time.Time {
	d := week.AddDays(deadlineOffsetDays)
	return time.Date(d.Year(), d.Month(), d.Day(), deadlineHour, deadlineMinute, 0, 0, r.loc)
}

// ReopenInstant returns ReopenAt(week) as an absolute instant.
func (r *Resolver) ReopenInstant(week core.Date) time.Time {
	w := ReopenAt(week)
	return time.Date(w.Year(), w.Month(), w.Day(), w.Hour(), w.Minute(), w.Second(), 0, r.loc)
}

// wall re-reads t's own calendar fields as UTC fields.
func wall(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
