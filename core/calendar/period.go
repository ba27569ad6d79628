package calendar

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/housepoints/core"
)

type Period string

const (
	PeriodWeek Period = "week"
	PeriodTerm Period = "term"
)

var (
	ErrInvalidPeriod = errors.New("period must be one of: week, term")

	errEmptyTermRange = errors.New("active term has no date range")
)

// ParsePeriod defaults to PeriodWeek when s is blank.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(core.CleanString(s, true /* lower */)); p {
	case "":
		return PeriodWeek, nil
	case PeriodWeek, PeriodTerm:
		return p, nil
	default:
		return "", ErrInvalidPeriod
	}
}

// Range is an inclusive date range.
type Range struct {
	Start core.Date `json:"start"`
	End   core.Date `json:"end"`
}

func (rg Range) Contains(d core.Date) bool {
	return !d.Before(rg.Start) && !d.After(rg.End)
}

// TermLookup returns the date range of the active term.
type TermLookup func(ctx context.Context) (Range, error)

// WeekRange returns Monday to Sunday of the calendar week containing the wall-clock value ref.
func WeekRange(ref time.Time) Range {
	start := WeekStart(ref)
	return Range{Start: start, End: start.AddDays(daysInWeek - 1)}
}

// ResolvePeriodRange returns the aggregation window for period.
// A failed or empty term lookup is logged and answered with the week range.
func ResolvePeriodRange(ctx context.Context, period Period, ref time.Time, lookup TermLookup, logger core.Logger) (Range, error) {
	switch period {
	case PeriodWeek:
		return WeekRange(ref), nil
	case PeriodTerm:
		if lookup == nil {
			return WeekRange(ref), nil
		}
		rg, err := lookup(ctx)
		if err == nil && (rg.Start.IsZero() || rg.End.IsZero()) {
			err = errEmptyTermRange
		}
		if err != nil {
			if logger != nil {
				logger.Warn("active term lookup failed, using the current week", errors.Wrap(err, "looking up active term"))
			}
			return WeekRange(ref), nil
		}
		return rg, nil
	default:
		return Range{}, ErrInvalidPeriod
	}
}

// PeriodRange resolves period against the current wall clock.
func (r *Resolver) PeriodRange(ctx context.Context, period Period, lookup TermLookup, logger core.Logger) (Range, error) {
	return ResolvePeriodRange(ctx, period, r.Now(), lookup, logger)
}
