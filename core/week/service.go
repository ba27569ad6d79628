package week

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/core/calendar"
)

var (
	// errors
	ErrNotFound  = errors.New("week not found")
	ErrNotMonday = errors.New("a week must start on a Monday")
)

type (
	Repository interface {
		// InsertWeekIfAbsent inserts wk unless a week with the same WeekStart exists.
		// A duplicate is not an error.
		InsertWeekIfAbsent(ctx context.Context, wk Week) error
		GetWeekByStart(ctx context.Context, start core.Date) (Week, error)
		GetWeekByID(ctx context.Context, id string) (Week, error)
		// QueryWeeks returns weeks by descending start.
		QueryWeeks(ctx context.Context, filter Filter) ([]Week, error)
	}

	Service struct {
		repo Repository
		cal  *calendar.Resolver
	}
)

func NewService(repo Repository, cal *calendar.Resolver) *Service {
	return &Service{repo: repo, cal: cal}
}

// Ensure returns the week starting on start, creating it first if needed.
// The deadline of an existing week is never recomputed.
func (svc *Service) Ensure(ctx context.Context, start core.Date) (Week, error) {
	if !calendar.IsWeekStart(start) {
		return Week{}, core.NewValidationError(ErrNotMonday, core.FieldError{Field: "week_start", Error: ErrNotMonday.Error()})
	}

	wk := Week{
		WeekStart:  start,
		DeadlineAt: svc.cal.DeadlineFor(start).UTC(),
		CreatedAt:  svc.cal.Instant().UTC(),
	}
	if err := svc.repo.InsertWeekIfAbsent(ctx, wk); err != nil {
		return Week{}, errors.Wrap(err, "inserting week")
	}

	// read back unconditionally: a concurrent caller may have won the insert
	wk, err := svc.repo.GetWeekByStart(ctx, start)
	if err != nil {
		return Week{}, errors.Wrap(err, "reading week back")
	}
	return wk, nil
}

// Current ensures the calendar week containing now.
func (svc *Service) Current(ctx context.Context) (Week, error) {
	return svc.Ensure(ctx, svc.cal.CurrentWeek())
}

// EntryWeek ensures the week new submissions are attributed to.
func (svc *Service) EntryWeek(ctx context.Context) (Week, error) {
	return svc.Ensure(ctx, svc.cal.CurrentEntryWeek())
}

func (svc *Service) GetByStart(ctx context.Context, start core.Date) (Week, error) {
	return svc.repo.GetWeekByStart(ctx, start)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Week, error) {
	return svc.repo.GetWeekByID(ctx, id)
}

func (svc *Service) Query(ctx context.Context, filter Filter) ([]Week, error) {
	return svc.repo.QueryWeeks(ctx, filter)
}
