package entry

import (
	"context"

	"github.com/pkg/errors"

	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/core/calendar"
	"github.com/trezcool/housepoints/core/classroom"
	"github.com/trezcool/housepoints/core/house"
	"github.com/trezcool/housepoints/core/week"
)

var (
	// errors
	ErrNotFound = errors.New("entry not found")
)

type (
	Repository interface {
		// UpsertEntry inserts e, or replaces points, notes, category and submitter
		// of the existing entry for the same (week, class, house).
		UpsertEntry(ctx context.Context, e Entry) (Entry, error)
		QueryEntries(ctx context.Context, filter Filter) ([]Entry, error)
		GetEntry(ctx context.Context, id string) (Entry, error)
		DeleteEntriesByID(ctx context.Context, ids ...string) error
		// HouseTotals sums points per house over weeks starting within rg,
		// every house is listed, ordered by points desc then name.
		HouseTotals(ctx context.Context, rg calendar.Range) ([]HouseTotal, error)
	}

	Service struct {
		repo    Repository
		weeks   *week.Service
		houses  *house.Service
		classes *classroom.Service
		cal     *calendar.Resolver
		terms   calendar.TermLookup
		logger  core.Logger
	}
)

func NewService(
	repo Repository,
	weeks *week.Service,
	houses *house.Service,
	classes *classroom.Service,
	cal *calendar.Resolver,
	terms calendar.TermLookup,
	logger core.Logger,
) *Service {
	return &Service{
		repo:    repo,
		weeks:   weeks,
		houses:  houses,
		classes: classes,
		cal:     cal,
		terms:   terms,
		logger:  logger,
	}
}

// Submit stores ne against the entry week of the current instant.
// Late submissions are accepted; the Submission only reports them.
func (svc *Service) Submit(ctx context.Context, ne NewEntry) (Submission, error) {
	now := svc.cal.Instant()

	if _, err := svc.houses.Get(ctx, ne.HouseID); err != nil {
		if errors.Cause(err) == house.ErrNotFound {
			return Submission{}, core.NewValidationError(err, core.FieldError{Field: "house_id", Error: "unknown house"})
		}
		return Submission{}, err
	}
	if _, err := svc.classes.Get(ctx, ne.ClassID); err != nil {
		if errors.Cause(err) == classroom.ErrNotFound {
			return Submission{}, core.NewValidationError(err, core.FieldError{Field: "class_id", Error: "unknown class"})
		}
		return Submission{}, err
	}

	wk, err := svc.weeks.Ensure(ctx, svc.cal.EntryWeekOf(now))
	if err != nil {
		return Submission{}, errors.Wrap(err, "ensuring entry week")
	}

	e, err := svc.repo.UpsertEntry(ctx, Entry{
		WeekID:      wk.ID,
		WeekStart:   wk.WeekStart,
		ClassID:     ne.ClassID,
		HouseID:     ne.HouseID,
		Points:      ne.Points,
		Notes:       ne.Notes,
		Category:    ne.Category,
		SubmittedBy: ne.SubmittedBy,
		SubmittedAt: now.UTC(),
	})
	if err != nil {
		return Submission{}, err
	}

	deadline := svc.cal.DeadlineFor(wk.WeekStart)
	return Submission{
		Entry:        e,
		Deadline:     deadline,
		PastDeadline: now.After(deadline),
	}, nil
}

// QueryByWeek lists the entries of the week starting on start.
// A zero start means the current calendar week, which is created if missing.
func (svc *Service) QueryByWeek(ctx context.Context, start core.Date) ([]Entry, error) {
	var (
		wk  week.Week
		err error
	)
	if start.IsZero() {
		wk, err = svc.weeks.Current(ctx)
	} else {
		wk, err = svc.weeks.GetByStart(ctx, start)
		if errors.Cause(err) == week.ErrNotFound {
			return []Entry{}, nil
		}
	}
	if err != nil {
		return nil, err
	}
	return svc.repo.QueryEntries(ctx, Filter{WeekID: wk.ID})
}

func (svc *Service) Get(ctx context.Context, id string) (Entry, error) {
	return svc.repo.GetEntry(ctx, id)
}

// Delete removes entries; their weeks are left untouched.
func (svc *Service) Delete(ctx context.Context, ids ...string) error {
	return svc.repo.DeleteEntriesByID(ctx, ids...)
}

// Scoreboard totals points per house over the period's range.
func (svc *Service) Scoreboard(ctx context.Context, period calendar.Period) (Scoreboard, error) {
	rg, err := svc.cal.PeriodRange(ctx, period, svc.terms, svc.logger)
	if err != nil {
		return Scoreboard{}, err
	}
	if period == calendar.PeriodWeek {
		if _, err := svc.weeks.Current(ctx); err != nil {
			return Scoreboard{}, errors.Wrap(err, "ensuring current week")
		}
	}

	totals, err := svc.repo.HouseTotals(ctx, rg)
	if err != nil {
		return Scoreboard{}, err
	}
	return Scoreboard{Period: period, Range: rg, Houses: totals}, nil
}
