package term

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/housepoints/core"
	"github.com/trezcool/housepoints/core/calendar"
)

var (
	// errors
	ErrNotFound     = errors.New("term not found")
	ErrNoActiveTerm = errors.New("no active term")
)

type (
	// Repository methods taking an optional exec run on it instead of the repository's own handle.
	Repository interface {
		CreateTerm(ctx context.Context, t Term, exec ...core.DBExecutor) (Term, error)
		QueryTerms(ctx context.Context) ([]Term, error)
		GetTerm(ctx context.Context, id string, exec ...core.DBExecutor) (Term, error)
		// GetActiveTerm returns ErrNoActiveTerm when no term is flagged active.
		GetActiveTerm(ctx context.Context) (Term, error)
		UpdateTerm(ctx context.Context, t Term, exec ...core.DBExecutor) (Term, error)
		// ActivateTerm flags the term active and every other term inactive, atomically.
		ActivateTerm(ctx context.Context, id string, updatedAt time.Time, exec ...core.DBExecutor) (Term, error)
		DeleteTerm(ctx context.Context, id string) error
	}

	Service struct {
		db      core.DB
		repo    Repository
		nowFunc func() time.Time
	}
)

func NewService(db core.DB, repo Repository, nowFunc func() time.Time) *Service {
	if nowFunc == nil {
		nowFunc = time.Now
	}
	return &Service{db: db, repo: repo, nowFunc: nowFunc}
}

// Create inserts the term and, when IsActive is set, activates it in the same transaction.
func (svc *Service) Create(ctx context.Context, nt NewTerm) (Term, error) {
	now := svc.nowFunc().UTC()

	var t Term
	err := core.WithTx(ctx, svc.db, func(exec core.DBExecutor) (err error) {
		t, err = svc.repo.CreateTerm(ctx, Term{
			Name:      nt.Name,
			StartDate: nt.StartDate,
			EndDate:   nt.EndDate,
			CreatedAt: now,
			UpdatedAt: now,
		}, exec)
		if err != nil || !nt.IsActive {
			return err
		}
		t, err = svc.repo.ActivateTerm(ctx, t.ID, now, exec)
		return err
	})
	if err != nil {
		return Term{}, err
	}
	return t, nil
}

func (svc *Service) Query(ctx context.Context) ([]Term, error) {
	return svc.repo.QueryTerms(ctx)
}

func (svc *Service) Get(ctx context.Context, id string) (Term, error) {
	return svc.repo.GetTerm(ctx, id)
}

func (svc *Service) Active(ctx context.Context) (Term, error) {
	return svc.repo.GetActiveTerm(ctx)
}

// ActiveRange satisfies calendar.TermLookup.
func (svc *Service) ActiveRange(ctx context.Context) (calendar.Range, error) {
	t, err := svc.repo.GetActiveTerm(ctx)
	if err != nil {
		return calendar.Range{}, err
	}
	return t.Range(), nil
}

// Update replaces the term's fields. Setting IsActive activates it; clearing it
// leaves the active flag as is, use Activate on another term instead.
func (svc *Service) Update(ctx context.Context, id string, nt NewTerm) (Term, error) {
	now := svc.nowFunc().UTC()

	var t Term
	err := core.WithTx(ctx, svc.db, func(exec core.DBExecutor) (err error) {
		t, err = svc.repo.UpdateTerm(ctx, Term{
			ID:        id,
			Name:      nt.Name,
			StartDate: nt.StartDate,
			EndDate:   nt.EndDate,
			UpdatedAt: now,
		}, exec)
		if err != nil || !nt.IsActive || t.IsActive {
			return err
		}
		t, err = svc.repo.ActivateTerm(ctx, t.ID, now, exec)
		return err
	})
	if err != nil {
		return Term{}, err
	}
	return t, nil
}

func (svc *Service) Activate(ctx context.Context, id string) (Term, error) {
	return svc.repo.ActivateTerm(ctx, id, svc.nowFunc().UTC())
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteTerm(ctx, id)
}
