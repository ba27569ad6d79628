package classroom

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound = errors.New("class not found")
)

type (
	Repository interface {
		CreateClass(ctx context.Context, c Class) (Class, error)
		QueryClasses(ctx context.Context) ([]Class, error)
		GetClass(ctx context.Context, id string) (Class, error)
		UpdateClass(ctx context.Context, c Class) (Class, error)
		DeleteClass(ctx context.Context, id string) error
	}

	Service struct {
		repo    Repository
		nowFunc func() time.Time
	}
)

func NewService(repo Repository, nowFunc func() time.Time) *Service {
	if nowFunc == nil {
		nowFunc = time.Now
	}
	return &Service{repo: repo, nowFunc: nowFunc}
}

func (svc *Service) Create(ctx context.Context, nc NewClass) (Class, error) {
	now := svc.nowFunc().UTC()
	return svc.repo.CreateClass(ctx, Class{
		Name:         nc.Name,
		TeacherEmail: nc.TeacherEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (svc *Service) Query(ctx context.Context) ([]Class, error) {
	return svc.repo.QueryClasses(ctx)
}

func (svc *Service) Get(ctx context.Context, id string) (Class, error) {
	return svc.repo.GetClass(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, nc NewClass) (Class, error) {
	return svc.repo.UpdateClass(ctx, Class{
		ID:           id,
		Name:         nc.Name,
		TeacherEmail: nc.TeacherEmail,
		UpdatedAt:    svc.nowFunc().UTC(),
	})
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteClass(ctx, id)
}
