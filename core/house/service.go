package house

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var (
	// errors
	ErrNotFound = errors.New("house not found")
)

type (
	Repository interface {
		CreateHouse(ctx context.Context, h House) (House, error)
		QueryHouses(ctx context.Context) ([]House, error)
		GetHouse(ctx context.Context, id string) (House, error)
		UpdateHouse(ctx context.Context, h House) (House, error)
		DeleteHouse(ctx context.Context, id string) error
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

func (svc *Service) Create(ctx context.Context, nh NewHouse) (House, error) {
	now := svc.nowFunc().UTC()
	return svc.repo.CreateHouse(ctx, House{
		Name:      nh.Name,
		Colour:    nh.Colour,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (svc *Service) Query(ctx context.Context) ([]House, error) {
	return svc.repo.QueryHouses(ctx)
}

func (svc *Service) Get(ctx context.Context, id string) (House, error) {
	return svc.repo.GetHouse(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, nh NewHouse) (House, error) {
	return svc.repo.UpdateHouse(ctx, House{
		ID:        id,
		Name:      nh.Name,
		Colour:    nh.Colour,
		UpdatedAt: svc.nowFunc().UTC(),
	})
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteHouse(ctx, id)
}
