package placement

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/institute-cms/internal/application/asset"
	"github.com/institute-cms/internal/domain"
	"github.com/institute-cms/internal/pkg/id"
	"github.com/institute-cms/internal/pkg/validate"
)

type Service interface {
	List(ctx context.Context) ([]domain.Placement, error)
	Get(ctx context.Context, placementID string) (*domain.Placement, error)
	Create(ctx context.Context, req domain.CreatePlacementRequest, image *asset.Upload) (*domain.Placement, error)
	Update(ctx context.Context, placementID string, req domain.UpdatePlacementRequest, image *asset.Upload) (*domain.Placement, error)
	Delete(ctx context.Context, placementID string) error
}

type placementStore interface {
	Put(ctx context.Context, p *domain.Placement) error
	Replace(ctx context.Context, p *domain.Placement) error
	Get(ctx context.Context, id string) (*domain.Placement, error)
	List(ctx context.Context) ([]domain.Placement, error)
	Delete(ctx context.Context, id string) error
}

type assetManager interface {
	Create(ctx context.Context, kind domain.AssetKind, up *asset.Upload, commit func(domain.Asset) error) (*domain.Asset, error)
	Replace(ctx context.Context, oldKey string, kind domain.AssetKind, up *asset.Upload, commit func(domain.Asset) error) (*domain.Asset, error)
	Delete(ctx context.Context, key string)
}

type service struct {
	repo   placementStore
	assets assetManager
}

type ServiceDeps struct {
	PlacementRepo placementStore
	Assets        assetManager
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.PlacementRepo, assets: deps.Assets}
}

// List returns the newest placements first.
func (s *service) List(ctx context.Context) ([]domain.Placement, error) {
	placements, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(placements, func(i, j int) bool {
		return placements[i].CreatedAt.After(placements[j].CreatedAt)
	})
	return placements, nil
}

func (s *service) Get(ctx context.Context, placementID string) (*domain.Placement, error) {
	return s.repo.Get(ctx, placementID)
}

func (s *service) Create(ctx context.Context, req domain.CreatePlacementRequest, image *asset.Upload) (*domain.Placement, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if image == nil {
		return nil, fmt.Errorf("image is required: %w", domain.ErrBadRequest)
	}
	now := time.Now().UTC()
	p := &domain.Placement{
		PlacementID: id.New(),
		Name:        req.Name,
		CompanyName: req.CompanyName,
		PostName:    req.PostName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err := s.assets.Create(ctx, domain.AssetPlacement, image, func(a domain.Asset) error {
		p.Image = a
		return s.repo.Put(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, placementID string, req domain.UpdatePlacementRequest, image *asset.Upload) (*domain.Placement, error) {
	p, err := s.repo.Get(ctx, placementID)
	if err != nil {
		return nil, err
	}
	apply(&p.Name, req.Name)
	apply(&p.CompanyName, req.CompanyName)
	apply(&p.PostName, req.PostName)
	p.UpdatedAt = time.Now().UTC()

	if image == nil {
		if err := s.repo.Replace(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	}
	_, err = s.assets.Replace(ctx, p.Image.Key, domain.AssetPlacement, image, func(a domain.Asset) error {
		p.Image = a
		return s.repo.Replace(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, placementID string) error {
	p, err := s.repo.Get(ctx, placementID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, placementID); err != nil {
		return err
	}
	s.assets.Delete(ctx, p.Image.Key)
	return nil
}

func apply(dst *string, v *string) {
	if v != nil && strings.TrimSpace(*v) != "" {
		*dst = *v
	}
}
