package banner

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/institute-cms/internal/application/asset"
	"github.com/institute-cms/internal/domain"
	"github.com/institute-cms/internal/pkg/id"
)

type Service interface {
	List(ctx context.Context) ([]domain.Banner, error)
	Get(ctx context.Context, bannerID string) (*domain.Banner, error)
	Create(ctx context.Context, image *asset.Upload) (*domain.Banner, error)
	Update(ctx context.Context, bannerID string, image *asset.Upload) (*domain.Banner, error)
	Delete(ctx context.Context, bannerID string) error
}

type bannerStore interface {
	Put(ctx context.Context, b *domain.Banner) error
	Replace(ctx context.Context, b *domain.Banner) error
	Get(ctx context.Context, id string) (*domain.Banner, error)
	List(ctx context.Context) ([]domain.Banner, error)
	Delete(ctx context.Context, id string) error
}

type assetManager interface {
	Create(ctx context.Context, kind domain.AssetKind, up *asset.Upload, commit func(domain.Asset) error) (*domain.Asset, error)
	Replace(ctx context.Context, oldKey string, kind domain.AssetKind, up *asset.Upload, commit func(domain.Asset) error) (*domain.Asset, error)
	Delete(ctx context.Context, key string)
}

type service struct {
	repo   bannerStore
	assets assetManager
}

type ServiceDeps struct {
	BannerRepo bannerStore
	Assets     assetManager
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.BannerRepo, assets: deps.Assets}
}

func (s *service) List(ctx context.Context) ([]domain.Banner, error) {
	banners, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(banners, func(i, j int) bool {
		return banners[i].CreatedAt.After(banners[j].CreatedAt)
	})
	return banners, nil
}

func (s *service) Get(ctx context.Context, bannerID string) (*domain.Banner, error) {
	return s.repo.Get(ctx, bannerID)
}

func (s *service) Create(ctx context.Context, image *asset.Upload) (*domain.Banner, error) {
	if image == nil {
		return nil, fmt.Errorf("image is required: %w", domain.ErrBadRequest)
	}
	now := time.Now().UTC()
	b := &domain.Banner{BannerID: id.New(), CreatedAt: now, UpdatedAt: now}
	_, err := s.assets.Create(ctx, domain.AssetBanner, image, func(a domain.Asset) error {
		b.Image = a
		return s.repo.Put(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Update swaps the banner image. A banner has no other editable fields, so
// the image is required.
func (s *service) Update(ctx context.Context, bannerID string, image *asset.Upload) (*domain.Banner, error) {
	if image == nil {
		return nil, fmt.Errorf("image is required: %w", domain.ErrBadRequest)
	}
	b, err := s.repo.Get(ctx, bannerID)
	if err != nil {
		return nil, err
	}
	b.UpdatedAt = time.Now().UTC()
	_, err = s.assets.Replace(ctx, b.Image.Key, domain.AssetBanner, image, func(a domain.Asset) error {
		b.Image = a
		return s.repo.Replace(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, bannerID string) error {
	b, err := s.repo.Get(ctx, bannerID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, bannerID); err != nil {
		return err
	}
	s.assets.Delete(ctx, b.Image.Key)
	return nil
}
