package course

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
	List(ctx context.Context) ([]domain.Course, error)
	Get(ctx context.Context, courseID string) (*domain.Course, error)
	Create(ctx context.Context, req domain.CreateCourseRequest, image *asset.Upload) (*domain.Course, error)
	Update(ctx context.Context, courseID string, req domain.UpdateCourseRequest, image *asset.Upload) (*domain.Course, error)
	Delete(ctx context.Context, courseID string) error
}

type courseStore interface {
	Put(ctx context.Context, c *domain.Course) error
	Replace(ctx context.Context, c *domain.Course) error
	Get(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
	Delete(ctx context.Context, id string) error
}

type assetManager interface {
	Create(ctx context.Context, kind domain.AssetKind, up *asset.Upload, commit func(domain.Asset) error) (*domain.Asset, error)
	Replace(ctx context.Context, oldKey string, kind domain.AssetKind, up *asset.Upload, commit func(domain.Asset) error) (*domain.Asset, error)
	Delete(ctx context.Context, key string)
}

type service struct {
	repo   courseStore
	assets assetManager
}

type ServiceDeps struct {
	CourseRepo courseStore
	Assets     assetManager
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.CourseRepo, assets: deps.Assets}
}

// List returns courses in the order they were added.
func (s *service) List(ctx context.Context) ([]domain.Course, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(courses, func(i, j int) bool {
		return courses[i].CreatedAt.Before(courses[j].CreatedAt)
	})
	return courses, nil
}

func (s *service) Get(ctx context.Context, courseID string) (*domain.Course, error) {
	return s.repo.Get(ctx, courseID)
}

func (s *service) Create(ctx context.Context, req domain.CreateCourseRequest, image *asset.Upload) (*domain.Course, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if image == nil {
		return nil, fmt.Errorf("image is required: %w", domain.ErrBadRequest)
	}
	now := time.Now().UTC()
	c := &domain.Course{
		CourseID:    id.New(),
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Category:    req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err := s.assets.Create(ctx, domain.AssetCourse, image, func(a domain.Asset) error {
		c.Image = a
		return s.repo.Put(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Update applies the non-empty fields of req and, when image is given,
// swaps the course image.
func (s *service) Update(ctx context.Context, courseID string, req domain.UpdateCourseRequest, image *asset.Upload) (*domain.Course, error) {
	c, err := s.repo.Get(ctx, courseID)
	if err != nil {
		return nil, err
	}
	apply(&c.Title, req.Title)
	apply(&c.Description, req.Description)
	apply(&c.Duration, req.Duration)
	apply(&c.Category, req.Category)
	c.UpdatedAt = time.Now().UTC()

	if image == nil {
		if err := s.repo.Replace(ctx, c); err != nil {
			return nil, err
		}
		return c, nil
	}
	_, err = s.assets.Replace(ctx, c.Image.Key, domain.AssetCourse, image, func(a domain.Asset) error {
		c.Image = a
		return s.repo.Replace(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, courseID string) error {
	c, err := s.repo.Get(ctx, courseID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, courseID); err != nil {
		return err
	}
	s.assets.Delete(ctx, c.Image.Key)
	return nil
}

func apply(dst *string, v *string) {
	if v != nil && strings.TrimSpace(*v) != "" {
		*dst = *v
	}
}
