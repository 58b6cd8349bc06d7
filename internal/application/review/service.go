package review

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/institute-cms/internal/domain"
	"github.com/institute-cms/internal/pkg/id"
	"github.com/institute-cms/internal/pkg/validate"
)

type Service interface {
	List(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, req domain.CreateReviewRequest) (*domain.Review, error)
	Delete(ctx context.Context, reviewID string) error
}

type reviewStore interface {
	Put(ctx context.Context, r *domain.Review) error
	List(ctx context.Context) ([]domain.Review, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo reviewStore
	now  func() time.Time
}

type ServiceDeps struct {
	ReviewRepo reviewStore
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.ReviewRepo, now: time.Now}
}

// List returns the newest reviews first. IDs are ULIDs, so id order is
// creation order.
func (s *service) List(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].ReviewID > reviews[j].ReviewID
	})
	return reviews, nil
}

func (s *service) Create(ctx context.Context, req domain.CreateReviewRequest) (*domain.Review, error) {
	req.Reviewer = strings.TrimSpace(req.Reviewer)
	req.Review = strings.TrimSpace(req.Review)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	r := &domain.Review{
		ReviewID:  id.New(),
		Reviewer:  req.Reviewer,
		Rating:    req.Rating,
		Review:    req.Review,
		Date:      now.Format(domain.ReviewDateLayout),
		CreatedAt: now,
	}
	if err := s.repo.Put(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) Delete(ctx context.Context, reviewID string) error {
	return s.repo.Delete(ctx, reviewID)
}
