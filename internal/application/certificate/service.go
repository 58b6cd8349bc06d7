package certificate

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
	List(ctx context.Context) ([]domain.Certificate, error)
	Get(ctx context.Context, certificateID string) (*domain.Certificate, error)
	Create(ctx context.Context, req domain.CreateCertificateRequest, file *asset.Upload) (*domain.Certificate, error)
	Update(ctx context.Context, certificateID string, req domain.UpdateCertificateRequest, file *asset.Upload) (*domain.Certificate, error)
	Delete(ctx context.Context, certificateID string) error
}

type certificateStore interface {
	Put(ctx context.Context, c *domain.Certificate) error
	Replace(ctx context.Context, c *domain.Certificate) error
	Get(ctx context.Context, id string) (*domain.Certificate, error)
	List(ctx context.Context) ([]domain.Certificate, error)
	Delete(ctx context.Context, id string) error
}

type assetManager interface {
	Create(ctx context.Context, kind domain.AssetKind, up *asset.Upload, commit func(domain.Asset) error) (*domain.Asset, error)
	Replace(ctx context.Context, oldKey string, kind domain.AssetKind, up *asset.Upload, commit func(domain.Asset) error) (*domain.Asset, error)
	Delete(ctx context.Context, key string)
}

type service struct {
	repo   certificateStore
	assets assetManager
}

type ServiceDeps struct {
	CertificateRepo certificateStore
	Assets          assetManager
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.CertificateRepo, assets: deps.Assets}
}

// List returns certificates with the most recent issue date first.
// IssueDate is YYYY-MM-DD, so string order is date order.
func (s *service) List(ctx context.Context) ([]domain.Certificate, error) {
	certs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(certs, func(i, j int) bool {
		if certs[i].IssueDate != certs[j].IssueDate {
			return certs[i].IssueDate > certs[j].IssueDate
		}
		return certs[i].CreatedAt.After(certs[j].CreatedAt)
	})
	return certs, nil
}

func (s *service) Get(ctx context.Context, certificateID string) (*domain.Certificate, error) {
	return s.repo.Get(ctx, certificateID)
}

func (s *service) Create(ctx context.Context, req domain.CreateCertificateRequest, file *asset.Upload) (*domain.Certificate, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if file == nil {
		return nil, fmt.Errorf("certificate file is required: %w", domain.ErrBadRequest)
	}
	now := time.Now().UTC()
	c := &domain.Certificate{
		CertificateID: id.New(),
		Title:         req.Title,
		Issuer:        req.Issuer,
		Description:   req.Description,
		IssueDate:     req.IssueDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	_, err := s.assets.Create(ctx, domain.AssetCertificate, file, func(a domain.Asset) error {
		c.Certificate = a
		return s.repo.Put(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, certificateID string, req domain.UpdateCertificateRequest, file *asset.Upload) (*domain.Certificate, error) {
	if req.IssueDate != nil && strings.TrimSpace(*req.IssueDate) == "" {
		req.IssueDate = nil
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	c, err := s.repo.Get(ctx, certificateID)
	if err != nil {
		return nil, err
	}
	apply(&c.Title, req.Title)
	apply(&c.Issuer, req.Issuer)
	apply(&c.Description, req.Description)
	apply(&c.IssueDate, req.IssueDate)
	c.UpdatedAt = time.Now().UTC()

	if file == nil {
		if err := s.repo.Replace(ctx, c); err != nil {
			return nil, err
		}
		return c, nil
	}
	_, err = s.assets.Replace(ctx, c.Certificate.Key, domain.AssetCertificate, file, func(a domain.Asset) error {
		c.Certificate = a
		return s.repo.Replace(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, certificateID string) error {
	c, err := s.repo.Get(ctx, certificateID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, certificateID); err != nil {
		return err
	}
	s.assets.Delete(ctx, c.Certificate.Key)
	return nil
}

func apply(dst *string, v *string) {
	if v != nil && strings.TrimSpace(*v) != "" {
		*dst = *v
	}
}
