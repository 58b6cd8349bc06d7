package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/institute-cms/internal/application/asset"
	"github.com/institute-cms/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- mock ---

type mockBannerSvc struct{ mock.Mock }

func (m *mockBannerSvc) List(ctx context.Context) ([]domain.Banner, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Banner), args.Error(1)
}
func (m *mockBannerSvc) Get(ctx context.Context, id string) (*domain.Banner, error) {
	args := m.Called(ctx, id)
	if b, _ := args.Get(0).(*domain.Banner); b != nil {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBannerSvc) Create(ctx context.Context, image *asset.Upload) (*domain.Banner, error) {
	args := m.Called(ctx, image)
	if b, _ := args.Get(0).(*domain.Banner); b != nil {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBannerSvc) Update(ctx context.Context, id string, image *asset.Upload) (*domain.Banner, error) {
	args := m.Called(ctx, id, image)
	if b, _ := args.Get(0).(*domain.Banner); b != nil {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBannerSvc) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestBannerCreate(t *testing.T) {
	svc := &mockBannerSvc{}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(up *asset.Upload) bool {
		return up != nil && up.Filename == "photo.png"
	})).Return(&domain.Banner{BannerID: "b1", Image: domain.Asset{URL: "/banners/b1.png"}}, nil)
	h := NewBannerHandler(svc, 1<<20)

	req := multipartRequest(t, http.MethodPost, "/api/banners/addBanner", nil, []byte("GIF89a"))
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "/banners/b1.png")
}

func TestBannerUpdate_TooLarge(t *testing.T) {
	svc := &mockBannerSvc{}
	h := NewBannerHandler(svc, 64)

	req := multipartRequest(t, http.MethodPut, "/api/banners/editBanner/b1", nil, bytes.Repeat([]byte("x"), 1024))
	rr := httptest.NewRecorder()
	h.Update(rr, withChiID(req, "b1"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBannerDelete(t *testing.T) {
	svc := &mockBannerSvc{}
	svc.On("Delete", mock.Anything, "b1").Return(nil)
	h := NewBannerHandler(svc, 1<<20)

	rr := httptest.NewRecorder()
	h.Delete(rr, withChiID(httptest.NewRequest(http.MethodDelete, "/api/banners/delete/b1", nil), "b1"))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "banner deleted successfully")
}
