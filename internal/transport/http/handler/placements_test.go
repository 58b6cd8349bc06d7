package handler

import (
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

type mockPlacementSvc struct{ mock.Mock }

func (m *mockPlacementSvc) List(ctx context.Context) ([]domain.Placement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Placement), args.Error(1)
}
func (m *mockPlacementSvc) Get(ctx context.Context, id string) (*domain.Placement, error) {
	args := m.Called(ctx, id)
	if p, _ := args.Get(0).(*domain.Placement); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPlacementSvc) Create(ctx context.Context, req domain.CreatePlacementRequest, image *asset.Upload) (*domain.Placement, error) {
	args := m.Called(ctx, req, image)
	if p, _ := args.Get(0).(*domain.Placement); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPlacementSvc) Update(ctx context.Context, id string, req domain.UpdatePlacementRequest, image *asset.Upload) (*domain.Placement, error) {
	args := m.Called(ctx, id, req, image)
	if p, _ := args.Get(0).(*domain.Placement); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPlacementSvc) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestPlacementCreate(t *testing.T) {
	svc := &mockPlacementSvc{}
	want := domain.CreatePlacementRequest{Name: "Ravi", CompanyName: "Infosys", PostName: "SDE"}
	svc.On("Create", mock.Anything, want, mock.AnythingOfType("*asset.Upload")).
		Return(&domain.Placement{PlacementID: "p1", Name: "Ravi"}, nil)
	h := NewPlacementHandler(svc, 1<<20)

	req := multipartRequest(t, http.MethodPost, "/api/placements/addPlacement", map[string]string{
		"name": "Ravi", "companyName": "Infosys", "postName": "SDE",
	}, []byte("png-bytes"))
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"p1"`)
	svc.AssertExpectations(t)
}

func TestPlacementUpdate_NotFound(t *testing.T) {
	svc := &mockPlacementSvc{}
	svc.On("Update", mock.Anything, "missing", mock.Anything, (*asset.Upload)(nil)).Return(nil, domain.ErrNotFound)
	h := NewPlacementHandler(svc, 1<<20)

	req := multipartRequest(t, http.MethodPut, "/api/placements/editPlacement/missing", map[string]string{"postName": "Lead"}, nil)
	rr := httptest.NewRecorder()
	h.Update(rr, withChiID(req, "missing"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "not_found")
}
