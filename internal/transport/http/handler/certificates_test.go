package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/institute-cms/internal/application/asset"
	"github.com/institute-cms/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- mock ---

type mockCertificateSvc struct{ mock.Mock }

func (m *mockCertificateSvc) List(ctx context.Context) ([]domain.Certificate, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Certificate), args.Error(1)
}
func (m *mockCertificateSvc) Get(ctx context.Context, id string) (*domain.Certificate, error) {
	args := m.Called(ctx, id)
	if c, _ := args.Get(0).(*domain.Certificate); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCertificateSvc) Create(ctx context.Context, req domain.CreateCertificateRequest, file *asset.Upload) (*domain.Certificate, error) {
	args := m.Called(ctx, req, file)
	if c, _ := args.Get(0).(*domain.Certificate); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCertificateSvc) Update(ctx context.Context, id string, req domain.UpdateCertificateRequest, file *asset.Upload) (*domain.Certificate, error) {
	args := m.Called(ctx, id, req, file)
	if c, _ := args.Get(0).(*domain.Certificate); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCertificateSvc) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestCertificateCreate_FileFromImageField(t *testing.T) {
	svc := &mockCertificateSvc{}
	want := domain.CreateCertificateRequest{Title: "AWS SAA", Issuer: "Amazon", Description: "Cloud", IssueDate: "2024-03-01"}
	svc.On("Create", mock.Anything, want, mock.MatchedBy(func(up *asset.Upload) bool {
		if up == nil {
			return false
		}
		data, _ := io.ReadAll(up.Reader)
		return string(data) == "%PDF-1.4 body"
	})).Return(&domain.Certificate{CertificateID: "cert1", Title: "AWS SAA"}, nil)
	h := NewCertificateHandler(svc, 1<<20)

	req := multipartRequest(t, http.MethodPost, "/api/certificates/addCertificate", map[string]string{
		"title": "AWS SAA", "issuer": "Amazon", "description": "Cloud", "issueDate": "2024-03-01",
	}, []byte("%PDF-1.4 body"))
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"cert1"`)
	svc.AssertExpectations(t)
}

func TestCertificateCreate_MissingFile(t *testing.T) {
	svc := &mockCertificateSvc{}
	svc.On("Create", mock.Anything, mock.Anything, (*asset.Upload)(nil)).
		Return(nil, domain.ErrBadRequest)
	h := NewCertificateHandler(svc, 1<<20)

	req := multipartRequest(t, http.MethodPost, "/api/certificates/addCertificate", map[string]string{"title": "AWS SAA"}, nil)
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid_input")
}

func TestCertificateGet_NotFound(t *testing.T) {
	svc := &mockCertificateSvc{}
	svc.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound)
	h := NewCertificateHandler(svc, 1<<20)

	rr := httptest.NewRecorder()
	h.Get(rr, withChiID(httptest.NewRequest(http.MethodGet, "/api/certificates/missing", nil), "missing"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
