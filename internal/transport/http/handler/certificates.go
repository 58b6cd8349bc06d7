package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/institute-cms/internal/application/certificate"
	"github.com/institute-cms/internal/domain"
)

// CertificateHandler handles certificate endpoints.
type CertificateHandler struct {
	svc       certificate.Service
	maxUpload int64
}

func NewCertificateHandler(svc certificate.Service, maxUpload int64) *CertificateHandler {
	return &CertificateHandler{svc: svc, maxUpload: maxUpload}
}

func (h *CertificateHandler) List(w http.ResponseWriter, r *http.Request) {
	certs, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, certs)
}

func (h *CertificateHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CertificateHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r, h.maxUpload); err != nil {
		writeServiceError(w, r, err)
		return
	}
	file, closeFn, err := formUpload(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	defer closeFn()

	c, err := h.svc.Create(r.Context(), domain.CreateCertificateRequest{
		Title:       formValue(r, "title"),
		Issuer:      formValue(r, "issuer"),
		Description: formValue(r, "description"),
		IssueDate:   formValue(r, "issueDate"),
	}, file)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CertificateHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r, h.maxUpload); err != nil {
		writeServiceError(w, r, err)
		return
	}
	file, closeFn, err := formUpload(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	defer closeFn()

	c, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), domain.UpdateCertificateRequest{
		Title:       formPtr(r, "title"),
		Issuer:      formPtr(r, "issuer"),
		Description: formPtr(r, "description"),
		IssueDate:   formPtr(r, "issueDate"),
	}, file)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CertificateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "certificate deleted successfully"})
}
