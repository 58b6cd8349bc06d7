package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/institute-cms/internal/application/placement"
	"github.com/institute-cms/internal/domain"
)

// PlacementHandler handles placement endpoints.
type PlacementHandler struct {
	svc       placement.Service
	maxUpload int64
}

func NewPlacementHandler(svc placement.Service, maxUpload int64) *PlacementHandler {
	return &PlacementHandler{svc: svc, maxUpload: maxUpload}
}

func (h *PlacementHandler) List(w http.ResponseWriter, r *http.Request) {
	placements, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, placements)
}

func (h *PlacementHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PlacementHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r, h.maxUpload); err != nil {
		writeServiceError(w, r, err)
		return
	}
	image, closeFn, err := formUpload(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	defer closeFn()

	p, err := h.svc.Create(r.Context(), domain.CreatePlacementRequest{
		Name:        formValue(r, "name"),
		CompanyName: formValue(r, "companyName"),
		PostName:    formValue(r, "postName"),
	}, image)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *PlacementHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r, h.maxUpload); err != nil {
		writeServiceError(w, r, err)
		return
	}
	image, closeFn, err := formUpload(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	defer closeFn()

	p, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), domain.UpdatePlacementRequest{
		Name:        formPtr(r, "name"),
		CompanyName: formPtr(r, "companyName"),
		PostName:    formPtr(r, "postName"),
	}, image)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PlacementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "placement deleted successfully"})
}
