package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/institute-cms/internal/application/banner"
)

// BannerHandler handles home-page banner endpoints.
type BannerHandler struct {
	svc       banner.Service
	maxUpload int64
}

func NewBannerHandler(svc banner.Service, maxUpload int64) *BannerHandler {
	return &BannerHandler{svc: svc, maxUpload: maxUpload}
}

func (h *BannerHandler) List(w http.ResponseWriter, r *http.Request) {
	banners, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, banners)
}

func (h *BannerHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BannerHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	b, err := h.svc.Create(r.Context(), image)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *BannerHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	b, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), image)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *BannerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "banner deleted successfully"})
}
