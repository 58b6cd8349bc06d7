package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/institute-cms/internal/application/course"
	"github.com/institute-cms/internal/domain"
)

// CourseHandler handles course endpoints.
type CourseHandler struct {
	svc       course.Service
	maxUpload int64
}

func NewCourseHandler(svc course.Service, maxUpload int64) *CourseHandler {
	return &CourseHandler{svc: svc, maxUpload: maxUpload}
}

func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.svc.Create(r.Context(), domain.CreateCourseRequest{
		Title:       formValue(r, "title"),
		Description: formValue(r, "description"),
		Duration:    formValue(r, "duration"),
		Category:    formValue(r, "category"),
	}, image)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), domain.UpdateCourseRequest{
		Title:       formPtr(r, "title"),
		Description: formPtr(r, "description"),
		Duration:    formPtr(r, "duration"),
		Category:    formPtr(r, "category"),
	}, image)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "course deleted successfully"})
}
