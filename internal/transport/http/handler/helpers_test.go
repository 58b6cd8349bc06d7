package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// withChiID injects a chi route context with the given "id" URL param.
func withChiID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
