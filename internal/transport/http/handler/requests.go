package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/snapspot-api/internal/application/request"
	"github.com/snapspot-api/internal/boundary"
	"github.com/snapspot-api/internal/domain/geo"
	"github.com/snapspot-api/internal/pkg/validate"
	"github.com/snapspot-api/internal/transport/http/middleware"
)

// RequestHandler handles the photo-request feed and creation endpoints.
type RequestHandler struct {
	svc request.Service
}

func NewRequestHandler(svc request.Service) *RequestHandler { return &RequestHandler{svc: svc} }

func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	lat, ok := parseCoord(w, r, "lat")
	if !ok {
		return
	}
	lng, ok := parseCoord(w, r, "lng")
	if !ok {
		return
	}
	resp, err := h.svc.List(r.Context(), lat, lng)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, &boundary.Error{Class: boundary.Unauthorized, Message: "Authorization header missing"})
		return
	}
	var req geo.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "Invalid JSON format")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, r, geo.ValidationFailed("Validation failed: "+err.Error()))
		return
	}
	created, err := h.svc.Create(r.Context(), claims.UserID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	req, err := h.svc.Get(r.Context(), chi.URLParam(r, "request_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// parseCoord reads an optional float query parameter. A present but
// unparsable value is rejected; an absent one yields nil.
func parseCoord(w http.ResponseWriter, r *http.Request, name string) (*float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		badRequest(w, r, "Invalid query parameter: "+name)
		return nil, false
	}
	return &f, true
}
