package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/snapspot-api/internal/application/picture"
	"github.com/snapspot-api/internal/boundary"
	"github.com/snapspot-api/internal/transport/http/middleware"
)

// maxPictureBytes caps in-memory multipart parsing at 32 MiB.
const maxPictureBytes = 32 << 20

// PictureHandler handles the public gallery and authenticated uploads.
type PictureHandler struct {
	svc picture.Service
}

func NewPictureHandler(svc picture.Service) *PictureHandler { return &PictureHandler{svc: svc} }

func (h *PictureHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *PictureHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, &boundary.Error{Class: boundary.Unauthorized, Message: "Authorization header missing"})
		return
	}
	if err := r.ParseMultipartForm(maxPictureBytes); err != nil {
		badRequest(w, r, "Failed to read multipart field: "+err.Error())
		return
	}
	f, header, err := r.FormFile("file")
	if err != nil {
		badRequest(w, r, "No file provided")
		return
	}
	defer f.Close()

	if header.Filename == "" {
		badRequest(w, r, "No file name provided")
		return
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	data, err := io.ReadAll(f)
	if err != nil {
		badRequest(w, r, "Failed to read file data: "+err.Error())
		return
	}

	p, err := h.svc.Upload(r.Context(), claims.UserID, header.Filename, contentType, data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PictureHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, &boundary.Error{Class: boundary.Unauthorized, Message: "Authorization header missing"})
		return
	}
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "picture_id"), claims.UserID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
