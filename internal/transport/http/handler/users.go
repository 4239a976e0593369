package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/snapspot-api/internal/application/user"
	"github.com/snapspot-api/internal/boundary"
	"github.com/snapspot-api/internal/domain/identity"
	"github.com/snapspot-api/internal/pkg/validate"
	"github.com/snapspot-api/internal/transport/http/middleware"
)

// UserHandler handles registration, login and the email verification flow.
type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler { return &UserHandler{svc: svc} }

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req identity.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "Invalid JSON format")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, r, identity.ValidationFailed("Validation failed: "+err.Error()))
		return
	}
	u, err := h.svc.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req identity.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "Invalid JSON format")
		return
	}
	resp, err := h.svc.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req identity.GoogleLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "Invalid JSON format")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, r, identity.ValidationFailed("Validation failed: "+err.Error()))
		return
	}
	resp, err := h.svc.LoginWithGoogle(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Me returns the authenticated user's own record.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, &boundary.Error{Class: boundary.Unauthorized, Message: "Authorization header missing"})
		return
	}
	u, err := h.svc.Get(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.VerifyEmail(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req identity.ResendVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "Invalid JSON format")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, r, identity.ValidationFailed("Validation failed: "+err.Error()))
		return
	}
	if err := h.svc.ResendVerification(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
