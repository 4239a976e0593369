package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/snapspot-api/internal/boundary"
)

// errorEnvelope is the wire shape every failure shares, 400 through 500.
type errorEnvelope struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError resolves err through the boundary mapping and renders the
// envelope. Internal failures keep their diagnostic text in the log; the
// client only ever sees the mapped message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	be := boundary.FromError(err)
	status := be.Class.HTTPStatus()
	if be.Class == boundary.InternalError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, errorEnvelope{Error: be.Message, StatusCode: status})
}

// badRequest is a shortcut for transport-level rejections that never reach a
// domain catalog (malformed JSON, bad multipart, unparsable params).
func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	writeError(w, r, &boundary.Error{Class: boundary.BadRequest, Message: msg})
}
