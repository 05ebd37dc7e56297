// Package handlers provides the HTTP request handlers for the wellness
// assessment API: session lifecycle, the questionnaire screens, the computed
// assessment, the priced plan and the spreadsheet export.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fitclub/wellness-api/interfaces"
	"github.com/fitclub/wellness-api/logging"
	"github.com/fitclub/wellness-api/session"
)

// HTTPHandler bundles the endpoint handlers with their dependencies.
type HTTPHandler struct {
	store     interfaces.SessionStore
	validator interfaces.Validator
	startTime time.Time

	// now is replaceable in tests.
	now func() time.Time
}

// NewHTTPHandler creates the handler set.
func NewHTTPHandler(store interfaces.SessionStore, validator interfaces.Validator) *HTTPHandler {
	return &HTTPHandler{
		store:     store,
		validator: validator,
		startTime: time.Now(),
		now:       time.Now,
	}
}

// RespondWithJSON writes a JSON response.
func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(data)
}

// RespondWithError writes a JSON error payload.
func RespondWithError(w http.ResponseWriter, code int, msg string) {
	if code >= http.StatusInternalServerError {
		logging.Error("Responding with server error", "status", code, "message", msg)
	}
	RespondWithJSON(w, code, map[string]string{"error": msg})
}

// decodeJSON decodes a request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// errSessionNotFound distinguishes lookup misses inside handler helpers.
var errSessionNotFound = errors.New("session not found")

// sessionFromRequest resolves the {id} URL parameter into a live session.
func (h *HTTPHandler) sessionFromRequest(r *http.Request) (*session.Session, error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		return nil, errSessionNotFound
	}
	s, ok := h.store.Get(id)
	if !ok {
		return nil, errSessionNotFound
	}
	return s, nil
}
