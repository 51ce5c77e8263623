package stubapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		s.log.Warn(ctx, "write response", "error", err)
	}
}

func (s *Server) ok(w http.ResponseWriter, r *http.Request, status int, data any) {
	s.writeJSON(r.Context(), w, status, envelope{Success: true, Data: data})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := statusOf(err)
	if status == http.StatusInternalServerError {
		s.log.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	s.writeJSON(r.Context(), w, status, envelope{Message: msg})
}

// maxJSONBody bounds JSON request bodies.
const maxJSONBody = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return failure(ErrInvalid, "Request body is too large")
		}
		return failure(ErrInvalid, "Malformed JSON body")
	}
	return nil
}
