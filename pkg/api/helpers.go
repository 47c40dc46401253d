package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/liquidswrds/csec3330-labs/pkg/logging"
	"github.com/liquidswrds/csec3330-labs/pkg/session"
)

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", logging.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	response := ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}
	s.respondJSON(w, status, response)
}

// mutationStatus maps a session mutation error to an HTTP status code.
func mutationStatus(err error) int {
	switch {
	case session.IsNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, session.ErrDuplicateConnection):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// splitPath breaks "{prefix}{id}/rest" into the resource ID and the
// remaining path segments.
func splitPath(path, prefix string) (id string, rest []string) {
	trimmed := strings.TrimPrefix(path, prefix)
	parts := strings.Split(strings.Trim(trimmed, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		return "", nil
	}
	return parts[0], parts[1:]
}

func splitSessionPath(path string) (sessionID string, rest []string) {
	return splitPath(path, "/sessions/")
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
