package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/liquidswrds/csec3330-labs/pkg/grading"
	"github.com/liquidswrds/csec3330-labs/pkg/logging"
	"github.com/liquidswrds/csec3330-labs/pkg/registry"
	"github.com/liquidswrds/csec3330-labs/pkg/validation"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   s.version,
		Uptime:    time.Since(s.startTime).String(),
		Sessions:  s.manager.Count(),
	}
	s.respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleLabs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	labs := make([]LabResponse, 0, len(labOrder))
	for _, id := range labOrder {
		entry := labCatalog[id]
		reg := entry.build()
		labs = append(labs, LabResponse{
			ID:          id,
			Elements:    reg.ElementCount(),
			Connections: reg.ConnectionCount(),
			HasQuiz:     entry.questions != nil,
		})
	}
	s.respondJSON(w, http.StatusOK, labs)
}

// handleLab routes /labs/{id}/... to the per-lab reference endpoints.
func (s *Server) handleLab(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	labID, rest := splitPath(r.URL.Path, "/labs/")
	entry, ok := labCatalog[labID]
	if !ok {
		s.respondError(w, http.StatusNotFound, "unknown lab")
		return
	}

	if len(rest) == 0 {
		reg := entry.build()
		s.respondJSON(w, http.StatusOK, LabResponse{
			ID:          labID,
			Elements:    reg.ElementCount(),
			Connections: reg.ConnectionCount(),
			HasQuiz:     entry.questions != nil,
		})
		return
	}

	switch rest[0] {
	case "dataflows":
		s.respondJSON(w, http.StatusOK, registry.Dataflows())
	case "threats":
		s.respondJSON(w, http.StatusOK, registry.Threats())
	default:
		s.respondError(w, http.StatusNotFound, "not found")
	}
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req CreateSessionRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	sess, err := s.manager.Create(req.LabID)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, ErrSessionLimit) {
			status = http.StatusServiceUnavailable
		}
		s.respondError(w, status, err.Error())
		return
	}

	var token string
	if s.tokens != nil {
		token, err = s.tokens.GenerateToken(sess.ID, sess.LabID)
		if err != nil {
			s.manager.Delete(sess.ID)
			s.respondError(w, http.StatusInternalServerError, "session token generation failed")
			return
		}
	}

	s.metricsRegistry.SessionsActive.Set(float64(s.manager.Count()))
	s.metricsRegistry.SessionsTotal.WithLabelValues(sess.LabID).Inc()
	s.logger.Info("session created",
		logging.SessionID(sess.ID),
		logging.LabID(sess.LabID))

	s.respondJSON(w, http.StatusCreated, CreateSessionResponse{
		SessionID: sess.ID,
		LabID:     sess.LabID,
		Token:     token,
		CreatedAt: sess.CreatedAt,
	})
}

// handleSession routes /sessions/{id}/... to the per-session handlers.
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sessionID, rest := splitSessionPath(r.URL.Path)

	sess, err := s.manager.Get(sessionID)
	if err != nil {
		s.respondError(w, http.StatusNotFound, "session not found")
		return
	}

	if len(rest) == 0 {
		switch r.Method {
		case http.MethodGet:
			s.getSessionState(w, sess)
		case http.MethodDelete:
			s.deleteSession(w, sess)
		default:
			s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
		return
	}

	switch rest[0] {
	case "elements":
		s.listElements(w, r, sess)
	case "assignments":
		s.assignArea(w, r, sess)
	case "connections":
		s.handleConnections(w, r, sess, rest[1:])
	case "validate":
		s.validateSession(w, r, sess)
	case "export":
		s.exportSession(w, r, sess)
	case "quiz":
		s.handleQuiz(w, r, sess, rest[1:])
	case "reset":
		s.resetSession(w, r, sess)
	default:
		s.respondError(w, http.StatusNotFound, "not found")
	}
}

func (s *Server) getSessionState(w http.ResponseWriter, sess *Session) {
	snap := sess.Store.Snapshot()
	s.respondJSON(w, http.StatusOK, SessionStateResponse{
		SessionID:   sess.ID,
		LabID:       sess.LabID,
		Assignments: len(snap.Assignments),
		Connections: snap.Connections,
		Snapshot:    snap,
	})
}

func (s *Server) deleteSession(w http.ResponseWriter, sess *Session) {
	s.manager.Delete(sess.ID)
	s.metricsRegistry.SessionsActive.Set(float64(s.manager.Count()))
	s.logger.Info("session deleted", logging.SessionID(sess.ID))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listElements(w http.ResponseWriter, r *http.Request, sess *Session) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	reg := sess.Store.Registry()
	elements := reg.Elements()
	out := make([]ElementResponse, 0, len(elements))
	for _, el := range elements {
		resp := ElementResponse{
			ID:          el.ID,
			Name:        el.Name,
			Description: el.Description,
		}
		if m, ok := reg.SystemMeta(el.ID); ok {
			resp.Meta = &m
		}
		out = append(out, resp)
	}
	s.respondJSON(w, http.StatusOK, out)
}

func (s *Server) assignArea(w http.ResponseWriter, r *http.Request, sess *Session) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req validation.AssignmentRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateAssignmentRequest(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var err error
	switch req.Axis {
	case "functional":
		var area *registry.FunctionalArea
		if req.Area != nil {
			parsed, perr := registry.ParseFunctionalArea(*req.Area)
			if perr != nil {
				s.respondError(w, http.StatusBadRequest, perr.Error())
				return
			}
			area = &parsed
		}
		err = sess.Store.SetFunctional(req.ElementID, area)
	case "operational":
		var area *registry.OperationalArea
		if req.Area != nil {
			parsed, perr := registry.ParseOperationalArea(*req.Area)
			if perr != nil {
				s.respondError(w, http.StatusBadRequest, perr.Error())
				return
			}
			area = &parsed
		}
		err = sess.Store.SetOperational(req.ElementID, area)
	}
	if err != nil {
		s.metricsRegistry.MutationErrorsTotal.WithLabelValues(sess.LabID, "assignment").Inc()
		s.respondError(w, mutationStatus(err), err.Error())
		return
	}

	s.metricsRegistry.AssignmentsTotal.WithLabelValues(sess.LabID, req.Axis).Inc()

	a, _ := sess.Store.Assignment(req.ElementID)
	el, _ := sess.Store.Registry().Element(req.ElementID)
	complete, correct := grading.CheckCompletion(el, a)

	resp := AssignmentResponse{
		ElementID: req.ElementID,
		Complete:  complete,
		Correct:   correct,
	}
	if a.Functional != nil {
		v := string(*a.Functional)
		resp.Functional = &v
	}
	if a.Operational != nil {
		v := string(*a.Operational)
		resp.Operational = &v
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleConnections(w http.ResponseWriter, r *http.Request, sess *Session, rest []string) {
	if len(rest) > 0 {
		if r.Method != http.MethodDelete {
			s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		sess.Store.DeleteConnection(rest[0])
		w.WriteHeader(http.StatusNoContent)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.respondJSON(w, http.StatusOK, sess.Store.Connections())
	case http.MethodPost:
		s.createConnection(w, r, sess)
	default:
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) createConnection(w http.ResponseWriter, r *http.Request, sess *Session) {
	var req validation.ConnectionRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateConnectionRequest(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	connType, _ := registry.ParseConnectionType(req.ConnectionType)
	flow, _ := registry.ParseDataFlow(req.DataFlow)
	direction, _ := registry.ParseDirection(req.Direction)

	conn, err := sess.Store.CreateConnection(req.SourceID, req.TargetID, connType, flow, direction)
	if err != nil {
		s.metricsRegistry.MutationErrorsTotal.WithLabelValues(sess.LabID, "connection").Inc()
		s.respondError(w, mutationStatus(err), err.Error())
		return
	}

	s.metricsRegistry.ConnectionsTotal.WithLabelValues(sess.LabID, string(conn.ConnectionType)).Inc()
	s.respondJSON(w, http.StatusCreated, ConnectionResponse{
		Connection: conn,
		Count:      sess.Store.ConnectionCount(),
	})
}

func (s *Server) validateSession(w http.ResponseWriter, r *http.Request, sess *Session) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	report := grading.ValidateStore(sess.Store)
	resp := ValidateResponse{Report: report}

	if sess.Quiz != nil {
		breakdown := sess.Quiz.Grade()
		combined := grading.CombinedScore(report.Connections.Score, breakdown.Score)
		resp.QuizScore = &breakdown.Score
		resp.CombinedScore = &combined
	}

	s.metricsRegistry.RecordValidation(sess.LabID, report.Elements.Score, report.Connections.Score)
	s.logger.Info("session validated",
		logging.SessionID(sess.ID),
		logging.LabID(sess.LabID),
		logging.Int("element_score", report.Elements.Score),
		logging.Int("connection_score", report.Connections.Score))

	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) exportSession(w http.ResponseWriter, r *http.Request, sess *Session) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snap := sess.Store.Snapshot()
	report := grading.Validate(sess.Store.Registry(), snap)

	quizScore := 0
	if sess.Quiz != nil {
		quizScore = sess.Quiz.Grade().Score
	}

	now := time.Now().UTC()
	record := grading.BuildExport(snap, report, quizScore, now)
	s.respondJSON(w, http.StatusOK, ExportResponse{
		Filename: grading.ExportFilename(sess.LabID, now),
		Record:   record,
	})
}

func (s *Server) resetSession(w http.ResponseWriter, r *http.Request, sess *Session) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	sess.Store.Reset()
	if sess.Quiz != nil {
		sess.Quiz.Reset()
	}
	s.logger.Info("session reset", logging.SessionID(sess.ID))
	w.WriteHeader(http.StatusNoContent)
}
