package api

import (
	"net/http"

	"github.com/liquidswrds/csec3330-labs/pkg/validation"
)

// handleQuiz routes /sessions/{id}/quiz and its subpaths.
func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request, sess *Session, rest []string) {
	if sess.Quiz == nil {
		s.respondError(w, http.StatusNotFound, "lab has no quiz")
		return
	}

	if len(rest) == 0 {
		if r.Method != http.MethodGet {
			s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		questions := sess.Quiz.Questions()
		s.respondJSON(w, http.StatusOK, QuizResponse{
			Questions: questions,
			Answered:  sess.Quiz.Answered(),
			Total:     len(questions),
		})
		return
	}

	switch rest[0] {
	case "answers":
		s.answerQuestion(w, r, sess)
	case "grade":
		s.gradeQuiz(w, r, sess)
	default:
		s.respondError(w, http.StatusNotFound, "not found")
	}
}

func (s *Server) answerQuestion(w http.ResponseWriter, r *http.Request, sess *Session) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req validation.AnswerRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := validation.ValidateAnswerRequest(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := sess.Quiz.Answer(req.QuestionID, req.Answer); err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}

	s.respondJSON(w, http.StatusOK, QuizResponse{
		Questions: nil,
		Answered:  sess.Quiz.Answered(),
		Total:     len(sess.Quiz.Questions()),
	})
}

func (s *Server) gradeQuiz(w http.ResponseWriter, r *http.Request, sess *Session) {
	if r.Method != http.MethodPost {
		s.respondError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	breakdown := sess.Quiz.Grade()
	s.respondJSON(w, http.StatusOK, QuizGradeResponse{Breakdown: breakdown})
}
