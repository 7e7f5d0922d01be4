// Package api is the HTTP transport over the session state machine. It does
// request validation, company-id derivation and error mapping; all game
// logic lives below it.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"finsim/internal/questions"
	"finsim/internal/session"
	"finsim/internal/sim"
)

type Server struct {
	log      *slog.Logger
	sessions *session.Service
	mux      *chi.Mux
}

func New(logger *slog.Logger, sessions *session.Service) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		log:      logger,
		sessions: sessions,
		mux:      chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	r := s.mux
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Get("/questions/{question_id}", s.handleGetQuestion)
	r.Post("/sessions", s.handleCreateSession)
	r.Get("/sessions/{session_id}", s.handleGetSession)
	r.Post("/sessions/{session_id}/decisions", s.handleSubmitDecision)
	r.Post("/sessions/{session_id}/answer", s.handleSubmitAnswer)
	r.Post("/sessions/{session_id}/close_quarter", s.handleCloseQuarter)
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := questions.ByID(chi.URLParam(r, "question_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var in struct {
		CompanyNames []string `json:"company_names"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	seeds := make([]session.CompanySeed, 0, len(in.CompanyNames))
	for _, name := range in.CompanyNames {
		name = strings.TrimSpace(name)
		if name == "" {
			writeError(w, http.StatusBadRequest, "company names must be non-empty")
			return
		}
		seeds = append(seeds, session.CompanySeed{ID: CompanyID(name), Name: name})
	}
	if len(seeds) == 0 {
		writeError(w, http.StatusBadRequest, "at least one company name is required")
		return
	}

	sess, err := s.sessions.Create(r.Context(), seeds)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "session_id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleSubmitDecision(w http.ResponseWriter, r *http.Request) {
	var in struct {
		CompanyID  string  `json:"company_id"`
		Production float64 `json:"production"`
		Price      float64 `json:"price"`
		Marketing  float64 `json:"marketing"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	decision := sim.Decision{Production: in.Production, Price: in.Price, Marketing: in.Marketing}
	if err := validateDecision(decision); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := s.sessions.SubmitDecision(r.Context(), chi.URLParam(r, "session_id"), in.CompanyID, decision)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var in struct {
		CompanyID string `json:"company_id"`
		OptionID  string `json:"option_id"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess, err := s.sessions.SubmitAnswer(r.Context(), chi.URLParam(r, "session_id"), in.CompanyID, in.OptionID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleCloseQuarter(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	sess, err := s.sessions.CloseQuarter(r.Context(), sessionID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	// A new quarter needs questions on the table before anyone polls it.
	if sess.GameStatus != session.StatusFinished {
		sess, err = s.sessions.AssignQuarterQuestions(r.Context(), sessionID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, sess)
}

// CompanyID derives the stable company identifier from a display name:
// lowercased, spaces replaced with underscores.
func CompanyID(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func validateDecision(d sim.Decision) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"production", d.Production},
		{"price", d.Price},
		{"marketing", d.Marketing},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return errors.New(f.name + " must be a finite number")
		}
		if f.value < 0 {
			return errors.New(f.name + " must be >= 0")
		}
	}
	return nil
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, session.ErrCompanyNotFound),
		errors.Is(err, questions.ErrQuestionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(message)})
}
