package session

import (
	"context"
	"encoding/json"
	"log/slog"
	mathrand "math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"finsim/internal/questions"
	"finsim/internal/sim"
)

// Service is the session state machine. Every mutating operation reads the
// full session, rebuilds it as a new value and writes it back as one unit;
// the mutex serializes those read-modify-write cycles so two requests racing
// on the same store cannot lose updates.
type Service struct {
	store  Store
	picker *questions.Picker
	consts sim.Constants
	log    *slog.Logger
	mu     sync.Mutex
}

func NewService(store Store, logger *slog.Logger, r *mathrand.Rand) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  store,
		picker: questions.NewPicker(r),
		consts: sim.Defaults,
		log:    logger,
	}
}

// Create allocates a new session with one company per seed, each starting
// from the quarter-0 snapshot, and immediately assigns first-quarter
// questions.
func (s *Service) Create(ctx context.Context, seeds []CompanySeed) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	companies := make(map[string]Company, len(seeds))
	for _, seed := range seeds {
		companies[seed.ID] = Company{
			Name:            seed.Name,
			Financials:      []sim.Snapshot{SeedSnapshot()},
			AgentChat:       []json.RawMessage{},
			QuestionHistory: []string{},
		}
	}
	sess := Session{
		ID:             uuid.NewString(),
		GameCode:       newGameCode(),
		GameStatus:     StatusQ1,
		CurrentQuarter: 1,
		LastUpdateTime: time.Now().Unix(),
		Companies:      companies,
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return Session{}, err
	}
	out, err := s.assignQuarterQuestions(ctx, sess.ID)
	if err != nil {
		return Session{}, err
	}
	s.log.Info("session created", "session_id", out.ID, "game_code", out.GameCode, "companies", len(out.Companies))
	return out, nil
}

// Get returns a detached copy of the session.
func (s *Service) Get(ctx context.Context, sessionID string) (Session, error) {
	return s.store.Get(ctx, sessionID)
}

// AssignQuarterQuestions gives every company a fresh question it has not
// seen before (falling back to repeats once the catalog is exhausted) and
// clears any previous answer.
func (s *Service) AssignQuarterQuestions(ctx context.Context, sessionID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assignQuarterQuestions(ctx, sessionID)
}

func (s *Service) assignQuarterQuestions(ctx context.Context, sessionID string) (Session, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}

	updated := sess.Clone()
	for id, company := range updated.Companies {
		question := s.picker.Pick(company.QuestionHistory)
		company.ActiveQuestionID = question.ID
		company.SelectedOptionID = ""
		company.QuestionHistory = append(company.QuestionHistory, question.ID)
		updated.Companies[id] = company
	}
	updated.LastUpdateTime = time.Now().Unix()
	if err := s.store.Save(ctx, updated); err != nil {
		return Session{}, err
	}
	return updated, nil
}

// SubmitDecision overwrites a company's pending decision for the quarter.
func (s *Service) SubmitDecision(ctx context.Context, sessionID, companyID string, decision sim.Decision) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	company, ok := sess.Companies[companyID]
	if !ok {
		return Session{}, ErrCompanyNotFound
	}
	company.Decisions = &decision
	sess.Companies[companyID] = company
	sess.LastUpdateTime = time.Now().Unix()
	if err := s.store.Save(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// SubmitAnswer records the chosen option id. Whether it actually belongs to
// the active question is checked at close time, not here.
func (s *Service) SubmitAnswer(ctx context.Context, sessionID, companyID, optionID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	company, ok := sess.Companies[companyID]
	if !ok {
		return Session{}, ErrCompanyNotFound
	}
	company.SelectedOptionID = optionID
	sess.Companies[companyID] = company
	sess.LastUpdateTime = time.Now().Unix()
	if err := s.store.Save(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// CloseQuarter simulates the quarter for every company and advances the game.
// For each company the selected option (when it resolves against the active
// question) perturbs the base decision; a missing or stale selection means
// the base decision runs unmodified. Once the computed next quarter passes
// the final one the session is Finished and no further closes change it.
func (s *Service) CloseQuarter(ctx context.Context, sessionID string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return Session{}, err
	}
	if sess.GameStatus == StatusFinished {
		return sess, nil
	}

	updated := sess.Clone()
	for id, company := range updated.Companies {
		base := sim.Decision{}
		if company.Decisions != nil {
			base = *company.Decisions
		}

		questionID := company.ActiveQuestionID
		if questionID == "" {
			// Never assigned (defensive): draw one just to have an id to
			// record, without re-assigning it to the company.
			questionID = s.picker.Pick(nil).ID
		}

		effective := base
		if question, qerr := questions.ByID(questionID); qerr == nil && company.SelectedOptionID != "" {
			for _, option := range question.Options {
				if option.ID == company.SelectedOptionID {
					effective = questions.ApplyImpact(base, option)
					break
				}
			}
		}

		result := s.consts.SimulateQuarter(company.Latest(), effective)
		company.Financials = append(company.Financials, result)
		if n := len(company.QuestionHistory); n == 0 || company.QuestionHistory[n-1] != questionID {
			company.QuestionHistory = append(company.QuestionHistory, questionID)
		}
		company.Decisions = nil
		company.ActiveQuestionID = ""
		company.SelectedOptionID = ""
		updated.Companies[id] = company
	}

	updated.CurrentQuarter = sess.CurrentQuarter + 1
	updated.GameStatus = statusForQuarter(updated.CurrentQuarter)
	updated.LastUpdateTime = time.Now().Unix()
	if err := s.store.Save(ctx, updated); err != nil {
		return Session{}, err
	}
	s.log.Info("quarter closed", "session_id", updated.ID, "status", updated.GameStatus)
	return updated, nil
}

func newGameCode() string {
	return strings.ToUpper(uuid.NewString()[:6])
}
