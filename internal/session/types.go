// Package session owns the multiplayer game lifecycle: company state,
// per-quarter question assignment, decision collection and quarter closing.
package session

import (
	"encoding/json"
	"fmt"

	"finsim/internal/sim"
)

// Status is the game progression marker. It only ever moves forward:
// Q1 -> Q2 -> Q3 -> Q4 -> Finished.
type Status string

const (
	StatusQ1       Status = "Q1"
	StatusQ2       Status = "Q2"
	StatusQ3       Status = "Q3"
	StatusQ4       Status = "Q4"
	StatusFinished Status = "Finished"
)

const finalQuarter = 4

func statusForQuarter(quarter int) Status {
	if quarter > finalQuarter {
		return StatusFinished
	}
	return Status(fmt.Sprintf("Q%d", quarter))
}

// Company is one team's state within a session. Financials is append-only
// and never empty; index 0 is the seeded quarter-0 snapshot.
type Company struct {
	Name             string            `json:"name"`
	Financials       []sim.Snapshot    `json:"financials"`
	Decisions        *sim.Decision     `json:"decisions"`
	AgentChat        []json.RawMessage `json:"agent_chat"`
	ActiveQuestionID string            `json:"active_question_id,omitempty"`
	SelectedOptionID string            `json:"selected_option_id,omitempty"`
	QuestionHistory  []string          `json:"question_history"`
}

// Latest returns the most recent financial snapshot.
func (c Company) Latest() sim.Snapshot {
	return c.Financials[len(c.Financials)-1]
}

func (c Company) clone() Company {
	out := c
	out.Financials = append([]sim.Snapshot(nil), c.Financials...)
	out.AgentChat = append([]json.RawMessage(nil), c.AgentChat...)
	out.QuestionHistory = append([]string(nil), c.QuestionHistory...)
	if c.Decisions != nil {
		d := *c.Decisions
		out.Decisions = &d
	}
	return out
}

// Session is the whole game state for one group of companies. Companies do
// not outlive their session.
type Session struct {
	ID             string             `json:"id"`
	GameCode       string             `json:"game_code"`
	GameStatus     Status             `json:"game_status"`
	CurrentQuarter int                `json:"current_quarter"`
	LastUpdateTime int64              `json:"last_update_time"`
	Companies      map[string]Company `json:"companies"`
}

// Clone deep-copies the session so callers never alias stored state.
func (s Session) Clone() Session {
	out := s
	out.Companies = make(map[string]Company, len(s.Companies))
	for id, c := range s.Companies {
		out.Companies[id] = c.clone()
	}
	return out
}

// SeedSnapshot is the quarter-0 starting position every company begins with.
func SeedSnapshot() sim.Snapshot {
	return sim.Snapshot{
		Quarter:   0,
		Cash:      50_000,
		Inventory: 1_000,
		Equity:    50_000,
		Debt:      0,
	}
}

// CompanySeed names one company at session creation. The id is derived by
// the transport layer from the display name.
type CompanySeed struct {
	ID   string
	Name string
}
