// Package questions holds the scenario question catalog: a fixed set of
// multiple-choice prompts whose options perturb a company's quarterly
// decision before it reaches the financial engine.
package questions

import (
	"errors"
	"math"
	mathrand "math/rand"
	"time"

	"finsim/internal/sim"
)

var ErrQuestionNotFound = errors.New("question not found")

// Option is one answer to a question. Impact keys are
// {production,price,marketing}_{multiplier,delta}; absent keys default to
// multiplier 1 and delta 0.
type Option struct {
	ID     string             `json:"id"`
	Text   string             `json:"text"`
	Impact map[string]float64 `json:"impact"`
}

// Question is an immutable catalog entry. Loaded once at process start.
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

var index = buildIndex()

func buildIndex() map[string]Question {
	m := make(map[string]Question, len(Bank))
	for _, q := range Bank {
		m[q.ID] = q
	}
	return m
}

// ByID resolves a catalog entry in constant time.
func ByID(id string) (Question, error) {
	q, ok := index[id]
	if !ok {
		return Question{}, ErrQuestionNotFound
	}
	return q, nil
}

// ApplyImpact returns the decision adjusted by an option's impact factors.
// Each field is max(0, value*multiplier + delta); untouched fields pass
// through aside from the zero clamp.
func ApplyImpact(decision sim.Decision, option Option) sim.Decision {
	return sim.Decision{
		Production: impactField(decision.Production, option.Impact, "production"),
		Price:      impactField(decision.Price, option.Impact, "price"),
		Marketing:  impactField(decision.Marketing, option.Impact, "marketing"),
	}
}

func impactField(value float64, impact map[string]float64, field string) float64 {
	multiplier, ok := impact[field+"_multiplier"]
	if !ok {
		multiplier = 1
	}
	return math.Max(0, value*multiplier+impact[field+"_delta"])
}

// Picker selects questions with an injected random source so selection is
// deterministic under test.
type Picker struct {
	rand *mathrand.Rand
}

func NewPicker(r *mathrand.Rand) *Picker {
	if r == nil {
		r = mathrand.New(mathrand.NewSource(time.Now().UnixNano()))
	}
	return &Picker{rand: r}
}

// Pick draws uniformly from the catalog entries whose id is not excluded.
// When the exclusion covers the whole catalog it falls back to the full
// bank, allowing repeats. That fallback is intentional, not an error.
func (p *Picker) Pick(excludeIDs []string) Question {
	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}
	available := make([]Question, 0, len(Bank))
	for _, q := range Bank {
		if _, seen := excluded[q.ID]; !seen {
			available = append(available, q)
		}
	}
	if len(available) == 0 {
		available = Bank
	}
	return available[p.rand.Intn(len(available))]
}
