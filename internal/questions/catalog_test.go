package questions

import (
	"errors"
	mathrand "math/rand"
	"testing"

	"finsim/internal/sim"
)

func TestBankIntegrity(t *testing.T) {
	if len(Bank) != 20 {
		t.Fatalf("bank has %d questions, want 20", len(Bank))
	}
	seen := make(map[string]struct{}, len(Bank))
	for _, q := range Bank {
		if _, dup := seen[q.ID]; dup {
			t.Fatalf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = struct{}{}
		if len(q.Options) < 2 {
			t.Fatalf("question %q has %d options, want >= 2", q.ID, len(q.Options))
		}
		optIDs := make(map[string]struct{}, len(q.Options))
		for _, opt := range q.Options {
			if _, dup := optIDs[opt.ID]; dup {
				t.Fatalf("question %q has duplicate option id %q", q.ID, opt.ID)
			}
			optIDs[opt.ID] = struct{}{}
		}
	}
}

func TestByID(t *testing.T) {
	q, err := ByID("q07")
	if err != nil {
		t.Fatalf("ByID(q07): %v", err)
	}
	if q.ID != "q07" {
		t.Fatalf("got %q, want q07", q.ID)
	}
	if _, err := ByID("nope"); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestApplyImpactScalesDecision(t *testing.T) {
	base := sim.Decision{Production: 1_000, Price: 50, Marketing: 2_000}
	q, err := ByID("q02")
	if err != nil {
		t.Fatal(err)
	}
	// price_multiplier 0.97, production_multiplier 1.05
	got := ApplyImpact(base, q.Options[1])

	if got.Price != 50*0.97 {
		t.Errorf("price = %v, want %v", got.Price, 50*0.97)
	}
	if got.Production != 1_000*1.05 {
		t.Errorf("production = %v, want %v", got.Production, 1_000*1.05)
	}
	if got.Marketing != 2_000 {
		t.Errorf("marketing = %v, want unchanged 2000", got.Marketing)
	}
}

func TestApplyImpactEmptyIsIdentity(t *testing.T) {
	base := sim.Decision{Production: 800, Price: 52, Marketing: 1_500}
	got := ApplyImpact(base, Option{ID: "X", Impact: map[string]float64{}})
	if got != base {
		t.Fatalf("empty impact changed decision: %+v -> %+v", base, got)
	}
}

func TestApplyImpactClampsAtZero(t *testing.T) {
	base := sim.Decision{Production: 100, Price: 10, Marketing: 0}
	opt := Option{ID: "X", Impact: map[string]float64{"price_delta": -40, "production_multiplier": 0}}
	got := ApplyImpact(base, opt)
	if got.Price != 0 {
		t.Errorf("price = %v, want clamped to 0", got.Price)
	}
	if got.Production != 0 {
		t.Errorf("production = %v, want 0", got.Production)
	}
}

func TestPickerExcludesSeenQuestions(t *testing.T) {
	p := NewPicker(mathrand.New(mathrand.NewSource(1)))
	exclude := make([]string, 0, len(Bank)-1)
	for _, q := range Bank[:len(Bank)-1] {
		exclude = append(exclude, q.ID)
	}
	onlyLeft := Bank[len(Bank)-1].ID
	for i := 0; i < 50; i++ {
		if got := p.Pick(exclude); got.ID != onlyLeft {
			t.Fatalf("pick %d returned excluded question %q", i, got.ID)
		}
	}
}

func TestPickerFallsBackWhenExhausted(t *testing.T) {
	p := NewPicker(mathrand.New(mathrand.NewSource(7)))
	exclude := make([]string, 0, len(Bank))
	for _, q := range Bank {
		exclude = append(exclude, q.ID)
	}
	got := p.Pick(exclude)
	if _, err := ByID(got.ID); err != nil {
		t.Fatalf("fallback pick returned unknown question %q", got.ID)
	}
}

func TestPickerUsesInjectedSource(t *testing.T) {
	a := NewPicker(mathrand.New(mathrand.NewSource(42)))
	b := NewPicker(mathrand.New(mathrand.NewSource(42)))
	for i := 0; i < 10; i++ {
		if a.Pick(nil).ID != b.Pick(nil).ID {
			t.Fatal("same seed diverged")
		}
	}
}
