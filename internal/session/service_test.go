package session

import (
	"context"
	"errors"
	mathrand "math/rand"
	"testing"

	"finsim/internal/questions"
	"finsim/internal/sim"
)

func newTestService() (*Service, *MemoryStore) {
	store := NewMemoryStore()
	return NewService(store, nil, mathrand.New(mathrand.NewSource(1))), store
}

func seeds(names ...string) []CompanySeed {
	out := make([]CompanySeed, 0, len(names))
	for _, n := range names {
		out = append(out, CompanySeed{ID: n, Name: n})
	}
	return out
}

func TestCreateSeedsCompaniesAndAssignsQuestions(t *testing.T) {
	svc, _ := newTestService()
	sess, err := svc.Create(context.Background(), seeds("alpha", "beta"))
	if err != nil {
		t.Fatal(err)
	}

	if sess.GameStatus != StatusQ1 || sess.CurrentQuarter != 1 {
		t.Fatalf("new session status=%s quarter=%d, want Q1/1", sess.GameStatus, sess.CurrentQuarter)
	}
	if sess.ID == "" || len(sess.GameCode) != 6 {
		t.Fatalf("bad identifiers: id=%q code=%q", sess.ID, sess.GameCode)
	}
	if len(sess.Companies) != 2 {
		t.Fatalf("companies = %d, want 2", len(sess.Companies))
	}
	for id, c := range sess.Companies {
		if len(c.Financials) != 1 {
			t.Fatalf("%s financials len = %d, want seed only", id, len(c.Financials))
		}
		seed := c.Financials[0]
		if seed.Quarter != 0 || seed.Cash != 50_000 || seed.Inventory != 1_000 || seed.Equity != 50_000 || seed.Debt != 0 {
			t.Fatalf("%s seed snapshot = %+v", id, seed)
		}
		if c.ActiveQuestionID == "" {
			t.Fatalf("%s has no question assigned at creation", id)
		}
		if _, err := questions.ByID(c.ActiveQuestionID); err != nil {
			t.Fatalf("%s assigned unknown question %q", id, c.ActiveQuestionID)
		}
		if len(c.QuestionHistory) != 1 || c.QuestionHistory[0] != c.ActiveQuestionID {
			t.Fatalf("%s history = %v, want [%s]", id, c.QuestionHistory, c.ActiveQuestionID)
		}
		if c.SelectedOptionID != "" || c.Decisions != nil {
			t.Fatalf("%s should start with no answer and no decision", id)
		}
	}
}

func TestSubmitDecisionAndAnswer(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	sess, err := svc.Create(ctx, seeds("alpha"))
	if err != nil {
		t.Fatal(err)
	}

	d := sim.Decision{Production: 1_200, Price: 48, Marketing: 2_500}
	updated, err := svc.SubmitDecision(ctx, sess.ID, "alpha", d)
	if err != nil {
		t.Fatal(err)
	}
	if got := updated.Companies["alpha"].Decisions; got == nil || *got != d {
		t.Fatalf("decision = %+v, want %+v", got, d)
	}

	updated, err = svc.SubmitAnswer(ctx, sess.ID, "alpha", "B")
	if err != nil {
		t.Fatal(err)
	}
	if got := updated.Companies["alpha"].SelectedOptionID; got != "B" {
		t.Fatalf("selected option = %q, want B", got)
	}

	if _, err := svc.SubmitDecision(ctx, sess.ID, "ghost", d); !errors.Is(err, ErrCompanyNotFound) {
		t.Fatalf("unknown company: got %v, want ErrCompanyNotFound", err)
	}
	if _, err := svc.SubmitAnswer(ctx, "nope", "alpha", "A"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("unknown session: got %v, want ErrSessionNotFound", err)
	}
}

func TestCloseQuarterAppliesSelectedOption(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	// Marketing cut of 20% (q03 option A) against a 1000 marketing budget.
	sess := Session{
		ID:             "s1",
		GameCode:       "CODE01",
		GameStatus:     StatusQ1,
		CurrentQuarter: 1,
		Companies: map[string]Company{
			"gamma": {
				Name:             "Gamma",
				Financials:       []sim.Snapshot{{Quarter: 0, Cash: 10_000, Inventory: 500, Equity: 10_000}},
				Decisions:        &sim.Decision{Production: 800, Price: 52, Marketing: 1_000},
				ActiveQuestionID: "q03",
				SelectedOptionID: "A",
				QuestionHistory:  []string{},
			},
		},
	}
	if err := store.Save(ctx, sess); err != nil {
		t.Fatal(err)
	}

	updated, err := svc.CloseQuarter(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	gamma := updated.Companies["gamma"]
	latest := gamma.Latest()
	if latest.Marketing != 800 {
		t.Fatalf("effective marketing = %v, want 1000*0.8", latest.Marketing)
	}
	if len(gamma.QuestionHistory) != 1 || gamma.QuestionHistory[0] != "q03" {
		t.Fatalf("history = %v, want the resolved question recorded once", gamma.QuestionHistory)
	}
	if gamma.Decisions != nil || gamma.ActiveQuestionID != "" || gamma.SelectedOptionID != "" {
		t.Fatalf("company not reset for next cycle: %+v", gamma)
	}
	if updated.GameStatus != StatusQ2 || updated.CurrentQuarter != 2 {
		t.Fatalf("status=%s quarter=%d, want Q2/2", updated.GameStatus, updated.CurrentQuarter)
	}
}

func TestCloseQuarterStaleOptionRunsBaseDecision(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	base := sim.Decision{Production: 1_500, Price: 55, Marketing: 2_000}
	sess := Session{
		ID:             "s2",
		GameStatus:     StatusQ1,
		CurrentQuarter: 1,
		Companies: map[string]Company{
			"alpha": {
				Name:             "Alpha",
				Financials:       []sim.Snapshot{SeedSnapshot()},
				Decisions:        &base,
				ActiveQuestionID: "q01",
				SelectedOptionID: "Z", // not an option of q01
			},
		},
	}
	if err := store.Save(ctx, sess); err != nil {
		t.Fatal(err)
	}

	updated, err := svc.CloseQuarter(ctx, "s2")
	if err != nil {
		t.Fatal(err)
	}
	latest := updated.Companies["alpha"].Latest()
	want := sim.SimulateQuarter(SeedSnapshot(), base)
	if latest != want {
		t.Fatalf("stale option should leave base decision untouched:\n got %+v\nwant %+v", latest, want)
	}
}

func TestCloseQuarterWithoutAssignedQuestionRecordsAdHocID(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	sess := Session{
		ID:             "s3",
		GameStatus:     StatusQ1,
		CurrentQuarter: 1,
		Companies: map[string]Company{
			"alpha": {
				Name:       "Alpha",
				Financials: []sim.Snapshot{SeedSnapshot()},
			},
		},
	}
	if err := store.Save(ctx, sess); err != nil {
		t.Fatal(err)
	}

	updated, err := svc.CloseQuarter(ctx, "s3")
	if err != nil {
		t.Fatal(err)
	}
	alpha := updated.Companies["alpha"]
	if len(alpha.QuestionHistory) != 1 {
		t.Fatalf("history = %v, want one ad hoc id", alpha.QuestionHistory)
	}
	if _, err := questions.ByID(alpha.QuestionHistory[0]); err != nil {
		t.Fatalf("ad hoc id %q not in catalog", alpha.QuestionHistory[0])
	}
	if alpha.ActiveQuestionID != "" {
		t.Fatalf("ad hoc question must not be re-assigned, got %q", alpha.ActiveQuestionID)
	}
}

func TestFullGameRunsFourQuartersThenFinishes(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	sess, err := svc.Create(ctx, seeds("alpha", "beta"))
	if err != nil {
		t.Fatal(err)
	}

	wantStatuses := []Status{StatusQ2, StatusQ3, StatusQ4, StatusFinished}
	for i, want := range wantStatuses {
		for id := range sess.Companies {
			if _, err := svc.SubmitDecision(ctx, sess.ID, id, sim.Decision{Production: 1_000, Price: 50, Marketing: 1_000}); err != nil {
				t.Fatal(err)
			}
		}
		sess, err = svc.CloseQuarter(ctx, sess.ID)
		if err != nil {
			t.Fatal(err)
		}
		if sess.GameStatus != want {
			t.Fatalf("after close %d status = %s, want %s", i+1, sess.GameStatus, want)
		}
		if sess.GameStatus != StatusFinished {
			sess, err = svc.AssignQuarterQuestions(ctx, sess.ID)
			if err != nil {
				t.Fatal(err)
			}
		}
	}

	for id, c := range sess.Companies {
		if len(c.Financials) != 5 {
			t.Fatalf("%s financials len = %d, want seed + 4 quarters", id, len(c.Financials))
		}
		for q := 0; q < 5; q++ {
			if c.Financials[q].Quarter != q {
				t.Fatalf("%s snapshot %d has quarter %d", id, q, c.Financials[q].Quarter)
			}
		}
		seen := map[string]struct{}{}
		for _, qid := range c.QuestionHistory {
			if _, dup := seen[qid]; dup {
				t.Fatalf("%s repeated question %q before exhausting the catalog", id, qid)
			}
			seen[qid] = struct{}{}
		}
		if c.ActiveQuestionID != "" {
			t.Fatalf("%s still has an active question after the game finished", id)
		}
	}

	// Terminal state: a further close is a no-op.
	again, err := svc.CloseQuarter(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	if again.GameStatus != StatusFinished {
		t.Fatalf("status regressed to %s", again.GameStatus)
	}
	if got := len(again.Companies["alpha"].Financials); got != 5 {
		t.Fatalf("close on finished session grew history to %d", got)
	}
}

func TestCloseQuarterUnknownSession(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.CloseQuarter(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("got %v, want ErrSessionNotFound", err)
	}
}

func TestReturnedSessionsDoNotAliasStore(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	sess, err := svc.Create(ctx, seeds("alpha"))
	if err != nil {
		t.Fatal(err)
	}

	got := sess.Companies["alpha"]
	got.Name = "mutated"
	got.QuestionHistory = append(got.QuestionHistory, "q99")
	sess.Companies["alpha"] = got

	reread, err := svc.Get(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}
	fresh := reread.Companies["alpha"]
	if fresh.Name != "alpha" || len(fresh.QuestionHistory) != 1 {
		t.Fatalf("mutating a returned session leaked into the store: %+v", fresh)
	}
}
