package session

import (
	"context"
	"errors"
	"testing"

	"finsim/internal/sim"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("got %v, want ErrSessionNotFound", err)
	}

	sess := Session{
		ID:             "s1",
		GameCode:       "ABC123",
		GameStatus:     StatusQ1,
		CurrentQuarter: 1,
		Companies: map[string]Company{
			"alpha": {
				Name:            "Alpha",
				Financials:      []sim.Snapshot{SeedSnapshot()},
				QuestionHistory: []string{"q01"},
			},
		},
	}
	if err := store.Save(ctx, sess); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if got.GameCode != "ABC123" || len(got.Companies) != 1 {
		t.Fatalf("round trip mismatch: %+v", got)
	}

	// The store must hand out detached copies in both directions.
	c := got.Companies["alpha"]
	c.QuestionHistory[0] = "q99"
	got.Companies["alpha"] = c

	reread, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	if reread.Companies["alpha"].QuestionHistory[0] != "q01" {
		t.Fatal("mutation through a returned session reached the store")
	}
}
