package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	cl "finsim/internal/cli"
	"finsim/internal/session"
	"finsim/internal/sim"
)

// Scripted decisions for the demo companies, keyed by derived company id.
var demoDecisions = map[string]sim.Decision{
	"alpha_corp": {Production: 1_500, Price: 55, Marketing: 2_000},
	"beta_inc":   {Production: 1_200, Price: 48, Marketing: 2_500},
}

func newDemoCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Play a full scripted four-quarter game against the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()
			return runDemo(ctx, newClient(apiBase))
		},
	}
}

func runDemo(ctx context.Context, client *cl.Client) error {
	sess, err := client.CreateSession(ctx, []string{"Alpha Corp", "Beta Inc"})
	if err != nil {
		return err
	}
	accent.Println("=== FinSim Console Demo ===")
	fmt.Printf("Session %s, game code %s\n", sess.ID, sess.GameCode)

	for sess.GameStatus != session.StatusFinished {
		accent.Printf("\n--- %s ---\n", sess.GameStatus)
		for id, company := range sess.Companies {
			question, err := client.GetQuestion(ctx, company.ActiveQuestionID)
			if err != nil {
				return err
			}
			renderQuestion(question)
			chosen := question.Options[0]
			fmt.Printf("%s picks option %s\n", company.Name, chosen.ID)
			if _, err := client.SubmitAnswer(ctx, sess.ID, id, chosen.ID); err != nil {
				return err
			}

			decision, ok := demoDecisions[id]
			if !ok {
				decision = sim.Decision{Production: 1_000, Price: 50, Marketing: 1_000}
			}
			if _, err := client.SubmitDecision(ctx, sess.ID, id, decision); err != nil {
				return err
			}
		}

		sess, err = client.CloseQuarter(ctx, sess.ID)
		if err != nil {
			return err
		}
		for _, company := range sess.Companies {
			fmt.Printf("\n%s\n", company.Name)
			renderSnapshot(company.Latest())
		}
	}

	printSuccess("\nGame finished.")
	renderSession(sess)
	return nil
}
