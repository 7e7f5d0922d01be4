package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	cl "finsim/internal/cli"
	"finsim/internal/config"
	"finsim/internal/sim"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadCLIFromEnv()
	apiBase := cfg.APIBaseURL

	root := &cobra.Command{
		Use:          "finsim",
		Short:        "FinSim CLI game client",
		SilenceUsage: true,
	}

	root.AddCommand(
		newCreateCmd(&apiBase),
		newShowCmd(&apiBase),
		newQuestionCmd(&apiBase),
		newDecideCmd(&apiBase),
		newAnswerCmd(&apiBase),
		newCloseCmd(&apiBase),
		newDemoCmd(&apiBase),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newClient(apiBase *string) *cl.Client {
	return cl.NewClient(strings.TrimRight(strings.TrimSpace(*apiBase), "/"))
}

func newCreateCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "create <company name> [company name...]",
		Short: "Create a new game session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()
			sess, err := newClient(apiBase).CreateSession(ctx, args)
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Session %s created (game code %s)", sess.ID, sess.GameCode))
			renderSession(sess)
			return nil
		},
	}
}

func newShowCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show the current state of a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()
			sess, err := newClient(apiBase).GetSession(ctx, args[0])
			if err != nil {
				return err
			}
			renderSession(sess)
			return nil
		},
	}
}

func newQuestionCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "question <question-id>",
		Short: "Show a scenario question and its options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()
			q, err := newClient(apiBase).GetQuestion(ctx, args[0])
			if err != nil {
				return err
			}
			renderQuestion(q)
			return nil
		},
	}
}

func newDecideCmd(apiBase *string) *cobra.Command {
	var production, price, marketing float64
	cmd := &cobra.Command{
		Use:   "decide <session-id> <company-id>",
		Short: "Submit a company's quarterly decision",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()
			d := sim.Decision{Production: production, Price: price, Marketing: marketing}
			sess, err := newClient(apiBase).SubmitDecision(ctx, args[0], args[1], d)
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Decision recorded for %s.", args[1]))
			renderSession(sess)
			return nil
		},
	}
	cmd.Flags().Float64Var(&production, "production", 0, "units to produce this quarter")
	cmd.Flags().Float64Var(&price, "price", 0, "unit price")
	cmd.Flags().Float64Var(&marketing, "marketing", 0, "marketing spend")
	return cmd
}

func newAnswerCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "answer <session-id> <company-id> <option-id>",
		Short: "Answer the company's active scenario question",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()
			sess, err := newClient(apiBase).SubmitAnswer(ctx, args[0], args[1], args[2])
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Option %s selected for %s.", args[2], args[1]))
			renderSession(sess)
			return nil
		},
	}
}

func newCloseCmd(apiBase *string) *cobra.Command {
	return &cobra.Command{
		Use:   "close <session-id>",
		Short: "Close the current quarter and simulate results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := requestContext(cmd)
			defer cancel()
			sess, err := newClient(apiBase).CloseQuarter(ctx, args[0])
			if err != nil {
				return err
			}
			printSuccess(fmt.Sprintf("Quarter closed. Status: %s", sess.GameStatus))
			renderSession(sess)
			return nil
		},
	}
}

func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), 30*time.Second)
}
