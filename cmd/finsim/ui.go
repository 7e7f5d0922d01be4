package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/fatih/color"

	"finsim/internal/questions"
	"finsim/internal/session"
	"finsim/internal/sim"
)

var (
	accent  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen, color.Bold)
	warn    = color.New(color.FgYellow, color.Bold)
	danger  = color.New(color.FgRed, color.Bold)
	neutral = color.New(color.FgHiWhite)
)

func printSuccess(msg string) {
	success.Println(msg)
}

func printWarn(msg string) {
	warn.Println(msg)
}

func renderSession(sess session.Session) {
	accent.Printf("\n== SESSION %s (code %s) ==\n", sess.ID, sess.GameCode)
	fmt.Printf("Status:  %s (quarter %d)\n", sess.GameStatus, sess.CurrentQuarter)

	ids := make([]string, 0, len(sess.Companies))
	for id := range sess.Companies {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		c := sess.Companies[id]
		accent.Printf("\n%s (%s)\n", c.Name, id)
		if c.ActiveQuestionID != "" {
			fmt.Printf("Question: %s", c.ActiveQuestionID)
			if c.SelectedOptionID != "" {
				fmt.Printf("  answered %s", c.SelectedOptionID)
			}
			fmt.Println()
		}
		if c.Decisions != nil {
			fmt.Printf("Pending decision: production=%.0f price=%.2f marketing=%.0f\n",
				c.Decisions.Production, c.Decisions.Price, c.Decisions.Marketing)
		}
		renderSnapshot(c.Latest())
	}
	fmt.Println()
}

func renderSnapshot(s sim.Snapshot) {
	fmt.Printf("Q%d  cash=%.0f inventory=%.0f debt=%.0f equity=%.0f\n",
		s.Quarter, s.Cash, s.Inventory, s.Debt, s.Equity)
	if s.Quarter > 0 {
		fmt.Printf("    revenue=%.0f net_income=%s liquidity=%s net_margin=%.2f%%\n",
			s.Revenue, colorizeAmount(s.NetIncome), formatRatio(s.LiquidityRatio), s.NetMargin*100)
	}
}

func renderQuestion(q questions.Question) {
	accent.Printf("\n== %s ==\n", q.ID)
	fmt.Println(q.Prompt)
	for _, opt := range q.Options {
		fmt.Printf("  %s) %s\n", opt.ID, opt.Text)
	}
	fmt.Println()
}

func colorizeAmount(v float64) string {
	text := fmt.Sprintf("%+.0f", v)
	switch {
	case v > 0:
		return success.Sprint(text)
	case v < 0:
		return danger.Sprint(text)
	default:
		return neutral.Sprint(text)
	}
}

func formatRatio(r sim.Ratio) string {
	if math.IsInf(float64(r), 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", float64(r))
}
