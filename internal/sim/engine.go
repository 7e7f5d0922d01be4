// Package sim holds the quarterly financial engine: a single deterministic
// arithmetic pass from a prior snapshot plus a decision to the next snapshot.
package sim

import (
	"encoding/json"
	"fmt"
	"math"
)

// Decision is a company's quarterly input. All fields are clamped to >= 0
// before they reach the engine.
type Decision struct {
	Production float64 `json:"production"`
	Price      float64 `json:"price"`
	Marketing  float64 `json:"marketing"`
}

// Ratio is a float64 whose JSON form survives IEEE infinities. encoding/json
// rejects non-finite numbers, but a zero-debt quarter has an infinite
// liquidity ratio that still has to reach clients and the session store.
type Ratio float64

func (r Ratio) MarshalJSON() ([]byte, error) {
	switch {
	case math.IsInf(float64(r), 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(float64(r), -1):
		return []byte(`"-Infinity"`), nil
	default:
		return json.Marshal(float64(r))
	}
}

func (r *Ratio) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"Infinity"`:
		*r = Ratio(math.Inf(1))
		return nil
	case `"-Infinity"`:
		*r = Ratio(math.Inf(-1))
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse ratio: %w", err)
	}
	*r = Ratio(f)
	return nil
}

// Snapshot is the immutable closing state of one company for one quarter.
// Quarter 0 is the seeded starting position; quarters 1..4 are simulated.
type Snapshot struct {
	Quarter           int     `json:"quarter"`
	Cash              float64 `json:"cash"`
	Inventory         float64 `json:"inventory"`
	Equity            float64 `json:"equity"`
	Debt              float64 `json:"debt"`
	Revenue           float64 `json:"revenue"`
	COGS              float64 `json:"cogs"`
	GrossProfit       float64 `json:"gross_profit"`
	OperatingExpenses float64 `json:"operating_expenses"`
	EBIT              float64 `json:"ebit"`
	Taxes             float64 `json:"taxes"`
	NetIncome         float64 `json:"net_income"`
	UnitsSold         float64 `json:"units_sold"`
	LiquidityRatio    Ratio   `json:"liquidity_ratio"`
	NetMargin         float64 `json:"net_margin"`
	Price             float64 `json:"price"`
	Marketing         float64 `json:"marketing"`
	Production        float64 `json:"production"`
}

// Demand returns the modeled unit demand for a decision, floored at zero.
func (c Constants) Demand(d Decision) float64 {
	priceEffect := (c.ReferencePrice - d.Price) * c.PriceElasticity
	marketingEffect := d.Marketing * c.MarketingEffectPerDollar
	return math.Max(0, c.BaseDemand+priceEffect+marketingEffect)
}

// SimulateQuarter computes the next snapshot from the previous one and an
// effective decision. It is pure and total over finite non-negative input.
//
// Cash recognizes the full production cost in the quarter it is incurred,
// while COGS only covers units actually sold. A cash shortfall is auto-covered
// by short-term debt; debt is recomputed from scratch each quarter rather than
// carried forward.
func (c Constants) SimulateQuarter(previous Snapshot, decision Decision) Snapshot {
	demand := c.Demand(decision)
	available := decision.Production + previous.Inventory
	unitsSold := math.Min(demand, available)

	revenue := unitsSold * decision.Price
	cogs := unitsSold * c.CostPerUnit
	grossProfit := revenue - cogs

	operatingExpenses := c.FixedOpex + decision.Marketing
	ebit := grossProfit - operatingExpenses
	taxes := math.Max(0, ebit*c.TaxRate)
	netIncome := ebit - taxes

	cashChange := revenue - decision.Production*c.CostPerUnit - operatingExpenses
	newCash := previous.Cash + cashChange
	debt := math.Max(0, -newCash)
	cash := math.Max(0, newCash)

	next := Snapshot{
		Quarter:           previous.Quarter + 1,
		Cash:              cash,
		Inventory:         previous.Inventory + decision.Production - unitsSold,
		Equity:            previous.Equity + netIncome,
		Debt:              debt,
		Revenue:           revenue,
		COGS:              cogs,
		GrossProfit:       grossProfit,
		OperatingExpenses: operatingExpenses,
		EBIT:              ebit,
		Taxes:             taxes,
		NetIncome:         netIncome,
		UnitsSold:         unitsSold,
		Price:             decision.Price,
		Marketing:         decision.Marketing,
		Production:        decision.Production,
	}
	next.LiquidityRatio = liquidityRatio(next)
	next.NetMargin = netMargin(next)
	return next
}

// SimulateQuarter runs the engine with the process-wide default constants.
func SimulateQuarter(previous Snapshot, decision Decision) Snapshot {
	return Defaults.SimulateQuarter(previous, decision)
}

func liquidityRatio(s Snapshot) Ratio {
	if s.Debt == 0 {
		return Ratio(math.Inf(1))
	}
	return Ratio((s.Cash + s.Inventory) / s.Debt)
}

func netMargin(s Snapshot) float64 {
	if s.Revenue == 0 {
		return 0
	}
	return s.NetIncome / s.Revenue
}
