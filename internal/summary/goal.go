package summary

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

const daysPerMonth = 30

// DaysRemaining counts calendar days from today until target. A negative result means
// the target date has passed.
func DaysRemaining(target, today time.Time) int {
	return ledger.DaysBetween(today, target)
}

// MonthlyContributionNeeded spreads the remaining amount over the 30-day months left
// until the target date, with at least one month. It is zero once the goal is met.
func MonthlyContributionNeeded(g *ledger.SavingsGoal, today time.Time) decimal.Decimal {
	remaining := g.Remaining()
	if !remaining.IsPositive() {
		return decimal.Zero
	}

	days := DaysRemaining(g.TargetDate, today)

	months := max(1, ceilDiv(days, daysPerMonth))

	return remaining.Div(decimal.NewFromInt(int64(months))).Round(2)
}

// ceilDiv is ceil(a/b) for b > 0, also for negative a.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}

	return q
}

// Progress is what the savings view shows per goal.
type Progress struct {
	Percentage    decimal.Decimal
	Remaining     decimal.Decimal
	DaysRemaining int
	MonthlyNeeded decimal.Decimal
}

// GoalProgress computes the progress figures of g as of today. Percentage is not
// capped at 100.
func GoalProgress(g *ledger.SavingsGoal, today time.Time) Progress {
	pct := decimal.Zero
	if p := Percentage(g.CurrentAmount, g.TargetAmount); p != nil {
		pct = p.Round(2)
	}

	return Progress{
		Percentage:    pct,
		Remaining:     g.Remaining(),
		DaysRemaining: DaysRemaining(g.TargetDate, today),
		MonthlyNeeded: MonthlyContributionNeeded(g, today),
	}
}

// GoalsOverview is the savings summary card.
type GoalsOverview struct {
	TotalSaved  decimal.Decimal
	TotalTarget decimal.Decimal
	Active      int
	Percentage  *decimal.Decimal
}

// OverviewOf sums all goals. A goal is active until its current amount reaches the target.
func OverviewOf(goals []*ledger.SavingsGoal) GoalsOverview {
	o := GoalsOverview{TotalSaved: decimal.Zero, TotalTarget: decimal.Zero}

	for _, g := range goals {
		o.TotalSaved = o.TotalSaved.Add(g.CurrentAmount)
		o.TotalTarget = o.TotalTarget.Add(g.TargetAmount)

		if g.Remaining().IsPositive() {
			o.Active++
		}
	}

	o.Percentage = Percentage(o.TotalSaved, o.TotalTarget)

	return o
}
