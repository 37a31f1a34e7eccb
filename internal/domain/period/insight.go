package period

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// InsightKind identifies which dashboard message was chosen.
type InsightKind string

const (
	InsightStartDay    InsightKind = "start_day"
	InsightGoalMet     InsightKind = "goal_met"
	InsightFocusVolume InsightKind = "focus_volume"
	InsightProgress    InsightKind = "progress"
)

// platformConcentration is the share of the day's revenue above which a
// single platform is considered dominant.
var platformConcentration = decimal.NewFromFloat(0.7)

// Insight is a short motivational message for the daily dashboard.
type Insight struct {
	Kind      InsightKind
	Title     string
	Message   string
	Surplus   decimal.Decimal
	Platform  string
	Percent   decimal.Decimal
	Remaining decimal.Decimal
}

// SelectInsight picks the first matching message, in priority order:
// nothing earned yet, goal met, one platform dominating, plain progress.
func SelectInsight(revenue, dailyGoal decimal.Decimal, byPlatform map[string]decimal.Decimal) Insight {
	if revenue.IsZero() {
		msg := "No revenue recorded yet today. Log your first trip to get going."
		if dailyGoal.IsPositive() {
			msg = fmt.Sprintf("No revenue recorded yet today. Your goal for today is %s.", dailyGoal.StringFixed(2))
		}
		return Insight{
			Kind:    InsightStartDay,
			Title:   "Start your day",
			Message: msg,
		}
	}

	if dailyGoal.IsPositive() && revenue.GreaterThanOrEqual(dailyGoal) {
		surplus := revenue.Sub(dailyGoal)
		return Insight{
			Kind:    InsightGoalMet,
			Title:   "Daily goal reached",
			Message: fmt.Sprintf("You beat today's goal by %s.", surplus.StringFixed(2)),
			Surplus: surplus,
		}
	}

	if platform, ok := dominantPlatform(revenue, byPlatform); ok {
		return Insight{
			Kind:     InsightFocusVolume,
			Title:    "Focus on volume",
			Message:  fmt.Sprintf("Most of today's revenue came from %s. More trips there will move you fastest.", platform),
			Platform: platform,
		}
	}

	if !dailyGoal.IsPositive() {
		return Insight{
			Kind:    InsightProgress,
			Title:   "Keep going",
			Message: fmt.Sprintf("You have earned %s today. Set a monthly goal to track your progress.", revenue.StringFixed(2)),
		}
	}

	percent := Performance(revenue, dailyGoal).Round(0)
	remaining := dailyGoal.Sub(revenue)
	return Insight{
		Kind:      InsightProgress,
		Title:     "Keep going",
		Message:   fmt.Sprintf("%s%% of today's goal done, %s to go.", percent.String(), remaining.StringFixed(2)),
		Percent:   percent,
		Remaining: remaining,
	}
}

// dominantPlatform returns the platform holding more than 70% of revenue.
func dominantPlatform(revenue decimal.Decimal, byPlatform map[string]decimal.Decimal) (string, bool) {
	if !revenue.IsPositive() {
		return "", false
	}

	platforms := make([]string, 0, len(byPlatform))
	for p := range byPlatform {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)

	threshold := revenue.Mul(platformConcentration)
	for _, p := range platforms {
		if byPlatform[p].GreaterThan(threshold) {
			return p, true
		}
	}
	return "", false
}
