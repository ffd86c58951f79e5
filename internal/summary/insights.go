package summary

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	maxInsights           = 5
	frequentSpenderCount  = 10
	monthSwingPercent     = 20.0
	noTransactionsInsight = "No transactions yet. Start tracking your expenses!"
)

var hundred = decimal.NewFromInt(100)

// generateInsights emits insights in a fixed priority order.
func generateInsights(s MonthlySummary) []string {
	total := s.TotalSpent.InexactFloat64()
	insights := []string{
		fmt.Sprintf("You've spent $%.2f in total this period.", total),
	}

	if len(s.SpendingByCategory) > 0 {
		topAmount := s.SpendingByCategory[s.TopCategory]
		percentage := 0.0
		if !s.TotalSpent.IsZero() {
			percentage = topAmount.Div(s.TotalSpent).Mul(hundred).InexactFloat64()
		}
		insights = append(insights, fmt.Sprintf("%s is your biggest expense category at $%.2f (%.1f%%).",
			s.TopCategory, topAmount.InexactFloat64(), percentage))
	}

	if insight, ok := monthOverMonthInsight(s.MonthlyTotals); ok {
		insights = append(insights, insight)
	}

	average := s.TotalSpent.Div(decimal.NewFromInt(int64(s.TransactionCount)))
	insights = append(insights, fmt.Sprintf("Your average transaction is $%.2f.", average.InexactFloat64()))

	if s.TransactionCount >= frequentSpenderCount {
		insights = append(insights, fmt.Sprintf("You've made %d transactions. Consider reviewing recurring expenses.", s.TransactionCount))
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

// monthOverMonthInsight compares the two latest months. A previous month
// totalling zero has no meaningful percentage and yields nothing.
func monthOverMonthInsight(monthly []MonthlyTotal) (string, bool) {
	if len(monthly) < 2 {
		return "", false
	}

	previous := monthly[len(monthly)-2].Total
	current := monthly[len(monthly)-1].Total
	if previous.IsZero() {
		return "", false
	}

	change := current.Sub(previous).Div(previous).Mul(hundred).InexactFloat64()
	switch {
	case change > monthSwingPercent:
		return fmt.Sprintf("Warning: Your spending increased by %.1f%% compared to last month.", change), true
	case change < -monthSwingPercent:
		return fmt.Sprintf("Great job! You reduced spending by %.1f%% compared to last month.", -change), true
	}
	return "", false
}
