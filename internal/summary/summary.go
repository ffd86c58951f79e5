// Package summary aggregates a user's transactions into totals, a monthly
// series and short spending insights.
package summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const (
	NoTopCategory = "N/A"
	monthLayout   = "Jan 2006"
)

// Expense is the part of a stored transaction the summary needs.
type Expense struct {
	Category string
	Amount   decimal.Decimal
	Date     time.Time
}

type MonthlyTotal struct {
	Month string
	Total decimal.Decimal
}

type MonthlySummary struct {
	TotalSpent         decimal.Decimal
	TransactionCount   int
	TopCategory        string
	SpendingByCategory map[string]decimal.Decimal
	MonthlyTotals      []MonthlyTotal
	Insights           []string
}

// Build summarises expenses, which are expected in ascending date order. When
// two categories share the highest total, the one seen first wins.
func Build(expenses []Expense) MonthlySummary {
	if len(expenses) == 0 {
		return MonthlySummary{
			TotalSpent:         decimal.Zero,
			TopCategory:        NoTopCategory,
			SpendingByCategory: map[string]decimal.Decimal{},
			MonthlyTotals:      []MonthlyTotal{},
			Insights:           []string{noTransactionsInsight},
		}
	}

	total := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)
	var categoryOrder []string
	byMonth := make(map[time.Time]decimal.Decimal)

	for _, expense := range expenses {
		total = total.Add(expense.Amount)

		if _, seen := byCategory[expense.Category]; !seen {
			categoryOrder = append(categoryOrder, expense.Category)
		}
		byCategory[expense.Category] = byCategory[expense.Category].Add(expense.Amount)

		month := time.Date(expense.Date.Year(), expense.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		byMonth[month] = byMonth[month].Add(expense.Amount)
	}

	topCategory := categoryOrder[0]
	for _, category := range categoryOrder[1:] {
		if byCategory[category].GreaterThan(byCategory[topCategory]) {
			topCategory = category
		}
	}

	months := make([]time.Time, 0, len(byMonth))
	for month := range byMonth {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	monthlyTotals := make([]MonthlyTotal, len(months))
	for i, month := range months {
		monthlyTotals[i] = MonthlyTotal{Month: month.Format(monthLayout), Total: byMonth[month]}
	}

	result := MonthlySummary{
		TotalSpent:         total,
		TransactionCount:   len(expenses),
		TopCategory:        topCategory,
		SpendingByCategory: byCategory,
		MonthlyTotals:      monthlyTotals,
	}
	result.Insights = generateInsights(result)

	return result
}
