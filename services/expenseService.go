package services

import (
	"time"

	"github.com/Keerthanaa24/SkipQ/models"
)

// SummarizeExpenses folds a month of expenses into totals. The daily
// average divides by the number of days in the month.
func SummarizeExpenses(month string, monthStart time.Time, expenses []models.Expense) models.MonthlyExpenseSummary {
	summary := models.MonthlyExpenseSummary{
		Month:      month,
		Categories: make(map[string]int64),
	}

	for _, expense := range expenses {
		if expense.Amount == nil || expense.Category == nil {
			continue
		}
		summary.Total += *expense.Amount
		summary.Categories[*expense.Category] += *expense.Amount
	}

	daysInMonth := int64(monthStart.AddDate(0, 1, -1).Day())
	if daysInMonth > 0 {
		summary.DailyAverage = summary.Total / daysInMonth
	}
	return summary
}
