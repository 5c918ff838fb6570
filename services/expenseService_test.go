package services

import (
	"testing"
	"time"

	"github.com/Keerthanaa24/SkipQ/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expenseOf(amount int64, category string) models.Expense {
	return models.Expense{Amount: &amount, Category: &category}
}

func TestSummarizeExpenses(t *testing.T) {
	monthStart, err := time.Parse("2006-01", "2026-04")
	require.NoError(t, err)

	expenses := []models.Expense{
		expenseOf(300000, "ingredients"),
		expenseOf(150000, "ingredients"),
		expenseOf(60000, "gas"),
		expenseOf(90000, "salary"),
	}

	summary := SummarizeExpenses("2026-04", monthStart, expenses)

	assert.Equal(t, "2026-04", summary.Month)
	assert.Equal(t, int64(600000), summary.Total)
	assert.Equal(t, int64(450000), summary.Categories["ingredients"])
	assert.Equal(t, int64(60000), summary.Categories["gas"])
	assert.Equal(t, int64(90000), summary.Categories["salary"])
	// April has 30 days.
	assert.Equal(t, int64(20000), summary.DailyAverage)
}

func TestSummarizeExpensesEmpty(t *testing.T) {
	monthStart, err := time.Parse("2006-01", "2026-02")
	require.NoError(t, err)

	summary := SummarizeExpenses("2026-02", monthStart, nil)

	assert.Equal(t, int64(0), summary.Total)
	assert.Empty(t, summary.Categories)
	assert.Equal(t, int64(0), summary.DailyAverage)
}

func TestSummarizeExpensesSkipsPartialDocuments(t *testing.T) {
	monthStart, err := time.Parse("2006-01", "2026-04")
	require.NoError(t, err)

	amount := int64(5000)
	category := "gas"
	expenses := []models.Expense{
		{Amount: &amount},     // no category
		{Category: &category}, // no amount
		expenseOf(30000, "gas"),
	}

	summary := SummarizeExpenses("2026-04", monthStart, expenses)
	assert.Equal(t, int64(30000), summary.Total)
	assert.Equal(t, int64(30000), summary.Categories["gas"])
}
