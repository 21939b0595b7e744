package report

import (
	"testing"
	"time"

	"github.com/grana/grana/internal/money"
	"github.com/grana/grana/pkg/fixedexpense"
	"github.com/grana/grana/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() MonthlyReport {
	return MonthlyReport{
		Month:                 1,
		Year:                  2024,
		TotalIncome:           money.FromFloat(5000),
		TotalVariableExpenses: money.FromFloat(1200),
		TotalFixedExpenses:    money.FromFloat(1100),
		FixedPaidTotal:        money.FromFloat(800),
		FixedPendingTotal:     money.FromFloat(300),
		Balance:               money.FromFloat(2700),
		Transactions: []transaction.Transaction{
			{
				ID:          "tx-2",
				Kind:        transaction.KindExpense,
				Amount:      money.FromFloat(1200),
				Description: "Rent",
				Timestamp:   time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
				Month:       1,
				Year:        2024,
			},
			{
				ID:          "tx-1",
				Kind:        transaction.KindIncome,
				Amount:      money.FromFloat(5000),
				Description: "Salary",
				Timestamp:   time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC),
				Month:       1,
				Year:        2024,
			},
		},
		FixedExpenses: []fixedexpense.FixedExpense{
			{ID: "fe-1", Name: "Internet", Amount: money.FromFloat(800), DueDay: 5, Paid: true, Month: 1, Year: 2024},
			{ID: "fe-2", Name: "Gym", Amount: money.FromFloat(300), DueDay: 10, Paid: false, Month: 1, Year: 2024},
		},
	}
}

func TestCsvReportRendererImpl_Render(t *testing.T) {
	t.Run("should render the full monthly statement", func(t *testing.T) {
		// given
		renderer := NewCsvReportRenderer()

		// when
		out, err := renderer.Render(testReport())

		// then
		require.NoError(t, err)
		expected := "Janeiro 2024\n" +
			"\n" +
			"Income,\"R$ 5.000,00\"\n" +
			"Variable expenses,\"R$ 1.200,00\"\n" +
			"Fixed expenses,\"R$ 1.100,00\"\n" +
			"Balance,\"R$ 2.700,00\"\n" +
			"\n" +
			"Date,Kind,Description,Amount\n" +
			"10/01/2024,Expense,Rent,\"-R$ 1.200,00\"\n" +
			"05/01/2024,Income,Salary,\"R$ 5.000,00\"\n" +
			"\n" +
			"Fixed expense,Due,Amount,Status\n" +
			"Internet,day 5,\"R$ 800,00\",Paid\n" +
			"Gym,day 10,\"R$ 300,00\",Pending\n"
		assert.Equal(t, expected, string(out))
	})

	t.Run("should render an empty period without tables", func(t *testing.T) {
		// given
		renderer := NewCsvReportRenderer()

		// when
		out, err := renderer.Render(MonthlyReport{Month: 6, Year: 2025})

		// then
		require.NoError(t, err)
		expected := "Junho 2025\n" +
			"\n" +
			"Income,\"R$ 0,00\"\n" +
			"Variable expenses,\"R$ 0,00\"\n" +
			"Fixed expenses,\"R$ 0,00\"\n" +
			"Balance,\"R$ 0,00\"\n" +
			"\n" +
			"Date,Kind,Description,Amount\n" +
			"\n" +
			"Fixed expense,Due,Amount,Status\n"
		assert.Equal(t, expected, string(out))
	})
}
