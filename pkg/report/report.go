package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/grana/grana/internal/money"
	"github.com/grana/grana/pkg/fixedexpense"
	"github.com/grana/grana/pkg/transaction"
)

var ErrInvalidPeriod = errors.New("month must be 1-12 and year 1-9999")

// MonthlyReport is the derived, read-only view of one (month, year) period.
// It is recomputed from the stored collections and never persisted.
type MonthlyReport struct {
	Month                 int
	Year                  int
	TotalIncome           money.Money
	TotalVariableExpenses money.Money
	TotalFixedExpenses    money.Money
	FixedPaidTotal        money.Money
	FixedPendingTotal     money.Money
	Balance               money.Money
	Transactions          []transaction.Transaction
	FixedExpenses         []fixedexpense.FixedExpense
	LimitExceeded         bool
	ConfiguredLimit       *money.Money
}

// CombinedExpenses is the sum of variable and fixed expenses, the value the
// alert limit is checked against.
func (r MonthlyReport) CombinedExpenses() money.Money {
	return r.TotalVariableExpenses + r.TotalFixedExpenses
}

// MonthSummary is one point of the year dashboard series.
type MonthSummary struct {
	Month            int
	Income           money.Money
	CombinedExpenses money.Money
	VariableExpenses money.Money
	FixedExpenses    money.Money
	Balance          money.Money
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return fmt.Errorf("%w: got month %d, year %d", ErrInvalidPeriod, month, year)
	}
	return nil
}

// monthNames holds the pt-BR month names used in report titles and export
// file names, the locale of the rendered output.
var monthNames = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthName returns the lowercase pt-BR name of the month (1-12).
func MonthName(month int) string {
	return monthNames[month-1]
}

// MonthTitle returns the capitalized month name with the year, e.g. "Janeiro 2024".
func MonthTitle(month, year int) string {
	name := MonthName(month)
	// Title-case the first rune; month names are ASCII except "março", whose
	// first rune is ASCII too.
	return fmt.Sprintf("%s%s %d", strings.ToUpper(name[:1]), name[1:], year)
}
