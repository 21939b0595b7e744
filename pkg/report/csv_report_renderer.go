package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/grana/grana/internal/money"
	"github.com/grana/grana/pkg/transaction"
	log "github.com/sirupsen/logrus"
)

// Renderer turns a MonthlyReport into a downloadable file body.
type Renderer interface {
	Render(report MonthlyReport) ([]byte, error)
}

type CsvReportRendererImpl struct {
}

func NewCsvReportRenderer() *CsvReportRendererImpl {
	return &CsvReportRendererImpl{}
}

// Render produces the CSV form of a report: title, summary totals, the
// transactions table and the fixed expenses table, all currency values in the
// same BRL notation the spreadsheet renderer uses.
func (t *CsvReportRendererImpl) Render(report MonthlyReport) ([]byte, error) {
	data := make([][]string, 0, 10+len(report.Transactions)+len(report.FixedExpenses))

	data = append(data,
		[]string{MonthTitle(report.Month, report.Year)},
		[]string{""},
		[]string{"Income", report.TotalIncome.FormatBRL()},
		[]string{"Variable expenses", report.TotalVariableExpenses.FormatBRL()},
		[]string{"Fixed expenses", report.TotalFixedExpenses.FormatBRL()},
		[]string{"Balance", report.Balance.FormatBRL()},
		[]string{""},
	)

	data = append(data, []string{"Date", "Kind", "Description", "Amount"})
	for _, tx := range report.Transactions {
		data = append(data, []string{
			tx.Timestamp.Format("02/01/2006"),
			kindLabel(tx.Kind),
			tx.Description,
			signedAmount(tx).FormatBRL(),
		})
	}

	data = append(data, []string{""})
	data = append(data, []string{"Fixed expense", "Due", "Amount", "Status"})
	for _, expense := range report.FixedExpenses {
		data = append(data, []string{
			expense.Name,
			fmt.Sprintf("day %d", expense.DueDay),
			expense.Amount.FormatBRL(),
			statusLabel(expense.Paid),
		})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return nil, err
	}

	return b.Bytes(), nil
}

// signedAmount renders expenses as negative so the tables read like a
// statement.
func signedAmount(tx transaction.Transaction) money.Money {
	if tx.Kind == transaction.KindExpense {
		return -tx.Amount
	}
	return tx.Amount
}

func kindLabel(kind transaction.Kind) string {
	if kind == transaction.KindIncome {
		return "Income"
	}
	return "Expense"
}

func statusLabel(paid bool) string {
	if paid {
		return "Paid"
	}
	return "Pending"
}
