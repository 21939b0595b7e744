package report

import (
	"fmt"

	"github.com/grana/grana/pkg/transaction"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

type XlsxReportRendererImpl struct {
}

func NewXlsxReportRenderer() *XlsxReportRendererImpl {
	return &XlsxReportRendererImpl{}
}

// Render produces the spreadsheet form of a report. The content and currency
// formatting are identical to the CSV renderer; on top of that, incomes and
// paid expenses are colored green, expenses and pending entries red.
func (t *XlsxReportRendererImpl) Render(report MonthlyReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Errorf("Error closing spreadsheet: %v", err)
		}
	}()

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	greenStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "1B7A3D"}})
	if err != nil {
		return nil, err
	}
	redStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "B02A2A"}})
	if err != nil {
		return nil, err
	}

	row := 1
	if err := t.setRow(f, row, MonthTitle(report.Month, report.Year)); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}

	row += 2
	summary := []struct {
		label string
		value string
	}{
		{"Income", report.TotalIncome.FormatBRL()},
		{"Variable expenses", report.TotalVariableExpenses.FormatBRL()},
		{"Fixed expenses", report.TotalFixedExpenses.FormatBRL()},
		{"Balance", report.Balance.FormatBRL()},
	}
	for _, entry := range summary {
		if err := t.setRow(f, row, entry.label, entry.value); err != nil {
			return nil, err
		}
		row++
	}

	row++
	if err := t.setRow(f, row, "Date", "Kind", "Description", "Amount"); err != nil {
		return nil, err
	}
	if err := t.styleRow(f, row, 4, headerStyle); err != nil {
		return nil, err
	}
	row++
	for _, tx := range report.Transactions {
		if err := t.setRow(f, row,
			tx.Timestamp.Format("02/01/2006"),
			kindLabel(tx.Kind),
			tx.Description,
			signedAmount(tx).FormatBRL(),
		); err != nil {
			return nil, err
		}
		style := greenStyle
		if tx.Kind == transaction.KindExpense {
			style = redStyle
		}
		if err := f.SetCellStyle(sheetName, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), style); err != nil {
			return nil, err
		}
		row++
	}

	row++
	if err := t.setRow(f, row, "Fixed expense", "Due", "Amount", "Status"); err != nil {
		return nil, err
	}
	if err := t.styleRow(f, row, 4, headerStyle); err != nil {
		return nil, err
	}
	row++
	for _, expense := range report.FixedExpenses {
		if err := t.setRow(f, row,
			expense.Name,
			fmt.Sprintf("day %d", expense.DueDay),
			expense.Amount.FormatBRL(),
			statusLabel(expense.Paid),
		); err != nil {
			return nil, err
		}
		style := greenStyle
		if !expense.Paid {
			style = redStyle
		}
		if err := f.SetCellStyle(sheetName, fmt.Sprintf("D%d", row), fmt.Sprintf("D%d", row), style); err != nil {
			return nil, err
		}
		row++
	}

	if err := f.SetColWidth(sheetName, "A", "D", 22); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Errorf("Error writing spreadsheet: %v", err)
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t *XlsxReportRendererImpl) setRow(f *excelize.File, row int, values ...string) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return err
		}
	}
	return nil
}

func (t *XlsxReportRendererImpl) styleRow(f *excelize.File, row, columns, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(columns, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, first, last, style)
}
