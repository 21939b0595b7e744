package app

import (
	"database/sql"

	"github.com/grana/grana/internal/event_bus"
	"github.com/grana/grana/pkg/alert"
	"github.com/grana/grana/pkg/fixedexpense"
	"github.com/grana/grana/pkg/report"
	"github.com/grana/grana/pkg/transaction"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus *event_bus.EventBus

	TransactionRepo    transaction.Repo
	TransactionService *transaction.ServiceImpl
	TransactionHandler *transaction.Handler

	FixedExpenseRepo    fixedexpense.Repo
	FixedExpenseService *fixedexpense.ServiceImpl
	FixedExpenseHandler *fixedexpense.Handler

	AlertRepo    alert.Repo
	AlertService *alert.ServiceImpl
	AlertHandler *alert.Handler

	ReportService      *report.ServiceImpl
	CsvReportRenderer  *report.CsvReportRendererImpl
	XlsxReportRenderer *report.XlsxReportRendererImpl
	ReportHandler      *report.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()

	deps.TransactionRepo = transaction.NewRepo(db)
	deps.TransactionService = transaction.NewService(deps.TransactionRepo, deps.Bus)
	deps.TransactionHandler = transaction.NewHandler(deps.TransactionService)

	deps.FixedExpenseRepo = fixedexpense.NewRepo(db)
	deps.FixedExpenseService = fixedexpense.NewService(deps.FixedExpenseRepo, deps.Bus)
	deps.FixedExpenseHandler = fixedexpense.NewHandler(deps.FixedExpenseService)

	deps.AlertRepo = alert.NewRepo(db)
	deps.AlertService = alert.NewService(deps.AlertRepo, deps.Bus)
	deps.AlertHandler = alert.NewHandler(deps.AlertService)

	deps.ReportService = report.NewService(deps.TransactionRepo, deps.FixedExpenseRepo, deps.AlertRepo, deps.Bus)
	deps.CsvReportRenderer = report.NewCsvReportRenderer()
	deps.XlsxReportRenderer = report.NewXlsxReportRenderer()
	deps.ReportHandler = report.NewHandler(deps.ReportService, deps.CsvReportRenderer, deps.XlsxReportRenderer)

	return deps
}
