package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/grana/grana/internal/rest"
	"github.com/grana/grana/pkg/fixedexpense"
	"github.com/grana/grana/pkg/transaction"
)

type MonthlyReportDTO struct {
	Month                 int                            `json:"month"`
	Year                  int                            `json:"year"`
	TotalIncome           float64                        `json:"totalIncome"`
	TotalVariableExpenses float64                        `json:"totalVariableExpenses"`
	TotalFixedExpenses    float64                        `json:"totalFixedExpenses"`
	FixedPaidTotal        float64                        `json:"fixedPaidTotal"`
	FixedPendingTotal     float64                        `json:"fixedPendingTotal"`
	Balance               float64                        `json:"balance"`
	Transactions          []transaction.TransactionDTO   `json:"transactions"`
	FixedExpenses         []fixedexpense.FixedExpenseDTO `json:"fixedExpenses"`
	LimitExceeded         bool                           `json:"limitExceeded"`
	ConfiguredLimit       *float64                       `json:"configuredLimit,omitempty"`
}

type MonthSummaryDTO struct {
	Month            int     `json:"month"`
	Income           float64 `json:"income"`
	CombinedExpenses float64 `json:"combinedExpenses"`
	VariableExpenses float64 `json:"variableExpenses"`
	FixedExpenses    float64 `json:"fixedExpenses"`
	Balance          float64 `json:"balance"`
}

type DashboardDTO struct {
	Year   int               `json:"year"`
	Months []MonthSummaryDTO `json:"months"`
}

type Handler struct {
	service      Service
	csvRenderer  Renderer
	xlsxRenderer Renderer
}

func NewHandler(service Service, csvRenderer Renderer, xlsxRenderer Renderer) *Handler {
	return &Handler{service, csvRenderer, xlsxRenderer}
}

func (handler *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	month, year, ok := periodFromPath(w, r)
	if !ok {
		return
	}

	report, err := handler.service.MonthlyReport(r.Context(), month, year)
	if err != nil {
		if errors.Is(err, ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ToDTO(report)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	year, err := strconv.Atoi(mux.Vars(r)["year"])
	if err != nil {
		http.Error(w, "year must be an integer", http.StatusBadRequest)
		return
	}

	summaries, err := handler.service.YearSummary(r.Context(), year)
	if err != nil {
		if errors.Is(err, ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := DashboardDTO{Year: year, Months: make([]MonthSummaryDTO, 0, len(summaries))}
	for _, summary := range summaries {
		dto.Months = append(dto.Months, MonthSummaryDTO{
			Month:            summary.Month,
			Income:           summary.Income.Float64(),
			CombinedExpenses: summary.CombinedExpenses.Float64(),
			VariableExpenses: summary.VariableExpenses.Float64(),
			FixedExpenses:    summary.FixedExpenses.Float64(),
			Balance:          summary.Balance.Float64(),
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (handler *Handler) Export(w http.ResponseWriter, r *http.Request) {
	month, year, ok := periodFromPath(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	var renderer Renderer
	var contentType string
	switch format {
	case "csv":
		renderer = handler.csvRenderer
		contentType = "text/csv; charset=utf-8"
	case "xlsx":
		renderer = handler.xlsxRenderer
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Unsupported export format",
			Details: "format must be csv or xlsx",
		})
		return
	}

	report, err := handler.service.MonthlyReport(r.Context(), month, year)
	if err != nil {
		if errors.Is(err, ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	body, err := renderer.Render(report)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("relatorio-%s-%d.%s", MonthName(month), year, format)
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func periodFromPath(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	vars := mux.Vars(r)
	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		http.Error(w, "month must be an integer", http.StatusBadRequest)
		return 0, 0, false
	}
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		http.Error(w, "year must be an integer", http.StatusBadRequest)
		return 0, 0, false
	}
	return month, year, true
}

func ToDTO(report MonthlyReport) MonthlyReportDTO {
	dto := MonthlyReportDTO{
		Month:                 report.Month,
		Year:                  report.Year,
		TotalIncome:           report.TotalIncome.Float64(),
		TotalVariableExpenses: report.TotalVariableExpenses.Float64(),
		TotalFixedExpenses:    report.TotalFixedExpenses.Float64(),
		FixedPaidTotal:        report.FixedPaidTotal.Float64(),
		FixedPendingTotal:     report.FixedPendingTotal.Float64(),
		Balance:               report.Balance.Float64(),
		Transactions:          make([]transaction.TransactionDTO, 0, len(report.Transactions)),
		FixedExpenses:         make([]fixedexpense.FixedExpenseDTO, 0, len(report.FixedExpenses)),
		LimitExceeded:         report.LimitExceeded,
	}
	for _, tx := range report.Transactions {
		dto.Transactions = append(dto.Transactions, transaction.ToDTO(tx))
	}
	for _, expense := range report.FixedExpenses {
		dto.FixedExpenses = append(dto.FixedExpenses, fixedexpense.ToDTO(expense))
	}
	if report.ConfiguredLimit != nil {
		limit := report.ConfiguredLimit.Float64()
		dto.ConfiguredLimit = &limit
	}
	return dto
}
