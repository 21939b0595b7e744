package report

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/grana/grana/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*Handler, func()) {
	teardown := setup(t)
	handler := NewHandler(service, NewCsvReportRenderer(), NewXlsxReportRenderer())
	return handler, teardown
}

func periodRequest(method, target, month, year string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return mux.SetURLVars(req, map[string]string{"month": month, "year": year})
}

func TestHandler_GetReport(t *testing.T) {
	t.Run("should return the aggregated report", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		// given
		storeTransaction(t, "salary", transaction.KindIncome, 5000, 5)
		storeTransaction(t, "rent", transaction.KindExpense, 1200, 10)
		storeFixedExpense(t, "internet", 800, true)
		storeFixedExpense(t, "gym", 300, false)

		// when
		w := httptest.NewRecorder()
		handler.GetReport(w, periodRequest(http.MethodGet, "/api/report/1/2024", "1", "2024"))

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var dto MonthlyReportDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
		assert.Equal(t, 1, dto.Month)
		assert.Equal(t, 2024, dto.Year)
		assert.Equal(t, 5000.0, dto.TotalIncome)
		assert.Equal(t, 1200.0, dto.TotalVariableExpenses)
		assert.Equal(t, 1100.0, dto.TotalFixedExpenses)
		assert.Equal(t, 2700.0, dto.Balance)
		assert.Len(t, dto.Transactions, 2)
		assert.Len(t, dto.FixedExpenses, 2)
		assert.Nil(t, dto.ConfiguredLimit)
	})

	t.Run("should reject an out of range month", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		// when
		w := httptest.NewRecorder()
		handler.GetReport(w, periodRequest(http.MethodGet, "/api/report/13/2024", "13", "2024"))

		// then
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should reject a non numeric month", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		// when
		w := httptest.NewRecorder()
		handler.GetReport(w, periodRequest(http.MethodGet, "/api/report/abc/2024", "abc", "2024"))

		// then
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetDashboard(t *testing.T) {
	t.Run("should return twelve month summaries", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		// given
		storeTransaction(t, "salary", transaction.KindIncome, 5000, 5)

		// when
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/2024", nil)
		req = mux.SetURLVars(req, map[string]string{"year": "2024"})
		w := httptest.NewRecorder()
		handler.GetDashboard(w, req)

		// then
		assert.Equal(t, http.StatusOK, w.Code)

		var dto DashboardDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&dto))
		assert.Equal(t, 2024, dto.Year)
		require.Len(t, dto.Months, 12)
		assert.Equal(t, 5000.0, dto.Months[0].Income)
		assert.Equal(t, 0.0, dto.Months[1].Income)
	})
}

func TestHandler_Export(t *testing.T) {
	t.Run("should default to csv with a download filename", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		// when
		w := httptest.NewRecorder()
		handler.Export(w, periodRequest(http.MethodGet, "/api/report/1/2024/export", "1", "2024"))

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="relatorio-janeiro-2024.csv"`, w.Header().Get("Content-Disposition"))
		assert.Contains(t, w.Body.String(), "Janeiro 2024")
	})

	t.Run("should export a spreadsheet when asked for xlsx", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		// when
		w := httptest.NewRecorder()
		handler.Export(w, periodRequest(http.MethodGet, "/api/report/1/2024/export?format=xlsx", "1", "2024"))

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="relatorio-janeiro-2024.xlsx"`, w.Header().Get("Content-Disposition"))
		assert.NotEmpty(t, w.Body.Bytes())
	})

	t.Run("should reject an unknown format", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		// when
		w := httptest.NewRecorder()
		handler.Export(w, periodRequest(http.MethodGet, "/api/report/1/2024/export?format=pdf", "1", "2024"))

		// then
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var errResponse struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&errResponse))
		assert.Contains(t, errResponse.Error, "Unsupported export format")
		assert.Contains(t, errResponse.Details, "csv or xlsx")
	})
}
