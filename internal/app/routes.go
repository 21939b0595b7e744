package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Transactions
	r.HandleFunc("/api/transactions", deps.TransactionHandler.Create).Methods("POST")
	r.HandleFunc("/api/transactions", deps.TransactionHandler.List).Methods("GET")
	r.HandleFunc("/api/transactions/{id}", deps.TransactionHandler.Delete).Methods("DELETE")

	// Fixed expenses
	r.HandleFunc("/api/fixed-expenses", deps.FixedExpenseHandler.Create).Methods("POST")
	r.HandleFunc("/api/fixed-expenses", deps.FixedExpenseHandler.List).Methods("GET")
	r.HandleFunc("/api/fixed-expenses/{id}/paid", deps.FixedExpenseHandler.SetPaid).Methods("PATCH")
	r.HandleFunc("/api/fixed-expenses/{id}", deps.FixedExpenseHandler.Delete).Methods("DELETE")

	// Alert configs
	r.HandleFunc("/api/alerts", deps.AlertHandler.Create).Methods("POST")
	r.HandleFunc("/api/alerts", deps.AlertHandler.List).Methods("GET")
	r.HandleFunc("/api/alerts/{month}/{year}", deps.AlertHandler.GetForPeriod).Methods("GET")

	// Reports and dashboard
	r.HandleFunc("/api/reports/{month}/{year}", deps.ReportHandler.GetReport).Methods("GET")
	r.HandleFunc("/api/reports/{month}/{year}/export", deps.ReportHandler.Export).Methods("GET")
	r.HandleFunc("/api/dashboard/{year}", deps.ReportHandler.GetDashboard).Methods("GET")
}
