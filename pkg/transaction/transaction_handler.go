package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/grana/grana/internal/money"
	log "github.com/sirupsen/logrus"
)

type TransactionDTO struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
}

type CreateTransactionDTO struct {
	Kind        string     `json:"kind"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new transaction")
	w.Header().Set("Content-Type", "application/json")

	var dto CreateTransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx := Transaction{
		Kind:        Kind(dto.Kind),
		Amount:      money.FromFloat(dto.Amount),
		Description: dto.Description,
	}
	if dto.Timestamp != nil {
		tx.Timestamp = *dto.Timestamp
	}

	created, err := handler.service.Create(r.Context(), tx)
	if err != nil {
		if errors.Is(err, ErrInvalidKind) || errors.Is(err, ErrNegativeAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter, err := filterFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	transactions, err := handler.service.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]TransactionDTO, 0, len(transactions))
	for _, tx := range transactions {
		dtos = append(dtos, ToDTO(tx))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	if err := handler.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrTransactionNotFound) {
			http.Error(w, "Transaction not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func filterFromQuery(r *http.Request) (Filter, error) {
	var filter Filter
	if monthString := r.URL.Query().Get("month"); monthString != "" {
		month, err := strconv.Atoi(monthString)
		if err != nil {
			return Filter{}, errors.New("month must be an integer")
		}
		filter.Month = month
	}
	if yearString := r.URL.Query().Get("year"); yearString != "" {
		year, err := strconv.Atoi(yearString)
		if err != nil {
			return Filter{}, errors.New("year must be an integer")
		}
		filter.Year = year
	}
	return filter, nil
}

func ToDTO(tx Transaction) TransactionDTO {
	return TransactionDTO{
		ID:          tx.ID,
		Kind:        string(tx.Kind),
		Amount:      tx.Amount.Float64(),
		Description: tx.Description,
		Timestamp:   tx.Timestamp,
		Month:       tx.Month,
		Year:        tx.Year,
	}
}
