package fixedexpense

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

type FixedExpenseDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	DueDay    int       `json:"dueDay"`
	Paid      bool      `json:"paid"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateFixedExpenseDTO struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	DueDay int     `json:"dueDay"`
	Month  int     `json:"month"`
	Year   int     `json:"year"`
}

type SetPaidDTO struct {
	Paid bool `json:"paid"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new fixed expense")
	w.Header().Set("Content-Type", "application/json")

	var dto CreateFixedExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(r.Context(), FixedExpense{
		Name:   dto.Name,
		Amount: money.FromFloat(dto.Amount),
		DueDay: dto.DueDay,
		Month:  dto.Month,
		Year:   dto.Year,
	})
	if err != nil {
		if errors.Is(err, ErrNegativeAmount) || errors.Is(err, ErrInvalidDueDay) || errors.Is(err, ErrInvalidPeriod) {
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

	expenses, err := handler.service.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]FixedExpenseDTO, 0, len(expenses))
	for _, expense := range expenses {
		dtos = append(dtos, ToDTO(expense))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) SetPaid(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	var dto SetPaidDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.service.SetPaid(r.Context(), id, dto.Paid); err != nil {
		if errors.Is(err, ErrFixedExpenseNotFound) {
			http.Error(w, "Fixed expense not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	if err := handler.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrFixedExpenseNotFound) {
			http.Error(w, "Fixed expense not found", http.StatusNotFound)
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

func ToDTO(expense FixedExpense) FixedExpenseDTO {
	return FixedExpenseDTO{
		ID:        expense.ID,
		Name:      expense.Name,
		Amount:    expense.Amount.Float64(),
		DueDay:    expense.DueDay,
		Paid:      expense.Paid,
		Month:     expense.Month,
		Year:      expense.Year,
		CreatedAt: expense.CreatedAt,
	}
}
