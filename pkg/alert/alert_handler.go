package alert

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/grana/grana/internal/money"
	log "github.com/sirupsen/logrus"
)

type AlertConfigDTO struct {
	ID           string  `json:"id"`
	MonthlyLimit float64 `json:"monthlyLimit"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
	Active       bool    `json:"active"`
}

type CreateAlertConfigDTO struct {
	MonthlyLimit float64 `json:"monthlyLimit"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new alert config")
	w.Header().Set("Content-Type", "application/json")

	var dto CreateAlertConfigDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(r.Context(), AlertConfig{
		MonthlyLimit: money.FromFloat(dto.MonthlyLimit),
		Month:        dto.Month,
		Year:         dto.Year,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidPeriod) {
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

	configs, err := handler.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]AlertConfigDTO, 0, len(configs))
	for _, config := range configs {
		dtos = append(dtos, ToDTO(config))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) GetForPeriod(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)

	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		http.Error(w, "month must be an integer", http.StatusBadRequest)
		return
	}
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		http.Error(w, "year must be an integer", http.StatusBadRequest)
		return
	}

	config, err := handler.service.GetForPeriod(r.Context(), month, year)
	if err != nil {
		if errors.Is(err, ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if config == nil {
		// No config for the period is a valid state, not an error.
		if _, err := w.Write([]byte("null")); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	if err := json.NewEncoder(w).Encode(ToDTO(*config)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func ToDTO(config AlertConfig) AlertConfigDTO {
	return AlertConfigDTO{
		ID:           config.ID,
		MonthlyLimit: config.MonthlyLimit.Float64(),
		Month:        config.Month,
		Year:         config.Year,
		Active:       config.Active,
	}
}
