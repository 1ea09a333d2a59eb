package report

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/pollosrrj/pos/internal/service/services/reportsvc"
)

type service interface {
	Run(ctx context.Context, f reportsvc.Filter) (reportsvc.Result, error)
	DeleteMatching(ctx context.Context, f reportsvc.Filter) error
}

// filterRequest mirrors the report screen: one quick filter plus the
// manual year/month/day pickers, which only apply when quick is Ninguno.
type filterRequest struct {
	Quick string `json:"quick"`
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

func (r *filterRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *filterRequest) toFilter() reportsvc.Filter {
	f := reportsvc.DefaultFilter()
	if r.Quick != "" {
		f.Quick = reportsvc.Quick(r.Quick)
	}
	if r.Year != "" {
		f.Year = r.Year
	}
	if r.Month != "" {
		f.Month = r.Month
	}
	if r.Day != "" {
		f.Day = r.Day
	}

	return f
}

// Run evaluates the filter and returns the matched orders with their sum.
func Run(w http.ResponseWriter, r *http.Request, service service) {
	req := filterRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for report run", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	result, err := service.Run(r.Context(), req.toFilter())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error running report", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for report run", "error", err)
	}
}

// DeleteMatching deletes every order the filter matches, re-evaluated
// against the store at delete time.
func DeleteMatching(w http.ResponseWriter, r *http.Request, service service) {
	req := filterRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for report delete", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	if err := service.DeleteMatching(r.Context(), req.toFilter()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error deleting report matches", "error", err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
