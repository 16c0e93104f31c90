// Package respond writes JSON bodies and maps ledger errors onto HTTP statuses.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/auth"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

// RetryAfter is advertised when the store is unreachable.
const RetryAfter = 5 * time.Second

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Status picks the response code for err. A partial contribution is checked before
// anything it may wrap.
func Status(err error) int {
	switch {
	case errors.Is(err, ledger.ErrPartialContribution):
		return http.StatusConflict
	case ledger.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrNotFound), errors.Is(err, ledger.ErrGoalNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ledger.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrBackendUnavailable):
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

// Error writes err with the status from Status. Internal errors are logged and hidden.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)

	switch status {
	case http.StatusInternalServerError:
		slog.ErrorContext(r.Context(), "request failed", "error", err, "path", r.URL.Path)
		http.Error(w, "internal error", status)

		return
	case http.StatusServiceUnavailable:
		slog.WarnContext(r.Context(), "backend unavailable", "error", err, "path", r.URL.Path)
		w.Header().Set("Retry-After", strconv.Itoa(int(RetryAfter.Seconds())))
	case http.StatusConflict:
		if errors.Is(err, ledger.ErrPartialContribution) {
			slog.ErrorContext(r.Context(), "partial contribution", "error", err)
		}
	}

	http.Error(w, err.Error(), status)
}

// Decode reads a JSON request body into v.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return false
	}

	return true
}

// Owner returns the authenticated owner or writes 401.
func Owner(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := auth.Owner(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return uuid.Nil, false
	}

	return id, true
}

// ID parses a uuid path parameter or writes 400.
func ID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		http.Error(w, "invalid "+param, http.StatusBadRequest)
		return uuid.Nil, false
	}

	return id, true
}

// Day parses an optional YYYY-MM-DD query parameter. ok is false when a 400 was written.
func Day(w http.ResponseWriter, r *http.Request, param string) (*time.Time, bool) {
	s := r.URL.Query().Get(param)
	if s == "" {
		return nil, true
	}

	d, err := ledger.ParseDay(s)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	return &d, true
}

// DayOr is Day with a fallback for a missing parameter.
func DayOr(w http.ResponseWriter, r *http.Request, param string, fallback time.Time) (time.Time, bool) {
	d, ok := Day(w, r, param)
	if !ok {
		return time.Time{}, false
	}

	if d == nil {
		return ledger.Day(fallback), true
	}

	return *d, true
}

// Month parses an optional YYYY-MM query parameter into the first day of that month,
// defaulting to the month of fallback.
func Month(w http.ResponseWriter, r *http.Request, param string, fallback time.Time) (time.Time, bool) {
	s := r.URL.Query().Get(param)
	if s == "" {
		return ledger.MonthStart(fallback), true
	}

	m, err := time.Parse("2006-01", s)
	if err != nil {
		http.Error(w, "invalid "+param+": expected YYYY-MM", http.StatusBadRequest)
		return time.Time{}, false
	}

	return m, true
}
