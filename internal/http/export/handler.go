package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/tally/internal/export"
	"github.com/MrJamesThe3rd/tally/internal/http/respond"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

type Handler struct {
	svc *export.Service
	now func() time.Time
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.csv)
	r.Get("/download", h.download)
}

func (h *Handler) statement(w http.ResponseWriter, r *http.Request) (*export.Statement, bool) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return nil, false
	}

	var filter transaction.ListFilter

	if filter.StartDate, ok = respond.Day(w, r, "start_date"); !ok {
		return nil, false
	}

	if filter.EndDate, ok = respond.Day(w, r, "end_date"); !ok {
		return nil, false
	}

	filter.Search = r.URL.Query().Get("search")

	st, err := h.svc.Statement(r.Context(), owner, filter)
	if err != nil {
		respond.Error(w, r, err)
		return nil, false
	}

	return st, true
}

func (h *Handler) csv(w http.ResponseWriter, r *http.Request) {
	st, ok := h.statement(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"statement_%s.csv\"", h.now().Format("20060102")))

	if err := export.WriteCSV(w, st); err != nil {
		slog.Error("failed to write statement", "error", err)
	}
}

// download bundles the CSV statement with its plain-text summary.
func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	st, ok := h.statement(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"export_%s.zip\"", h.now().Format("20060102")))

	if err := export.WriteBundle(w, st); err != nil {
		slog.Error("failed to write export bundle", "error", err)
	}
}
