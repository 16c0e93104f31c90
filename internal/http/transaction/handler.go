package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/http/respond"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/summary"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
	now func() time.Time
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/summary", h.period)
	r.Get("/summary/daily", h.daily)
	r.Get("/summary/weekly", h.weekly)
	r.Get("/{id}", h.get)
}

type createTransactionRequest struct {
	Type                 ledger.TransactionType `json:"type"`
	Amount               decimal.Decimal        `json:"amount"`
	Description          string                 `json:"description"`
	CategoryID           *uuid.UUID             `json:"category_id,omitempty"`
	AccountID            uuid.UUID              `json:"account_id"`
	DestinationAccountID *uuid.UUID             `json:"destination_account_id,omitempty"`
	Date                 string                 `json:"date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	var req createTransactionRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	date, err := ledger.ParseDay(req.Date)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	tx, err := h.svc.Create(r.Context(), owner, transaction.CreateParams{
		Type:                 req.Type,
		Amount:               req.Amount,
		Description:          req.Description,
		RawDescription:       req.Description,
		CategoryID:           req.CategoryID,
		AccountID:            req.AccountID,
		DestinationAccountID: req.DestinationAccountID,
		Date:                 date,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	var filter transaction.ListFilter

	if filter.StartDate, ok = respond.Day(w, r, "start_date"); !ok {
		return
	}

	if filter.EndDate, ok = respond.Day(w, r, "end_date"); !ok {
		return
	}

	filter.Search = r.URL.Query().Get("search")

	for param, dst := range map[string]**uuid.UUID{"account_id": &filter.AccountID, "category_id": &filter.CategoryID} {
		s := r.URL.Query().Get(param)
		if s == "" {
			continue
		}

		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid "+param, http.StatusBadRequest)
			return
		}

		*dst = &id
	}

	txs, err := h.svc.List(r.Context(), owner, filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	id, ok := respond.ID(w, r, "id")
	if !ok {
		return
	}

	tx, err := h.svc.Get(r.Context(), owner, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(tx))
}

// period reports totals for [start, end], both required.
func (h *Handler) period(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	start, ok := respond.Day(w, r, "start")
	if !ok {
		return
	}

	end, ok := respond.Day(w, r, "end")
	if !ok {
		return
	}

	if start == nil || end == nil {
		http.Error(w, "start and end are required", http.StatusBadRequest)
		return
	}

	totals, err := h.svc.SummarizePeriod(r.Context(), owner, *start, *end)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toTotals(summary.NewWindow(*start, *end), totals))
}

func (h *Handler) daily(w http.ResponseWriter, r *http.Request) {
	h.summarize(w, r, h.svc.SummarizeDaily)
}

func (h *Handler) weekly(w http.ResponseWriter, r *http.Request) {
	h.summarize(w, r, h.svc.SummarizeWeekly)
}

type summarizer func(ctx context.Context, ownerID uuid.UUID, day time.Time) (*transaction.PeriodSummary, error)

func (h *Handler) summarize(w http.ResponseWriter, r *http.Request, fn summarizer) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	day, ok := respond.DayOr(w, r, "date", h.now())
	if !ok {
		return
	}

	p, err := fn(r.Context(), owner, day)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toPeriod(p))
}
