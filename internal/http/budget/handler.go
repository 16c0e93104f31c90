package budget

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/budget"
	"github.com/MrJamesThe3rd/tally/internal/http/respond"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/summary"
)

type Handler struct {
	svc *budget.Service
	now func() time.Time
}

func NewHandler(svc *budget.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Put("/", h.set)
	r.Get("/", h.list)
	r.Get("/usage", h.usage)
	r.Get("/overview", h.overview)
	r.Delete("/{id}", h.delete)
}

type budgetResponse struct {
	ID         uuid.UUID       `json:"id"`
	CategoryID uuid.UUID       `json:"category_id"`
	Month      string          `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
}

func toResponse(b *ledger.Budget) budgetResponse {
	return budgetResponse{
		ID:         b.ID,
		CategoryID: b.CategoryID,
		Month:      b.Month.Format("2006-01"),
		Amount:     b.Amount,
	}
}

type setBudgetRequest struct {
	CategoryID uuid.UUID       `json:"category_id"`
	Month      string          `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
}

func (h *Handler) set(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	var req setBudgetRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	month, err := time.Parse("2006-01", req.Month)
	if err != nil {
		http.Error(w, "invalid month: expected YYYY-MM", http.StatusBadRequest)
		return
	}

	b, err := h.svc.Set(r.Context(), owner, budget.SetParams{
		CategoryID: req.CategoryID,
		Month:      month,
		Amount:     req.Amount,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(b))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	month, ok := respond.Month(w, r, "month", h.now())
	if !ok {
		return
	}

	budgets, err := h.svc.List(r.Context(), owner, month)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]budgetResponse, len(budgets))
	for i, b := range budgets {
		resp[i] = toResponse(b)
	}

	respond.JSON(w, http.StatusOK, resp)
}

type UsageResponse struct {
	CategoryID uuid.UUID        `json:"category_id"`
	Budgeted   decimal.Decimal  `json:"budgeted"`
	Spent      decimal.Decimal  `json:"spent"`
	Remaining  decimal.Decimal  `json:"remaining"`
	Percentage *decimal.Decimal `json:"percentage"`
	Status     summary.Status   `json:"status"`
}

func toUsage(u summary.Usage) UsageResponse {
	return UsageResponse{
		CategoryID: u.CategoryID,
		Budgeted:   u.Budgeted,
		Spent:      u.Spent,
		Remaining:  u.Remaining,
		Percentage: u.Percentage,
		Status:     u.Status,
	}
}

// ToUsageList is shared with the dashboard.
func ToUsageList(usage []summary.Usage) []UsageResponse {
	resp := make([]UsageResponse, len(usage))
	for i, u := range usage {
		resp[i] = toUsage(u)
	}

	return resp
}

func (h *Handler) usage(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	month, ok := respond.Month(w, r, "month", h.now())
	if !ok {
		return
	}

	usage, err := h.svc.Usage(r.Context(), owner, month)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToUsageList(usage))
}

type OverviewResponse struct {
	Income       decimal.Decimal  `json:"income"`
	Budgeted     decimal.Decimal  `json:"budgeted"`
	Unallocated  decimal.Decimal  `json:"unallocated"`
	AllocatedPct *decimal.Decimal `json:"allocated_percentage"`
}

// ToOverview is shared with the dashboard.
func ToOverview(z summary.ZeroBased) OverviewResponse {
	return OverviewResponse{
		Income:       z.Income,
		Budgeted:     z.Budgeted,
		Unallocated:  z.Unallocated,
		AllocatedPct: z.AllocatedPct,
	}
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	month, ok := respond.Month(w, r, "month", h.now())
	if !ok {
		return
	}

	z, err := h.svc.Overview(r.Context(), owner, month)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToOverview(z))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	id, ok := respond.ID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), owner, id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
