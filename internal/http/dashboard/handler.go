package dashboard

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/dashboard"
	"github.com/MrJamesThe3rd/tally/internal/http/budget"
	"github.com/MrJamesThe3rd/tally/internal/http/respond"
	"github.com/MrJamesThe3rd/tally/internal/http/savings"
)

type Handler struct {
	svc *dashboard.Service
	now func() time.Time
}

func NewHandler(svc *dashboard.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

type monthlyResponse struct {
	Start   string          `json:"start"`
	End     string          `json:"end"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

type dashboardResponse struct {
	TotalBalance decimal.Decimal          `json:"total_balance"`
	Monthly      monthlyResponse          `json:"monthly"`
	Budget       budget.OverviewResponse  `json:"budget"`
	Categories   []budget.UsageResponse   `json:"categories"`
	Savings      savings.OverviewResponse `json:"savings"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	today, ok := respond.DayOr(w, r, "date", h.now())
	if !ok {
		return
	}

	d, err := h.svc.Build(r.Context(), owner, today)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, dashboardResponse{
		TotalBalance: d.TotalBalance,
		Monthly: monthlyResponse{
			Start:   d.Month.Start.Format(time.DateOnly),
			End:     d.Month.End.Format(time.DateOnly),
			Income:  d.Monthly.Income,
			Expense: d.Monthly.Expense,
			Net:     d.Monthly.Net,
		},
		Budget:     budget.ToOverview(d.Budget),
		Categories: budget.ToUsageList(d.Usage),
		Savings:    savings.ToOverview(d.Savings),
	})
}
