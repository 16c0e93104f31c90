package savings

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/http/respond"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/savings"
	"github.com/MrJamesThe3rd/tally/internal/summary"
)

type Handler struct {
	svc *savings.Service
	now func() time.Time
}

func NewHandler(svc *savings.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/overview", h.overview)
	r.Post("/reconcile", h.reconcileAll)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Delete("/", h.delete)
		r.Get("/contributions", h.contributions)
		r.Post("/contributions", h.contribute)
		r.Post("/reconcile", h.reconcile)
	})
}

type goalResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    string          `json:"target_date"`
	Priority      ledger.Priority `json:"priority"`
	Description   string          `json:"description,omitempty"`
	Progress      *progressDTO    `json:"progress,omitempty"`
}

type progressDTO struct {
	Percentage    decimal.Decimal `json:"percentage"`
	Remaining     decimal.Decimal `json:"remaining"`
	DaysRemaining int             `json:"days_remaining"`
	MonthlyNeeded decimal.Decimal `json:"monthly_needed"`
}

func toResponse(g *ledger.SavingsGoal) goalResponse {
	return goalResponse{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		TargetDate:    g.TargetDate.Format(time.DateOnly),
		Priority:      g.Priority,
		Description:   g.Description,
	}
}

func withProgress(g *ledger.SavingsGoal, p summary.Progress) goalResponse {
	resp := toResponse(g)
	resp.Progress = &progressDTO{
		Percentage:    p.Percentage,
		Remaining:     p.Remaining,
		DaysRemaining: p.DaysRemaining,
		MonthlyNeeded: p.MonthlyNeeded,
	}

	return resp
}

type createGoalRequest struct {
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    string          `json:"target_date"`
	Priority      ledger.Priority `json:"priority"`
	Description   string          `json:"description"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	var req createGoalRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	target, err := ledger.ParseDay(req.TargetDate)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	g, err := h.svc.CreateGoal(r.Context(), owner, savings.CreateGoalParams{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    target,
		Priority:      req.Priority,
		Description:   req.Description,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(g))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	goals, err := h.svc.ListGoals(r.Context(), owner)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	today := h.now()

	resp := make([]goalResponse, len(goals))
	for i, g := range goals {
		resp[i] = withProgress(g, summary.GoalProgress(g, today))
	}

	respond.JSON(w, http.StatusOK, resp)
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

	g, p, err := h.svc.GoalProgress(r.Context(), owner, id, h.now())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, withProgress(g, p))
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

	if err := h.svc.DeleteGoal(r.Context(), owner, id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type OverviewResponse struct {
	TotalSaved  decimal.Decimal  `json:"total_saved"`
	TotalTarget decimal.Decimal  `json:"total_target"`
	Active      int              `json:"active_goals"`
	Percentage  *decimal.Decimal `json:"percentage"`
}

// ToOverview is shared with the dashboard.
func ToOverview(o summary.GoalsOverview) OverviewResponse {
	return OverviewResponse{
		TotalSaved:  o.TotalSaved,
		TotalTarget: o.TotalTarget,
		Active:      o.Active,
		Percentage:  o.Percentage,
	}
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	o, err := h.svc.Overview(r.Context(), owner)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToOverview(o))
}

type contributionResponse struct {
	ID            uuid.UUID       `json:"id"`
	GoalID        uuid.UUID       `json:"goal_id"`
	TransactionID uuid.UUID       `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	Notes         string          `json:"notes,omitempty"`
	Applied       bool            `json:"applied"`
}

func toContribution(c *ledger.Contribution) contributionResponse {
	return contributionResponse{
		ID:            c.ID,
		GoalID:        c.GoalID,
		TransactionID: c.TransactionID,
		Amount:        c.Amount,
		Date:          c.Date.Format(time.DateOnly),
		Notes:         c.Notes,
		Applied:       !c.Pending(),
	}
}

func (h *Handler) contributions(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	id, ok := respond.ID(w, r, "id")
	if !ok {
		return
	}

	list, err := h.svc.ListContributions(r.Context(), owner, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]contributionResponse, len(list))
	for i, c := range list {
		resp[i] = toContribution(c)
	}

	respond.JSON(w, http.StatusOK, resp)
}

type contributeRequest struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	Notes         string          `json:"notes"`
}

func (h *Handler) contribute(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	goalID, ok := respond.ID(w, r, "id")
	if !ok {
		return
	}

	var req contributeRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	c, err := h.svc.ApplyContribution(r.Context(), owner, savings.ContributeParams{
		TransactionID: req.TransactionID,
		GoalID:        goalID,
		Amount:        req.Amount,
		Notes:         req.Notes,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toContribution(c))
}

type reportResponse struct {
	Applied  []uuid.UUID `json:"applied"`
	Repaired []driftDTO  `json:"repaired"`
}

type driftDTO struct {
	GoalID   uuid.UUID       `json:"goal_id"`
	Recorded decimal.Decimal `json:"recorded"`
	Expected decimal.Decimal `json:"expected"`
}

func toReport(rep *savings.Report) reportResponse {
	resp := reportResponse{
		Applied:  make([]uuid.UUID, 0, len(rep.Applied)),
		Repaired: make([]driftDTO, 0, len(rep.Repaired)),
	}

	resp.Applied = append(resp.Applied, rep.Applied...)

	for _, d := range rep.Repaired {
		resp.Repaired = append(resp.Repaired, driftDTO{GoalID: d.GoalID, Recorded: d.Recorded, Expected: d.Expected})
	}

	return resp
}

func (h *Handler) reconcile(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	id, ok := respond.ID(w, r, "id")
	if !ok {
		return
	}

	rep, err := h.svc.ReconcileGoal(r.Context(), owner, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toReport(rep))
}

func (h *Handler) reconcileAll(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	rep, err := h.svc.Reconcile(r.Context(), owner)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toReport(rep))
}
