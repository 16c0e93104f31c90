package account

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/account"
	"github.com/MrJamesThe3rd/tally/internal/http/respond"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/balance", h.balance)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type accountResponse struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Type      ledger.AccountType `json:"type"`
	Balance   decimal.Decimal    `json:"balance"`
	Currency  string             `json:"currency"`
	CreatedAt time.Time          `json:"created_at"`
}

func toResponse(a *ledger.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Type:      a.Type,
		Balance:   a.Balance,
		Currency:  a.Currency,
		CreatedAt: a.CreatedAt,
	}
}

type createAccountRequest struct {
	Name     string             `json:"name"`
	Type     ledger.AccountType `json:"type"`
	Balance  decimal.Decimal    `json:"balance"`
	Currency string             `json:"currency"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	var req createAccountRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	a, err := h.svc.Create(r.Context(), owner, account.CreateParams{
		Name:     req.Name,
		Type:     req.Type,
		Balance:  req.Balance,
		Currency: req.Currency,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(a))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	accounts, err := h.svc.List(r.Context(), owner)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		resp[i] = toResponse(a)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	total, err := h.svc.TotalBalance(r.Context(), owner)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]decimal.Decimal{"total_balance": total})
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

	a, err := h.svc.Get(r.Context(), owner, id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
}

type updateAccountRequest struct {
	Name     *string             `json:"name,omitempty"`
	Type     *ledger.AccountType `json:"type,omitempty"`
	Balance  *decimal.Decimal    `json:"balance,omitempty"`
	Currency *string             `json:"currency,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	id, ok := respond.ID(w, r, "id")
	if !ok {
		return
	}

	var req updateAccountRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	a, err := h.svc.Update(r.Context(), owner, id, account.UpdateParams{
		Name:     req.Name,
		Type:     req.Type,
		Balance:  req.Balance,
		Currency: req.Currency,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(a))
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
