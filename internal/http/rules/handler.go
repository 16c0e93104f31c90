package rules

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tally/internal/http/respond"
	"github.com/MrJamesThe3rd/tally/internal/matching"
)

type Handler struct {
	svc *matching.Service
}

func NewHandler(svc *matching.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.learn)
	r.Get("/suggest", h.suggest)
	r.Delete("/{id}", h.delete)
}

type ruleResponse struct {
	ID          uuid.UUID `json:"id"`
	RawPattern  string    `json:"raw_pattern"`
	CategoryID  uuid.UUID `json:"category_id"`
	Description string    `json:"description,omitempty"`
}

func toResponse(r *matching.Rule) ruleResponse {
	return ruleResponse{ID: r.ID, RawPattern: r.RawPattern, CategoryID: r.CategoryID, Description: r.Description}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	rules, err := h.svc.List(r.Context(), owner)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]ruleResponse, len(rules))
	for i, rule := range rules {
		resp[i] = toResponse(rule)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	raw := r.URL.Query().Get("raw_description")
	if raw == "" {
		http.Error(w, "raw_description query parameter is required", http.StatusBadRequest)
		return
	}

	rule, err := h.svc.Suggest(r.Context(), owner, raw)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if rule == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(rule))
}

type learnRequest struct {
	RawPattern  string    `json:"raw_pattern"`
	CategoryID  uuid.UUID `json:"category_id"`
	Description string    `json:"description"`
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	var req learnRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	rule, err := h.svc.Learn(r.Context(), owner, matching.LearnParams{
		RawPattern:  req.RawPattern,
		CategoryID:  req.CategoryID,
		Description: req.Description,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(rule))
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
