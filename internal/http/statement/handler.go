package statement

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/tally/internal/http/respond"
	"github.com/MrJamesThe3rd/tally/internal/importer"
	"github.com/MrJamesThe3rd/tally/internal/ledger"
	"github.com/MrJamesThe3rd/tally/internal/transaction"
)

const maxUpload = 10 << 20

type Handler struct {
	importSvc *importer.Service
	txSvc     *transaction.Service
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service) *Handler {
	return &Handler{importSvc: importSvc, txSvc: txSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importStatement)
	r.Post("/confirm", h.confirm)
}

type lineDTO struct {
	Type           ledger.TransactionType `json:"type"`
	Amount         decimal.Decimal        `json:"amount"`
	Description    string                 `json:"description"`
	RawDescription string                 `json:"raw_description"`
	CategoryID     *uuid.UUID             `json:"category_id,omitempty"`
	AccountID      uuid.UUID              `json:"account_id"`
	Date           string                 `json:"date"`
}

type importedDTO struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
}

type conflictDTO struct {
	Incoming lineDTO     `json:"incoming"`
	Existing importedDTO `json:"existing"`
}

type conflictResponse struct {
	New       []lineDTO     `json:"new"`
	Conflicts []conflictDTO `json:"conflicts"`
}

type successResponse struct {
	Imported     int           `json:"imported"`
	Transactions []importedDTO `json:"transactions"`
}

type confirmRequest struct {
	Lines []lineDTO `json:"lines"`
}

func (h *Handler) importStatement(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUpload); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		http.Error(w, "format field is required", http.StatusBadRequest)
		return
	}

	accountID, err := uuid.Parse(r.FormValue("account_id"))
	if err != nil {
		http.Error(w, "account_id field is required", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	lines, err := h.importSvc.Import(r.Context(), owner, format, accountID, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.txSvc.ImportBatch(r.Context(), owner, lines)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if len(result.Conflicts) > 0 {
		resp := conflictResponse{
			New:       make([]lineDTO, 0, len(result.New)),
			Conflicts: make([]conflictDTO, 0, len(result.Conflicts)),
		}

		for _, p := range result.New {
			resp.New = append(resp.New, toLine(p))
		}

		for _, c := range result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, conflictDTO{
				Incoming: toLine(c.Incoming),
				Existing: toImported(c.Existing),
			})
		}

		respond.JSON(w, http.StatusConflict, resp)

		return
	}

	respond.JSON(w, http.StatusCreated, toSuccess(result.Imported))
}

// confirm stores lines the user kept after resolving conflicts.
func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	owner, ok := respond.Owner(w, r)
	if !ok {
		return
	}

	var req confirmRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	params := make([]transaction.CreateParams, 0, len(req.Lines))

	for i, l := range req.Lines {
		date, err := ledger.ParseDay(l.Date)
		if err != nil {
			http.Error(w, fmt.Sprintf("line %d: %v", i+1, err), http.StatusBadRequest)
			return
		}

		params = append(params, transaction.CreateParams{
			Type:           l.Type,
			Amount:         l.Amount,
			Description:    l.Description,
			RawDescription: l.RawDescription,
			CategoryID:     l.CategoryID,
			AccountID:      l.AccountID,
			Date:           date,
		})
	}

	txs, err := h.txSvc.CreateBatch(r.Context(), owner, params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toSuccess(txs))
}

func toLine(p transaction.CreateParams) lineDTO {
	return lineDTO{
		Type:           p.Type,
		Amount:         p.Amount,
		Description:    p.Description,
		RawDescription: p.RawDescription,
		CategoryID:     p.CategoryID,
		AccountID:      p.AccountID,
		Date:           p.Date.Format(time.DateOnly),
	}
}

func toImported(tx *ledger.Transaction) importedDTO {
	return importedDTO{ID: tx.ID, Description: tx.Description, Date: tx.Date.Format(time.DateOnly)}
}

func toSuccess(txs []*ledger.Transaction) successResponse {
	resp := successResponse{Imported: len(txs), Transactions: make([]importedDTO, 0, len(txs))}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, toImported(tx))
	}

	return resp
}
