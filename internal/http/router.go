package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/tally/internal/http/account"
	"github.com/MrJamesThe3rd/tally/internal/http/budget"
	"github.com/MrJamesThe3rd/tally/internal/http/category"
	"github.com/MrJamesThe3rd/tally/internal/http/dashboard"
	"github.com/MrJamesThe3rd/tally/internal/http/export"
	"github.com/MrJamesThe3rd/tally/internal/http/rules"
	"github.com/MrJamesThe3rd/tally/internal/http/savings"
	"github.com/MrJamesThe3rd/tally/internal/http/statement"
	"github.com/MrJamesThe3rd/tally/internal/http/transaction"
)

type Handlers struct {
	Accounts     *account.Handler
	Categories   *category.Handler
	Transactions *transaction.Handler
	Budgets      *budget.Handler
	Goals        *savings.Handler
	Dashboard    *dashboard.Handler
	Import       *statement.Handler
	Rules        *rules.Handler
	Export       *export.Handler
}

// New mounts every handler under /api/v1 behind authenticate. allowedOrigins feeds CORS.
func New(h Handlers, authenticate func(http.Handler) http.Handler, allowedOrigins []string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(authenticate)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))

			r.Route("/accounts", h.Accounts.Routes)
			r.Route("/categories", h.Categories.Routes)
			r.Route("/transactions", h.Transactions.Routes)
			r.Route("/budgets", h.Budgets.Routes)
			r.Route("/goals", h.Goals.Routes)
			r.Route("/rules", h.Rules.Routes)
		})

		r.Route("/dashboard", h.Dashboard.Routes)
		r.Route("/import", h.Import.Routes)
		r.Route("/export", h.Export.Routes)
	})

	return router
}
