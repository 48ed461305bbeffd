package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", h.ListVehicles)
			r.Post("/", h.CreateVehicle)
			r.Get("/{id}", h.GetVehicle)
		})
		r.Get("/inventory", h.ListInventory)

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", h.ListSales)
			r.Post("/", h.SellVehicle)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", h.ListExpenses)
			r.Post("/", h.CreateExpense)
		})

		// Reports
		r.Get("/summary", h.Summary)
		r.Get("/monthly", h.Monthly)
		r.Get("/years", h.Years)

		r.Route("/export", func(r chi.Router) {
			r.Get("/ledger.xlsx", h.ExportXLSX)
			r.Get("/{kind}.csv", h.ExportCSV)
		})

		r.Post("/reset", h.Reset)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found", nil)
	})

	return r
}
