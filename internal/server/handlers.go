package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"driveledger-go/internal/api"
	"driveledger-go/internal/export"
	"driveledger-go/internal/models"
	"driveledger-go/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Ledger *api.LedgerService
}

func NewHandler(ledger *api.LedgerService) *Handler {
	return &Handler{Ledger: ledger}
}

// =============================================================================
// VEHICLES
// =============================================================================

func (h *Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Ledger.ListVehicles(r.Context())
	if err != nil {
		writeServiceError(w, "failed to list vehicles", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(vehicles))
}

func (h *Handler) ListInventory(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Ledger.ListInventory(r.Context())
	if err != nil {
		writeServiceError(w, "failed to list inventory", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(vehicles))
}

func (h *Handler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle id", err)
		return
	}

	vehicle, err := h.Ledger.GetVehicle(r.Context(), id)
	if err != nil {
		writeServiceError(w, "failed to get vehicle", err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *Handler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	vehicle, err := h.Ledger.AddVehicle(r.Context(), store.InsertVehicleParams{
		Brand:             req.Brand,
		Model:             req.Model,
		Year:              req.Year,
		PurchasePrice:     req.PurchasePrice,
		ExpectedSellPrice: req.ExpectedSellPrice,
		DateAdded:         req.DateAdded,
	})
	if err != nil {
		writeServiceError(w, "failed to add vehicle", err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicle)
}

// =============================================================================
// SALES & EXPENSES
// =============================================================================

func (h *Handler) ListSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Ledger.ListSales(r.Context())
	if err != nil {
		writeServiceError(w, "failed to list sales", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(sales))
}

func (h *Handler) SellVehicle(w http.ResponseWriter, r *http.Request) {
	var req CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	sale, err := h.Ledger.SellVehicle(r.Context(), store.InsertSaleParams{
		VehicleId:    req.VehicleId,
		CustomerName: req.CustomerName,
		SalePrice:    req.SalePrice,
		Date:         req.Date,
	})
	if err != nil {
		writeServiceError(w, "failed to sell vehicle", err)
		return
	}
	writeJSON(w, http.StatusCreated, sale)
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Ledger.ListExpenses(r.Context())
	if err != nil {
		writeServiceError(w, "failed to list expenses", err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(expenses))
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	expense, err := h.Ledger.AddExpense(r.Context(), store.InsertExpenseParams{
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	})
	if err != nil {
		writeServiceError(w, "failed to add expense", err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

// =============================================================================
// REPORTS
// =============================================================================

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Ledger.FinancialSummary(r.Context())
	if err != nil {
		writeServiceError(w, "failed to build summary", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Monthly returns the monthly breakdown for ?year= (default current year),
// carried from ?starting_balance= (default 0).
func (h *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid year", err)
			return
		}
		year = parsed
	}

	startingBalance := decimal.Zero
	if raw := r.URL.Query().Get("starting_balance"); raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid starting_balance", err)
			return
		}
		startingBalance = parsed
	}

	breakdown, err := h.Ledger.MonthlyBreakdown(r.Context(), year, startingBalance)
	if err != nil {
		writeServiceError(w, "failed to build monthly breakdown", err)
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}

func (h *Handler) Years(w http.ResponseWriter, r *http.Request) {
	years, err := h.Ledger.AvailableYears(r.Context())
	if err != nil {
		writeServiceError(w, "failed to list years", err)
		return
	}
	writeJSON(w, http.StatusOK, YearsResponse{Years: years})
}

// =============================================================================
// EXPORT & ADMIN
// =============================================================================

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	data, err := export.Collect(r.Context(), h.Ledger)
	if err != nil {
		writeServiceError(w, "failed to load export data", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", kind+".csv"))
	if err := export.WriteCSV(w, kind, data); err != nil {
		if errors.Is(err, export.ErrUnknownKind) {
			w.Header().Del("Content-Disposition")
			writeError(w, http.StatusNotFound, "unknown export", err)
			return
		}
		zap.L().Error("CSV export failed", zap.String("kind", kind), zap.Error(err))
	}
}

func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	data, err := export.Collect(r.Context(), h.Ledger)
	if err != nil {
		writeServiceError(w, "failed to load export data", err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"ledger_%s.xlsx\"",
		time.Now().Format("20060102")))
	if err := export.WriteXLSX(w, data); err != nil {
		zap.L().Error("XLSX export failed", zap.Error(err))
	}
}

// Reset re-initializes the store, reloading the seed data unless ?seed=false.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	seed := true
	if raw := r.URL.Query().Get("seed"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid seed flag", err)
			return
		}
		seed = parsed
	}

	counts, err := h.Ledger.Reset(r.Context(), seed)
	if err != nil {
		writeServiceError(w, "failed to reset ledger", err)
		return
	}

	zap.L().Info("Ledger reset via API",
		zap.Bool("seeded", seed),
		zap.Int("vehicles", counts.Vehicles),
		zap.Int("expenses", counts.Expenses))
	writeJSON(w, http.StatusOK, ResetResponse{Seeded: seed, Counts: counts})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Ledger.HealthCheck(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "unhealthy", err)
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("Failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeServiceError maps ledger sentinels to HTTP status codes.
func writeServiceError(w http.ResponseWriter, message string, err error) {
	writeError(w, statusFor(err), message, err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, api.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrVehicleNotFound):
		return http.StatusNotFound
	case errors.Is(err, api.ErrAlreadySold), errors.Is(err, store.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, store.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil[T models.Vehicle | models.Sale | models.Expense](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
