package expense

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/splitledger/internal/expense/split"
	"github.com/fkhayef/splitledger/internal/ledger"
	"github.com/fkhayef/splitledger/pkg/response"
	"github.com/fkhayef/splitledger/pkg/validation"
)

// Service is the session behaviour the expense endpoints need
type Service interface {
	AddExpense(ctx context.Context, e Expense) ([]ledger.SplitRecord, error)
	Records(ctx context.Context) []ledger.SplitRecord
	State(ctx context.Context) ledger.State
	Reset(ctx context.Context)
}

// Handler handles HTTP requests for expense operations
type Handler struct {
	service  Service
	currency string
}

// NewHandler creates a new expense handler
func NewHandler(service Service, currency string) *Handler {
	return &Handler{service: service, currency: currency}
}

// Routes returns the router for expense endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Delete("/", h.Reset)

	return r
}

// Create handles POST /expenses
// @Summary      Add an expense
// @Description  Split an expense evenly between the participants and append the resulting records to the ledger
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request body CreateExpenseRequest true "Expense to add"
// @Success      201 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := validation.Struct(&req); err != nil {
		response.InvalidExpense(w, err.Error())
		return
	}

	e, err := req.ToExpense()
	if err != nil {
		response.InvalidExpense(w, err.Error())
		return
	}

	records, err := h.service.AddExpense(r.Context(), e)
	if err != nil {
		if errors.Is(err, split.ErrInvalidExpense) || errors.Is(err, split.ErrUnknownSplitType) ||
			errors.Is(err, ledger.ErrInvalidRecord) {
			response.InvalidExpense(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to add expense")
		return
	}

	response.JSON(w, http.StatusCreated, e.ToResponse(records, h.currency))
}

// List handles GET /expenses
// @Summary      List raw expense entries
// @Description  Get every split record in the ledger, in insertion order
// @Tags         expenses
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]SplitRecordResponse}
// @Router       /expenses [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	records := h.service.Records(r.Context())

	response.JSONWithMeta(w, http.StatusOK, NewSplitRecordResponses(records, h.currency), &response.Meta{
		Total: len(records),
		State: string(h.service.State(r.Context())),
	})
}

// Reset handles DELETE /expenses
// @Summary      Reset the ledger
// @Description  Remove every record from the ledger
// @Tags         expenses
// @Success      204
// @Router       /expenses [delete]
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.service.Reset(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
