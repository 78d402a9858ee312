package settlement

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/splitledger/internal/balance"
	"github.com/fkhayef/splitledger/pkg/response"
)

// Service is the session behaviour the settlement endpoints need
type Service interface {
	Balances(ctx context.Context) *balance.Map
	Settlements(ctx context.Context) []Transfer
}

// Handler handles HTTP requests for settlement operations
type Handler struct {
	service  Service
	currency string
}

// NewHandler creates a new settlement handler
func NewHandler(service Service, currency string) *Handler {
	return &Handler{service: service, currency: currency}
}

// Routes returns the router for settlement endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/balances", h.GetBalances)

	return r
}

// List handles GET /settlements
// @Summary      List settlement transfers
// @Description  Recompute the transfers that settle every balance in the ledger. The list replaces any previous result.
// @Tags         settlements
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]TransferResponse}
// @Router       /settlements [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	transfers := h.service.Settlements(r.Context())

	transferResponses := make([]*TransferResponse, len(transfers))
	for i, t := range transfers {
		transferResponses[i] = t.ToResponse(h.currency)
	}

	response.JSONWithMeta(w, http.StatusOK, transferResponses, &response.Meta{Total: len(transferResponses)})
}

// GetBalances handles GET /settlements/balances
// @Summary      Get net balances
// @Description  Get the signed net balance of every person in the ledger
// @Tags         settlements
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]BalanceResponse}
// @Router       /settlements/balances [get]
func (h *Handler) GetBalances(w http.ResponseWriter, r *http.Request) {
	entries := h.service.Balances(r.Context()).Entries()

	balanceResponses := make([]*BalanceResponse, len(entries))
	for i, e := range entries {
		balanceResponses[i] = NewBalanceResponse(e, h.currency)
	}

	response.JSON(w, http.StatusOK, balanceResponses)
}
