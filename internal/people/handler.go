package people

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fkhayef/splitledger/internal/ledger"
	"github.com/fkhayef/splitledger/pkg/response"
)

// Service lists the people known to the session
type Service interface {
	People(ctx context.Context) []ledger.Person
}

// PersonResponse represents one participant
type PersonResponse struct {
	Name string `json:"name"`
}

// Handler handles HTTP requests for people
type Handler struct {
	service Service
}

// NewHandler creates a new people handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for people endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)

	return r
}

// List handles GET /people
// @Summary      List people
// @Description  Get every person named in the ledger, in order of first appearance. Used to rebuild participant pickers after a reload.
// @Tags         people
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]PersonResponse}
// @Router       /people [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	people := h.service.People(r.Context())

	personResponses := make([]*PersonResponse, len(people))
	for i, p := range people {
		personResponses[i] = &PersonResponse{Name: string(p)}
	}

	response.JSONWithMeta(w, http.StatusOK, personResponses, &response.Meta{Total: len(personResponses)})
}
