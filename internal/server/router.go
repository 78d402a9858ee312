package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fkhayef/splitledger/docs"
	"github.com/fkhayef/splitledger/internal/expense"
	"github.com/fkhayef/splitledger/internal/logging"
	"github.com/fkhayef/splitledger/internal/people"
	"github.com/fkhayef/splitledger/internal/session"
	"github.com/fkhayef/splitledger/internal/settlement"
	mw "github.com/fkhayef/splitledger/pkg/middleware"
)

// Options configures the HTTP router
type Options struct {
	Currency       string
	AllowedOrigins []string
}

// NewRouter wires every feature handler onto one chi router
func NewRouter(svc *session.Service, logger logging.Logger, opts Options) http.Handler {
	expenseHandler := expense.NewHandler(svc, opts.Currency)
	settlementHandler := settlement.NewHandler(svc, opts.Currency)
	peopleHandler := people.NewHandler(svc)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(mw.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/people", peopleHandler.Routes())
	})

	return r
}
