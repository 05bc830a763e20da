// Package server assembles the HTTP API: router, middleware, CORS, and the
// handler wiring shared by main and the endpoint tests.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"fincalc/internal/config"
	calculatehandlers "fincalc/internal/handlers/calculate"
	scenariohandlers "fincalc/internal/handlers/scenarios"
	"fincalc/internal/httpx"
	scenariostore "fincalc/internal/services/scenarios"
	"fincalc/internal/services/vault"
	"fincalc/internal/version"
)

// Server carries the wired application state behind the router.
type Server struct {
	cfg   *config.Config
	store *scenariostore.Store
	vault *vault.Vault
	log   zerolog.Logger
}

// New wires a server from its dependencies.
func New(cfg *config.Config, store *scenariostore.Store, v *vault.Vault, log zerolog.Logger) *Server {
	return &Server{
		cfg:   cfg,
		store: store,
		vault: v,
		log:   log,
	}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	calc := calculatehandlers.New(s.log)
	scen := scenariohandlers.New(s.store, s.vault, s.log)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/calculate", calc.Calculate)
		r.Route("/scenarios", scen.Routes)
	})

	return r
}

type healthResponse struct {
	Status  string       `json:"status"`
	Version version.Info `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: version.Get(),
	})
}
