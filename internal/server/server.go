// Package server exposes the simulation core over a small JSON API,
// replacing the original dashboard's reactive callback surface with
// explicit pure-function handlers. Each request recomputes fully from its
// own parameters; the only shared state is the read-only scenario table.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Peter-Metz/TSP-cost/internal/calculation"
	"github.com/Peter-Metz/TSP-cost/internal/config"
	"github.com/Peter-Metz/TSP-cost/internal/domain"
	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

// Config is the server environment configuration. URL_BASE_PATHNAME is
// honored for parity with the original deployment.
type Config struct {
	Addr     string `env:"TSPCOST_ADDR" envDefault:":8080"`
	BasePath string `env:"URL_BASE_PATHNAME" envDefault:"/"`
	DataPath string `env:"TSPCOST_DATA_PATH" envDefault:"data"`
	Debug    bool   `env:"TSPCOST_DEBUG"`
}

// ParseEnv loads the server configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if !strings.HasSuffix(cfg.BasePath, "/") {
		cfg.BasePath += "/"
	}
	return cfg, nil
}

// Server handles the JSON API requests.
type Server struct {
	engine *calculation.SimulationEngine
	parser *config.InputParser
	logger calculation.Logger
}

// New creates a server over a ready simulation engine.
func New(engine *calculation.SimulationEngine, logger calculation.Logger) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Server{
		engine: engine,
		parser: config.NewInputParser(),
		logger: logger,
	}
}

// Handler builds the route mux under the configured base path.
func (s *Server) Handler(basePath string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(basePath+"healthz", s.handleHealth)
	mux.HandleFunc(basePath+"api/simulate", s.handleSimulate)
	mux.HandleFunc(basePath+"api/project", s.handleProject)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}

// handleSimulate runs the population-level simulation. Knobs default to
// the dashboard's starting values; any supplied query parameter overrides
// its default.
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	policy := *s.parser.CreateExampleInput().Policy
	q := r.URL.Query()

	if err := overrideRate(q, "match_rate", &policy.MatchRate); err != nil {
		s.writeError(w, err)
		return
	}
	if v := q.Get("phaseout"); v != "" {
		policy.Phaseout = domain.PhaseoutScenario(v)
	}
	if err := overrideRate(q, "takeup_rate", &policy.TakeupRate); err != nil {
		s.writeError(w, err)
		return
	}
	if err := overrideRate(q, "leakage_rate", &policy.LeakageRate); err != nil {
		s.writeError(w, err)
		return
	}
	if err := overrideRate(q, "roi", &policy.ROI); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.parser.ValidatePolicy(&policy); err != nil {
		s.writeError(w, err)
		return
	}
	params, err := policy.Parameters()
	if err != nil {
		s.writeError(w, err)
		return
	}

	impact, err := s.engine.RunPolicy(r.Context(), params)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, impact)
}

// handleProject runs the per-household projection.
func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	household := *s.parser.CreateExampleInput().Household
	q := r.URL.Query()

	if err := overrideRate(q, "income", &household.Income); err != nil {
		s.writeError(w, err)
		return
	}
	if err := overrideRate(q, "contribution_rate", &household.ContributionRate); err != nil {
		s.writeError(w, err)
		return
	}
	if err := overrideRate(q, "match_rate", &household.MatchRate); err != nil {
		s.writeError(w, err)
		return
	}
	if err := overrideRate(q, "leakage_rate", &household.LeakageRate); err != nil {
		s.writeError(w, err)
		return
	}
	if err := overrideRate(q, "roi", &household.ROI); err != nil {
		s.writeError(w, err)
		return
	}
	if v := q.Get("deposit_model"); v != "" {
		household.DepositModel = v
	}

	if err := s.parser.ValidateHousehold(&household); err != nil {
		s.writeError(w, err)
		return
	}

	projection, err := calculation.ProjectHousehold(household)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, projection)
}

// overrideRate replaces *target with the parsed query value when present.
func overrideRate(q url.Values, name string, target *decimal.Decimal) error {
	raw := q.Get(name)
	if raw == "" {
		return nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return &domain.ValidationError{Field: name, Reason: fmt.Sprintf("invalid number %q", raw)}
	}
	*target = v
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Errorf("failed to encode response: %v", err)
	}
}

// writeError maps the core's error taxonomy onto HTTP statuses: invalid
// inputs are 400, combinations outside the precomputed grid are 404.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrScenarioNotFound):
		status = http.StatusNotFound
	}

	s.logger.Warnf("request failed (%d): %v", status, err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
