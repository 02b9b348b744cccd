// Package http provides meta endpoints
package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/beta"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/corrections"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/core/version"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/modkit/httpkit"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/metrics"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Tables      *corrections.Tables
	Metrics     *metrics.Collector
	Tolerance   float64
	MaxIter     int
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d, now: time.Now}

	// mount routes
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/solver", h.solver)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"orifice-api"`
	Started string `json:"started"  example:"2026-10-17T13:00:00Z"`
	Now     string `json:"now"      example:"2026-10-17T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"tables"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"no correction entries loaded"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-17T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name        string `json:"name"    example:"orifice-api"`
	Started     string `json:"started" example:"2026-10-17T13:00:00Z"`
	Uptime      int64  `json:"uptime"  example:"300"`
	UptimeHuman string `json:"uptime_human" example:"5 minutes"`
}

// SolverResponse reports the bisection bracket, stop criteria and the active tables
type SolverResponse struct {
	BetaMin       float64           `json:"beta_min" example:"0.25"`
	BetaMax       float64           `json:"beta_max" example:"0.72"`
	Tolerance     float64           `json:"tolerance" example:"0.000001"`
	MaxIterations int               `json:"max_iterations" example:"100"`
	TablesVersion int               `json:"tables_version" example:"1"`
	TablesSource  string            `json:"tables_source" example:"embedded tables.json"`
	Build         version.BuildInfo `json:"build"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(_ *http.Request) (any, error) {
	tables := ReadyCheck{Name: "tables", Status: "ok"}
	switch {
	case h.deps.Tables == nil:
		tables.Status = "fail"
		tables.Error = "correction tables not loaded"
	case len(h.deps.Tables.Entries(corrections.KindTap)) == 0:
		tables.Status = "fail"
		tables.Error = "no correction entries loaded"
	}

	mc := ReadyCheck{Name: "metrics", Status: "skipped"}
	if h.deps.Metrics != nil {
		mc.Status = "ok"
		if _, err := h.deps.Metrics.Registry().Gather(); err != nil {
			mc.Status = "fail"
			mc.Error = err.Error()
		}
	}

	overall := "ok"
	switch {
	case tables.Status == "fail":
		overall = "fail"
	case mc.Status != "ok":
		overall = "degraded"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{tables, mc},
		Now:    h.now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.For(h.deps.ServiceName), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	now := h.now()
	return ServiceResponse{
		Name:        h.deps.ServiceName,
		Started:     h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:      int64(now.Sub(h.deps.StartedAt) / time.Second),
		UptimeHuman: strings.TrimSpace(humanize.RelTime(h.deps.StartedAt, now, "", "")),
	}, nil
}

// swagger:route GET /meta/solver Meta metaSolver
// @Summary Solver bracket, stop criteria and table version
// @Tags Meta
// @Produce json
// @Success 200 {object} SolverResponse "ok"
// @Router /meta/solver [get]
func (h *handlers) solver(_ *http.Request) (any, error) {
	out := SolverResponse{
		BetaMin:       beta.BetaMin,
		BetaMax:       beta.BetaMax,
		Tolerance:     h.deps.Tolerance,
		MaxIterations: h.deps.MaxIter,
		Build:         version.For(h.deps.ServiceName),
	}
	if h.deps.Tables != nil {
		out.TablesVersion = h.deps.Tables.Version()
		out.TablesSource = h.deps.Tables.Source()
	}
	return out, nil
}
