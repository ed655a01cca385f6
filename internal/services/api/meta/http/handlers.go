// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"floaty/internal/core/lexicon"
	"floaty/internal/core/taskextract"
	"floaty/internal/core/version"
	"floaty/internal/modkit/httpkit"
	"floaty/internal/modkit/module"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Preset is a named extractor configuration
type Preset struct {
	Name      string
	Extractor *taskextract.Extractor
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
	CH          any
	Presets     []Preset
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/extractor", h.extractor)
}

//
// Swagger DTOs
//

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"floaty-api"`
	Started string `json:"started"  example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"floaty-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
	// Modules are the registered module names
	Modules []string `json:"modules"`
}

// PresetInfo reports one extractor preset
type PresetInfo struct {
	Name             string   `json:"name"              example:"popup"`
	Cap              int      `json:"cap"               example:"3"`
	UltimateFallback bool     `json:"ultimate_fallback" example:"true"`
	Tiers            []string `json:"tiers"`
}

// ExtractorResponse reports the lexicon and presets in use
type ExtractorResponse struct {
	LexiconVersion   int               `json:"lexicon_version"   example:"1"`
	ActionKeywords   int               `json:"action_keywords"   example:"60"`
	PriorityKeywords int               `json:"priority_keywords" example:"12"`
	Presets          []PresetInfo      `json:"presets"`
	Build            version.BuildInfo `json:"build"`
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
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	check := func(name string, c any) ReadyCheck {
		if c == nil {
			return ReadyCheck{Name: name, Status: "skipped"}
		}
		if p, ok := c.(Pinger); ok {
			if err := p.Ping(ctx); err != nil {
				return ReadyCheck{Name: name, Status: "fail", Error: err.Error()}
			}
			return ReadyCheck{Name: name, Status: "ok"}
		}
		return ReadyCheck{Name: name, Status: "unknown"}
	}

	pg := check("pg", h.deps.PG)
	ch := check("ch", h.deps.CH)

	// both backends are optional, so skipped still counts as ready
	overall := "ok"
	for _, c := range []ReadyCheck{pg, ch} {
		switch c.Status {
		case "fail":
			overall = "fail"
		case "unknown":
			if overall == "ok" {
				overall = "degraded"
			}
		}
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{pg, ch},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
		Modules: module.Names(),
	}, nil
}

// swagger:route GET /meta/extractor Meta metaExtractor
// @Summary Task extractor lexicon and presets
// @Tags Meta
// @Produce json
// @Success 200 {object} ExtractorResponse "ok"
// @Router /meta/extractor [get]
func (h *handlers) extractor(_ *http.Request) (any, error) {
	lex := lexicon.Default()
	out := ExtractorResponse{
		LexiconVersion:   lex.Version,
		ActionKeywords:   len(lex.Action),
		PriorityKeywords: len(lex.Priority),
		Presets:          make([]PresetInfo, 0, len(h.deps.Presets)),
		Build:            version.Info(),
	}
	for _, p := range h.deps.Presets {
		if p.Extractor == nil {
			continue
		}
		o := p.Extractor.Options()
		out.Presets = append(out.Presets, PresetInfo{
			Name:             p.Name,
			Cap:              o.Cap,
			UltimateFallback: o.UltimateFallback,
			Tiers:            p.Extractor.Tiers(),
		})
	}
	return out, nil
}
