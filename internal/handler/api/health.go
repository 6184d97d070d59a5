package api

import (
	"net/http"
	"runtime"

	"MLService/internal/service/catalog"
	"MLService/internal/sysinfo"
	"MLService/pkg/config"
	xhttp "MLService/pkg/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves health checks and the error-path probes.
type HealthHandler struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	env     *xhttp.EnvelopeWriter
}

func NewHealthHandler(cfg *config.Config, cat *catalog.Catalog, env *xhttp.EnvelopeWriter) *HealthHandler {
	return &HealthHandler{cfg: cfg, catalog: cat, env: env}
}

func (h *HealthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	e.GET("/health/detailed", h.DetailedHealth)
	e.GET("/error/400", h.SimulatedBadRequest)
	e.GET("/error/500", h.SimulatedInternalError)
	e.GET("/error/throw", h.Throw)
}

type healthResponse struct {
	xhttp.Envelope
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Envelope:  h.env.NewSuccess("ML service is healthy and running"),
		Version:   Version,
		GoVersion: runtime.Version(),
	})
}

type modelsHealth struct {
	Available []string `json:"available"`
	Count     int      `json:"count"`
}

type configHealth struct {
	Debug bool   `json:"debug"`
	Host  string `json:"host"`
	Port  int    `json:"port"`
}

type detailedHealthResponse struct {
	xhttp.Envelope
	Version       string           `json:"version"`
	System        sysinfo.Snapshot `json:"system"`
	Models        modelsHealth     `json:"models"`
	Configuration configHealth     `json:"configuration"`
}

func (h *HealthHandler) DetailedHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, detailedHealthResponse{
		Envelope: h.env.NewSuccess("Detailed health check passed"),
		Version:  Version,
		System:   sysinfo.Collect(),
		Models: modelsHealth{
			Available: h.catalog.Names(),
			Count:     h.catalog.Len(),
		},
		Configuration: configHealth{
			Debug: h.cfg.Debug(),
			Host:  h.cfg.Server.Host,
			Port:  h.cfg.Server.Port,
		},
	})
}

// SimulatedBadRequest returns a fixed 400 envelope for verifying client error
// handling end to end.
func (h *HealthHandler) SimulatedBadRequest(c echo.Context) error {
	return h.env.Error(c, http.StatusBadRequest, "Bad Request",
		"This is a simulated 400 error for testing purposes")
}

// SimulatedInternalError returns a fixed 500 envelope.
func (h *HealthHandler) SimulatedInternalError(c echo.Context) error {
	return h.env.Error(c, http.StatusInternalServerError, "Internal Server Error",
		"This is a simulated 500 error for testing purposes")
}

// Throw panics on purpose to exercise the recovery middleware.
func (h *HealthHandler) Throw(c echo.Context) error {
	panic("This is a test exception for error handling verification")
}
