package api

import "github.com/labstack/echo/v4"

// Service identity reported in every envelope.
const (
	ServiceName = "ml-service"
	Version     = "1.0.0"
)

// AvailableEndpoints is advertised on 404 responses.
var AvailableEndpoints = []string{
	"GET /health",
	"GET /health/detailed",
	"POST /forecast",
	"GET /models",
	"GET /error/400",
	"GET /error/500",
}

// Router aggregates the API handlers behind a single route registrar.
type Router struct {
	forecast *ForecastHandler
	health   *HealthHandler
}

func NewRouter(forecast *ForecastHandler, health *HealthHandler) *Router {
	return &Router{forecast: forecast, health: health}
}

func (r *Router) RegisterRoutes(e *echo.Echo) {
	r.forecast.RegisterRoutes(e)
	r.health.RegisterRoutes(e)
}
