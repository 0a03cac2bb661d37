package router

import (
	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the health and documentation endpoints.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
	r.GET("/docs/openapi.json", h.OpenAPI.ServeOpenAPISpec)
}
