package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/middleware"
	"github.com/labstack/echo/v4"
)

// Checker probes one dependency.
type Checker func(ctx context.Context) error

// HealthCheck is a named dependency probe. Only required checks turn the
// overall status unhealthy.
type HealthCheck struct {
	Name     string
	Required bool
	Check    Checker
}

type HealthHandler struct {
	Handler
	checks  []HealthCheck
	timeout time.Duration
}

// NewHealthHandler probes the database (required) and Redis when configured.
func NewHealthHandler(h Handler) *HealthHandler {
	s := h.server

	var checks []HealthCheck
	if s.DB != nil {
		checks = append(checks, HealthCheck{Name: "database", Required: true, Check: s.DB.Ping})
	}
	if s.Redis != nil {
		checks = append(checks, HealthCheck{Name: "redis", Check: func(ctx context.Context) error {
			return s.Redis.Ping(ctx).Err()
		}})
	}

	return NewHealthHandlerWithChecks(h, checks...)
}

func NewHealthHandlerWithChecks(h Handler, checks ...HealthCheck) *HealthHandler {
	timeout := 5 * time.Second
	if h.server != nil && h.server.Config != nil && h.server.Config.Observability != nil {
		timeout = h.server.Config.Observability.HealthCheckTimeout()
	}

	return &HealthHandler{
		Handler: h,
		checks:  checks,
		timeout: timeout,
	}
}

type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

// CheckHealth answers 200 when every required dependency responds and 503
// otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Checks:    make(map[string]CheckResult, len(h.checks)),
	}
	if h.server != nil && h.server.Config != nil {
		response.Environment = h.server.Config.Primary.Env
	}

	healthy := true
	for _, check := range h.checks {
		result := h.run(c.Request().Context(), check)
		response.Checks[check.Name] = result

		if result.Error == "" {
			logger.Debug().Str("check", check.Name).Str("response_time", result.ResponseTime).Msg("health check passed")
			continue
		}

		logger.Error().
			Str("check", check.Name).
			Str("error", result.Error).
			Msg("health check failed")
		h.recordFailure(check.Name, result.Error)

		if check.Required {
			healthy = false
		}
	}

	if !healthy {
		response.Status = "unhealthy"
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("service unhealthy")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) run(ctx context.Context, check HealthCheck) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	start := time.Now()
	err := check.Check(ctx)

	result := CheckResult{
		Status:       "healthy",
		ResponseTime: time.Since(start).String(),
	}
	if err != nil {
		result.Status = "unhealthy"
		result.Error = err.Error()
	}
	return result
}

func (h *HealthHandler) recordFailure(check, message string) {
	if h.server == nil || h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", map[string]any{
		"check_type":    check,
		"operation":     "health_check",
		"error_message": message,
	})
}
