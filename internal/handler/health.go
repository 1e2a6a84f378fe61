package handler

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/deppfellow/hbnb/internal/middleware"
	"github.com/deppfellow/hbnb/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HealthHandler serves GET /status for load balancers and uptime monitors.
//
// The checks that run are chosen by observability.health_checks. A failing
// storage engine makes the service unhealthy (503); a failing Redis only
// degrades it, since the API keeps working without background jobs.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns system health status and dependency checks.
//
// Response includes:
// - overall status (healthy/degraded/unhealthy)
// - timestamp (UTC)
// - environment and storage engine (from config)
// - checks map (storage, redis)
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"storage":     h.server.Config.Storage.Type,
		"checks":      checks,
	}

	cfg := h.server.Config.Observability.HealthChecks
	enabled := func(name string) bool {
		return cfg.Enabled && slices.Contains(cfg.Checks, name)
	}

	if enabled("storage") {
		ok := h.runCheck(c.Request().Context(), &logger, checks, "storage", cfg.Timeout, h.server.Storage.Ping)
		if !ok {
			response["status"] = "unhealthy"
		}
	}

	if enabled("redis") && h.server.Redis != nil {
		ok := h.runCheck(c.Request().Context(), &logger, checks, "redis", cfg.Timeout, func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
		if !ok && response["status"] == "healthy" {
			response["status"] = "degraded"
		}
	}

	if response["status"] == "unhealthy" {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthEvent(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Interface("status", response["status"]).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")

		h.recordHealthEvent(map[string]interface{}{
			"check_type":    "response",
			"operation":     "health_check",
			"error_type":    "json_response_error",
			"error_message": err.Error(),
		})

		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// runCheck runs one dependency check under timeout and records its outcome
// in checks. It reports whether the dependency is healthy.
func (h *HealthHandler) runCheck(
	parent context.Context,
	logger *zerolog.Logger,
	checks map[string]interface{},
	name string,
	timeout time.Duration,
	ping func(context.Context) error,
) bool {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		checks[name] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", elapsed).
			Msgf("%s health check failed", name)

		h.recordHealthEvent(map[string]interface{}{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
		return false
	}

	checks[name] = map[string]interface{}{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}

	logger.Debug().
		Dur("response_time", elapsed).
		Msgf("%s health check passed", name)
	return true
}

// recordHealthEvent sends a HealthCheckError custom event when New Relic is enabled.
func (h *HealthHandler) recordHealthEvent(attrs map[string]interface{}) {
	if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
		h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attrs)
	}
}
