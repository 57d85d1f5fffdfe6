package http

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"github.com/weatherlookup/backend/internal/domain"
	"github.com/weatherlookup/backend/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	weatherSvc *service.WeatherService
	log        *zap.Logger
}

// NewHandler creates a new handler
func NewHandler(weatherSvc *service.WeatherService, log *zap.Logger) *Handler {
	return &Handler{
		weatherSvc: weatherSvc,
		log:        log,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// GetWeather returns current weather and the daily forecast for ?city=
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	city, err := ValidateCity(utils.CopyString(c.Query("city")))
	if err != nil {
		return h.respondError(c, err)
	}

	weather, err := h.weatherSvc.GetWeatherByCity(c.Context(), city, clientIP(c))
	if err != nil {
		return h.respondError(c, err)
	}

	return c.JSON(weather)
}

// respondError renders err as {error, message} with the status of its kind
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	var status int
	switch domain.KindOf(err) {
	case domain.KindValidation:
		status = fiber.StatusBadRequest
	case domain.KindNotFound:
		status = fiber.StatusNotFound
	default:
		status = fiber.StatusInternalServerError
		h.log.Error("weather request failed",
			zap.Any("request_id", c.Locals("requestid")),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	return c.Status(status).JSON(fiber.Map{
		"error":   http.StatusText(status),
		"message": domain.MessageOf(err, "failed to fetch weather data"),
	})
}

// clientIP prefers the first X-Forwarded-For hop over the socket address
func clientIP(c *fiber.Ctx) string {
	if forwarded := c.Get(fiber.HeaderXForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return utils.CopyString(ip)
		}
	}
	return utils.CopyString(c.IP())
}
