package handler

import (
	"studygeni/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports service liveness and cache connectivity
type HealthHandler struct {
	cache domain.Cache // nil when Redis is disabled
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	status := fiber.Map{"status": "ok"}

	if h.cache != nil {
		if err := h.cache.Ping(c.Context()); err != nil {
			status["redis"] = "unavailable"
		} else {
			status["redis"] = "ok"
		}
	}

	return c.JSON(status)
}
