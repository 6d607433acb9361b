package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthChecker is satisfied by *database.Database.
type HealthChecker interface {
	HealthCheck() error
}

type PageHandler struct {
	db    HealthChecker
	flash *Flasher
}

func NewPageHandler(db HealthChecker, flash *Flasher) *PageHandler {
	return &PageHandler{
		db:    db,
		flash: flash,
	}
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	return render(c, h.flash, "pages/home", nil)
}

// Health godoc
// @Summary Health check
// @Description Report service and database status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *PageHandler) Health(c *fiber.Ctx) error {
	code := fiber.StatusOK
	status := "ok"
	dbStatus := "healthy"
	if err := h.db.HealthCheck(); err != nil {
		code = fiber.StatusServiceUnavailable
		status = "error"
		dbStatus = "unhealthy"
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    status,
		"service":   "venue-booking",
		"version":   "1.0.0",
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
