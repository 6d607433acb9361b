package handlers

import (
	"errors"
	"strconv"
	"strings"

	"venue-booking/internal/repository"
	"venue-booking/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const mainLayout = "layouts/main"

// render draws a page inside the main layout along with pending flashes.
func render(c *fiber.Ctx, flash *Flasher, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Flashes"] = flash.Pop(c)
	return c.Render(name, data, mainLayout)
}

// parseID reads the :id route parameter. Ids that cannot name a row are
// reported as not found.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.ErrNotFound
	}
	return uint(id), nil
}

// lookupError turns a failed read into the matching HTTP error.
func lookupError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fiber.ErrNotFound
	}
	return err
}

// NewErrorHandler renders the 404 and 500 pages, or the JSON envelope for
// API paths.
func NewErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		} else if errors.Is(err, repository.ErrNotFound) {
			code = fiber.StatusNotFound
		}

		entry := log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		})
		if code >= fiber.StatusInternalServerError {
			entry.WithField("kind", repository.Kind(err)).Error("Request error")
		} else {
			entry.Info("Request error")
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			message := utils.StatusMessage(code)
			if e != nil {
				message = e.Message
			}
			return utils.ErrorResponse(c, code, message)
		}

		page := "errors/500"
		if code == fiber.StatusNotFound {
			page = "errors/404"
		}
		if rerr := c.Status(code).Render(page, fiber.Map{}, mainLayout); rerr != nil {
			log.WithError(rerr).Error("Failed to render error page")
			return c.Status(code).SendString(utils.StatusMessage(code))
		}
		return nil
	}
}
