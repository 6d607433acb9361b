package handlers

import (
	"time"

	"venue-booking/internal/repository"
	"venue-booking/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const startTimeFormLayout = "2006-01-02 15:04:05"

type ShowHandler struct {
	service services.ShowService
	flash   *Flasher
	logger  *logrus.Logger
}

func NewShowHandler(service services.ShowService, flash *Flasher, logger *logrus.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		flash:   flash,
		logger:  logger,
	}
}

func (h *ShowHandler) ListShows(c *fiber.Ctx) error {
	shows, err := h.service.ListShows(c.Context())
	if err != nil {
		return err
	}
	return render(c, h.flash, "pages/shows", fiber.Map{"Shows": shows})
}

func (h *ShowHandler) CreateShowForm(c *fiber.Ctx) error {
	return render(c, h.flash, "forms/new_show", fiber.Map{
		"StartTime": time.Now().UTC().Format(startTimeFormLayout),
	})
}

func (h *ShowHandler) CreateShow(c *fiber.Ctx) error {
	form := readForm(c)
	in := services.ShowInput{
		ArtistID:  form.get("artist_id"),
		VenueID:   form.get("venue_id"),
		StartTime: form.get("start_time"),
	}

	if _, err := h.service.CreateShow(c.Context(), in); err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"artist_id": in.ArtistID,
			"venue_id":  in.VenueID,
			"kind":      repository.Kind(err),
		}).Error("Failed to create show")
		h.flash.Push(c, FlashInfo, "Show was not listed!")
		return c.Redirect("/")
	}

	h.flash.Push(c, FlashInfo, "Show was successfully listed!")
	return c.Redirect("/")
}
