package handlers

import (
	"fmt"

	"venue-booking/internal/repository"
	"venue-booking/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type VenueHandler struct {
	service services.VenueService
	genres  services.GenreService
	flash   *Flasher
	logger  *logrus.Logger
}

func NewVenueHandler(service services.VenueService, genres services.GenreService, flash *Flasher, logger *logrus.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		genres:  genres,
		flash:   flash,
		logger:  logger,
	}
}

func (h *VenueHandler) ListVenues(c *fiber.Ctx) error {
	areas, err := h.service.ListVenues(c.Context())
	if err != nil {
		return err
	}
	return render(c, h.flash, "pages/venues", fiber.Map{"Areas": areas})
}

func (h *VenueHandler) SearchVenues(c *fiber.Ctx) error {
	term := readForm(c).get("search_term")

	results, err := h.service.SearchVenues(c.Context(), term)
	if err != nil {
		return err
	}
	return render(c, h.flash, "pages/search_venues", fiber.Map{
		"Results":    results,
		"SearchTerm": term,
		"Count":      len(results),
	})
}

func (h *VenueHandler) ShowVenue(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetVenue(c.Context(), id)
	if err != nil {
		return lookupError(err)
	}
	return render(c, h.flash, "pages/show_venue", fiber.Map{
		"Venue":         detail.Venue,
		"PastShows":     detail.Past,
		"UpcomingShows": detail.Upcoming,
	})
}

func (h *VenueHandler) CreateVenueForm(c *fiber.Ctx) error {
	genres, err := h.genres.ListGenres(c.Context())
	if err != nil {
		return err
	}
	return render(c, h.flash, "forms/new_venue", fiber.Map{
		"Genres": genres,
		"States": stateChoices,
	})
}

func (h *VenueHandler) CreateVenue(c *fiber.Ctx) error {
	form := readForm(c)

	if _, err := h.service.CreateVenue(c.Context(), venueInput(form)); err != nil {
		h.logger.WithError(err).WithField("kind", repository.Kind(err)).Error("Failed to create venue")
		h.flash.Push(c, FlashInfo, "Venue was not listed!")
		return c.Redirect("/")
	}

	h.flash.Push(c, FlashInfo, "Venue "+form.get("name")+" was successfully listed!")
	return c.Redirect("/")
}

func (h *VenueHandler) DeleteVenue(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteVenue(c.Context(), id); err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"venue_id": id,
			"kind":     repository.Kind(err),
		}).Error("Failed to delete venue")
		h.flash.Push(c, FlashWarning, "There was a problem with this request!")
		return c.Redirect("/")
	}

	h.flash.Push(c, FlashSuccess, "Your venue has been deleted!")
	return c.Redirect("/")
}

func (h *VenueHandler) EditVenueForm(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetVenue(c.Context(), id)
	if err != nil {
		return lookupError(err)
	}
	genres, err := h.genres.ListGenres(c.Context())
	if err != nil {
		return err
	}
	return render(c, h.flash, "forms/edit_venue", fiber.Map{
		"Venue":    detail.Venue,
		"Genres":   genres,
		"Selected": selectedGenres(detail.Venue.Genres),
		"States":   stateChoices,
	})
}

func (h *VenueHandler) EditVenue(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	target := fmt.Sprintf("/venues/%d", id)

	if _, err := h.service.UpdateVenue(c.Context(), id, venueInput(readForm(c))); err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"venue_id": id,
			"kind":     repository.Kind(err),
		}).Error("Failed to update venue")
		h.flash.Push(c, FlashInfo, "Venue was not modified!")
		return c.Redirect(target)
	}

	h.flash.Push(c, FlashInfo, "Venue was successfully modified ")
	return c.Redirect(target)
}
