package handlers

import (
	"fmt"

	"venue-booking/internal/repository"
	"venue-booking/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ArtistHandler struct {
	service services.ArtistService
	genres  services.GenreService
	flash   *Flasher
	logger  *logrus.Logger
}

func NewArtistHandler(service services.ArtistService, genres services.GenreService, flash *Flasher, logger *logrus.Logger) *ArtistHandler {
	return &ArtistHandler{
		service: service,
		genres:  genres,
		flash:   flash,
		logger:  logger,
	}
}

func (h *ArtistHandler) ListArtists(c *fiber.Ctx) error {
	artists, err := h.service.ListArtists(c.Context())
	if err != nil {
		return err
	}
	return render(c, h.flash, "pages/artists", fiber.Map{"Artists": artists})
}

func (h *ArtistHandler) SearchArtists(c *fiber.Ctx) error {
	term := readForm(c).get("search_term")

	results, err := h.service.SearchArtists(c.Context(), term)
	if err != nil {
		return err
	}
	return render(c, h.flash, "pages/search_artists", fiber.Map{
		"Results":    results,
		"SearchTerm": term,
		"Count":      len(results),
	})
}

func (h *ArtistHandler) ShowArtist(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetArtist(c.Context(), id)
	if err != nil {
		return lookupError(err)
	}
	return render(c, h.flash, "pages/show_artist", fiber.Map{
		"Artist":        detail.Artist,
		"PastShows":     detail.Past,
		"UpcomingShows": detail.Upcoming,
	})
}

func (h *ArtistHandler) CreateArtistForm(c *fiber.Ctx) error {
	genres, err := h.genres.ListGenres(c.Context())
	if err != nil {
		return err
	}
	return render(c, h.flash, "forms/new_artist", fiber.Map{
		"Genres": genres,
		"States": stateChoices,
	})
}

func (h *ArtistHandler) CreateArtist(c *fiber.Ctx) error {
	form := readForm(c)

	if _, err := h.service.CreateArtist(c.Context(), artistInput(form)); err != nil {
		h.logger.WithError(err).WithField("kind", repository.Kind(err)).Error("Failed to create artist")
		h.flash.Push(c, FlashInfo, "Artist was not listed!")
		return c.Redirect("/")
	}

	h.flash.Push(c, FlashInfo, "Artist "+form.get("name")+" was successfully listed!")
	return c.Redirect("/")
}

func (h *ArtistHandler) DeleteArtist(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteArtist(c.Context(), id); err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"artist_id": id,
			"kind":      repository.Kind(err),
		}).Error("Failed to delete artist")
		h.flash.Push(c, FlashWarning, "There was a problem with this request!")
		return c.Redirect("/")
	}

	h.flash.Push(c, FlashSuccess, "Your artist has been deleted!")
	return c.Redirect("/")
}

func (h *ArtistHandler) EditArtistForm(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.GetArtist(c.Context(), id)
	if err != nil {
		return lookupError(err)
	}
	genres, err := h.genres.ListGenres(c.Context())
	if err != nil {
		return err
	}
	return render(c, h.flash, "forms/edit_artist", fiber.Map{
		"Artist":   detail.Artist,
		"Genres":   genres,
		"Selected": selectedGenres(detail.Artist.Genres),
		"States":   stateChoices,
	})
}

func (h *ArtistHandler) EditArtist(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	target := fmt.Sprintf("/artists/%d", id)

	if _, err := h.service.UpdateArtist(c.Context(), id, artistInput(readForm(c))); err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"artist_id": id,
			"kind":      repository.Kind(err),
		}).Error("Failed to update artist")
		h.flash.Push(c, FlashInfo, "Artist was not modified!")
		return c.Redirect(target)
	}

	h.flash.Push(c, FlashInfo, "Artist was successfully modified ")
	return c.Redirect(target)
}
