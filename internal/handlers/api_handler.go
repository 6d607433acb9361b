package handlers

import (
	"venue-booking/internal/services"
	"venue-booking/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// APIHandler serves the read-only JSON view of the directory.
type APIHandler struct {
	venues  services.VenueService
	artists services.ArtistService
	shows   services.ShowService
	genres  services.GenreService
	logger  *logrus.Logger
}

func NewAPIHandler(venues services.VenueService, artists services.ArtistService, shows services.ShowService, genres services.GenreService, logger *logrus.Logger) *APIHandler {
	return &APIHandler{
		venues:  venues,
		artists: artists,
		shows:   shows,
		genres:  genres,
		logger:  logger,
	}
}

// ListVenues godoc
// @Summary List venues
// @Description List venues, optionally filtered by a case-insensitive name substring
// @Tags venues
// @Produce json
// @Param search query string false "Name substring"
// @Success 200 {object} utils.StandardResponse{data=[]models.Venue,meta=utils.SearchMeta}
// @Failure 500 {object} utils.StandardResponse
// @Router /venues [get]
func (h *APIHandler) ListVenues(c *fiber.Ctx) error {
	term := c.Query("search")

	venues, err := h.venues.SearchVenues(c.Context(), term)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get venues")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve venues")
	}

	meta := utils.SearchMeta{SearchTerm: term, Count: len(venues)}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Venues retrieved successfully", venues, meta)
}

// GetVenue godoc
// @Summary Get venue by ID
// @Description Get a venue with its past and upcoming shows
// @Tags venues
// @Produce json
// @Param id path int true "Venue ID"
// @Success 200 {object} utils.StandardResponse{data=services.VenueDetail}
// @Failure 404 {object} utils.StandardResponse
// @Router /venues/{id} [get]
func (h *APIHandler) GetVenue(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Venue not found")
	}

	detail, err := h.venues.GetVenue(c.Context(), id)
	if err != nil {
		return lookupError(err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Venue retrieved successfully", detail)
}

// ListArtists godoc
// @Summary List artists
// @Description List artists, optionally filtered by a case-insensitive name substring
// @Tags artists
// @Produce json
// @Param search query string false "Name substring"
// @Success 200 {object} utils.StandardResponse{data=[]models.Artist,meta=utils.SearchMeta}
// @Failure 500 {object} utils.StandardResponse
// @Router /artists [get]
func (h *APIHandler) ListArtists(c *fiber.Ctx) error {
	term := c.Query("search")

	artists, err := h.artists.SearchArtists(c.Context(), term)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get artists")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve artists")
	}

	meta := utils.SearchMeta{SearchTerm: term, Count: len(artists)}
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Artists retrieved successfully", artists, meta)
}

// GetArtist godoc
// @Summary Get artist by ID
// @Description Get an artist with past and upcoming shows
// @Tags artists
// @Produce json
// @Param id path int true "Artist ID"
// @Success 200 {object} utils.StandardResponse{data=services.ArtistDetail}
// @Failure 404 {object} utils.StandardResponse
// @Router /artists/{id} [get]
func (h *APIHandler) GetArtist(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Artist not found")
	}

	detail, err := h.artists.GetArtist(c.Context(), id)
	if err != nil {
		return lookupError(err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Artist retrieved successfully", detail)
}

// ListShows godoc
// @Summary List shows
// @Tags shows
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.Show}
// @Failure 500 {object} utils.StandardResponse
// @Router /shows [get]
func (h *APIHandler) ListShows(c *fiber.Ctx) error {
	shows, err := h.shows.ListShows(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get shows")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve shows")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Shows retrieved successfully", shows)
}

// ListGenres godoc
// @Summary List genres
// @Tags genres
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.Genre}
// @Failure 500 {object} utils.StandardResponse
// @Router /genres [get]
func (h *APIHandler) ListGenres(c *fiber.Ctx) error {
	genres, err := h.genres.ListGenres(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to get genres")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve genres")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", genres)
}
