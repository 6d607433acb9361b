package routes

import (
	"venue-booking/internal/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// Handlers bundles everything the route table dispatches to. Upload is nil
// when image uploads are disabled.
type Handlers struct {
	Page   *handlers.PageHandler
	Venue  *handlers.VenueHandler
	Artist *handlers.ArtistHandler
	Show   *handlers.ShowHandler
	API    *handlers.APIHandler
	Upload *handlers.UploadHandler
}

func Setup(app *fiber.App, h Handlers) {
	app.Get("/", h.Page.Home)
	app.Get("/health", h.Page.Health)

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	venues := app.Group("/venues")
	{
		venues.Get("/", h.Venue.ListVenues)
		venues.Post("/search", h.Venue.SearchVenues)
		venues.Get("/create", h.Venue.CreateVenueForm)
		venues.Post("/create", h.Venue.CreateVenue)
		venues.Get("/:id<int>", h.Venue.ShowVenue)
		venues.Post("/:id<int>/delete", h.Venue.DeleteVenue)
		venues.Get("/:id<int>/edit", h.Venue.EditVenueForm)
		venues.Post("/:id<int>/edit", h.Venue.EditVenue)
	}

	artists := app.Group("/artists")
	{
		artists.Get("/", h.Artist.ListArtists)
		artists.Post("/search", h.Artist.SearchArtists)
		artists.Get("/create", h.Artist.CreateArtistForm)
		artists.Post("/create", h.Artist.CreateArtist)
		artists.Get("/:id<int>", h.Artist.ShowArtist)
		artists.Post("/:id<int>/delete", h.Artist.DeleteArtist)
		artists.Get("/:id<int>/edit", h.Artist.EditArtistForm)
		artists.Post("/:id<int>/edit", h.Artist.EditArtist)
	}

	shows := app.Group("/shows")
	{
		shows.Get("/", h.Show.ListShows)
		shows.Get("/create", h.Show.CreateShowForm)
		shows.Post("/create", h.Show.CreateShow)
	}

	// Read-only JSON API
	v1 := app.Group("/api/v1", cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET, OPTIONS",
		MaxAge:       86400, // 24 hours
	}))
	{
		v1.Get("/venues", h.API.ListVenues)
		v1.Get("/venues/:id<int>", h.API.GetVenue)
		v1.Get("/artists", h.API.ListArtists)
		v1.Get("/artists/:id<int>", h.API.GetArtist)
		v1.Get("/shows", h.API.ListShows)
		v1.Get("/genres", h.API.ListGenres)
	}

	if h.Upload != nil {
		app.Get("/uploads/presign", h.Upload.GetPresignedURL)
	}
}
