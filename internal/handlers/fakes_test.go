package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"venue-booking/internal/models"
	"venue-booking/internal/repository"
	"venue-booking/internal/services"
	"venue-booking/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeVenueService struct {
	venues    map[uint]*models.Venue
	areas     []models.Area
	created   *services.VenueInput
	updated   *services.VenueInput
	searched  string
	createErr error
	updateErr error
	deleteErr error
	deleted   []uint
}

func (f *fakeVenueService) ListVenues(ctx context.Context) ([]models.Area, error) {
	return f.areas, nil
}

func (f *fakeVenueService) GetVenue(ctx context.Context, id uint) (*services.VenueDetail, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &services.VenueDetail{Venue: v, ShowSchedule: services.SplitShows(v.Shows, time.Now())}, nil
}

func (f *fakeVenueService) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	f.searched = term
	var out []models.Venue
	for _, v := range f.venues {
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (f *fakeVenueService) CreateVenue(ctx context.Context, in services.VenueInput) (*models.Venue, error) {
	f.created = &in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Venue{ID: 99}, nil
}

func (f *fakeVenueService) UpdateVenue(ctx context.Context, id uint, in services.VenueInput) (*models.Venue, error) {
	f.updated = &in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.venues[id], nil
}

func (f *fakeVenueService) DeleteVenue(ctx context.Context, id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.venues[id]; !ok {
		return repository.ErrNotFound
	}
	f.deleted = append(f.deleted, id)
	delete(f.venues, id)
	return nil
}

type fakeArtistService struct {
	artists   map[uint]*models.Artist
	created   *services.ArtistInput
	updated   *services.ArtistInput
	createErr error
}

func (f *fakeArtistService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	out := make([]models.Artist, 0, len(f.artists))
	for _, a := range f.artists {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeArtistService) GetArtist(ctx context.Context, id uint) (*services.ArtistDetail, error) {
	a, ok := f.artists[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &services.ArtistDetail{Artist: a, ShowSchedule: services.SplitShows(a.Shows, time.Now())}, nil
}

func (f *fakeArtistService) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	return nil, nil
}

func (f *fakeArtistService) CreateArtist(ctx context.Context, in services.ArtistInput) (*models.Artist, error) {
	f.created = &in
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Artist{ID: 1}, nil
}

func (f *fakeArtistService) UpdateArtist(ctx context.Context, id uint, in services.ArtistInput) (*models.Artist, error) {
	f.updated = &in
	a, ok := f.artists[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (f *fakeArtistService) DeleteArtist(ctx context.Context, id uint) error {
	if _, ok := f.artists[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.artists, id)
	return nil
}

type fakeShowService struct {
	shows   []models.Show
	created *services.ShowInput
	err     error
}

func (f *fakeShowService) ListShows(ctx context.Context) ([]models.Show, error) {
	return f.shows, nil
}

func (f *fakeShowService) CreateShow(ctx context.Context, in services.ShowInput) (*models.Show, error) {
	f.created = &in
	if f.err != nil {
		return nil, f.err
	}
	return &models.Show{ID: 1}, nil
}

type fakeGenreService struct{}

func (fakeGenreService) ListGenres(ctx context.Context) ([]models.Genre, error) {
	return []models.Genre{{ID: 1, Label: "Jazz"}, {ID: 2, Label: "Reggae"}}, nil
}

type fakeHealth struct{ err error }

func (f fakeHealth) HealthCheck() error { return f.err }

type fakePresigner struct{}

func (fakePresigner) GeneratePresignedURL(ctx context.Context, filename string) (*services.PresignedUpload, error) {
	if filename == "boom.png" {
		return nil, errors.New("minio down")
	}
	return &services.PresignedUpload{
		UploadURL: "http://localhost:9000/booking-images/" + filename + "?X-Amz-Signature=abc",
		PublicURL: "http://localhost:9000/booking-images/" + filename,
		ExpiresIn: 15 * time.Minute,
	}, nil
}

type testApp struct {
	app     *fiber.App
	venues  *fakeVenueService
	artists *fakeArtistService
	shows   *fakeShowService
	health  *fakeHealth
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	ta := &testApp{
		venues: &fakeVenueService{venues: map[uint]*models.Venue{
			1: {ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: []models.Genre{{ID: 1, Label: "Jazz"}}},
		}},
		artists: &fakeArtistService{artists: map[uint]*models.Artist{
			4: {ID: 4, Name: "Guns N Petals", City: "San Francisco", State: "CA"},
		}},
		shows:  &fakeShowService{},
		health: &fakeHealth{},
	}

	store := session.New(session.Config{KeyLookup: "cookie:booking_session"})
	flash := NewFlasher(store, log)
	genres := fakeGenreService{}

	app := fiber.New(fiber.Config{
		Views:        views.New(),
		ErrorHandler: NewErrorHandler(log),
	})

	page := NewPageHandler(ta.health, flash)
	venue := NewVenueHandler(ta.venues, genres, flash, log)
	artist := NewArtistHandler(ta.artists, genres, flash, log)
	show := NewShowHandler(ta.shows, flash, log)
	api := NewAPIHandler(ta.venues, ta.artists, ta.shows, genres, log)
	upload := NewUploadHandler(fakePresigner{}, log)

	// Mirrors the production route table without importing routes, which
	// would create an import cycle in tests.
	app.Get("/", page.Home)
	app.Get("/health", page.Health)
	app.Get("/venues", venue.ListVenues)
	app.Post("/venues/search", venue.SearchVenues)
	app.Get("/venues/create", venue.CreateVenueForm)
	app.Post("/venues/create", venue.CreateVenue)
	app.Get("/venues/:id<int>", venue.ShowVenue)
	app.Post("/venues/:id<int>/delete", venue.DeleteVenue)
	app.Get("/venues/:id<int>/edit", venue.EditVenueForm)
	app.Post("/venues/:id<int>/edit", venue.EditVenue)
	app.Get("/artists", artist.ListArtists)
	app.Get("/artists/create", artist.CreateArtistForm)
	app.Post("/artists/create", artist.CreateArtist)
	app.Get("/artists/:id<int>", artist.ShowArtist)
	app.Post("/artists/:id<int>/delete", artist.DeleteArtist)
	app.Get("/artists/:id<int>/edit", artist.EditArtistForm)
	app.Post("/artists/:id<int>/edit", artist.EditArtist)
	app.Get("/shows", show.ListShows)
	app.Get("/shows/create", show.CreateShowForm)
	app.Post("/shows/create", show.CreateShow)
	app.Get("/api/v1/venues", api.ListVenues)
	app.Get("/api/v1/venues/:id<int>", api.GetVenue)
	app.Get("/api/v1/genres", api.ListGenres)
	app.Get("/uploads/presign", upload.GetPresignedURL)

	ta.app = app
	return ta
}

func (ta *testApp) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (ta *testApp) get(t *testing.T, path string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return ta.do(t, req)
}

func (ta *testApp) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	return ta.do(t, req)
}

// followFlash loads the landing page with the session cookie from resp and
// returns its body.
func (ta *testApp) followFlash(t *testing.T, resp *http.Response) string {
	t.Helper()
	return readBody(t, ta.get(t, "/", resp.Cookies()...))
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
